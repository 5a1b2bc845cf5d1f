package errors_test

import (
	"context"
	stderrors "errors"
	"testing"

	dnderr "github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrap_PreservesCode(t *testing.T) {
	base := dnderr.InvalidCommandf("target %s is down", "goblin")
	wrapped := dnderr.Wrap(base, "resolve action")

	assert.True(t, dnderr.IsInvalidCommand(wrapped))
	assert.Equal(t, "resolve action: target goblin is down", wrapped.Error())
	assert.True(t, stderrors.Is(wrapped, base))
}

func TestWrap_PlainErrorIsUnknown(t *testing.T) {
	wrapped := dnderr.Wrap(stderrors.New("boom"), "save record")

	assert.Equal(t, dnderr.CodeUnknown, dnderr.GetCode(wrapped))
	assert.Nil(t, dnderr.Wrap(nil, "nothing"))
}

func TestWithMeta_CopiedOnWrap(t *testing.T) {
	base := dnderr.Configurationf("definition %q missing", "slime").WithMeta("key", "slime")
	wrapped := dnderr.Wrap(base, "spawn roster")
	wrapped.Meta["key"] = "changed"

	assert.True(t, dnderr.IsConfiguration(wrapped))
	assert.Equal(t, "slime", dnderr.GetMeta(base)["key"])
}

func TestWrapWithCode(t *testing.T) {
	err := dnderr.WrapWithCode(stderrors.New("gone"), dnderr.CodeStateInconsistency, "actor removed")

	assert.True(t, dnderr.IsStateInconsistency(err))
	assert.False(t, dnderr.IsNotFound(err))
}

func TestCancelled(t *testing.T) {
	err := dnderr.Cancelled(context.Canceled, "battle cancelled")
	assert.True(t, dnderr.IsCancelled(err))
	assert.ErrorIs(t, err, context.Canceled)

	assert.True(t, dnderr.IsCancelled(dnderr.Cancelled(nil, "stopped")))
}

func TestRecoverable(t *testing.T) {
	assert.True(t, dnderr.Recoverable(dnderr.InvalidCommand("no move")))
	assert.True(t, dnderr.Recoverable(dnderr.Wrap(dnderr.StateInconsistencyf("%s left", "wolf"), "resolve")))
	assert.False(t, dnderr.Recoverable(dnderr.NotFound("record")))
	assert.False(t, dnderr.Recoverable(stderrors.New("boom")))
}

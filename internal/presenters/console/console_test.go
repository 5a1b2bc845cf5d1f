package console_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-battle/internal/battle"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/presenters/console"
	"github.com/KirkDiggler/rpg-battle/internal/testutils"
)

var (
	_ battle.Presenter     = (*console.Console)(nil)
	_ battle.InputProvider = (*console.Console)(nil)
)

type fixture struct {
	knight  *entities.Runtime
	goblin  *entities.Runtime
	wolf    *entities.Runtime
	slash   *entities.MoveDefinition
	mend    *entities.MoveDefinition
	request *battle.ActionRequest
}

func newFixture(t *testing.T) *fixture {
	slash := testutils.CreateTestMove("Slash", 10)
	mend := &entities.MoveDefinition{Key: "mend", Name: "Mend", Power: 10, Heal: true}
	knight := testutils.CreateTestRuntime(t,
		testutils.CreateTestDefinition("knight", 1500, 20, 10, 10, slash, mend), entities.SidePlayer)
	goblin := testutils.CreateTestRuntime(t,
		testutils.CreateTestDefinition("goblin", 30, 5, 0, 5, testutils.CreateTestMove("Bite", 5)), entities.SideEnemy)
	wolf := testutils.CreateTestRuntime(t,
		testutils.CreateTestDefinition("wolf", 40, 5, 0, 5, testutils.CreateTestMove("Bite", 5)), entities.SideEnemy)

	return &fixture{
		knight: knight,
		goblin: goblin,
		wolf:   wolf,
		slash:  slash,
		mend:   mend,
		request: &battle.ActionRequest{
			Round:   2,
			Actor:   knight,
			Moves:   []*entities.MoveDefinition{slash, mend},
			Targets: []*entities.Runtime{goblin, wolf},
			Allies:  []*entities.Runtime{knight},
		},
	}
}

func TestRequestAction(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		canPersuade bool
		want        func(f *fixture) *battle.Intent
	}{
		{
			name:  "numbers",
			input: "1 2\n",
			want:  func(f *fixture) *battle.Intent { return battle.UseMove("Slash", f.wolf.ID) },
		},
		{
			name:  "names",
			input: "slash goblin\n",
			want:  func(f *fixture) *battle.Intent { return battle.UseMove("Slash", f.goblin.ID) },
		},
		{
			name:  "heal defaults to self",
			input: "2\n",
			want:  func(f *fixture) *battle.Intent { return battle.UseMove("Mend", f.knight.ID) },
		},
		{
			name:        "persuade",
			input:       "p\n",
			canPersuade: true,
			want:        func(*fixture) *battle.Intent { return battle.Persuade() },
		},
		{
			name:  "bad lines are asked again",
			input: "\n9 1\n1\nfireball 1\n1 1\n",
			want:  func(f *fixture) *battle.Intent { return battle.UseMove("Slash", f.goblin.ID) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.request.CanPersuade = tt.canPersuade
			out := &bytes.Buffer{}
			c := console.New(&console.Config{In: strings.NewReader(tt.input), Out: out})

			intent, err := c.RequestAction(context.Background(), f.request)
			require.NoError(t, err)
			assert.Equal(t, tt.want(f), intent)
		})
	}
}

func TestRequestAction_Output(t *testing.T) {
	f := newFixture(t)
	f.request.Problem = "Slash is used up"
	out := &bytes.Buffer{}
	c := console.New(&console.Config{In: strings.NewReader("1 1\n"), Out: out, Language: language.English})

	_, err := c.RequestAction(context.Background(), f.request)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Round 2: knight (Lv 1, HP 1,500/1,500)")
	assert.Contains(t, text, "rejected: Slash is used up")
	assert.Contains(t, text, "1) goblin 30/30")
	assert.NotContains(t, text, "Persuade")
}

func TestRequestAction_Cancelled(t *testing.T) {
	f := newFixture(t)
	reader, writer := io.Pipe()
	defer writer.Close()
	c := console.New(&console.Config{In: reader, Out: io.Discard})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.RequestAction(ctx, f.request)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRequestAction_InputClosed(t *testing.T) {
	f := newFixture(t)
	c := console.New(&console.Config{In: strings.NewReader(""), Out: io.Discard})

	_, err := c.RequestAction(context.Background(), f.request)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReplacementPrompts(t *testing.T) {
	out := &bytes.Buffer{}
	c := console.New(&console.Config{In: strings.NewReader("7\n2\n0\n"), Out: out})
	ctx := context.Background()

	choice, err := c.RequestMoveReplacement(ctx, []string{"Slash", "Mend"}, "Valor Strike")
	require.NoError(t, err)
	assert.Equal(t, battle.ReplaceChoice{Index: 1}, choice)
	assert.Contains(t, out.String(), "pick a number from 0 to 2")

	choice, err = c.RequestRosterReplacement(ctx, []string{"knight", "mage", "cleric", "wolf"}, "orc")
	require.NoError(t, err)
	assert.True(t, choice.Decline)
	assert.Contains(t, out.String(), "Who makes room for orc?")
}

func TestPresenter(t *testing.T) {
	out := &bytes.Buffer{}
	c := console.New(&console.Config{In: strings.NewReader(""), Out: out})

	c.ShowMessage("A battle begins!")
	c.Highlight("goblin", true)
	c.Highlight("goblin", false)
	c.RemoveEntity("goblin")

	assert.Equal(t, "A battle begins!\n  > goblin\n  (goblin leaves the field)\n", out.String())
}

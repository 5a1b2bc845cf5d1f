package recruitment_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	dnderr "github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/recruitment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wolf(t *testing.T, hp int) *entities.Runtime {
	t.Helper()
	r, err := entities.NewRuntime(&entities.CharacterDefinition{Key: "wolf", Name: "Wolf", BaseHP: 100}, 1)
	require.NoError(t, err)
	r.SetHP(hp)
	return r
}

func TestChance(t *testing.T) {
	tests := []struct {
		ratio  float64
		chance float64
	}{
		{0.0, 0.99},
		{0.02, 0.99},
		{0.05, 0.85},
		{0.15, 0.65},
		{0.25, 0.45},
		{0.5, 0.30},
		{0.6, 0.20},
		{0.8, 0.15},
		{0.85, 0.10},
		{0.95, 0.07},
		{1.0, 0.05},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.chance, recruitment.Chance(tt.ratio), "ratio %.2f", tt.ratio)
	}
}

func TestChance_DecreasesWithHealth(t *testing.T) {
	prev := recruitment.Chance(0)
	for i := 1; i <= 100; i++ {
		c := recruitment.Chance(float64(i) / 100)
		assert.LessOrEqual(t, c, prev)
		prev = c
	}
}

func TestMachine_Attempt(t *testing.T) {
	t.Run("draw below chance succeeds", func(t *testing.T) {
		m := recruitment.NewMachine(0)
		require.NoError(t, m.Begin(wolf(t, 15)))

		result, err := m.Attempt(0.5)
		require.NoError(t, err)
		assert.Equal(t, 0.65, result.Chance)
		assert.True(t, result.Succeeded)
		assert.Equal(t, recruitment.StateSucceeded, m.State())

		_, err = m.Attempt(0.1)
		assert.True(t, dnderr.IsInvalidCommand(err))
	})

	t.Run("draw above chance fails until attempts run out", func(t *testing.T) {
		m := recruitment.NewMachine(3)
		target := wolf(t, 15)
		require.NoError(t, m.Begin(target))

		for i := 1; i <= 3; i++ {
			result, err := m.Attempt(0.9)
			require.NoError(t, err)
			assert.False(t, result.Succeeded)
			assert.Equal(t, 0.65, result.Chance, "chance does not grow with attempts")
			assert.Equal(t, i, result.Attempt)
		}

		assert.Equal(t, recruitment.StateFailed, m.State())
		assert.Zero(t, m.AttemptsLeft())
		_, err := m.Attempt(0.0)
		assert.True(t, dnderr.IsInvalidCommand(err))
	})

	t.Run("inactive machine rejects attempts", func(t *testing.T) {
		m := recruitment.NewMachine(3)
		_, err := m.Attempt(0.0)
		assert.True(t, dnderr.IsInvalidCommand(err))
	})
}

func TestMachine_Begin(t *testing.T) {
	m := recruitment.NewMachine(3)
	assert.True(t, dnderr.IsConfiguration(m.Begin(nil)))

	target := wolf(t, 100)
	require.NoError(t, m.Begin(target))
	assert.True(t, m.IsTarget(target))
	assert.True(t, dnderr.IsStateInconsistency(m.Begin(target)))
}

func TestMachine_TargetDefeated(t *testing.T) {
	m := recruitment.NewMachine(3)
	m.TargetDefeated()
	assert.Equal(t, recruitment.StateInactive, m.State())

	require.NoError(t, m.Begin(wolf(t, 40)))
	m.TargetDefeated()
	assert.Equal(t, recruitment.StateFailed, m.State())
	assert.True(t, m.State().IsTerminal())
}

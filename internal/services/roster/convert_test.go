package roster_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-battle/internal/effects"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/records"
	"github.com/KirkDiggler/rpg-battle/internal/services/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	slash  = &entities.MoveDefinition{Key: "slash", Name: "Slash", Power: 10}
	bash   = &entities.MoveDefinition{Key: "bash", Name: "Bash", Power: 12}
	cleave = &entities.MoveDefinition{Key: "cleave", Name: "Cleave", Power: 14, MultiTarget: true}
)

func knight() *entities.CharacterDefinition {
	return &entities.CharacterDefinition{
		Key:         "knight",
		Name:        "Knight",
		Archetype:   entities.ArchetypeWarrior,
		BaseHP:      100,
		BaseAttack:  20,
		BaseDefense: 10,
		BaseSpeed:   12,
		Learnset: []entities.LearnableMove{
			{Move: slash, Level: 1},
			{Move: bash, Level: 2},
			{Move: cleave, Level: 4},
		},
		ExpReward: 30,
	}
}

func TestSaveFromRuntime_RoundTrip(t *testing.T) {
	original, err := entities.NewRuntime(knight(), 5)
	require.NoError(t, err)
	original.Side = entities.SidePlayer
	original.Experience = 17
	original.TakeDamage(42)
	_, err = original.ReplaceMove(1, cleave)
	require.NoError(t, err)

	rec := roster.SaveFromRuntime(original, 2)
	assert.Equal(t, "Knight", rec.Name)
	assert.Equal(t, "knight", rec.DefinitionKey)
	assert.Equal(t, 2, rec.Slot)

	restored, err := entities.NewRuntime(knight(), 1)
	require.NoError(t, err)
	roster.ApplyToRuntime(rec, restored)

	assert.Equal(t, original.Level, restored.Level)
	assert.Equal(t, original.Experience, restored.Experience)
	assert.Equal(t, original.CurrentHP, restored.CurrentHP)
	assert.Equal(t, original.MaxHP, restored.MaxHP)
	assert.Equal(t, original.Attack, restored.Attack)
	assert.Equal(t, original.Defense, restored.Defense)
	assert.Equal(t, original.Speed, restored.Speed)
	assert.Equal(t, original.MoveNames(), restored.MoveNames())
}

func TestSaveFromRuntime_LeavesOutEffectDeltas(t *testing.T) {
	r, err := entities.NewRuntime(knight(), 1)
	require.NoError(t, err)
	r.Effects.Apply(r, effects.KindPoison, 3)
	r.Effects.Apply(r, effects.KindBurn, 3)
	require.Equal(t, 18, r.Attack)
	require.Equal(t, 9, r.Defense)

	rec := roster.SaveFromRuntime(r, 0)

	assert.Equal(t, 20, rec.Attack)
	assert.Equal(t, 10, rec.Defense)
	assert.Equal(t, 18, r.Attack, "the runtime keeps its effects")

	restored, err := entities.NewRuntime(knight(), 1)
	require.NoError(t, err)
	roster.ApplyToRuntime(rec, restored)
	assert.Equal(t, 20, restored.Attack)
	assert.Equal(t, 10, restored.Defense)
}

func TestApplyToRuntime(t *testing.T) {
	t.Run("missing fields keep runtime values", func(t *testing.T) {
		r, err := entities.NewRuntime(knight(), 1)
		require.NoError(t, err)

		roster.ApplyToRuntime(&records.Record{Name: "Knight", Level: 3}, r)

		assert.Equal(t, 3, r.Level)
		assert.Equal(t, 100, r.MaxHP)
		assert.Equal(t, 100, r.CurrentHP)
		assert.Equal(t, 20, r.Attack)
		assert.Equal(t, []string{"Slash"}, r.MoveNames())
	})

	t.Run("unknown moves are skipped", func(t *testing.T) {
		r, err := entities.NewRuntime(knight(), 1)
		require.NoError(t, err)

		roster.ApplyToRuntime(&records.Record{Moves: []string{"Moonbeam", "Bash"}}, r)

		assert.Equal(t, []string{"Bash"}, r.MoveNames())
	})

	t.Run("hp is clamped to max", func(t *testing.T) {
		r, err := entities.NewRuntime(knight(), 1)
		require.NoError(t, err)

		roster.ApplyToRuntime(&records.Record{MaxHP: 50, CurrentHP: 80}, r)

		assert.Equal(t, 50, r.MaxHP)
		assert.Equal(t, 50, r.CurrentHP)
	})
}

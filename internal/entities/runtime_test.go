package entities_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-battle/internal/effects"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	dnderr "github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	slash    = &entities.MoveDefinition{Key: "slash", Name: "Slash", Power: 10}
	guard    = &entities.MoveDefinition{Key: "guard-break", Name: "Guard Break", Power: 8, Effect: effects.KindBurn, EffectChance: 0.3, EffectDuration: 2}
	cleave   = &entities.MoveDefinition{Key: "cleave", Name: "Cleave", Power: 14, MultiTarget: true}
	finisher = &entities.MoveDefinition{Key: "finisher", Name: "Finisher", Power: 30, UsageCap: 1}
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
			{Move: guard, Level: 3},
			{Move: cleave, Level: 5},
		},
		Ultimate:  finisher,
		ExpReward: 40,
	}
}

func TestNewRuntime(t *testing.T) {
	t.Run("level one equips unlocked moves and the ultimate", func(t *testing.T) {
		r, err := entities.NewRuntime(knight(), 1)
		require.NoError(t, err)

		assert.Equal(t, []string{"Slash", "Finisher"}, r.MoveNames())
		assert.Equal(t, 100, r.CurrentHP)
		assert.Equal(t, 100, r.MaxHP)
		assert.Equal(t, 20, r.Attack)
	})

	t.Run("truncates to two moves", func(t *testing.T) {
		r, err := entities.NewRuntime(knight(), 5)
		require.NoError(t, err)

		assert.Equal(t, []string{"Slash", "Guard Break"}, r.MoveNames())
		assert.Len(t, r.Moves, entities.MaxEquippedMoves)
	})

	t.Run("grows stats per level", func(t *testing.T) {
		r, err := entities.NewRuntime(knight(), 2)
		require.NoError(t, err)

		assert.Equal(t, 110, r.MaxHP)
		assert.Equal(t, 110, r.CurrentHP)
		assert.Equal(t, 22, r.Attack)  // round(21.6)
		assert.Equal(t, 11, r.Defense) // round(10.6)
		assert.Equal(t, 12, r.Speed)   // round(12.36)
	})

	t.Run("nil definition is a configuration error", func(t *testing.T) {
		_, err := entities.NewRuntime(nil, 1)
		assert.True(t, dnderr.IsConfiguration(err))
	})
}

func TestRuntime_HPClamps(t *testing.T) {
	r, err := entities.NewRuntime(knight(), 1)
	require.NoError(t, err)

	assert.Equal(t, 30, r.TakeDamage(30))
	assert.Equal(t, 70, r.CurrentHP)

	assert.Equal(t, 0, r.TakeDamage(-5))
	assert.Equal(t, 70, r.CurrentHP)

	assert.Equal(t, 30, r.Heal(50))
	assert.Equal(t, 100, r.CurrentHP)

	assert.Equal(t, 100, r.TakeDamage(500))
	assert.Equal(t, 0, r.CurrentHP)
	assert.False(t, r.IsAlive())

	assert.Equal(t, 0, r.Heal(10), "the fallen are not healed")
}

func TestRuntime_UsageCap(t *testing.T) {
	r, err := entities.NewRuntime(knight(), 1)
	require.NoError(t, err)

	assert.True(t, r.CanUse(finisher))
	r.RecordUse(finisher)
	assert.False(t, r.CanUse(finisher))
	assert.Equal(t, []*entities.MoveDefinition{slash}, r.UsableMoves())

	r.ResetUsage()
	assert.True(t, r.CanUse(finisher))
	assert.False(t, r.CanUse(cleave), "not equipped")
}

func TestRuntime_LearnAndReplace(t *testing.T) {
	def := knight()
	def.Ultimate = nil
	r, err := entities.NewRuntime(def, 1)
	require.NoError(t, err)

	assert.True(t, r.LearnMove(guard))
	assert.False(t, r.LearnMove(cleave), "slots are full")
	assert.False(t, r.LearnMove(guard), "already known")

	old, err := r.ReplaceMove(0, cleave)
	require.NoError(t, err)
	assert.Equal(t, slash, old)
	assert.Equal(t, []string{"Cleave", "Guard Break"}, r.MoveNames())

	_, err = r.ReplaceMove(2, slash)
	assert.True(t, dnderr.IsInvalidCommand(err))

	r.SetMoves([]*entities.MoveDefinition{slash, slash, guard, cleave})
	assert.Equal(t, []string{"Slash", "Guard Break"}, r.MoveNames())
}

func TestRuntime_EffectsRevertOnClear(t *testing.T) {
	r, err := entities.NewRuntime(knight(), 1)
	require.NoError(t, err)

	r.Effects.Apply(r, effects.KindPoison, 3)
	r.Effects.Apply(r, effects.KindStun, 1)
	assert.Equal(t, 18, r.Attack)
	assert.True(t, r.IsStunned())

	r.ClearEffects()
	assert.Equal(t, 20, r.Attack)
	assert.False(t, r.IsStunned())
}

func TestRuntime_GrowWhileAffected(t *testing.T) {
	clean, err := entities.NewRuntime(knight(), 1)
	require.NoError(t, err)
	affected, err := entities.NewRuntime(knight(), 1)
	require.NoError(t, err)

	affected.Effects.Apply(affected, effects.KindPoison, 1)
	affected.Effects.Apply(affected, effects.KindBurn, 1)
	assert.Equal(t, 18, affected.Attack)
	assert.Equal(t, 9, affected.Defense)

	clean.Grow()
	affected.Grow()

	assert.Equal(t, clean.BaseAttack(), affected.BaseAttack())
	assert.Equal(t, clean.BaseDefense(), affected.BaseDefense())
	assert.Equal(t, 20, affected.Attack, "poison re-applied against grown attack")

	affected.Effects.Tick(affected)
	assert.Equal(t, clean.Attack, affected.Attack)
	assert.Equal(t, clean.Defense, affected.Defense)
}

func TestRuntime_BaseStats(t *testing.T) {
	r, err := entities.NewRuntime(knight(), 1)
	require.NoError(t, err)

	r.Effects.Apply(r, effects.KindPoison, 3)
	r.Effects.Apply(r, effects.KindBurn, 3)

	assert.Equal(t, 18, r.Attack)
	assert.Equal(t, 9, r.Defense)
	assert.Equal(t, 20, r.BaseAttack())
	assert.Equal(t, 10, r.BaseDefense())
}

func TestGrowthFor_DefaultsUnknownArchetype(t *testing.T) {
	assert.Equal(t, entities.DefaultGrowth, entities.GrowthFor("bard"))
	assert.Equal(t, 0.12, entities.GrowthFor(entities.ArchetypeTank).HP)
}

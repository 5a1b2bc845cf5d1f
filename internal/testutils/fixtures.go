package testutils

import (
	"testing"

	"github.com/KirkDiggler/rpg-battle/internal/effects"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/stretchr/testify/require"
)

// CreateTestMove creates a plain single-target attack
func CreateTestMove(name string, power int) *entities.MoveDefinition {
	return &entities.MoveDefinition{
		Key:   name,
		Name:  name,
		Power: power,
	}
}

// CreateTestEffectMove creates an attack that always applies kind for duration rounds
func CreateTestEffectMove(name string, power int, kind effects.Kind, duration int) *entities.MoveDefinition {
	return &entities.MoveDefinition{
		Key:            name,
		Name:           name,
		Power:          power,
		Effect:         kind,
		EffectChance:   1,
		EffectDuration: duration,
	}
}

// CreateTestDefinition creates a definition with flat stats and the given moves
// unlocked at level 1
func CreateTestDefinition(key string, hp, attack, defense, speed int, moves ...*entities.MoveDefinition) *entities.CharacterDefinition {
	def := &entities.CharacterDefinition{
		Key:         key,
		Name:        key,
		Archetype:   entities.ArchetypeWarrior,
		BaseHP:      hp,
		BaseAttack:  attack,
		BaseDefense: defense,
		BaseSpeed:   speed,
		ExpReward:   20,
	}
	for _, m := range moves {
		def.Learnset = append(def.Learnset, entities.LearnableMove{Move: m, Level: 1})
	}
	return def
}

// CreateTestRuntime builds a level 1 runtime on side
func CreateTestRuntime(t *testing.T, def *entities.CharacterDefinition, side entities.Side) *entities.Runtime {
	t.Helper()
	r, err := entities.NewRuntime(def, 1)
	require.NoError(t, err)
	r.Side = side
	return r
}

package dnd5e

import (
	"testing"

	apiEntities "github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
)

func TestApiToDefinition_Goblin(t *testing.T) {
	goblin := &apiEntities.Monster{
		Key:             "goblin",
		Name:            "Goblin",
		Type:            "humanoid",
		ArmorClass:      15,
		HitPoints:       7,
		ChallengeRating: 0.25,
		MonsterActions: []*apiEntities.MonsterAction{
			{Name: "Scimitar", AttackBonus: 4, Damage: []*apiEntities.Damage{{DamageDice: "1d6+2"}}},
			{Name: "Shortbow", AttackBonus: 4, Damage: []*apiEntities.Damage{{DamageDice: "1d6+2"}}},
		},
	}

	def := apiToDefinition(goblin)
	require.NotNil(t, def)

	assert.Equal(t, "goblin", def.Key)
	assert.Equal(t, "Goblin", def.Name)
	assert.Equal(t, entities.ArchetypeWarrior, def.Archetype)
	assert.Equal(t, 34, def.BaseHP)
	assert.Equal(t, 13, def.BaseAttack)
	assert.Equal(t, 10, def.BaseDefense)
	assert.Equal(t, 9, def.BaseSpeed)
	assert.Equal(t, 25, def.ExpReward)

	require.Len(t, def.Learnset, 2)
	assert.Equal(t, "goblin-scimitar", def.Learnset[0].Move.Key)
	assert.Equal(t, 6, def.Learnset[0].Move.Power)
	assert.Equal(t, 1, def.Learnset[1].Level)

	r, err := entities.NewRuntime(def, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Scimitar", "Shortbow"}, r.MoveNames())
}

func TestApiToDefinition_LaterAttacksUnlockByLevel(t *testing.T) {
	ogre := &apiEntities.Monster{
		Key:             "ogre",
		Name:            "Ogre",
		Type:            "giant",
		ArmorClass:      11,
		HitPoints:       59,
		ChallengeRating: 2,
		MonsterActions: []*apiEntities.MonsterAction{
			{Name: "Multiattack"},
			{Name: "Greatclub", AttackBonus: 6, Damage: []*apiEntities.Damage{{DamageDice: "2d8+4"}}},
			{Name: "Javelin", AttackBonus: 6, Damage: []*apiEntities.Damage{{DamageDice: "2d6+4"}}},
			{Name: "Stomp", AttackBonus: 6, Damage: []*apiEntities.Damage{{DamageDice: "1d4"}, {DamageDice: "1d4"}}},
		},
	}

	def := apiToDefinition(ogre)
	require.NotNil(t, def)
	require.Len(t, def.Learnset, 3)

	assert.Equal(t, "Greatclub", def.Learnset[0].Move.Name)
	assert.Equal(t, 13, def.Learnset[0].Move.Power)
	assert.Equal(t, 6, def.Learnset[2].Move.Power, "damage entries are summed")
	assert.Equal(t, 3, def.Learnset[2].Level)
	assert.Equal(t, 95, def.ExpReward)
}

func TestApiToDefinition_NoDamage(t *testing.T) {
	assert.Nil(t, apiToDefinition(nil))
	assert.Nil(t, apiToDefinition(&apiEntities.Monster{
		Key:            "commoner",
		MonsterActions: []*apiEntities.MonsterAction{{Name: "Cower"}},
	}))
}

func TestTypeToArchetype(t *testing.T) {
	assert.Equal(t, entities.ArchetypeRogue, typeToArchetype("Beast"))
	assert.Equal(t, entities.ArchetypeTank, typeToArchetype("undead"))
	assert.Equal(t, entities.ArchetypeMage, typeToArchetype("dragon"))
	assert.Equal(t, entities.ArchetypeWarrior, typeToArchetype(""))
}

func TestGetCRValuesInRange(t *testing.T) {
	assert.Equal(t, []float32{0.25, 0.5, 1}, getCRValuesInRange(0.25, 1))
	assert.Empty(t, getCRValuesInRange(31, 40))
}

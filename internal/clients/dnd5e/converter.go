package dnd5e

import (
	"log"
	"strings"

	apiEntities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-battle/internal/dice"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
)

// Monster stats are rescaled onto the battle engine's numbers
const (
	baseHP       = 20
	hpPerHitPt   = 2
	baseAttack   = 5
	attackPerBon = 2
	acOffset     = 5
	baseSpeed    = 8
	speedPerCR   = 2
	baseReward   = 15
	rewardPerCR  = 40
)

// apiToDefinition converts a monster into a definition. Monsters without a
// damaging action return nil.
func apiToDefinition(input *apiEntities.Monster) *entities.CharacterDefinition {
	if input == nil {
		return nil
	}

	moves := apisToMoves(input.Key, input.MonsterActions)
	if len(moves) == 0 {
		log.Printf("DND5e: skipping %s, no damaging actions", input.Key)
		return nil
	}

	bestBonus := 0
	for _, action := range input.MonsterActions {
		if action != nil && int(action.AttackBonus) > bestBonus {
			bestBonus = int(action.AttackBonus)
		}
	}
	cr := float64(input.ChallengeRating)

	def := &entities.CharacterDefinition{
		Key:         input.Key,
		Name:        input.Name,
		Archetype:   typeToArchetype(input.Type),
		BaseHP:      baseHP + int(input.HitPoints)*hpPerHitPt,
		BaseAttack:  baseAttack + bestBonus*attackPerBon,
		BaseDefense: max(0, int(input.ArmorClass)-acOffset),
		BaseSpeed:   baseSpeed + entities.RoundHalfUp(cr*speedPerCR),
		ExpReward:   baseReward + entities.RoundHalfUp(cr*rewardPerCR),
	}

	// the first two attacks are known from the start, the rest unlock every other level
	for i, move := range moves {
		level := 1
		if i >= entities.MaxEquippedMoves {
			level = 1 + 2*(i-entities.MaxEquippedMoves+1)
		}
		def.Learnset = append(def.Learnset, entities.LearnableMove{Move: move, Level: level})
	}

	return def
}

func apisToMoves(monsterKey string, input []*apiEntities.MonsterAction) []*entities.MoveDefinition {
	var moves []*entities.MoveDefinition
	for _, action := range input {
		if move := apiToMove(monsterKey, action); move != nil {
			moves = append(moves, move)
		}
	}
	return moves
}

func apiToMove(monsterKey string, input *apiEntities.MonsterAction) *entities.MoveDefinition {
	if input == nil {
		return nil
	}

	power := 0
	for _, d := range input.Damage {
		if d == nil {
			continue
		}
		notation, err := dice.ParseNotation(d.DamageDice)
		if err != nil {
			continue
		}
		power += notation.Average()
	}
	if power == 0 {
		return nil
	}

	return &entities.MoveDefinition{
		Key:   monsterKey + "-" + slug(input.Name),
		Name:  input.Name,
		Power: power,
	}
}

func typeToArchetype(monsterType string) entities.Archetype {
	switch strings.ToLower(monsterType) {
	case "beast", "monstrosity":
		return entities.ArchetypeRogue
	case "undead", "construct", "ooze", "plant":
		return entities.ArchetypeTank
	case "fiend", "fey", "dragon", "aberration", "elemental":
		return entities.ArchetypeMage
	case "celestial":
		return entities.ArchetypeHealer
	default:
		return entities.ArchetypeWarrior
	}
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

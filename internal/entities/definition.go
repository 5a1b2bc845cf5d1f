package entities

import "github.com/KirkDiggler/rpg-battle/internal/effects"

// Side identifies which team a runtime fights for
type Side string

const (
	SidePlayer Side = "player"
	SideEnemy  Side = "enemy"
)

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideEnemy
	}
	return SidePlayer
}

// MaxEquippedMoves is the fixed move-slot capacity of every runtime
const MaxEquippedMoves = 2

// MoveDefinition is an immutable move template shared by every runtime
type MoveDefinition struct {
	Key         string       `json:"key"`
	Name        string       `json:"name"`
	Power       int          `json:"power"`
	UsageCap    int          `json:"usage_cap"` // uses per battle, 0 = unlimited
	Priority    int          `json:"priority"`
	MultiTarget bool         `json:"multi_target"`
	Effect      effects.Kind `json:"effect,omitempty"`
	// EffectChance is the probability in [0,1] the effect lands on a hit
	EffectChance   float64 `json:"effect_chance,omitempty"`
	EffectDuration int     `json:"effect_duration,omitempty"`
	Heal           bool    `json:"heal,omitempty"`
}

// HasEffect reports whether a hit with this move can apply a status effect
func (m *MoveDefinition) HasEffect() bool {
	return m.Effect != effects.KindNone && m.EffectChance > 0 && m.EffectDuration > 0
}

// LearnableMove pairs a move with the level it unlocks at
type LearnableMove struct {
	Move  *MoveDefinition `json:"move"`
	Level int             `json:"level"`
}

// CharacterDefinition is the immutable template a runtime is built from
type CharacterDefinition struct {
	Key         string          `json:"key"`
	Name        string          `json:"name"`
	Archetype   Archetype       `json:"archetype"`
	BaseHP      int             `json:"base_hp"`
	BaseAttack  int             `json:"base_attack"`
	BaseDefense int             `json:"base_defense"`
	BaseSpeed   int             `json:"base_speed"`
	Learnset    []LearnableMove `json:"learnset"`
	Ultimate    *MoveDefinition `json:"ultimate,omitempty"`
	ExpReward   int             `json:"exp_reward"`
}

// MovesUnlockedAt returns learnset moves whose required level is exactly level
func (d *CharacterDefinition) MovesUnlockedAt(level int) []*MoveDefinition {
	var moves []*MoveDefinition
	for _, lm := range d.Learnset {
		if lm.Move != nil && lm.Level == level {
			moves = append(moves, lm.Move)
		}
	}
	return moves
}

// MoveByName searches the learnset and ultimate for a move
func (d *CharacterDefinition) MoveByName(name string) *MoveDefinition {
	for _, lm := range d.Learnset {
		if lm.Move != nil && lm.Move.Name == name {
			return lm.Move
		}
	}
	if d.Ultimate != nil && d.Ultimate.Name == name {
		return d.Ultimate
	}
	return nil
}

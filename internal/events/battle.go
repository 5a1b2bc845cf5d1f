package events

import (
	"github.com/KirkDiggler/rpg-battle/internal/effects"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
)

// MessageEvent carries display text
type MessageEvent struct {
	BaseEvent
	Text string
}

// HighlightEvent toggles emphasis on an entity
type HighlightEvent struct {
	BaseEvent
	EntityID string
	On       bool
}

// BattleStartedEvent fires once the rosters are spawned
type BattleStartedEvent struct {
	BaseEvent
	Players []*entities.Runtime
	Enemies []*entities.Runtime
}

// RoundStartedEvent fires before command collection
type RoundStartedEvent struct {
	BaseEvent
	Round int
}

// ActionSkippedEvent fires when a queued action cannot run
type ActionSkippedEvent struct {
	BaseEvent
	Actor  *entities.Runtime
	Reason string
}

// AttackMissedEvent fires on a die roll of 1
type AttackMissedEvent struct {
	BaseEvent
	Actor  *entities.Runtime
	Target *entities.Runtime
	Move   *entities.MoveDefinition
}

// DamageAppliedEvent fires after a hit lands
type DamageAppliedEvent struct {
	BaseEvent
	Actor      *entities.Runtime
	Target     *entities.Runtime
	Move       *entities.MoveDefinition
	Die        int
	Multiplier float64
	Damage     int
}

// IsCritical reports a 1.25 multiplier hit
func (e *DamageAppliedEvent) IsCritical() bool { return e.Multiplier > 1 }

// IsWeak reports a 0.75 multiplier hit
func (e *DamageAppliedEvent) IsWeak() bool { return e.Multiplier < 1 }

// HealedEvent fires after a heal move
type HealedEvent struct {
	BaseEvent
	Actor  *entities.Runtime
	Target *entities.Runtime
	Move   *entities.MoveDefinition
	Amount int
}

// EntityRemovedEvent fires when a participant leaves the battle
type EntityRemovedEvent struct {
	BaseEvent
	Entity *entities.Runtime
	Reason string
}

// EffectAppliedEvent fires when a status effect lands or refreshes
type EffectAppliedEvent struct {
	BaseEvent
	Target   *entities.Runtime
	Kind     effects.Kind
	Duration int
}

// EffectTickedEvent fires for each effect processed at round end
type EffectTickedEvent struct {
	BaseEvent
	Target *entities.Runtime
	Result effects.TickResult
}

// EffectExpiredEvent fires when an effect runs out
type EffectExpiredEvent struct {
	BaseEvent
	Target *entities.Runtime
	Kind   effects.Kind
}

// XPGainedEvent fires for each survivor credited with a kill
type XPGainedEvent struct {
	BaseEvent
	Runtime  *entities.Runtime
	Defeated *entities.CharacterDefinition
	Amount   int
}

// LevelUpEvent fires once per level gained
type LevelUpEvent struct {
	BaseEvent
	Runtime *entities.Runtime
	Level   int
}

// MoveLearnedEvent fires when a move is equipped through progression
type MoveLearnedEvent struct {
	BaseEvent
	Runtime  *entities.Runtime
	Move     *entities.MoveDefinition
	Replaced *entities.MoveDefinition
}

// PersuadeAttemptedEvent fires after every persuasion roll
type PersuadeAttemptedEvent struct {
	BaseEvent
	Actor     *entities.Runtime
	Target    *entities.Runtime
	Chance    float64
	Draw      float64
	Succeeded bool
	Attempt   int
}

// RecruitJoinedEvent fires when a recruit enters the player roster
type RecruitJoinedEvent struct {
	BaseEvent
	Recruit *entities.Runtime
}

// MemberReleasedEvent fires when a player member leaves to make room
type MemberReleasedEvent struct {
	BaseEvent
	Member *entities.Runtime
}

// BattleCompletedEvent fires once when a battle reaches a terminal state
type BattleCompletedEvent struct {
	BaseEvent
	Result string
	Rounds int
}

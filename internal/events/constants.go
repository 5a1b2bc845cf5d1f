package events

// Event type constants
const (
	// Presentation
	EventTypeMessage   EventType = "message"
	EventTypeHighlight EventType = "highlight"

	// Battle lifecycle
	EventTypeBattleStarted   EventType = "battle_started"
	EventTypeRoundStarted    EventType = "round_started"
	EventTypeBattleCompleted EventType = "battle_completed"

	// Action resolution
	EventTypeActionSkipped EventType = "action_skipped"
	EventTypeAttackMissed  EventType = "attack_missed"
	EventTypeDamageApplied EventType = "damage_applied"
	EventTypeHealed        EventType = "healed"
	EventTypeEntityRemoved EventType = "entity_removed"

	// Status effects
	EventTypeEffectApplied EventType = "effect_applied"
	EventTypeEffectTicked  EventType = "effect_ticked"
	EventTypeEffectExpired EventType = "effect_expired"

	// Progression
	EventTypeXPGained    EventType = "xp_gained"
	EventTypeLevelUp     EventType = "level_up"
	EventTypeMoveLearned EventType = "move_learned"

	// Recruitment
	EventTypePersuadeAttempted EventType = "persuade_attempted"
	EventTypeRecruitJoined     EventType = "recruit_joined"
	EventTypeMemberReleased    EventType = "member_released"
)

// Priority levels for listener order
const (
	PriorityCore         = 0   // State changes that others depend on
	PriorityPersistence  = 100 // Save records
	PriorityPresentation = 200 // Messages, highlights
	PriorityAudit        = 300 // Logging, recorders
)

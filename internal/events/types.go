package events

// EventType represents the type of battle event
type EventType string

// Event is the base interface for all battle events
type Event interface {
	GetType() EventType
	GetBattleID() string
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type     EventType
	BattleID string
}

func (e *BaseEvent) GetType() EventType  { return e.Type }
func (e *BaseEvent) GetBattleID() string { return e.BattleID }

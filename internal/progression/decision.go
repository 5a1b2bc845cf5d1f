package progression

import "github.com/KirkDiggler/rpg-battle/internal/entities"

// MoveDecision is a pending request to swap an equipped move for a newly
// unlocked one. It is settled through Engine.Resolve.
type MoveDecision struct {
	ID      string
	Runtime *entities.Runtime
	NewMove *entities.MoveDefinition
	Current []string // equipped move names when the decision was queued
}

// Choice answers a replacement prompt: a slot index, or Decline
type Choice struct {
	Index   int
	Decline bool
}

// Replace picks the slot (or roster position) at index
func Replace(index int) Choice {
	return Choice{Index: index}
}

// Decline keeps everything as it is
func Decline() Choice {
	return Choice{Decline: true}
}

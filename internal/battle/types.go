package battle

import (
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/progression"
)

// State is the position of the battle state machine
type State string

const (
	StateIdle                    State = "idle"
	StateCollectingPlayerActions State = "collecting_player_actions"
	StateCollectingEnemyActions  State = "collecting_enemy_actions"
	StateResolving               State = "resolving"
	StateVictory                 State = "victory"
	StateDefeat                  State = "defeat"
	StateRecruited               State = "recruited"
	StateTargetFled              State = "target_fled"
	StateCancelled               State = "cancelled"
)

// IsTerminal reports whether the battle is over
func (s State) IsTerminal() bool {
	switch s {
	case StateVictory, StateDefeat, StateRecruited, StateTargetFled, StateCancelled:
		return true
	}
	return false
}

// Result is how a battle ended
type Result string

const (
	ResultVictory    Result = "victory"
	ResultDefeat     Result = "defeat"
	ResultRecruited  Result = "recruited"
	ResultTargetFled Result = "target_fled"
	ResultCancelled  Result = "cancelled"
)

// Outcome summarises a finished battle
type Outcome struct {
	BattleID string
	Result   Result
	Rounds   int
	Players  []*entities.Runtime
	// Recruit is set when a persuaded enemy joined the party
	Recruit *entities.Runtime
}

// IntentKind is what a player chose to do with their turn
type IntentKind string

const (
	IntentAttack   IntentKind = "attack"
	IntentPersuade IntentKind = "persuade"
)

// Intent is a player's answer to an ActionRequest
type Intent struct {
	Kind     IntentKind
	Move     string // move name
	TargetID string // runtime ID; ignored by multi-target moves, self when empty on heals
}

// UseMove builds an attack or heal intent
func UseMove(move, targetID string) *Intent {
	return &Intent{Kind: IntentAttack, Move: move, TargetID: targetID}
}

// Persuade builds a persuade intent
func Persuade() *Intent {
	return &Intent{Kind: IntentPersuade}
}

// ActionRequest describes the turn a player must decide
type ActionRequest struct {
	BattleID string
	Round    int
	Actor    *entities.Runtime
	Moves    []*entities.MoveDefinition // usable moves
	Targets  []*entities.Runtime        // living opponents
	Allies   []*entities.Runtime        // living teammates, actor included
	// CanPersuade is true while a recruitment target can still be persuaded
	CanPersuade bool
	// Problem explains why the previous answer was rejected
	Problem string
	Retry   int
}

// ReplaceChoice answers a replacement prompt: a slot or roster index, or Decline
type ReplaceChoice = progression.Choice

// action is one queued (actor, move, target) triple
type action struct {
	actor  *entities.Runtime
	move   *entities.MoveDefinition
	target *entities.Runtime
}

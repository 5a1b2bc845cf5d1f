package battle

//go:generate mockgen -destination=mock/mock.go -package=mockbattle -source=interfaces.go

import (
	"context"
)

// Presenter displays what happens in battle. Calls are fire-and-forget.
type Presenter interface {
	ShowMessage(text string)
	Highlight(entityID string, on bool)
	RemoveEntity(entityID string)
}

// InputProvider supplies decisions for the player side. Each call blocks
// until an answer is available or ctx is done.
type InputProvider interface {
	RequestAction(ctx context.Context, req *ActionRequest) (*Intent, error)
	RequestMoveReplacement(ctx context.Context, current []string, newMove string) (ReplaceChoice, error)
	RequestRosterReplacement(ctx context.Context, roster []string, recruit string) (ReplaceChoice, error)
}

// EncounterDriver is told exactly once when a battle ends
type EncounterDriver interface {
	OnBattleComplete(outcome *Outcome)
}

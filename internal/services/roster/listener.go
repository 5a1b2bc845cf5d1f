package roster

import (
	"context"
	"log"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/events"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/records"
)

// Listener saves a player's record whenever the bus reports a change to it
type Listener struct {
	repository records.Repository
	party      func() []*entities.Runtime
	ctx        context.Context
}

// ListenerConfig holds dependencies for the listener
type ListenerConfig struct {
	Repository records.Repository
	// Party returns the live player roster; positions become record slots
	Party func() []*entities.Runtime
}

// NewListener creates a persistence listener
func NewListener(ctx context.Context, cfg *ListenerConfig) *Listener {
	if cfg == nil || cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Party == nil {
		panic("party accessor is required")
	}
	return &Listener{
		repository: cfg.Repository,
		party:      cfg.Party,
		ctx:        ctx,
	}
}

// Subscribe registers the listener for every state-changing event
func (l *Listener) Subscribe(bus *events.Bus) {
	bus.Subscribe(l,
		events.EventTypeDamageApplied,
		events.EventTypeHealed,
		events.EventTypeEffectTicked,
		events.EventTypeLevelUp,
		events.EventTypeMoveLearned,
	)
}

// HandleEvent implements events.EventListener
func (l *Listener) HandleEvent(event events.Event) error {
	var changed *entities.Runtime
	switch e := event.(type) {
	case *events.DamageAppliedEvent:
		changed = e.Target
	case *events.HealedEvent:
		changed = e.Target
	case *events.EffectTickedEvent:
		changed = e.Target
	case *events.LevelUpEvent:
		changed = e.Runtime
	case *events.MoveLearnedEvent:
		changed = e.Runtime
	default:
		return nil
	}
	if changed == nil || changed.Side != entities.SidePlayer {
		return nil
	}

	for slot, member := range l.party() {
		if member != changed {
			continue
		}
		if err := l.repository.Save(l.ctx, SaveFromRuntime(member, slot)); err != nil {
			log.Printf("Roster: failed to save %s after %s: %v", member.Name(), event.GetType(), err)
			return err
		}
		return nil
	}

	return nil
}

// Priority implements events.EventListener
func (l *Listener) Priority() int {
	return events.PriorityPersistence
}

// ID implements events.EventListener
func (l *Listener) ID() string {
	return "roster-persistence"
}

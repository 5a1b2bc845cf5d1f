package battle

import (
	"fmt"

	"github.com/KirkDiggler/rpg-battle/internal/events"
)

// PresenterListener turns bus events into Presenter calls
type PresenterListener struct {
	presenter Presenter
}

// NewPresenterListener creates a listener that drives presenter
func NewPresenterListener(presenter Presenter) *PresenterListener {
	if presenter == nil {
		panic("presenter is required")
	}
	return &PresenterListener{presenter: presenter}
}

// Subscribe registers the listener for every event it can display
func (l *PresenterListener) Subscribe(bus *events.Bus) {
	bus.Subscribe(l,
		events.EventTypeMessage,
		events.EventTypeHighlight,
		events.EventTypeBattleStarted,
		events.EventTypeRoundStarted,
		events.EventTypeBattleCompleted,
		events.EventTypeActionSkipped,
		events.EventTypeAttackMissed,
		events.EventTypeDamageApplied,
		events.EventTypeHealed,
		events.EventTypeEntityRemoved,
		events.EventTypeEffectApplied,
		events.EventTypeEffectTicked,
		events.EventTypeEffectExpired,
		events.EventTypeXPGained,
		events.EventTypeLevelUp,
		events.EventTypeMoveLearned,
		events.EventTypePersuadeAttempted,
		events.EventTypeRecruitJoined,
		events.EventTypeMemberReleased,
	)
}

// HandleEvent implements events.EventListener
func (l *PresenterListener) HandleEvent(event events.Event) error {
	switch e := event.(type) {
	case *events.HighlightEvent:
		l.presenter.Highlight(e.EntityID, e.On)
		return nil
	case *events.EntityRemovedEvent:
		l.presenter.ShowMessage(fmt.Sprintf("%s %s!", e.Entity.Name(), e.Reason))
		l.presenter.RemoveEntity(e.Entity.ID)
		return nil
	}

	if text := Describe(event); text != "" {
		l.presenter.ShowMessage(text)
	}
	return nil
}

// Priority implements events.EventListener
func (l *PresenterListener) Priority() int {
	return events.PriorityPresentation
}

// ID implements events.EventListener
func (l *PresenterListener) ID() string {
	return "presenter"
}

// Describe renders an event as a line of battle text. Events with nothing
// to say return "".
func Describe(event events.Event) string {
	switch e := event.(type) {
	case *events.MessageEvent:
		return e.Text
	case *events.BattleStartedEvent:
		return fmt.Sprintf("A battle begins! %d against %d.", len(e.Players), len(e.Enemies))
	case *events.RoundStartedEvent:
		return fmt.Sprintf("--- Round %d ---", e.Round)
	case *events.BattleCompletedEvent:
		return fmt.Sprintf("The battle is over: %s after %d rounds.", e.Result, e.Rounds)
	case *events.ActionSkippedEvent:
		return fmt.Sprintf("%s loses the turn (%s).", e.Actor.Name(), e.Reason)
	case *events.AttackMissedEvent:
		return fmt.Sprintf("%s used %s on %s, but missed!", e.Actor.Name(), e.Move.Name, e.Target.Name())
	case *events.DamageAppliedEvent:
		text := fmt.Sprintf("%s used %s on %s for %d damage.", e.Actor.Name(), e.Move.Name, e.Target.Name(), e.Damage)
		switch {
		case e.IsCritical():
			text += " Critical hit!"
		case e.IsWeak():
			text += " A glancing blow."
		}
		return text
	case *events.HealedEvent:
		return fmt.Sprintf("%s used %s; %s recovers %d HP.", e.Actor.Name(), e.Move.Name, e.Target.Name(), e.Amount)
	case *events.EffectAppliedEvent:
		return fmt.Sprintf("%s is afflicted with %s for %d rounds.", e.Target.Name(), e.Kind, e.Duration)
	case *events.EffectTickedEvent:
		if e.Result.Damage > 0 {
			return fmt.Sprintf("%s takes %d damage from %s.", e.Target.Name(), e.Result.Damage, e.Result.Kind)
		}
		return ""
	case *events.EffectExpiredEvent:
		return fmt.Sprintf("%s is no longer affected by %s.", e.Target.Name(), e.Kind)
	case *events.XPGainedEvent:
		return fmt.Sprintf("%s gains %d XP.", e.Runtime.Name(), e.Amount)
	case *events.LevelUpEvent:
		return fmt.Sprintf("%s reached level %d!", e.Runtime.Name(), e.Level)
	case *events.MoveLearnedEvent:
		if e.Replaced != nil {
			return fmt.Sprintf("%s forgot %s and learned %s!", e.Runtime.Name(), e.Replaced.Name, e.Move.Name)
		}
		return fmt.Sprintf("%s learned %s!", e.Runtime.Name(), e.Move.Name)
	case *events.PersuadeAttemptedEvent:
		if e.Succeeded {
			return fmt.Sprintf("%s persuaded %s!", e.Actor.Name(), e.Target.Name())
		}
		return fmt.Sprintf("%s tried to persuade %s, but it refused.", e.Actor.Name(), e.Target.Name())
	case *events.RecruitJoinedEvent:
		return fmt.Sprintf("%s joined the party!", e.Recruit.Name())
	case *events.MemberReleasedEvent:
		return fmt.Sprintf("%s left the party.", e.Member.Name())
	}
	return ""
}

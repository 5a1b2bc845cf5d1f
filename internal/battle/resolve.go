package battle

import (
	"context"
	"log"
	"sort"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	dnderr "github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/events"
)

// order sorts actions by the actor's current speed, fastest first. Equal
// speeds keep collection order: players in roster order, then enemies.
func order(actions []*action) []*action {
	sorted := append([]*action{}, actions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].actor.Speed > sorted[j].actor.Speed
	})
	return sorted
}

// resolve runs every action in speed order
func (s *Session) resolve(ctx context.Context, actions []*action) error {
	for i, act := range order(actions) {
		if i > 0 {
			if err := s.pause(ctx); err != nil {
				return err
			}
		}

		if err := s.resolveAction(act); err != nil {
			if dnderr.IsStateInconsistency(err) {
				log.Printf("Battle %s: %v", s.id, err)
				continue
			}
			return err
		}
	}
	return nil
}

func (s *Session) resolveAction(act *action) error {
	actor := act.actor
	if !actor.IsAlive() || !s.inBattle(actor) {
		return dnderr.StateInconsistencyf("%s left the battle before acting", actor.Name())
	}
	if actor.IsStunned() {
		s.skip(actor, "stunned")
		return nil
	}
	if !actor.CanUse(act.move) {
		s.skip(actor, act.move.Name+" is exhausted")
		return nil
	}

	s.highlight(actor, true)
	defer s.highlight(actor, false)

	switch {
	case act.move.Heal:
		if act.target == nil || !act.target.IsAlive() || !s.inBattle(act.target) {
			s.skip(actor, "heal target is down")
			return nil
		}
		actor.RecordUse(act.move)
		s.heal(actor, act.move, act.target)

	case act.move.MultiTarget:
		targets := s.opponentsOf(actor)
		if len(targets) == 0 {
			return nil
		}
		actor.RecordUse(act.move)
		for _, target := range targets {
			if err := s.strike(actor, act.move, target); err != nil {
				return err
			}
		}

	default:
		if act.target == nil || !act.target.IsAlive() || !s.inBattle(act.target) {
			s.skip(actor, "target is already down")
			return nil
		}
		actor.RecordUse(act.move)
		return s.strike(actor, act.move, act.target)
	}

	return nil
}

// strike rolls the hit die and applies damage and any on-hit effect
func (s *Session) strike(actor *entities.Runtime, move *entities.MoveDefinition, target *entities.Runtime) error {
	roll, err := s.roller.Roll(1, DieSides, 0)
	if err != nil {
		return dnderr.Wrapf(err, "failed to roll for %s", actor.Name())
	}
	die := roll.Total

	multiplier, hit := Multiplier(die)
	if !hit {
		s.emit(&events.AttackMissedEvent{
			BaseEvent: s.base(events.EventTypeAttackMissed),
			Actor:     actor,
			Target:    target,
			Move:      move,
		})
		return nil
	}

	damage := FinalDamage(BaseDamage(move.Power, actor.Attack, target.Defense), multiplier)
	target.TakeDamage(damage)
	s.emit(&events.DamageAppliedEvent{
		BaseEvent:  s.base(events.EventTypeDamageApplied),
		Actor:      actor,
		Target:     target,
		Move:       move,
		Die:        die,
		Multiplier: multiplier,
		Damage:     damage,
	})

	if !target.IsAlive() {
		s.knockout(target)
		return nil
	}

	if move.HasEffect() {
		draw, err := s.roller.Draw()
		if err != nil {
			return dnderr.Wrapf(err, "failed to draw effect chance for %s", move.Name)
		}
		if draw < move.EffectChance && target.Effects.Apply(target, move.Effect, move.EffectDuration) {
			s.emit(&events.EffectAppliedEvent{
				BaseEvent: s.base(events.EventTypeEffectApplied),
				Target:    target,
				Kind:      move.Effect,
				Duration:  move.EffectDuration,
			})
		}
	}

	return nil
}

func (s *Session) heal(actor *entities.Runtime, move *entities.MoveDefinition, target *entities.Runtime) {
	restored := target.Heal(HealAmount(move.Power, actor.Attack))
	s.emit(&events.HealedEvent{
		BaseEvent: s.base(events.EventTypeHealed),
		Actor:     actor,
		Target:    target,
		Move:      move,
		Amount:    restored,
	})
}

// knockout removes a fallen participant. Enemy knockouts pay out XP to the
// surviving party straight away.
func (s *Session) knockout(victim *entities.Runtime) {
	victim.ClearEffects()

	if victim.Side == entities.SidePlayer {
		s.emit(&events.EntityRemovedEvent{
			BaseEvent: s.base(events.EventTypeEntityRemoved),
			Entity:    victim,
			Reason:    "knocked out",
		})
		return
	}

	if s.recruitment != nil && s.recruitment.IsTarget(victim) {
		s.recruitment.TargetDefeated()
	}
	s.removeEnemy(victim)
	s.emit(&events.EntityRemovedEvent{
		BaseEvent: s.base(events.EventTypeEntityRemoved),
		Entity:    victim,
		Reason:    "defeated",
	})

	s.progression.GrantXP(victim.Definition, s.Players())
}

// tickEffects runs one round of status effects on every living participant
func (s *Session) tickEffects() {
	for _, r := range append(s.Players(), s.Enemies()...) {
		if !r.IsAlive() || r.Effects == nil {
			continue
		}

		for _, result := range r.Effects.Tick(r) {
			s.emit(&events.EffectTickedEvent{
				BaseEvent: s.base(events.EventTypeEffectTicked),
				Target:    r,
				Result:    result,
			})
			if result.Expired {
				s.emit(&events.EffectExpiredEvent{
					BaseEvent: s.base(events.EventTypeEffectExpired),
					Target:    r,
					Kind:      result.Kind,
				})
			}
		}

		if !r.IsAlive() {
			s.knockout(r)
		}
	}
}

func (s *Session) skip(actor *entities.Runtime, reason string) {
	s.emit(&events.ActionSkippedEvent{
		BaseEvent: s.base(events.EventTypeActionSkipped),
		Actor:     actor,
		Reason:    reason,
	})
}

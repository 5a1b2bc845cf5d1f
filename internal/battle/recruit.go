package battle

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	dnderr "github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/events"
	"github.com/KirkDiggler/rpg-battle/internal/recruitment"
	"github.com/KirkDiggler/rpg-battle/internal/services/roster"
)

// persuade spends one persuasion attempt for player. Success or running
// out of attempts ends the encounter.
func (s *Session) persuade(ctx context.Context, player *entities.Runtime) error {
	if s.recruitment == nil {
		return dnderr.InvalidCommand("there is no one to persuade in this battle")
	}
	if s.recruitment.State() != recruitment.StateActive {
		return dnderr.InvalidCommandf("persuasion is over (%s)", s.recruitment.State())
	}

	draw, err := s.roller.Draw()
	if err != nil {
		return dnderr.Wrap(err, "failed to draw persuasion roll")
	}
	result, err := s.recruitment.Attempt(draw)
	if err != nil {
		return err
	}

	target := s.recruitment.Target()
	s.emit(&events.PersuadeAttemptedEvent{
		BaseEvent: s.base(events.EventTypePersuadeAttempted),
		Actor:     player,
		Target:    target,
		Chance:    result.Chance,
		Draw:      result.Draw,
		Succeeded: result.Succeeded,
		Attempt:   result.Attempt,
	})

	switch result.State {
	case recruitment.StateSucceeded:
		if err := s.join(ctx, target); err != nil {
			return err
		}
		s.setState(StateRecruited)
	case recruitment.StateFailed:
		s.removeEnemy(target)
		target.ClearEffects()
		s.emit(&events.EntityRemovedEvent{
			BaseEvent: s.base(events.EventTypeEntityRemoved),
			Entity:    target,
			Reason:    "fled",
		})
		s.setState(StateTargetFled)
	}

	return nil
}

// join moves a persuaded enemy to the player side. A full party asks the
// player who to release; declining leaves the recruit behind, as does a
// party member with the same name.
func (s *Session) join(ctx context.Context, recruit *entities.Runtime) error {
	s.removeEnemy(recruit)
	s.emit(&events.EntityRemovedEvent{
		BaseEvent: s.base(events.EventTypeEntityRemoved),
		Entity:    recruit,
		Reason:    "recruited",
	})

	recruit.ClearEffects()
	recruit.ResetUsage()

	// records are keyed by name, a second member with it would overwrite the first
	players := s.Players()
	for _, p := range players {
		if p.Name() == recruit.Name() {
			s.message(fmt.Sprintf("%s wanders off; the party already has a %s", recruit.Name(), recruit.Name()))
			return nil
		}
	}

	recruit.Side = entities.SidePlayer
	recruit.ID = recruit.Definition.Key

	if len(players) < roster.MaxPartySize {
		s.mu.Lock()
		s.players = append(s.players, recruit)
		s.recruit = recruit
		s.mu.Unlock()
		s.emitJoined(recruit)
		return nil
	}

	slot, err := s.askRosterReplacement(ctx, players, recruit)
	if err != nil {
		return err
	}
	if slot < 0 {
		s.message(fmt.Sprintf("%s wanders off; the party is full", recruit.Name()))
		return nil
	}

	released := players[slot]
	s.mu.Lock()
	s.players[slot] = recruit
	s.recruit = recruit
	s.mu.Unlock()

	released.ClearEffects()
	s.emit(&events.MemberReleasedEvent{
		BaseEvent: s.base(events.EventTypeMemberReleased),
		Member:    released,
	})
	if s.roster != nil {
		if err := s.roster.Release(ctx, released.Name()); err != nil {
			log.Printf("Battle %s: failed to release %s: %v", s.id, released.Name(), err)
		}
	}
	s.emitJoined(recruit)

	return nil
}

// askRosterReplacement returns the roster index to release, or -1 on
// decline. Timeouts count as a decline; so do repeated invalid answers.
func (s *Session) askRosterReplacement(ctx context.Context, players []*entities.Runtime, recruit *entities.Runtime) (int, error) {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name()
	}

	for attempt := 0; attempt <= MaxInvalidCommands; attempt++ {
		choice, err := s.requestRosterReplacement(ctx, names, recruit.Name())
		if err != nil {
			return 0, err
		}
		if choice.Decline {
			return -1, nil
		}
		if choice.Index >= 0 && choice.Index < len(players) {
			return choice.Index, nil
		}
		s.message(fmt.Sprintf("There is no party slot %d", choice.Index))
	}

	return -1, nil
}

func (s *Session) requestRosterReplacement(ctx context.Context, names []string, recruit string) (ReplaceChoice, error) {
	promptCtx := ctx
	if s.replacementTimeout > 0 {
		var cancel context.CancelFunc
		promptCtx, cancel = context.WithTimeout(ctx, s.replacementTimeout)
		defer cancel()
	}

	choice, err := s.input.RequestRosterReplacement(promptCtx, names, recruit)
	if err == nil {
		return choice, nil
	}
	if ctx.Err() != nil {
		return ReplaceChoice{}, ctx.Err()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		log.Printf("Battle %s: roster replacement for %s timed out", s.id, recruit)
		return ReplaceChoice{Decline: true}, nil
	}
	log.Printf("Battle %s: roster replacement for %s failed, declining: %v", s.id, recruit, err)
	return ReplaceChoice{Decline: true}, nil
}

func (s *Session) emitJoined(recruit *entities.Runtime) {
	s.emit(&events.RecruitJoinedEvent{
		BaseEvent: s.base(events.EventTypeRecruitJoined),
		Recruit:   recruit,
	})
}

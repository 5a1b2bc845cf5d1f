package battle

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/rpg-battle/internal/dice"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	dnderr "github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/recruitment"
)

// collectPlayerActions prompts every living player in roster order. It
// only returns an error when ctx is done. A persuade that settles the
// recruitment leaves the session in a terminal state.
func (s *Session) collectPlayerActions(ctx context.Context) ([]*action, error) {
	var actions []*action

	for _, player := range s.Players() {
		if !player.IsAlive() {
			continue
		}

		s.highlight(player, true)
		act, err := s.promptPlayer(ctx, player)
		s.highlight(player, false)
		if err != nil {
			return nil, err
		}
		if act != nil {
			actions = append(actions, act)
		}
		if s.State().IsTerminal() {
			return actions, nil
		}
	}

	return actions, nil
}

// promptPlayer asks for one turn, re-prompting on invalid answers. A nil
// action means the turn was spent or skipped.
func (s *Session) promptPlayer(ctx context.Context, player *entities.Runtime) (*action, error) {
	req := &ActionRequest{
		BattleID:    s.id,
		Round:       s.Round(),
		Actor:       player,
		Moves:       player.UsableMoves(),
		Targets:     s.opponentsOf(player),
		Allies:      s.alliesOf(player),
		CanPersuade: s.recruitment != nil && s.recruitment.State() == recruitment.StateActive,
	}

	for req.Retry <= MaxInvalidCommands {
		intent, err := s.input.RequestAction(ctx, req)
		if err != nil {
			if isCancellation(ctx, err) {
				return nil, ctx.Err()
			}
			log.Printf("Battle %s: input for %s failed, skipping turn: %v", s.id, player.Name(), err)
			s.skip(player, "no command")
			return nil, nil
		}

		act, err := s.intentToAction(ctx, player, intent)
		if err == nil {
			return act, nil
		}
		if isCancellation(ctx, err) {
			return nil, ctx.Err()
		}
		if !dnderr.Recoverable(err) {
			log.Printf("Battle %s: %s's command failed: %v", s.id, player.Name(), err)
			s.skip(player, "command failed")
			return nil, nil
		}

		req.Retry++
		req.Problem = err.Error()
		req.Moves = player.UsableMoves()
		req.Targets = s.opponentsOf(player)
		s.message(fmt.Sprintf("%s can't do that: %s", player.Name(), err.Error()))
	}

	s.skip(player, "too many invalid commands")
	return nil, nil
}

// intentToAction validates intent. Persuade intents run immediately and
// return a nil action.
func (s *Session) intentToAction(ctx context.Context, player *entities.Runtime, intent *Intent) (*action, error) {
	if intent == nil {
		return nil, dnderr.InvalidCommand("no command given")
	}

	switch intent.Kind {
	case IntentPersuade:
		return nil, s.persuade(ctx, player)
	case IntentAttack, "":
	default:
		return nil, dnderr.InvalidCommandf("unknown command %q", intent.Kind)
	}

	move, ok := player.MoveByName(intent.Move)
	if !ok {
		return nil, dnderr.InvalidCommandf("%s doesn't know %s", player.Name(), intent.Move)
	}
	if !player.CanUse(move) {
		return nil, dnderr.InvalidCommandf("%s has no uses of %s left", player.Name(), move.Name)
	}

	if move.MultiTarget && !move.Heal {
		return &action{actor: player, move: move}, nil
	}

	target, err := s.resolveTarget(player, move, intent.TargetID)
	if err != nil {
		return nil, err
	}

	return &action{actor: player, move: move, target: target}, nil
}

func (s *Session) resolveTarget(actor *entities.Runtime, move *entities.MoveDefinition, targetID string) (*entities.Runtime, error) {
	if move.Heal && targetID == "" {
		return actor, nil
	}

	var target *entities.Runtime
	for _, r := range append(s.Players(), s.Enemies()...) {
		if r.ID == targetID {
			target = r
			break
		}
	}
	if target == nil {
		return nil, dnderr.InvalidCommandf("no target %q in this battle", targetID)
	}
	if !target.IsAlive() {
		return nil, dnderr.InvalidCommandf("%s is already down", target.Name())
	}

	wantSide := actor.Side.Opponent()
	if move.Heal {
		wantSide = actor.Side
	}
	if target.Side != wantSide {
		return nil, dnderr.InvalidCommandf("%s can't target %s with %s", actor.Name(), target.Name(), move.Name)
	}

	return target, nil
}

// collectEnemyActions picks a uniform random usable move and target for
// every living enemy
func (s *Session) collectEnemyActions() ([]*action, error) {
	var actions []*action

	for _, enemy := range s.Enemies() {
		if !enemy.IsAlive() {
			continue
		}

		moves := enemy.UsableMoves()
		if len(moves) == 0 {
			s.skip(enemy, "no usable moves")
			continue
		}
		idx, err := dice.Pick(s.roller, len(moves))
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to pick a move for %s", enemy.Name())
		}
		move := moves[idx]

		act := &action{actor: enemy, move: move}
		if !move.MultiTarget || move.Heal {
			pool := s.opponentsOf(enemy)
			if move.Heal {
				pool = s.alliesOf(enemy)
			}
			if len(pool) == 0 {
				continue
			}
			idx, err := dice.Pick(s.roller, len(pool))
			if err != nil {
				return nil, dnderr.Wrapf(err, "failed to pick a target for %s", enemy.Name())
			}
			act.target = pool[idx]
		}
		actions = append(actions, act)
	}

	return actions, nil
}

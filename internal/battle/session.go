// Package battle runs one encounter: command collection, speed ordered
// resolution, status effect ticks and the terminal checks.
package battle

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-battle/internal/dice"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	dnderr "github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/events"
	"github.com/KirkDiggler/rpg-battle/internal/progression"
	"github.com/KirkDiggler/rpg-battle/internal/recruitment"
	"github.com/KirkDiggler/rpg-battle/internal/services/roster"
	"github.com/KirkDiggler/rpg-battle/internal/uuid"
)

// MaxInvalidCommands is how many times a rejected answer is re-prompted
// before the turn is skipped
const MaxInvalidCommands = 3

// Session is a single battle. Run drives it to completion on the calling
// goroutine; the accessors are safe to call from other goroutines.
type Session struct {
	id string

	input       InputProvider
	driver      EncounterDriver
	roster      roster.Service
	progression *progression.Engine
	bus         *events.Bus
	roller      dice.Roller

	recruitment        *recruitment.Machine
	actionDelay        time.Duration
	replacementTimeout time.Duration

	mu      sync.RWMutex
	state   State
	round   int
	players []*entities.Runtime
	enemies []*entities.Runtime
	recruit *entities.Runtime
	outcome *Outcome
	ran     bool
}

// SessionConfig holds dependencies and rosters for a battle
type SessionConfig struct {
	Players []*entities.Runtime
	Enemies []*entities.Runtime

	Input  InputProvider
	Driver EncounterDriver
	// Roster persists the party at battle end and forgets released members
	Roster      roster.Service
	Progression *progression.Engine
	Bus         *events.Bus
	Roller      dice.Roller

	UUIDGenerator uuid.Generator

	// RecruitTarget makes this a recruitment battle. It must be one of Enemies.
	RecruitTarget       *entities.Runtime
	MaxPersuadeAttempts int

	ActionDelay        time.Duration
	ReplacementTimeout time.Duration
}

// NewSession validates the rosters and builds a battle ready to Run
func NewSession(cfg *SessionConfig) (*Session, error) {
	if cfg == nil {
		return nil, dnderr.Configurationf("session config is required")
	}
	if cfg.Input == nil {
		return nil, dnderr.Configurationf("input provider is required")
	}
	if len(cfg.Players) == 0 {
		return nil, dnderr.Configurationf("player roster is empty")
	}
	if len(cfg.Enemies) == 0 {
		return nil, dnderr.Configurationf("enemy roster is empty")
	}
	for _, r := range append(append([]*entities.Runtime{}, cfg.Players...), cfg.Enemies...) {
		if r == nil || r.Definition == nil {
			return nil, dnderr.Configurationf("roster entry is missing its definition")
		}
	}

	s := &Session{
		input:              cfg.Input,
		driver:             cfg.Driver,
		roster:             cfg.Roster,
		progression:        cfg.Progression,
		bus:                cfg.Bus,
		roller:             cfg.Roller,
		actionDelay:        cfg.ActionDelay,
		replacementTimeout: cfg.ReplacementTimeout,
		state:              StateIdle,
		players:            append([]*entities.Runtime{}, cfg.Players...),
		enemies:            append([]*entities.Runtime{}, cfg.Enemies...),
	}

	generator := cfg.UUIDGenerator
	if generator == nil {
		generator = uuid.NewGoogleUUIDGenerator()
	}
	s.id = uuid.Prefixed(generator, "battle")

	if s.bus == nil {
		s.bus = events.NewBus()
	}
	if s.roller == nil {
		s.roller = dice.NewRandomRoller()
	}
	if s.progression == nil {
		s.progression = progression.NewEngine(&progression.EngineConfig{Bus: s.bus})
	}

	if cfg.RecruitTarget != nil {
		if !contains(s.enemies, cfg.RecruitTarget) {
			return nil, dnderr.Configurationf("recruit target %s is not in the enemy roster", cfg.RecruitTarget.Name())
		}
		s.recruitment = recruitment.NewMachine(cfg.MaxPersuadeAttempts)
		if err := s.recruitment.Begin(cfg.RecruitTarget); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// ID returns the battle ID
func (s *Session) ID() string {
	return s.id
}

// Bus returns the event bus the session emits on
func (s *Session) Bus() *events.Bus {
	return s.bus
}

// State returns the current state
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Round returns the current round, 0 before the first
func (s *Session) Round() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.round
}

// Players returns the player roster
func (s *Session) Players() []*entities.Runtime {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*entities.Runtime{}, s.players...)
}

// Enemies returns the enemies still in the encounter
func (s *Session) Enemies() []*entities.Runtime {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*entities.Runtime{}, s.enemies...)
}

// Outcome returns the result once the battle is over, nil before
func (s *Session) Outcome() *Outcome {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.outcome
}

// Recruitment returns the persuasion state machine, nil outside recruitment battles
func (s *Session) Recruitment() *recruitment.Machine {
	return s.recruitment
}

// Run plays the battle until a terminal state or ctx is cancelled. A
// session can only run once.
func (s *Session) Run(ctx context.Context) (*Outcome, error) {
	s.mu.Lock()
	if s.ran {
		s.mu.Unlock()
		return nil, dnderr.StateInconsistencyf("battle %s already ran", s.id)
	}
	s.ran = true
	s.mu.Unlock()

	s.progression.SetBattleID(s.id)
	for _, r := range s.Players() {
		r.ResetUsage()
	}
	for _, r := range s.Enemies() {
		r.ResetUsage()
	}

	log.Printf("Battle %s: starting with %d players vs %d enemies", s.id, len(s.Players()), len(s.Enemies()))
	s.emit(&events.BattleStartedEvent{
		BaseEvent: s.base(events.EventTypeBattleStarted),
		Players:   s.Players(),
		Enemies:   s.Enemies(),
	})

	for {
		if err := ctx.Err(); err != nil {
			return s.cancel(err)
		}

		round := s.nextRound()
		s.emit(&events.RoundStartedEvent{
			BaseEvent: s.base(events.EventTypeRoundStarted),
			Round:     round,
		})

		s.setState(StateCollectingPlayerActions)
		actions, err := s.collectPlayerActions(ctx)
		if err != nil {
			return s.cancel(err)
		}
		if st := s.State(); st.IsTerminal() {
			return s.finish(ctx, resultFor(st))
		}

		s.setState(StateCollectingEnemyActions)
		enemyActions, err := s.collectEnemyActions()
		if err != nil {
			return s.fail(err)
		}
		actions = append(actions, enemyActions...)

		s.setState(StateResolving)
		if err := s.resolve(ctx, actions); err != nil {
			if ctx.Err() != nil {
				return s.cancel(ctx.Err())
			}
			return s.fail(err)
		}
		if result, done := s.terminal(); done {
			return s.finish(ctx, result)
		}

		s.tickEffects()
		if result, done := s.terminal(); done {
			return s.finish(ctx, result)
		}
	}
}

func (s *Session) nextRound() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.round++
	return s.round
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

// terminal checks the win and loss conditions. A wiped party loses even if
// the last enemy fell in the same pass.
func (s *Session) terminal() (Result, bool) {
	if len(living(s.Players())) == 0 {
		return ResultDefeat, true
	}
	if len(living(s.Enemies())) == 0 {
		return ResultVictory, true
	}
	return "", false
}

func resultFor(state State) Result {
	switch state {
	case StateRecruited:
		return ResultRecruited
	case StateTargetFled:
		return ResultTargetFled
	case StateDefeat:
		return ResultDefeat
	case StateCancelled:
		return ResultCancelled
	}
	return ResultVictory
}

func stateFor(result Result) State {
	switch result {
	case ResultDefeat:
		return StateDefeat
	case ResultRecruited:
		return StateRecruited
	case ResultTargetFled:
		return StateTargetFled
	case ResultCancelled:
		return StateCancelled
	}
	return StateVictory
}

// finish settles pending move decisions, persists the party and notifies
// the driver. It runs exactly once per battle.
func (s *Session) finish(ctx context.Context, result Result) (*Outcome, error) {
	s.setState(stateFor(result))
	log.Printf("Battle %s: %s after %d rounds", s.id, result, s.Round())

	players := s.Players()
	for _, r := range players {
		r.ClearEffects()
	}

	if err := s.progression.Drain(ctx, s.input, s.replacementTimeout); err != nil {
		if ctx.Err() != nil {
			return s.cancel(ctx.Err())
		}
		log.Printf("Battle %s: failed to settle move decisions: %v", s.id, err)
	}

	if s.roster != nil {
		if err := s.roster.Persist(ctx, players); err != nil {
			log.Printf("Battle %s: failed to persist party: %v", s.id, err)
		}
	}

	outcome := &Outcome{
		BattleID: s.id,
		Result:   result,
		Rounds:   s.Round(),
		Players:  players,
	}
	s.mu.Lock()
	outcome.Recruit = s.recruit
	s.outcome = outcome
	s.mu.Unlock()

	s.emit(&events.BattleCompletedEvent{
		BaseEvent: s.base(events.EventTypeBattleCompleted),
		Result:    string(result),
		Rounds:    outcome.Rounds,
	})

	if s.driver != nil {
		s.driver.OnBattleComplete(outcome)
	}

	return outcome, nil
}

// cancel abandons the battle without persisting or notifying the driver
func (s *Session) cancel(cause error) (*Outcome, error) {
	if cause == nil {
		cause = context.Canceled
	}
	s.setState(StateCancelled)
	log.Printf("Battle %s: cancelled in round %d", s.id, s.Round())

	outcome := &Outcome{
		BattleID: s.id,
		Result:   ResultCancelled,
		Rounds:   s.Round(),
		Players:  s.Players(),
	}
	s.mu.Lock()
	s.outcome = outcome
	s.mu.Unlock()

	return outcome, dnderr.Cancelled(cause, "battle cancelled")
}

func (s *Session) fail(err error) (*Outcome, error) {
	s.setState(StateCancelled)
	log.Printf("Battle %s: aborted: %v", s.id, err)
	return nil, dnderr.Wrapf(err, "battle %s aborted", s.id)
}

// pause waits out the action delay. It returns early when ctx is done.
func (s *Session) pause(ctx context.Context) error {
	if s.actionDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.actionDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Session) base(t events.EventType) events.BaseEvent {
	return events.BaseEvent{Type: t, BattleID: s.id}
}

func (s *Session) emit(event events.Event) {
	// listener failures are logged by the bus and never stop the battle
	_ = s.bus.Emit(event)
}

func (s *Session) message(text string) {
	s.emit(&events.MessageEvent{
		BaseEvent: s.base(events.EventTypeMessage),
		Text:      text,
	})
}

func (s *Session) highlight(r *entities.Runtime, on bool) {
	s.emit(&events.HighlightEvent{
		BaseEvent: s.base(events.EventTypeHighlight),
		EntityID:  r.ID,
		On:        on,
	})
}

func (s *Session) removeEnemy(r *entities.Runtime) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.enemies {
		if e == r {
			s.enemies = append(s.enemies[:i], s.enemies[i+1:]...)
			return
		}
	}
}

func (s *Session) inBattle(r *entities.Runtime) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return contains(s.players, r) || contains(s.enemies, r)
}

func (s *Session) opponentsOf(r *entities.Runtime) []*entities.Runtime {
	if r.Side == entities.SidePlayer {
		return living(s.Enemies())
	}
	return living(s.Players())
}

func (s *Session) alliesOf(r *entities.Runtime) []*entities.Runtime {
	if r.Side == entities.SidePlayer {
		return living(s.Players())
	}
	return living(s.Enemies())
}

func living(rs []*entities.Runtime) []*entities.Runtime {
	alive := make([]*entities.Runtime, 0, len(rs))
	for _, r := range rs {
		if r.IsAlive() {
			alive = append(alive, r)
		}
	}
	return alive
}

func contains(rs []*entities.Runtime, target *entities.Runtime) bool {
	for _, r := range rs {
		if r == target {
			return true
		}
	}
	return false
}

func isCancellation(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.Canceled)
}

package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=mockencounter -source=service.go

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-battle/internal/battle"
	"github.com/KirkDiggler/rpg-battle/internal/content"
	"github.com/KirkDiggler/rpg-battle/internal/dice"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	dnderr "github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/events"
	"github.com/KirkDiggler/rpg-battle/internal/progression"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/records"
	"github.com/KirkDiggler/rpg-battle/internal/services/roster"
	"github.com/KirkDiggler/rpg-battle/internal/uuid"
)

// Service defines the encounter service interface
type Service interface {
	// Start spawns both rosters and runs the battle in the background. A
	// battle that is still running is cancelled and awaited first.
	Start(ctx context.Context, enc content.Encounter) (*battle.Session, error)

	// Wait blocks until the current battle ends
	Wait(ctx context.Context) (*battle.Outcome, error)

	// Stop cancels the current battle and waits for it to exit
	Stop()

	// Current returns the most recently started battle, nil before the first
	Current() *battle.Session

	// RunCampaign plays encounters in order until the party is defeated
	RunCampaign(ctx context.Context, steps []content.Encounter) (*CampaignResult, error)
}

// CampaignResult lists the outcome of every encounter that finished
type CampaignResult struct {
	Outcomes []*battle.Outcome
	// Completed is true when every encounter ended without a defeat
	Completed bool
}

type run struct {
	session *battle.Session
	cancel  context.CancelFunc
	done    chan struct{}
	outcome *battle.Outcome
	err     error
}

type service struct {
	roster        roster.Service
	input         battle.InputProvider
	driver        battle.EncounterDriver
	bus           *events.Bus
	progression   *progression.Engine
	roller        dice.Roller
	uuidGenerator uuid.Generator

	starters            []string
	maxPersuadeAttempts int
	actionDelay         time.Duration
	replacementTimeout  time.Duration

	startMu sync.Mutex
	mu      sync.Mutex
	current *run
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roster roster.Service       // Required
	Input  battle.InputProvider // Required
	// Starters seed the party when nothing is saved yet
	Starters []string // Required

	// Repository enables saving the party on every change, not just at battle end
	Repository records.Repository
	// Presenters are driven from the battle events
	Presenters []battle.Presenter
	// Driver is told about every finished battle after the service records it
	Driver battle.EncounterDriver

	Progression   *progression.Engine
	Curve         progression.Config
	Bus           *events.Bus
	Roller        dice.Roller
	UUIDGenerator uuid.Generator

	MaxPersuadeAttempts int
	ActionDelay         time.Duration
	ReplacementTimeout  time.Duration
}

// NewService creates a new encounter service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("config is required")
	}
	if cfg.Roster == nil {
		panic("roster service is required")
	}
	if cfg.Input == nil {
		panic("input provider is required")
	}
	if len(cfg.Starters) == 0 {
		panic("starters are required")
	}

	svc := &service{
		roster:              cfg.Roster,
		input:               cfg.Input,
		driver:              cfg.Driver,
		bus:                 cfg.Bus,
		progression:         cfg.Progression,
		roller:              cfg.Roller,
		starters:            append([]string{}, cfg.Starters...),
		maxPersuadeAttempts: cfg.MaxPersuadeAttempts,
		actionDelay:         cfg.ActionDelay,
		replacementTimeout:  cfg.ReplacementTimeout,
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.bus == nil {
		svc.bus = events.NewBus()
	}
	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if svc.progression == nil {
		svc.progression = progression.NewEngine(&progression.EngineConfig{
			Curve:         cfg.Curve,
			Bus:           svc.bus,
			UUIDGenerator: svc.uuidGenerator,
		})
	}

	for _, p := range cfg.Presenters {
		battle.NewPresenterListener(p).Subscribe(svc.bus)
	}
	if cfg.Repository != nil {
		roster.NewListener(context.Background(), &roster.ListenerConfig{
			Repository: cfg.Repository,
			Party:      svc.currentPlayers,
		}).Subscribe(svc.bus)
	}

	return svc
}

// Start spawns the rosters for enc and runs a new battle
func (s *service) Start(ctx context.Context, enc content.Encounter) (*battle.Session, error) {
	if len(enc.Enemies) == 0 {
		return nil, dnderr.InvalidArgument("encounter has no enemies")
	}

	s.startMu.Lock()
	defer s.startMu.Unlock()

	s.Stop()

	// move decisions left over from an interrupted battle are settled first
	if s.progression.LearningInProgress() {
		log.Printf("Encounter: settling %d pending move decisions before %s", s.progression.Pending(), enc.Name)
		if err := s.progression.Drain(ctx, s.input, s.replacementTimeout); err != nil {
			return nil, dnderr.Wrap(err, "failed to settle pending move decisions")
		}
	}

	players, err := s.roster.Spawn(ctx, s.starters)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to spawn party")
	}
	enemies, err := s.roster.SpawnEnemies(ctx, enc.Enemies, enc.Level)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to spawn enemies for %s", enc.Name)
	}

	var recruit *entities.Runtime
	if enc.Recruit != "" {
		for _, e := range enemies {
			if e.Definition.Key == enc.Recruit {
				recruit = e
				break
			}
		}
		if recruit == nil {
			return nil, dnderr.Configurationf("recruit %s is not among the enemies of %s", enc.Recruit, enc.Name)
		}
	}

	session, err := battle.NewSession(&battle.SessionConfig{
		Players:             players,
		Enemies:             enemies,
		Input:               s.input,
		Driver:              s,
		Roster:              s.roster,
		Progression:         s.progression,
		Bus:                 s.bus,
		Roller:              s.roller,
		UUIDGenerator:       s.uuidGenerator,
		RecruitTarget:       recruit,
		MaxPersuadeAttempts: s.maxPersuadeAttempts,
		ActionDelay:         s.actionDelay,
		ReplacementTimeout:  s.replacementTimeout,
	})
	if err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancel(ctx)
	r := &run{
		session: session,
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	s.mu.Lock()
	s.current = r
	s.mu.Unlock()

	log.Printf("Encounter: starting %s (battle %s)", enc.Name, session.ID())
	go func() {
		defer close(r.done)
		defer cancel()
		r.outcome, r.err = session.Run(runCtx)
	}()

	return session, nil
}

// Wait blocks until the current battle ends or ctx is done
func (s *service) Wait(ctx context.Context) (*battle.Outcome, error) {
	s.mu.Lock()
	r := s.current
	s.mu.Unlock()
	if r == nil {
		return nil, dnderr.StateInconsistencyf("no battle has been started")
	}

	select {
	case <-r.done:
		return r.outcome, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Stop cancels the running battle, if any, and waits for it to exit
func (s *service) Stop() {
	s.mu.Lock()
	r := s.current
	s.mu.Unlock()
	if r == nil {
		return
	}

	r.cancel()
	<-r.done
}

// Current returns the most recently started battle
func (s *service) Current() *battle.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	return s.current.session
}

// RunCampaign plays steps in order. Defeat ends the campaign early;
// victories, recruitments and fleeing targets move on to the next step.
func (s *service) RunCampaign(ctx context.Context, steps []content.Encounter) (*CampaignResult, error) {
	result := &CampaignResult{}

	for i, step := range steps {
		log.Printf("Encounter: campaign step %d/%d: %s", i+1, len(steps), step.Name)
		if _, err := s.Start(ctx, step); err != nil {
			return result, err
		}

		outcome, err := s.Wait(ctx)
		if err != nil {
			return result, err
		}
		result.Outcomes = append(result.Outcomes, outcome)

		if outcome.Result == battle.ResultDefeat {
			log.Printf("Encounter: party defeated at %s", step.Name)
			return result, nil
		}
	}

	result.Completed = true
	return result, nil
}

// OnBattleComplete implements battle.EncounterDriver
func (s *service) OnBattleComplete(outcome *battle.Outcome) {
	log.Printf("Encounter: battle %s ended in %s after %d rounds", outcome.BattleID, outcome.Result, outcome.Rounds)
	if s.driver != nil {
		s.driver.OnBattleComplete(outcome)
	}
}

func (s *service) currentPlayers() []*entities.Runtime {
	s.mu.Lock()
	r := s.current
	s.mu.Unlock()
	if r == nil {
		return nil
	}
	return r.session.Players()
}

// Package progression grants experience, levels characters up and manages
// the one-at-a-time queue of move replacement decisions.
package progression

import (
	"context"
	"errors"
	"log"
	"math"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	dnderr "github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/events"
	"github.com/KirkDiggler/rpg-battle/internal/uuid"
)

// Config holds the experience curve
type Config struct {
	BaseXPRequired int
	GrowthRate     float64
	MaxLevel       int
}

// DefaultConfig returns the standard curve: 50 XP for level 2, x1.2 per level, cap 50
func DefaultConfig() Config {
	return Config{
		BaseXPRequired: 50,
		GrowthRate:     1.2,
		MaxLevel:       50,
	}
}

// maxInvalidChoices is how many bad answers a prompt tolerates before it is declined
const maxInvalidChoices = 3

// Gain reports what one AddXP call did to a runtime
type Gain struct {
	Runtime      *entities.Runtime
	Amount       int
	LevelsGained int
	Learned      []*entities.MoveDefinition
	Queued       []*MoveDecision
}

// Chooser is asked to settle a queued move decision
type Chooser interface {
	RequestMoveReplacement(ctx context.Context, current []string, newMove string) (Choice, error)
}

// Engine owns the experience curve and the pending decision queue
type Engine struct {
	cfg           Config
	bus           *events.Bus
	uuidGenerator uuid.Generator

	mu       sync.Mutex
	queue    []*MoveDecision
	battleID string
}

// EngineConfig holds dependencies for the engine
type EngineConfig struct {
	Curve         Config
	Bus           *events.Bus
	UUIDGenerator uuid.Generator
}

// NewEngine creates a progression engine. Zero curve values fall back to DefaultConfig.
func NewEngine(cfg *EngineConfig) *Engine {
	if cfg == nil {
		cfg = &EngineConfig{}
	}

	curve := cfg.Curve
	defaults := DefaultConfig()
	if curve.BaseXPRequired <= 0 {
		curve.BaseXPRequired = defaults.BaseXPRequired
	}
	if curve.GrowthRate <= 1 {
		curve.GrowthRate = defaults.GrowthRate
	}
	if curve.MaxLevel <= 0 {
		curve.MaxLevel = defaults.MaxLevel
	}

	e := &Engine{
		cfg: curve,
		bus: cfg.Bus,
	}
	if cfg.UUIDGenerator != nil {
		e.uuidGenerator = cfg.UUIDGenerator
	} else {
		e.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return e
}

// Curve returns the engine's experience curve
func (e *Engine) Curve() Config {
	return e.cfg
}

// SetBattleID tags emitted events with the running battle
func (e *Engine) SetBattleID(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.battleID = id
}

// XPRequired returns the XP needed to advance from level to level+1
func (e *Engine) XPRequired(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(float64(e.cfg.BaseXPRequired)*math.Pow(e.cfg.GrowthRate, float64(level-1)) + 0.5))
}

// GrantXP credits defeated's reward to every living player-side runtime.
// The reward is shared in full, not split.
func (e *Engine) GrantXP(defeated *entities.CharacterDefinition, party []*entities.Runtime) []Gain {
	if defeated == nil || defeated.ExpReward <= 0 {
		return nil
	}

	var gains []Gain
	for _, r := range party {
		if r == nil || r.Side != entities.SidePlayer || !r.IsAlive() {
			continue
		}
		e.emit(&events.XPGainedEvent{
			BaseEvent: e.base(events.EventTypeXPGained),
			Runtime:   r,
			Defeated:  defeated,
			Amount:    defeated.ExpReward,
		})
		gains = append(gains, e.AddXP(r, defeated.ExpReward))
	}

	return gains
}

// AddXP banks amount and levels r up while the bank covers the next threshold
func (e *Engine) AddXP(r *entities.Runtime, amount int) Gain {
	gain := Gain{Runtime: r, Amount: amount}
	if r == nil || amount <= 0 {
		return gain
	}

	r.Experience += amount
	for r.Level < e.cfg.MaxLevel {
		required := e.XPRequired(r.Level)
		if r.Experience < required {
			break
		}
		r.Experience -= required
		r.Level++
		r.Grow()
		gain.LevelsGained++

		log.Printf("Progression: %s reached level %d", r.Name(), r.Level)
		e.emit(&events.LevelUpEvent{
			BaseEvent: e.base(events.EventTypeLevelUp),
			Runtime:   r,
			Level:     r.Level,
		})

		learned, queued := e.learnUnlocked(r)
		gain.Learned = append(gain.Learned, learned...)
		gain.Queued = append(gain.Queued, queued...)
	}

	return gain
}

func (e *Engine) learnUnlocked(r *entities.Runtime) ([]*entities.MoveDefinition, []*MoveDecision) {
	if r.Definition == nil {
		return nil, nil
	}

	var learned []*entities.MoveDefinition
	var queued []*MoveDecision
	for _, move := range r.Definition.MovesUnlockedAt(r.Level) {
		if r.HasMove(move.Name) || e.isQueued(r, move) {
			continue
		}
		if r.LearnMove(move) {
			learned = append(learned, move)
			e.emit(&events.MoveLearnedEvent{
				BaseEvent: e.base(events.EventTypeMoveLearned),
				Runtime:   r,
				Move:      move,
			})
			continue
		}
		queued = append(queued, e.enqueue(r, move))
	}

	return learned, queued
}

func (e *Engine) isQueued(r *entities.Runtime, move *entities.MoveDefinition) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, d := range e.queue {
		if d.Runtime == r && d.NewMove.Name == move.Name {
			return true
		}
	}
	return false
}

func (e *Engine) enqueue(r *entities.Runtime, move *entities.MoveDefinition) *MoveDecision {
	decision := &MoveDecision{
		ID:      uuid.Prefixed(e.uuidGenerator, "decision"),
		Runtime: r,
		NewMove: move,
		Current: r.MoveNames(),
	}

	e.mu.Lock()
	e.queue = append(e.queue, decision)
	e.mu.Unlock()

	log.Printf("Progression: %s wants to learn %s, decision %s queued", r.Name(), move.Name, decision.ID)
	return decision
}

// LearningInProgress is true while any move decision is unresolved. The
// encounter driver must not start the next battle until it is false.
func (e *Engine) LearningInProgress() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queue) > 0
}

// Pending returns the number of unresolved decisions
func (e *Engine) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queue)
}

// Next returns the decision at the head of the queue without removing it
func (e *Engine) Next() (*MoveDecision, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.queue) == 0 {
		return nil, false
	}
	return e.queue[0], true
}

// Resolve settles the head decision. Only the head can be resolved.
func (e *Engine) Resolve(decisionID string, choice Choice) error {
	e.mu.Lock()
	if len(e.queue) == 0 {
		e.mu.Unlock()
		return dnderr.InvalidCommand("no move decision is pending")
	}
	head := e.queue[0]
	if head.ID != decisionID {
		e.mu.Unlock()
		return dnderr.InvalidCommandf("decision %s is not the current prompt", decisionID)
	}
	e.mu.Unlock()

	switch {
	case head.Runtime.HasMove(head.NewMove.Name):
		// learned some other way while the prompt waited
	case !choice.Decline:
		old, err := head.Runtime.ReplaceMove(choice.Index, head.NewMove)
		if err != nil {
			return dnderr.Wrapf(err, "failed to resolve decision %s", decisionID)
		}
		e.emit(&events.MoveLearnedEvent{
			BaseEvent: e.base(events.EventTypeMoveLearned),
			Runtime:   head.Runtime,
			Move:      head.NewMove,
			Replaced:  old,
		})
	default:
		log.Printf("Progression: %s declined %s", head.Runtime.Name(), head.NewMove.Name)
	}

	e.mu.Lock()
	e.queue = e.queue[1:]
	e.mu.Unlock()

	return nil
}

// Drain asks chooser to settle every queued decision in order. A prompt
// that outlives timeout (when positive) is declined. An invalid slot is
// asked again; after maxInvalidChoices bad answers the decision is declined
// without another prompt.
func (e *Engine) Drain(ctx context.Context, chooser Chooser, timeout time.Duration) error {
	if chooser == nil {
		return dnderr.InvalidArgument("chooser is required")
	}

	invalid := 0
	for {
		decision, ok := e.Next()
		if !ok {
			return nil
		}

		choice := Decline()
		if invalid < maxInvalidChoices {
			var err error
			choice, err = e.ask(ctx, chooser, decision, timeout)
			if err != nil {
				return err
			}
		}

		if err := e.Resolve(decision.ID, choice); err != nil {
			if dnderr.IsInvalidCommand(err) {
				invalid++
				log.Printf("Progression: invalid choice for %s: %v", decision.ID, err)
				continue
			}
			return err
		}
		invalid = 0
	}
}

func (e *Engine) ask(ctx context.Context, chooser Chooser, decision *MoveDecision, timeout time.Duration) (Choice, error) {
	promptCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		promptCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	choice, err := chooser.RequestMoveReplacement(promptCtx, decision.Runtime.MoveNames(), decision.NewMove.Name)
	if err == nil {
		return choice, nil
	}
	if ctx.Err() != nil {
		return Choice{}, ctx.Err()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		log.Printf("Progression: decision %s timed out, declining", decision.ID)
		return Decline(), nil
	}
	return Choice{}, dnderr.Wrapf(err, "failed to request move replacement for %s", decision.Runtime.Name())
}

func (e *Engine) base(t events.EventType) events.BaseEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	return events.BaseEvent{Type: t, BattleID: e.battleID}
}

func (e *Engine) emit(event events.Event) {
	if e.bus == nil {
		return
	}
	_ = e.bus.Emit(event)
}

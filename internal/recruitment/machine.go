// Package recruitment models the persuasion mini-game that can turn an
// enemy into a party member.
package recruitment

import (
	"log"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	dnderr "github.com/KirkDiggler/rpg-battle/internal/errors"
)

// State is the position of a recruitment attempt
type State string

const (
	StateInactive  State = "inactive"
	StateActive    State = "active"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// DefaultMaxAttempts is how many persuade attempts a target allows
const DefaultMaxAttempts = 3

// IsTerminal reports whether no more attempts can change the outcome
func (s State) IsTerminal() bool {
	return s == StateSucceeded || s == StateFailed
}

type step struct {
	ratio  float64
	chance float64
}

// chanceTable is ordered by ratio; the first ratio >= hpRatio wins
var chanceTable = []step{
	{0.02, 0.99},
	{0.10, 0.85},
	{0.20, 0.65},
	{0.30, 0.45},
	{0.50, 0.30},
	{0.70, 0.20},
	{0.80, 0.15},
	{0.90, 0.10},
	{0.99, 0.07},
}

const fullHealthChance = 0.05

// Chance returns the success probability for a target at hpRatio
func Chance(hpRatio float64) float64 {
	for _, s := range chanceTable {
		if hpRatio <= s.ratio {
			return s.chance
		}
	}
	return fullHealthChance
}

// Result describes one persuade attempt
type Result struct {
	Attempt   int
	Chance    float64
	Draw      float64
	Succeeded bool
	State     State
}

// Machine tracks a single recruitment target through its attempts.
// It is owned by one battle session and is not safe for concurrent use.
type Machine struct {
	state        State
	target       *entities.Runtime
	maxAttempts  int
	attemptsUsed int
}

// NewMachine creates an inactive machine. maxAttempts < 1 uses DefaultMaxAttempts.
func NewMachine(maxAttempts int) *Machine {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Machine{
		state:       StateInactive,
		maxAttempts: maxAttempts,
	}
}

// Begin designates target and activates the machine
func (m *Machine) Begin(target *entities.Runtime) error {
	if target == nil {
		return dnderr.Configurationf("recruitment target is required")
	}
	if m.state != StateInactive {
		return dnderr.StateInconsistencyf("recruitment already %s", m.state)
	}
	m.target = target
	m.state = StateActive
	m.attemptsUsed = 0
	return nil
}

// Attempt spends one attempt. draw is a uniform value in [0, 1).
func (m *Machine) Attempt(draw float64) (*Result, error) {
	if m.state != StateActive {
		return nil, dnderr.InvalidCommandf("recruitment is %s", m.state)
	}
	if m.attemptsUsed >= m.maxAttempts {
		return nil, dnderr.InvalidCommand("no persuade attempts left")
	}

	m.attemptsUsed++
	chance := Chance(m.target.HPRatio())
	result := &Result{
		Attempt: m.attemptsUsed,
		Chance:  chance,
		Draw:    draw,
	}

	switch {
	case draw < chance:
		result.Succeeded = true
		m.state = StateSucceeded
	case m.attemptsUsed >= m.maxAttempts:
		m.state = StateFailed
	}
	result.State = m.state

	log.Printf("Recruitment: attempt %d/%d on %s, chance %.2f draw %.2f -> %s",
		m.attemptsUsed, m.maxAttempts, m.target.Name(), chance, draw, m.state)

	return result, nil
}

// TargetDefeated fails an active recruitment whose target was knocked out
func (m *Machine) TargetDefeated() {
	if m.state == StateActive {
		m.state = StateFailed
	}
}

// State returns the current state
func (m *Machine) State() State {
	return m.state
}

// Target returns the designated enemy, nil while inactive
func (m *Machine) Target() *entities.Runtime {
	return m.target
}

// IsTarget reports whether r is the designated enemy
func (m *Machine) IsTarget(r *entities.Runtime) bool {
	return r != nil && m.target == r
}

// AttemptsUsed returns how many attempts have been spent
func (m *Machine) AttemptsUsed() int {
	return m.attemptsUsed
}

// AttemptsLeft returns how many attempts remain
func (m *Machine) AttemptsLeft() int {
	return m.maxAttempts - m.attemptsUsed
}

// MaxAttempts returns the attempt limit
func (m *Machine) MaxAttempts() int {
	return m.maxAttempts
}

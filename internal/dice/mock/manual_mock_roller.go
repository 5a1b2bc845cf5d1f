package mockdice

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-battle/internal/dice"
)

// ManualMockRoller implements dice.Roller for testing with predetermined results
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
	draws     []float64
	drawIndex int
}

// NewManualMockRoller creates a new mock dice roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{
		rolls: []int{},
		draws: []float64{},
	}
}

// SetNextRoll queues one die result
func (m *ManualMockRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls sets multiple roll results
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// SetNextDraw queues one uniform draw
func (m *ManualMockRoller) SetNextDraw(draw float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draws = append(m.draws, draw)
}

// SetDraws sets multiple uniform draws
func (m *ManualMockRoller) SetDraws(draws []float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draws = draws
	m.drawIndex = 0
}

// Reset clears all rolls and draws
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []int{}
	m.rollIndex = 0
	m.draws = []float64{}
	m.drawIndex = 0
}

// Remaining reports how many scripted rolls and draws are unused
func (m *ManualMockRoller) Remaining() (rolls, draws int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex, len(m.draws) - m.drawIndex
}

func (m *ManualMockRoller) getNextRoll() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++
	return roll, nil
}

// Roll implements dice.Roller.Roll
func (m *ManualMockRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	rolls := make([]int, count)
	rawTotal := 0

	for i := 0; i < count; i++ {
		roll, err := m.getNextRoll()
		if err != nil {
			return nil, err
		}
		if roll < 1 || roll > sides {
			return nil, fmt.Errorf("invalid roll %d for d%d", roll, sides)
		}
		rolls[i] = roll
		rawTotal += roll
	}

	return &dice.RollResult{
		Total:    rawTotal + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: rawTotal,
	}, nil
}

// Draw implements dice.Roller.Draw
func (m *ManualMockRoller) Draw() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.drawIndex >= len(m.draws) {
		return 0, fmt.Errorf("no more predetermined draws available (used %d of %d)", m.drawIndex, len(m.draws))
	}

	draw := m.draws[m.drawIndex]
	m.drawIndex++
	return draw, nil
}

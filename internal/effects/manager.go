package effects

import (
	"math"
	"sync"
)

const (
	// burnDefenseRatio is the share of defense a burn removes
	burnDefenseRatio = 0.10
	// poisonAttackRatio is the share of attack a poison removes
	poisonAttackRatio = 0.10
	// dotRatio is the share of max HP burn and poison deal per tick
	dotRatio = 0.05
)

// Manager is the per-character table of active status effects
type Manager struct {
	effects map[Kind]*Instance
	mu      sync.RWMutex
}

// NewManager creates an empty effect table
func NewManager() *Manager {
	return &Manager{
		effects: make(map[Kind]*Instance),
	}
}

// Apply adds an effect to the target. Re-applying an active kind only
// refreshes its duration.
func (m *Manager) Apply(target Target, kind Kind, duration int) bool {
	if kind == KindNone || duration < 1 || target == nil {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.effects[kind]; ok {
		existing.Remaining = duration
		return true
	}

	instance := &Instance{Kind: kind, Remaining: duration}
	instance.AttackDelta, instance.DefenseDelta = deltasFor(target, kind)

	target.ModifyStats(instance.AttackDelta, instance.DefenseDelta)
	m.effects[kind] = instance
	return true
}

// Tick runs one round of every active effect: damage over time first, then
// the duration countdown. Expired effects have their deltas reverted.
func (m *Manager) Tick(target Target) []TickResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	var results []TickResult
	for _, kind := range tickOrder {
		instance, ok := m.effects[kind]
		if !ok || instance.Remaining < 1 {
			continue
		}

		result := TickResult{Kind: kind}
		if kind.DealsDamageOverTime() && target.IsAlive() {
			amount := roundHalfUp(float64(target.GetMaxHP()) * dotRatio)
			if amount < 1 {
				amount = 1
			}
			result.Damage = target.TakeDamage(amount)
		}

		instance.Remaining--
		result.Remaining = instance.Remaining
		if instance.Remaining == 0 {
			target.ModifyStats(-instance.AttackDelta, -instance.DefenseDelta)
			delete(m.effects, kind)
			result.Expired = true
		}
		results = append(results, result)
	}

	return results
}

// Has reports whether the kind is active
func (m *Manager) Has(kind Kind) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.effects[kind]
	return ok
}

// Get returns a copy of the active instance of kind, if any
func (m *Manager) Get(kind Kind) (Instance, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	instance, ok := m.effects[kind]
	if !ok {
		return Instance{}, false
	}
	return *instance, true
}

// Active returns copies of all active effects in tick order
func (m *Manager) Active() []Instance {
	m.mu.RLock()
	defer m.mu.RUnlock()

	active := make([]Instance, 0, len(m.effects))
	for _, kind := range tickOrder {
		if instance, ok := m.effects[kind]; ok {
			active = append(active, *instance)
		}
	}
	return active
}

// Rebase reverts every active delta, runs change against the unmodified
// stats, then recomputes each delta from the changed stats. Remaining
// durations are kept.
func (m *Manager) Rebase(target Target, change func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, kind := range tickOrder {
		if instance, ok := m.effects[kind]; ok {
			target.ModifyStats(-instance.AttackDelta, -instance.DefenseDelta)
		}
	}

	change()

	for _, kind := range tickOrder {
		if instance, ok := m.effects[kind]; ok {
			instance.AttackDelta, instance.DefenseDelta = deltasFor(target, kind)
			target.ModifyStats(instance.AttackDelta, instance.DefenseDelta)
		}
	}
}

// Offsets returns the summed attack and defense deltas of every active effect
func (m *Manager) Offsets() (attack, defense int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, instance := range m.effects {
		attack += instance.AttackDelta
		defense += instance.DefenseDelta
	}
	return attack, defense
}

// Clear reverts and removes every active effect
func (m *Manager) Clear(target Target) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for kind, instance := range m.effects {
		if target != nil {
			target.ModifyStats(-instance.AttackDelta, -instance.DefenseDelta)
		}
		delete(m.effects, kind)
	}
}

// deltasFor computes the stat change kind makes to target's current stats.
// Stun changes nothing; skipping the action is up to the turn resolver.
func deltasFor(target Target, kind Kind) (attack, defense int) {
	switch kind {
	case KindBurn:
		defense = -roundHalfUp(float64(target.GetDefense()) * burnDefenseRatio)
	case KindPoison:
		attack = -roundHalfUp(float64(target.GetAttack()) * poisonAttackRatio)
	}
	return attack, defense
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

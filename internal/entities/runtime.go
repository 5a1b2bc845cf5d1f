package entities

import (
	"github.com/KirkDiggler/rpg-battle/internal/effects"
	dnderr "github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Runtime is the mutable in-battle instance of a character
type Runtime struct {
	ID         string
	Definition *CharacterDefinition
	Side       Side

	Level      int
	Experience int // XP banked toward the next level

	CurrentHP int
	MaxHP     int
	Attack    int
	Defense   int
	Speed     int

	Moves   []*MoveDefinition
	uses    map[string]int
	Effects *effects.Manager
}

// NewRuntime builds a runtime for def at level. Stats grow from the base
// values once per level above 1. Equipped moves are the learnset entries
// unlocked by level, then the ultimate, truncated to MaxEquippedMoves.
func NewRuntime(def *CharacterDefinition, level int) (*Runtime, error) {
	if def == nil {
		return nil, dnderr.Configurationf("character definition is required")
	}
	if level < 1 {
		level = 1
	}

	r := &Runtime{
		ID:         def.Key,
		Definition: def,
		Side:       SideEnemy,
		Level:      level,
		MaxHP:      def.BaseHP,
		Attack:     def.BaseAttack,
		Defense:    def.BaseDefense,
		Speed:      def.BaseSpeed,
		uses:       make(map[string]int),
		Effects:    effects.NewManager(),
	}
	for l := 2; l <= level; l++ {
		r.Grow()
	}
	r.CurrentHP = r.MaxHP

	var moves []*MoveDefinition
	for _, lm := range def.Learnset {
		if lm.Move != nil && lm.Level <= level {
			moves = append(moves, lm.Move)
		}
	}
	if def.Ultimate != nil && !containsMove(moves, def.Ultimate.Name) {
		moves = append(moves, def.Ultimate)
	}
	if len(moves) > MaxEquippedMoves {
		moves = moves[:MaxEquippedMoves]
	}
	r.Moves = moves

	return r, nil
}

// Name returns the definition name
func (r *Runtime) Name() string {
	if r.Definition == nil {
		return r.ID
	}
	return r.Definition.Name
}

// IsAlive returns true if the runtime has more than 0 HP
func (r *Runtime) IsAlive() bool {
	return r.CurrentHP > 0
}

// HPRatio returns CurrentHP / MaxHP
func (r *Runtime) HPRatio() float64 {
	if r.MaxHP <= 0 {
		return 0
	}
	return float64(r.CurrentHP) / float64(r.MaxHP)
}

// TakeDamage removes HP, clamped to [0, MaxHP], and returns the HP removed
func (r *Runtime) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := r.CurrentHP
	r.CurrentHP -= amount
	r.clampHP()
	return before - r.CurrentHP
}

// Heal restores HP up to MaxHP and returns the HP restored
func (r *Runtime) Heal(amount int) int {
	if amount <= 0 || !r.IsAlive() {
		return 0
	}
	before := r.CurrentHP
	r.CurrentHP += amount
	r.clampHP()
	return r.CurrentHP - before
}

// RestoreFull sets CurrentHP to MaxHP
func (r *Runtime) RestoreFull() {
	r.CurrentHP = r.MaxHP
}

// SetHP assigns HP directly, clamped to [0, MaxHP]
func (r *Runtime) SetHP(hp int) {
	r.CurrentHP = hp
	r.clampHP()
}

func (r *Runtime) clampHP() {
	if r.MaxHP < 0 {
		r.MaxHP = 0
	}
	if r.CurrentHP > r.MaxHP {
		r.CurrentHP = r.MaxHP
	}
	if r.CurrentHP < 0 {
		r.CurrentHP = 0
	}
}

// Grow applies one level of archetype stat growth and restores HP. Growth
// works on the stats without effect deltas; active effects are re-applied
// against the grown values.
func (r *Runtime) Grow() {
	if r.Effects == nil {
		r.grow()
		return
	}
	r.Effects.Rebase(r, r.grow)
}

func (r *Runtime) grow() {
	g := DefaultGrowth
	if r.Definition != nil {
		g = GrowthFor(r.Definition.Archetype)
	}
	r.MaxHP = Grow(r.MaxHP, g.HP)
	r.Attack = Grow(r.Attack, g.Attack)
	r.Defense = Grow(r.Defense, g.Defense)
	r.Speed = Grow(r.Speed, g.Speed)
	r.CurrentHP = r.MaxHP
}

// GetMaxHP implements effects.Target
func (r *Runtime) GetMaxHP() int { return r.MaxHP }

// GetAttack implements effects.Target
func (r *Runtime) GetAttack() int { return r.Attack }

// GetDefense implements effects.Target
func (r *Runtime) GetDefense() int { return r.Defense }

// ModifyStats implements effects.Target
func (r *Runtime) ModifyStats(attackDelta, defenseDelta int) {
	r.Attack += attackDelta
	r.Defense += defenseDelta
}

// BaseAttack returns Attack without the deltas of active effects
func (r *Runtime) BaseAttack() int {
	if r.Effects == nil {
		return r.Attack
	}
	attack, _ := r.Effects.Offsets()
	return r.Attack - attack
}

// BaseDefense returns Defense without the deltas of active effects
func (r *Runtime) BaseDefense() int {
	if r.Effects == nil {
		return r.Defense
	}
	_, defense := r.Effects.Offsets()
	return r.Defense - defense
}

// IsStunned reports whether an active stun blocks this runtime's action
func (r *Runtime) IsStunned() bool {
	return r.Effects != nil && r.Effects.Has(effects.KindStun)
}

// ClearEffects reverts every active status effect
func (r *Runtime) ClearEffects() {
	if r.Effects != nil {
		r.Effects.Clear(r)
	}
}

// MoveNames returns the names of the equipped moves in slot order
func (r *Runtime) MoveNames() []string {
	names := make([]string, 0, len(r.Moves))
	for _, m := range r.Moves {
		names = append(names, m.Name)
	}
	return names
}

// HasMove reports whether a move with name is equipped
func (r *Runtime) HasMove(name string) bool {
	return containsMove(r.Moves, name)
}

// MoveByName returns the equipped move with name
func (r *Runtime) MoveByName(name string) (*MoveDefinition, bool) {
	for _, m := range r.Moves {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// CanUse reports whether move is equipped and below its usage cap
func (r *Runtime) CanUse(move *MoveDefinition) bool {
	if move == nil || !r.HasMove(move.Name) {
		return false
	}
	return move.UsageCap <= 0 || r.uses[move.Name] < move.UsageCap
}

// UsableMoves returns the equipped moves that are still available
func (r *Runtime) UsableMoves() []*MoveDefinition {
	var usable []*MoveDefinition
	for _, m := range r.Moves {
		if r.CanUse(m) {
			usable = append(usable, m)
		}
	}
	return usable
}

// RecordUse counts one use of move toward its cap
func (r *Runtime) RecordUse(move *MoveDefinition) {
	if r.uses == nil {
		r.uses = make(map[string]int)
	}
	r.uses[move.Name]++
}

// UsesOf returns how many times move was used this battle
func (r *Runtime) UsesOf(name string) int {
	return r.uses[name]
}

// ResetUsage clears every usage counter
func (r *Runtime) ResetUsage() {
	r.uses = make(map[string]int)
}

// LearnMove equips move in a free slot. It reports false when both slots
// are taken or the move is already equipped.
func (r *Runtime) LearnMove(move *MoveDefinition) bool {
	if move == nil || r.HasMove(move.Name) || len(r.Moves) >= MaxEquippedMoves {
		return false
	}
	r.Moves = append(r.Moves, move)
	return true
}

// ReplaceMove swaps the move in slot for move and returns the old one
func (r *Runtime) ReplaceMove(slot int, move *MoveDefinition) (*MoveDefinition, error) {
	if move == nil {
		return nil, dnderr.InvalidArgument("move is required")
	}
	if slot < 0 || slot >= len(r.Moves) {
		return nil, dnderr.InvalidCommandf("slot %d is out of range", slot)
	}
	if r.HasMove(move.Name) {
		return nil, dnderr.InvalidCommandf("%s already knows %s", r.Name(), move.Name)
	}
	old := r.Moves[slot]
	r.Moves[slot] = move
	return old, nil
}

// SetMoves replaces the equipped set, truncated to MaxEquippedMoves
func (r *Runtime) SetMoves(moves []*MoveDefinition) {
	var equipped []*MoveDefinition
	for _, m := range moves {
		if m == nil || containsMove(equipped, m.Name) {
			continue
		}
		equipped = append(equipped, m)
		if len(equipped) == MaxEquippedMoves {
			break
		}
	}
	r.Moves = equipped
}

func containsMove(moves []*MoveDefinition, name string) bool {
	for _, m := range moves {
		if m != nil && m.Name == name {
			return true
		}
	}
	return false
}

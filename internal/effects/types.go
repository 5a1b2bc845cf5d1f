package effects

// Kind identifies a status effect. A target carries at most one instance per kind.
type Kind string

const (
	KindNone   Kind = ""
	KindBurn   Kind = "burn"
	KindPoison Kind = "poison"
	KindStun   Kind = "stun"
)

// tickOrder fixes the order effects resolve in during Tick
var tickOrder = []Kind{KindBurn, KindPoison, KindStun}

// ParseKind maps a content string to a Kind; unknown strings are KindNone
func ParseKind(s string) Kind {
	switch Kind(s) {
	case KindBurn, KindPoison, KindStun:
		return Kind(s)
	default:
		return KindNone
	}
}

// DealsDamageOverTime reports whether the kind hurts its target on every tick
func (k Kind) DealsDamageOverTime() bool {
	return k == KindBurn || k == KindPoison
}

// Instance is one active effect on a target. The deltas are the exact amounts
// applied to the target's stats so expiry can put them back.
type Instance struct {
	Kind         Kind
	Remaining    int
	AttackDelta  int
	DefenseDelta int
}

// Target is the slice of a battle runtime the effect engine needs
type Target interface {
	GetMaxHP() int
	GetAttack() int
	GetDefense() int
	IsAlive() bool
	ModifyStats(attackDelta, defenseDelta int)
	TakeDamage(amount int) int
}

// TickResult reports what one effect did during a tick
type TickResult struct {
	Kind      Kind
	Damage    int
	Remaining int
	Expired   bool
}

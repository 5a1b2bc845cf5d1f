package battle

import "github.com/KirkDiggler/rpg-battle/internal/entities"

// DieSides is the hit die every attack rolls
const DieSides = 10

const (
	critMultiplier = 1.25
	weakMultiplier = 0.75
)

// Multiplier maps a hit die to its damage multiplier. A 1 misses.
func Multiplier(die int) (multiplier float64, hit bool) {
	switch {
	case die <= 1:
		return 0, false
	case die >= 8:
		return critMultiplier, true
	case die <= 3:
		return weakMultiplier, true
	default:
		return 1, true
	}
}

// BaseDamage is max(1, power + attack - defense/2)
func BaseDamage(power, attack, defense int) int {
	return max(1, power+attack-defense/2)
}

// FinalDamage applies the die multiplier, never dropping below 1
func FinalDamage(base int, multiplier float64) int {
	return max(1, entities.RoundHalfUp(float64(base)*multiplier))
}

// HealAmount is max(1, power + attack/4)
func HealAmount(power, attack int) int {
	return max(1, power+attack/4)
}

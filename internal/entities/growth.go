package entities

import "math"

// Archetype is the tag that decides how a character's stats grow
type Archetype string

const (
	ArchetypeWarrior Archetype = "warrior"
	ArchetypeMage    Archetype = "mage"
	ArchetypeRogue   Archetype = "rogue"
	ArchetypeTank    Archetype = "tank"
	ArchetypeHealer  Archetype = "healer"
)

// Growth holds the per-level percentage increase of each stat
type Growth struct {
	HP      float64
	Attack  float64
	Defense float64
	Speed   float64
}

// DefaultGrowth applies to any archetype missing from the table
var DefaultGrowth = Growth{HP: 0.08, Attack: 0.06, Defense: 0.05, Speed: 0.04}

var growthTable = map[Archetype]Growth{
	ArchetypeWarrior: {HP: 0.10, Attack: 0.08, Defense: 0.06, Speed: 0.03},
	ArchetypeMage:    {HP: 0.06, Attack: 0.10, Defense: 0.04, Speed: 0.05},
	ArchetypeRogue:   {HP: 0.07, Attack: 0.07, Defense: 0.04, Speed: 0.08},
	ArchetypeTank:    {HP: 0.12, Attack: 0.04, Defense: 0.10, Speed: 0.02},
	ArchetypeHealer:  {HP: 0.08, Attack: 0.05, Defense: 0.06, Speed: 0.05},
}

// GrowthFor returns the growth rates of an archetype
func GrowthFor(a Archetype) Growth {
	if g, ok := growthTable[a]; ok {
		return g
	}
	return DefaultGrowth
}

// Grow returns round(stat * (1 + pct))
func Grow(stat int, pct float64) int {
	return RoundHalfUp(float64(stat) * (1 + pct))
}

// RoundHalfUp rounds non-negative values half up
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

package dice

// Roller provides an interface for every random draw the battle engine makes.
// Tests inject a scripted implementation so outcomes are deterministic.
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)

	// Draw returns a uniform value in [0, 1)
	Draw() (float64, error)
}

// RollResult holds the outcome of a Roll call
type RollResult struct {
	Total    int   // Sum of all dice plus bonus
	Rolls    []int // Individual die results
	Bonus    int
	Count    int
	Sides    int
	RawTotal int // Sum of dice without bonus
}

// Pick returns a uniform index in [0, n) using a single die with n sides.
// A single option is returned without rolling.
func Pick(r Roller, n int) (int, error) {
	if n < 1 {
		return 0, ErrInvalidSides
	}
	if n == 1 {
		return 0, nil
	}
	result, err := r.Roll(1, n, 0)
	if err != nil {
		return 0, err
	}
	return result.Total - 1, nil
}

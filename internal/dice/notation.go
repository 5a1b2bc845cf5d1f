package dice

import (
	"errors"
	"strconv"
	"strings"
)

// Notation is a parsed dice expression such as "2d6+3"
type Notation struct {
	Count int
	Sides int
	Bonus int
}

// ParseNotation parses "XdY", "XdY+Z" and "XdY-Z"
func ParseNotation(s string) (Notation, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, " ", ""))
	var bonus int
	var err error

	dicePart := s
	if i := strings.IndexAny(s, "+-"); i > 0 {
		bonus, err = strconv.Atoi(s[i:])
		if err != nil {
			return Notation{}, errors.New("invalid dice string")
		}
		dicePart = s[:i]
	}

	parts := strings.Split(dicePart, "d")
	if len(parts) != 2 {
		return Notation{}, errors.New("invalid dice string")
	}

	count, err := strconv.Atoi(parts[0])
	if err != nil || count < 1 {
		return Notation{}, ErrInvalidCount
	}
	sides, err := strconv.Atoi(parts[1])
	if err != nil || sides < 1 {
		return Notation{}, ErrInvalidSides
	}

	return Notation{Count: count, Sides: sides, Bonus: bonus}, nil
}

// Average returns the expected total rounded half up
func (n Notation) Average() int {
	// (sides+1)/2 per die, doubled to stay in integers
	twice := n.Count*(n.Sides+1) + 2*n.Bonus
	if twice <= 0 {
		return 0
	}
	return (twice + 1) / 2
}

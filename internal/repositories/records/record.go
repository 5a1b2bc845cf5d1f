package records

import "time"

// Record is the durable snapshot of one party member between encounters
type Record struct {
	Name          string    `json:"name"`
	DefinitionKey string    `json:"definition_key"`
	Slot          int       `json:"slot"`
	Level         int       `json:"level"`
	Experience    int       `json:"experience"`
	CurrentHP     int       `json:"current_hp"`
	MaxHP         int       `json:"max_hp"`
	Attack        int       `json:"attack"`
	Defense       int       `json:"defense"`
	Speed         int       `json:"speed"`
	Moves         []string  `json:"moves"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (r *Record) clone() *Record {
	if r == nil {
		return nil
	}
	c := *r
	if r.Moves != nil {
		c.Moves = append([]string(nil), r.Moves...)
	}
	return &c
}

// DefaultProfile is the save profile used when none is configured
const DefaultProfile = "default"

// TimeProvider stamps UpdatedAt on save
type TimeProvider interface {
	Now() time.Time
}

type systemTime struct{}

func (systemTime) Now() time.Time { return time.Now().UTC() }

// SystemTime returns a TimeProvider backed by the wall clock
func SystemTime() TimeProvider {
	return systemTime{}
}

package roster

import (
	"log"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/records"
)

// SaveFromRuntime snapshots r into a record for party slot. Attack and
// defense are saved without the deltas of active effects.
func SaveFromRuntime(r *entities.Runtime, slot int) *records.Record {
	if r == nil {
		return nil
	}

	rec := &records.Record{
		Name:       r.Name(),
		Slot:       slot,
		Level:      r.Level,
		Experience: r.Experience,
		CurrentHP:  r.CurrentHP,
		MaxHP:      r.MaxHP,
		Attack:     r.BaseAttack(),
		Defense:    r.BaseDefense(),
		Speed:      r.Speed,
		Moves:      r.MoveNames(),
	}
	if r.Definition != nil {
		rec.DefinitionKey = r.Definition.Key
	}

	return rec
}

// ApplyToRuntime copies rec onto r. Zero-valued stats keep the runtime's
// values, move names the definition does not know are skipped, and HP is
// clamped to the restored max.
func ApplyToRuntime(rec *records.Record, r *entities.Runtime) {
	if rec == nil || r == nil {
		return
	}

	if rec.Level > 0 {
		r.Level = rec.Level
	}
	if rec.Experience > 0 {
		r.Experience = rec.Experience
	}
	if rec.MaxHP > 0 {
		r.MaxHP = rec.MaxHP
	}
	if rec.Attack > 0 {
		r.Attack = rec.Attack
	}
	if rec.Defense > 0 {
		r.Defense = rec.Defense
	}
	if rec.Speed > 0 {
		r.Speed = rec.Speed
	}
	// a complete record carries HP even when it is 0
	if rec.MaxHP > 0 {
		r.SetHP(rec.CurrentHP)
	} else {
		r.SetHP(r.CurrentHP)
	}

	if len(rec.Moves) == 0 || r.Definition == nil {
		return
	}
	var moves []*entities.MoveDefinition
	for _, name := range rec.Moves {
		move := r.Definition.MoveByName(name)
		if move == nil {
			log.Printf("Roster: %s has saved move %q that its definition does not know, skipping", r.Name(), name)
			continue
		}
		moves = append(moves, move)
	}
	if len(moves) > 0 {
		r.SetMoves(moves)
	}
}

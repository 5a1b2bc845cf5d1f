// Package records persists party members between encounters. Records are
// keyed by character name within a save profile.
package records

//go:generate mockgen -destination=mock/mock.go -package=mockrecords -source=interface.go

import (
	"context"
)

// Repository defines the interface for party record persistence
type Repository interface {
	// Save creates or overwrites the record stored under record.Name
	Save(ctx context.Context, record *Record) error

	// Get retrieves a record by character name
	Get(ctx context.Context, name string) (*Record, error)

	// LoadAll returns every record in the profile ordered by slot
	LoadAll(ctx context.Context) ([]*Record, error)

	// Delete removes a record
	Delete(ctx context.Context, name string) error
}

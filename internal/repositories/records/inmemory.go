package records

import (
	"context"
	"sync"

	dnderr "github.com/KirkDiggler/rpg-battle/internal/errors"
)

// InMemoryRepository keeps records in a map. Useful for tests and for runs
// that should not touch a save file.
type InMemoryRepository struct {
	mu           sync.RWMutex
	records      map[string]*Record
	timeProvider TimeProvider
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		records:      make(map[string]*Record),
		timeProvider: SystemTime(),
	}
}

// Save stores a copy of record
func (r *InMemoryRepository) Save(ctx context.Context, record *Record) error {
	if err := validate(record); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := record.clone()
	stored.UpdatedAt = r.timeProvider.Now()
	r.records[record.Name] = stored
	record.UpdatedAt = stored.UpdatedAt

	return nil
}

// Get returns a copy of the record stored under name
func (r *InMemoryRepository) Get(ctx context.Context, name string) (*Record, error) {
	if name == "" {
		return nil, dnderr.InvalidArgument("record name is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[name]
	if !exists {
		return nil, notFound(name)
	}

	return record.clone(), nil
}

// LoadAll returns copies of every record ordered by slot
func (r *InMemoryRepository) LoadAll(ctx context.Context) ([]*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Record, 0, len(r.records))
	for _, record := range r.records {
		result = append(result, record.clone())
	}
	sortBySlot(result)

	return result, nil
}

// Delete removes the record stored under name
func (r *InMemoryRepository) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[name]; !exists {
		return notFound(name)
	}
	delete(r.records, name)

	return nil
}

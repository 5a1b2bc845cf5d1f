// Package roster turns persisted party records into battle runtimes and
// back again.
package roster

//go:generate mockgen -destination=mock/mock_service.go -package=mockroster -source=service.go

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	dnderr "github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/records"
)

// MaxPartySize is the number of members a player roster can hold
const MaxPartySize = 3

// Catalog resolves definition keys
type Catalog interface {
	Character(ctx context.Context, key string) (*entities.CharacterDefinition, error)
}

// Service defines the roster service interface
type Service interface {
	// Spawn builds the player roster. Saved members are rehydrated in slot
	// order; with no saved members the starter keys join at level 1.
	Spawn(ctx context.Context, starters []string) ([]*entities.Runtime, error)

	// SpawnEnemies builds fresh enemy runtimes at level
	SpawnEnemies(ctx context.Context, keys []string, level int) ([]*entities.Runtime, error)

	// Persist saves every member using its roster position as slot
	Persist(ctx context.Context, players []*entities.Runtime) error

	// Release forgets a member that left the party
	Release(ctx context.Context, name string) error
}

type service struct {
	repository records.Repository
	catalog    Catalog
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository records.Repository
	Catalog    Catalog
}

// NewService creates a new roster service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("roster service config is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Catalog == nil {
		panic("catalog is required")
	}

	return &service{
		repository: cfg.Repository,
		catalog:    cfg.Catalog,
	}
}

// Spawn builds the player roster
func (s *service) Spawn(ctx context.Context, starters []string) ([]*entities.Runtime, error) {
	saved, err := s.repository.LoadAll(ctx)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to load party records")
	}

	if len(saved) == 0 {
		log.Printf("Roster: no saved party, starting fresh with %d members", len(starters))
		return s.spawnFresh(ctx, starters)
	}

	players := make([]*entities.Runtime, 0, len(saved))
	for _, rec := range saved {
		if len(players) == MaxPartySize {
			log.Printf("Roster: party is full, leaving %s out", rec.Name)
			break
		}
		r, err := s.rehydrate(ctx, rec)
		if err != nil {
			return nil, err
		}
		players = append(players, r)
	}

	return players, nil
}

func (s *service) spawnFresh(ctx context.Context, keys []string) ([]*entities.Runtime, error) {
	if len(keys) == 0 {
		return nil, dnderr.Configurationf("no party members to spawn")
	}
	if len(keys) > MaxPartySize {
		keys = keys[:MaxPartySize]
	}

	players := make([]*entities.Runtime, 0, len(keys))
	for _, key := range keys {
		r, err := s.newRuntime(ctx, key, 1)
		if err != nil {
			return nil, err
		}
		r.Side = entities.SidePlayer
		players = append(players, r)
	}

	return players, nil
}

func (s *service) rehydrate(ctx context.Context, rec *records.Record) (*entities.Runtime, error) {
	r, err := s.newRuntime(ctx, rec.DefinitionKey, 1)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to rehydrate %s", rec.Name)
	}
	r.Side = entities.SidePlayer
	ApplyToRuntime(rec, r)

	if !r.IsAlive() {
		log.Printf("Roster: %s was knocked out last encounter, back at full health", r.Name())
		r.RestoreFull()
	}

	return r, nil
}

// SpawnEnemies builds fresh enemy runtimes at level
func (s *service) SpawnEnemies(ctx context.Context, keys []string, level int) ([]*entities.Runtime, error) {
	if len(keys) == 0 {
		return nil, dnderr.Configurationf("encounter has no enemies")
	}

	enemies := make([]*entities.Runtime, 0, len(keys))
	seen := make(map[string]int)
	for _, key := range keys {
		r, err := s.newRuntime(ctx, key, level)
		if err != nil {
			return nil, err
		}
		r.Side = entities.SideEnemy
		// enemies can repeat, keep IDs unique inside a battle
		seen[key]++
		r.ID = enemyID(key, seen[key])
		enemies = append(enemies, r)
	}

	return enemies, nil
}

func (s *service) newRuntime(ctx context.Context, key string, level int) (*entities.Runtime, error) {
	def, err := s.catalog.Character(ctx, key)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeConfiguration, "unknown character definition").
			WithMeta("definition_key", key)
	}
	return entities.NewRuntime(def, level)
}

// Persist saves every member using its roster position as slot
func (s *service) Persist(ctx context.Context, players []*entities.Runtime) error {
	for slot, r := range players {
		if err := s.repository.Save(ctx, SaveFromRuntime(r, slot)); err != nil {
			return dnderr.Wrapf(err, "failed to persist %s", r.Name())
		}
	}
	return nil
}

// Release forgets a member that left the party
func (s *service) Release(ctx context.Context, name string) error {
	err := s.repository.Delete(ctx, name)
	if err != nil && !dnderr.IsNotFound(err) {
		return dnderr.Wrapf(err, "failed to release %s", name)
	}
	return nil
}

func enemyID(key string, n int) string {
	if n == 1 {
		return "enemy-" + key
	}
	return fmt.Sprintf("enemy-%s-%d", key, n)
}

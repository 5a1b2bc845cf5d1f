package monster

//go:generate mockgen -destination=mock/mock_service.go -package=mockmonster -source=service.go

import (
	"context"
	"strings"
	"sync"

	"github.com/KirkDiggler/rpg-battle/internal/clients/dnd5e"
	"github.com/KirkDiggler/rpg-battle/internal/dice"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	dnderr "github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Service defines the monster service interface
type Service interface {
	// GetMonster fetches a specific monster by key
	GetMonster(ctx context.Context, key string) (*entities.CharacterDefinition, error)

	// GetMonstersByCR returns monsters within a CR range
	GetMonstersByCR(ctx context.Context, minCR, maxCR float32) ([]*entities.CharacterDefinition, error)

	// GetRandomMonsters returns random monsters for a given difficulty
	GetRandomMonsters(ctx context.Context, difficulty string, count int) ([]*entities.CharacterDefinition, error)
}

type service struct {
	dndClient dnd5e.Client
	roller    dice.Roller

	mu sync.RWMutex
	// Cache of monster definitions by key
	monsterCache map[string]*entities.CharacterDefinition
	// Cache of CR range lookups, keyed by the range
	crCache map[[2]float32][]*entities.CharacterDefinition
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	DNDClient dnd5e.Client // Required
	Roller    dice.Roller
}

// NewService creates a new monster service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.DNDClient == nil {
		panic("DND client is required")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	return &service{
		dndClient:    cfg.DNDClient,
		roller:       roller,
		monsterCache: make(map[string]*entities.CharacterDefinition),
		crCache:      make(map[[2]float32][]*entities.CharacterDefinition),
	}
}

// GetMonster fetches a specific monster by key
func (s *service) GetMonster(ctx context.Context, key string) (*entities.CharacterDefinition, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("monster key is required")
	}

	s.mu.RLock()
	cached, ok := s.monsterCache[key]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	def, err := s.dndClient.GetMonster(key)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get monster '%s'", key)
	}

	s.mu.Lock()
	s.monsterCache[key] = def
	s.mu.Unlock()

	return def, nil
}

// GetMonstersByCR returns monsters within a CR range
func (s *service) GetMonstersByCR(ctx context.Context, minCR, maxCR float32) ([]*entities.CharacterDefinition, error) {
	if minCR > maxCR {
		return nil, dnderr.InvalidArgumentf("min CR %v is above max CR %v", minCR, maxCR)
	}

	rangeKey := [2]float32{minCR, maxCR}
	s.mu.RLock()
	cached, ok := s.crCache[rangeKey]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	defs, err := s.dndClient.ListMonstersByCR(minCR, maxCR)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to list monsters for CR %v-%v", minCR, maxCR)
	}

	s.mu.Lock()
	s.crCache[rangeKey] = defs
	for _, def := range defs {
		s.monsterCache[def.Key] = def
	}
	s.mu.Unlock()

	return defs, nil
}

// GetRandomMonsters returns random monsters for a given difficulty
func (s *service) GetRandomMonsters(ctx context.Context, difficulty string, count int) ([]*entities.CharacterDefinition, error) {
	var minCR, maxCR float32

	switch strings.ToLower(difficulty) {
	case "easy":
		minCR, maxCR = 0, 0.5
	case "medium":
		minCR, maxCR = 0.25, 1
	case "hard":
		minCR, maxCR = 0.5, 2
	case "deadly":
		minCR, maxCR = 1, 3
	default:
		return nil, dnderr.InvalidArgument("difficulty must be easy, medium, hard, or deadly")
	}

	availableMonsters, err := s.GetMonstersByCR(ctx, minCR, maxCR)
	if err != nil {
		return nil, err
	}

	if len(availableMonsters) == 0 {
		return nil, dnderr.NotFound("no monsters found for difficulty")
	}

	result := make([]*entities.CharacterDefinition, 0, count)
	for i := 0; i < count; i++ {
		idx, err := dice.Pick(s.roller, len(availableMonsters))
		if err != nil {
			return nil, dnderr.Wrap(err, "failed to pick a monster")
		}
		result = append(result, availableMonsters[idx])
	}

	return result, nil
}

package services

import (
	"context"
	"log"

	"github.com/KirkDiggler/rpg-battle/internal/battle"
	"github.com/KirkDiggler/rpg-battle/internal/clients/dnd5e"
	"github.com/KirkDiggler/rpg-battle/internal/config"
	"github.com/KirkDiggler/rpg-battle/internal/content"
	"github.com/KirkDiggler/rpg-battle/internal/dice"
	dnderr "github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/records"
	"github.com/KirkDiggler/rpg-battle/internal/services/encounter"
	"github.com/KirkDiggler/rpg-battle/internal/services/monster"
	"github.com/KirkDiggler/rpg-battle/internal/services/roster"
	"github.com/KirkDiggler/rpg-battle/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	Catalog *content.Catalog
	// MonsterService is nil unless a D&D 5e client was configured
	MonsterService   monster.Service
	RosterService    roster.Service
	EncounterService encounter.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Input      battle.InputProvider // Required
	Presenters []battle.Presenter
	Driver     battle.EncounterDriver

	Repository records.Repository
	DNDClient  dnd5e.Client
	Battle     config.BattleConfig
	// CatalogData replaces the embedded catalog when set
	CatalogData []byte

	Roller        dice.Roller
	UUIDGenerator uuid.Generator
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil {
		return nil, dnderr.Configurationf("provider config is required")
	}

	// Use in-memory repository if none provided
	repo := cfg.Repository
	if repo == nil {
		repo = records.NewInMemoryRepository()
	}

	var monsterService monster.Service
	var bestiary content.Bestiary
	if cfg.DNDClient != nil {
		monsterService = monster.NewService(&monster.ServiceConfig{
			DNDClient: cfg.DNDClient,
			Roller:    cfg.Roller,
		})
		bestiary = monsterService
	}

	catalog, err := content.New(&content.Config{
		Data:     cfg.CatalogData,
		Bestiary: bestiary,
	})
	if err != nil {
		return nil, err
	}

	rosterService := roster.NewService(&roster.ServiceConfig{
		Repository: repo,
		Catalog:    catalog,
	})

	encounterService := encounter.NewService(&encounter.ServiceConfig{
		Roster:              rosterService,
		Input:               cfg.Input,
		Starters:            cfg.Battle.Starters,
		Repository:          repo,
		Presenters:          cfg.Presenters,
		Driver:              cfg.Driver,
		Curve:               cfg.Battle.Progression(),
		Roller:              cfg.Roller,
		UUIDGenerator:       cfg.UUIDGenerator,
		MaxPersuadeAttempts: cfg.Battle.MaxPersuadeAttempts,
		ActionDelay:         cfg.Battle.ActionDelay,
		ReplacementTimeout:  cfg.Battle.ReplacementTimeout,
	})

	return &Provider{
		Catalog:          catalog,
		MonsterService:   monsterService,
		RosterService:    rosterService,
		EncounterService: encounterService,
	}, nil
}

// BestiaryEncounter imports keys from the bestiary and groups them into a
// single encounter. Keys the bestiary cannot supply are left out.
func (p *Provider) BestiaryEncounter(ctx context.Context, keys []string, level int) (content.Encounter, error) {
	if p.MonsterService == nil {
		return content.Encounter{}, dnderr.Configurationf("bestiary is not configured")
	}

	enc := content.Encounter{Name: "Bestiary", Level: level}
	for _, key := range keys {
		if _, err := p.Catalog.Character(ctx, key); err != nil {
			log.Printf("Provider: skipping bestiary monster %s: %v", key, err)
			continue
		}
		enc.Enemies = append(enc.Enemies, key)
	}

	if len(enc.Enemies) == 0 {
		return content.Encounter{}, dnderr.NotFoundf("none of %v could be imported", keys)
	}
	return enc, nil
}

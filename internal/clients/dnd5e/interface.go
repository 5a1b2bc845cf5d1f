package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e . Client

import (
	"github.com/KirkDiggler/rpg-battle/internal/entities"
)

// Client imports monsters from the D&D 5e API as battle definitions
type Client interface {
	GetMonster(key string) (*entities.CharacterDefinition, error)
	ListMonstersByCR(minCR, maxCR float32) ([]*entities.CharacterDefinition, error)
}

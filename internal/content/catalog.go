// Package content holds the move and character definitions battles are
// built from, plus the default campaign.
package content

import (
	"context"
	_ "embed"
	"encoding/json"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-battle/internal/effects"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	dnderr "github.com/KirkDiggler/rpg-battle/internal/errors"
)

//go:embed data/catalog.v1.json
var catalogJSON []byte

const bestiaryTimeout = 10 * time.Second

// Bestiary supplies definitions the catalog does not ship with
type Bestiary interface {
	GetMonster(ctx context.Context, key string) (*entities.CharacterDefinition, error)
}

// Encounter is one step of a campaign
type Encounter struct {
	Name    string   `json:"name"`
	Enemies []string `json:"enemies"`
	Level   int      `json:"level"`
	// Recruit names the enemy key that can be persuaded, if any
	Recruit string `json:"recruit,omitempty"`
}

type catalogDocument struct {
	Moves      []*entities.MoveDefinition `json:"moves"`
	Characters []characterJSON            `json:"characters"`
	Campaign   []Encounter                `json:"campaign"`
}

type characterJSON struct {
	Key         string              `json:"key"`
	Name        string              `json:"name"`
	Archetype   entities.Archetype  `json:"archetype"`
	BaseHP      int                 `json:"base_hp"`
	BaseAttack  int                 `json:"base_attack"`
	BaseDefense int                 `json:"base_defense"`
	BaseSpeed   int                 `json:"base_speed"`
	Learnset    []learnableMoveJSON `json:"learnset"`
	Ultimate    string              `json:"ultimate,omitempty"`
	ExpReward   int                 `json:"exp_reward"`
}

type learnableMoveJSON struct {
	Move  string `json:"move"`
	Level int    `json:"level"`
}

// Catalog resolves move and character keys. Definitions are shared and
// must not be mutated by callers.
type Catalog struct {
	bestiary Bestiary

	mu         sync.RWMutex
	moves      map[string]*entities.MoveDefinition
	characters map[string]*entities.CharacterDefinition
	campaign   []Encounter
}

// Config holds catalog options
type Config struct {
	// Data replaces the embedded catalog document when set
	Data []byte
	// Bestiary is asked for keys the document does not define
	Bestiary Bestiary
}

// New parses the catalog document
func New(cfg *Config) (*Catalog, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	data := cfg.Data
	if len(data) == 0 {
		data = catalogJSON
	}

	var doc catalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeConfiguration, "failed to parse catalog")
	}

	c := &Catalog{
		bestiary:   cfg.Bestiary,
		moves:      make(map[string]*entities.MoveDefinition, len(doc.Moves)),
		characters: make(map[string]*entities.CharacterDefinition, len(doc.Characters)),
	}

	for _, move := range doc.Moves {
		if err := validateMove(move); err != nil {
			return nil, err
		}
		if _, dup := c.moves[move.Key]; dup {
			return nil, dnderr.Configurationf("move %s is defined twice", move.Key)
		}
		c.moves[move.Key] = move
	}

	for _, raw := range doc.Characters {
		def, err := c.buildCharacter(raw)
		if err != nil {
			return nil, err
		}
		if _, dup := c.characters[def.Key]; dup {
			return nil, dnderr.Configurationf("character %s is defined twice", def.Key)
		}
		c.characters[def.Key] = def
	}

	for i, enc := range doc.Campaign {
		if err := c.validateEncounter(enc); err != nil {
			return nil, dnderr.Wrapf(err, "campaign step %d", i+1)
		}
	}
	c.campaign = doc.Campaign

	log.Printf("Content: loaded %d moves, %d characters, %d encounters", len(c.moves), len(c.characters), len(c.campaign))
	return c, nil
}

// Character returns the definition for key, asking the bestiary when the
// catalog has none. Bestiary results are remembered.
func (c *Catalog) Character(ctx context.Context, key string) (*entities.CharacterDefinition, error) {
	c.mu.RLock()
	def, ok := c.characters[key]
	c.mu.RUnlock()
	if ok {
		return def, nil
	}

	if c.bestiary == nil {
		return nil, dnderr.NotFoundf("character %s not found", key).WithMeta("character_key", key)
	}

	lookupCtx, cancel := context.WithTimeout(ctx, bestiaryTimeout)
	defer cancel()
	def, err := c.bestiary.GetMonster(lookupCtx, key)
	if err != nil {
		return nil, dnderr.Wrapf(err, "character %s not found in bestiary", key)
	}
	if err := c.Register(def); err != nil {
		return nil, err
	}
	return def, nil
}

// Move returns a move definition by key
func (c *Catalog) Move(key string) (*entities.MoveDefinition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	move, ok := c.moves[key]
	if !ok {
		return nil, dnderr.NotFoundf("move %s not found", key).WithMeta("move_key", key)
	}
	return move, nil
}

// Register adds a definition built elsewhere, such as a bestiary import.
// An existing key is left untouched.
func (c *Catalog) Register(def *entities.CharacterDefinition) error {
	if def == nil || def.Key == "" {
		return dnderr.Configurationf("definition key is required")
	}
	if len(def.Learnset) == 0 && def.Ultimate == nil {
		return dnderr.Configurationf("character %s has no moves", def.Key)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.characters[def.Key]; !exists {
		c.characters[def.Key] = def
	}
	return nil
}

// Keys returns every known character key, sorted
func (c *Catalog) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.characters))
	for k := range c.characters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Campaign returns a copy of the default campaign
func (c *Catalog) Campaign() []Encounter {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Encounter{}, c.campaign...)
}

func (c *Catalog) buildCharacter(raw characterJSON) (*entities.CharacterDefinition, error) {
	if raw.Key == "" {
		return nil, dnderr.Configurationf("character key is required")
	}
	if raw.BaseHP < 1 {
		return nil, dnderr.Configurationf("character %s needs positive base HP", raw.Key)
	}

	def := &entities.CharacterDefinition{
		Key:         raw.Key,
		Name:        raw.Name,
		Archetype:   raw.Archetype,
		BaseHP:      raw.BaseHP,
		BaseAttack:  raw.BaseAttack,
		BaseDefense: raw.BaseDefense,
		BaseSpeed:   raw.BaseSpeed,
		ExpReward:   raw.ExpReward,
	}
	if def.Name == "" {
		def.Name = def.Key
	}

	for _, lm := range raw.Learnset {
		move, ok := c.moves[lm.Move]
		if !ok {
			return nil, dnderr.Configurationf("character %s learns unknown move %s", raw.Key, lm.Move)
		}
		level := lm.Level
		if level < 1 {
			level = 1
		}
		def.Learnset = append(def.Learnset, entities.LearnableMove{Move: move, Level: level})
	}

	if raw.Ultimate != "" {
		move, ok := c.moves[raw.Ultimate]
		if !ok {
			return nil, dnderr.Configurationf("character %s has unknown ultimate %s", raw.Key, raw.Ultimate)
		}
		def.Ultimate = move
	}

	if len(def.Learnset) == 0 && def.Ultimate == nil {
		return nil, dnderr.Configurationf("character %s has no moves", raw.Key)
	}

	return def, nil
}

func (c *Catalog) validateEncounter(enc Encounter) error {
	if len(enc.Enemies) == 0 {
		return dnderr.Configurationf("encounter %q has no enemies", enc.Name)
	}
	for _, key := range enc.Enemies {
		if _, ok := c.characters[key]; !ok && c.bestiary == nil {
			return dnderr.Configurationf("encounter %q uses unknown character %s", enc.Name, key)
		}
	}
	if enc.Recruit != "" {
		found := false
		for _, key := range enc.Enemies {
			found = found || key == enc.Recruit
		}
		if !found {
			return dnderr.Configurationf("encounter %q recruits %s who is not among its enemies", enc.Name, enc.Recruit)
		}
	}
	return nil
}

func validateMove(move *entities.MoveDefinition) error {
	if move == nil || move.Key == "" {
		return dnderr.Configurationf("move key is required")
	}
	if move.Name == "" {
		move.Name = move.Key
	}
	if move.Effect != effects.KindNone && effects.ParseKind(string(move.Effect)) == effects.KindNone {
		return dnderr.Configurationf("move %s has unknown effect %q", move.Key, move.Effect)
	}
	if move.EffectChance < 0 || move.EffectChance > 1 {
		return dnderr.Configurationf("move %s effect chance %v is outside [0,1]", move.Key, move.EffectChance)
	}
	if move.UsageCap < 0 {
		return dnderr.Configurationf("move %s has a negative usage cap", move.Key)
	}
	return nil
}

package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	dnderr "github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/progression"
)

// Storage backends for the party records
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig `envPrefix:"DISCORD_"`
	Redis   RedisConfig   `envPrefix:"REDIS_"`
	SQLite  SQLiteConfig  `envPrefix:"SQLITE_"`
	DND5E   DND5EConfig   `envPrefix:"DND5E_"`
	Battle  BattleConfig  `envPrefix:"BATTLE_"`
}

// DiscordConfig holds the optional channel feed settings
type DiscordConfig struct {
	Token     string `env:"TOKEN"`
	ChannelID string `env:"CHANNEL_ID"`
}

// Enabled reports whether battle text should be mirrored to Discord
func (c DiscordConfig) Enabled() bool {
	return c.Token != "" && c.ChannelID != ""
}

// RedisConfig holds Redis-specific configuration. URL wins over Addr.
type RedisConfig struct {
	URL      string `env:"URL"`
	Addr     string `env:"ADDR"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// SQLiteConfig holds the path of the local save database
type SQLiteConfig struct {
	Path string `env:"PATH"`
}

// DND5EConfig controls the bestiary import. Monsters are fetched at startup
// and fought as a bonus encounter after the campaign.
type DND5EConfig struct {
	Enabled  bool          `env:"ENABLED" envDefault:"false"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"30s"`
	Monsters []string      `env:"MONSTERS" envSeparator:"," envDefault:"kobold,giant-rat,bandit"`
}

// BattleConfig tunes the battle engine
type BattleConfig struct {
	MaxPersuadeAttempts int           `env:"MAX_PERSUADE_ATTEMPTS" envDefault:"3"`
	BaseXP              int           `env:"BASE_XP" envDefault:"50"`
	XPGrowthRate        float64       `env:"XP_GROWTH_RATE" envDefault:"1.2"`
	MaxLevel            int           `env:"MAX_LEVEL" envDefault:"50"`
	ActionDelay         time.Duration `env:"ACTION_DELAY" envDefault:"0s"`
	ReplacementTimeout  time.Duration `env:"REPLACEMENT_TIMEOUT" envDefault:"0s"`
	Profile             string        `env:"PROFILE" envDefault:"default"`
	Starters            []string      `env:"STARTERS" envSeparator:"," envDefault:"knight,mage,cleric"`
}

// Progression returns the experience curve described by the battle settings
func (c BattleConfig) Progression() progression.Config {
	return progression.Config{
		BaseXPRequired: c.BaseXP,
		GrowthRate:     c.XPGrowthRate,
		MaxLevel:       c.MaxLevel,
	}
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeConfiguration, "failed to parse environment")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// StorageBackend picks where party records live: Redis when an address is
// configured, then SQLite, then memory
func (c *Config) StorageBackend() string {
	switch {
	case c.Redis.URL != "" || c.Redis.Addr != "":
		return StorageRedis
	case c.SQLite.Path != "":
		return StorageSQLite
	default:
		return StorageMemory
	}
}

func (c *Config) validate() error {
	if (c.Discord.Token == "") != (c.Discord.ChannelID == "") {
		return dnderr.Configurationf("DISCORD_TOKEN and DISCORD_CHANNEL_ID must be set together")
	}
	if c.Battle.MaxPersuadeAttempts < 1 {
		return dnderr.Configurationf("BATTLE_MAX_PERSUADE_ATTEMPTS must be at least 1, got %d", c.Battle.MaxPersuadeAttempts)
	}
	if c.Battle.BaseXP < 1 {
		return dnderr.Configurationf("BATTLE_BASE_XP must be at least 1, got %d", c.Battle.BaseXP)
	}
	if c.Battle.XPGrowthRate < 1 {
		return dnderr.Configurationf("BATTLE_XP_GROWTH_RATE must be at least 1, got %v", c.Battle.XPGrowthRate)
	}
	if c.Battle.MaxLevel < 1 {
		return dnderr.Configurationf("BATTLE_MAX_LEVEL must be at least 1, got %d", c.Battle.MaxLevel)
	}
	if c.Battle.ActionDelay < 0 || c.Battle.ReplacementTimeout < 0 {
		return dnderr.Configurationf("battle durations cannot be negative")
	}
	if c.Battle.Profile == "" {
		return dnderr.Configurationf("BATTLE_PROFILE cannot be empty")
	}
	if len(c.Battle.Starters) == 0 {
		return dnderr.Configurationf("BATTLE_STARTERS cannot be empty")
	}
	return nil
}

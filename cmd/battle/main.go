package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-battle/internal/battle"
	"github.com/KirkDiggler/rpg-battle/internal/clients/dnd5e"
	"github.com/KirkDiggler/rpg-battle/internal/config"
	"github.com/KirkDiggler/rpg-battle/internal/presenters/console"
	"github.com/KirkDiggler/rpg-battle/internal/presenters/discord"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/records"
	"github.com/KirkDiggler/rpg-battle/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open party storage: %v", err)
	}
	defer closeRepo()

	term := console.New(&console.Config{In: os.Stdin, Out: os.Stdout})
	presenters := []battle.Presenter{term}

	var feed *discord.Feed
	if cfg.Discord.Enabled() {
		dg, err := discordgo.New("Bot " + cfg.Discord.Token)
		if err != nil {
			log.Fatalf("Failed to create Discord session: %v", err)
		}
		feed = discord.NewFeed(&discord.FeedConfig{
			Sender:    dg,
			ChannelID: cfg.Discord.ChannelID,
		})
		presenters = append(presenters, feed)
		log.Printf("Mirroring battle text to Discord channel %s", cfg.Discord.ChannelID)
	}

	providerConfig := &services.ProviderConfig{
		Input:      term,
		Presenters: presenters,
		Repository: repo,
		Battle:     cfg.Battle,
	}

	// Create D&D 5e API client
	if cfg.DND5E.Enabled {
		dndClient, err := dnd5e.New(&dnd5e.Config{
			HttpClient: &http.Client{
				Timeout: cfg.DND5E.Timeout,
			},
		})
		if err != nil {
			log.Fatalf("Failed to create D&D 5e client: %v", err)
		}
		providerConfig.DNDClient = dndClient
	}

	provider, err := services.NewProvider(providerConfig)
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}

	feedCtx, stopFeed := context.WithCancel(context.Background())
	if feed != nil {
		go feed.Run(feedCtx)
	}

	steps := provider.Catalog.Campaign()
	if cfg.DND5E.Enabled && len(cfg.DND5E.Monsters) > 0 {
		level := 1
		if len(steps) > 0 {
			level = steps[len(steps)-1].Level + 1
		}
		bonus, err := provider.BestiaryEncounter(ctx, cfg.DND5E.Monsters, level)
		if err != nil {
			log.Printf("Skipping bestiary encounter: %v", err)
		} else {
			steps = append(steps, bonus)
		}
	}

	fmt.Printf("Campaign of %d encounters, profile %q. Press CTRL-C to quit.\n", len(steps), cfg.Battle.Profile)
	result, err := provider.EncounterService.RunCampaign(ctx, steps)

	stopFeed()
	if feed != nil {
		select {
		case <-feed.Done():
		case <-time.After(5 * time.Second):
			log.Println("Discord feed did not finish in time")
		}
	}

	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("Shutting down...")
			return
		}
		log.Printf("Campaign stopped: %v", err)
		closeRepo()
		os.Exit(1)
	}

	if result.Completed {
		fmt.Printf("Campaign complete after %d battles!\n", len(result.Outcomes))
	} else {
		fmt.Printf("The party fell after %d battles.\n", len(result.Outcomes))
	}
}

// openRepository picks the record store named by the config. The returned
// func releases it.
func openRepository(ctx context.Context, cfg *config.Config) (records.Repository, func(), error) {
	switch cfg.StorageBackend() {
	case config.StorageRedis:
		var opts *redis.Options
		if cfg.Redis.URL != "" {
			parsed, err := redis.ParseURL(cfg.Redis.URL)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to parse Redis URL: %w", err)
			}
			opts = parsed
		} else {
			opts = &redis.Options{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			}
		}

		client := redis.NewClient(opts)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Printf("Using Redis for persistence (profile %s)", cfg.Battle.Profile)

		repo := records.NewRedisRepository(&records.RedisRepoConfig{
			Client:  client,
			Profile: cfg.Battle.Profile,
		})
		return repo, func() {
			if err := client.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			}
		}, nil

	case config.StorageSQLite:
		repo, err := records.OpenSQLite(ctx, &records.SQLiteRepoConfig{
			Path:    cfg.SQLite.Path,
			Profile: cfg.Battle.Profile,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Printf("Using SQLite at %s for persistence (profile %s)", cfg.SQLite.Path, cfg.Battle.Profile)
		return repo, func() {
			if err := repo.Close(); err != nil {
				log.Printf("Error closing SQLite: %v", err)
			}
		}, nil
	}

	log.Println("No storage configured, the party is kept in memory")
	return records.NewInMemoryRepository(), func() {}, nil
}

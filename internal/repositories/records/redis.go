package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	dnderr "github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// redisRepo implements the Repository interface using Redis. Each record is
// a JSON blob; a per-profile set indexes the names.
type redisRepo struct {
	client       redis.UniversalClient
	profile      string
	timeProvider TimeProvider
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	Profile      string
	TimeProvider TimeProvider
}

// NewRedisRepository creates a new Redis-backed record repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	profile := cfg.Profile
	if profile == "" {
		profile = DefaultProfile
	}
	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = SystemTime()
	}

	return &redisRepo{
		client:       cfg.Client,
		profile:      profile,
		timeProvider: timeProvider,
	}
}

// key generates the Redis key for a record
func (r *redisRepo) key(name string) string {
	return fmt.Sprintf("profile:%s:record:%s", r.profile, name)
}

// indexKey generates the Redis key for the profile's record names
func (r *redisRepo) indexKey() string {
	return fmt.Sprintf("profile:%s:records", r.profile)
}

// Save writes the record and indexes its name
func (r *redisRepo) Save(ctx context.Context, record *Record) error {
	if err := validate(record); err != nil {
		return err
	}

	stored := record.clone()
	stored.UpdatedAt = r.timeProvider.Now()

	data, err := json.Marshal(stored)
	if err != nil {
		return dnderr.Wrapf(err, "failed to marshal record '%s'", record.Name)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(record.Name), string(data), 0)
	pipe.SAdd(ctx, r.indexKey(), record.Name)
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.Wrapf(err, "failed to save record '%s'", record.Name)
	}

	record.UpdatedAt = stored.UpdatedAt
	return nil
}

// Get retrieves a record by name
func (r *redisRepo) Get(ctx context.Context, name string) (*Record, error) {
	if name == "" {
		return nil, dnderr.InvalidArgument("record name is required")
	}

	data, err := r.client.Get(ctx, r.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, notFound(name)
		}
		return nil, dnderr.Wrapf(err, "failed to get record '%s'", name)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, dnderr.Wrapf(err, "failed to unmarshal record '%s'", name)
	}

	return &record, nil
}

// LoadAll reads every indexed record. Names whose blob has gone missing are
// dropped from the index.
func (r *redisRepo) LoadAll(ctx context.Context) ([]*Record, error) {
	names, err := r.client.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to list records for profile '%s'", r.profile)
	}

	loaded := make([]*Record, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			record, err := r.Get(gctx, name)
			if err != nil {
				if dnderr.IsNotFound(err) {
					return nil
				}
				return err
			}
			loaded[i] = record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]*Record, 0, len(loaded))
	for i, record := range loaded {
		if record == nil {
			log.Printf("Records: %s is indexed in profile %s but missing, removing from index", names[i], r.profile)
			r.client.SRem(ctx, r.indexKey(), names[i])
			continue
		}
		result = append(result, record)
	}
	sortBySlot(result)

	return result, nil
}

// Delete removes a record and its index entry
func (r *redisRepo) Delete(ctx context.Context, name string) error {
	if name == "" {
		return dnderr.InvalidArgument("record name is required")
	}

	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, r.key(name))
	pipe.SRem(ctx, r.indexKey(), name)
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.Wrapf(err, "failed to delete record '%s'", name)
	}
	if del.Val() == 0 {
		return notFound(name)
	}

	return nil
}

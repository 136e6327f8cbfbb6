package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/DSestu/MH-Wilds-Tools/internal/entities"
	"github.com/DSestu/MH-Wilds-Tools/internal/errors"
	redisclient "github.com/DSestu/MH-Wilds-Tools/internal/redis"
)

const (
	catalogKey        = "catalog:data"
	catalogSavedAtKey = "catalog:saved_at"

	// Error messages
	errCatalogNil = "catalog cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
	now    func() time.Time
}

// RedisConfig contains configuration for the Redis catalog repository.
type RedisConfig struct {
	Client redisclient.Client
	// Now supplies timestamps; defaults to time.Now. Tests inject a
	// fixed clock here.
	Now func() time.Time
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed catalog repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &redisRepository{
		client: cfg.Client,
		now:    now,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Catalog == nil {
		return nil, errors.InvalidArgument(errCatalogNil)
	}
	// A structurally broken catalog must never reach storage; every
	// later load would fail the same integrity check.
	if err := input.Catalog.Validate(); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Catalog)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal catalog")
	}

	savedAt := r.now().UTC()

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, catalogKey, data, 0)
	pipe.Set(ctx, catalogSavedAtKey, savedAt.Format(time.RFC3339), 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save catalog")
	}

	slog.InfoContext(ctx, "Saved catalog",
		"armor_pieces", len(input.Catalog.ArmorPieces),
		"charms", len(input.Catalog.Charms),
		"weapons", len(input.Catalog.Weapons),
		"jewels", len(input.Catalog.Jewels),
		"talents", len(input.Catalog.Talents),
	)

	return &SaveOutput{SavedAt: savedAt}, nil
}

func (r *redisRepository) Get(ctx context.Context, _ GetInput) (*GetOutput, error) {
	result, err := r.client.Get(ctx, catalogKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no catalog stored; run a scrape first")
		}
		return nil, errors.Wrapf(err, "failed to get catalog")
	}

	var catalog entities.Catalog
	if err := json.Unmarshal([]byte(result), &catalog); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal catalog")
	}

	out := &GetOutput{Catalog: &catalog}
	if raw, err := r.client.Get(ctx, catalogSavedAtKey).Result(); err == nil {
		if ts, perr := time.Parse(time.RFC3339, raw); perr == nil {
			out.SavedAt = ts
		}
	}
	return out, nil
}

package draft

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/draftwright/charwizard/internal/domain/character"
	apperrors "github.com/draftwright/charwizard/internal/errors"
)

const draftKeyPrefix = "wizard:draft:"

// redisRepo implements Repository using Redis with a TTL so abandoned
// drafts expire on their own
type redisRepo struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// RedisConfig holds configuration for the Redis draft repository
type RedisConfig struct {
	Client redis.UniversalClient
	TTL    time.Duration // defaults to 24h
}

// NewRedis creates a Redis-backed draft repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, apperrors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return nil, apperrors.InvalidArgument("redis client cannot be nil")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}

	return &redisRepo{client: cfg.Client, ttl: ttl}, nil
}

func (r *redisRepo) key(key string) string {
	return draftKeyPrefix + key
}

func (r *redisRepo) Get(ctx context.Context, key string) (*character.Draft, error) {
	if key == "" {
		return nil, apperrors.InvalidArgument("draft key is required")
	}

	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err == redis.Nil {
		return nil, apperrors.NotFoundf("no draft stored under key '%s'", key).
			WithMeta("draft_key", key)
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load draft")
	}

	var draft character.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal draft")
	}
	return &draft, nil
}

func (r *redisRepo) Put(ctx context.Context, key string, draft *character.Draft) error {
	if key == "" {
		return apperrors.InvalidArgument("draft key is required")
	}
	if draft == nil {
		return apperrors.InvalidArgument("draft cannot be nil")
	}

	draft.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(draft)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal draft")
	}

	if err := r.client.Set(ctx, r.key(key), data, r.ttl).Err(); err != nil {
		return apperrors.Wrap(err, "failed to store draft")
	}
	return nil
}

func (r *redisRepo) Delete(ctx context.Context, key string) error {
	if key == "" {
		return apperrors.InvalidArgument("draft key is required")
	}

	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return apperrors.Wrap(err, "failed to delete draft")
	}
	return nil
}

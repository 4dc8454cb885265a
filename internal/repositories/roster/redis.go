package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/draftwright/charwizard/internal/domain/character"
	wizerr "github.com/draftwright/charwizard/internal/errors"
)

type redisRepository struct {
	client redis.UniversalClient
}

// RedisConfig holds configuration for the redis roster repository
type RedisConfig struct {
	Client redis.UniversalClient
}

// NewRedis creates a redis-backed roster repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, wizerr.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return nil, wizerr.InvalidArgument("redis client cannot be nil")
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

func (r *redisRepository) ownerKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:characters", ownerID)
}

// Create stores a new character
func (r *redisRepository) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return wizerr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return wizerr.InvalidArgument("character ID is required")
	}
	if char.OwnerID == "" {
		return wizerr.InvalidArgument("character owner ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(char.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character existence: %w", err)
	}
	if exists > 0 {
		return wizerr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	if char.CreatedAt.IsZero() {
		char.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(char)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	// Pipeline keeps the record and the owner index in step. Finished
	// characters never expire.
	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(char.ID), data, 0)
	pipe.SAdd(ctx, r.ownerKey(char.OwnerID), char.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}

	return nil
}

// Get retrieves a character by ID
func (r *redisRepository) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, wizerr.InvalidArgument("character ID is required")
	}

	data, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, wizerr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var char character.Character
	if err := json.Unmarshal([]byte(data), &char); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}
	return &char, nil
}

// GetByOwner retrieves all characters for a specific owner
func (r *redisRepository) GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, wizerr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list character IDs: %w", err)
	}

	chars := make([]*character.Character, 0, len(ids))
	for _, id := range ids {
		char, err := r.Get(ctx, id)
		if err != nil {
			// The index can briefly outlive a deleted record; skip the
			// stale id rather than failing the whole listing.
			if wizerr.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		chars = append(chars, char)
	}
	return chars, nil
}

// Delete removes a character and its owner index entry
func (r *redisRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return wizerr.InvalidArgument("character ID is required")
	}

	char, err := r.Get(ctx, id)
	if err != nil {
		if wizerr.IsNotFound(err) {
			return nil
		}
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.ownerKey(char.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}
	return nil
}

package draft

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/draftwright/charwizard/internal/domain/character"
	apperrors "github.com/draftwright/charwizard/internal/errors"
)

// InMemoryRepository is an in-memory draft repository for tests and local
// runs. Drafts are snapshotted on Put so later mutation of the caller's
// draft does not leak into the store.
type InMemoryRepository struct {
	mu     sync.RWMutex
	drafts map[string][]byte
}

// NewInMemory creates a new in-memory draft repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		drafts: make(map[string][]byte),
	}
}

func (r *InMemoryRepository) Get(ctx context.Context, key string) (*character.Draft, error) {
	if key == "" {
		return nil, apperrors.InvalidArgument("draft key is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.drafts[key]
	if !exists {
		return nil, apperrors.NotFoundf("no draft stored under key '%s'", key).
			WithMeta("draft_key", key)
	}

	var draft character.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal draft")
	}
	return &draft, nil
}

func (r *InMemoryRepository) Put(ctx context.Context, key string, draft *character.Draft) error {
	if key == "" {
		return apperrors.InvalidArgument("draft key is required")
	}
	if draft == nil {
		return apperrors.InvalidArgument("draft cannot be nil")
	}

	data, err := json.Marshal(draft)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal draft")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[key] = data
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return apperrors.InvalidArgument("draft key is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drafts, key)
	return nil
}

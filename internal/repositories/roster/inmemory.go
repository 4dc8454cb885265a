package roster

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/draftwright/charwizard/internal/domain/character"
	wizerr "github.com/draftwright/charwizard/internal/errors"
)

// InMemoryRepository keeps finished characters in process memory.
// Useful for tests and single-session tooling.
type InMemoryRepository struct {
	mu      sync.RWMutex
	chars   map[string][]byte
	byOwner map[string][]string
}

// NewInMemory creates an empty in-memory roster repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		chars:   make(map[string][]byte),
		byOwner: make(map[string][]string),
	}
}

// Create stores a new character
func (r *InMemoryRepository) Create(_ context.Context, char *character.Character) error {
	if char == nil {
		return wizerr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return wizerr.InvalidArgument("character ID is required")
	}
	if char.OwnerID == "" {
		return wizerr.InvalidArgument("character owner ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.chars[char.ID]; ok {
		return wizerr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	if char.CreatedAt.IsZero() {
		char.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(char)
	if err != nil {
		return wizerr.Wrap(err, "failed to marshal character")
	}

	r.chars[char.ID] = data
	r.byOwner[char.OwnerID] = append(r.byOwner[char.OwnerID], char.ID)
	return nil
}

// Get retrieves a character by ID
func (r *InMemoryRepository) Get(_ context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, wizerr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.chars[id]
	if !ok {
		return nil, wizerr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	var char character.Character
	if err := json.Unmarshal(data, &char); err != nil {
		return nil, wizerr.Wrap(err, "failed to unmarshal character")
	}
	return &char, nil
}

// GetByOwner retrieves all characters for a specific owner
func (r *InMemoryRepository) GetByOwner(_ context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, wizerr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byOwner[ownerID]
	chars := make([]*character.Character, 0, len(ids))
	for _, id := range ids {
		data, ok := r.chars[id]
		if !ok {
			continue
		}
		var char character.Character
		if err := json.Unmarshal(data, &char); err != nil {
			return nil, wizerr.Wrap(err, "failed to unmarshal character")
		}
		chars = append(chars, &char)
	}
	return chars, nil
}

// Delete removes a character
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	if id == "" {
		return wizerr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, ok := r.chars[id]
	if !ok {
		return nil
	}

	var char character.Character
	if err := json.Unmarshal(data, &char); err != nil {
		return wizerr.Wrap(err, "failed to unmarshal character")
	}

	delete(r.chars, id)
	ids := r.byOwner[char.OwnerID]
	for i, existing := range ids {
		if existing == id {
			r.byOwner[char.OwnerID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

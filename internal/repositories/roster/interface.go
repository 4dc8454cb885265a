// Package roster persists finished characters. The build engine hands a
// character over exactly once at wizard completion; the roster owns it
// from then on.
package roster

import (
	"context"

	"github.com/draftwright/charwizard/internal/domain/character"
)

// Repository defines persistence for finished characters
type Repository interface {
	// Create stores a new character; AlreadyExists when the id collides
	Create(ctx context.Context, char *character.Character) error

	// Get retrieves a character by id
	Get(ctx context.Context, id string) (*character.Character, error)

	// GetByOwner lists every character belonging to an owner
	GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error)

	// Delete removes a character
	Delete(ctx context.Context, id string) error
}

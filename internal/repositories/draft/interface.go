// Package draft persists the in-progress wizard state so a build can be
// resumed after the wizard is closed.
package draft

//go:generate mockgen -destination=mock/mock.go -package=mockdraft -source=interface.go

import (
	"context"

	"github.com/draftwright/charwizard/internal/domain/character"
)

// Repository defines durable key-value storage for wizard drafts
type Repository interface {
	// Get retrieves the draft stored under key; NotFound when absent
	Get(ctx context.Context, key string) (*character.Draft, error)

	// Put stores or replaces the draft under key
	Put(ctx context.Context, key string, draft *character.Draft) error

	// Delete removes the draft under key; deleting a missing draft is not
	// an error
	Delete(ctx context.Context, key string) error
}

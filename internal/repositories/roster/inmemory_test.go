package roster_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wizerr "github.com/draftwright/charwizard/internal/errors"
	"github.com/draftwright/charwizard/internal/repositories/roster"
)

func TestInMemoryRepository_RoundTrip(t *testing.T) {
	repo := roster.NewInMemory()
	ctx := context.Background()

	char := sampleCharacter("char-1", "owner-1")
	require.NoError(t, repo.Create(ctx, char))

	got, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, char.Name, got.Name)
	assert.Equal(t, char.AbilityScores, got.AbilityScores)
	assert.Equal(t, char.Languages, got.Languages)
}

func TestInMemoryRepository_SnapshotIsolation(t *testing.T) {
	repo := roster.NewInMemory()
	ctx := context.Background()

	char := sampleCharacter("char-1", "owner-1")
	require.NoError(t, repo.Create(ctx, char))

	// Mutating the original after Create must not affect the stored copy
	char.Name = "Mutated"
	char.AbilityScores["str"] = 3

	got, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, "Borin", got.Name)
	assert.Equal(t, 16, got.AbilityScores["str"])
}

func TestInMemoryRepository_DuplicateAndMissing(t *testing.T) {
	repo := roster.NewInMemory()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleCharacter("char-1", "owner-1")))

	err := repo.Create(ctx, sampleCharacter("char-1", "owner-1"))
	assert.True(t, wizerr.IsAlreadyExists(err))

	_, err = repo.Get(ctx, "missing")
	assert.True(t, wizerr.IsNotFound(err))

	err = repo.Create(ctx, nil)
	assert.True(t, wizerr.IsInvalidArgument(err))
}

func TestInMemoryRepository_OwnerListing(t *testing.T) {
	repo := roster.NewInMemory()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleCharacter("char-1", "owner-1")))
	require.NoError(t, repo.Create(ctx, sampleCharacter("char-2", "owner-1")))

	chars, err := repo.GetByOwner(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, chars, 2)

	require.NoError(t, repo.Delete(ctx, "char-1"))

	chars, err = repo.GetByOwner(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, chars, 1)
	assert.Equal(t, "char-2", chars[0].ID)
}

package draft_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftwright/charwizard/internal/domain/character"
	"github.com/draftwright/charwizard/internal/domain/shared"
	"github.com/draftwright/charwizard/internal/errors"
	"github.com/draftwright/charwizard/internal/repositories/draft"
)

func sampleDraft() *character.Draft {
	d := character.NewDraft()
	d.CurrentStep = 3
	d.Selections.RaceKey = "elf"
	d.Selections.SubraceKey = "high-elf"
	d.Selections.ClassKey = "wizard"
	return d
}

func TestInMemoryRepository(t *testing.T) {
	setup := func(t *testing.T) (*draft.InMemoryRepository, context.Context) {
		t.Helper()
		return draft.NewInMemory(), context.Background()
	}

	t.Run("round trips a draft", func(t *testing.T) {
		repo, ctx := setup(t)
		stored := sampleDraft()

		require.NoError(t, repo.Put(ctx, "draft-key", stored))

		loaded, err := repo.Get(ctx, "draft-key")
		require.NoError(t, err)
		assert.Equal(t, 3, loaded.CurrentStep)
		assert.Equal(t, "elf", loaded.Selections.RaceKey)
		assert.Equal(t, "wizard", loaded.Selections.ClassKey)
	})

	t.Run("get of missing key is not found", func(t *testing.T) {
		repo, ctx := setup(t)

		_, err := repo.Get(ctx, "nothing-here")
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("put snapshots the draft", func(t *testing.T) {
		repo, ctx := setup(t)
		stored := sampleDraft()
		require.NoError(t, repo.Put(ctx, "draft-key", stored))

		// mutate after saving; the stored copy must not change
		stored.CurrentStep = 6
		stored.Selections.ClassKey = "fighter"

		loaded, err := repo.Get(ctx, "draft-key")
		require.NoError(t, err)
		assert.Equal(t, 3, loaded.CurrentStep)
		assert.Equal(t, "wizard", loaded.Selections.ClassKey)
	})

	t.Run("delete removes the draft", func(t *testing.T) {
		repo, ctx := setup(t)
		require.NoError(t, repo.Put(ctx, "draft-key", sampleDraft()))
		require.NoError(t, repo.Delete(ctx, "draft-key"))

		_, err := repo.Get(ctx, "draft-key")
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("delete of missing key is a no-op", func(t *testing.T) {
		repo, ctx := setup(t)
		assert.NoError(t, repo.Delete(ctx, "never-stored"))
	})

	t.Run("rejects nil draft and empty key", func(t *testing.T) {
		repo, ctx := setup(t)
		assert.Error(t, repo.Put(ctx, "draft-key", nil))
		assert.Error(t, repo.Put(ctx, "", sampleDraft()))
		_, err := repo.Get(ctx, "")
		assert.Error(t, err)
	})

	t.Run("allocator state survives the round trip", func(t *testing.T) {
		repo, ctx := setup(t)
		stored := sampleDraft()
		require.NoError(t, stored.Selections.Allocation.Assign(shared.AttributeStrength, 15))
		require.NoError(t, repo.Put(ctx, "draft-key", stored))

		loaded, err := repo.Get(ctx, "draft-key")
		require.NoError(t, err)
		assert.Equal(t, 15, loaded.Selections.Allocation.StandardArray.Assigned[shared.AttributeStrength])
	})
}

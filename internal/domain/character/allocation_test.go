package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftwright/charwizard/internal/dice"
	"github.com/draftwright/charwizard/internal/domain/character"
	"github.com/draftwright/charwizard/internal/domain/shared"
	"github.com/draftwright/charwizard/internal/errors"
)

func assignStandardArray(t *testing.T, alloc *character.Allocation) {
	t.Helper()
	values := map[shared.Attribute]int{
		shared.AttributeStrength:     15,
		shared.AttributeDexterity:    14,
		shared.AttributeConstitution: 13,
		shared.AttributeIntelligence: 12,
		shared.AttributeWisdom:       10,
		shared.AttributeCharisma:     8,
	}
	for attr, value := range values {
		require.NoError(t, alloc.Assign(attr, value))
	}
}

func TestStandardArray(t *testing.T) {
	t.Run("complete when the multiset matches exactly", func(t *testing.T) {
		alloc := character.NewAllocation()
		assert.False(t, alloc.IsComplete())

		assignStandardArray(t, alloc)
		assert.True(t, alloc.IsComplete())

		scores, ok := alloc.BaseScores()
		require.True(t, ok)
		assert.Equal(t, 15, scores[shared.AttributeStrength])
		assert.Equal(t, 8, scores[shared.AttributeCharisma])
	})

	t.Run("rejects a value held by another ability", func(t *testing.T) {
		alloc := character.NewAllocation()
		require.NoError(t, alloc.Assign(shared.AttributeStrength, 15))

		err := alloc.Assign(shared.AttributeDexterity, 15)
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("re-assigning the same ability is idempotent", func(t *testing.T) {
		alloc := character.NewAllocation()
		require.NoError(t, alloc.Assign(shared.AttributeStrength, 15))
		require.NoError(t, alloc.Assign(shared.AttributeStrength, 15))
		require.NoError(t, alloc.Assign(shared.AttributeStrength, 14))

		// 15 is free again after the re-assignment
		require.NoError(t, alloc.Assign(shared.AttributeDexterity, 15))
	})

	t.Run("rejects values outside the pool", func(t *testing.T) {
		alloc := character.NewAllocation()
		err := alloc.Assign(shared.AttributeStrength, 16)
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("unassign frees the value", func(t *testing.T) {
		alloc := character.NewAllocation()
		require.NoError(t, alloc.Assign(shared.AttributeStrength, 15))
		require.NoError(t, alloc.Unassign(shared.AttributeStrength))
		require.NoError(t, alloc.Assign(shared.AttributeDexterity, 15))
	})
}

func TestPointBuy(t *testing.T) {
	t.Run("default of all eights costs zero and is complete", func(t *testing.T) {
		alloc := character.NewAllocation()
		require.NoError(t, alloc.SetMode(character.AllocationPointBuy))

		assert.Equal(t, 0, alloc.PointsSpent())
		assert.Equal(t, character.PointBuyBudget, alloc.PointsRemaining())
		assert.True(t, alloc.IsComplete())
	})

	t.Run("cost table", func(t *testing.T) {
		costs := map[int]int{8: 0, 9: 1, 10: 2, 11: 3, 12: 4, 13: 5, 14: 7, 15: 9}
		for score, want := range costs {
			assert.Equal(t, want, character.PointCost(score), "cost(%d)", score)
		}
	})

	t.Run("overspending makes the state incomplete", func(t *testing.T) {
		alloc := character.NewAllocation()
		require.NoError(t, alloc.SetMode(character.AllocationPointBuy))

		// four 15s cost 36 points, over the 27 budget
		for _, attr := range []shared.Attribute{
			shared.AttributeStrength, shared.AttributeDexterity,
			shared.AttributeConstitution, shared.AttributeIntelligence,
		} {
			require.NoError(t, alloc.SetScore(attr, 15))
		}

		assert.Equal(t, 36, alloc.PointsSpent())
		assert.Negative(t, alloc.PointsRemaining())
		assert.False(t, alloc.IsComplete())
	})

	t.Run("a legal spread is complete", func(t *testing.T) {
		alloc := character.NewAllocation()
		require.NoError(t, alloc.SetMode(character.AllocationPointBuy))

		// 15/14/13/12/10/8 costs 9+7+5+4+2+0 = 27 exactly
		require.NoError(t, alloc.SetScore(shared.AttributeStrength, 15))
		require.NoError(t, alloc.SetScore(shared.AttributeDexterity, 14))
		require.NoError(t, alloc.SetScore(shared.AttributeConstitution, 13))
		require.NoError(t, alloc.SetScore(shared.AttributeIntelligence, 12))
		require.NoError(t, alloc.SetScore(shared.AttributeWisdom, 10))

		assert.Equal(t, 27, alloc.PointsSpent())
		assert.True(t, alloc.IsComplete())
	})

	t.Run("rejects out of range scores", func(t *testing.T) {
		alloc := character.NewAllocation()
		require.NoError(t, alloc.SetMode(character.AllocationPointBuy))

		assert.Error(t, alloc.SetScore(shared.AttributeStrength, 7))
		assert.Error(t, alloc.SetScore(shared.AttributeStrength, 16))
	})
}

func TestDiceRoll(t *testing.T) {
	pinnedRoller := func(t *testing.T) *dice.MockRoller {
		t.Helper()
		roller := dice.NewMockRoller()
		// six 4d6 groups: totals 15, 14, 14, 12, 10, 8
		roller.SetFaces([]int{
			6, 5, 4, 1,
			6, 4, 4, 2,
			6, 4, 4, 1,
			4, 4, 4, 3,
			4, 3, 3, 2,
			3, 3, 2, 1,
		})
		return roller
	}

	t.Run("rolling produces six results in range", func(t *testing.T) {
		alloc := character.NewAllocation()
		require.NoError(t, alloc.SetMode(character.AllocationDiceRoll))
		require.NoError(t, alloc.RollPool(dice.NewRandomRoller()))

		require.Len(t, alloc.DiceRoll.Pool, 6)
		for _, value := range alloc.DiceRoll.Pool {
			assert.GreaterOrEqual(t, value, 3)
			assert.LessOrEqual(t, value, 18)
		}
	})

	t.Run("duplicate pool values can be assigned once each", func(t *testing.T) {
		alloc := character.NewAllocation()
		require.NoError(t, alloc.SetMode(character.AllocationDiceRoll))
		require.NoError(t, alloc.RollPool(pinnedRoller(t)))
		assert.Equal(t, []int{15, 14, 14, 12, 10, 8}, alloc.DiceRoll.Pool)

		require.NoError(t, alloc.Assign(shared.AttributeStrength, 14))
		require.NoError(t, alloc.Assign(shared.AttributeDexterity, 14))

		err := alloc.Assign(shared.AttributeConstitution, 14)
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("re-rolling clears assignments", func(t *testing.T) {
		alloc := character.NewAllocation()
		require.NoError(t, alloc.SetMode(character.AllocationDiceRoll))
		require.NoError(t, alloc.RollPool(pinnedRoller(t)))
		require.NoError(t, alloc.Assign(shared.AttributeStrength, 15))

		require.NoError(t, alloc.RollPool(pinnedRoller(t)))
		assert.Empty(t, alloc.DiceRoll.Assigned)
	})

	t.Run("assignment requires a rolled pool", func(t *testing.T) {
		alloc := character.NewAllocation()
		require.NoError(t, alloc.SetMode(character.AllocationDiceRoll))

		err := alloc.Assign(shared.AttributeStrength, 12)
		assert.Error(t, err)
		assert.False(t, alloc.IsComplete())
	})

	t.Run("complete once all six rolled values are placed", func(t *testing.T) {
		alloc := character.NewAllocation()
		require.NoError(t, alloc.SetMode(character.AllocationDiceRoll))
		require.NoError(t, alloc.RollPool(pinnedRoller(t)))

		attrs := shared.Attributes()
		for i, value := range alloc.DiceRoll.Pool {
			require.NoError(t, alloc.Assign(attrs[i], value))
		}
		assert.True(t, alloc.IsComplete())
	})

	t.Run("rolling outside dice mode fails", func(t *testing.T) {
		alloc := character.NewAllocation()
		err := alloc.RollPool(dice.NewRandomRoller())
		assert.Error(t, err)
	})
}

func TestManual(t *testing.T) {
	t.Run("bounds are 3 to 20", func(t *testing.T) {
		alloc := character.NewAllocation()
		require.NoError(t, alloc.SetMode(character.AllocationManual))

		require.NoError(t, alloc.SetScore(shared.AttributeStrength, 3))
		require.NoError(t, alloc.SetScore(shared.AttributeDexterity, 20))
		assert.Error(t, alloc.SetScore(shared.AttributeConstitution, 2))
		assert.Error(t, alloc.SetScore(shared.AttributeConstitution, 21))
	})

	t.Run("defaults are complete", func(t *testing.T) {
		alloc := character.NewAllocation()
		require.NoError(t, alloc.SetMode(character.AllocationManual))
		assert.True(t, alloc.IsComplete())
	})
}

func TestModeSwitching(t *testing.T) {
	t.Run("entering a mode resets only that mode", func(t *testing.T) {
		alloc := character.NewAllocation()
		assignStandardArray(t, alloc)

		require.NoError(t, alloc.SetMode(character.AllocationPointBuy))
		require.NoError(t, alloc.SetScore(shared.AttributeStrength, 14))

		// standard array state survived the switch away
		require.NoError(t, alloc.SetMode(character.AllocationStandardArray))
		// ...but re-entering standard array resets it
		assert.Empty(t, alloc.StandardArray.Assigned)
		assert.False(t, alloc.IsComplete())

		// point buy state survived; re-entering resets it too
		assert.Equal(t, 14, alloc.PointBuy.Scores[shared.AttributeStrength])
		require.NoError(t, alloc.SetMode(character.AllocationPointBuy))
		assert.Equal(t, 8, alloc.PointBuy.Scores[shared.AttributeStrength])
	})

	t.Run("entering dice roll clears pool and assignments", func(t *testing.T) {
		alloc := character.NewAllocation()
		require.NoError(t, alloc.SetMode(character.AllocationDiceRoll))
		require.NoError(t, alloc.RollPool(dice.NewRandomRoller()))

		require.NoError(t, alloc.SetMode(character.AllocationManual))
		require.NoError(t, alloc.SetMode(character.AllocationDiceRoll))
		assert.Empty(t, alloc.DiceRoll.Pool)
		assert.Empty(t, alloc.DiceRoll.Assigned)
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		alloc := character.NewAllocation()
		assert.Error(t, alloc.SetMode(character.AllocationMode("coin_flip")))
	})
}

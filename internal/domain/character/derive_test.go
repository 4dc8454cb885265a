package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftwright/charwizard/internal/domain/character"
	"github.com/draftwright/charwizard/internal/domain/rulebook"
	"github.com/draftwright/charwizard/internal/domain/shared"
)

func fighterScores() character.AbilityScoreSet {
	return character.AbilityScoreSet{
		shared.AttributeStrength:     15,
		shared.AttributeDexterity:    14,
		shared.AttributeConstitution: 13,
		shared.AttributeIntelligence: 12,
		shared.AttributeWisdom:       10,
		shared.AttributeCharisma:     8,
	}
}

func TestMaxHPAtLevel1(t *testing.T) {
	catalog := rulebook.NewSRD()

	t.Run("hit die max plus con modifier", func(t *testing.T) {
		hp, err := character.MaxHPAtLevel1(catalog.Class("fighter"), 1)
		require.NoError(t, err)
		assert.Equal(t, 11, hp)

		hp, err = character.MaxHPAtLevel1(catalog.Class("wizard"), -1)
		require.NoError(t, err)
		assert.Equal(t, 5, hp)
	})

	t.Run("unknown class errors", func(t *testing.T) {
		_, err := character.MaxHPAtLevel1(catalog.Class("artificer"), 0)
		assert.Error(t, err)
	})
}

func TestBaseArmorClass(t *testing.T) {
	assert.Equal(t, 12, character.BaseArmorClass(2))
	assert.Equal(t, 9, character.BaseArmorClass(-1))
}

func TestSpellSaveDC(t *testing.T) {
	catalog := rulebook.NewSRD()
	scores := fighterScores()

	t.Run("undefined for non-casters", func(t *testing.T) {
		_, ok := character.SpellSaveDC(catalog.Class("fighter"), 1, scores)
		assert.False(t, ok)
	})

	t.Run("8 + proficiency + casting modifier", func(t *testing.T) {
		wizardScores := scores.Clone()
		wizardScores[shared.AttributeIntelligence] = 16

		dc, ok := character.SpellSaveDC(catalog.Class("wizard"), 1, wizardScores)
		require.True(t, ok)
		assert.Equal(t, 13, dc) // 8 + 2 + 3
	})
}

func TestDerive(t *testing.T) {
	catalog := rulebook.NewSRD()

	t.Run("fighter projection", func(t *testing.T) {
		stats, err := character.Derive(catalog.Class("fighter"), 1, fighterScores())
		require.NoError(t, err)

		assert.Equal(t, 11, stats.MaxHP) // 10 + mod(13)
		assert.Equal(t, 12, stats.ArmorClass)
		assert.False(t, stats.HasSpellSave)
		assert.Empty(t, stats.SpellSlots)
		assert.Zero(t, stats.SpellsKnown)
		assert.Equal(t, 2, stats.Modifiers[shared.AttributeDexterity])
		assert.Equal(t, -1, stats.Modifiers[shared.AttributeCharisma])
	})

	t.Run("bard projection", func(t *testing.T) {
		scores := fighterScores().Clone()
		scores[shared.AttributeCharisma] = 15

		stats, err := character.Derive(catalog.Class("bard"), 1, scores)
		require.NoError(t, err)

		assert.True(t, stats.HasSpellSave)
		assert.Equal(t, 12, stats.SpellSaveDC) // 8 + 2 + 2
		assert.Equal(t, map[int]int{1: 2}, stats.SpellSlots)
		assert.Equal(t, 4, stats.SpellsKnown)
		assert.Equal(t, 1, stats.MaxSpellLevel)
	})

	t.Run("incomplete scores error", func(t *testing.T) {
		_, err := character.Derive(catalog.Class("fighter"), 1, character.AbilityScoreSet{})
		assert.Error(t, err)
	})
}

package rulebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/draftwright/charwizard/internal/domain/rulebook"
)

func TestSpellSlots(t *testing.T) {
	tests := []struct {
		name     string
		classKey string
		level    int
		want     map[int]int
	}{
		{"bard level 1", "bard", 1, map[int]int{1: 2}},
		{"wizard level 3", "wizard", 3, map[int]int{1: 4, 2: 2}},
		{"warlock level 1", "warlock", 1, map[int]int{1: 1}},
		{"warlock level 3 pact slots", "warlock", 3, map[int]int{2: 2}},
		{"fighter has none", "fighter", 1, map[int]int{}},
		{"rogue has none", "rogue", 5, map[int]int{}},
		{"level out of range", "bard", 99, map[int]int{}},
		{"unknown class", "artificer", 1, map[int]int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rulebook.SpellSlots(tt.classKey, tt.level))
		})
	}
}

func TestSpellSlotsReturnsCopy(t *testing.T) {
	first := rulebook.SpellSlots("bard", 1)
	first[1] = 99

	assert.Equal(t, map[int]int{1: 2}, rulebook.SpellSlots("bard", 1))
}

func TestSpellsKnown(t *testing.T) {
	assert.Equal(t, 4, rulebook.SpellsKnown("bard", 1))
	assert.Equal(t, 6, rulebook.SpellsKnown("wizard", 1))
	assert.Equal(t, 2, rulebook.SpellsKnown("sorcerer", 1))
	assert.Equal(t, 0, rulebook.SpellsKnown("fighter", 1))
	assert.Equal(t, 0, rulebook.SpellsKnown("bard", 0))
	assert.Equal(t, 0, rulebook.SpellsKnown("bard", 100))
}

func TestMaxSpellLevel(t *testing.T) {
	assert.Equal(t, 0, rulebook.MaxSpellLevel(0))
	assert.Equal(t, 1, rulebook.MaxSpellLevel(1))
	assert.Equal(t, 1, rulebook.MaxSpellLevel(2))
	assert.Equal(t, 2, rulebook.MaxSpellLevel(3))
	assert.Equal(t, 3, rulebook.MaxSpellLevel(5))
	assert.Equal(t, 9, rulebook.MaxSpellLevel(20))

	// monotonic
	prev := 0
	for level := 1; level <= 20; level++ {
		current := rulebook.MaxSpellLevel(level)
		assert.GreaterOrEqual(t, current, prev)
		prev = current
	}
}

func TestProficiencyBonus(t *testing.T) {
	assert.Equal(t, 2, rulebook.ProficiencyBonus(1))
	assert.Equal(t, 2, rulebook.ProficiencyBonus(4))
	assert.Equal(t, 3, rulebook.ProficiencyBonus(5))
	assert.Equal(t, 6, rulebook.ProficiencyBonus(17))
}

package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftwright/charwizard/internal/domain/character"
	"github.com/draftwright/charwizard/internal/domain/rulebook"
	"github.com/draftwright/charwizard/internal/domain/shared"
	wizerr "github.com/draftwright/charwizard/internal/errors"
	svc "github.com/draftwright/charwizard/internal/services/character"
	"github.com/draftwright/charwizard/internal/uuid"
)

func setupAssembler(t *testing.T) *svc.Assembler {
	t.Helper()

	assembler, err := svc.NewAssembler(&svc.AssemblerConfig{
		Catalog:     rulebook.NewSRD(),
		IDGenerator: &uuid.FixedGenerator{ID: "char-fixed"},
	})
	require.NoError(t, err)
	return assembler
}

// standardArraySelections assigns the fixed array str 15, dex 14, con 13,
// int 12, wis 10, cha 8 and fills in the given race/class
func standardArraySelections(t *testing.T, raceKey, classKey string) *character.Selections {
	t.Helper()

	sel := character.NewSelections()
	sel.RaceKey = raceKey
	sel.ClassKey = classKey
	sel.Name = "Test"

	assignments := map[shared.Attribute]int{
		shared.AttributeStrength:     15,
		shared.AttributeDexterity:    14,
		shared.AttributeConstitution: 13,
		shared.AttributeIntelligence: 12,
		shared.AttributeWisdom:       10,
		shared.AttributeCharisma:     8,
	}
	for attr, score := range assignments {
		require.NoError(t, sel.Allocation.Assign(attr, score))
	}
	return sel
}

func TestAssembler_HumanFighter(t *testing.T) {
	assembler := setupAssembler(t)

	sel := standardArraySelections(t, "human", "fighter")
	sel.SkillKeys = []string{"athletics", "perception"}

	char, err := assembler.Assemble("owner-1", sel)
	require.NoError(t, err)

	assert.Equal(t, "char-fixed", char.ID)
	assert.Equal(t, "owner-1", char.OwnerID)
	assert.Equal(t, "Test", char.Name)
	assert.Equal(t, 1, char.Level)

	// Human grants no bonuses, so the array stands as assigned
	assert.Equal(t, 15, char.AbilityScores["str"])
	assert.Equal(t, 11, char.MaxHP, "d10 max + con modifier(13)")
	assert.Equal(t, 11, char.CurrentHP)
	assert.Equal(t, 12, char.ArmorClass, "10 + dex modifier(14)")
	assert.Equal(t, 30, char.Speed)
	assert.Equal(t, 125, char.Gold)

	assert.False(t, char.Caster)
	assert.Zero(t, char.SpellSaveDC)
	assert.Empty(t, char.SpellSlotsMax)
	assert.Empty(t, char.KnownSpells)
	assert.Zero(t, char.Inspiration)

	// Every choice group defaults to its first option
	keys := make(map[string]int)
	for _, item := range char.Equipment {
		keys[item.Key] = item.Quantity
	}
	assert.Equal(t, 1, keys["chain-mail"])
	assert.Equal(t, 1, keys["longsword"])
	assert.Equal(t, 1, keys["shield"])
	assert.Equal(t, 20, keys["crossbow-bolt"])
	assert.Equal(t, 1, keys["dungeoneers-pack"])

	// Human holds common; the one extra grant takes the next pool entry
	assert.Equal(t, []string{"common", "dwarvish"}, char.Languages)
}

func TestAssembler_Bard(t *testing.T) {
	assembler := setupAssembler(t)

	sel := standardArraySelections(t, "human", "bard")
	require.NoError(t, sel.Allocation.Unassign(shared.AttributeStrength))
	require.NoError(t, sel.Allocation.Unassign(shared.AttributeCharisma))
	require.NoError(t, sel.Allocation.Assign(shared.AttributeCharisma, 15))
	require.NoError(t, sel.Allocation.Assign(shared.AttributeStrength, 8))
	sel.SpellKeys = []string{"vicious-mockery", "cure-wounds", "healing-word", "charm-person"}
	sel.SkillKeys = []string{"performance", "persuasion", "deception"}

	char, err := assembler.Assemble("owner-1", sel)
	require.NoError(t, err)

	assert.True(t, char.Caster)
	assert.Equal(t, 12, char.SpellSaveDC, "8 + 2 proficiency + cha modifier(15)")
	assert.Equal(t, map[int]int{1: 2}, char.SpellSlotsMax)
	assert.Equal(t, map[int]int{1: 2}, char.SpellSlotsCurrent)
	assert.Equal(t, sel.SpellKeys, char.KnownSpells)
	assert.Equal(t, 1, char.Inspiration, "bards start with an inspiration use")
}

func TestAssembler_SpellsOffClassListDropped(t *testing.T) {
	assembler := setupAssembler(t)

	sel := standardArraySelections(t, "human", "bard")
	sel.SpellKeys = []string{"vicious-mockery", "magic-missile-typo", "cure-wounds"}

	char, err := assembler.Assemble("owner-1", sel)
	require.NoError(t, err)
	assert.Equal(t, []string{"vicious-mockery", "cure-wounds"}, char.KnownSpells)
}

func TestAssembler_BackgroundMerges(t *testing.T) {
	assembler := setupAssembler(t)

	sel := standardArraySelections(t, "dwarf", "rogue")
	sel.SubraceKey = "mountain-dwarf"
	sel.BackgroundKey = "acolyte"
	sel.SkillKeys = []string{"stealth", "insight", "perception", "deception"}
	sel.ExpertiseKeys = []string{"stealth", "perception"}

	char, err := assembler.Assemble("owner-1", sel)
	require.NoError(t, err)

	// Dwarf +2 con, mountain dwarf +2 str
	assert.Equal(t, 17, char.AbilityScores["str"])
	assert.Equal(t, 15, char.AbilityScores["con"])
	assert.Equal(t, 25, char.Speed)

	assert.Equal(t, 100+15, char.Gold, "class gold plus background gold")

	// Background skills merge without duplicating the wizard's insight pick
	assert.ElementsMatch(t, []string{"stealth", "insight", "perception", "deception", "religion"},
		char.Proficiencies.Skills)
	assert.Equal(t, []string{"stealth", "perception"}, char.Proficiencies.Expertise)

	// Dwarf holds common+dwarvish; acolyte's two grants skip held entries
	assert.Equal(t, []string{"common", "dwarvish", "elvish", "giant"}, char.Languages)

	keys := make(map[string]int)
	for _, item := range char.Equipment {
		keys[item.Key] = item.Quantity
	}
	assert.Equal(t, 2, keys["dagger"], "rogue fixed gear")
	assert.Equal(t, 1, keys["thieves-tools"])
	assert.Equal(t, 1, keys["holy-symbol"], "acolyte gear")
}

func TestAssembler_EquipmentPicks(t *testing.T) {
	assembler := setupAssembler(t)

	sel := standardArraySelections(t, "human", "fighter")
	sel.EquipmentPicks = map[string]int{
		"fighter-armor":  1,
		"fighter-ranged": 1,
		"fighter-pack":   7, // out of range falls back to the first option
	}

	char, err := assembler.Assemble("owner-1", sel)
	require.NoError(t, err)

	keys := make(map[string]int)
	for _, item := range char.Equipment {
		keys[item.Key] = item.Quantity
	}
	assert.Zero(t, keys["chain-mail"])
	assert.Equal(t, 1, keys["leather-armor"])
	assert.Equal(t, 1, keys["longbow"])
	assert.Equal(t, 20, keys["arrow"])
	assert.Equal(t, 2, keys["handaxe"])
	assert.Equal(t, 1, keys["dungeoneers-pack"])
}

func TestAssembler_Validation(t *testing.T) {
	assembler := setupAssembler(t)

	t.Run("nil selections", func(t *testing.T) {
		_, err := assembler.Assemble("owner-1", nil)
		assert.True(t, wizerr.IsInvalidArgument(err))
	})

	t.Run("blank name", func(t *testing.T) {
		sel := standardArraySelections(t, "human", "fighter")
		sel.Name = "   "
		_, err := assembler.Assemble("owner-1", sel)
		assert.True(t, wizerr.IsValidation(err))
	})

	t.Run("unknown class", func(t *testing.T) {
		sel := standardArraySelections(t, "human", "fighter")
		sel.ClassKey = "artificer"
		_, err := assembler.Assemble("owner-1", sel)
		assert.True(t, wizerr.IsNotFound(err))
	})

	t.Run("incomplete allocation", func(t *testing.T) {
		sel := character.NewSelections()
		sel.RaceKey = "human"
		sel.ClassKey = "fighter"
		sel.Name = "Test"
		_, err := assembler.Assemble("owner-1", sel)
		assert.True(t, wizerr.IsValidation(err))
	})
}

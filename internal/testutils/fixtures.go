package testutils

import (
	"github.com/draftwright/charwizard/internal/domain/character"
)

// CreateTestDraft builds a mid-wizard draft: race and class chosen,
// sitting on the ability-score step
func CreateTestDraft() *character.Draft {
	d := character.NewDraft()
	d.CurrentStep = 3
	d.Selections.RaceKey = "elf"
	d.Selections.SubraceKey = "high-elf"
	d.Selections.ClassKey = "wizard"
	return d
}

// CreateTestCharacter builds a finished fighter record
func CreateTestCharacter(id, ownerID string) *character.Character {
	scores := character.NewAbilityScoreSet(10)
	scores["str"] = 16
	scores["con"] = 14

	return &character.Character{
		ID:       id,
		OwnerID:  ownerID,
		Name:     "Borin",
		RaceKey:  "dwarf",
		ClassKey: "fighter",
		Level:    1,

		AbilityScores: scores,
		MaxHP:         12,
		CurrentHP:     12,
		ArmorClass:    10,
		Speed:         25,
		Gold:          125,
		Languages:     []string{"common", "dwarvish"},
		Proficiencies: character.Proficiencies{
			Skills: []string{"athletics", "perception"},
		},
		Equipment: []character.InventoryItem{
			{Key: "chain-mail", Quantity: 1},
			{Key: "longsword", Quantity: 1},
		},
	}
}

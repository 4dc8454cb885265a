package character

import (
	"time"

	"github.com/draftwright/charwizard/internal/domain/shared"
)

// Proficiencies groups everything a character is proficient with. Skill
// entries are merged from class choices and background grants with no
// duplicates; Expertise is a subset of Skills.
type Proficiencies struct {
	SavingThrows []shared.Attribute `json:"saving_throws,omitempty"`
	Skills       []string           `json:"skills,omitempty"`
	Expertise    []string           `json:"expertise,omitempty"`
	Armor        []string           `json:"armor,omitempty"`
	Weapons      []string           `json:"weapons,omitempty"`
	Tools        []string           `json:"tools,omitempty"`
}

// InventoryItem is an owned quantity of a catalog equipment entry
type InventoryItem struct {
	Key      string `json:"key"`
	Quantity int    `json:"quantity"`
}

// Character is the finished build record produced once by the assembler at
// wizard completion. The roster store owns it afterwards; the build engine
// never mutates a finished character.
type Character struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id,omitempty"`
	Name    string `json:"name"`

	RaceKey       string `json:"race_key"`
	SubraceKey    string `json:"subrace_key,omitempty"`
	ClassKey      string `json:"class_key"`
	SubclassKey   string `json:"subclass_key,omitempty"`
	BackgroundKey string `json:"background_key,omitempty"`
	Level         int    `json:"level"`

	AbilityScores AbilityScoreSet `json:"ability_scores"`

	MaxHP       int  `json:"max_hp"`
	CurrentHP   int  `json:"current_hp"`
	ArmorClass  int  `json:"armor_class"`
	SpellSaveDC int  `json:"spell_save_dc,omitempty"`
	Caster      bool `json:"caster"`
	Inspiration int  `json:"inspiration,omitempty"`
	Speed       int  `json:"speed"`
	Gold        int  `json:"gold"`

	SpellSlotsMax     map[int]int `json:"spell_slots_max,omitempty"`
	SpellSlotsCurrent map[int]int `json:"spell_slots_current,omitempty"`
	KnownSpells       []string    `json:"known_spells,omitempty"`

	Proficiencies Proficiencies   `json:"proficiencies"`
	Equipment     []InventoryItem `json:"equipment,omitempty"`
	Languages     []string        `json:"languages,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

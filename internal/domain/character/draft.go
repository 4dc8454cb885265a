package character

import (
	"time"
)

// Selections carries every in-progress wizard choice. The zero value is a
// fresh draft with nothing chosen.
type Selections struct {
	RaceKey    string `json:"race_key,omitempty"`
	SubraceKey string `json:"subrace_key,omitempty"`

	ClassKey    string `json:"class_key,omitempty"`
	SubclassKey string `json:"subclass_key,omitempty"`

	Allocation *Allocation `json:"allocation,omitempty"`

	Name          string `json:"name,omitempty"`
	BackgroundKey string `json:"background_key,omitempty"`

	SpellKeys     []string `json:"spell_keys,omitempty"`
	SkillKeys     []string `json:"skill_keys,omitempty"`
	ExpertiseKeys []string `json:"expertise_keys,omitempty"`

	// EquipmentPicks maps a class equipment-choice key to the chosen
	// option index; unchosen groups default to option 0 at assembly
	EquipmentPicks map[string]int `json:"equipment_picks,omitempty"`
}

// NewSelections creates an empty selection record with a fresh allocator
func NewSelections() *Selections {
	return &Selections{Allocation: NewAllocation()}
}

// HasSpell reports whether a spell key is currently selected
func (s *Selections) HasSpell(key string) bool {
	for _, selected := range s.SpellKeys {
		if selected == key {
			return true
		}
	}
	return false
}

// HasSkill reports whether a skill key is currently selected
func (s *Selections) HasSkill(key string) bool {
	for _, selected := range s.SkillKeys {
		if selected == key {
			return true
		}
	}
	return false
}

// Draft is the persisted in-progress wizard state
type Draft struct {
	CurrentStep int         `json:"current_step"`
	Selections  *Selections `json:"selections"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// NewDraft creates a draft positioned at the first step
func NewDraft() *Draft {
	return &Draft{
		CurrentStep: 1,
		Selections:  NewSelections(),
		UpdatedAt:   time.Now().UTC(),
	}
}

package rulebook

import (
	"github.com/draftwright/charwizard/internal/domain/shared"
)

// EquipmentGrant is a quantity of a catalog equipment item
type EquipmentGrant struct {
	Key      string `json:"key"`
	Quantity int    `json:"quantity"`
}

// EquipmentChoice is one pick among mutually exclusive equipment bundles
type EquipmentChoice struct {
	Key     string             `json:"key"`
	Name    string             `json:"name"`
	Options [][]EquipmentGrant `json:"options"`
}

// Class is an immutable reference catalog entry
type Class struct {
	Key                 string             `json:"key"`
	Name                string             `json:"name"`
	HitDie              int                `json:"hit_die"`
	SavingThrows        []shared.Attribute `json:"saving_throws"`
	SkillChoiceCount    int                `json:"skill_choice_count"`
	SkillOptions        []string           `json:"skill_options"`
	ArmorProficiencies  []string           `json:"armor_proficiencies,omitempty"`
	WeaponProficiencies []string           `json:"weapon_proficiencies,omitempty"`
	ToolProficiencies   []string           `json:"tool_proficiencies,omitempty"`
	CastingAbility      shared.Attribute   `json:"casting_ability,omitempty"` // empty for non-casters
	StartingGold        int                `json:"starting_gold"`
	FixedEquipment      []EquipmentGrant   `json:"fixed_equipment,omitempty"`
	EquipmentChoices    []EquipmentChoice  `json:"equipment_choices,omitempty"`
	Subclasses          []*Subclass        `json:"subclasses,omitempty"`
}

// Subclass is a class specialization choice
type Subclass struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// IsCaster reports whether the class has a spellcasting ability
func (c *Class) IsCaster() bool {
	return c != nil && c.CastingAbility != ""
}

// Subclass returns the subclass with the given key, or nil
func (c *Class) Subclass(key string) *Subclass {
	if c == nil {
		return nil
	}
	for _, sub := range c.Subclasses {
		if sub.Key == key {
			return sub
		}
	}
	return nil
}

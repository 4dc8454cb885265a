package character

import (
	"github.com/draftwright/charwizard/internal/domain/rulebook"
	"github.com/draftwright/charwizard/internal/domain/shared"
	"github.com/draftwright/charwizard/internal/errors"
)

// DerivedStats is the recomputed projection of class, level and final
// ability scores. Never stored; rebuild it whenever an input changes.
type DerivedStats struct {
	Modifiers     map[shared.Attribute]int `json:"modifiers"`
	MaxHP         int                      `json:"max_hp"`
	ArmorClass    int                      `json:"armor_class"`
	SpellSaveDC   int                      `json:"spell_save_dc,omitempty"`
	HasSpellSave  bool                     `json:"has_spell_save"`
	SpellSlots    map[int]int              `json:"spell_slots,omitempty"`
	SpellsKnown   int                      `json:"spells_known"`
	MaxSpellLevel int                      `json:"max_spell_level"`
}

// MaxHPAtLevel1 is the class hit-die maximum plus the constitution
// modifier. Errors for a nil or malformed class; callers guard lookups.
func MaxHPAtLevel1(class *rulebook.Class, conModifier int) (int, error) {
	if class == nil {
		return 0, errors.InvalidArgument("class is required for hit points")
	}
	if class.HitDie <= 0 {
		return 0, errors.InvalidArgumentf("class '%s' has no hit die", class.Key)
	}
	return class.HitDie + conModifier, nil
}

// BaseArmorClass is the unarmored AC before any equipment: 10 + DEX mod
func BaseArmorClass(dexModifier int) int {
	return 10 + dexModifier
}

// SpellSaveDC computes 8 + proficiency bonus + casting ability modifier.
// The bool is false for non-casters, for whom the DC is undefined.
func SpellSaveDC(class *rulebook.Class, level int, scores AbilityScoreSet) (int, bool) {
	if !class.IsCaster() {
		return 0, false
	}
	castingMod := Modifier(scores[class.CastingAbility])
	return 8 + rulebook.ProficiencyBonus(level) + castingMod, true
}

// Derive computes the full derived-stat projection. Pure: safe to call on
// every render, mid-wizard for preview and at finish time.
func Derive(class *rulebook.Class, level int, scores AbilityScoreSet) (*DerivedStats, error) {
	if !scores.Complete() {
		return nil, errors.InvalidArgument("ability scores are incomplete")
	}

	maxHP, err := MaxHPAtLevel1(class, Modifier(scores[shared.AttributeConstitution]))
	if err != nil {
		return nil, err
	}

	stats := &DerivedStats{
		Modifiers:  scores.Modifiers(),
		MaxHP:      maxHP,
		ArmorClass: BaseArmorClass(Modifier(scores[shared.AttributeDexterity])),
	}

	if dc, ok := SpellSaveDC(class, level, scores); ok {
		stats.SpellSaveDC = dc
		stats.HasSpellSave = true
		stats.SpellSlots = rulebook.SpellSlots(class.Key, level)
		stats.SpellsKnown = rulebook.SpellsKnown(class.Key, level)
		stats.MaxSpellLevel = rulebook.MaxSpellLevel(level)
	}

	return stats, nil
}

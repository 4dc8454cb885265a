package wizard

import (
	"strings"

	"github.com/draftwright/charwizard/internal/domain/character"
	"github.com/draftwright/charwizard/internal/domain/rulebook"
	"github.com/draftwright/charwizard/internal/errors"
)

// expertiseClassKey is the one class whose skills step additionally
// requires expertise picks
const expertiseClassKey = "rogue"

// expertiseCount is how many expertise picks that class must make
const expertiseCount = 2

// CanAdvance checks the advancement gate for a 1-based step. A nil return
// means the step is advance-eligible; otherwise a validation error
// describes what is missing. Gate failures never propagate as faults: the
// caller renders the message and navigation stays put.
func CanAdvance(step int, sel *character.Selections, catalog rulebook.Catalog) error {
	if sel == nil {
		return errors.Validation("no selections")
	}

	switch KindAt(step, sel, catalog) {
	case StepRace:
		if sel.RaceKey == "" {
			return errors.Validation("choose a race to continue")
		}
		if catalog.Race(sel.RaceKey) == nil {
			return errors.Validationf("race '%s' is not available", sel.RaceKey)
		}
		return nil

	case StepClass:
		if sel.ClassKey == "" {
			return errors.Validation("choose a class to continue")
		}
		if catalog.Class(sel.ClassKey) == nil {
			return errors.Validationf("class '%s' is not available", sel.ClassKey)
		}
		return nil

	case StepAbilities:
		if !sel.Allocation.IsComplete() {
			return errors.Validation("assign all six ability scores to continue")
		}
		return nil

	case StepIdentity:
		if strings.TrimSpace(sel.Name) == "" {
			return errors.Validation("enter a character name to continue")
		}
		return nil

	case StepSpells:
		budget := SpellBudget(sel, catalog)
		if len(sel.SpellKeys) != budget {
			return errors.Validationf("select exactly %d spells (%d selected)",
				budget, len(sel.SpellKeys))
		}
		return nil

	case StepSkills:
		return canAdvanceSkills(sel, catalog)

	case StepSummary:
		return nil

	default:
		return errors.Validationf("step %d is out of range", step)
	}
}

func canAdvanceSkills(sel *character.Selections, catalog rulebook.Catalog) error {
	class := catalog.Class(sel.ClassKey)
	if class == nil {
		return errors.Validation("choose a class before picking skills")
	}
	if len(sel.SkillKeys) < class.SkillChoiceCount {
		return errors.Validationf("select at least %d skills (%d selected)",
			class.SkillChoiceCount, len(sel.SkillKeys))
	}
	if class.Key != expertiseClassKey {
		return nil
	}
	if len(sel.ExpertiseKeys) != expertiseCount {
		return errors.Validationf("mark exactly %d skills as expertise", expertiseCount)
	}
	for _, key := range sel.ExpertiseKeys {
		if !sel.HasSkill(key) {
			return errors.Validationf("expertise skill '%s' must be one of your selected skills", key)
		}
	}
	return nil
}

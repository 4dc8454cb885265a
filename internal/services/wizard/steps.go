// Package wizard drives the multi-step character build: step projection,
// per-step advancement gates, draft persistence and final assembly.
package wizard

import (
	"github.com/draftwright/charwizard/internal/domain/character"
	"github.com/draftwright/charwizard/internal/domain/rulebook"
)

// StepKind identifies what a wizard step asks the user for
type StepKind string

const (
	StepRace      StepKind = "race"
	StepClass     StepKind = "class"
	StepAbilities StepKind = "abilities"
	StepIdentity  StepKind = "identity"
	StepSpells    StepKind = "spells"
	StepSkills    StepKind = "skills"
	StepSummary   StepKind = "summary"
)

// TitleKey returns the locale key for the step's display title
func (k StepKind) TitleKey() string {
	return "wizard.step." + string(k)
}

// SpellBudget returns how many spells the selected class may know at level
// 1; zero when no class is chosen or the class does not cast.
func SpellBudget(sel *character.Selections, catalog rulebook.Catalog) int {
	if sel == nil {
		return 0
	}
	class := catalog.Class(sel.ClassKey)
	if !class.IsCaster() {
		return 0
	}
	return rulebook.SpellsKnown(class.Key, 1)
}

// StepsFor projects the current selections onto the step sequence. It is
// recomputed on every call rather than cached: changing class reshapes the
// sequence immediately, and a stale count can never survive.
func StepsFor(sel *character.Selections, catalog rulebook.Catalog) []StepKind {
	steps := []StepKind{StepRace, StepClass, StepAbilities, StepIdentity}
	if SpellBudget(sel, catalog) > 0 {
		steps = append(steps, StepSpells)
	}
	return append(steps, StepSkills, StepSummary)
}

// TotalSteps is the current step count: 6, or 7 with a spell step
func TotalSteps(sel *character.Selections, catalog rulebook.Catalog) int {
	return len(StepsFor(sel, catalog))
}

// KindAt returns the step kind at a 1-based position, or "" out of range
func KindAt(step int, sel *character.Selections, catalog rulebook.Catalog) StepKind {
	steps := StepsFor(sel, catalog)
	if step < 1 || step > len(steps) {
		return ""
	}
	return steps[step-1]
}

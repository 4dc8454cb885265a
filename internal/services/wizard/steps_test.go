package wizard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/draftwright/charwizard/internal/domain/character"
	"github.com/draftwright/charwizard/internal/domain/rulebook"
	"github.com/draftwright/charwizard/internal/services/wizard"
)

func TestStepsFor(t *testing.T) {
	catalog := rulebook.NewSRD()

	t.Run("no class yet gives six steps", func(t *testing.T) {
		sel := character.NewSelections()
		assert.Equal(t, 6, wizard.TotalSteps(sel, catalog))
		assert.Equal(t, wizard.StepSkills, wizard.KindAt(5, sel, catalog))
		assert.Equal(t, wizard.StepSummary, wizard.KindAt(6, sel, catalog))
	})

	t.Run("non-caster gives six steps", func(t *testing.T) {
		sel := character.NewSelections()
		sel.ClassKey = "fighter"
		assert.Equal(t, 6, wizard.TotalSteps(sel, catalog))
	})

	t.Run("caster with a spell budget gives seven steps", func(t *testing.T) {
		sel := character.NewSelections()
		sel.ClassKey = "bard"
		assert.Equal(t, 7, wizard.TotalSteps(sel, catalog))
		assert.Equal(t, wizard.StepSpells, wizard.KindAt(5, sel, catalog))
		assert.Equal(t, wizard.StepSkills, wizard.KindAt(6, sel, catalog))
		assert.Equal(t, wizard.StepSummary, wizard.KindAt(7, sel, catalog))
	})

	t.Run("kind out of range is empty", func(t *testing.T) {
		sel := character.NewSelections()
		assert.Equal(t, wizard.StepKind(""), wizard.KindAt(0, sel, catalog))
		assert.Equal(t, wizard.StepKind(""), wizard.KindAt(7, sel, catalog))
	})
}

func TestSpellBudget(t *testing.T) {
	catalog := rulebook.NewSRD()

	cases := []struct {
		classKey string
		want     int
	}{
		{"fighter", 0},
		{"rogue", 0},
		{"bard", 4},
		{"cleric", 3},
		{"wizard", 6},
		{"", 0},
		{"artificer", 0},
	}
	for _, tc := range cases {
		sel := character.NewSelections()
		sel.ClassKey = tc.classKey
		assert.Equal(t, tc.want, wizard.SpellBudget(sel, catalog), "class %q", tc.classKey)
	}
}

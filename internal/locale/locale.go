// Package locale resolves user-facing strings by key so render layers can
// swap languages without touching the build engine.
package locale

import "fmt"

// Translator resolves a message key to display text. Args are applied with
// Sprintf when the resolved message contains verbs.
type Translator interface {
	T(key string, args ...any) string
}

// StaticTranslator resolves keys against a fixed message table, falling
// back to the key itself so a missing entry stays visible rather than
// blank.
type StaticTranslator struct {
	Messages map[string]string
}

// T implements Translator
func (t *StaticTranslator) T(key string, args ...any) string {
	msg, ok := t.Messages[key]
	if !ok {
		msg = key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// English returns the default English message table
func English() *StaticTranslator {
	return &StaticTranslator{Messages: map[string]string{
		"wizard.step.race":      "Race",
		"wizard.step.class":     "Class",
		"wizard.step.abilities": "Ability Scores",
		"wizard.step.identity":  "Name & Background",
		"wizard.step.spells":    "Spells",
		"wizard.step.skills":    "Skills & Equipment",
		"wizard.step.summary":   "Summary",

		"wizard.resume.prompt": "You have a saved draft on step %d. Resume or start over?",
	}}
}

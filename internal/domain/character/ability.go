package character

import (
	"fmt"

	"github.com/draftwright/charwizard/internal/domain/shared"
)

// AbilityScoreSet maps every ability key to a raw score. Scores, not
// modifiers; a complete set always carries all six keys.
type AbilityScoreSet map[shared.Attribute]int

// NewAbilityScoreSet returns a set with every ability at the given score
func NewAbilityScoreSet(score int) AbilityScoreSet {
	set := make(AbilityScoreSet, 6)
	for _, attr := range shared.Attributes() {
		set[attr] = score
	}
	return set
}

// Clone returns an independent copy
func (s AbilityScoreSet) Clone() AbilityScoreSet {
	out := make(AbilityScoreSet, len(s))
	for attr, score := range s {
		out[attr] = score
	}
	return out
}

// Complete reports whether all six keys are present
func (s AbilityScoreSet) Complete() bool {
	for _, attr := range shared.Attributes() {
		if _, ok := s[attr]; !ok {
			return false
		}
	}
	return true
}

// Modifier derives the ability modifier: floor((score-10)/2).
// Integer division truncates toward zero, so negative odd deltas are
// adjusted to floor instead.
func Modifier(score int) int {
	delta := score - 10
	if delta < 0 && delta%2 != 0 {
		return delta/2 - 1
	}
	return delta / 2
}

// Modifiers derives the modifier for every ability in the set
func (s AbilityScoreSet) Modifiers() map[shared.Attribute]int {
	out := make(map[shared.Attribute]int, len(s))
	for attr, score := range s {
		out[attr] = Modifier(score)
	}
	return out
}

// Display formats a score with its modifier, e.g. "14 (+2)"
func Display(score int) string {
	return fmt.Sprintf("%d (%+d)", score, Modifier(score))
}

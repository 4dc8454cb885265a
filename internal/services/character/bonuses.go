// Package character builds finished characters from wizard selections:
// racial bonus application and full assembly of the final record.
package character

import (
	"github.com/draftwright/charwizard/internal/domain/character"
	"github.com/draftwright/charwizard/internal/domain/rulebook"
)

// ApplyBonuses returns base scores with race and subrace ability bonuses
// added. Unknown race or subrace keys contribute nothing; the input set is
// never mutated.
func ApplyBonuses(base character.AbilityScoreSet, raceKey, subraceKey string, catalog rulebook.Catalog) character.AbilityScoreSet {
	final := base.Clone()
	if catalog == nil {
		return final
	}

	race := catalog.Race(raceKey)
	if race == nil {
		return final
	}
	for attr, bonus := range race.AbilityBonuses {
		final[attr] += bonus
	}

	if sub := race.Subrace(subraceKey); sub != nil {
		for attr, bonus := range sub.AbilityBonuses {
			final[attr] += bonus
		}
	}
	return final
}

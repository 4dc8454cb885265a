package rulebook

import (
	"github.com/draftwright/charwizard/internal/domain/shared"
)

// Race is an immutable reference catalog entry
type Race struct {
	Key            string                   `json:"key"`
	Name           string                   `json:"name"`
	Speed          int                      `json:"speed"`
	AbilityBonuses map[shared.Attribute]int `json:"ability_bonuses,omitempty"`
	Languages      []string                 `json:"languages,omitempty"`
	ExtraLanguages int                      `json:"extra_languages,omitempty"`
	Subraces       []*Subrace               `json:"subraces,omitempty"`
}

// Subrace refines a race with additional bonuses
type Subrace struct {
	Key            string                   `json:"key"`
	Name           string                   `json:"name"`
	AbilityBonuses map[shared.Attribute]int `json:"ability_bonuses,omitempty"`
	SpeedBonus     int                      `json:"speed_bonus,omitempty"`
	ExtraLanguages int                      `json:"extra_languages,omitempty"`
}

// Subrace returns the subrace with the given key, or nil
func (r *Race) Subrace(key string) *Subrace {
	if r == nil {
		return nil
	}
	for _, sub := range r.Subraces {
		if sub.Key == key {
			return sub
		}
	}
	return nil
}

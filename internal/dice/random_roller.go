package dice

import (
	"math/rand/v2"
	"sort"

	"github.com/draftwright/charwizard/internal/errors"
)

// randomRoller implements Roller with math/rand
type randomRoller struct{}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

func (r *randomRoller) Roll(count, sides int) (*RollResult, error) {
	if err := validateRoll(count, sides); err != nil {
		return nil, err
	}

	result := &RollResult{Rolls: make([]int, count)}
	for i := 0; i < count; i++ {
		die := rand.IntN(sides) + 1
		result.Rolls[i] = die
		result.Total += die
	}
	return result, nil
}

func (r *randomRoller) RollKeepHighest(count, sides, keep int) (*RollResult, error) {
	if err := validateRoll(count, sides); err != nil {
		return nil, err
	}
	if keep <= 0 || keep > count {
		return nil, errors.InvalidArgumentf("keep must be in [1,%d], got %d", count, keep)
	}

	rolled, err := r.Roll(count, sides)
	if err != nil {
		return nil, err
	}
	return keepHighest(rolled.Rolls, keep), nil
}

// keepHighest splits rolls into kept and dropped, summing only the kept dice
func keepHighest(rolls []int, keep int) *RollResult {
	sorted := make([]int, len(rolls))
	copy(sorted, rolls)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	result := &RollResult{Rolls: rolls}
	for i, die := range sorted {
		if i < keep {
			result.Total += die
		} else {
			result.Dropped = append(result.Dropped, die)
		}
	}
	return result
}

func validateRoll(count, sides int) error {
	if count <= 0 {
		return errors.InvalidArgumentf("dice count must be positive, got %d", count)
	}
	if sides <= 1 {
		return errors.InvalidArgumentf("dice must have at least 2 sides, got %d", sides)
	}
	return nil
}

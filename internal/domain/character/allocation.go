package character

import (
	"github.com/draftwright/charwizard/internal/dice"
	"github.com/draftwright/charwizard/internal/domain/shared"
	"github.com/draftwright/charwizard/internal/errors"
)

// AllocationMode selects how ability scores are generated
type AllocationMode string

const (
	AllocationStandardArray AllocationMode = "standard_array"
	AllocationPointBuy      AllocationMode = "point_buy"
	AllocationDiceRoll      AllocationMode = "dice_roll"
	AllocationManual        AllocationMode = "manual"
)

// StandardArrayPool is the fixed value pool for the standard array mode
var StandardArrayPool = []int{15, 14, 13, 12, 10, 8}

const (
	// PointBuyBudget is the total points available in point buy
	PointBuyBudget = 27

	// PointBuyMin and PointBuyMax bound each ability in point buy
	PointBuyMin = 8
	PointBuyMax = 15

	// ManualMin and ManualMax bound each ability in manual entry
	ManualMin = 3
	ManualMax = 20
)

// pointBuyCosts is the nonlinear cumulative cost per score
var pointBuyCosts = map[int]int{
	8: 0, 9: 1, 10: 2, 11: 3, 12: 4, 13: 5, 14: 7, 15: 9,
}

// AssignmentState maps abilities to values drawn from a pool
type AssignmentState struct {
	Assigned map[shared.Attribute]int `json:"assigned"`
}

// DiceRollState is an AssignmentState plus the rolled pool it draws from
type DiceRollState struct {
	Pool     []int                    `json:"pool,omitempty"`
	Assigned map[shared.Attribute]int `json:"assigned"`
}

// ScoreState holds independently chosen per-ability values
type ScoreState struct {
	Scores AbilityScoreSet `json:"scores"`
}

// Allocation is the four-mode ability score allocator. One mode is active
// at a time; the inactive modes keep their state so switching back is
// lossless. Entering a mode resets only that mode's own state.
type Allocation struct {
	Mode          AllocationMode  `json:"mode"`
	StandardArray AssignmentState `json:"standard_array"`
	PointBuy      ScoreState      `json:"point_buy"`
	DiceRoll      DiceRollState   `json:"dice_roll"`
	Manual        ScoreState      `json:"manual"`
}

// NewAllocation creates an allocator with standard array active and the
// score-entry modes at their default of 8 per ability
func NewAllocation() *Allocation {
	return &Allocation{
		Mode:          AllocationStandardArray,
		StandardArray: AssignmentState{Assigned: make(map[shared.Attribute]int)},
		PointBuy:      ScoreState{Scores: NewAbilityScoreSet(PointBuyMin)},
		DiceRoll:      DiceRollState{Assigned: make(map[shared.Attribute]int)},
		Manual:        ScoreState{Scores: NewAbilityScoreSet(PointBuyMin)},
	}
}

// SetMode activates a mode, resetting only the newly entered mode's state
func (a *Allocation) SetMode(mode AllocationMode) error {
	switch mode {
	case AllocationStandardArray:
		a.StandardArray = AssignmentState{Assigned: make(map[shared.Attribute]int)}
	case AllocationPointBuy:
		a.PointBuy = ScoreState{Scores: NewAbilityScoreSet(PointBuyMin)}
	case AllocationDiceRoll:
		a.DiceRoll = DiceRollState{Assigned: make(map[shared.Attribute]int)}
	case AllocationManual:
		a.Manual = ScoreState{Scores: NewAbilityScoreSet(PointBuyMin)}
	default:
		return errors.InvalidArgumentf("unknown allocation mode '%s'", mode)
	}

	a.Mode = mode
	return nil
}

// RollPool rolls six 4d6-keep-3 results, replacing any existing pool and
// forfeiting existing assignments. Re-rolling is always permitted.
func (a *Allocation) RollPool(roller dice.Roller) error {
	if a.Mode != AllocationDiceRoll {
		return errors.Validationf("cannot roll a pool in %s mode", a.Mode)
	}

	pool := make([]int, 0, 6)
	for i := 0; i < 6; i++ {
		result, err := roller.RollKeepHighest(4, 6, 3)
		if err != nil {
			return errors.Wrap(err, "rolling ability pool")
		}
		pool = append(pool, result.Total)
	}

	a.DiceRoll.Pool = pool
	a.DiceRoll.Assigned = make(map[shared.Attribute]int)
	return nil
}

// pool returns the active pool for the pool-based modes
func (a *Allocation) activePool() ([]int, map[shared.Attribute]int, error) {
	switch a.Mode {
	case AllocationStandardArray:
		return StandardArrayPool, a.StandardArray.Assigned, nil
	case AllocationDiceRoll:
		if len(a.DiceRoll.Pool) == 0 {
			return nil, nil, errors.Validation("no pool has been rolled")
		}
		return a.DiceRoll.Pool, a.DiceRoll.Assigned, nil
	default:
		return nil, nil, errors.Validationf("%s mode does not assign from a pool", a.Mode)
	}
}

// Assign places a pool value onto an ability. A value still held by a
// different ability cannot be assigned again; re-assigning the same
// ability is permitted (the old value returns to the pool).
func (a *Allocation) Assign(attr shared.Attribute, value int) error {
	if _, ok := shared.ParseAttribute(string(attr)); !ok {
		return errors.InvalidArgumentf("unknown ability '%s'", attr)
	}

	pool, assigned, err := a.activePool()
	if err != nil {
		return err
	}

	available := 0
	for _, poolValue := range pool {
		if poolValue == value {
			available++
		}
	}
	if available == 0 {
		return errors.Validationf("%d is not in the pool", value)
	}

	// count copies of value held by other abilities
	held := 0
	for otherAttr, otherValue := range assigned {
		if otherAttr != attr && otherValue == value {
			held++
		}
	}
	if held >= available {
		return errors.Validationf("%d is already assigned to another ability", value)
	}

	assigned[attr] = value
	return nil
}

// Unassign clears an ability's pool assignment
func (a *Allocation) Unassign(attr shared.Attribute) error {
	_, assigned, err := a.activePool()
	if err != nil {
		return err
	}
	delete(assigned, attr)
	return nil
}

// SetScore sets an ability value in point buy or manual modes
func (a *Allocation) SetScore(attr shared.Attribute, value int) error {
	if _, ok := shared.ParseAttribute(string(attr)); !ok {
		return errors.InvalidArgumentf("unknown ability '%s'", attr)
	}

	switch a.Mode {
	case AllocationPointBuy:
		if value < PointBuyMin || value > PointBuyMax {
			return errors.Validationf("point buy scores must be in [%d,%d], got %d", PointBuyMin, PointBuyMax, value)
		}
		a.PointBuy.Scores[attr] = value
	case AllocationManual:
		if value < ManualMin || value > ManualMax {
			return errors.Validationf("manual scores must be in [%d,%d], got %d", ManualMin, ManualMax, value)
		}
		a.Manual.Scores[attr] = value
	default:
		return errors.Validationf("%s mode does not set scores directly", a.Mode)
	}
	return nil
}

// PointCost returns the point buy cost for a single score
func PointCost(score int) int {
	return pointBuyCosts[score]
}

// PointsSpent totals the point buy cost of the current scores
func (a *Allocation) PointsSpent() int {
	total := 0
	for _, score := range a.PointBuy.Scores {
		total += PointCost(score)
	}
	return total
}

// PointsRemaining returns the unspent point buy budget (may be negative)
func (a *Allocation) PointsRemaining() int {
	return PointBuyBudget - a.PointsSpent()
}

// IsComplete is the authoritative completeness predicate for the active
// mode; the wizard consults it before permitting forward navigation.
func (a *Allocation) IsComplete() bool {
	if a == nil {
		return false
	}
	switch a.Mode {
	case AllocationStandardArray:
		return assignmentMatchesPool(a.StandardArray.Assigned, StandardArrayPool)
	case AllocationDiceRoll:
		return len(a.DiceRoll.Pool) == 6 &&
			assignmentMatchesPool(a.DiceRoll.Assigned, a.DiceRoll.Pool)
	case AllocationPointBuy:
		if !a.PointBuy.Scores.Complete() {
			return false
		}
		for _, score := range a.PointBuy.Scores {
			if score < PointBuyMin || score > PointBuyMax {
				return false
			}
		}
		return a.PointsSpent() <= PointBuyBudget
	case AllocationManual:
		if !a.Manual.Scores.Complete() {
			return false
		}
		for _, score := range a.Manual.Scores {
			if score < ManualMin || score > ManualMax {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// BaseScores returns the six base scores for the active mode. The second
// return is false until the mode is complete.
func (a *Allocation) BaseScores() (AbilityScoreSet, bool) {
	if !a.IsComplete() {
		return nil, false
	}

	switch a.Mode {
	case AllocationStandardArray:
		return assignmentToSet(a.StandardArray.Assigned), true
	case AllocationDiceRoll:
		return assignmentToSet(a.DiceRoll.Assigned), true
	case AllocationPointBuy:
		return a.PointBuy.Scores.Clone(), true
	case AllocationManual:
		return a.Manual.Scores.Clone(), true
	default:
		return nil, false
	}
}

// assignmentMatchesPool checks that the assigned values form exactly the
// pool multiset: one value per ability, no duplicates beyond the pool's own
func assignmentMatchesPool(assigned map[shared.Attribute]int, pool []int) bool {
	if len(assigned) != len(pool) {
		return false
	}

	remaining := make(map[int]int, len(pool))
	for _, value := range pool {
		remaining[value]++
	}
	for _, attr := range shared.Attributes() {
		value, ok := assigned[attr]
		if !ok {
			return false
		}
		if remaining[value] == 0 {
			return false
		}
		remaining[value]--
	}
	return true
}

func assignmentToSet(assigned map[shared.Attribute]int) AbilityScoreSet {
	set := make(AbilityScoreSet, len(assigned))
	for attr, value := range assigned {
		set[attr] = value
	}
	return set
}

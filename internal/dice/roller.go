package dice

// Roller provides an interface for rolling dice
// This allows us to inject deterministic implementations for testing
type Roller interface {
	// Roll rolls count dice with the given number of sides
	Roll(count, sides int) (*RollResult, error)

	// RollKeepHighest rolls count dice and sums only the keep highest results
	RollKeepHighest(count, sides, keep int) (*RollResult, error)
}

// RollResult holds the outcome of a dice roll
type RollResult struct {
	Total   int   `json:"total"`
	Rolls   []int `json:"rolls"`             // every die rolled, in roll order
	Dropped []int `json:"dropped,omitempty"` // dice excluded from the total
}

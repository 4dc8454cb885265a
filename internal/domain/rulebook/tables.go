package rulebook

// Spell progression tables. Indexed by class key and character level;
// lookups outside the tables return empty or zero, never an error.

// fullCasterSlots covers bard, cleric, druid, sorcerer and wizard
var fullCasterSlots = map[int]map[int]int{
	1: {1: 2},
	2: {1: 3},
	3: {1: 4, 2: 2},
	4: {1: 4, 2: 3},
	5: {1: 4, 2: 3, 3: 2},
}

// warlockSlots follow pact magic: few slots, all at the highest level
var warlockSlots = map[int]map[int]int{
	1: {1: 1},
	2: {1: 2},
	3: {2: 2},
	4: {2: 2},
	5: {3: 2},
}

var fullCasters = map[string]bool{
	"bard":     true,
	"cleric":   true,
	"druid":    true,
	"sorcerer": true,
	"wizard":   true,
}

// spellsKnownByLevel is the number of leveled spells chosen at creation and
// on level-up. Prepared casters get a flat budget here too: the build wizard
// treats every caster as picking a fixed count.
var spellsKnownByLevel = map[string][]int{
	// index 0 is character level 1
	"bard":     {4, 5, 6, 7, 8},
	"cleric":   {3, 4, 5, 6, 7},
	"druid":    {2, 3, 4, 5, 6},
	"sorcerer": {2, 3, 4, 5, 6},
	"warlock":  {2, 3, 4, 5, 6},
	"wizard":   {6, 8, 10, 12, 14},
}

// SpellSlots returns the slot table for a class at a character level.
// Non-casters and out-of-range levels get an empty map.
func SpellSlots(classKey string, level int) map[int]int {
	var table map[int]map[int]int
	switch {
	case fullCasters[classKey]:
		table = fullCasterSlots
	case classKey == "warlock":
		table = warlockSlots
	default:
		return map[int]int{}
	}

	slots, ok := table[level]
	if !ok {
		return map[int]int{}
	}

	out := make(map[int]int, len(slots))
	for spellLevel, count := range slots {
		out[spellLevel] = count
	}
	return out
}

// SpellsKnown returns how many leveled spells a class knows at a character
// level, 0 for non-casters or levels outside the table.
func SpellsKnown(classKey string, level int) int {
	known, ok := spellsKnownByLevel[classKey]
	if !ok || level < 1 || level > len(known) {
		return 0
	}
	return known[level-1]
}

// MaxSpellLevel returns the highest castable spell level at a character
// level. Monotonic in level; 0 for levels below 1.
func MaxSpellLevel(level int) int {
	if level < 1 {
		return 0
	}
	max := (level + 1) / 2
	if max > 9 {
		max = 9
	}
	return max
}

// ProficiencyBonus returns the proficiency bonus for a character level
func ProficiencyBonus(level int) int {
	if level < 1 {
		return 0
	}
	return 2 + (level-1)/4
}

// InspirationBaseline returns the bardic inspiration uses a fresh
// character starts with; zero for every other class.
func InspirationBaseline(classKey string) int {
	if classKey == "bard" {
		return 1
	}
	return 0
}

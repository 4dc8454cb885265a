// Package rulebook holds the read-only reference catalog the build engine
// consumes: races, classes, backgrounds, spells, equipment and the spell
// progression tables. The engine never mutates catalog entries.
package rulebook

// Catalog provides read-only lookups by stable key. Implementations return
// nil for unknown keys; a miss contributes nothing rather than failing.
type Catalog interface {
	Race(key string) *Race
	Class(key string) *Class
	Background(key string) *Background
	Spell(key string) *Spell
	Equipment(key string) *Equipment

	Races() []*Race
	Classes() []*Class
	Backgrounds() []*Background
	Languages() []Language

	// SpellsByClassAndLevel lists the spells of the given level on a
	// class's spell list
	SpellsByClassAndLevel(classKey string, level int) []*Spell
}

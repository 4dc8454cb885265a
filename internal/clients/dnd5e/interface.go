// Package dnd5e adapts the public 5e SRD API into the reference catalog
// the build engine consumes.
package dnd5e

//go:generate mockgen -destination=mock/mock.go -package=mockdnd5e -source=interface.go

import (
	"github.com/draftwright/charwizard/internal/domain/rulebook"
)

// Client fetches reference entries from the 5e API, already converted to
// the domain catalog types
type Client interface {
	GetRace(key string) (*rulebook.Race, error)
	GetClass(key string) (*rulebook.Class, error)
	GetSpell(key string) (*rulebook.Spell, error)

	// ListSpellsByClassAndLevel returns shallow spell entries (key, name,
	// level, class) for a class's list at one level
	ListSpellsByClassAndLevel(classKey string, level int) ([]*rulebook.Spell, error)
}

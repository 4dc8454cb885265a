package dnd5e

import (
	"log/slog"
	"sync"

	"github.com/draftwright/charwizard/internal/domain/rulebook"
	"github.com/draftwright/charwizard/internal/errors"
)

// APICatalog implements rulebook.Catalog over the live 5e API with a
// static base catalog underneath. API entries overlay the base entry for
// the same key: live data wins for what the API carries (bonuses, speed,
// hit dice, spell lists), the base fills what it does not (subraces,
// backgrounds, languages, gold). Every API failure falls back to the base
// so the wizard keeps working offline; a miss in both contributes nothing.
type APICatalog struct {
	client Client
	base   rulebook.Catalog
	log    *slog.Logger

	mu      sync.RWMutex
	races   map[string]*rulebook.Race
	classes map[string]*rulebook.Class
	spells  map[string]*rulebook.Spell
}

// APICatalogConfig holds dependencies for the API-backed catalog
type APICatalogConfig struct {
	Client Client
	Base   rulebook.Catalog
	Logger *slog.Logger
}

// NewAPICatalog creates an API-backed catalog
func NewAPICatalog(cfg *APICatalogConfig) (*APICatalog, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return nil, errors.InvalidArgument("client cannot be nil")
	}
	if cfg.Base == nil {
		return nil, errors.InvalidArgument("base catalog cannot be nil")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &APICatalog{
		client:  cfg.Client,
		base:    cfg.Base,
		log:     logger,
		races:   make(map[string]*rulebook.Race),
		classes: make(map[string]*rulebook.Class),
		spells:  make(map[string]*rulebook.Spell),
	}, nil
}

// Race implements rulebook.Catalog
func (c *APICatalog) Race(key string) *rulebook.Race {
	if key == "" {
		return nil
	}

	c.mu.RLock()
	cached, ok := c.races[key]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	race, err := c.client.GetRace(key)
	if err != nil || race == nil {
		if err != nil {
			c.log.Debug("race lookup fell back to base catalog", "key", key, "error", err)
		}
		return c.base.Race(key)
	}

	if base := c.base.Race(key); base != nil {
		race.Languages = base.Languages
		race.ExtraLanguages = base.ExtraLanguages
		race.Subraces = base.Subraces
	}

	c.mu.Lock()
	c.races[key] = race
	c.mu.Unlock()
	return race
}

// Class implements rulebook.Catalog
func (c *APICatalog) Class(key string) *rulebook.Class {
	if key == "" {
		return nil
	}

	c.mu.RLock()
	cached, ok := c.classes[key]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	class, err := c.client.GetClass(key)
	if err != nil || class == nil {
		if err != nil {
			c.log.Debug("class lookup fell back to base catalog", "key", key, "error", err)
		}
		return c.base.Class(key)
	}

	if base := c.base.Class(key); base != nil {
		class.SavingThrows = base.SavingThrows
		class.ArmorProficiencies = base.ArmorProficiencies
		class.WeaponProficiencies = base.WeaponProficiencies
		class.ToolProficiencies = base.ToolProficiencies
		class.CastingAbility = base.CastingAbility
		class.StartingGold = base.StartingGold
		class.Subclasses = base.Subclasses
		if class.SkillChoiceCount == 0 {
			class.SkillChoiceCount = base.SkillChoiceCount
			class.SkillOptions = base.SkillOptions
		}
		if len(class.FixedEquipment) == 0 {
			class.FixedEquipment = base.FixedEquipment
		}
		if len(class.EquipmentChoices) == 0 {
			class.EquipmentChoices = base.EquipmentChoices
		}
	}

	c.mu.Lock()
	c.classes[key] = class
	c.mu.Unlock()
	return class
}

// Spell implements rulebook.Catalog
func (c *APICatalog) Spell(key string) *rulebook.Spell {
	if key == "" {
		return nil
	}

	c.mu.RLock()
	cached, ok := c.spells[key]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	spell, err := c.client.GetSpell(key)
	if err != nil || spell == nil {
		if err != nil {
			c.log.Debug("spell lookup fell back to base catalog", "key", key, "error", err)
		}
		return c.base.Spell(key)
	}

	c.mu.Lock()
	c.spells[key] = spell
	c.mu.Unlock()
	return spell
}

// SpellsByClassAndLevel implements rulebook.Catalog. Entries resolve
// through Spell so repeat lookups by key stay consistent with the list.
func (c *APICatalog) SpellsByClassAndLevel(classKey string, level int) []*rulebook.Spell {
	listed, err := c.client.ListSpellsByClassAndLevel(classKey, level)
	if err != nil {
		c.log.Debug("spell list fell back to base catalog",
			"class", classKey, "level", level, "error", err)
		return c.base.SpellsByClassAndLevel(classKey, level)
	}

	spells := make([]*rulebook.Spell, 0, len(listed))
	for _, entry := range listed {
		if full := c.Spell(entry.Key); full != nil {
			spells = append(spells, full)
			continue
		}
		spells = append(spells, entry)
	}
	return spells
}

// Background implements rulebook.Catalog; backgrounds are local-only
func (c *APICatalog) Background(key string) *rulebook.Background {
	return c.base.Background(key)
}

// Equipment implements rulebook.Catalog; the item index is local-only
func (c *APICatalog) Equipment(key string) *rulebook.Equipment {
	return c.base.Equipment(key)
}

// Races implements rulebook.Catalog; listings come from the base index
func (c *APICatalog) Races() []*rulebook.Race {
	return c.base.Races()
}

// Classes implements rulebook.Catalog
func (c *APICatalog) Classes() []*rulebook.Class {
	return c.base.Classes()
}

// Backgrounds implements rulebook.Catalog
func (c *APICatalog) Backgrounds() []*rulebook.Background {
	return c.base.Backgrounds()
}

// Languages implements rulebook.Catalog
func (c *APICatalog) Languages() []rulebook.Language {
	return c.base.Languages()
}

package character

import (
	"strings"
	"time"

	"github.com/draftwright/charwizard/internal/domain/character"
	"github.com/draftwright/charwizard/internal/domain/rulebook"
	"github.com/draftwright/charwizard/internal/domain/shared"
	"github.com/draftwright/charwizard/internal/errors"
	"github.com/draftwright/charwizard/internal/uuid"
)

// Assembler turns completed wizard selections into a finished character.
// It runs exactly once per wizard completion.
type Assembler struct {
	catalog     rulebook.Catalog
	idGenerator uuid.Generator
}

// AssemblerConfig holds dependencies for the assembler
type AssemblerConfig struct {
	Catalog     rulebook.Catalog
	IDGenerator uuid.Generator
}

// NewAssembler creates an assembler
func NewAssembler(cfg *AssemblerConfig) (*Assembler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Catalog == nil {
		return nil, errors.InvalidArgument("catalog cannot be nil")
	}
	if cfg.IDGenerator == nil {
		return nil, errors.InvalidArgument("id generator cannot be nil")
	}
	return &Assembler{
		catalog:     cfg.Catalog,
		idGenerator: cfg.IDGenerator,
	}, nil
}

// Assemble builds the level-1 character record from finished selections.
// Catalog misses for equipment and spells contribute nothing; missing race
// or class is an error because hit points and speed cannot be derived.
func (a *Assembler) Assemble(ownerID string, sel *character.Selections) (*character.Character, error) {
	if sel == nil {
		return nil, errors.InvalidArgument("selections cannot be nil")
	}

	name := strings.TrimSpace(sel.Name)
	if name == "" {
		return nil, errors.Validation("character name is required")
	}

	race := a.catalog.Race(sel.RaceKey)
	if race == nil {
		return nil, errors.NotFoundf("race '%s' not found", sel.RaceKey)
	}
	class := a.catalog.Class(sel.ClassKey)
	if class == nil {
		return nil, errors.NotFoundf("class '%s' not found", sel.ClassKey)
	}

	base, ok := sel.Allocation.BaseScores()
	if !ok {
		return nil, errors.Validation("ability score allocation is incomplete")
	}
	final := ApplyBonuses(base, sel.RaceKey, sel.SubraceKey, a.catalog)

	stats, err := character.Derive(class, 1, final)
	if err != nil {
		return nil, err
	}

	background := a.catalog.Background(sel.BackgroundKey)

	char := &character.Character{
		ID:      a.idGenerator.New(),
		OwnerID: ownerID,
		Name:    name,

		RaceKey:       sel.RaceKey,
		SubraceKey:    sel.SubraceKey,
		ClassKey:      sel.ClassKey,
		SubclassKey:   sel.SubclassKey,
		BackgroundKey: sel.BackgroundKey,
		Level:         1,

		AbilityScores: final,

		MaxHP:       stats.MaxHP,
		CurrentHP:   stats.MaxHP,
		ArmorClass:  stats.ArmorClass,
		Caster:      class.IsCaster(),
		Inspiration: rulebook.InspirationBaseline(class.Key),
		Speed:       a.speed(race, sel.SubraceKey),
		Gold:        a.gold(class, background),

		Proficiencies: a.proficiencies(class, background, sel),
		Equipment:     a.equipment(class, background, sel),
		Languages:     a.languages(race, sel.SubraceKey, background),

		CreatedAt: time.Now().UTC(),
	}

	if stats.HasSpellSave {
		char.SpellSaveDC = stats.SpellSaveDC
		char.SpellSlotsMax = stats.SpellSlots
		char.SpellSlotsCurrent = copySlots(stats.SpellSlots)
		char.KnownSpells = a.knownSpells(class, sel.SpellKeys)
	}

	return char, nil
}

func (a *Assembler) speed(race *rulebook.Race, subraceKey string) int {
	speed := race.Speed
	if sub := race.Subrace(subraceKey); sub != nil {
		speed += sub.SpeedBonus
	}
	return speed
}

func (a *Assembler) gold(class *rulebook.Class, background *rulebook.Background) int {
	gold := class.StartingGold
	if background != nil {
		gold += background.Gold
	}
	return gold
}

func (a *Assembler) proficiencies(class *rulebook.Class, background *rulebook.Background, sel *character.Selections) character.Proficiencies {
	skills := make([]string, 0, len(sel.SkillKeys))
	seen := make(map[string]bool)
	for _, key := range sel.SkillKeys {
		if !seen[key] {
			seen[key] = true
			skills = append(skills, key)
		}
	}
	if background != nil {
		for _, key := range background.Skills {
			if !seen[key] {
				seen[key] = true
				skills = append(skills, key)
			}
		}
	}

	return character.Proficiencies{
		SavingThrows: append([]shared.Attribute{}, class.SavingThrows...),
		Skills:       skills,
		Expertise:    append([]string{}, sel.ExpertiseKeys...),
		Armor:        append([]string{}, class.ArmorProficiencies...),
		Weapons:      append([]string{}, class.WeaponProficiencies...),
		Tools:        append([]string{}, class.ToolProficiencies...),
	}
}

// equipment gathers every fixed grant, the chosen option per class choice
// group (unchosen groups fall back to the first option), and background
// gear. Grants whose key misses the catalog are dropped.
func (a *Assembler) equipment(class *rulebook.Class, background *rulebook.Background, sel *character.Selections) []character.InventoryItem {
	var grants []rulebook.EquipmentGrant
	grants = append(grants, class.FixedEquipment...)

	for _, choice := range class.EquipmentChoices {
		idx := sel.EquipmentPicks[choice.Key]
		if idx < 0 || idx >= len(choice.Options) {
			idx = 0
		}
		if len(choice.Options) > 0 {
			grants = append(grants, choice.Options[idx]...)
		}
	}

	if background != nil {
		grants = append(grants, background.Equipment...)
	}

	items := make([]character.InventoryItem, 0, len(grants))
	index := make(map[string]int)
	for _, grant := range grants {
		if a.catalog.Equipment(grant.Key) == nil {
			continue
		}
		qty := grant.Quantity
		if qty <= 0 {
			qty = 1
		}
		if i, ok := index[grant.Key]; ok {
			items[i].Quantity += qty
			continue
		}
		index[grant.Key] = len(items)
		items = append(items, character.InventoryItem{Key: grant.Key, Quantity: qty})
	}
	return items
}

// languages starts from the race defaults and fills extra-language grants
// from the catalog pool, skipping languages already held. When the pool
// runs dry the default language stands in so every grant resolves.
func (a *Assembler) languages(race *rulebook.Race, subraceKey string, background *rulebook.Background) []string {
	held := make(map[string]bool)
	languages := make([]string, 0, len(race.Languages))
	for _, key := range race.Languages {
		if !held[key] {
			held[key] = true
			languages = append(languages, key)
		}
	}

	extra := race.ExtraLanguages
	if sub := race.Subrace(subraceKey); sub != nil {
		extra += sub.ExtraLanguages
	}
	if background != nil {
		extra += background.ExtraLanguages
	}

	pool := a.catalog.Languages()
	poolIdx := 0
	for i := 0; i < extra; i++ {
		granted := ""
		for poolIdx < len(pool) {
			candidate := pool[poolIdx].Key
			poolIdx++
			if !held[candidate] {
				granted = candidate
				break
			}
		}
		if granted == "" {
			granted = rulebook.DefaultLanguage
			if held[granted] {
				continue
			}
		}
		held[granted] = true
		languages = append(languages, granted)
	}

	if len(languages) == 0 {
		languages = append(languages, rulebook.DefaultLanguage)
	}
	return languages
}

// knownSpells keeps only selections that exist and sit on the class list
func (a *Assembler) knownSpells(class *rulebook.Class, spellKeys []string) []string {
	known := make([]string, 0, len(spellKeys))
	for _, key := range spellKeys {
		spell := a.catalog.Spell(key)
		if spell == nil || !spell.KnownBy(class.Key) {
			continue
		}
		known = append(known, key)
	}
	return known
}

func copySlots(slots map[int]int) map[int]int {
	if slots == nil {
		return nil
	}
	out := make(map[int]int, len(slots))
	for level, count := range slots {
		out[level] = count
	}
	return out
}

package rulebook

import (
	"github.com/draftwright/charwizard/internal/domain/shared"
)

// StaticCatalog is an in-memory Catalog built from embedded SRD tables
type StaticCatalog struct {
	races       map[string]*Race
	classes     map[string]*Class
	backgrounds map[string]*Background
	spells      map[string]*Spell
	equipment   map[string]*Equipment
	languages   []Language

	raceOrder       []string
	classOrder      []string
	backgroundOrder []string
}

// NewSRD builds the catalog from the embedded SRD subset
func NewSRD() *StaticCatalog {
	c := &StaticCatalog{
		races:       make(map[string]*Race),
		classes:     make(map[string]*Class),
		backgrounds: make(map[string]*Background),
		spells:      make(map[string]*Spell),
		equipment:   make(map[string]*Equipment),
		languages:   srdLanguages,
	}
	for _, race := range srdRaces {
		c.races[race.Key] = race
		c.raceOrder = append(c.raceOrder, race.Key)
	}
	for _, class := range srdClasses {
		c.classes[class.Key] = class
		c.classOrder = append(c.classOrder, class.Key)
	}
	for _, background := range srdBackgrounds {
		c.backgrounds[background.Key] = background
		c.backgroundOrder = append(c.backgroundOrder, background.Key)
	}
	for _, spell := range srdSpells {
		c.spells[spell.Key] = spell
	}
	for _, item := range srdEquipment {
		c.equipment[item.Key] = item
	}
	return c
}

func (c *StaticCatalog) Race(key string) *Race             { return c.races[key] }
func (c *StaticCatalog) Class(key string) *Class           { return c.classes[key] }
func (c *StaticCatalog) Background(key string) *Background { return c.backgrounds[key] }
func (c *StaticCatalog) Spell(key string) *Spell           { return c.spells[key] }
func (c *StaticCatalog) Equipment(key string) *Equipment   { return c.equipment[key] }

func (c *StaticCatalog) Races() []*Race {
	out := make([]*Race, 0, len(c.raceOrder))
	for _, key := range c.raceOrder {
		out = append(out, c.races[key])
	}
	return out
}

func (c *StaticCatalog) Classes() []*Class {
	out := make([]*Class, 0, len(c.classOrder))
	for _, key := range c.classOrder {
		out = append(out, c.classes[key])
	}
	return out
}

func (c *StaticCatalog) Backgrounds() []*Background {
	out := make([]*Background, 0, len(c.backgroundOrder))
	for _, key := range c.backgroundOrder {
		out = append(out, c.backgrounds[key])
	}
	return out
}

func (c *StaticCatalog) Languages() []Language {
	out := make([]Language, len(c.languages))
	copy(out, c.languages)
	return out
}

func (c *StaticCatalog) SpellsByClassAndLevel(classKey string, level int) []*Spell {
	var out []*Spell
	for _, spell := range srdSpells {
		if spell.Level == level && spell.KnownBy(classKey) {
			out = append(out, spell)
		}
	}
	return out
}

// Skills lists the eighteen skill keys
var Skills = []string{
	"acrobatics", "animal-handling", "arcana", "athletics", "deception",
	"history", "insight", "intimidation", "investigation", "medicine",
	"nature", "perception", "performance", "persuasion", "religion",
	"sleight-of-hand", "stealth", "survival",
}

var srdLanguages = []Language{
	{Key: "common", Name: "Common"},
	{Key: "dwarvish", Name: "Dwarvish"},
	{Key: "elvish", Name: "Elvish"},
	{Key: "giant", Name: "Giant"},
	{Key: "gnomish", Name: "Gnomish"},
	{Key: "goblin", Name: "Goblin"},
	{Key: "halfling", Name: "Halfling"},
	{Key: "orc", Name: "Orc"},
	{Key: "draconic", Name: "Draconic"},
	{Key: "celestial", Name: "Celestial"},
	{Key: "abyssal", Name: "Abyssal"},
	{Key: "infernal", Name: "Infernal"},
	{Key: "sylvan", Name: "Sylvan"},
	{Key: "undercommon", Name: "Undercommon"},
}

var srdRaces = []*Race{
	{
		Key:            "human",
		Name:           "Human",
		Speed:          30,
		Languages:      []string{"common"},
		ExtraLanguages: 1,
	},
	{
		Key:            "elf",
		Name:           "Elf",
		Speed:          30,
		AbilityBonuses: map[shared.Attribute]int{shared.AttributeDexterity: 2},
		Languages:      []string{"common", "elvish"},
		Subraces: []*Subrace{
			{
				Key:            "high-elf",
				Name:           "High Elf",
				AbilityBonuses: map[shared.Attribute]int{shared.AttributeIntelligence: 1},
				ExtraLanguages: 1,
			},
			{
				Key:            "wood-elf",
				Name:           "Wood Elf",
				AbilityBonuses: map[shared.Attribute]int{shared.AttributeWisdom: 1},
				SpeedBonus:     5,
			},
		},
	},
	{
		Key:            "dwarf",
		Name:           "Dwarf",
		Speed:          25,
		AbilityBonuses: map[shared.Attribute]int{shared.AttributeConstitution: 2},
		Languages:      []string{"common", "dwarvish"},
		Subraces: []*Subrace{
			{
				Key:            "hill-dwarf",
				Name:           "Hill Dwarf",
				AbilityBonuses: map[shared.Attribute]int{shared.AttributeWisdom: 1},
			},
			{
				Key:            "mountain-dwarf",
				Name:           "Mountain Dwarf",
				AbilityBonuses: map[shared.Attribute]int{shared.AttributeStrength: 2},
			},
		},
	},
	{
		Key:            "halfling",
		Name:           "Halfling",
		Speed:          25,
		AbilityBonuses: map[shared.Attribute]int{shared.AttributeDexterity: 2},
		Languages:      []string{"common", "halfling"},
		Subraces: []*Subrace{
			{
				Key:            "lightfoot",
				Name:           "Lightfoot",
				AbilityBonuses: map[shared.Attribute]int{shared.AttributeCharisma: 1},
			},
			{
				Key:            "stout",
				Name:           "Stout",
				AbilityBonuses: map[shared.Attribute]int{shared.AttributeConstitution: 1},
			},
		},
	},
}

var srdClasses = []*Class{
	{
		Key:              "fighter",
		Name:             "Fighter",
		HitDie:           10,
		SavingThrows:     []shared.Attribute{shared.AttributeStrength, shared.AttributeConstitution},
		SkillChoiceCount: 2,
		SkillOptions: []string{
			"acrobatics", "animal-handling", "athletics", "history",
			"insight", "intimidation", "perception", "survival",
		},
		ArmorProficiencies:  []string{"light-armor", "medium-armor", "heavy-armor", "shields"},
		WeaponProficiencies: []string{"simple-weapons", "martial-weapons"},
		StartingGold:        125,
		EquipmentChoices: []EquipmentChoice{
			{
				Key:  "fighter-armor",
				Name: "Armor",
				Options: [][]EquipmentGrant{
					{{Key: "chain-mail", Quantity: 1}},
					{{Key: "leather-armor", Quantity: 1}, {Key: "longbow", Quantity: 1}, {Key: "arrow", Quantity: 20}},
				},
			},
			{
				Key:  "fighter-weapon",
				Name: "Primary weapon",
				Options: [][]EquipmentGrant{
					{{Key: "longsword", Quantity: 1}, {Key: "shield", Quantity: 1}},
					{{Key: "longsword", Quantity: 2}},
				},
			},
			{
				Key:  "fighter-ranged",
				Name: "Ranged option",
				Options: [][]EquipmentGrant{
					{{Key: "light-crossbow", Quantity: 1}, {Key: "crossbow-bolt", Quantity: 20}},
					{{Key: "handaxe", Quantity: 2}},
				},
			},
			{
				Key:  "fighter-pack",
				Name: "Adventuring pack",
				Options: [][]EquipmentGrant{
					{{Key: "dungeoneers-pack", Quantity: 1}},
					{{Key: "explorers-pack", Quantity: 1}},
				},
			},
		},
	},
	{
		Key:              "rogue",
		Name:             "Rogue",
		HitDie:           8,
		SavingThrows:     []shared.Attribute{shared.AttributeDexterity, shared.AttributeIntelligence},
		SkillChoiceCount: 4,
		SkillOptions: []string{
			"acrobatics", "athletics", "deception", "insight", "intimidation",
			"investigation", "perception", "performance", "persuasion",
			"sleight-of-hand", "stealth",
		},
		ArmorProficiencies:  []string{"light-armor"},
		WeaponProficiencies: []string{"simple-weapons", "hand-crossbows", "longswords", "rapiers", "shortswords"},
		ToolProficiencies:   []string{"thieves-tools"},
		StartingGold:        100,
		FixedEquipment: []EquipmentGrant{
			{Key: "leather-armor", Quantity: 1},
			{Key: "dagger", Quantity: 2},
			{Key: "thieves-tools", Quantity: 1},
		},
		EquipmentChoices: []EquipmentChoice{
			{
				Key:  "rogue-weapon",
				Name: "Primary weapon",
				Options: [][]EquipmentGrant{
					{{Key: "rapier", Quantity: 1}},
					{{Key: "shortsword", Quantity: 1}},
				},
			},
			{
				Key:  "rogue-ranged",
				Name: "Ranged option",
				Options: [][]EquipmentGrant{
					{{Key: "shortbow", Quantity: 1}, {Key: "arrow", Quantity: 20}},
					{{Key: "shortsword", Quantity: 1}},
				},
			},
			{
				Key:  "rogue-pack",
				Name: "Adventuring pack",
				Options: [][]EquipmentGrant{
					{{Key: "burglars-pack", Quantity: 1}},
					{{Key: "dungeoneers-pack", Quantity: 1}},
					{{Key: "explorers-pack", Quantity: 1}},
				},
			},
		},
	},
	{
		Key:              "wizard",
		Name:             "Wizard",
		HitDie:           6,
		SavingThrows:     []shared.Attribute{shared.AttributeIntelligence, shared.AttributeWisdom},
		SkillChoiceCount: 2,
		SkillOptions: []string{
			"arcana", "history", "insight", "investigation", "medicine", "religion",
		},
		WeaponProficiencies: []string{"daggers", "darts", "slings", "quarterstaffs", "light-crossbows"},
		CastingAbility:      shared.AttributeIntelligence,
		StartingGold:        100,
		FixedEquipment: []EquipmentGrant{
			{Key: "spellbook", Quantity: 1},
		},
		EquipmentChoices: []EquipmentChoice{
			{
				Key:  "wizard-weapon",
				Name: "Weapon",
				Options: [][]EquipmentGrant{
					{{Key: "quarterstaff", Quantity: 1}},
					{{Key: "dagger", Quantity: 1}},
				},
			},
			{
				Key:  "wizard-focus",
				Name: "Casting focus",
				Options: [][]EquipmentGrant{
					{{Key: "component-pouch", Quantity: 1}},
					{{Key: "arcane-focus", Quantity: 1}},
				},
			},
			{
				Key:  "wizard-pack",
				Name: "Adventuring pack",
				Options: [][]EquipmentGrant{
					{{Key: "scholars-pack", Quantity: 1}},
					{{Key: "explorers-pack", Quantity: 1}},
				},
			},
		},
	},
	{
		Key:              "cleric",
		Name:             "Cleric",
		HitDie:           8,
		SavingThrows:     []shared.Attribute{shared.AttributeWisdom, shared.AttributeCharisma},
		SkillChoiceCount: 2,
		SkillOptions: []string{
			"history", "insight", "medicine", "persuasion", "religion",
		},
		ArmorProficiencies:  []string{"light-armor", "medium-armor", "shields"},
		WeaponProficiencies: []string{"simple-weapons"},
		CastingAbility:      shared.AttributeWisdom,
		StartingGold:        125,
		FixedEquipment: []EquipmentGrant{
			{Key: "shield", Quantity: 1},
			{Key: "holy-symbol", Quantity: 1},
		},
		EquipmentChoices: []EquipmentChoice{
			{
				Key:  "cleric-weapon",
				Name: "Weapon",
				Options: [][]EquipmentGrant{
					{{Key: "mace", Quantity: 1}},
					{{Key: "warhammer", Quantity: 1}},
				},
			},
			{
				Key:  "cleric-armor",
				Name: "Armor",
				Options: [][]EquipmentGrant{
					{{Key: "scale-mail", Quantity: 1}},
					{{Key: "leather-armor", Quantity: 1}},
					{{Key: "chain-mail", Quantity: 1}},
				},
			},
			{
				Key:  "cleric-pack",
				Name: "Adventuring pack",
				Options: [][]EquipmentGrant{
					{{Key: "priests-pack", Quantity: 1}},
					{{Key: "explorers-pack", Quantity: 1}},
				},
			},
		},
		Subclasses: []*Subclass{
			{Key: "life-domain", Name: "Life Domain"},
			{Key: "light-domain", Name: "Light Domain"},
			{Key: "knowledge-domain", Name: "Knowledge Domain"},
		},
	},
	{
		Key:              "bard",
		Name:             "Bard",
		HitDie:           8,
		SavingThrows:     []shared.Attribute{shared.AttributeDexterity, shared.AttributeCharisma},
		SkillChoiceCount: 3,
		SkillOptions: []string{
			"acrobatics", "animal-handling", "arcana", "athletics", "deception",
			"history", "insight", "intimidation", "investigation", "medicine",
			"nature", "perception", "performance", "persuasion", "religion",
			"sleight-of-hand", "stealth", "survival",
		},
		ArmorProficiencies:  []string{"light-armor"},
		WeaponProficiencies: []string{"simple-weapons", "hand-crossbows", "longswords", "rapiers", "shortswords"},
		ToolProficiencies:   []string{"musical-instrument"},
		CastingAbility:      shared.AttributeCharisma,
		StartingGold:        125,
		FixedEquipment: []EquipmentGrant{
			{Key: "leather-armor", Quantity: 1},
			{Key: "dagger", Quantity: 1},
		},
		EquipmentChoices: []EquipmentChoice{
			{
				Key:  "bard-weapon",
				Name: "Weapon",
				Options: [][]EquipmentGrant{
					{{Key: "rapier", Quantity: 1}},
					{{Key: "longsword", Quantity: 1}},
					{{Key: "handaxe", Quantity: 1}},
				},
			},
			{
				Key:  "bard-pack",
				Name: "Adventuring pack",
				Options: [][]EquipmentGrant{
					{{Key: "diplomats-pack", Quantity: 1}},
					{{Key: "entertainers-pack", Quantity: 1}},
				},
			},
			{
				Key:  "bard-instrument",
				Name: "Musical instrument",
				Options: [][]EquipmentGrant{
					{{Key: "lute", Quantity: 1}},
					{{Key: "flute", Quantity: 1}},
					{{Key: "drum", Quantity: 1}},
				},
			},
		},
	},
}

var srdBackgrounds = []*Background{
	{
		Key:            "acolyte",
		Name:           "Acolyte",
		Skills:         []string{"insight", "religion"},
		ExtraLanguages: 2,
		Gold:           15,
		Equipment:      []EquipmentGrant{{Key: "holy-symbol", Quantity: 1}},
	},
	{
		Key:    "soldier",
		Name:   "Soldier",
		Skills: []string{"athletics", "intimidation"},
		Gold:   10,
	},
	{
		Key:            "sage",
		Name:           "Sage",
		Skills:         []string{"arcana", "history"},
		ExtraLanguages: 2,
		Gold:           10,
	},
	{
		Key:    "criminal",
		Name:   "Criminal",
		Skills: []string{"deception", "stealth"},
		Gold:   15,
		Equipment: []EquipmentGrant{
			{Key: "crowbar", Quantity: 1},
		},
	},
	{
		Key:    "folk-hero",
		Name:   "Folk Hero",
		Skills: []string{"animal-handling", "survival"},
		Gold:   10,
	},
}

var srdEquipment = []*Equipment{
	{Key: "chain-mail", Name: "Chain Mail", Category: "armor"},
	{Key: "scale-mail", Name: "Scale Mail", Category: "armor"},
	{Key: "leather-armor", Name: "Leather Armor", Category: "armor"},
	{Key: "shield", Name: "Shield", Category: "armor"},
	{Key: "longsword", Name: "Longsword", Category: "weapon"},
	{Key: "shortsword", Name: "Shortsword", Category: "weapon"},
	{Key: "rapier", Name: "Rapier", Category: "weapon"},
	{Key: "dagger", Name: "Dagger", Category: "weapon"},
	{Key: "handaxe", Name: "Handaxe", Category: "weapon"},
	{Key: "mace", Name: "Mace", Category: "weapon"},
	{Key: "warhammer", Name: "Warhammer", Category: "weapon"},
	{Key: "quarterstaff", Name: "Quarterstaff", Category: "weapon"},
	{Key: "longbow", Name: "Longbow", Category: "weapon"},
	{Key: "shortbow", Name: "Shortbow", Category: "weapon"},
	{Key: "light-crossbow", Name: "Light Crossbow", Category: "weapon"},
	{Key: "arrow", Name: "Arrow", Category: "gear"},
	{Key: "crossbow-bolt", Name: "Crossbow Bolt", Category: "gear"},
	{Key: "spellbook", Name: "Spellbook", Category: "gear"},
	{Key: "component-pouch", Name: "Component Pouch", Category: "gear"},
	{Key: "arcane-focus", Name: "Arcane Focus", Category: "gear"},
	{Key: "holy-symbol", Name: "Holy Symbol", Category: "gear"},
	{Key: "thieves-tools", Name: "Thieves' Tools", Category: "tool"},
	{Key: "crowbar", Name: "Crowbar", Category: "gear"},
	{Key: "lute", Name: "Lute", Category: "tool"},
	{Key: "flute", Name: "Flute", Category: "tool"},
	{Key: "drum", Name: "Drum", Category: "tool"},
	{Key: "burglars-pack", Name: "Burglar's Pack", Category: "pack"},
	{Key: "diplomats-pack", Name: "Diplomat's Pack", Category: "pack"},
	{Key: "dungeoneers-pack", Name: "Dungeoneer's Pack", Category: "pack"},
	{Key: "entertainers-pack", Name: "Entertainer's Pack", Category: "pack"},
	{Key: "explorers-pack", Name: "Explorer's Pack", Category: "pack"},
	{Key: "priests-pack", Name: "Priest's Pack", Category: "pack"},
	{Key: "scholars-pack", Name: "Scholar's Pack", Category: "pack"},
}

var srdSpells = []*Spell{
	// Cantrips
	{Key: "vicious-mockery", Name: "Vicious Mockery", Level: 0, School: "Enchantment", Classes: []string{"bard"}},
	{Key: "mage-hand", Name: "Mage Hand", Level: 0, School: "Conjuration", Classes: []string{"bard", "wizard"}},
	{Key: "minor-illusion", Name: "Minor Illusion", Level: 0, School: "Illusion", Classes: []string{"bard", "wizard"}},
	{Key: "prestidigitation", Name: "Prestidigitation", Level: 0, School: "Transmutation", Classes: []string{"bard", "wizard"}},
	{Key: "dancing-lights", Name: "Dancing Lights", Level: 0, School: "Evocation", Classes: []string{"bard", "wizard"}},
	{Key: "light", Name: "Light", Level: 0, School: "Evocation", Classes: []string{"bard", "cleric", "wizard"}},
	{Key: "fire-bolt", Name: "Fire Bolt", Level: 0, School: "Evocation", Classes: []string{"wizard"}},
	{Key: "ray-of-frost", Name: "Ray of Frost", Level: 0, School: "Evocation", Classes: []string{"wizard"}},
	{Key: "sacred-flame", Name: "Sacred Flame", Level: 0, School: "Evocation", Classes: []string{"cleric"}},
	{Key: "guidance", Name: "Guidance", Level: 0, School: "Divination", Classes: []string{"cleric"}},
	{Key: "thaumaturgy", Name: "Thaumaturgy", Level: 0, School: "Transmutation", Classes: []string{"cleric"}},

	// 1st level
	{Key: "cure-wounds", Name: "Cure Wounds", Level: 1, School: "Evocation", Classes: []string{"bard", "cleric"}},
	{Key: "healing-word", Name: "Healing Word", Level: 1, School: "Evocation", Classes: []string{"bard", "cleric"}},
	{Key: "charm-person", Name: "Charm Person", Level: 1, School: "Enchantment", Classes: []string{"bard", "wizard"}},
	{Key: "sleep", Name: "Sleep", Level: 1, School: "Enchantment", Classes: []string{"bard", "wizard"}},
	{Key: "thunderwave", Name: "Thunderwave", Level: 1, School: "Evocation", Classes: []string{"bard", "wizard"}},
	{Key: "detect-magic", Name: "Detect Magic", Level: 1, School: "Divination", Classes: []string{"bard", "cleric", "wizard"}},
	{Key: "identify", Name: "Identify", Level: 1, School: "Divination", Classes: []string{"bard", "wizard"}},
	{Key: "faerie-fire", Name: "Faerie Fire", Level: 1, School: "Evocation", Classes: []string{"bard"}},
	{Key: "dissonant-whispers", Name: "Dissonant Whispers", Level: 1, School: "Enchantment", Classes: []string{"bard"}},
	{Key: "tashas-hideous-laughter", Name: "Tasha's Hideous Laughter", Level: 1, School: "Enchantment", Classes: []string{"bard"}},
	{Key: "magic-missile", Name: "Magic Missile", Level: 1, School: "Evocation", Classes: []string{"wizard"}},
	{Key: "shield", Name: "Shield", Level: 1, School: "Abjuration", Classes: []string{"wizard"}},
	{Key: "mage-armor", Name: "Mage Armor", Level: 1, School: "Abjuration", Classes: []string{"wizard"}},
	{Key: "burning-hands", Name: "Burning Hands", Level: 1, School: "Evocation", Classes: []string{"wizard"}},
	{Key: "feather-fall", Name: "Feather Fall", Level: 1, School: "Transmutation", Classes: []string{"wizard"}},
	{Key: "bless", Name: "Bless", Level: 1, School: "Enchantment", Classes: []string{"cleric"}},
	{Key: "command", Name: "Command", Level: 1, School: "Enchantment", Classes: []string{"cleric"}},
	{Key: "guiding-bolt", Name: "Guiding Bolt", Level: 1, School: "Evocation", Classes: []string{"cleric"}},
	{Key: "inflict-wounds", Name: "Inflict Wounds", Level: 1, School: "Necromancy", Classes: []string{"cleric"}},
	{Key: "shield-of-faith", Name: "Shield of Faith", Level: 1, School: "Abjuration", Classes: []string{"cleric"}},
}

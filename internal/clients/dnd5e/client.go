package dnd5e

import (
	"fmt"
	"net/http"
	"strings"

	apiDnd5e "github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/draftwright/charwizard/internal/domain/rulebook"
	"github.com/draftwright/charwizard/internal/domain/shared"
	"github.com/draftwright/charwizard/internal/errors"
)

type client struct {
	api apiDnd5e.Interface
}

// Config holds configuration for the API client
type Config struct {
	HTTPClient *http.Client
}

// New creates a Client backed by the public 5e API
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}

	api, err := apiDnd5e.NewDND5eAPI(&apiDnd5e.DND5eAPIConfig{
		Client: cfg.HTTPClient,
	})
	if err != nil {
		return nil, err
	}
	return &client{api: api}, nil
}

func (c *client) GetRace(key string) (*rulebook.Race, error) {
	apiRace, err := c.api.GetRace(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get race %s: %w", key, err)
	}
	return convertRace(apiRace), nil
}

func (c *client) GetClass(key string) (*rulebook.Class, error) {
	apiClass, err := c.api.GetClass(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get class %s: %w", key, err)
	}
	return convertClass(apiClass), nil
}

func (c *client) GetSpell(key string) (*rulebook.Spell, error) {
	apiSpell, err := c.api.GetSpell(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get spell %s: %w", key, err)
	}
	return convertSpell(apiSpell), nil
}

func (c *client) ListSpellsByClassAndLevel(classKey string, level int) ([]*rulebook.Spell, error) {
	refs, err := c.api.ListSpells(&apiDnd5e.ListSpellsInput{
		Class: classKey,
		Level: &level,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list level %d spells for class %s: %w", level, classKey, err)
	}

	spells := make([]*rulebook.Spell, 0, len(refs))
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		spells = append(spells, &rulebook.Spell{
			Key:     ref.Key,
			Name:    ref.Name,
			Level:   level,
			Classes: []string{classKey},
		})
	}
	return spells, nil
}

func convertRace(input *apiEntities.Race) *rulebook.Race {
	if input == nil {
		return nil
	}
	return &rulebook.Race{
		Key:            input.Key,
		Name:           input.Name,
		Speed:          input.Speed,
		AbilityBonuses: convertAbilityBonuses(input.AbilityBonuses),
	}
}

func convertAbilityBonuses(input []*apiEntities.AbilityBonus) map[shared.Attribute]int {
	if len(input) == 0 {
		return nil
	}
	bonuses := make(map[shared.Attribute]int, len(input))
	for _, bonus := range input {
		if bonus == nil || bonus.AbilityScore == nil {
			continue
		}
		attr, ok := shared.ParseAttribute(bonus.AbilityScore.Key)
		if !ok {
			continue
		}
		bonuses[attr] += bonus.Bonus
	}
	if len(bonuses) == 0 {
		return nil
	}
	return bonuses
}

func convertClass(input *apiEntities.Class) *rulebook.Class {
	if input == nil {
		return nil
	}
	class := &rulebook.Class{
		Key:            input.Key,
		Name:           input.Name,
		HitDie:         input.HitDie,
		FixedEquipment: convertStartingEquipment(input.StartingEquipment),
	}
	class.SkillChoiceCount, class.SkillOptions = convertSkillChoices(input.ProficiencyChoices)
	class.EquipmentChoices = convertEquipmentChoices(input.Key, input.StartingEquipmentOptions)
	return class
}

// convertSkillChoices picks the proficiency choice whose options are all
// skills; other proficiency choices (tools, instruments) are not part of
// the skill step
func convertSkillChoices(choices []*apiEntities.ChoiceOption) (int, []string) {
	for _, choice := range choices {
		if choice == nil || choice.OptionList == nil {
			continue
		}
		skills := make([]string, 0, len(choice.OptionList.Options))
		for _, option := range choice.OptionList.Options {
			ref, ok := option.(*apiEntities.ReferenceOption)
			if !ok || ref.Reference == nil {
				skills = nil
				break
			}
			key, isSkill := strings.CutPrefix(ref.Reference.Key, "skill-")
			if !isSkill {
				skills = nil
				break
			}
			skills = append(skills, key)
		}
		if len(skills) > 0 {
			return choice.ChoiceCount, skills
		}
	}
	return 0, nil
}

func convertStartingEquipment(input []*apiEntities.StartingEquipment) []rulebook.EquipmentGrant {
	grants := make([]rulebook.EquipmentGrant, 0, len(input))
	for _, item := range input {
		if item == nil || item.Equipment == nil {
			continue
		}
		grants = append(grants, rulebook.EquipmentGrant{
			Key:      item.Equipment.Key,
			Quantity: item.Quantity,
		})
	}
	if len(grants) == 0 {
		return nil
	}
	return grants
}

func convertEquipmentChoices(classKey string, input []*apiEntities.ChoiceOption) []rulebook.EquipmentChoice {
	choices := make([]rulebook.EquipmentChoice, 0, len(input))
	for i, choice := range input {
		if choice == nil || choice.OptionList == nil {
			continue
		}
		options := make([][]rulebook.EquipmentGrant, 0, len(choice.OptionList.Options))
		for _, option := range choice.OptionList.Options {
			bundle := convertEquipmentOption(option)
			if len(bundle) > 0 {
				options = append(options, bundle)
			}
		}
		if len(options) == 0 {
			continue
		}
		choices = append(choices, rulebook.EquipmentChoice{
			Key:     fmt.Sprintf("%s-equipment-%d", classKey, i+1),
			Name:    choice.Description,
			Options: options,
		})
	}
	if len(choices) == 0 {
		return nil
	}
	return choices
}

func convertEquipmentOption(input apiEntities.Option) []rulebook.EquipmentGrant {
	switch option := input.(type) {
	case *apiEntities.ReferenceOption:
		if option.Reference == nil {
			return nil
		}
		return []rulebook.EquipmentGrant{{Key: option.Reference.Key, Quantity: 1}}
	case *apiEntities.CountedReferenceOption:
		if option.Reference == nil {
			return nil
		}
		return []rulebook.EquipmentGrant{{Key: option.Reference.Key, Quantity: option.Count}}
	case *apiEntities.MultipleOption:
		var bundle []rulebook.EquipmentGrant
		for _, item := range option.Items {
			bundle = append(bundle, convertEquipmentOption(item)...)
		}
		return bundle
	default:
		// Nested choices inside an option are beyond what the wizard
		// renders; drop them rather than guessing
		return nil
	}
}

func convertSpell(input *apiEntities.Spell) *rulebook.Spell {
	if input == nil {
		return nil
	}
	spell := &rulebook.Spell{
		Key:   input.Key,
		Name:  input.Name,
		Level: input.SpellLevel,
	}
	if input.SpellSchool != nil {
		spell.School = input.SpellSchool.Name
	}
	for _, ref := range input.SpellClasses {
		if ref != nil {
			spell.Classes = append(spell.Classes, ref.Key)
		}
	}
	return spell
}

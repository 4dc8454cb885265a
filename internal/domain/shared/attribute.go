package shared

// Attribute identifies one of the six ability scores
type Attribute string

const (
	AttributeStrength     Attribute = "str"
	AttributeDexterity    Attribute = "dex"
	AttributeConstitution Attribute = "con"
	AttributeIntelligence Attribute = "int"
	AttributeWisdom       Attribute = "wis"
	AttributeCharisma     Attribute = "cha"
)

// Attributes returns the six ability keys in display order
func Attributes() []Attribute {
	return []Attribute{
		AttributeStrength,
		AttributeDexterity,
		AttributeConstitution,
		AttributeIntelligence,
		AttributeWisdom,
		AttributeCharisma,
	}
}

// ParseAttribute maps an ability key string to an Attribute
func ParseAttribute(input string) (Attribute, bool) {
	switch Attribute(input) {
	case AttributeStrength, AttributeDexterity, AttributeConstitution,
		AttributeIntelligence, AttributeWisdom, AttributeCharisma:
		return Attribute(input), true
	default:
		return "", false
	}
}

func (a Attribute) String() string {
	return string(a)
}

// Name returns the full ability name for display lookups
func (a Attribute) Name() string {
	switch a {
	case AttributeStrength:
		return "Strength"
	case AttributeDexterity:
		return "Dexterity"
	case AttributeConstitution:
		return "Constitution"
	case AttributeIntelligence:
		return "Intelligence"
	case AttributeWisdom:
		return "Wisdom"
	case AttributeCharisma:
		return "Charisma"
	default:
		return string(a)
	}
}

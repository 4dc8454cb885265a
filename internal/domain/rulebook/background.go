package rulebook

// Background is an immutable reference catalog entry
type Background struct {
	Key            string           `json:"key"`
	Name           string           `json:"name"`
	Skills         []string         `json:"skills,omitempty"`
	ExtraLanguages int              `json:"extra_languages,omitempty"`
	Gold           int              `json:"gold,omitempty"`
	Equipment      []EquipmentGrant `json:"equipment,omitempty"`
}

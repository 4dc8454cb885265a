package rulebook

// Equipment is an immutable reference catalog entry
type Equipment struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"` // weapon, armor, gear, pack, tool
}

// Language is an entry in the shared extra-language pool
type Language struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// DefaultLanguage is granted when the extra-language pool is exhausted
const DefaultLanguage = "common"

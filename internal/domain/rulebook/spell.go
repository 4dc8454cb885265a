package rulebook

// Spell is an immutable reference catalog entry
type Spell struct {
	Key     string   `json:"key"`
	Name    string   `json:"name"`
	Level   int      `json:"level"` // 0 for cantrips
	School  string   `json:"school,omitempty"`
	Classes []string `json:"classes,omitempty"` // class keys that can learn it
}

// KnownBy reports whether the spell is on the given class's list
func (s *Spell) KnownBy(classKey string) bool {
	if s == nil {
		return false
	}
	for _, key := range s.Classes {
		if key == classKey {
			return true
		}
	}
	return false
}

package view

// skillSelector owns the ActiveSkillKey.
type skillSelector struct {
	active *SkillKey
}

// selectKey highlights key, or clears the highlight if key is already active.
func (s *skillSelector) selectKey(key SkillKey) {
	if s.active != nil && *s.active == key {
		s.active = nil
		return
	}
	k := key
	s.active = &k
}

func (s *skillSelector) current() *SkillKey {
	if s.active == nil {
		return nil
	}
	k := *s.active
	return &k
}

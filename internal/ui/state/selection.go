package state

// MultiSelect is the set of script paths picked for batch execution, kept
// in the order they were picked. Disabling it clears the set.
type MultiSelect struct {
	enabled bool
	paths   []string
}

// Enabled reports whether multi-select mode is on.
func (s *MultiSelect) Enabled() bool {
	return s.enabled
}

// SetEnabled switches multi-select mode. Turning it off empties the set.
func (s *MultiSelect) SetEnabled(enabled bool) {
	s.enabled = enabled
	if !enabled {
		s.Clear()
	}
}

// ToggleEnabled flips multi-select mode and returns the new state.
func (s *MultiSelect) ToggleEnabled() bool {
	s.SetEnabled(!s.enabled)
	return s.enabled
}

// Toggle removes path when present and appends it otherwise. It reports
// whether path is selected afterwards.
func (s *MultiSelect) Toggle(path string) bool {
	if i := s.index(path); i >= 0 {
		s.paths = append(s.paths[:i:i], s.paths[i+1:]...)
		return false
	}
	s.paths = append(s.paths, path)
	return true
}

func (s *MultiSelect) index(path string) int {
	for i, p := range s.paths {
		if p == path {
			return i
		}
	}
	return -1
}

// Contains reports whether path is selected.
func (s *MultiSelect) Contains(path string) bool {
	return s.index(path) >= 0
}

// Position returns the 1-based pick order of path, or 0.
func (s *MultiSelect) Position(path string) int {
	return s.index(path) + 1
}

// Len returns the number of selected paths.
func (s *MultiSelect) Len() int {
	return len(s.paths)
}

// Paths returns a copy of the selection in pick order.
func (s *MultiSelect) Paths() []string {
	if len(s.paths) == 0 {
		return nil
	}
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

// Clear empties the set.
func (s *MultiSelect) Clear() {
	s.paths = nil
}

// Active reports whether the set should drive execution: mode on and at
// least one path picked.
func (s *MultiSelect) Active() bool {
	return s.enabled && len(s.paths) > 0
}

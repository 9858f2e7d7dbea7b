package feedback

// orderedSet keeps the first occurrence of each string in insertion order.
type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

// Add inserts v unless it is already present and reports whether it was added.
func (s *orderedSet) Add(v string) bool {
	if _, ok := s.seen[v]; ok {
		return false
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

func (s *orderedSet) Len() int {
	return len(s.items)
}

// Items returns a copy of the stored values.
func (s *orderedSet) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

package jpnphoneme

// A unordered Set.
type Set[E comparable] struct {
	elems map[E]struct{}
}

func NewSet[E comparable]() *Set[E] {
	return &Set[E]{
		elems: make(map[E]struct{}),
	}
}

func (s *Set[E]) Insert(item E) {
	s.elems[item] = struct{}{}
}

func (s *Set[E]) Has(item E) bool {
	_, has := s.elems[item]
	return has
}

package polifin

// Store accumulates the values captured during one wizard run, keyed by
// canonical field id. Fields never captured are absent and read as 0.
type Store struct {
	values map[FieldID]Amount
}

func NewStore() *Store {
	return &Store{values: make(map[FieldID]Amount)}
}

// Set coerces raw and stores it under name, replacing any previous value.
func (s *Store) Set(name, raw string) {
	s.put(Canonical(name), Coerce(raw))
}

// Get returns the value stored under name, or 0.
func (s *Store) Get(name string) Amount {
	return s.GetOr(name, Amount{})
}

func (s *Store) GetOr(name string, def Amount) Amount {
	if v, ok := s.Lookup(name); ok {
		return v
	}
	return def
}

func (s *Store) Lookup(name string) (Amount, bool) {
	if s == nil {
		return Amount{}, false
	}
	v, ok := s.values[Canonical(name)]
	return v, ok
}

// Snapshot returns a copy of every stored value.
func (s *Store) Snapshot() map[FieldID]Amount {
	snap := make(map[FieldID]Amount)
	if s == nil {
		return snap
	}
	for k, v := range s.values {
		snap[k] = v
	}
	return snap
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

func (s *Store) put(id FieldID, v Amount) {
	if s.values == nil {
		s.values = make(map[FieldID]Amount)
	}
	s.values[id] = v
}

func (s *Store) value(f Field) Amount {
	if s == nil {
		return Amount{}
	}
	return s.values[f.ID]
}

func (s *Store) has(id FieldID) bool {
	if s == nil {
		return false
	}
	_, ok := s.values[id]
	return ok
}

func (s *Store) clone() *Store {
	return &Store{values: s.Snapshot()}
}

package render

// Var is one cache variable.
type Var struct {
	Key   string
	Value string
}

// VarSet is an insertion-ordered set of cache variables. Setting an
// existing key updates the value in place without moving the key, so a
// later layer wins while the overall ordering stays stable across
// renders.
type VarSet struct {
	keys   []string
	values map[string]string
}

// NewVarSet returns an empty variable set.
func NewVarSet() *VarSet {
	return &VarSet{values: make(map[string]string)}
}

// Set inserts or replaces the value for key.
func (s *VarSet) Set(key, value string) {
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Get returns the value for key and whether it is present.
func (s *VarSet) Get(key string) (string, bool) {
	value, ok := s.values[key]
	return value, ok
}

// Len returns the number of variables in the set.
func (s *VarSet) Len() int {
	return len(s.keys)
}

// Items returns the variables in insertion order.
func (s *VarSet) Items() []Var {
	items := make([]Var, 0, len(s.keys))
	for _, key := range s.keys {
		items = append(items, Var{Key: key, Value: s.values[key]})
	}
	return items
}

// Map returns the variables as a plain map, for JSON encoding.
func (s *VarSet) Map() map[string]string {
	m := make(map[string]string, len(s.values))
	for key, value := range s.values {
		m[key] = value
	}
	return m
}

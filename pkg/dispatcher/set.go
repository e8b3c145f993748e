package dispatcher

import "reflect"

// Set is an insertion-ordered collection with unique membership.
// Membership uses Go equality, which for pointers means identity.
// A Set is not safe for concurrent use; Dispatcher keeps its own copy under a lock.
type Set struct {
	index map[any]int
	items []any
}

// NewSet creates a set holding values in order, skipping duplicates.
func NewSet(values ...any) (*Set, error) {
	s := &Set{index: make(map[any]int, len(values))}
	for _, v := range values {
		if err := s.Add(v); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add appends v unless it is already present.
// Values whose dynamic type is not comparable cannot be members.
func (s *Set) Add(v any) error {
	if !hashable(v) {
		return &InvalidArgumentError{Argument: "value", Expected: "comparable", Value: v}
	}
	if s.index == nil {
		s.index = make(map[any]int)
	}
	if _, ok := s.index[v]; ok {
		return nil
	}
	s.index[v] = len(s.items)
	s.items = append(s.items, v)
	return nil
}

// Delete removes v and reports whether it was present.
func (s *Set) Delete(v any) bool {
	if s == nil || !hashable(v) {
		return false
	}
	pos, ok := s.index[v]
	if !ok {
		return false
	}
	delete(s.index, v)
	s.items = append(s.items[:pos], s.items[pos+1:]...)
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i]] = i
	}
	return true
}

func (s *Set) Has(v any) bool {
	if s == nil || !hashable(v) {
		return false
	}
	_, ok := s.index[v]
	return ok
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Values returns the members in insertion order. The slice is a copy.
func (s *Set) Values() []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Set) Clone() *Set {
	c := &Set{index: make(map[any]int, s.Len())}
	if s == nil {
		return c
	}
	c.items = s.Values()
	for i, v := range c.items {
		c.index[v] = i
	}
	return c
}

func hashable(v any) bool {
	return v == nil || reflect.ValueOf(v).Comparable()
}

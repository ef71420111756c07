package acorn

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// entry is one registered bean.
type entry struct {
	name      string
	namespace string
	instance  any
	typ       reflect.Type
}

// store maps bean names to instances. It is written only while a context is
// being built, by the goroutine building it, and is read-only afterwards, so
// readers need no locking.
type store struct {
	entries map[string]entry
}

func newStore() *store {
	return &store{entries: make(map[string]entry)}
}

// insert adds e under e.name. Existing names are never overwritten.
func (s *store) insert(e entry) error {
	if isNil(e.instance) {
		return fmt.Errorf("%w: bean %q", ErrNilBean, e.name)
	}
	if prev, ok := s.entries[e.name]; ok {
		return fmt.Errorf("%w: cannot register %s as %q: %s already bound",
			ErrDuplicateBean, e.typ, e.name, prev.typ)
	}
	s.entries[e.name] = e
	return nil
}

func (s *store) get(name string) (entry, bool) {
	e, ok := s.entries[name]
	return e, ok
}

// all returns a snapshot of every entry sorted by name.
func (s *store) all() []entry {
	out := make([]entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b entry) int {
		return strings.Compare(a.name, b.name)
	})
	return out
}

func (s *store) len() int {
	return len(s.entries)
}

// isNil reports whether v is nil or a typed nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

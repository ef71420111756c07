package acorn

import (
	"reflect"
	"slices"
	"strings"
	"sync"
)

// Definition describes one marked type: where it was declared, how it is
// built and the name it asked for. Definitions are immutable once recorded.
type Definition struct {
	// Namespace is the dotted namespace the type was marked under, for
	// example "garage.models".
	Namespace string

	// Name is the explicit bean name given with [WithName]. Empty means the
	// name is derived from the produced type.
	Name string

	constructor reflect.Value
	outType     reflect.Type
	seq         int
}

// Type returns the type produced by the constructor, or nil when the
// constructor is not a function with at least one result.
func (d Definition) Type() reflect.Type {
	return d.outType
}

// BeanName returns the canonical registry key for the definition.
func (d Definition) BeanName() string {
	return resolveName(d)
}

// Catalog is a table of marked types. Marking only records a declaration;
// instances are created per context by [NewContext].
//
// A Catalog is safe for concurrent use.
type Catalog struct {
	mu   sync.RWMutex
	defs []Definition
}

// NewCatalog returns an empty [Catalog].
func NewCatalog() *Catalog {
	return &Catalog{}
}

// DefaultCatalog is the catalog used by [Mark] and [New]. Packages typically
// fill it from their init functions.
var DefaultCatalog = NewCatalog()

// Mark records constructor under namespace in the [DefaultCatalog].
func Mark(namespace string, constructor interface{}, opts ...MarkOption) {
	DefaultCatalog.Mark(namespace, constructor, opts...)
}

// Mark records constructor as a bean declared under namespace. The
// constructor must be a function with the signature func() T or
// func() (T, error); anything else is reported as [ErrConstruction] when a
// context is built from the catalog.
func (c *Catalog) Mark(namespace string, constructor interface{}, opts ...MarkOption) {
	d := Definition{Namespace: namespace}
	if constructor != nil {
		d.constructor = reflect.ValueOf(constructor)
		if typ := d.constructor.Type(); typ.Kind() == reflect.Func && typ.NumOut() > 0 {
			d.outType = typ.Out(0)
		}
	}

	for _, opt := range opts {
		opt(&d)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	d.seq = len(c.defs)
	c.defs = append(c.defs, d)
}

// Len returns the number of marked definitions.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.defs)
}

// Discover returns the definitions declared under any of the given roots.
// A namespace matches a root when it equals it or is nested below it, so
// "garage" matches "garage.models" but not "garagesale". With no roots every
// definition is returned.
//
// The result is sorted by namespace and then by marking order, and each
// definition appears once even when several roots match it.
func (c *Catalog) Discover(roots ...string) []Definition {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Definition, 0, len(c.defs))
	for _, d := range c.defs {
		if len(roots) == 0 || underAny(d.Namespace, roots) {
			out = append(out, d)
		}
	}

	slices.SortStableFunc(out, func(a, b Definition) int {
		if n := strings.Compare(a.Namespace, b.Namespace); n != 0 {
			return n
		}
		return a.seq - b.seq
	})
	return out
}

func underAny(namespace string, roots []string) bool {
	for _, root := range roots {
		if namespace == root || strings.HasPrefix(namespace, root+".") {
			return true
		}
	}
	return false
}

package acorn

import (
	"fmt"
	"reflect"
)

// ---------------------------------------------------------------------------
// Context methods
// ---------------------------------------------------------------------------

func (c *appContext) Bean(t reflect.Type) (any, error) {
	var (
		found any
		count int
	)
	for _, e := range c.beans.all() {
		if e.typ.AssignableTo(t) {
			found = e.instance
			count++
		}
	}
	if err := checkMatches(t, count); err != nil {
		return nil, err
	}
	return found, nil
}

func (c *appContext) NamedBean(name string, t reflect.Type) (any, error) {
	e, ok := c.beans.get(name)
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrNoSuchBean, t)
	}
	if !e.typ.AssignableTo(t) {
		return nil, fmt.Errorf("%w: bean %q is %s, not assignable to %s", ErrBeanNotOfRequiredType, name, e.typ, t)
	}
	return e.instance, nil
}

func (c *appContext) BeansOfType(t reflect.Type) map[string]any {
	out := make(map[string]any)
	for _, e := range c.beans.all() {
		if e.typ.AssignableTo(t) {
			out[e.name] = e.instance
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Generic helpers
// ---------------------------------------------------------------------------

// Get returns the only bean that is a T. It is the recommended way to look
// up a bean by type:
//
//	car, err := acorn.Get[*Mercedes](ctx)
//
// Interface types match every implementor, so Get[Car] fails with
// [ErrNoUniqueBean] when two cars are registered.
func Get[T any](c Context) (T, error) {
	var zero T

	all := GetAll[T](c)
	if err := checkMatches(typeOf[T](), len(all)); err != nil {
		return zero, err
	}
	for _, v := range all {
		return v, nil
	}
	return zero, nil
}

// GetNamed returns the bean registered under name as a T:
//
//	car, err := acorn.GetNamed[Car](ctx, "bmw-car")
func GetNamed[T any](c Context, name string) (T, error) {
	var zero T

	v, err := c.NamedBean(name, typeOf[T]())
	if err != nil {
		return zero, err
	}

	out, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: bean %q: cannot convert %T to %s", ErrBeanNotOfRequiredType, name, v, typeOf[T]())
	}
	return out, nil
}

// GetAll returns every bean that is a T keyed by bean name. The map is empty
// when nothing matches.
//
//	cars := acorn.GetAll[Car](ctx)
func GetAll[T any](c Context) map[string]T {
	out := make(map[string]T)
	for name, v := range c.BeansOfType(typeOf[T]()) {
		if t, ok := v.(T); ok {
			out[name] = t
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Internal
// ---------------------------------------------------------------------------

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func checkMatches(t reflect.Type, count int) error {
	switch {
	case count == 0:
		return fmt.Errorf("%w %s", ErrNoSuchBean, t)
	case count > 1:
		return fmt.Errorf("%w %s", ErrNoUniqueBean, t)
	}
	return nil
}

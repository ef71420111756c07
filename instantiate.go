package acorn

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// instantiate calls the definition's zero-argument constructor once and
// returns what it produced. It never caches.
func instantiate(d Definition) (instance any, err error) {
	if err := checkConstructor(d.constructor); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			instance = nil
			err = fmt.Errorf("%w: %s: panic: %v", ErrConstruction, d.BeanName(), r)
		}
	}()

	results := d.constructor.Call(nil)
	if len(results) == 2 && !results[1].IsNil() {
		return nil, fmt.Errorf("%w: %s: %w", ErrConstruction, d.BeanName(), results[1].Interface().(error))
	}

	return results[0].Interface(), nil
}

// checkConstructor reports whether fn is usable as a default constructor:
// func() T or func() (T, error).
func checkConstructor(fn reflect.Value) error {
	if !fn.IsValid() {
		return fmt.Errorf("%w: no default constructor: constructor is nil", ErrConstruction)
	}

	typ := fn.Type()
	if typ.Kind() != reflect.Func {
		return fmt.Errorf("%w: no default constructor: %s is not a function", ErrConstruction, typ)
	}
	if fn.IsNil() {
		return fmt.Errorf("%w: no default constructor: nil %s", ErrConstruction, typ)
	}
	if typ.NumIn() != 0 {
		return fmt.Errorf("%w: no default constructor: %s takes arguments", ErrConstruction, typ)
	}
	if typ.NumOut() == 0 || typ.NumOut() > 2 {
		return fmt.Errorf("%w: no default constructor: %s must return (T) or (T, error)", ErrConstruction, typ)
	}
	if typ.NumOut() == 2 && !typ.Out(1).Implements(errorType) {
		return fmt.Errorf("%w: no default constructor: second result of %s must implement error", ErrConstruction, typ)
	}
	return nil
}

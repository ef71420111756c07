package acorn

import (
	"errors"
	"fmt"
)

var (
	// ErrConstruction is returned by [NewContext] when a marked type cannot be
	// turned into an instance: the constructor is missing or has the wrong
	// shape, returned an error, or panicked. The underlying cause, if any, is
	// wrapped alongside it.
	ErrConstruction = errors.New("bean construction failed")

	// ErrDuplicateBean is returned by [NewContext] when two marked types
	// resolve to the same bean name.
	ErrDuplicateBean = errors.New("duplicate bean")

	// ErrNilBean is returned by [NewContext] when a constructor produces a nil
	// instance. It matches [ErrDuplicateBean] under [errors.Is] since both
	// reject a registration.
	ErrNilBean = fmt.Errorf("%w: nil instance", ErrDuplicateBean)

	// ErrNoSuchBean is returned when a query matches no bean. The message
	// names the requested type.
	ErrNoSuchBean = errors.New("no bean with type")

	// ErrNoUniqueBean is returned by [Get] and [Context.Bean] when more than
	// one bean matches the requested type.
	ErrNoUniqueBean = errors.New("more than one bean with type")

	// ErrBeanNotOfRequiredType is returned by [GetNamed] and
	// [Context.NamedBean] when the named bean exists but is not assignable to
	// the requested type.
	ErrBeanNotOfRequiredType = errors.New("bean is not of required type")

	// ErrNilCatalog is returned by [NewContext] when no catalog is given.
	ErrNilCatalog = errors.New("nil catalog")
)

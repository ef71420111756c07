// Package acorn provides a small registry of single-instance beans wired at
// process start.
//
// Types are marked into a [Catalog] together with a zero-argument
// constructor. [NewContext] discovers the definitions under a set of
// namespace roots, calls each constructor once, names the result and stores
// it. The returned [Context] answers lookups by exact name, by unique type
// and by every bean matching a type.
//
// # Quick Start
//
//	func init() {
//		acorn.Mark("garage.models", NewBmw, acorn.WithName("bmw-car"))
//		acorn.Mark("garage.models", NewMercedes)
//	}
//
//	ctx, err := acorn.New("garage")
//	bmw, err := acorn.GetNamed[Car](ctx, "bmw-car")
//	cars := acorn.GetAll[Car](ctx)
//
// # Names
//
// A bean is registered under the name given with [WithName]. Without one the
// name is the simple name of the produced type with its first letter
// lower-cased, so NewMercedes returning *Mercedes is registered as
// "mercedes". Two beans resolving to the same name make [NewContext] fail
// with [ErrDuplicateBean].
//
// # Lookups by type
//
// [Get], [GetAll] and their reflect counterparts match a bean when its
// runtime type is assignable to the requested type. Concrete types match
// exactly; interface types match every implementor, and any matches all
// beans.
//
// # Isolation
//
// A catalog only holds declarations. Every context owns its instances, so
// contexts built from the same catalog never share state.
package acorn

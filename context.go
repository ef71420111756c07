package acorn

import (
	"log/slog"
	"reflect"
	"strings"
)

// Context is a populated bean registry. Use [New] or [NewContext] to create
// one; a returned Context is always [Ready] and never changes afterwards, so
// it is safe for concurrent use without further locking.
type Context interface {
	// Bean returns the only bean assignable to t. It fails with
	// [ErrNoSuchBean] when nothing matches and [ErrNoUniqueBean] when more
	// than one bean does. Prefer the generic [Get] helper.
	Bean(t reflect.Type) (any, error)

	// NamedBean returns the bean registered under name. It fails with
	// [ErrNoSuchBean] naming t when the name is unknown, and with
	// [ErrBeanNotOfRequiredType] when the bean is not assignable to t.
	// Prefer the generic [GetNamed] helper.
	NamedBean(name string, t reflect.Type) (any, error)

	// BeansOfType returns every bean assignable to t keyed by name. The map
	// is empty, not nil, when nothing matches. Prefer the generic [GetAll]
	// helper.
	BeansOfType(t reflect.Type) map[string]any

	// Names returns the names of all beans in sorted order.
	Names() []string

	// Contains reports whether a bean is registered under name.
	Contains(name string) bool

	// TypeOf returns the runtime type of the bean registered under name.
	TypeOf(name string) (reflect.Type, bool)

	// Namespace returns the namespace the named bean was marked under.
	Namespace(name string) (string, bool)

	// Len returns the number of registered beans.
	Len() int

	// State returns the context state. It is always [Ready] for a context
	// returned by [NewContext].
	State() State
}

type appContext struct {
	beans *store
	state State
}

// New builds a context from the beans marked in [DefaultCatalog] under the
// given namespace roots. See [NewContext].
func New(roots ...string) (Context, error) {
	return NewContext(DefaultCatalog, roots)
}

// NewContext discovers every definition in cat under roots, instantiates
// each one exactly once, names it and registers it. Construction is
// all-or-nothing: the first failing bean aborts it and no context is
// returned.
//
// Every context owns its registry. Building two contexts from the same
// catalog yields two independent sets of instances.
func NewContext(cat *Catalog, roots []string, opts ...Option) (Context, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}

	s := settings{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&s)
	}
	log := s.logger.With(slog.String("roots", strings.Join(roots, ",")))

	c := &appContext{beans: newStore(), state: Initializing}

	defs := cat.Discover(roots...)
	log.Debug("discovered beans", slog.Int("count", len(defs)))

	for _, d := range defs {
		if err := c.register(d); err != nil {
			log.Error("context construction failed",
				slog.String("namespace", d.Namespace),
				slog.String("bean", d.BeanName()),
				slog.Any("error", err))
			return nil, err
		}
		log.Debug("registered bean",
			slog.String("namespace", d.Namespace),
			slog.String("bean", d.BeanName()))
	}

	c.state = Ready
	log.Info("context ready", slog.Int("beans", c.beans.len()))
	return c, nil
}

func (c *appContext) register(d Definition) error {
	instance, err := instantiate(d)
	if err != nil {
		return err
	}

	return c.beans.insert(entry{
		name:      resolveName(d),
		namespace: d.Namespace,
		instance:  instance,
		typ:       reflect.TypeOf(instance),
	})
}

func (c *appContext) Names() []string {
	all := c.beans.all()
	names := make([]string, len(all))
	for i, e := range all {
		names[i] = e.name
	}
	return names
}

func (c *appContext) Contains(name string) bool {
	_, ok := c.beans.get(name)
	return ok
}

func (c *appContext) TypeOf(name string) (reflect.Type, bool) {
	e, ok := c.beans.get(name)
	if !ok {
		return nil, false
	}
	return e.typ, true
}

func (c *appContext) Namespace(name string) (string, bool) {
	e, ok := c.beans.get(name)
	if !ok {
		return "", false
	}
	return e.namespace, true
}

func (c *appContext) Len() int {
	return c.beans.len()
}

func (c *appContext) State() State {
	return c.state
}

// Package garage holds the car beans used by the garage command.
package garage

import "github.com/ARTM2000/acorn"

// Namespace is where the garage beans are marked.
const Namespace = "garage.models"

// Car is implemented by every car bean.
type Car interface {
	Name() string
}

type Bmw struct {
	name string
}

func NewBmw() *Bmw { return &Bmw{name: "BMW"} }

func (b *Bmw) Name() string { return b.name }

type Mercedes struct {
	name string
}

func NewMercedes() *Mercedes { return &Mercedes{name: "Mercedes"} }

func (m *Mercedes) Name() string { return m.name }

// Tesla is a car nobody marked; looking it up always fails.
type Tesla struct{}

func (t *Tesla) Name() string { return "Tesla" }

// Mark records the garage cars in cat.
func Mark(cat *acorn.Catalog) {
	cat.Mark(Namespace, NewBmw, acorn.WithName("bmw-car"))
	cat.Mark(Namespace, NewMercedes, acorn.WithName("mercedes-car"))
}

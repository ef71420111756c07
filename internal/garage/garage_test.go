package garage

import (
	"errors"
	"strings"
	"testing"

	"github.com/ARTM2000/acorn"
)

func newGarage(t *testing.T) acorn.Context {
	t.Helper()
	cat := acorn.NewCatalog()
	Mark(cat)

	c, err := acorn.NewContext(cat, []string{"garage"})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return c
}

func TestGarage_AllCars(t *testing.T) {
	cars := acorn.GetAll[Car](newGarage(t))
	if len(cars) != 2 {
		t.Fatalf("expected 2 cars, got %d", len(cars))
	}
	bmw, ok := cars["bmw-car"]
	if !ok {
		t.Fatal("missing bmw-car")
	}
	if bmw.Name() != "BMW" {
		t.Fatalf("expected BMW, got %q", bmw.Name())
	}
}

func TestGarage_Lookups(t *testing.T) {
	c := newGarage(t)

	m, err := acorn.Get[*Mercedes](c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Name() != "Mercedes" {
		t.Fatalf("expected Mercedes, got %q", m.Name())
	}

	_, err = acorn.Get[Car](c)
	if !errors.Is(err, acorn.ErrNoUniqueBean) || !strings.Contains(err.Error(), "Car") {
		t.Fatalf("expected ErrNoUniqueBean naming Car, got: %v", err)
	}

	car, err := acorn.GetNamed[Car](c, "bmw-car")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := car.(*Bmw); !ok {
		t.Fatalf("expected *Bmw, got %T", car)
	}

	_, err = acorn.Get[*Tesla](c)
	if !errors.Is(err, acorn.ErrNoSuchBean) || !strings.Contains(err.Error(), "Tesla") {
		t.Fatalf("expected ErrNoSuchBean naming Tesla, got: %v", err)
	}

	_, err = acorn.GetNamed[*Tesla](c, "tesla-car")
	if !errors.Is(err, acorn.ErrNoSuchBean) || !strings.Contains(err.Error(), "Tesla") {
		t.Fatalf("expected ErrNoSuchBean naming Tesla, got: %v", err)
	}
}

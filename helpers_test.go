package acorn

import (
	"errors"
	"testing"
)

// Shared test types and constructors used across test files.

// mustNewContext calls t.Fatal if the context cannot be built.
func mustNewContext(t *testing.T, cat *Catalog, roots ...string) Context {
	t.Helper()
	c, err := NewContext(cat, roots)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return c
}

type testCar interface {
	Name() string
}

type testBmw struct{ name string }

func (b *testBmw) Name() string { return b.name }

type testMercedes struct{ name string }

func (m *testMercedes) Name() string { return m.name }

// testTesla is a car that is never marked.
type testTesla struct{}

func (t *testTesla) Name() string { return "Tesla" }

type testGarage struct{ Spots int }

func newTestBmw() *testBmw           { return &testBmw{name: "BMW"} }
func newTestMercedes() *testMercedes { return &testMercedes{name: "Mercedes"} }
func newTestGarage() *testGarage     { return &testGarage{Spots: 2} }

// newCarCatalog marks the two test cars the way an application would.
func newCarCatalog() *Catalog {
	cat := NewCatalog()
	cat.Mark("acorn.models", newTestBmw, WithName("bmw-car"))
	cat.Mark("acorn.models", newTestMercedes, WithName("mercedes-car"))
	return cat
}

var errEngine = errors.New("engine failure")

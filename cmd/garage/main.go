// Command garage builds a bean context from the garage cars and inspects it.
//
//	garage beans
//	garage get bmw-car
//	garage serve --addr :8080
package main

import (
	"os"

	"github.com/ARTM2000/acorn"
	"github.com/ARTM2000/acorn/internal/garage"
)

func init() {
	garage.Mark(acorn.DefaultCatalog)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

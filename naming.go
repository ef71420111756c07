package acorn

import (
	"reflect"
	"unicode"
	"unicode/utf8"
)

// resolveName returns the explicit name of d if it has one, otherwise the
// simple name of the produced type with its first rune lower-cased.
func resolveName(d Definition) string {
	if d.Name != "" {
		return d.Name
	}
	return decapitalize(simpleName(d.outType))
}

func simpleName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer && t.Name() == "" {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

func decapitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

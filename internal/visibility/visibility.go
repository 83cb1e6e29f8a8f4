// Package visibility labels declarations with their visibility and method
// roles, derived from naming conventions and decorators.
package visibility

import (
	"strings"

	"github.com/abramin/annolint/internal/pyast"
)

// Visibility is the documented exposure of a declaration.
type Visibility int

const (
	Public Visibility = iota
	Private
)

// Of classifies a declaration name: leading-underscore names are private.
func Of(name string) Visibility {
	if strings.HasPrefix(name, "_") {
		return Private
	}
	return Public
}

// hasDecorator reports whether the list carries a decorator with the given
// name, bare or via attribute access (e.g. @staticmethod, @abc.abstractmethod).
func hasDecorator(decorators []pyast.Expr, name string) bool {
	for _, d := range decorators {
		switch e := d.(type) {
		case *pyast.Name:
			if e.ID == name {
				return true
			}
		case *pyast.Attribute:
			if e.Attr == name {
				return true
			}
		}
	}
	return false
}

// IsStaticmethod reports whether the method carries @staticmethod.
func IsStaticmethod(f *pyast.FunctionDef) bool {
	return hasDecorator(f.DecoratorList, "staticmethod")
}

// IsClassmethod reports whether the method carries @classmethod.
func IsClassmethod(f *pyast.FunctionDef) bool {
	return hasDecorator(f.DecoratorList, "classmethod")
}

// IsMagic reports whether the method is implicitly invoked by language
// syntax (dunder naming). The constructor is excluded: it has its own
// handling everywhere a magic method is treated specially.
func IsMagic(f *pyast.FunctionDef) bool {
	return strings.HasPrefix(f.Name, "__") &&
		strings.HasSuffix(f.Name, "__") &&
		f.Name != "__init__"
}

// IsInit reports whether the method is the constructor.
func IsInit(f *pyast.FunctionDef) bool {
	return f.Name == "__init__"
}

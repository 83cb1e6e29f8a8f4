// Package typing classifies expressions against the typing module's symbol
// tables, independent of how a file imported them (qualified access, direct
// import, or wildcard import).
package typing

import (
	"github.com/abramin/annolint/internal/pyast"
)

// SubscriptKind distinguishes plain generics from the metadata-carrying
// Annotated form, which downstream rules must treat differently.
type SubscriptKind int

const (
	// AnnotatedSubscript is an ordinary generic, e.g. typing.Union.
	AnnotatedSubscript SubscriptKind = iota
	// PEP593AnnotatedSubscript is typing.Annotated, which attaches metadata
	// to the first type argument.
	PEP593AnnotatedSubscript
)

func isPEP593AnnotatedSubscript(name string) bool {
	return name == "Annotated"
}

// MatchAnnotatedSubscript reports whether expr syntactically denotes a
// subscriptable typing construct, and which kind.
//
// Qualified access (module.Name) is accepted when Name is a registered
// construct and module one of its registered source modules; constructs are
// legitimately re-exported from several modules. A bare Name is accepted
// unconditionally when it is a PEP 585 builtin usable without import, and
// otherwise only when the import table confirms it was imported from one of
// its source modules.
func MatchAnnotatedSubscript(expr pyast.Expr, imports pyast.ImportTable) (SubscriptKind, bool) {
	switch e := expr.(type) {
	case *pyast.Attribute:
		if name, ok := e.Value.(*pyast.Name); ok {
			if modules, ok := importedSubscripts[e.Attr]; ok {
				if _, ok := modules[name.ID]; ok {
					if isPEP593AnnotatedSubscript(e.Attr) {
						return PEP593AnnotatedSubscript, true
					}
					return AnnotatedSubscript, true
				}
			}
		}
	case *pyast.Name:
		if _, ok := pep585Builtins[e.ID]; ok {
			return AnnotatedSubscript, true
		}
		if modules, ok := importedSubscripts[e.ID]; ok {
			for module := range modules {
				if imports.Contains(module, e.ID) {
					if isPEP593AnnotatedSubscript(e.ID) {
						return PEP593AnnotatedSubscript, true
					}
					return AnnotatedSubscript, true
				}
			}
		}
	}
	return 0, false
}

// IsPEP585Builtin reports whether expr refers to a typing alias that has a
// builtin-generic replacement (Dict, FrozenSet, List, Set, Tuple, Type).
// These aliases live only in the typing module proper; typing_extensions
// does not re-export this family.
func IsPEP585Builtin(expr pyast.Expr, imports pyast.ImportTable) bool {
	switch e := expr.(type) {
	case *pyast.Attribute:
		if name, ok := e.Value.(*pyast.Name); ok {
			if name.ID != "typing" {
				return false
			}
			_, ok := pep585BuiltinsEligible[e.Attr]
			return ok
		}
	case *pyast.Name:
		if _, ok := pep585BuiltinsEligible[e.ID]; !ok {
			return false
		}
		return imports.Contains("typing", e.ID)
	}
	return false
}

// MatchModuleMember reports whether expr refers to typing's target symbol,
// through either the typing module or typing_extensions when the extension
// module exports it. The rule engines use this with target "Any" to detect
// dynamically typed annotations.
func MatchModuleMember(expr pyast.Expr, imports pyast.ImportTable, target string) bool {
	switch e := expr.(type) {
	case *pyast.Attribute:
		if e.Attr != target {
			return false
		}
		name, ok := e.Value.(*pyast.Name)
		if !ok {
			return false
		}
		if name.ID == "typing" {
			return true
		}
		return name.ID == "typing_extensions" && InExtensions(target)
	case *pyast.Name:
		if e.ID != target {
			return false
		}
		if imports.Contains("typing", target) {
			return true
		}
		return InExtensions(target) && imports.Contains("typing_extensions", target)
	}
	return false
}

// InExtensions reports whether typing_extensions exports name.
func InExtensions(name string) bool {
	_, ok := typingExtensions[name]
	return ok
}

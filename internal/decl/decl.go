// Package decl narrows a module's AST into the declarations the rule
// engines operate on, with visibility labels attached.
package decl

import (
	"github.com/abramin/annolint/internal/pyast"
	"github.com/abramin/annolint/internal/visibility"
)

// Kind is the role of a declaration within its module.
type Kind int

const (
	KindModule Kind = iota
	KindClass
	KindNestedClass
	KindFunction
	KindNestedFunction
	KindMethod
)

// Definition is a single declaration. Function is non-nil exactly for the
// callable kinds (Function, NestedFunction, Method); the narrowing happens
// here, once, so rule engines never re-match node shapes.
type Definition struct {
	Kind       Kind
	Function   *pyast.FunctionDef
	Visibility visibility.Visibility
}

// IsCallable reports whether the definition is function-like.
func (d *Definition) IsCallable() bool {
	return d.Function != nil
}

// Collect walks a module and returns its declarations in source order:
// module-level functions, methods directly inside classes, and functions
// nested in other functions. Visibility derives from the declaration name;
// members of a private class are private themselves.
func Collect(m *pyast.Module) []*Definition {
	var defs []*Definition
	collectStmts(m.Body, scopeModule, visibility.Public, &defs)
	return defs
}

type scope int

const (
	scopeModule scope = iota
	scopeClass
	scopeFunction
)

func collectStmts(stmts []pyast.Stmt, sc scope, enclosing visibility.Visibility, defs *[]*Definition) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *pyast.FunctionDef:
			def := &Definition{Function: s, Visibility: combine(enclosing, visibility.Of(s.Name))}
			switch sc {
			case scopeModule:
				def.Kind = KindFunction
			case scopeClass:
				def.Kind = KindMethod
			case scopeFunction:
				def.Kind = KindNestedFunction
			}
			*defs = append(*defs, def)
			collectStmts(s.Body, scopeFunction, def.Visibility, defs)
		case *pyast.ClassDef:
			vis := combine(enclosing, visibility.Of(s.Name))
			kind := KindClass
			if sc != scopeModule {
				kind = KindNestedClass
			}
			*defs = append(*defs, &Definition{Kind: kind, Visibility: vis})
			collectStmts(s.Body, scopeClass, vis, defs)
		case *pyast.If:
			collectStmts(s.Body, sc, enclosing, defs)
			collectStmts(s.Orelse, sc, enclosing, defs)
		case *pyast.For:
			collectStmts(s.Body, sc, enclosing, defs)
			collectStmts(s.Orelse, sc, enclosing, defs)
		case *pyast.While:
			collectStmts(s.Body, sc, enclosing, defs)
			collectStmts(s.Orelse, sc, enclosing, defs)
		case *pyast.With:
			collectStmts(s.Body, sc, enclosing, defs)
		case *pyast.Try:
			collectStmts(s.Body, sc, enclosing, defs)
			for _, h := range s.Handlers {
				collectStmts(h.Body, sc, enclosing, defs)
			}
			collectStmts(s.Orelse, sc, enclosing, defs)
			collectStmts(s.FinalBody, sc, enclosing, defs)
		case *pyast.Match:
			for _, c := range s.Cases {
				collectStmts(c.Body, sc, enclosing, defs)
			}
		}
	}
}

func combine(enclosing, own visibility.Visibility) visibility.Visibility {
	if enclosing == visibility.Private {
		return visibility.Private
	}
	return own
}

// Package annotations implements the annotation-completeness rules: missing
// and overly-dynamic type annotations on function and method declarations
// (the ANN check family).
package annotations

import (
	"regexp"

	"github.com/abramin/annolint/internal/checks"
	"github.com/abramin/annolint/internal/decl"
	"github.com/abramin/annolint/internal/pyast"
	"github.com/abramin/annolint/internal/typing"
	"github.com/abramin/annolint/internal/visibility"
)

// Host is the per-file checker surface the rules run against. All methods
// are read-only except Report.
type Host interface {
	Enabled(code checks.Code) bool
	Report(check *checks.Check)
	Imports() pyast.ImportTable
	DummyVariableRgx() *regexp.Regexp
	Options() Settings
}

// checkDynamicallyTyped emits ANN401 when the annotation is the typing.Any
// marker. name is the display name of the annotated entity.
func checkDynamicallyTyped(host Host, annotation pyast.Expr, name string) {
	if !host.Enabled(checks.ANN401) {
		return
	}
	if typing.MatchModuleMember(annotation, host.Imports(), "Any") {
		host.Report(checks.New(
			checks.DynamicallyTypedExpression{Name: name},
			pyast.NodeRange(annotation),
		))
	}
}

// parameters returns the checked parameter sequence: positional, then
// positional-only, then keyword-only. Variadics are handled separately.
func parameters(args *pyast.Arguments) []*pyast.Arg {
	params := make([]*pyast.Arg, 0, len(args.Args)+len(args.PosOnlyArgs)+len(args.KwOnlyArgs))
	params = append(params, args.Args...)
	params = append(params, args.PosOnlyArgs...)
	params = append(params, args.KwOnlyArgs...)
	return params
}

// isDummy reports whether the parameter name matches the configured
// placeholder pattern.
func isDummy(host Host, name string) bool {
	return host.Options().SuppressDummyArgs && host.DummyVariableRgx().MatchString(name)
}

// Check generates annotation diagnostics for a definition. Non-callable
// definitions are a no-op.
func Check(host Host, def *decl.Definition) {
	switch def.Kind {
	case decl.KindFunction, decl.KindNestedFunction:
		checkFunction(host, def)
	case decl.KindMethod:
		checkMethod(host, def)
	}
}

func checkFunction(host Host, def *decl.Definition) {
	f := def.Function
	args := &f.Args

	// ANN001, ANN401
	for _, arg := range parameters(args) {
		if arg.Annotation != nil {
			checkDynamicallyTyped(host, arg.Annotation, arg.Name)
		} else if !isDummy(host, arg.Name) {
			if host.Enabled(checks.ANN001) {
				host.Report(checks.New(
					checks.MissingTypeFunctionArgument{Name: arg.Name},
					pyast.NodeRange(arg),
				))
			}
		}
	}

	// ANN002, ANN401
	if arg := args.VarArg; arg != nil {
		if arg.Annotation != nil {
			if !host.Options().AllowStarArgAny {
				checkDynamicallyTyped(host, arg.Annotation, "*"+arg.Name)
			}
		} else if !isDummy(host, arg.Name) {
			if host.Enabled(checks.ANN002) {
				host.Report(checks.New(
					checks.MissingTypeArgs{Name: arg.Name},
					pyast.NodeRange(arg),
				))
			}
		}
	}

	// ANN003, ANN401
	if arg := args.KwArg; arg != nil {
		if arg.Annotation != nil {
			if !host.Options().AllowStarArgAny {
				checkDynamicallyTyped(host, arg.Annotation, "**"+arg.Name)
			}
		} else if !isDummy(host, arg.Name) {
			if host.Enabled(checks.ANN003) {
				host.Report(checks.New(
					checks.MissingTypeKwargs{Name: arg.Name},
					pyast.NodeRange(arg),
				))
			}
		}
	}

	// ANN201, ANN202, ANN401
	if f.Returns != nil {
		checkDynamicallyTyped(host, f.Returns, f.Name)
		return
	}
	if host.Options().SuppressNoneReturning && isNoneReturning(f.Body) {
		return
	}
	switch def.Visibility {
	case visibility.Public:
		if host.Enabled(checks.ANN201) {
			host.Report(checks.New(
				checks.MissingReturnTypePublicFunction{Name: f.Name},
				pyast.NodeRange(f),
			))
		}
	case visibility.Private:
		if host.Enabled(checks.ANN202) {
			host.Report(checks.New(
				checks.MissingReturnTypePrivateFunction{Name: f.Name},
				pyast.NodeRange(f),
			))
		}
	}
}

// returnBranch pairs a role predicate with the diagnostic it produces when
// a method lacks a return annotation. Branches are evaluated in order and
// the first matching one wins, so the precedence is auditable in one place.
type returnBranch struct {
	match func(*pyast.FunctionDef) bool
	emit  func(host Host, def *decl.Definition, hasTypedArg bool)
}

var methodReturnBranches = []returnBranch{
	{
		match: visibility.IsClassmethod,
		emit: func(host Host, def *decl.Definition, _ bool) {
			if host.Enabled(checks.ANN206) {
				host.Report(checks.New(
					checks.MissingReturnTypeClassMethod{Name: def.Function.Name},
					pyast.NodeRange(def.Function),
				))
			}
		},
	},
	{
		match: visibility.IsStaticmethod,
		emit: func(host Host, def *decl.Definition, _ bool) {
			if host.Enabled(checks.ANN205) {
				host.Report(checks.New(
					checks.MissingReturnTypeStaticMethod{Name: def.Function.Name},
					pyast.NodeRange(def.Function),
				))
			}
		},
	},
	{
		// Magic methods other than the constructor; the constructor branch
		// below carries its own escape hatch.
		match: visibility.IsMagic,
		emit: func(host Host, def *decl.Definition, _ bool) {
			if host.Enabled(checks.ANN204) {
				host.Report(checks.New(
					checks.MissingReturnTypeMagicMethod{Name: def.Function.Name},
					pyast.NodeRange(def.Function),
				))
			}
		},
	},
	{
		match: visibility.IsInit,
		emit: func(host Host, def *decl.Definition, hasTypedArg bool) {
			if host.Enabled(checks.ANN204) {
				if !(host.Options().MypyInitReturn && hasTypedArg) {
					host.Report(checks.New(
						checks.MissingReturnTypeMagicMethod{Name: def.Function.Name},
						pyast.NodeRange(def.Function),
					))
				}
			}
		},
	},
	{
		match: func(*pyast.FunctionDef) bool { return true },
		emit: func(host Host, def *decl.Definition, _ bool) {
			switch def.Visibility {
			case visibility.Public:
				if host.Enabled(checks.ANN201) {
					host.Report(checks.New(
						checks.MissingReturnTypePublicFunction{Name: def.Function.Name},
						pyast.NodeRange(def.Function),
					))
				}
			case visibility.Private:
				if host.Enabled(checks.ANN202) {
					host.Report(checks.New(
						checks.MissingReturnTypePrivateFunction{Name: def.Function.Name},
						pyast.NodeRange(def.Function),
					))
				}
			}
		},
	},
}

func checkMethod(host Host, def *decl.Definition) {
	f := def.Function
	args := &f.Args
	hasTypedArg := false

	// The receiver (self or cls) is skipped here; it gets its own check
	// below. Static methods have no receiver.
	skip := 0
	if !visibility.IsStaticmethod(f) {
		skip = 1
	}

	// ANN001, ANN401
	for i, arg := range parameters(args) {
		if i < skip {
			continue
		}
		if arg.Annotation != nil {
			hasTypedArg = true
			checkDynamicallyTyped(host, arg.Annotation, arg.Name)
		} else if !isDummy(host, arg.Name) {
			if host.Enabled(checks.ANN001) {
				host.Report(checks.New(
					checks.MissingTypeFunctionArgument{Name: arg.Name},
					pyast.NodeRange(arg),
				))
			}
		}
	}

	// ANN002, ANN401
	if arg := args.VarArg; arg != nil {
		hasTypedArg = true
		if arg.Annotation != nil {
			if !host.Options().AllowStarArgAny {
				checkDynamicallyTyped(host, arg.Annotation, "*"+arg.Name)
			}
		} else if !isDummy(host, arg.Name) {
			if host.Enabled(checks.ANN002) {
				host.Report(checks.New(
					checks.MissingTypeArgs{Name: arg.Name},
					pyast.NodeRange(arg),
				))
			}
		}
	}

	// ANN003, ANN401
	if arg := args.KwArg; arg != nil {
		hasTypedArg = true
		if arg.Annotation != nil {
			if !host.Options().AllowStarArgAny {
				checkDynamicallyTyped(host, arg.Annotation, "**"+arg.Name)
			}
		} else if !isDummy(host, arg.Name) {
			if host.Enabled(checks.ANN003) {
				host.Report(checks.New(
					checks.MissingTypeKwargs{Name: arg.Name},
					pyast.NodeRange(arg),
				))
			}
		}
	}

	// ANN101, ANN102: the unannotated receiver itself, independent of the
	// dummy-argument suppression.
	if !visibility.IsStaticmethod(f) {
		if len(args.Args) > 0 {
			arg := args.Args[0]
			if arg.Annotation == nil {
				if visibility.IsClassmethod(f) {
					if host.Enabled(checks.ANN102) {
						host.Report(checks.New(
							checks.MissingTypeCls{Name: arg.Name},
							pyast.NodeRange(arg),
						))
					}
				} else {
					if host.Enabled(checks.ANN101) {
						host.Report(checks.New(
							checks.MissingTypeSelf{Name: arg.Name},
							pyast.NodeRange(arg),
						))
					}
				}
			}
		}
	}

	// ANN201, ANN202, ANN204, ANN205, ANN206, ANN401
	if f.Returns != nil {
		checkDynamicallyTyped(host, f.Returns, f.Name)
		return
	}
	if host.Options().SuppressNoneReturning && isNoneReturning(f.Body) {
		return
	}
	for _, branch := range methodReturnBranches {
		if branch.match(f) {
			branch.emit(host, def, hasTypedArg)
			return
		}
	}
}

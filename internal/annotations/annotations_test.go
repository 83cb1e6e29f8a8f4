package annotations

import (
	"regexp"
	"testing"

	"github.com/abramin/annolint/internal/checks"
	"github.com/abramin/annolint/internal/decl"
	"github.com/abramin/annolint/internal/pyast"
	"github.com/abramin/annolint/internal/visibility"
)

// testHost records reports against a fixed enabled set.
type testHost struct {
	enabled map[checks.Code]bool
	opts    Settings
	imports pyast.ImportTable
	rgx     *regexp.Regexp
	reports []*checks.Check
}

func newTestHost(codes ...checks.Code) *testHost {
	enabled := make(map[checks.Code]bool)
	for _, code := range codes {
		enabled[code] = true
	}
	return &testHost{
		enabled: enabled,
		imports: make(pyast.ImportTable),
		rgx:     regexp.MustCompile(`^(_+|(_+[a-zA-Z0-9_]*[a-zA-Z0-9]+?))$`),
	}
}

func (h *testHost) Enabled(code checks.Code) bool    { return h.enabled[code] }
func (h *testHost) Report(check *checks.Check)       { h.reports = append(h.reports, check) }
func (h *testHost) Imports() pyast.ImportTable       { return h.imports }
func (h *testHost) DummyVariableRgx() *regexp.Regexp { return h.rgx }
func (h *testHost) Options() Settings                { return h.opts }

func (h *testHost) codes() []checks.Code {
	codes := make([]checks.Code, 0, len(h.reports))
	for _, r := range h.reports {
		codes = append(codes, r.Kind.Code())
	}
	return codes
}

func arg(name string) *pyast.Arg {
	return &pyast.Arg{Name: name}
}

func argAnn(name string, annotation pyast.Expr) *pyast.Arg {
	return &pyast.Arg{Name: name, Annotation: annotation}
}

func intAnn() pyast.Expr {
	return &pyast.Name{ID: "int"}
}

func anyAnn() pyast.Expr {
	return &pyast.Attribute{Value: &pyast.Name{ID: "typing"}, Attr: "Any"}
}

func funcDef(name string, args pyast.Arguments, returns pyast.Expr, body ...pyast.Stmt) *pyast.FunctionDef {
	return &pyast.FunctionDef{Name: name, Args: args, Returns: returns, Body: body}
}

func function(f *pyast.FunctionDef) *decl.Definition {
	return &decl.Definition{Kind: decl.KindFunction, Function: f, Visibility: visibility.Of(f.Name)}
}

func method(f *pyast.FunctionDef) *decl.Definition {
	return &decl.Definition{Kind: decl.KindMethod, Function: f, Visibility: visibility.Of(f.Name)}
}

func decorated(f *pyast.FunctionDef, names ...string) *pyast.FunctionDef {
	for _, n := range names {
		f.DecoratorList = append(f.DecoratorList, &pyast.Name{ID: n})
	}
	return f
}

func assertCodes(t *testing.T, host *testHost, want ...checks.Code) {
	t.Helper()
	got := host.codes()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestPublicFunctionMissingReturn(t *testing.T) {
	f := funcDef("greet", pyast.Arguments{}, nil)

	host := newTestHost(checks.ANN201)
	Check(host, function(f))
	assertCodes(t, host, checks.ANN201)

	disabled := newTestHost()
	Check(disabled, function(f))
	assertCodes(t, disabled)
}

func TestPrivateFunctionMissingReturn(t *testing.T) {
	f := funcDef("_helper", pyast.Arguments{}, nil)
	host := newTestHost(checks.ANN201, checks.ANN202)
	Check(host, function(f))
	assertCodes(t, host, checks.ANN202)
}

func TestMissingArguments(t *testing.T) {
	f := funcDef("compute", pyast.Arguments{
		Args:       []*pyast.Arg{arg("x"), argAnn("y", intAnn())},
		VarArg:     arg("args"),
		KwArg:      arg("kwargs"),
		KwOnlyArgs: []*pyast.Arg{arg("flag")},
	}, intAnn())

	host := newTestHost(checks.ANN001, checks.ANN002, checks.ANN003)
	Check(host, function(f))
	assertCodes(t, host, checks.ANN001, checks.ANN001, checks.ANN002, checks.ANN003)
}

func TestDummyArgSuppression(t *testing.T) {
	f := funcDef("callback", pyast.Arguments{
		Args: []*pyast.Arg{arg("_unused"), arg("real")},
	}, intAnn())

	host := newTestHost(checks.ANN001)
	host.opts.SuppressDummyArgs = true
	Check(host, function(f))
	assertCodes(t, host, checks.ANN001)

	// Without the option the dummy name is reported too.
	host = newTestHost(checks.ANN001)
	Check(host, function(f))
	assertCodes(t, host, checks.ANN001, checks.ANN001)
}

func TestDynamicallyTypedArguments(t *testing.T) {
	f := funcDef("handle", pyast.Arguments{
		Args: []*pyast.Arg{argAnn("event", anyAnn())},
	}, intAnn())

	host := newTestHost(checks.ANN401)
	Check(host, function(f))
	assertCodes(t, host, checks.ANN401)

	kind := host.reports[0].Kind.(checks.DynamicallyTypedExpression)
	if kind.Name != "event" {
		t.Errorf("name = %q, want %q", kind.Name, "event")
	}
}

func TestDynamicallyTypedBareAnyNeedsImport(t *testing.T) {
	f := funcDef("handle", pyast.Arguments{
		Args: []*pyast.Arg{argAnn("event", &pyast.Name{ID: "Any"})},
	}, intAnn())

	host := newTestHost(checks.ANN401)
	Check(host, function(f))
	assertCodes(t, host)

	host = newTestHost(checks.ANN401)
	host.imports.Add("typing", "Any")
	Check(host, function(f))
	assertCodes(t, host, checks.ANN401)
}

func TestStarArgAny(t *testing.T) {
	f := funcDef("collect", pyast.Arguments{
		VarArg: argAnn("args", anyAnn()),
	}, intAnn())

	host := newTestHost(checks.ANN401)
	Check(host, function(f))
	assertCodes(t, host, checks.ANN401)

	kind := host.reports[0].Kind.(checks.DynamicallyTypedExpression)
	if kind.Name != "*args" {
		t.Errorf("name = %q, want %q", kind.Name, "*args")
	}

	host = newTestHost(checks.ANN401)
	host.opts.AllowStarArgAny = true
	Check(host, function(f))
	assertCodes(t, host)
}

func TestKwargAnyPrefix(t *testing.T) {
	f := funcDef("collect", pyast.Arguments{
		KwArg: argAnn("extra", anyAnn()),
	}, intAnn())

	host := newTestHost(checks.ANN401)
	Check(host, function(f))
	assertCodes(t, host, checks.ANN401)

	kind := host.reports[0].Kind.(checks.DynamicallyTypedExpression)
	if kind.Name != "**extra" {
		t.Errorf("name = %q, want %q", kind.Name, "**extra")
	}
}

func TestDynamicallyTypedReturn(t *testing.T) {
	f := funcDef("fetch", pyast.Arguments{}, anyAnn())
	host := newTestHost(checks.ANN201, checks.ANN401)
	Check(host, function(f))
	assertCodes(t, host, checks.ANN401)
}

func TestSuppressNoneReturning(t *testing.T) {
	noneOnly := funcDef("log", pyast.Arguments{}, nil, ret(constNone()))
	valued := funcDef("get", pyast.Arguments{}, nil, ret(constInt(1)))

	host := newTestHost(checks.ANN201)
	host.opts.SuppressNoneReturning = true
	Check(host, function(noneOnly))
	assertCodes(t, host)

	host = newTestHost(checks.ANN201)
	host.opts.SuppressNoneReturning = true
	Check(host, function(valued))
	assertCodes(t, host, checks.ANN201)
}

func TestMethodReceiver(t *testing.T) {
	f := funcDef("update", pyast.Arguments{
		Args: []*pyast.Arg{arg("self"), argAnn("value", intAnn())},
	}, intAnn())

	host := newTestHost(checks.ANN001, checks.ANN101)
	Check(host, method(f))
	assertCodes(t, host, checks.ANN101)
}

func TestClassmethodReceiver(t *testing.T) {
	f := decorated(funcDef("create", pyast.Arguments{
		Args: []*pyast.Arg{arg("cls")},
	}, intAnn()), "classmethod")

	host := newTestHost(checks.ANN101, checks.ANN102)
	Check(host, method(f))
	assertCodes(t, host, checks.ANN102)
}

func TestStaticmethodHasNoReceiver(t *testing.T) {
	f := decorated(funcDef("parse", pyast.Arguments{
		Args: []*pyast.Arg{arg("raw")},
	}, intAnn()), "staticmethod")

	host := newTestHost(checks.ANN001, checks.ANN101, checks.ANN102)
	Check(host, method(f))
	assertCodes(t, host, checks.ANN001)
}

func TestMethodReturnPriority(t *testing.T) {
	tests := []struct {
		desc string
		f    *pyast.FunctionDef
		want checks.Code
	}{
		{
			desc: "classmethod outranks magic naming",
			f: decorated(funcDef("__new__", pyast.Arguments{
				Args: []*pyast.Arg{argAnn("cls", intAnn())},
			}, nil), "classmethod"),
			want: checks.ANN206,
		},
		{
			desc: "staticmethod",
			f: decorated(funcDef("helper", pyast.Arguments{}, nil),
				"staticmethod"),
			want: checks.ANN205,
		},
		{
			desc: "magic method",
			f: funcDef("__str__", pyast.Arguments{
				Args: []*pyast.Arg{argAnn("self", intAnn())},
			}, nil),
			want: checks.ANN204,
		},
		{
			desc: "constructor falls through the magic branch",
			f: funcDef("__init__", pyast.Arguments{
				Args: []*pyast.Arg{argAnn("self", intAnn())},
			}, nil),
			want: checks.ANN204,
		},
		{
			desc: "plain public method",
			f: funcDef("run", pyast.Arguments{
				Args: []*pyast.Arg{argAnn("self", intAnn())},
			}, nil),
			want: checks.ANN201,
		},
		{
			desc: "plain private method",
			f: funcDef("_run", pyast.Arguments{
				Args: []*pyast.Arg{argAnn("self", intAnn())},
			}, nil),
			want: checks.ANN202,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			host := newTestHost(checks.ANN201, checks.ANN202, checks.ANN204,
				checks.ANN205, checks.ANN206)
			Check(host, method(tt.f))
			assertCodes(t, host, tt.want)
		})
	}
}

func TestMypyInitReturn(t *testing.T) {
	build := func() *pyast.FunctionDef {
		return funcDef("__init__", pyast.Arguments{
			Args: []*pyast.Arg{arg("self"), argAnn("name", intAnn())},
		}, nil)
	}

	host := newTestHost(checks.ANN204)
	host.opts.MypyInitReturn = true
	Check(host, method(build()))
	assertCodes(t, host)

	host = newTestHost(checks.ANN204)
	Check(host, method(build()))
	assertCodes(t, host, checks.ANN204)

	// Without any annotated argument the mypy convention does not apply.
	untyped := funcDef("__init__", pyast.Arguments{
		Args: []*pyast.Arg{arg("self"), arg("name")},
	}, nil)
	host = newTestHost(checks.ANN204)
	host.opts.MypyInitReturn = true
	Check(host, method(untyped))
	assertCodes(t, host, checks.ANN204)
}

func TestNonCallableKindsAreIgnored(t *testing.T) {
	host := newTestHost(checks.ANN001, checks.ANN201)
	Check(host, &decl.Definition{Kind: decl.KindClass, Visibility: visibility.Public})
	Check(host, &decl.Definition{Kind: decl.KindModule, Visibility: visibility.Public})
	assertCodes(t, host)
}

func TestEachDiagnosticGatedIndividually(t *testing.T) {
	f := funcDef("mixed", pyast.Arguments{
		Args: []*pyast.Arg{arg("x"), argAnn("y", anyAnn())},
	}, nil)

	// ANN001 and ANN201 disabled; only ANN401 fires even though the
	// declaration triggers all three.
	host := newTestHost(checks.ANN401)
	Check(host, function(f))
	assertCodes(t, host, checks.ANN401)
}

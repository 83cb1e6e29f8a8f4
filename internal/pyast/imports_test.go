package pyast

import "testing"

func fromImport(module string, names ...string) *ImportFrom {
	aliases := make([]Alias, len(names))
	for i, n := range names {
		aliases[i] = Alias{Name: n}
	}
	return &ImportFrom{Module: module, Names: aliases}
}

func TestCollectImports(t *testing.T) {
	m := &Module{Body: []Stmt{
		fromImport("typing", "Optional", "Union"),
		fromImport("collections.abc", "Iterable"),
		&Import{Names: []Alias{{Name: "os"}}},
		&If{Body: []Stmt{
			fromImport("typing_extensions", "Annotated"),
		}},
		&FunctionDef{Name: "late", Body: []Stmt{
			fromImport("weakref", "ref"),
		}},
	}}

	table := CollectImports(m)

	for _, tt := range []struct {
		module, name string
		want         bool
	}{
		{"typing", "Optional", true},
		{"typing", "Union", true},
		{"typing", "List", false},
		{"collections.abc", "Iterable", true},
		{"typing_extensions", "Annotated", true},
		{"weakref", "ref", true},
		{"os", "path", false}, // plain imports are not recorded
		{"re", "Match", false},
	} {
		if got := table.Contains(tt.module, tt.name); got != tt.want {
			t.Errorf("Contains(%q, %q) = %v, want %v", tt.module, tt.name, got, tt.want)
		}
	}
}

func TestCollectImportsWildcard(t *testing.T) {
	m := &Module{Body: []Stmt{
		fromImport("typing", Wildcard),
	}}
	table := CollectImports(m)
	if !table.Contains("typing", "Optional") {
		t.Error("wildcard import does not cover Optional")
	}
	if table.Contains("typing_extensions", "Optional") {
		t.Error("wildcard leaked into another module")
	}
}

func TestCollectImportsSkipsRelative(t *testing.T) {
	rel := fromImport("models", "User")
	rel.Level = 1
	table := CollectImports(&Module{Body: []Stmt{rel}})
	if table.Contains("models", "User") {
		t.Error("relative import recorded")
	}
}

package pyast

// Wildcard is the member name recorded for a star import.
const Wildcard = "*"

// ImportTable maps a module name to the set of member names a file imported
// from it. It is built once per file, before any typing query runs, and is
// read-only afterwards.
type ImportTable map[string]map[string]struct{}

// Contains reports whether name was imported from module, either exactly or
// through a wildcard import. A missing module entry means "not imported".
func (t ImportTable) Contains(module, name string) bool {
	members, ok := t[module]
	if !ok {
		return false
	}
	if _, ok := members[name]; ok {
		return true
	}
	_, ok = members[Wildcard]
	return ok
}

// Add records that name was imported from module.
func (t ImportTable) Add(module, name string) {
	members, ok := t[module]
	if !ok {
		members = make(map[string]struct{})
		t[module] = members
	}
	members[name] = struct{}{}
}

// CollectImports builds the import table for a module. Only from-imports
// feed the table: qualified access like typing.Union is recognized by module
// name alone, so plain imports carry no extra information here. Imports
// inside functions and conditional blocks count the same as top-level ones.
func CollectImports(m *Module) ImportTable {
	table := make(ImportTable)
	var walk func(stmts []Stmt)
	walk = func(stmts []Stmt) {
		for _, stmt := range stmts {
			switch s := stmt.(type) {
			case *ImportFrom:
				if s.Level > 0 {
					// Relative imports never resolve to typing modules.
					continue
				}
				for _, alias := range s.Names {
					table.Add(s.Module, alias.Name)
				}
			case *FunctionDef:
				walk(s.Body)
			case *ClassDef:
				walk(s.Body)
			case *If:
				walk(s.Body)
				walk(s.Orelse)
			case *For:
				walk(s.Body)
				walk(s.Orelse)
			case *While:
				walk(s.Body)
				walk(s.Orelse)
			case *With:
				walk(s.Body)
			case *Try:
				walk(s.Body)
				for _, h := range s.Handlers {
					walk(h.Body)
				}
				walk(s.Orelse)
				walk(s.FinalBody)
			case *Match:
				for _, c := range s.Cases {
					walk(c.Body)
				}
			}
		}
	}
	walk(m.Body)
	return table
}

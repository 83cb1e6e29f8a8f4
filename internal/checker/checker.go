// Package checker orchestrates a file's rule runs: it builds the import
// table, narrows declarations, and feeds both the declaration-level and
// expression-level rules, collecting their diagnostics in source order.
package checker

import (
	"regexp"
	"sort"

	"github.com/abramin/annolint/internal/annotations"
	"github.com/abramin/annolint/internal/checks"
	"github.com/abramin/annolint/internal/decl"
	"github.com/abramin/annolint/internal/pyast"
	"github.com/abramin/annolint/internal/pyupgrade"
	"github.com/abramin/annolint/internal/settings"
)

// Checker runs the rules over one file. It implements the Host interfaces
// the rule packages define.
type Checker struct {
	settings *settings.Settings
	patch    bool
	imports  pyast.ImportTable
	checks   []*checks.Check
}

// New creates a checker for one file. patch controls whether diagnostics
// carry replacement fixes.
func New(s *settings.Settings, patch bool) *Checker {
	return &Checker{settings: s, patch: patch}
}

// Enabled reports whether a code is enabled for this run.
func (c *Checker) Enabled(code checks.Code) bool {
	return c.settings.IsEnabled(code)
}

// Report records a diagnostic.
func (c *Checker) Report(check *checks.Check) {
	c.checks = append(c.checks, check)
}

// Patch reports whether diagnostics should carry fixes.
func (c *Checker) Patch() bool {
	return c.patch
}

// Imports returns the current file's import table.
func (c *Checker) Imports() pyast.ImportTable {
	return c.imports
}

// DummyVariableRgx returns the placeholder-name pattern.
func (c *Checker) DummyVariableRgx() *regexp.Regexp {
	return c.settings.DummyVariableRgx
}

// Options returns the annotation plugin options.
func (c *Checker) Options() annotations.Settings {
	return c.settings.Annotations
}

// CheckModule runs all rules over a module and returns its diagnostics
// sorted by source position. The import table is fully built before any
// rule runs.
func (c *Checker) CheckModule(m *pyast.Module) []checks.Message {
	c.imports = pyast.CollectImports(m)

	for _, def := range decl.Collect(m) {
		annotations.Check(c, def)
	}

	pyast.Inspect(m, func(n pyast.Node) bool {
		if call, ok := n.(*pyast.Call); ok {
			pyupgrade.CheckUnnecessaryAbspath(c, call)
		}
		return true
	})

	sort.SliceStable(c.checks, func(i, j int) bool {
		a, b := c.checks[i].Range.Start, c.checks[j].Range.Start
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Col < b.Col
	})

	messages := make([]checks.Message, 0, len(c.checks))
	for _, check := range c.checks {
		messages = append(messages, check.Message())
	}
	return messages
}

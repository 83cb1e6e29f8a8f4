// Package pyupgrade implements modernization rules for constructs that have
// simpler spellings on current Python versions (the U check family).
package pyupgrade

import (
	"github.com/abramin/annolint/internal/checks"
	"github.com/abramin/annolint/internal/pyast"
)

// Host is the per-file checker surface the rules run against. Patch reports
// whether diagnostics should carry replacement fixes.
type Host interface {
	Enabled(code checks.Code) bool
	Report(check *checks.Check)
	Patch() bool
}

// matchUnnecessaryAbspath recognizes abspath(__file__), called bare or as
// os.path.abspath.
func matchUnnecessaryAbspath(call *pyast.Call) bool {
	switch fn := call.Func.(type) {
	case *pyast.Name:
		if fn.ID != "abspath" {
			return false
		}
	case *pyast.Attribute:
		if fn.Attr != "abspath" {
			return false
		}
	default:
		return false
	}
	if len(call.Args) != 1 || len(call.Keywords) != 0 {
		return false
	}
	name, ok := call.Args[0].(*pyast.Name)
	return ok && name.ID == "__file__"
}

// CheckUnnecessaryAbspath emits U002 for abspath(__file__) calls. Since
// Python 3.9, __file__ is already absolute, so the whole call collapses to
// the bare name; in patch mode the diagnostic carries that replacement.
func CheckUnnecessaryAbspath(host Host, call *pyast.Call) {
	if !host.Enabled(checks.U002) {
		return
	}
	if !matchUnnecessaryAbspath(call) {
		return
	}
	check := checks.New(checks.UnnecessaryAbspath{}, pyast.NodeRange(call))
	if host.Patch() {
		check.Amend(checks.Replacement("__file__", call.Start(), call.End()))
	}
	host.Report(check)
}

// Package settings holds the effective per-run settings, resolved from the
// configuration layer into the shape the checkers consume.
package settings

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"sort"

	"github.com/abramin/annolint/internal/annotations"
	"github.com/abramin/annolint/internal/checks"
)

// DefaultDummyVariableRgx matches conventional placeholder names: a run of
// underscores, or an underscore-prefixed identifier.
const DefaultDummyVariableRgx = `^(_+|(_+[a-zA-Z0-9_]*[a-zA-Z0-9]+?))$`

// Settings are the resolved, read-only settings for one run.
type Settings struct {
	DummyVariableRgx *regexp.Regexp
	Enabled          map[checks.Code]struct{}
	Annotations      annotations.Settings
}

// ResolveCodes turns the four prefix lists into the enabled code set. It
// walks specificity levels in ascending order; at each level it first adds
// the codes selected at that level, then removes the ignored ones. A finer
// selector therefore overrides a coarser one regardless of which list it
// came from, and within a level selection is applied before ignoring.
// Pure and deterministic: identical inputs always yield identical sets.
func ResolveCodes(sel, extendSel, ignore, extendIgnore []checks.CodePrefix) map[checks.Code]struct{} {
	codes := make(map[checks.Code]struct{})
	for _, specificity := range checks.Specificities {
		for _, prefix := range sel {
			if prefix.Specificity() == specificity {
				for _, code := range prefix.Codes() {
					codes[code] = struct{}{}
				}
			}
		}
		for _, prefix := range extendSel {
			if prefix.Specificity() == specificity {
				for _, code := range prefix.Codes() {
					codes[code] = struct{}{}
				}
			}
		}
		for _, prefix := range ignore {
			if prefix.Specificity() == specificity {
				for _, code := range prefix.Codes() {
					delete(codes, code)
				}
			}
		}
		for _, prefix := range extendIgnore {
			if prefix.Specificity() == specificity {
				for _, code := range prefix.Codes() {
					delete(codes, code)
				}
			}
		}
	}
	return codes
}

// New builds settings from already-parsed inputs. The dummy pattern is
// compiled eagerly so an invalid pattern surfaces here, before any file is
// checked.
func New(dummyRgx string, sel, extendSel, ignore, extendIgnore []checks.CodePrefix, ann annotations.Settings) (*Settings, error) {
	if dummyRgx == "" {
		dummyRgx = DefaultDummyVariableRgx
	}
	rgx, err := regexp.Compile(dummyRgx)
	if err != nil {
		return nil, fmt.Errorf("compiling dummy-variable pattern: %w", err)
	}
	return &Settings{
		DummyVariableRgx: rgx,
		Enabled:          ResolveCodes(sel, extendSel, ignore, extendIgnore),
		Annotations:      ann,
	}, nil
}

// ForRule builds settings enabling a single code, for tests.
func ForRule(code checks.Code) *Settings {
	return ForRules(code)
}

// ForRules builds settings enabling the given codes, for tests.
func ForRules(codes ...checks.Code) *Settings {
	enabled := make(map[checks.Code]struct{}, len(codes))
	for _, code := range codes {
		enabled[code] = struct{}{}
	}
	return &Settings{
		DummyVariableRgx: regexp.MustCompile(DefaultDummyVariableRgx),
		Enabled:          enabled,
	}
}

// IsEnabled reports whether a code is in the enabled set.
func (s *Settings) IsEnabled(code checks.Code) bool {
	_, ok := s.Enabled[code]
	return ok
}

// Hash fingerprints everything that can change a file's diagnostics, for
// cache keying.
func (s *Settings) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(s.DummyVariableRgx.String()))
	enabled := make([]string, 0, len(s.Enabled))
	for code := range s.Enabled {
		enabled = append(enabled, string(code))
	}
	sort.Strings(enabled)
	for _, code := range enabled {
		h.Write([]byte{0})
		h.Write([]byte(code))
	}
	h.Write([]byte{0})
	h.Write([]byte(fmt.Sprintf("%t%t%t%t",
		s.Annotations.MypyInitReturn,
		s.Annotations.SuppressDummyArgs,
		s.Annotations.SuppressNoneReturning,
		s.Annotations.AllowStarArgAny,
	)))
	return h.Sum64()
}

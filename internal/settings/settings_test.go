package settings

import (
	"reflect"
	"testing"

	"github.com/abramin/annolint/internal/annotations"
	"github.com/abramin/annolint/internal/checks"
)

func prefixes(raw ...string) []checks.CodePrefix {
	ps := make([]checks.CodePrefix, len(raw))
	for i, s := range raw {
		ps[i] = checks.CodePrefix(s)
	}
	return ps
}

func codeSet(codes ...checks.Code) map[checks.Code]struct{} {
	set := make(map[checks.Code]struct{})
	for _, code := range codes {
		set[code] = struct{}{}
	}
	return set
}

func TestResolveCodes(t *testing.T) {
	tests := []struct {
		name         string
		sel          []checks.CodePrefix
		extendSel    []checks.CodePrefix
		ignore       []checks.CodePrefix
		extendIgnore []checks.CodePrefix
		want         map[checks.Code]struct{}
	}{
		{
			name: "category expands to all codes",
			sel:  prefixes("W"),
			want: codeSet(checks.W292, checks.W605),
		},
		{
			name: "hundreds prefix narrows",
			sel:  prefixes("W6"),
			want: codeSet(checks.W605),
		},
		{
			name:   "explicit ignore wins over category select",
			sel:    prefixes("W"),
			ignore: prefixes("W292"),
			want:   codeSet(checks.W605),
		},
		{
			name:   "same specificity: select before ignore",
			sel:    prefixes("W605"),
			ignore: prefixes("W605"),
			want:   codeSet(),
		},
		{
			name:   "finer select re-includes coarser ignore",
			sel:    prefixes("W", "W292"),
			ignore: prefixes("W2"),
			want:   codeSet(checks.W292, checks.W605),
		},
		{
			name:      "extend-select adds on top",
			sel:       prefixes("W"),
			extendSel: prefixes("ANN401"),
			want:      codeSet(checks.W292, checks.W605, checks.ANN401),
		},
		{
			name:         "extend-ignore removes like ignore",
			sel:          prefixes("ANN0"),
			extendIgnore: prefixes("ANN003"),
			want:         codeSet(checks.ANN001, checks.ANN002),
		},
		{
			name: "empty inputs yield empty set",
			want: codeSet(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveCodes(tt.sel, tt.extendSel, tt.ignore, tt.extendIgnore)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveCodes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveCodesIdempotent(t *testing.T) {
	sel := prefixes("ANN", "W")
	ignore := prefixes("ANN1")
	first := ResolveCodes(sel, nil, ignore, nil)
	for i := 0; i < 3; i++ {
		again := ResolveCodes(sel, nil, ignore, nil)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differed: %v vs %v", i, again, first)
		}
	}
}

func TestNewRejectsBadPattern(t *testing.T) {
	_, err := New("([unclosed", nil, nil, nil, nil, annotations.Settings{})
	if err == nil {
		t.Fatal("expected error for invalid dummy pattern")
	}
}

func TestSettingsHash(t *testing.T) {
	a := ForRules(checks.ANN001, checks.ANN201)
	b := ForRules(checks.ANN201, checks.ANN001)
	if a.Hash() != b.Hash() {
		t.Error("hash should not depend on code order")
	}

	c := ForRules(checks.ANN001)
	if a.Hash() == c.Hash() {
		t.Error("different enabled sets should hash differently")
	}

	d := ForRules(checks.ANN001, checks.ANN201)
	d.Annotations.MypyInitReturn = true
	if a.Hash() == d.Hash() {
		t.Error("plugin options should feed the hash")
	}
}

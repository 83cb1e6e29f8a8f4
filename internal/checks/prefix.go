package checks

import (
	"fmt"
	"strings"
)

// Specificity is the coarseness of a code prefix, from a whole category down
// to a single explicit code.
type Specificity int

const (
	SpecificityCategory Specificity = iota
	SpecificityHundreds
	SpecificityTens
	SpecificityExplicit
)

// Specificities lists all levels in ascending order. Code resolution walks
// them coarse to fine so that finer selectors override coarser ones.
var Specificities = []Specificity{
	SpecificityCategory,
	SpecificityHundreds,
	SpecificityTens,
	SpecificityExplicit,
}

// CodePrefix selects a group of codes by shared prefix, e.g. "W", "ANN2",
// "ANN20", or a full code like "ANN201".
type CodePrefix string

// categories are the known category letters.
var categories = map[string]struct{}{
	"E":   {},
	"W":   {},
	"ANN": {},
	"U":   {},
}

// split separates the category letters from the trailing digits.
func (p CodePrefix) split() (letters, digits string) {
	s := string(p)
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	return s[:i], s[i:]
}

// Specificity derives the level from the number of digits after the
// category letters.
func (p CodePrefix) Specificity() Specificity {
	_, digits := p.split()
	switch len(digits) {
	case 0:
		return SpecificityCategory
	case 1:
		return SpecificityHundreds
	case 2:
		return SpecificityTens
	default:
		return SpecificityExplicit
	}
}

// Codes expands the prefix into the concrete codes it covers.
func (p CodePrefix) Codes() []Code {
	letters, digits := p.split()
	var codes []Code
	for _, code := range AllCodes {
		rest, ok := strings.CutPrefix(string(code), letters)
		if !ok || len(rest) == 0 || rest[0] < '0' || rest[0] > '9' {
			// The letters must cover the code's whole category, so "E"
			// never matches codes of a longer category like "EX1".
			continue
		}
		if strings.HasPrefix(rest, digits) {
			codes = append(codes, code)
		}
	}
	return codes
}

// ParsePrefix validates a textual selector. The category must be known and
// the digit part at most three long.
func ParsePrefix(s string) (CodePrefix, error) {
	p := CodePrefix(s)
	letters, digits := p.split()
	if _, ok := categories[letters]; !ok {
		return "", fmt.Errorf("unknown check category in %q", s)
	}
	if len(digits) > 3 || letters+digits != s {
		return "", fmt.Errorf("invalid check code prefix %q", s)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return "", fmt.Errorf("invalid check code prefix %q", s)
		}
	}
	return p, nil
}

// ParsePrefixes validates a list of textual selectors.
func ParsePrefixes(raw []string) ([]CodePrefix, error) {
	prefixes := make([]CodePrefix, 0, len(raw))
	for _, s := range raw {
		p, err := ParsePrefix(s)
		if err != nil {
			return nil, err
		}
		prefixes = append(prefixes, p)
	}
	return prefixes, nil
}

// UnmarshalText allows prefixes to be set from configs and CLI flags.
func (p *CodePrefix) UnmarshalText(text []byte) error {
	parsed, err := ParsePrefix(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

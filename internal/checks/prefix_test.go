package checks

import (
	"reflect"
	"testing"
)

func TestPrefixSpecificity(t *testing.T) {
	tests := []struct {
		prefix CodePrefix
		want   Specificity
	}{
		{"W", SpecificityCategory},
		{"ANN", SpecificityCategory},
		{"W2", SpecificityHundreds},
		{"ANN4", SpecificityHundreds},
		{"W29", SpecificityTens},
		{"ANN20", SpecificityTens},
		{"W292", SpecificityExplicit},
		{"ANN201", SpecificityExplicit},
	}

	for _, tt := range tests {
		if got := tt.prefix.Specificity(); got != tt.want {
			t.Errorf("Specificity(%q) = %v, want %v", tt.prefix, got, tt.want)
		}
	}
}

func TestPrefixCodes(t *testing.T) {
	tests := []struct {
		prefix CodePrefix
		want   []Code
	}{
		{"W", []Code{W292, W605}},
		{"W2", []Code{W292}},
		{"W6", []Code{W605}},
		{"W60", []Code{W605}},
		{"W605", []Code{W605}},
		{"ANN0", []Code{ANN001, ANN002, ANN003}},
		{"ANN1", []Code{ANN101, ANN102}},
		{"ANN2", []Code{ANN201, ANN202, ANN204, ANN205, ANN206}},
		{"ANN20", []Code{ANN201, ANN202, ANN204, ANN205, ANN206}},
		{"ANN4", []Code{ANN401}},
		{"U", []Code{U001, U002}},
		{"W9", nil},
	}

	for _, tt := range tests {
		if got := tt.prefix.Codes(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Codes(%q) = %v, want %v", tt.prefix, got, tt.want)
		}
	}
}

func TestParsePrefix(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"W", true},
		{"ANN", true},
		{"ANN201", true},
		{"X", false},
		{"ANN2017", false},
		{"ann201", false},
		{"W29a", false},
		{"", false},
	}

	for _, tt := range tests {
		_, err := ParsePrefix(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParsePrefix(%q) unexpected error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParsePrefix(%q) expected error", tt.input)
		}
	}
}

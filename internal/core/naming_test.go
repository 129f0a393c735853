package core

import (
	"strings"
	"testing"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		identifier string
		want       string
	}{
		{"SgTaxCalculator", "sg-tax-calculator"},
		{"CircleImageCropper", "circle-image-cropper"},
		{"EinopsViz", "einops-viz"},
		{"FlopsCalculator", "flops-calculator"},
		{"Foo", "foo"},
		{"HTTPClient", "h-t-t-p-client"},
		{"foobar", "foobar"},
		{"Tensor2Reshape", "tensor2-reshape"},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			if got := Slug(tt.identifier); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.identifier, got, tt.want)
			}
		})
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		identifier string
		want       string
	}{
		{"SgTaxCalculator", "Sg Tax Calculator"},
		{"CircleImageCropper", "Circle Image Cropper"},
		{"EinopsViz", "Einops Viz"},
		{"Foo", "Foo"},
		{"HTTPClient", "H T T P Client"},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			if got := Title(tt.identifier); got != tt.want {
				t.Errorf("Title(%q) = %q, want %q", tt.identifier, got, tt.want)
			}
		})
	}
}

var pascalIdentifiers = []struct {
	identifier string
	words      int
}{
	{"Foo", 1},
	{"EinopsViz", 2},
	{"SgTaxCalculator", 3},
	{"CircleImageCropper", 3},
	{"FlopsCalculatorForTransformerModels", 5},
}

func TestSlugShape(t *testing.T) {
	for _, tt := range pascalIdentifiers {
		got := Slug(tt.identifier)
		if n := strings.Count(got, "-"); n != tt.words-1 {
			t.Errorf("Slug(%q) = %q has %d hyphens, want %d", tt.identifier, got, n, tt.words-1)
		}
		if got != strings.ToLower(got) {
			t.Errorf("Slug(%q) = %q contains uppercase letters", tt.identifier, got)
		}
		if strings.HasPrefix(got, "-") || strings.Contains(got, "--") {
			t.Errorf("Slug(%q) = %q has an empty segment", tt.identifier, got)
		}
	}
}

func TestSlugDeterministic(t *testing.T) {
	for _, tt := range pascalIdentifiers {
		if a, b := Slug(tt.identifier), Slug(tt.identifier); a != b {
			t.Errorf("Slug(%q) returned %q then %q", tt.identifier, a, b)
		}
	}
}

func TestTitleMatchesSlug(t *testing.T) {
	for _, tt := range pascalIdentifiers {
		title := strings.ToLower(strings.ReplaceAll(Title(tt.identifier), " ", ""))
		slug := strings.ReplaceAll(Slug(tt.identifier), "-", "")
		if title != slug {
			t.Errorf("Title(%q) folds to %q but Slug folds to %q", tt.identifier, title, slug)
		}
	}
}

func TestSlugAcceptsAnyInput(t *testing.T) {
	for _, in := range []string{"", "-", "foo bar", "Ünïcode", "123"} {
		_ = Slug(in)
		_ = Title(in)
	}
	if got := Slug(""); got != "" {
		t.Errorf("Slug(\"\") = %q, want empty", got)
	}
}

func TestNamer(t *testing.T) {
	split := NewNamer("")
	if split.Mode != NamingSplitCapitals {
		t.Errorf("NewNamer(\"\").Mode = %q, want %q", split.Mode, NamingSplitCapitals)
	}
	if got := split.Slug("HTTPClient"); got != "h-t-t-p-client" {
		t.Errorf("split.Slug(HTTPClient) = %q", got)
	}

	acronym := NewNamer(NamingAcronym)
	if got := acronym.Slug("HTTPClient"); got != "http-client" {
		t.Errorf("acronym.Slug(HTTPClient) = %q, want %q", got, "http-client")
	}
	if got := acronym.Slug("SgTaxCalculator"); got != "sg-tax-calculator" {
		t.Errorf("acronym.Slug(SgTaxCalculator) = %q, want %q", got, "sg-tax-calculator")
	}
	if got := acronym.Title("HTTPClient"); got != "HTTP Client" {
		t.Errorf("acronym.Title(HTTPClient) = %q, want %q", got, "HTTP Client")
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"SgTaxCalculator", true},
		{"Tensor2Reshape", true},
		{"", false},
		{"2Fast", false},
		{"foo-bar", false},
		{"Foo_Bar", false},
	}

	for _, tt := range tests {
		if got := IsIdentifier(tt.in); got != tt.want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidNamingMode(t *testing.T) {
	if !ValidNamingMode(NamingSplitCapitals) || !ValidNamingMode(NamingAcronym) {
		t.Error("known naming modes reported invalid")
	}
	if ValidNamingMode("kebab") {
		t.Error("ValidNamingMode(kebab) = true, want false")
	}
}

package core

import (
	"regexp"
	"strings"

	"github.com/ettle/strcase"
	"github.com/goliatone/go-slug"
)

type NamingMode string

const (
	NamingSplitCapitals NamingMode = "split-capitals"
	NamingAcronym       NamingMode = "acronym"
)

var (
	capitalPattern    = regexp.MustCompile(`([A-Z])`)
	identifierPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)
)

// Slug turns a PascalCase widget identifier into its route slug.
// Every capital letter starts a new segment, so acronyms are split letter by
// letter: "HTTPClient" becomes "h-t-t-p-client".
func Slug(identifier string) string {
	hyphenated := capitalPattern.ReplaceAllString(identifier, "-$1")
	return strings.TrimPrefix(strings.ToLower(hyphenated), "-")
}

// Title turns a PascalCase widget identifier into a space separated title.
func Title(identifier string) string {
	return strings.TrimSpace(capitalPattern.ReplaceAllString(identifier, " $1"))
}

func IsIdentifier(identifier string) bool {
	return identifierPattern.MatchString(identifier)
}

func ValidSlug(value string) bool {
	return slug.IsValid(value)
}

type Namer struct {
	Mode NamingMode
}

func NewNamer(mode NamingMode) Namer {
	if mode == "" {
		mode = NamingSplitCapitals
	}
	return Namer{Mode: mode}
}

func (n Namer) Slug(identifier string) string {
	if n.Mode == NamingAcronym {
		return strcase.ToKebab(identifier)
	}
	return Slug(identifier)
}

func (n Namer) Title(identifier string) string {
	if n.Mode == NamingAcronym {
		return strcase.ToCase(identifier, strcase.Original, ' ')
	}
	return Title(identifier)
}

func ValidNamingMode(mode NamingMode) bool {
	switch mode {
	case NamingSplitCapitals, NamingAcronym:
		return true
	}
	return false
}

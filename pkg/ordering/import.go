package ordering

import (
	"strings"

	"github.com/siyuan-infoblox/import-group-ordering/pkg/source"
)

const parentDir = "../"

// Declaration is one import declaration as found by the host parser
type Declaration struct {
	Specifier     string      // module specifier, quotes included
	Span          source.Span // from the import keyword to the end of the statement
	LeadingTrivia string      // text between the previous token and the import keyword
}

// Import is a classified import declaration
type Import struct {
	Specifier           string // module specifier without quotes
	Group               ImportGroup
	Depth               int // number of "../" in Specifier, 0 unless NonLocalGroup
	PrecededByBlankLine bool
	Span                source.Span
}

// StripQuotes removes one leading and one trailing quote character
func StripQuotes(raw string) string {
	if raw != "" && (raw[0] == '"' || raw[0] == '\'') {
		raw = raw[1:]
	}
	if n := len(raw); n > 0 && (raw[n-1] == '"' || raw[n-1] == '\'') {
		raw = raw[:n-1]
	}
	return raw
}

// Classify returns the group and depth of a specifier with quotes already stripped.
// Every "../" in the specifier counts towards the depth, not only a leading run.
func Classify(specifier string) (ImportGroup, int) {
	if !strings.HasPrefix(specifier, ".") {
		return LibraryGroup, 0
	}
	depth := strings.Count(specifier, parentDir)
	if depth == 0 {
		return LocalGroup, 0
	}
	return NonLocalGroup, depth
}

// HasPrecedingBlankLine reports whether trivia starts with two line breaks
func HasPrecedingBlankLine(trivia string) bool {
	for i := 0; i < 2; i++ {
		trivia = strings.TrimPrefix(trivia, "\r")
		if !strings.HasPrefix(trivia, "\n") {
			return false
		}
		trivia = trivia[1:]
	}
	return true
}

// Parse classifies a declaration
func Parse(decl Declaration) Import {
	specifier := StripQuotes(decl.Specifier)
	group, depth := Classify(specifier)
	return Import{
		Specifier:           specifier,
		Group:               group,
		Depth:               depth,
		PrecededByBlankLine: HasPrecedingBlankLine(decl.LeadingTrivia),
		Span:                decl.Span,
	}
}

package ordering

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripQuotes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"single quotes", `'react'`, "react"},
		{"double quotes", `"./local"`, "./local"},
		{"unquoted", "lodash", "lodash"},
		{"mismatched quotes", `'fs"`, "fs"},
		{"only leading quote", `'fs`, "fs"},
		{"lone quote", `"`, ""},
		{"empty", "", ""},
		{"inner quotes kept", `"a'b"`, "a'b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.want, StripQuotes(tt.raw), "StripQuotes(%q)", tt.raw)
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		specifier string
		wantGroup ImportGroup
		wantDepth int
	}{
		{"library", "react", LibraryGroup, 0},
		{"scoped library", "@angular/core", LibraryGroup, 0},
		{"library containing parent marker", "pkg/../x", LibraryGroup, 0},
		{"empty string is library", "", LibraryGroup, 0},
		{"current directory", "./local", LocalGroup, 0},
		{"bare dot", ".", LocalGroup, 0},
		{"bare parent without slash", "..", LocalGroup, 0},
		{"nested local", "./a/b/c", LocalGroup, 0},
		{"one level up", "../utils", NonLocalGroup, 1},
		{"two levels up", "../../config", NonLocalGroup, 2},
		{"superfluous dot prefix", "./../foo", NonLocalGroup, 1},
		{"trailing parent", "./../", NonLocalGroup, 1},
		{"parent marker in the middle counts", "./a/../b", NonLocalGroup, 1},
		{"non overlapping count", "../..../", NonLocalGroup, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			group, depth := Classify(tt.specifier)
			req.Equal(tt.wantGroup, group, "Classify(%q) group", tt.specifier)
			req.Equal(tt.wantDepth, depth, "Classify(%q) depth", tt.specifier)

			// classification is a pure function of the specifier
			group2, depth2 := Classify(tt.specifier)
			req.Equal(group, group2)
			req.Equal(depth, depth2)
		})
	}
}

func TestHasPrecedingBlankLine(t *testing.T) {
	tests := []struct {
		name   string
		trivia string
		want   bool
	}{
		{"empty", "", false},
		{"single newline", "\n", false},
		{"two newlines", "\n\n", true},
		{"crlf blank line", "\r\n\r\n", true},
		{"mixed line endings", "\n\r\n", true},
		{"blank line then comment", "\n\n// comment\n", true},
		{"comment then blank line", "\n// comment\n\n", false},
		{"indented blank line", "\n  \n", false},
		{"leading space", " \n\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.want, HasPrecedingBlankLine(tt.trivia), "HasPrecedingBlankLine(%q)", tt.trivia)
		})
	}
}

func TestParse(t *testing.T) {
	req := require.New(t)
	imp := Parse(Declaration{Specifier: `'../../shared/index'`, LeadingTrivia: "\n\n"})

	req.Equal("../../shared/index", imp.Specifier)
	req.Equal(NonLocalGroup, imp.Group)
	req.Equal(2, imp.Depth)
	req.True(imp.PrecededByBlankLine)
}

func TestImportGroup_Order(t *testing.T) {
	req := require.New(t)
	req.True(LibraryGroup.Before(NonLocalGroup))
	req.True(NonLocalGroup.Before(LocalGroup))
	req.True(LibraryGroup.Before(LocalGroup))
	req.False(LocalGroup.Before(LocalGroup))
	req.Equal("library", LibraryGroup.String())
	req.Equal("non-local", NonLocalGroup.String())
	req.Equal("local", LocalGroup.String())
	req.Equal("unknown", ImportGroup(7).String())
}

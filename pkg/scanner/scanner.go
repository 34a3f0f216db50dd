// Package scanner finds import declarations in JavaScript and TypeScript source.
//
// It is not a parser. A small lexer skips comments, strings, template and
// regular expression literals, and the import declarations are recognised from
// the resulting token stream. Dynamic imports, import.meta and import-equals
// declarations are not import declarations and are left out.
package scanner

import (
	"github.com/siyuan-infoblox/import-group-ordering/pkg/ordering"
	"github.com/siyuan-infoblox/import-group-ordering/pkg/source"
)

// Scan returns the import declarations of src in source order
func Scan(src []byte) ([]ordering.Declaration, error) {
	toks := tokenize(src)

	var decls []ordering.Declaration
	for i := 0; i < len(toks); i++ {
		if !startsDeclaration(toks, i) {
			continue
		}
		spec, ok := findSpecifier(toks, i)
		if !ok {
			continue
		}
		end := declarationEnd(toks, spec)

		span, err := source.NewSpan(toks[i].start, toks[end].end)
		if err != nil {
			return nil, err
		}
		decls = append(decls, ordering.Declaration{
			Specifier:     toks[spec].text,
			Span:          span,
			LeadingTrivia: string(src[toks[i].fullStart:toks[i].start]),
		})
		i = end
	}
	return decls, nil
}

func at(toks []token, i int) token {
	if i < len(toks) {
		return toks[i]
	}
	return toks[len(toks)-1]
}

func startsDeclaration(toks []token, i int) bool {
	if !toks[i].is(tokIdent, "import") {
		return false
	}
	if i > 0 && (toks[i-1].is(tokPunct, ".") || toks[i-1].is(tokPunct, "?.")) {
		return false
	}
	next := at(toks, i+1)
	switch next.kind {
	case tokString:
		return true
	case tokIdent:
		return !isImportEquals(toks, i)
	case tokPunct:
		return next.text == "{" || next.text == "*"
	}
	return false
}

// isImportEquals matches `import x = ...` and `import type x = ...`
func isImportEquals(toks []token, i int) bool {
	j := i + 1
	if at(toks, j).is(tokIdent, "type") && at(toks, j+1).kind == tokIdent {
		j++
	}
	return at(toks, j+1).is(tokPunct, "=")
}

// findSpecifier returns the index of the module specifier of the declaration at i
func findSpecifier(toks []token, i int) (int, bool) {
	if at(toks, i+1).kind == tokString {
		return i + 1, true
	}
	for j := i + 1; j < len(toks)-1; j++ {
		tok := toks[j]
		if tok.is(tokPunct, ";") {
			return 0, false
		}
		if tok.is(tokIdent, "from") && toks[j+1].kind == tokString {
			return j + 1, true
		}
	}
	return 0, false
}

// declarationEnd extends the declaration over import attributes and the semicolon
func declarationEnd(toks []token, spec int) int {
	end := spec
	next := at(toks, end+1)
	if (next.is(tokIdent, "with") || next.is(tokIdent, "assert")) && at(toks, end+2).is(tokPunct, "{") {
		depth := 0
		for j := end + 2; j < len(toks)-1; j++ {
			if toks[j].is(tokPunct, "{") {
				depth++
			} else if toks[j].is(tokPunct, "}") {
				depth--
				if depth == 0 {
					end = j
					break
				}
			}
		}
	}
	if at(toks, end+1).is(tokPunct, ";") {
		end++
	}
	return end
}

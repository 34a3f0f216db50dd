package scanner

import "strings"

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokTemplate
	tokRegex
	tokNumber
	tokPunct
)

// token is a significant token. fullStart is where its leading trivia begins.
type token struct {
	kind      tokenKind
	text      string
	fullStart int
	start     int
	end       int
}

func (t token) is(kind tokenKind, text string) bool {
	return t.kind == kind && t.text == text
}

// keywords after which a slash starts a regular expression literal
var regexKeywords = map[string]bool{
	"return": true, "typeof": true, "instanceof": true, "in": true, "of": true,
	"new": true, "delete": true, "void": true, "throw": true, "case": true,
	"do": true, "else": true, "yield": true, "await": true,
}

type lexer struct {
	src       []byte
	pos       int
	prev      token
	depth     int   // open braces
	templates []int // brace depth of every open template substitution
}

func newLexer(src []byte) *lexer {
	return &lexer{src: src, prev: token{kind: tokEOF}}
}

// tokenize returns every significant token followed by a final EOF token
func tokenize(src []byte) []token {
	lx := newLexer(src)
	var toks []token
	for {
		tok := lx.next()
		toks = append(toks, tok)
		if tok.kind == tokEOF {
			return toks
		}
	}
}

func (lx *lexer) peek(off int) byte {
	if lx.pos+off < len(lx.src) {
		return lx.src[lx.pos+off]
	}
	return 0
}

func (lx *lexer) next() token {
	fullStart := lx.pos
	lx.skipTrivia()
	start := lx.pos
	kind := lx.scan()
	tok := token{
		kind:      kind,
		text:      string(lx.src[start:lx.pos]),
		fullStart: fullStart,
		start:     start,
		end:       lx.pos,
	}
	lx.prev = tok
	return tok
}

func (lx *lexer) skipTrivia() {
	if lx.pos == 0 && lx.peek(0) == '#' && lx.peek(1) == '!' {
		lx.skipLine()
	}
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f':
			lx.pos++
		case c == 0xEF && lx.peek(1) == 0xBB && lx.peek(2) == 0xBF:
			lx.pos += 3
		case c == '/' && lx.peek(1) == '/':
			lx.skipLine()
		case c == '/' && lx.peek(1) == '*':
			lx.skipBlockComment()
		default:
			return
		}
	}
}

func (lx *lexer) skipLine() {
	for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' {
		lx.pos++
	}
}

func (lx *lexer) skipBlockComment() {
	lx.pos += 2
	for lx.pos < len(lx.src) {
		if lx.src[lx.pos] == '*' && lx.peek(1) == '/' {
			lx.pos += 2
			return
		}
		lx.pos++
	}
}

func (lx *lexer) scan() tokenKind {
	if lx.pos >= len(lx.src) {
		return tokEOF
	}
	c := lx.src[lx.pos]
	switch {
	case isIdentStart(c) || (c == '#' && isIdentStart(lx.peek(1))):
		lx.pos++
		for lx.pos < len(lx.src) && isIdentPart(lx.src[lx.pos]) {
			lx.pos++
		}
		return tokIdent
	case isDigit(c) || (c == '.' && isDigit(lx.peek(1))):
		lx.pos++
		for lx.pos < len(lx.src) && (isIdentPart(lx.src[lx.pos]) || lx.src[lx.pos] == '.') {
			lx.pos++
		}
		return tokNumber
	case c == '"' || c == '\'':
		lx.scanString(c)
		return tokString
	case c == '`':
		lx.pos++
		lx.scanTemplate()
		return tokTemplate
	case c == '}' && len(lx.templates) > 0 && lx.templates[len(lx.templates)-1] == lx.depth:
		lx.templates = lx.templates[:len(lx.templates)-1]
		lx.pos++
		lx.scanTemplate()
		return tokTemplate
	case c == '/' && lx.regexAllowed():
		lx.scanRegex()
		return tokRegex
	}

	switch c {
	case '{':
		lx.depth++
	case '}':
		if lx.depth > 0 {
			lx.depth--
		}
	case '?':
		if lx.peek(1) == '.' && !isDigit(lx.peek(2)) {
			lx.pos += 2
			return tokPunct
		}
	}
	lx.pos++
	return tokPunct
}

// scanString consumes a quoted string. An unterminated string ends at the line break.
func (lx *lexer) scanString(quote byte) {
	lx.pos++
	for lx.pos < len(lx.src) {
		switch lx.src[lx.pos] {
		case '\\':
			lx.pos += 2
			continue
		case quote:
			lx.pos++
			return
		case '\n':
			return
		}
		lx.pos++
	}
	lx.pos = len(lx.src)
}

// scanTemplate consumes template text up to the closing backtick or the next substitution
func (lx *lexer) scanTemplate() {
	for lx.pos < len(lx.src) {
		switch lx.src[lx.pos] {
		case '\\':
			lx.pos += 2
			continue
		case '`':
			lx.pos++
			return
		case '$':
			if lx.peek(1) == '{' {
				lx.pos += 2
				lx.templates = append(lx.templates, lx.depth)
				return
			}
		}
		lx.pos++
	}
	lx.pos = len(lx.src)
}

func (lx *lexer) scanRegex() {
	lx.pos++
	inClass := false
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		switch {
		case c == '\\':
			lx.pos += 2
			continue
		case c == '\n':
			return
		case c == '[':
			inClass = true
		case c == ']':
			inClass = false
		case c == '/' && !inClass:
			lx.pos++
			for lx.pos < len(lx.src) && isIdentPart(lx.src[lx.pos]) {
				lx.pos++
			}
			return
		}
		lx.pos++
	}
	if lx.pos > len(lx.src) {
		lx.pos = len(lx.src)
	}
}

func (lx *lexer) regexAllowed() bool {
	switch lx.prev.kind {
	case tokEOF:
		return true
	case tokIdent:
		return regexKeywords[lx.prev.text]
	case tokPunct:
		return lx.prev.text != ")" && lx.prev.text != "]" && lx.prev.text != "}"
	case tokTemplate:
		return strings.HasSuffix(lx.prev.text, "${")
	}
	return false
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || c >= 0x80 || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

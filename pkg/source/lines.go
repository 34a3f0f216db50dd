package source

import (
	"sort"
)

// Position is a 1-based line and column. Column counts bytes, like tslint does.
type Position struct {
	Line   int
	Column int
}

// LineIndex maps byte offsets of one file to line/column positions
type LineIndex struct {
	src    []byte
	starts []int // offset of the first byte of every line
}

// NewLineIndex scans src once and records where every line begins
func NewLineIndex(src []byte) *LineIndex {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{src: src, starts: starts}
}

// LineCount returns the number of lines, counting a trailing empty line
func (li *LineIndex) LineCount() int {
	return len(li.starts)
}

// Position resolves an offset; offsets past the end clamp to the last byte
func (li *LineIndex) Position(offset uint32) Position {
	off := int(offset)
	if off > len(li.src) {
		off = len(li.src)
	}
	line := sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > off }) - 1
	return Position{Line: line + 1, Column: off - li.starts[line] + 1}
}

// Line returns the text of the 1-based line without its line terminator
func (li *LineIndex) Line(n int) string {
	if n < 1 || n > li.LineCount() {
		return ""
	}
	start := li.starts[n-1]
	end := len(li.src)
	if n < li.LineCount() {
		end = li.starts[n] - 1
	}
	if end > start && li.src[end-1] == '\r' {
		end--
	}
	return string(li.src[start:end])
}

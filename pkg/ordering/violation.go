package ordering

import (
	"github.com/siyuan-infoblox/import-group-ordering/pkg/source"
)

// RuleName is the name the rule is registered under in lint configs
const RuleName = "import-group-ordering"

// Kind identifies which check produced a violation
type Kind int

const (
	SuperfluousDotPrefix Kind = iota
	RedundantIndexSuffix
	LibraryNotFirst
	NonLocalAfterLocal
	MissingGroupSeparator
	NonLocalOrder
)

var kindMessages = map[Kind]string{
	SuperfluousDotPrefix:  "Import must not start with superfluous ./",
	RedundantIndexSuffix:  "Import must not end with index",
	LibraryNotFirst:       "Libraries must be imported first",
	NonLocalAfterLocal:    "Non-local import must come before Local one",
	MissingGroupSeparator: "Blocks of Libraries, Local and Non-local imports must be divided by empty line",
	NonLocalOrder:         "Non-local imports must be ordered from the most distant the closest",
}

var kindNames = map[Kind]string{
	SuperfluousDotPrefix:  "superfluous-dot-prefix",
	RedundantIndexSuffix:  "redundant-index-suffix",
	LibraryNotFirst:       "library-not-first",
	NonLocalAfterLocal:    "non-local-after-local",
	MissingGroupSeparator: "missing-group-separator",
	NonLocalOrder:         "non-local-order",
}

// Message returns the fixed failure text of the kind
func (k Kind) Message() string {
	return kindMessages[k]
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Violation is a single failure anchored to an import declaration
type Violation struct {
	Kind    Kind
	Span    source.Span
	Message string
}

func newViolation(kind Kind, imp Import) Violation {
	return Violation{Kind: kind, Span: imp.Span, Message: kind.Message()}
}

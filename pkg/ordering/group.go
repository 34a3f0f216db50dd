package ordering

// ImportGroup is the ordered class of an import. Groups must appear in ascending order.
type ImportGroup int

const (
	LibraryGroup  ImportGroup = iota // package imports, e.g. "react"
	NonLocalGroup                    // relative imports escaping the current directory
	LocalGroup                       // relative imports inside the current directory
)

func (g ImportGroup) String() string {
	switch g {
	case LibraryGroup:
		return "library"
	case NonLocalGroup:
		return "non-local"
	case LocalGroup:
		return "local"
	}
	return "unknown"
}

// Before reports whether g must come before other
func (g ImportGroup) Before(other ImportGroup) bool {
	return g < other
}

package ordering

import (
	"strings"
)

// ValidateSequence checks the import declarations of one file, given in source order.
// Each import is compared with the one before it; nothing else is remembered.
func ValidateSequence(decls []Declaration, opts Options) []Violation {
	var violations []Violation
	var last *Import

	for _, decl := range decls {
		current := Parse(decl)
		violations = append(violations, checkImport(last, current, opts)...)
		last = &current
	}

	return violations
}

// checkImport runs the self checks on current and, when there is a previous
// import, the pairwise checks. All checks are independent of each other.
func checkImport(last *Import, current Import, opts Options) []Violation {
	var violations []Violation
	report := func(kind Kind) {
		violations = append(violations, newViolation(kind, current))
	}

	if opts.CheckDot && strings.HasPrefix(current.Specifier, "./..") {
		report(SuperfluousDotPrefix)
	}
	if opts.CheckIndex && strings.HasSuffix(current.Specifier, "/index") {
		report(RedundantIndexSuffix)
	}

	if last == nil {
		return violations
	}

	if LibraryGroup.Before(last.Group) && current.Group == LibraryGroup {
		report(LibraryNotFirst)
	}
	if NonLocalGroup.Before(last.Group) && current.Group == NonLocalGroup {
		report(NonLocalAfterLocal)
	}
	if opts.CheckEmptyLine && last.Group != current.Group && !current.PrecededByBlankLine {
		report(MissingGroupSeparator)
	}
	if opts.CheckOrder && last.Group == NonLocalGroup && current.Group == NonLocalGroup && last.Depth < current.Depth {
		report(NonLocalOrder)
	}

	return violations
}

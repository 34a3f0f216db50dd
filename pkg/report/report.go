// Package report writes lint results in the formats tslint users expect.
package report

import (
	"fmt"
	"io"

	"github.com/siyuan-infoblox/import-group-ordering/pkg/errors"
	"github.com/siyuan-infoblox/import-group-ordering/pkg/ordering"
	"github.com/siyuan-infoblox/import-group-ordering/pkg/source"
)

// Format selects the output format
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatText, FormatJSON:
		return Format(name), nil
	}
	return "", fmt.Errorf(errors.ErrMsgUnknownFormat, name)
}

// FileResult holds the violations found in one file
type FileResult struct {
	Path       string
	Source     []byte
	Violations []ordering.Violation

	lines *source.LineIndex
}

// Position resolves an offset of the file to a line and column
func (r *FileResult) Position(offset uint32) source.Position {
	return r.lineIndex().Position(offset)
}

func (r *FileResult) lineIndex() *source.LineIndex {
	if r.lines == nil {
		r.lines = source.NewLineIndex(r.Source)
	}
	return r.lines
}

// Options controls how results are written
type Options struct {
	Format     Format
	Color      bool
	ShowSource bool
}

// Write writes every violation of results to w
func Write(w io.Writer, results []FileResult, opts Options) error {
	var err error
	switch opts.Format {
	case FormatJSON:
		err = writeJSON(w, results)
	case FormatText, "":
		err = newTextWriter(w, opts).write(results)
	default:
		err = fmt.Errorf(errors.ErrMsgUnknownFormat, opts.Format)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToReport, err)
	}
	return nil
}

// Count returns the total number of violations in results
func Count(results []FileResult) int {
	n := 0
	for _, r := range results {
		n += len(r.Violations)
	}
	return n
}

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/siyuan-infoblox/import-group-ordering/pkg/ordering"
)

const severityLabel = "ERROR"

type textWriter struct {
	w          io.Writer
	showSource bool
	severity   *color.Color
	location   *color.Color
	marker     *color.Color
}

func newTextWriter(w io.Writer, opts Options) *textWriter {
	tw := &textWriter{
		w:          w,
		showSource: opts.ShowSource,
		severity:   color.New(color.FgRed, color.Bold),
		location:   color.New(color.Bold),
		marker:     color.New(color.FgRed),
	}
	for _, c := range []*color.Color{tw.severity, tw.location, tw.marker} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return tw
}

// write prints one line per violation in tslint's prose style:
// ERROR: path[line, col]: message
func (tw *textWriter) write(results []FileResult) error {
	for i := range results {
		res := &results[i]
		for _, v := range res.Violations {
			pos := res.Position(v.Span.Start)
			loc := fmt.Sprintf("%s[%d, %d]", res.Path, pos.Line, pos.Column)
			if _, err := fmt.Fprintf(tw.w, "%s: %s: %s\n", tw.severity.Sprint(severityLabel), tw.location.Sprint(loc), v.Message); err != nil {
				return err
			}
			if tw.showSource {
				if err := tw.writeSource(res, v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// writeSource prints the first line of the declaration underlined with ^~~~
func (tw *textWriter) writeSource(res *FileResult, v ordering.Violation) error {
	pos := res.Position(v.Span.Start)
	text := res.lineIndex().Line(pos.Line)

	prefix := text
	if pos.Column-1 < len(text) {
		prefix = text[:pos.Column-1]
	}
	rest := strings.TrimPrefix(text, prefix)
	if n := int(v.Span.Len()); n < len(rest) {
		rest = rest[:n]
	}

	width := runewidth.StringWidth(rest)
	if width == 0 {
		width = 1
	}
	underline := "^" + strings.Repeat("~", width-1)
	indent := strings.Repeat(" ", runewidth.StringWidth(expandTabs(prefix)))

	_, err := fmt.Fprintf(tw.w, "    %s\n    %s%s\n", expandTabs(text), indent, tw.marker.Sprint(underline))
	return err
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

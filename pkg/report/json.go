package report

import (
	"encoding/json"
	"io"

	"github.com/siyuan-infoblox/import-group-ordering/pkg/ordering"
)

// jsonPosition is zero-based like tslint's JSON formatter
type jsonPosition struct {
	Character int    `json:"character"`
	Line      int    `json:"line"`
	Position  uint32 `json:"position"`
}

type jsonFailure struct {
	Name          string       `json:"name"`
	Failure       string       `json:"failure"`
	Kind          string       `json:"kind"`
	RuleName      string       `json:"ruleName"`
	RuleSeverity  string       `json:"ruleSeverity"`
	StartPosition jsonPosition `json:"startPosition"`
	EndPosition   jsonPosition `json:"endPosition"`
}

func writeJSON(w io.Writer, results []FileResult) error {
	failures := []jsonFailure{}
	for i := range results {
		res := &results[i]
		for _, v := range res.Violations {
			failures = append(failures, jsonFailure{
				Name:          res.Path,
				Failure:       v.Message,
				Kind:          v.Kind.String(),
				RuleName:      ordering.RuleName,
				RuleSeverity:  severityLabel,
				StartPosition: res.jsonPosition(v.Span.Start),
				EndPosition:   res.jsonPosition(v.Span.End),
			})
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(failures)
}

func (r *FileResult) jsonPosition(offset uint32) jsonPosition {
	pos := r.Position(offset)
	return jsonPosition{Character: pos.Column - 1, Line: pos.Line - 1, Position: offset}
}

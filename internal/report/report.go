package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aaronromeo/wodtimer/internal/rounds"
	"github.com/aaronromeo/wodtimer/internal/workout"
	"gopkg.in/yaml.v3"
)

// Result is the full response body for a calculation.
type Result struct {
	Rounds  []rounds.RoundResult `json:"rounds" yaml:"rounds"`
	Summary workout.Summary      `json:"summary" yaml:"summary"`
}

// New pairs results with their summary.
func New(results []rounds.RoundResult) Result {
	if results == nil {
		results = []rounds.RoundResult{}
	}
	return Result{Rounds: results, Summary: workout.Summarize(results)}
}

// WriteTable writes an aligned text table followed by a summary line.
func WriteTable(w io.Writer, r Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", Columns[0], Columns[1], Columns[2], Columns[3])
	for _, row := range r.Rounds {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row.Label, row.Start, row.End, row.Duration)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	s := r.Summary
	_, err := fmt.Fprintf(w, "\n%d rounds  work %s  rest %s  elapsed %s  avg %s\n",
		s.Rounds, s.Work, s.Rest, s.Elapsed, s.Average)
	return err
}

// YAML marshals r.
func YAML(r Result) ([]byte, error) { return yaml.Marshal(r) }

// Render encodes r in format f.
func Render(w io.Writer, f Format, r Result) error {
	switch f {
	case FormatText:
		return WriteTable(w, r)
	case FormatYAML:
		b, err := YAML(r)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case FormatXLSX:
		b, err := XLSX(r)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case FormatPNG:
		b, err := Chart(r.Rounds)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	return fmt.Errorf("unknown format %q", f)
}

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	roundsSheet  = "Rounds"
	summarySheet = "Summary"
)

// XLSX builds a workbook with a "Rounds" sheet holding the result table and a
// "Summary" sheet with the totals.
func XLSX(r Result) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	if err := f.SetSheetName("Sheet1", roundsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(roundsSheet, "A1", &header); err != nil {
		return nil, err
	}
	for i, row := range r.Rounds {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(roundsSheet, cell, &[]any{row.Label, row.Start, row.End, row.Duration}); err != nil {
			return nil, fmt.Errorf("write %s: %w", row.Label, err)
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}
	s := r.Summary
	lines := [][]any{
		{"Rounds", s.Rounds},
		{"Work", s.Work},
		{"Rest", s.Rest},
		{"Elapsed", s.Elapsed},
		{"Fastest", s.Fastest},
		{"Slowest", s.Slowest},
		{"Average", s.Average},
	}
	for i, ln := range lines {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(summarySheet, cell, &ln); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

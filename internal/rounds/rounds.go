package rounds

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned when a mode string or value is not one of the
// supported input modes.
var ErrUnknownMode = errors.New("unknown input mode")

// Mode selects how round boundaries are entered.
type Mode int

const (
	// ModeStartEnd reads an explicit start and end time for every round.
	ModeStartEnd Mode = iota + 1
	// ModeEndRest reads end times only; starts are derived from the previous
	// round's end plus a rest interval.
	ModeEndRest
)

// Labels as shown on the input form.
const (
	LabelStartEnd = "Start & End Times"
	LabelEndRest  = "End Times & Rest Time"
)

func (m Mode) String() string {
	switch m {
	case ModeStartEnd:
		return LabelStartEnd
	case ModeEndRest:
		return LabelEndRest
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Slug is the short machine name used in plan files and query strings.
func (m Mode) Slug() string {
	switch m {
	case ModeStartEnd:
		return "start_end"
	case ModeEndRest:
		return "end_rest"
	}
	return ""
}

// ParseMode accepts the letter ("A"/"B"), the slug or the form label.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "start_end", strings.ToLower(LabelStartEnd):
		return ModeStartEnd, nil
	case "b", "end_rest", strings.ToLower(LabelEndRest):
		return ModeEndRest, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// TimeInput is a minutes/seconds pair as entered. Nil fields count as zero.
type TimeInput struct {
	Minutes *int `json:"minutes,omitempty" yaml:"minutes,omitempty"`
	Seconds *int `json:"seconds,omitempty" yaml:"seconds,omitempty"`
}

// MS builds a TimeInput from plain values.
func MS(minutes, seconds int) TimeInput {
	return TimeInput{Minutes: &minutes, Seconds: &seconds}
}

// Total returns the value in seconds.
func (t TimeInput) Total() int { return ParseTime(t.Minutes, t.Seconds) }

// RoundInput is one round card. Which fields are read depends on the Mode.
type RoundInput struct {
	Start TimeInput `json:"start" yaml:"start"`
	End   TimeInput `json:"end" yaml:"end"`
	Rest  TimeInput `json:"rest" yaml:"rest"`
}

// RoundResult is one row of the output table.
type RoundResult struct {
	Label    string `json:"round" yaml:"round"`
	Start    string `json:"start" yaml:"start"`
	End      string `json:"end" yaml:"end"`
	Duration string `json:"duration" yaml:"duration"`

	StartSeconds    int `json:"start_seconds" yaml:"start_seconds"`
	EndSeconds      int `json:"end_seconds" yaml:"end_seconds"`
	DurationSeconds int `json:"duration_seconds" yaml:"duration_seconds"`
}

// ParseTime converts minutes and seconds into total seconds. Nil values are
// treated as 0. Seconds are not range checked; callers clamp input first.
func ParseTime(minutes, seconds *int) int {
	var m, s int
	if minutes != nil {
		m = *minutes
	}
	if seconds != nil {
		s = *seconds
	}
	return m*60 + s
}

// FormatTime renders seconds as M:SS. Minutes are floored toward negative
// infinity so the seconds part is always in [0,59]: -30 renders as "-1:30".
func FormatTime(totalSeconds int) string {
	m := totalSeconds / 60
	s := totalSeconds % 60
	if s < 0 {
		s += 60
		m--
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// ComputeRounds builds the result table for rounds in order. With
// ModeEndRest each round starts at the previous round's end plus rest; the
// first round always starts at 0:00. When sameRest is set, globalRest (nil
// meaning zero) replaces each round's own rest value.
func ComputeRounds(mode Mode, rounds []RoundInput, sameRest bool, globalRest *int) ([]RoundResult, error) {
	if mode != ModeStartEnd && mode != ModeEndRest {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}

	out := make([]RoundResult, 0, len(rounds))
	previousEnd := 0
	for i, r := range rounds {
		var start, end int
		switch mode {
		case ModeStartEnd:
			start = r.Start.Total()
			end = r.End.Total()
		case ModeEndRest:
			end = r.End.Total()
			if i > 0 {
				rest := r.Rest.Total()
				if sameRest {
					rest = 0
					if globalRest != nil {
						rest = *globalRest
					}
				}
				start = previousEnd + rest
			}
			previousEnd = end
		}
		out = append(out, newResult(i, start, end))
	}
	return out, nil
}

func newResult(i, start, end int) RoundResult {
	d := end - start
	return RoundResult{
		Label:           fmt.Sprintf("Round %d", i+1),
		Start:           FormatTime(start),
		End:             FormatTime(end),
		Duration:        FormatTime(d),
		StartSeconds:    start,
		EndSeconds:      end,
		DurationSeconds: d,
	}
}

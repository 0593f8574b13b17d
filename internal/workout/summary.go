package workout

import "github.com/aaronromeo/wodtimer/internal/rounds"

// Summary aggregates a computed round table.
type Summary struct {
	Rounds         int `json:"rounds" yaml:"rounds"`
	WorkSeconds    int `json:"work_seconds" yaml:"work_seconds"`
	RestSeconds    int `json:"rest_seconds" yaml:"rest_seconds"`
	ElapsedSeconds int `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	FastestSeconds int `json:"fastest_seconds" yaml:"fastest_seconds"`
	SlowestSeconds int `json:"slowest_seconds" yaml:"slowest_seconds"`
	AverageSeconds int `json:"average_seconds" yaml:"average_seconds"`

	Work    string `json:"work" yaml:"work"`
	Rest    string `json:"rest" yaml:"rest"`
	Elapsed string `json:"elapsed" yaml:"elapsed"`
	Fastest string `json:"fastest" yaml:"fastest"`
	Slowest string `json:"slowest" yaml:"slowest"`
	Average string `json:"average" yaml:"average"`
}

// Summarize totals work and rest across results. Rest is the gap between one
// round's end and the next round's start. Negative values are kept as-is.
func Summarize(results []rounds.RoundResult) Summary {
	var s Summary
	if len(results) == 0 {
		return s.format()
	}
	s.Rounds = len(results)
	s.FastestSeconds = results[0].DurationSeconds
	s.SlowestSeconds = results[0].DurationSeconds
	for i, r := range results {
		s.WorkSeconds += r.DurationSeconds
		if i > 0 {
			s.RestSeconds += r.StartSeconds - results[i-1].EndSeconds
		}
		s.FastestSeconds = min(s.FastestSeconds, r.DurationSeconds)
		s.SlowestSeconds = max(s.SlowestSeconds, r.DurationSeconds)
	}
	s.ElapsedSeconds = results[len(results)-1].EndSeconds - results[0].StartSeconds
	s.AverageSeconds = floorDiv(s.WorkSeconds, s.Rounds)
	return s.format()
}

func (s Summary) format() Summary {
	s.Work = rounds.FormatTime(s.WorkSeconds)
	s.Rest = rounds.FormatTime(s.RestSeconds)
	s.Elapsed = rounds.FormatTime(s.ElapsedSeconds)
	s.Fastest = rounds.FormatTime(s.FastestSeconds)
	s.Slowest = rounds.FormatTime(s.SlowestSeconds)
	s.Average = rounds.FormatTime(s.AverageSeconds)
	return s
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Package session keeps the editable round list behind the API: the cards a
// user adds, edits and removes before pressing Calculate.
package session

import (
	"slices"
	"time"

	"github.com/aaronromeo/wodtimer/internal/plan"
	"github.com/aaronromeo/wodtimer/internal/rounds"
)

// Session is one user's form state.
type Session struct {
	ID        string              `json:"id"`
	Mode      string              `json:"mode"`
	SameRest  bool                `json:"same_rest"`
	Rest      *rounds.TimeInput   `json:"rest,omitempty"`
	Rounds    []rounds.RoundInput `json:"rounds"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// New returns a session holding a single empty round.
func New(id string, now time.Time) *Session {
	s := &Session{
		ID:        id,
		Mode:      rounds.ModeStartEnd.Slug(),
		SameRest:  true,
		Rounds:    []rounds.RoundInput{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.AddRound()
	return s
}

// AddRound appends an empty round.
func (s *Session) AddRound() {
	s.Rounds = append(s.Rounds, rounds.RoundInput{
		Start: rounds.MS(0, 0),
		End:   rounds.MS(0, 0),
		Rest:  rounds.MS(0, 0),
	})
}

// RemoveLastRound drops the last round. It does nothing when there are none.
func (s *Session) RemoveLastRound() {
	if len(s.Rounds) > 0 {
		s.Rounds = s.Rounds[:len(s.Rounds)-1]
	}
}

// Apply replaces mode, rest settings and rounds with those from p.
func (s *Session) Apply(p *plan.Plan) {
	s.Mode = p.Mode
	s.SameRest = p.SharedRest()
	s.Rest = nil
	if p.Rest != nil {
		r := *p.Rest
		s.Rest = &r
	}
	s.Rounds = slices.Clone(p.Rounds)
	if s.Rounds == nil {
		s.Rounds = []rounds.RoundInput{}
	}
}

// Plan snapshots the session for calculation.
func (s *Session) Plan() *plan.Plan {
	same := s.SameRest
	p := &plan.Plan{
		Mode:     s.Mode,
		SameRest: &same,
		Rounds:   slices.Clone(s.Rounds),
	}
	if s.Rest != nil {
		r := *s.Rest
		p.Rest = &r
	}
	return p
}

func (s *Session) clone() *Session {
	cp := *s
	cp.Rounds = slices.Clone(s.Rounds)
	if s.Rest != nil {
		r := *s.Rest
		cp.Rest = &r
	}
	return &cp
}

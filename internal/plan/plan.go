// Package plan holds the input document for one round calculation and the
// code to read, validate and evaluate it.
package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/aaronromeo/wodtimer/internal/rounds"
	"gopkg.in/yaml.v3"
)

// ErrTooManyRounds is returned by CheckLimit.
var ErrTooManyRounds = errors.New("too many rounds")

// Plan is everything a Calculate action needs. SameRest defaults to true
// when omitted.
type Plan struct {
	Mode     string              `json:"mode" yaml:"mode"`
	SameRest *bool               `json:"same_rest,omitempty" yaml:"same_rest,omitempty"`
	Rest     *rounds.TimeInput   `json:"rest,omitempty" yaml:"rest,omitempty"`
	Rounds   []rounds.RoundInput `json:"rounds" yaml:"rounds"`
}

// SharedRest reports whether one rest value applies to every round.
func (p *Plan) SharedRest() bool {
	return p.SameRest == nil || *p.SameRest
}

// CheckLimit fails when the plan holds more than limit rounds. A limit of 0
// or less disables the check.
func (p *Plan) CheckLimit(limit int) error {
	if limit > 0 && len(p.Rounds) > limit {
		return fmt.Errorf("%w: %d > %d", ErrTooManyRounds, len(p.Rounds), limit)
	}
	return nil
}

// Compute evaluates the plan.
func (p *Plan) Compute() ([]rounds.RoundResult, error) {
	mode, err := rounds.ParseMode(p.Mode)
	if err != nil {
		return nil, err
	}
	var global *int
	if p.Rest != nil {
		v := p.Rest.Total()
		global = &v
	}
	return rounds.ComputeRounds(mode, p.Rounds, p.SharedRest(), global)
}

// ParseJSON validates and decodes a JSON plan.
func ParseJSON(b []byte) (*Plan, error) {
	if err := ValidateJSON(b); err != nil {
		return nil, err
	}
	var p Plan
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	return &p, nil
}

// ParseYAML validates and decodes a YAML plan.
func ParseYAML(b []byte) (*Plan, error) {
	if err := ValidateYAML(b); err != nil {
		return nil, err
	}
	var p Plan
	if err := yaml.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	return &p, nil
}

// Parse picks the decoder from the file extension of name, which may be a
// path or URL. Anything that is not .yaml/.yml is read as JSON.
func Parse(name string, b []byte) (*Plan, error) {
	if isYAML(name) {
		return ParseYAML(b)
	}
	return ParseJSON(b)
}

func isYAML(name string) bool {
	p := name
	if u, err := url.Parse(name); err == nil && u.Scheme != "" {
		p = u.Path
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

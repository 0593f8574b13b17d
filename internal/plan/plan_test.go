package plan

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aaronromeo/wodtimer/internal/rounds"
	"github.com/google/go-cmp/cmp"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return b
}

func TestValidateJSON_Table(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		ok   bool
	}{
		{"minimal", `{"mode":"A","rounds":[]}`, true},
		{"nulls allowed", `{"mode":"start_end","rounds":[{"start":{"minutes":null,"seconds":null},"end":{"minutes":1}}]}`, true},
		{"null rest", `{"mode":"B","rest":null,"rounds":[{"end":{"seconds":5}}]}`, true},
		{"form label", `{"mode":"End Times & Rest Time","same_rest":false,"rounds":[]}`, true},
		{"seconds too big", `{"mode":"A","rounds":[{"end":{"minutes":1,"seconds":60}}]}`, false},
		{"negative minutes", `{"mode":"A","rounds":[{"end":{"minutes":-1}}]}`, false},
		{"fractional", `{"mode":"A","rounds":[{"end":{"seconds":1.5}}]}`, false},
		{"unknown mode", `{"mode":"C","rounds":[]}`, false},
		{"missing rounds", `{"mode":"A"}`, false},
		{"extra key", `{"mode":"A","rounds":[],"speed":2}`, false},
	}
	for _, tc := range cases {
		err := ValidateJSON([]byte(tc.doc))
		if tc.ok && err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestValidateYAML_Rejects(t *testing.T) {
	if err := ValidateYAML([]byte("mode: A\nrounds:\n  - end: {seconds: 75}\n")); err == nil {
		t.Fatal("expected seconds > 59 to be rejected")
	}
	if err := ValidateYAML([]byte("mode: [")); err == nil {
		t.Fatal("expected yaml parse error")
	}
}

func TestParse_YAMLAndJSONAgree(t *testing.T) {
	py, err := Parse("testdata/shared-rest.yaml", readFixture(t, "shared-rest.yaml"))
	if err != nil {
		t.Fatalf("Parse yaml: %v", err)
	}
	pj, err := Parse("testdata/shared-rest.json", readFixture(t, "shared-rest.json"))
	if err != nil {
		t.Fatalf("Parse json: %v", err)
	}

	ry, err := py.Compute()
	if err != nil {
		t.Fatalf("Compute yaml: %v", err)
	}
	rj, err := pj.Compute()
	if err != nil {
		t.Fatalf("Compute json: %v", err)
	}
	if diff := cmp.Diff(ry, rj); diff != "" {
		t.Fatalf("yaml and json plans disagree (-yaml +json):\n%s", diff)
	}
	if ry[1].Start != "2:30" || ry[1].Duration != "1:30" {
		t.Fatalf("round 2 = %+v", ry[1])
	}
}

func TestPlan_SharedRestDefault(t *testing.T) {
	p := &Plan{Mode: "B"}
	if !p.SharedRest() {
		t.Fatal("expected shared rest by default")
	}
	off := false
	p.SameRest = &off
	if p.SharedRest() {
		t.Fatal("expected shared rest off")
	}
}

func TestPlan_PerRoundRest(t *testing.T) {
	off := false
	p := &Plan{
		Mode:     "end_rest",
		SameRest: &off,
		Rest:     ptr(rounds.MS(9, 0)),
		Rounds: []rounds.RoundInput{
			{End: rounds.MS(1, 0)},
			{End: rounds.MS(3, 0), Rest: rounds.MS(1, 0)},
		},
	}
	got, err := p.Compute()
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got[1].Start != "2:00" || got[1].Duration != "1:00" {
		t.Fatalf("round 2 = %+v", got[1])
	}
}

func TestPlan_ComputeUnknownMode(t *testing.T) {
	p := &Plan{Mode: "sprint"}
	if _, err := p.Compute(); !errors.Is(err, rounds.ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestPlan_CheckLimit(t *testing.T) {
	p := &Plan{Mode: "A", Rounds: make([]rounds.RoundInput, 3)}
	if err := p.CheckLimit(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.CheckLimit(0); err != nil {
		t.Fatalf("limit 0 should disable check: %v", err)
	}
	if err := p.CheckLimit(2); !errors.Is(err, ErrTooManyRounds) {
		t.Fatalf("expected ErrTooManyRounds, got %v", err)
	}
}

func TestFetcher_LocalAndFileURL(t *testing.T) {
	abs, err := filepath.Abs(filepath.Join("testdata", "shared-rest.yaml"))
	if err != nil {
		t.Fatalf("abs: %v", err)
	}
	f := NewFetcher()
	for _, src := range []string{abs, "file://" + abs} {
		p, err := f.Load(context.Background(), src)
		if err != nil {
			t.Fatalf("Load(%q): %v", src, err)
		}
		if len(p.Rounds) != 2 {
			t.Fatalf("Load(%q): expected 2 rounds, got %d", src, len(p.Rounds))
		}
	}
}

func TestFetcher_HTTP(t *testing.T) {
	body := readFixture(t, "shared-rest.json")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/plan.json":
			_, _ = w.Write(body)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewFetcher(WithRetries(0))
	p, err := f.Load(context.Background(), srv.URL+"/plan.json?v=1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Mode != "B" {
		t.Fatalf("mode = %q; want B", p.Mode)
	}

	if _, err := f.Fetch(context.Background(), srv.URL+"/missing.json"); err == nil {
		t.Fatal("expected error on 404")
	}
}

func TestFetcher_MaxBytes(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "big.json")
	if err := os.WriteFile(p, []byte(strings.Repeat(" ", 200)), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	f := NewFetcher(WithMaxBytes(100))
	if _, err := f.Fetch(context.Background(), p); err == nil || !strings.Contains(err.Error(), "larger than 100 bytes") {
		t.Fatalf("expected size error, got %v", err)
	}
}

func TestFetcher_Empty(t *testing.T) {
	if _, err := NewFetcher().Fetch(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty source")
	}
}

func ptr[T any](v T) *T { return &v }

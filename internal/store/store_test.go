package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/erichartline/fantrax-scripts/internal/matcher"
	"github.com/erichartline/fantrax-scripts/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "fantrax.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_SaveAndGetRun(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	report := &model.RunReport{
		IBWFile:     "ibw.txt",
		FantraxFile: "roster.csv",
		Stats: matcher.Stats{
			ExactMatches: 2, NameOnlyMatches: 1, TotalMatches: 3, TotalIBWPlayers: 5,
		},
		Duration: 42 * time.Millisecond,
	}
	rows := []matcher.OutputRow{
		{IBWRank: "1", IBWPlayer: "Ronald Acuna Jr.", MatchType: "exact"},
		{IBWRank: "2", IBWPlayer: "Mike Trout", MatchType: "name-only"},
	}

	id, err := s.SaveRun(report, rows)
	if err != nil {
		t.Fatalf("save run: %v", err)
	}
	if id == "" {
		t.Fatalf("expected generated run id")
	}

	summary, got, err := s.GetRun(id)
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if summary.Stats.TotalMatches != 3 || summary.IBWFile != "ibw.txt" {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if len(got) != 2 || got[0].IBWPlayer != "Ronald Acuna Jr." || got[1].MatchType != "name-only" {
		t.Fatalf("unexpected rows: %+v", got)
	}
}

func TestStore_ListRuns(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		_, err := s.SaveRun(&model.RunReport{IBWFile: "ibw.txt"}, nil)
		if err != nil {
			t.Fatalf("save run %d: %v", i, err)
		}
	}

	runs, err := s.ListRuns(2)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("want 2 runs, got %d", len(runs))
	}

	n, err := s.CountRuns()
	if err != nil {
		t.Fatalf("count runs: %v", err)
	}
	if n != 3 {
		t.Fatalf("want 3 runs total, got %d", n)
	}
}

func TestStore_GetRunNotFound(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	_, _, err := s.GetRun("missing")
	if !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("want ErrRunNotFound, got %v", err)
	}
}

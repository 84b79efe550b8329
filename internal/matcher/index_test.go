package matcher

import "testing"

func TestBuildIndex_SkipsEmptyNames(t *testing.T) {
	t.Parallel()

	records := []Record{
		MapRecord{"Player": "   ", "Team": "ATL"},
		MapRecord{"Team": "NYY"},
		MapRecord{"Player": "Juan Soto", "Team": "NYY"},
	}

	idx := BuildIndex(records, DefaultFantraxRoles())
	if len(idx.Exact) != 1 || len(idx.NameOnly) != 1 {
		t.Fatalf("want 1 entry per map, got exact=%d nameOnly=%d", len(idx.Exact), len(idx.NameOnly))
	}
	if _, ok := idx.NameOnly["juan soto"]; !ok {
		t.Fatalf("missing name-only key for juan soto")
	}
}

func TestBuildIndex_NameOnlyFirstWriteWins(t *testing.T) {
	t.Parallel()

	first := MapRecord{"Player": "Will Smith", "Team": "LAD", "Number": "16"}
	second := MapRecord{"Player": "Will Smith", "Team": "ATL", "Number": "51"}

	idx := BuildIndex([]Record{first, second}, DefaultFantraxRoles())

	hit, ok := idx.NameOnly["will smith"]
	if !ok {
		t.Fatalf("missing name-only entry")
	}
	if got := Value(hit, FieldSpec{"Number"}); got != "16" {
		t.Fatalf("name-only must keep first record, got number %q", got)
	}
	// 球队不同，精确键各自独立
	if len(idx.Exact) != 2 {
		t.Fatalf("want 2 exact keys, got %d", len(idx.Exact))
	}
}

func TestBuildIndex_ExactLastWriteWins(t *testing.T) {
	t.Parallel()

	first := MapRecord{"Player": "Will Smith", "Team": "LAD", "Number": "16"}
	second := MapRecord{"Player": "Will Smith", "Team": "LAD", "Number": "99"}

	idx := BuildIndex([]Record{first, second}, DefaultFantraxRoles())

	hit, ok := idx.Exact["will smith_lad"]
	if !ok {
		t.Fatalf("missing exact entry")
	}
	if got := Value(hit, FieldSpec{"Number"}); got != "99" {
		t.Fatalf("exact must keep last record, got number %q", got)
	}
}

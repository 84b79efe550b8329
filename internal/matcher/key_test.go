package matcher

import "testing"

func TestNameKey_TrimAndLower(t *testing.T) {
	t.Parallel()

	if got := NameKey("  Juan Soto "); got != "juan soto" {
		t.Fatalf("NameKey: want %q got %q", "juan soto", got)
	}
	if got := NameKey("JUAN SOTO"); got != "juan soto" {
		t.Fatalf("NameKey upper: want %q got %q", "juan soto", got)
	}
}

func TestNameKey_Idempotent(t *testing.T) {
	t.Parallel()

	once := NameKey(" Mike TROUT ")
	if NameKey(once) != once {
		t.Fatalf("NameKey not idempotent: %q -> %q", once, NameKey(once))
	}
}

func TestFullKey_CaseWhitespaceInsensitive(t *testing.T) {
	t.Parallel()

	a := FullKey(" Juan Soto ", " nyy ")
	b := FullKey("JUAN SOTO", "NYY")
	if a != "juan soto_nyy" || a != b {
		t.Fatalf("FullKey: a=%q b=%q", a, b)
	}
}

func TestFullKey_EmptyTeamKeepsSeparator(t *testing.T) {
	t.Parallel()

	// 球队字段存在但为空 与 完全没有球队字段 必须生成不同的键
	if got := FullKey("Juan Soto", ""); got != "juan soto_" {
		t.Fatalf("FullKey empty team: want %q got %q", "juan soto_", got)
	}
	if got := NameKey("Juan Soto"); got != "juan soto" {
		t.Fatalf("NameKey: want %q got %q", "juan soto", got)
	}
	if FullKey("Juan Soto", "") == NameKey("Juan Soto") {
		t.Fatalf("empty-team key must not collide with name-only key")
	}
}

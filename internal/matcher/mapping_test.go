package matcher

import "testing"

func TestResolveMapping_Defaults(t *testing.T) {
	t.Parallel()

	m := ResolveMapping(nil)
	if got := m.Fantrax.Player[0]; got != "Player" {
		t.Fatalf("fantrax player default: %q", got)
	}
	if got := m.IBW.Number[0]; got != "Rank" {
		t.Fatalf("ibw number default: %q", got)
	}
	if m.IBW.Position != nil || m.IBW.Age != nil {
		t.Fatalf("ibw position/age must default to unavailable")
	}
}

func TestResolveMapping_ShallowPerDataset(t *testing.T) {
	t.Parallel()

	m := ResolveMapping(&Overrides{
		Fantrax: map[string]FieldSpec{
			RolePlayer: {"Name", "Player Name"},
		},
	})

	if len(m.Fantrax.Player) != 2 || m.Fantrax.Player[0] != "Name" {
		t.Fatalf("override not applied: %v", m.Fantrax.Player)
	}
	// 同数据源的其它角色与另一侧数据源不受影响
	if m.Fantrax.Team[0] != "Team" {
		t.Fatalf("fantrax team default lost: %v", m.Fantrax.Team)
	}
	if m.IBW.Player[0] != "Player" {
		t.Fatalf("ibw side must be untouched: %v", m.IBW.Player)
	}
}

func TestResolveMapping_ExplicitNilDisablesRole(t *testing.T) {
	t.Parallel()

	m := ResolveMapping(&Overrides{
		Fantrax: map[string]FieldSpec{RoleTeam: nil},
	})
	if m.Fantrax.Team != nil {
		t.Fatalf("explicit nil must disable role, got %v", m.Fantrax.Team)
	}
}

func TestResolveMapping_DoesNotMutateDefaults(t *testing.T) {
	t.Parallel()

	_ = ResolveMapping(&Overrides{
		Fantrax: map[string]FieldSpec{RolePlayer: {"Name"}},
	})
	if got := DefaultFantraxRoles().Player[0]; got != "Player" {
		t.Fatalf("defaults mutated: %q", got)
	}
}

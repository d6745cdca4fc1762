package actions

import (
	"errors"
	"testing"
)

func TestCatalogShape(t *testing.T) {
	cat := Catalog()
	if len(cat) != 9 {
		t.Fatalf("expected 9 actions, got %d", len(cat))
	}

	seen := make(map[string]bool)
	var exclusive []string
	for _, a := range cat {
		if seen[a.Key] {
			t.Fatalf("duplicate key %q", a.Key)
		}
		seen[a.Key] = true
		if a.Label == "" {
			t.Fatalf("action %q has no label", a.Key)
		}
		if a.Exclusive {
			exclusive = append(exclusive, a.Key)
		}
	}
	if len(exclusive) != 2 || exclusive[0] != "RevertPolicies" || exclusive[1] != "RestoreApps" {
		t.Fatalf("unexpected exclusive actions: %v", exclusive)
	}
}

func TestCatalogIsImmutable(t *testing.T) {
	cat := Catalog()
	cat[0].Key = "Tampered"
	if Catalog()[0].Key != "RemoveBloatApps" {
		t.Fatal("Catalog() exposed internal storage")
	}
}

func TestActionNames(t *testing.T) {
	tests := []struct {
		key  string
		flag string
		cli  string
	}{
		{"RemoveCortana", "-RemoveCortana", "remove-cortana"},
		{"RemoveTeamsConsumer", "-RemoveTeamsConsumer", "remove-teams-consumer"},
		{"RemoveOneDrive", "-RemoveOneDrive", "remove-one-drive"},
	}
	for _, tc := range tests {
		a, ok := Lookup(tc.key)
		if !ok {
			t.Fatalf("Lookup(%q) failed", tc.key)
		}
		if a.Flag() != tc.flag {
			t.Errorf("Flag() = %q, want %q", a.Flag(), tc.flag)
		}
		if a.CLIName() != tc.cli {
			t.Errorf("CLIName() = %q, want %q", a.CLIName(), tc.cli)
		}
	}
}

func TestSelection(t *testing.T) {
	sel := NewSelection()
	if sel.Any() {
		t.Fatal("new selection should be empty")
	}
	if err := sel.Set("Bogus", true); err == nil {
		t.Fatal("expected error for unknown key")
	}
	if err := sel.Set("removecortana", true); err != nil {
		t.Fatalf("case-insensitive Set: %v", err)
	}
	if !sel.IsSet("RemoveCortana") {
		t.Fatal("RemoveCortana should be set")
	}

	on, err := sel.Toggle("RemoveCortana")
	if err != nil || on {
		t.Fatalf("Toggle() = %v, %v; want false, nil", on, err)
	}

	_ = sel.Set("RestoreApps", true)
	_ = sel.Set("RemoveBloatApps", true)
	got := sel.Selected()
	if len(got) != 2 || got[0].Key != "RemoveBloatApps" || got[1].Key != "RestoreApps" {
		t.Fatalf("Selected() not in catalog order: %v", got)
	}

	clone := sel.Clone()
	sel.Clear()
	if sel.Any() {
		t.Fatal("Clear left actions checked")
	}
	if len(clone.Selected()) != 2 {
		t.Fatal("Clone shares state with the original")
	}
}

func TestZeroSelection(t *testing.T) {
	var sel Selection
	if sel.Any() || len(sel.Selected()) != 0 || sel.IsSet("RemoveCortana") {
		t.Fatal("zero selection should read as empty")
	}
	if err := sel.Set("RemoveCortana", true); !errors.Is(err, ErrZeroSelection) {
		t.Fatalf("Set() on zero selection = %v, want ErrZeroSelection", err)
	}
	if _, err := sel.Toggle("RemoveCortana"); !errors.Is(err, ErrZeroSelection) {
		t.Fatalf("Toggle() on zero selection = %v, want ErrZeroSelection", err)
	}
}

func TestSelectionOfUnknownKey(t *testing.T) {
	sel, err := SelectionOf("RemoveCortana", "Bogus")
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if err := sel.Set("RemoveWidgets", true); err != nil {
		t.Fatalf("selection returned with an error should still be usable: %v", err)
	}
}

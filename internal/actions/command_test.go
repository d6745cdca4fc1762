package actions

import (
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"
)

var baseTokens = []string{"powershell", "-ExecutionPolicy", "Bypass", "-File", `scripts\win11-debloater.ps1`}

// randomSelection checks a random subset of the catalog in a random order.
func randomSelection(r *rand.Rand) (Selection, []string) {
	keys := Keys()
	r.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	n := r.Intn(len(keys) + 1)

	sel := NewSelection()
	for _, k := range keys[:n] {
		if err := sel.Set(k, true); err != nil {
			panic(err)
		}
	}
	return sel, keys[:n]
}

func TestProperty_FlagsFollowCatalogOrder(t *testing.T) {
	f := func(seed int64, preview bool) bool {
		r := rand.New(rand.NewSource(seed))
		sel, _ := randomSelection(r)

		cmd := BuildCommand(DefaultInvocation(), sel, preview)
		flags := cmd[len(baseTokens):]
		if preview {
			flags = flags[1:]
		}

		var want []string
		for _, a := range Catalog() {
			if sel.IsSet(a.Key) {
				want = append(want, a.Flag())
			}
		}
		if len(want) == 0 && len(flags) == 0 {
			return true
		}
		if !reflect.DeepEqual(flags, want) {
			t.Logf("flags=%v want=%v", flags, want)
			return false
		}
		return true
	}

	if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
		t.Errorf("Property test failed: %v", err)
	}
}

func TestProperty_PreviewTokenPosition(t *testing.T) {
	f := func(seed int64) bool {
		r := rand.New(rand.NewSource(seed))
		sel, _ := randomSelection(r)

		with := BuildCommand(DefaultInvocation(), sel, true)
		without := BuildCommand(DefaultInvocation(), sel, false)

		if len(with) != len(without)+1 {
			return false
		}
		if with[len(baseTokens)] != PreviewFlag {
			return false
		}
		count := 0
		for _, tok := range with {
			if tok == PreviewFlag {
				count++
			}
		}
		if count != 1 {
			return false
		}
		// Removing the preview token yields the non-preview command.
		stripped := append(append([]string{}, with[:len(baseTokens)]...), with[len(baseTokens)+1:]...)
		return reflect.DeepEqual(stripped, without)
	}

	if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
		t.Errorf("Property test failed: %v", err)
	}
}

func TestBuildCommand_Examples(t *testing.T) {
	tests := []struct {
		name    string
		keys    []string
		preview bool
		want    []string
	}{
		{
			name: "nothing selected",
			want: baseTokens,
		},
		{
			name:    "nothing selected with preview",
			preview: true,
			want:    append(append([]string{}, baseTokens...), "-WhatIf"),
		},
		{
			name:    "click order does not matter",
			keys:    []string{"DisableTelemetry", "RemoveCortana"},
			preview: true,
			want:    append(append([]string{}, baseTokens...), "-WhatIf", "-RemoveCortana", "-DisableTelemetry"),
		},
		{
			name: "exclusive action is not stripped",
			keys: []string{"RevertPolicies", "RemoveWidgets"},
			want: append(append([]string{}, baseTokens...), "-RemoveWidgets", "-RevertPolicies"),
		},
		{
			name: "every action",
			keys: Keys(),
			want: append(append([]string{}, baseTokens...),
				"-RemoveBloatApps", "-RemoveCortana", "-RemoveTeamsConsumer", "-RemoveWidgets",
				"-DisableTelemetry", "-DisableSuggestions", "-RemoveOneDrive",
				"-RevertPolicies", "-RestoreApps"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sel, err := SelectionOf(tc.keys...)
			if err != nil {
				t.Fatalf("SelectionOf: %v", err)
			}
			got := BuildCommand(DefaultInvocation(), sel, tc.preview)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("BuildCommand() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBuildCommand_CustomInvocation(t *testing.T) {
	sel, err := SelectionOf("RemoveOneDrive")
	if err != nil {
		t.Fatalf("SelectionOf: %v", err)
	}
	inv := Invocation{Shell: "pwsh", Script: `C:\tools\debloat.ps1`}

	got := BuildCommand(inv, sel, false)
	want := []string{"pwsh", "-ExecutionPolicy", "Bypass", "-File", `C:\tools\debloat.ps1`, "-RemoveOneDrive"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("BuildCommand() = %v, want %v", got, want)
	}
}

func TestBuildCommand_DoesNotMutateSelection(t *testing.T) {
	sel, _ := SelectionOf("RemoveCortana")
	_ = BuildCommand(DefaultInvocation(), sel, true)
	if !sel.IsSet("RemoveCortana") || len(sel.Selected()) != 1 {
		t.Fatalf("selection changed after BuildCommand: %v", sel.Selected())
	}
}

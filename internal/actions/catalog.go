package actions

import (
	"strings"
	"unicode"
)

// Action describes one maintenance operation implemented by the debloat script.
type Action struct {
	// Key is the script parameter name, e.g. "RemoveCortana".
	Key string

	// Label is the human-readable description shown next to the checkbox.
	Label string

	// Exclusive actions are documented to run alone; the script ignores
	// any other flag passed alongside them.
	Exclusive bool
}

// Flag returns the command-line token for the action ("-RemoveCortana").
func (a Action) Flag() string {
	return "-" + a.Key
}

// CLIName returns the kebab-case flag name used by the run command
// ("remove-cortana").
func (a Action) CLIName() string {
	var b strings.Builder
	for i, r := range a.Key {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ─── Catalog ─────────────────────────────────────────────────────────────────

// catalog is the fixed action list, in the order flags are emitted.
var catalog = []Action{
	{Key: "RemoveBloatApps", Label: "Remove common bundled apps"},
	{Key: "RemoveCortana", Label: "Remove Cortana"},
	{Key: "RemoveTeamsConsumer", Label: "Remove Teams (consumer)"},
	{Key: "RemoveWidgets", Label: "Disable Widgets"},
	{Key: "DisableTelemetry", Label: "Disable telemetry and diagnostics"},
	{Key: "DisableSuggestions", Label: "Disable suggestions and consumer experiences"},
	{Key: "RemoveOneDrive", Label: "Uninstall OneDrive"},
	{Key: "RevertPolicies", Label: "Revert policy changes (telemetry, suggestions, widgets)", Exclusive: true},
	{Key: "RestoreApps", Label: "Restore removed bundled apps (best effort)", Exclusive: true},
}

// Catalog returns a copy of the action catalog in emission order.
func Catalog() []Action {
	out := make([]Action, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds an action by key. Matching is case-insensitive so that
// "removecortana" on the command line resolves to RemoveCortana.
func Lookup(key string) (Action, bool) {
	for _, a := range catalog {
		if strings.EqualFold(a.Key, key) {
			return a, true
		}
	}
	return Action{}, false
}

// Keys returns every action key in catalog order.
func Keys() []string {
	keys := make([]string, len(catalog))
	for i, a := range catalog {
		keys[i] = a.Key
	}
	return keys
}

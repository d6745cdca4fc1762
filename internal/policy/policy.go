package policy

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned when the policy registry cannot be read on
// this platform.
var ErrUnsupported = errors.New("policy registry is only available on Windows")

// Policy is one HKLM policy value the debloat script sets and RevertPolicies
// removes.
type Policy struct {
	// Action is the catalog key that applies the policy.
	Action string

	// Path is the key below HKEY_LOCAL_MACHINE.
	Path string

	// Name is the DWORD value name.
	Name string

	// Applied is the value the script writes.
	Applied uint64
}

func (p Policy) String() string {
	return fmt.Sprintf(`HKLM\%s\%s`, p.Path, p.Name)
}

// State is the observed value of a policy.
type State struct {
	Policy
	Present bool
	Value   uint64
}

// IsApplied reports whether the policy currently holds the script's value.
func (s State) IsApplied() bool {
	return s.Present && s.Value == s.Applied
}

// ValueReader reads a DWORD below HKLM. ok is false when the key or value
// does not exist.
type ValueReader func(path, name string) (value uint64, ok bool, err error)

// ─── Known policies ──────────────────────────────────────────────────────────

// policies are the values the debloat script is known to write. The script
// is not inspected, so "applied" is a hint rather than proof it ran.
var policies = []Policy{
	{Action: "RemoveCortana", Path: `SOFTWARE\Policies\Microsoft\Windows\Windows Search`, Name: "AllowCortana", Applied: 0},
	{Action: "RemoveWidgets", Path: `SOFTWARE\Policies\Microsoft\Dsh`, Name: "AllowNewsAndInterests", Applied: 0},
	{Action: "DisableTelemetry", Path: `SOFTWARE\Policies\Microsoft\Windows\DataCollection`, Name: "AllowTelemetry", Applied: 0},
	{Action: "DisableSuggestions", Path: `SOFTWARE\Policies\Microsoft\Windows\CloudContent`, Name: "DisableWindowsConsumerFeatures", Applied: 1},
}

// Policies returns the known policy values.
func Policies() []Policy {
	out := make([]Policy, len(policies))
	copy(out, policies)
	return out
}

// Inspect reads every known policy with read. Missing values are reported
// as not present; the first read error aborts.
func Inspect(read ValueReader) ([]State, error) {
	states := make([]State, 0, len(policies))
	for _, p := range policies {
		v, ok, err := read(p.Path, p.Name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		states = append(states, State{Policy: p, Present: ok, Value: v})
	}
	return states, nil
}

// Current inspects the policies of the running machine.
func Current() ([]State, error) {
	return Inspect(readLocalMachine)
}

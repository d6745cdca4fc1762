package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/lakshaymaurya-felt/debloat/internal/actions"
	"github.com/lakshaymaurya-felt/debloat/internal/config"
	"github.com/lakshaymaurya-felt/debloat/internal/runner"
)

// resetFlags restores defaults; cobra keeps flag values between Execute calls.
func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvShell, "")
	t.Setenv(config.EnvScript, "")
	t.Setenv("DEBLOAT_LOG_NOCOLOR", "true")

	resetFlags(rootCmd.PersistentFlags())
	for _, c := range rootCmd.Commands() {
		resetFlags(c.Flags())
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(t.Context())
	return out.String(), errOut.String(), err
}

const base = `powershell -ExecutionPolicy Bypass -File scripts\win11-debloater.ps1`

func TestRunPrint(t *testing.T) {
	out, _, err := execute(t, "run", "--disable-telemetry", "--remove-cortana", "--print")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := base + " -WhatIf -RemoveCortana -DisableTelemetry"
	if strings.TrimSpace(out) != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestRunPrintActionKeys(t *testing.T) {
	out, _, err := execute(t, "run", "--action", "RestoreApps,-RemoveBloatApps", "--what-if=false", "--print")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := base + " -RemoveBloatApps -RestoreApps"
	if strings.TrimSpace(out) != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestRunNoSelection(t *testing.T) {
	_, _, err := execute(t, "run", "--print")
	if err == nil || err.Error() != "Select at least one action to run." {
		t.Fatalf("err = %v, want no-selection error", err)
	}
}

func TestRunAdjustedSelectionWarns(t *testing.T) {
	out, errOut, err := execute(t, "run", "--revert-policies", "--remove-widgets", "--print")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "-WhatIf -RemoveWidgets -RevertPolicies") {
		t.Fatalf("conflicting flags should be kept: %q", out)
	}
	if !strings.Contains(errOut, "other selections will be ignored") {
		t.Fatalf("expected adjusted warning on stderr, got %q", errOut)
	}
}

func TestRunUnknownAction(t *testing.T) {
	_, _, err := execute(t, "run", "--action", "RemoveEverything")
	if err == nil || !strings.Contains(err.Error(), "unknown action") {
		t.Fatalf("err = %v, want unknown action", err)
	}
}

func TestRunMissingScript(t *testing.T) {
	_, _, err := execute(t, "run", "--remove-cortana", "--script", "no/such/debloat.ps1")
	if !errors.Is(err, runner.ErrScriptNotFound) {
		t.Fatalf("err = %v, want ErrScriptNotFound", err)
	}
	if !strings.HasPrefix(err.Error(), "Script not found") {
		t.Fatalf("err = %q", err)
	}
}

func TestRunUsesStockShellLocation(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stand-in shell is a POSIX script")
	}
	pf := t.TempDir()
	pwsh := filepath.Join(pf, "PowerShell", "7", "pwsh.exe")
	if err := os.MkdirAll(filepath.Dir(pwsh), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(pwsh, []byte("#!/bin/sh\necho \"$@\"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	script := filepath.Join(t.TempDir(), "win11-debloater.ps1")
	if err := os.WriteFile(script, []byte("param()"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PROGRAMFILES", pf)
	t.Setenv("PATH", filepath.Join(t.TempDir(), "empty"))

	out, _, err := execute(t, "status", "--json", "--shell", "pwsh", "--script", script)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(out, `"shellPath": "`+pwsh+`"`) {
		t.Fatalf("status should find the stock install:\n%s", out)
	}

	out, _, err = execute(t, "run", "--remove-cortana", "--shell", "pwsh", "--script", script)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "-File "+script+" -WhatIf -RemoveCortana") {
		t.Fatalf("script output = %q", out)
	}
}

func TestListKeys(t *testing.T) {
	out, _, err := execute(t, "list", "--keys")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := strings.Fields(out)
	want := actions.Keys()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("list --keys = %v, want %v", got, want)
	}
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"--remove-one-drive", "-RemoveOneDrive", "Uninstall OneDrive", "runs alone"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q", want)
		}
	}
}

func TestVersion(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	defer SetVersionInfo("dev", "none", "unknown")

	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) != "debloat 1.2.3 (abc123) built 2026-01-01" {
		t.Fatalf("version output = %q", out)
	}
}

func TestStatusJSON(t *testing.T) {
	out, _, err := execute(t, "status", "--json", "--script", "no/such/debloat.ps1")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	for _, want := range []string{`"scriptFound": false`, `"shell": "powershell"`, `"script": "no/such/debloat.ps1"`} {
		if !strings.Contains(out, want) {
			t.Errorf("status output missing %s:\n%s", want, out)
		}
	}
}

func TestSelectionFromFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addActionFlags(fs)
	if err := fs.Parse([]string{"--remove-one-drive", "--restore-apps"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	sel, err := selectionFromFlags(fs, []string{" disabletelemetry ", ""})
	if err != nil {
		t.Fatalf("selectionFromFlags: %v", err)
	}
	var keys []string
	for _, a := range sel.Selected() {
		keys = append(keys, a.Key)
	}
	if strings.Join(keys, ",") != "DisableTelemetry,RemoveOneDrive,RestoreApps" {
		t.Fatalf("selected = %v", keys)
	}
}

func TestQuoteArgs(t *testing.T) {
	got := quoteArgs([]string{"powershell", "-File", `C:\My Scripts\debloat.ps1`, "-WhatIf"})
	want := `powershell -File "C:\My Scripts\debloat.ps1" -WhatIf`
	if got != want {
		t.Fatalf("quoteArgs() = %q, want %q", got, want)
	}
}

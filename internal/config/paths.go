package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/lakshaymaurya-felt/debloat/internal/actions"
	"github.com/lakshaymaurya-felt/debloat/internal/envutil"
)

const (
	// EnvShell overrides the interpreter used to run the script.
	EnvShell = "DEBLOAT_SHELL"

	// EnvScript overrides the debloat script path.
	EnvScript = "DEBLOAT_SCRIPT"
)

// Config holds the resolved invocation settings.
type Config struct {
	// Shell is the interpreter executable (name on PATH or absolute path).
	Shell string

	// Script is the debloat script path after environment expansion.
	Script string
}

// Invocation converts the config into the base command of every run.
func (c Config) Invocation() actions.Invocation {
	return actions.Invocation{Shell: c.Shell, Script: c.Script}
}

// Load resolves the config. Non-empty arguments (from flags) win over the
// environment, which wins over the built-in defaults.
func Load(shellFlag, scriptFlag string) Config {
	cfg := Config{
		Shell:  actions.DefaultShell,
		Script: actions.DefaultScript,
	}
	if v := strings.TrimSpace(os.Getenv(EnvShell)); v != "" {
		cfg.Shell = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvScript)); v != "" {
		cfg.Script = v
	}
	if v := strings.TrimSpace(shellFlag); v != "" {
		cfg.Shell = v
	}
	if v := strings.TrimSpace(scriptFlag); v != "" {
		cfg.Script = v
	}

	cfg.Shell = expand(cfg.Shell)
	cfg.Script = resolveScript(expand(cfg.Script), executableDir())
	return cfg
}

// expand resolves environment variables in a path, supporting both
// Windows %VAR% and Unix $VAR / ${VAR} syntax.
func expand(path string) string {
	return envutil.ExpandWindowsEnv(path)
}

// resolveScript keeps absolute paths and relative paths that exist under
// the working directory. Otherwise a copy next to the executable is
// preferred when present, so the tool works when launched from Explorer.
func resolveScript(script, exeDir string) string {
	native := envutil.NativePath(script)
	if filepath.IsAbs(native) {
		return script
	}
	if _, err := os.Stat(native); err == nil {
		return script
	}
	if exeDir == "" {
		return script
	}
	candidate := filepath.Join(exeDir, native)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return script
}

// executableDir returns the directory holding the running binary, or "".
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// ─── Environment probes ──────────────────────────────────────────────────────

// winDir returns the Windows directory (e.g., C:\Windows).
// Falls back to C:\Windows only if %WINDIR% is not set.
func winDir() string {
	if w := os.Getenv("WINDIR"); w != "" {
		return w
	}
	return `C:\Windows`
}

// shellFallbacks are the stock install locations for Windows PowerShell
// and PowerShell 7, checked when the shell is not on PATH.
func shellFallbacks(shell string) []string {
	switch strings.TrimSuffix(strings.ToLower(filepath.Base(shell)), ".exe") {
	case "powershell":
		return []string{filepath.Join(winDir(), "System32", "WindowsPowerShell", "v1.0", "powershell.exe")}
	case "pwsh":
		pf := os.Getenv("PROGRAMFILES")
		if pf == "" {
			pf = `C:\Program Files`
		}
		return []string{filepath.Join(pf, "PowerShell", "7", "pwsh.exe")}
	}
	return nil
}

// LookPath finds an interpreter on PATH, then at its stock install
// location. The error wraps exec.ErrNotFound when neither exists.
func LookPath(shell string) (string, error) {
	if p, err := exec.LookPath(shell); err == nil {
		return p, nil
	}
	for _, p := range shellFallbacks(shell) {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%s: %w", shell, exec.ErrNotFound)
}

// LookupShell returns the full path of the configured interpreter.
func (c Config) LookupShell() (string, error) {
	return LookPath(c.Shell)
}

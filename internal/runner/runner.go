package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lakshaymaurya-felt/debloat/internal/envutil"
)

var (
	// ErrShellNotFound means the interpreter could not be started at all.
	ErrShellNotFound = errors.New("shell not found")

	// ErrScriptNotFound means the debloat script does not exist.
	ErrScriptNotFound = errors.New("script not found")

	// ErrEmptyCommand is returned for an empty token list.
	ErrEmptyCommand = errors.New("empty command")
)

// powershellFileMissing is the exit status Windows PowerShell reports when
// the -File argument does not exist (0xFFFD0000).
const powershellFileMissing uint32 = 0xFFFD0000

// ExitError reports a nonzero exit status from the script.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("script exited with code %d", e.Code)
}

// Runner spawns the debloat script with the terminal attached.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger zerolog.Logger

	// LookPath resolves the interpreter named by the first token. When it
	// fails the name is passed through unchanged so a missing shell is still
	// reported as ErrShellNotFound.
	LookPath func(name string) (string, error)
}

// New returns a Runner wired to the process's standard streams.
func New(logger zerolog.Logger) *Runner {
	return &Runner{
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Logger:   logger,
		LookPath: exec.LookPath,
	}
}

// ─── Public API ──────────────────────────────────────────────────────────────

// Command prepares the process for tokens without starting it. Callers that
// hand the terminal over themselves (bubbletea's ExecProcess) use this; the
// streams are left nil for them to fill.
//
// The process is not bound to a context: Ctrl+C reaches the script through
// the console and it decides how to stop.
func (r *Runner) Command(tokens []string) (*exec.Cmd, error) {
	if len(tokens) == 0 || strings.TrimSpace(tokens[0]) == "" {
		return nil, ErrEmptyCommand
	}
	name := tokens[0]
	if r.LookPath != nil {
		if p, err := r.LookPath(name); err == nil {
			name = p
		}
	}
	return exec.Command(name, tokens[1:]...), nil
}

// Run executes tokens and blocks until the script exits. There is no timeout
// and no retry: the script may legitimately run for minutes. ctx is only
// checked before the script starts.
func (r *Runner) Run(ctx context.Context, tokens []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cmd, err := r.Command(tokens)
	if err != nil {
		return err
	}
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	r.Logger.Debug().Strs("argv", tokens).Msg("starting script")
	err = Classify(cmd.Run())
	if err != nil {
		r.Logger.Debug().Err(err).Msg("script failed")
		return err
	}
	r.Logger.Debug().Msg("script finished")
	return nil
}

// CheckScript verifies the script file exists before anything is spawned.
func CheckScript(path string) error {
	info, err := os.Stat(envutil.NativePath(path))
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", ErrScriptNotFound, path)
	}
	return nil
}

// Classify maps a raw exec error into ErrShellNotFound, ErrScriptNotFound,
// *ExitError or a wrapped generic error. A nil error stays nil.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrShellNotFound) || errors.Is(err, ErrScriptNotFound) {
		return err
	}
	var already *ExitError
	if errors.As(err, &already) {
		return err
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if uint32(code) == powershellFileMissing {
			return fmt.Errorf("%w (exit code %d)", ErrScriptNotFound, code)
		}
		return &ExitError{Code: code}
	}

	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrShellNotFound, err)
	}

	return fmt.Errorf("script command error: %w", err)
}

// Explain returns a dialog title and message for a classified error.
func Explain(err error) (title, message string) {
	var exitErr *ExitError
	switch {
	case err == nil:
		return "Done", "The script finished successfully."
	case errors.Is(err, ErrShellNotFound):
		return "PowerShell not found", "PowerShell is required to run this script."
	case errors.Is(err, ErrScriptNotFound):
		return "Script not found", err.Error()
	case errors.As(err, &exitErr):
		return "Execution failed", fmt.Sprintf("PowerShell exited with code %d.", exitErr.Code)
	default:
		return "Execution failed", err.Error()
	}
}

package actions

const (
	// DefaultShell is the interpreter used to host the debloat script.
	DefaultShell = "powershell"

	// DefaultScript is the script path, relative to the working directory.
	DefaultScript = `scripts\win11-debloater.ps1`

	// PreviewFlag asks the script to report intended changes without applying them.
	PreviewFlag = "-WhatIf"
)

// Invocation is the shell and script pair that forms the base of every command.
type Invocation struct {
	Shell  string
	Script string
}

// DefaultInvocation returns the stock powershell invocation.
func DefaultInvocation() Invocation {
	return Invocation{Shell: DefaultShell, Script: DefaultScript}
}

// BaseArgs returns the fixed tokens that start every command line:
//
//	powershell -ExecutionPolicy Bypass -File scripts\win11-debloater.ps1
func (inv Invocation) BaseArgs() []string {
	shell := inv.Shell
	if shell == "" {
		shell = DefaultShell
	}
	script := inv.Script
	if script == "" {
		script = DefaultScript
	}
	return []string{shell, "-ExecutionPolicy", "Bypass", "-File", script}
}

// BuildCommand maps a selection to the script's command line. The preview
// token directly follows the base tokens; action flags follow in catalog
// order regardless of the order they were checked in.
//
// Exclusivity is not enforced here. See Validate.
func BuildCommand(inv Invocation, sel Selection, preview bool) []string {
	cmd := inv.BaseArgs()
	if preview {
		cmd = append(cmd, PreviewFlag)
	}
	for _, a := range catalog {
		if sel.checked[a.Key] {
			cmd = append(cmd, a.Flag())
		}
	}
	return cmd
}

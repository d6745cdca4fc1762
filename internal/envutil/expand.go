package envutil

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// percentVarPattern matches Windows-style %VAR% references.
var percentVarPattern = regexp.MustCompile(`%([A-Za-z_][A-Za-z0-9_()]*)%`)

// ExpandWindowsEnv resolves environment variables in a path, supporting both
// Windows %VAR% and Unix $VAR / ${VAR} syntax. Unset %VAR% references are
// left untouched so the resulting path stays recognisable in error messages.
func ExpandWindowsEnv(path string) string {
	return expandWith(path, os.LookupEnv)
}

func expandWith(path string, lookup func(string) (string, bool)) string {
	path = percentVarPattern.ReplaceAllStringFunc(path, func(m string) string {
		name := m[1 : len(m)-1]
		if v, ok := lookup(name); ok {
			return v
		}
		return m
	})
	return os.Expand(path, func(name string) string {
		v, _ := lookup(name)
		return v
	})
}

// NativePath converts a path written with either separator into the host's
// form, so `scripts\win11-debloater.ps1` can be checked on any platform.
func NativePath(path string) string {
	if filepath.Separator == '\\' {
		return filepath.FromSlash(path)
	}
	return strings.ReplaceAll(path, `\`, "/")
}

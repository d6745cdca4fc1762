//go:build !windows

package core

import "os"

// GetWindowsVersion reports zeros on non-Windows hosts.
func GetWindowsVersion() (major, minor, build uint32) {
	return 0, 0, 0
}

// IsWindows11OrAbove is always false off Windows.
func IsWindows11OrAbove() bool {
	return false
}

// IsElevated reports whether the process runs as root.
func IsElevated() bool {
	return os.Geteuid() == 0
}

// WindowsVersionString returns a placeholder off Windows.
func WindowsVersionString() string {
	return "not Windows"
}

//go:build windows

package core

import "golang.org/x/sys/windows"

// GetWindowsVersion returns the major, minor, and build numbers of the current Windows version.
// Uses RtlGetNtVersionNumbers which works on all Windows versions without manifest requirements.
func GetWindowsVersion() (major, minor, build uint32) {
	major, minor, build = windows.RtlGetNtVersionNumbers()
	// RtlGetNtVersionNumbers returns build with high bits set; mask them off
	build &= 0xFFFF
	return major, minor, build
}

// IsWindows11OrAbove checks if running on Windows 11 or later.
func IsWindows11OrAbove() bool {
	major, _, build := GetWindowsVersion()
	return isWindows11(major, build)
}

// IsElevated reports whether the process token is elevated (Run as
// Administrator). Most debloat actions fail without it.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// WindowsVersionString returns a human-readable Windows version string.
// Examples: "Windows 10 (Build 19045)", "Windows 11 (Build 22621)"
func WindowsVersionString() string {
	return versionString(GetWindowsVersion())
}

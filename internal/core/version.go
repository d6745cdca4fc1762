package core

import "fmt"

// windows11Build is the first build number shipped as Windows 11.
const windows11Build = 22000

func isWindows11(major, build uint32) bool {
	return major >= 10 && build >= windows11Build
}

// versionString names a Windows release from its NT version numbers.
// Examples: "Windows 10 (Build 19045)", "Windows 11 (Build 22621)"
func versionString(major, minor, build uint32) string {
	var name string
	switch {
	case major == 10 && build >= windows11Build:
		name = "Windows 11"
	case major == 10:
		name = "Windows 10"
	case major == 6 && minor == 3:
		name = "Windows 8.1"
	case major == 6 && minor == 2:
		name = "Windows 8"
	case major == 6 && minor == 1:
		name = "Windows 7"
	case major == 6 && minor == 0:
		name = "Windows Vista"
	default:
		name = fmt.Sprintf("Windows %d.%d", major, minor)
	}

	return fmt.Sprintf("%s (Build %d)", name, build)
}

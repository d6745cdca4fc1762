//go:build windows

package core

import (
	"errors"
	"strings"

	"github.com/yusufpapurcu/wmi"
)

type win32OperatingSystem struct {
	Caption     string
	BuildNumber string
}

// queryCaption reads the OS caption and build from Win32_OperatingSystem.
func queryCaption() (string, string, error) {
	var dst []win32OperatingSystem
	if err := wmi.Query("SELECT Caption, BuildNumber FROM Win32_OperatingSystem", &dst); err != nil {
		return "", "", err
	}
	if len(dst) == 0 {
		return "", "", errors.New("Win32_OperatingSystem returned no rows")
	}
	return strings.TrimSpace(dst[0].Caption), dst[0].BuildNumber, nil
}

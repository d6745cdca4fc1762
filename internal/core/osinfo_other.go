//go:build !windows

package core

import "errors"

func queryCaption() (string, string, error) {
	return "", "", errors.New("WMI is only available on Windows")
}

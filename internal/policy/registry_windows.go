//go:build windows

package policy

import (
	"errors"

	"golang.org/x/sys/windows/registry"
)

// readLocalMachine reads a DWORD value below HKLM. A missing key or value
// is not an error.
func readLocalMachine(path, name string) (uint64, bool, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return 0, false, nil
		}
		return 0, false, err
	}
	defer key.Close()

	val, _, err := key.GetIntegerValue(name)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return val, true, nil
}

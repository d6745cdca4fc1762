//go:build !windows

package policy

func readLocalMachine(path, name string) (uint64, bool, error) {
	return 0, false, ErrUnsupported
}

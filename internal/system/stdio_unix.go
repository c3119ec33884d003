//go:build unix

package system

import (
	"os"

	"golang.org/x/sys/unix"
)

// RedirectStdIO points stdout and stderr at the file at path, appending.
// Output from every goroutine and panic traces land in the file too.
func RedirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := unix.Dup2(int(f.Fd()), int(os.Stdout.Fd())); err != nil {
		return err
	}
	return unix.Dup2(int(f.Fd()), int(os.Stderr.Fd()))
}

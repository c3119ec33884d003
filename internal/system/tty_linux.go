//go:build linux

package system

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

// Active VT first, then the console device.
var vtPaths = []string{"/dev/tty", "/dev/tty0"}

// Logger is the component-tagged logger the console helpers report to.
type Logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// SetGraphicsMode switches the active console to graphics mode so the text
// console stops drawing over the framebuffer.
func SetGraphicsMode() error { return setKDMode(kdGraphics, "KD_GRAPHICS") }

// RestoreTextMode returns the console to text mode.
func RestoreTextMode() error { return setKDMode(kdText, "KD_TEXT") }

// HideCursor writes the ANSI escape to hide the cursor to the active VT.
func HideCursor() error { return writeVT("\x1b[?25l") }
func ShowCursor() error { return writeVT("\x1b[?25h") }

// EnterGraphics hides the cursor and switches to graphics mode, logging each
// step. The returned func undoes both and is safe to call when either failed.
func EnterGraphics(l Logger) (restore func()) {
	logStep(l, "KD_GRAPHICS set", SetGraphicsMode())
	logStep(l, "cursor hidden", HideCursor())
	return func() {
		logStep(l, "cursor shown", ShowCursor())
		logStep(l, "KD_TEXT set", RestoreTextMode())
	}
}

func logStep(l Logger, done string, err error) {
	if l == nil {
		return
	}
	if err != nil {
		l.Errorf("tty", "%v", err)
		return
	}
	l.Infof("tty", "%s", done)
}

func setKDMode(mode int, name string) error {
	var lastErr error
	for _, p := range vtPaths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("%s on %s: %w", name, p, err)
			continue
		}
		return nil
	}
	if lastErr != nil {
		return lastErr
	}
	return fmt.Errorf("%s failed: unknown error", name)
}

func writeVT(s string) error {
	var lastErr error
	for _, p := range vtPaths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	if lastErr != nil {
		return fmt.Errorf("write VT failed: %v", lastErr)
	}
	return fmt.Errorf("write VT failed: unknown error")
}

// Package detector inspects the runtime environment once at startup.
package detector

import (
	"os"
	"runtime"

	"golang.org/x/term"
)

// Environment describes the capabilities relevant to running scripts.
type Environment struct {
	// ColorStderr is set when stderr is a terminal, so cargo may color its diagnostics.
	ColorStderr bool

	// SupportsExec is set when the process image can be replaced by the script binary.
	SupportsExec bool
}

// Detect probes the current process.
func Detect() Environment {
	return Environment{
		ColorStderr:  IsTerminal(os.Stderr),
		SupportsExec: SupportsExec(runtime.GOOS),
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms
}

// SupportsExec reports whether goos can replace the running process image.
func SupportsExec(goos string) bool {
	switch goos {
	case "windows", "plan9", "js", "wasip1":
		return false
	default:
		return true
	}
}

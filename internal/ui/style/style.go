// Package style holds the colors and icons shared by terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Rust   = lipgloss.Color("#CE422B")
	Slate  = lipgloss.Color("#667085")
	Dim    = lipgloss.Color("#98A2B3")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "·"
)

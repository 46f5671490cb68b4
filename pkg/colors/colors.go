// Package colors maps color names to terminal styling. It is the
// color rendering primitive behind message output: given text and a
// named color it returns the styled text, and for an empty or unknown
// name it returns the text unchanged.
package colors

import (
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/quietfmt/murmur/pkg/registry"
)

// namedColors maps color names to ANSI palette indexes. The table is
// data, not behavior: adding a name here is the whole change.
var namedColors = []struct {
	name string
	ansi string
}{
	{"red", "1"},
	{"green", "2"},
	{"yellow", "3"},
	{"blue", "4"},
	{"magenta", "5"},
	{"cyan", "6"},
	{"white", "7"},
}

// styleRegistry maps color names to lipgloss styles
var styleRegistry registry.Registry[lipgloss.Style]

// enabled gates all styling; when false Colorize is the identity.
var enabled atomic.Bool

func init() {
	styleRegistry = registry.New[lipgloss.Style]()
	for _, c := range namedColors {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.ansi))
		registry.MustRegister(styleRegistry, c.name, style)
	}
	enabled.Store(true)
}

// Colorize returns text styled with the named foreground color.
// An empty or unknown color name returns the text unchanged, as does
// disabled styling. Colorize never fails.
func Colorize(text string, color string) string {
	if color == "" || !enabled.Load() {
		return text
	}

	style, err := styleRegistry.Get(color)
	if err != nil {
		return text
	}

	return style.Render(text)
}

// Known reports whether the color name is in the table.
func Known(color string) bool {
	return styleRegistry.Has(color)
}

// Names returns all known color names in sorted order.
func Names() []string {
	return styleRegistry.List()
}

// SetEnabled turns styling on or off process-wide. Callers normally
// derive the value from DetectMode.
func SetEnabled(on bool) {
	enabled.Store(on)
}

// Enabled reports whether styling is currently on.
func Enabled() bool {
	return enabled.Load()
}

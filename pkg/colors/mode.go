package colors

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Mode represents the output styling mode
type Mode int

const (
	// ModeAuto automatically detects the appropriate mode based on terminal capabilities
	ModeAuto Mode = iota
	// ModeTerm renders styled output with colors
	ModeTerm
	// ModeText renders plain text output without any styling
	ModeText
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeTerm:
		return "term"
	case ModeText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseMode parses a string into a Mode value
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return ModeAuto, nil
	case "term", "terminal":
		return ModeTerm, nil
	case "text", "plain":
		return ModeText, nil
	default:
		return ModeAuto, fmt.Errorf("unknown mode: %s", s)
	}
}

// DetectMode determines the styling mode for the given output file
// based on environment and terminal capabilities.
func DetectMode(output *os.File) Mode {
	// Check if NO_COLOR is set
	if os.Getenv("NO_COLOR") != "" {
		return ModeText
	}

	// Check if we're being piped or redirected
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return ModeText
	}

	// Check terminal color support
	if termenv.ColorProfile() == termenv.Ascii {
		return ModeText
	}

	return ModeTerm
}

// Resolve collapses ModeAuto into a concrete mode for the given
// output file; term and text pass through unchanged.
func (m Mode) Resolve(output *os.File) Mode {
	if m == ModeAuto {
		return DetectMode(output)
	}
	return m
}

// pkg/colors/colors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test color table lookups, pass-through rules, and mode parsing

package colors_test

import (
	"os"
	"testing"

	"github.com/quietfmt/murmur/pkg/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownColors(t *testing.T) {
	expected := []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"}
	for _, name := range expected {
		t.Run(name, func(t *testing.T) {
			assert.True(t, colors.Known(name), "color %s should be in the table", name)
		})
	}
	assert.False(t, colors.Known("chartreuse"))
	assert.Len(t, colors.Names(), len(expected))
}

func TestColorizeUnknownColorPassesThrough(t *testing.T) {
	assert.Equal(t, "hello", colors.Colorize("hello", "chartreuse"))
}

func TestColorizeEmptyColorPassesThrough(t *testing.T) {
	assert.Equal(t, "hello", colors.Colorize("hello", ""))
}

func TestColorizeDisabledPassesThrough(t *testing.T) {
	colors.SetEnabled(false)
	defer colors.SetEnabled(true)

	for _, name := range colors.Names() {
		assert.Equal(t, "hello", colors.Colorize("hello", name))
	}
}

func TestColorizeIsDeterministic(t *testing.T) {
	// Same input, same output across repeated calls.
	first := colors.Colorize("done", "green")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, colors.Colorize("done", "green"))
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    colors.Mode
		wantErr bool
	}{
		{"auto", colors.ModeAuto, false},
		{"", colors.ModeAuto, false},
		{"term", colors.ModeTerm, false},
		{"TERMINAL", colors.ModeTerm, false},
		{"text", colors.ModeText, false},
		{"plain", colors.ModeText, false},
		{"json", colors.ModeAuto, true},
	}

	for _, tt := range tests {
		t.Run("input_"+tt.input, func(t *testing.T) {
			got, err := colors.ParseMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "auto", colors.ModeAuto.String())
	assert.Equal(t, "term", colors.ModeTerm.String())
	assert.Equal(t, "text", colors.ModeText.String())
	assert.Equal(t, "unknown", colors.Mode(42).String())
}

func TestDetectModeRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, colors.ModeText, colors.DetectMode(os.Stdout))
}

func TestResolvePassesConcreteModes(t *testing.T) {
	assert.Equal(t, colors.ModeTerm, colors.ModeTerm.Resolve(os.Stdout))
	assert.Equal(t, colors.ModeText, colors.ModeText.Resolve(os.Stdout))
}

// Package config loads the optional user theme that overrides icon
// glyphs and colors. The theme lives in the XDG config directory and
// must be applied before the icon registry is first used.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/quietfmt/murmur/pkg/colors"
	"github.com/quietfmt/murmur/pkg/errors"
	"github.com/quietfmt/murmur/pkg/icons"
	"github.com/quietfmt/murmur/pkg/logging"
)

var log = logging.GetLogger("config")

// IconOverride customizes one icon kind. Empty fields keep the
// built-in value, so a theme can recolor an icon without restating
// its glyph.
type IconOverride struct {
	Glyph string `toml:"glyph"`
	Color string `toml:"color"`
}

// Theme represents a murmur.toml theme file
type Theme struct {
	Icons map[string]IconOverride `toml:"icons"`
}

// DefaultPath returns the standard theme file location,
// $XDG_CONFIG_HOME/murmur/murmur.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "murmur", "murmur.toml")
}

// LoadTheme reads and parses a theme file. A missing file is not an
// error: it yields an empty theme.
func LoadTheme(path string) (Theme, error) {
	logger := log.With().Str("path", path).Logger()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Msg("No theme file, using built-in icon table")
			return Theme{}, nil
		}
		return Theme{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to read theme file")
	}

	var theme Theme
	if err := toml.Unmarshal(data, &theme); err != nil {
		return Theme{}, errors.Wrap(err, errors.ErrConfigParse, "failed to parse theme TOML")
	}

	if err := theme.validate(); err != nil {
		return Theme{}, err
	}

	logger.Debug().Int("overrides", len(theme.Icons)).Msg("Theme loaded")
	return theme, nil
}

// validate rejects entries that would poison the icon registry.
func (t Theme) validate() error {
	for name, override := range t.Icons {
		if name == "" {
			return errors.New(errors.ErrConfigValid, "icon override with empty kind name")
		}
		if override.Glyph == "" && override.Color == "" {
			return errors.Newf(errors.ErrConfigValid, "icon override '%s' sets neither glyph nor color", name)
		}
		if override.Color != "" && !colors.Known(override.Color) {
			return errors.Newf(errors.ErrConfigValid, "icon override '%s' uses unknown color '%s'", name, override.Color)
		}
	}
	return nil
}

// Apply installs the theme's overrides into the icon registry. It
// fails with ErrAlreadyInitialized if the registry has already been
// built; callers must apply themes at startup, before any lookup.
func (t Theme) Apply() error {
	if len(t.Icons) == 0 {
		return nil
	}

	overrides := make(map[icons.Kind]icons.Icon, len(t.Icons))
	for name, override := range t.Icons {
		overrides[icons.Kind(name)] = icons.Icon{
			Glyph: override.Glyph,
			Color: override.Color,
		}
	}
	return icons.Configure(overrides)
}

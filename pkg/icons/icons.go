// Package icons defines the semantic icon set and its process-wide
// registry. The registry maps a Kind to a glyph and a default color.
// It is built exactly once, on first use, and is read-only afterwards.
//
// The kind set is closed but growable: new kinds may appear in future
// versions, so code branching on kinds must keep a default arm and
// Lookup stays total via a placeholder fallback.
package icons

import (
	_ "embed"
	"sync"
	"sync/atomic"

	"github.com/quietfmt/murmur/pkg/errors"
	"github.com/quietfmt/murmur/pkg/logging"
	"github.com/quietfmt/murmur/pkg/registry"
	"gopkg.in/yaml.v3"
)

// Kind is a semantic identifier for a supported icon.
type Kind string

// Unicode icon kinds. These render in any terminal.
const (
	Check   Kind = "check"
	Cross   Kind = "cross"
	Info    Kind = "info"
	Warning Kind = "warning"
	Bug     Kind = "bug"
	Folder  Kind = "folder"
	Refresh Kind = "refresh"
	Gear    Kind = "gear"
)

// Nerd Font icon kinds. These need a Nerd Font compatible terminal font.
const (
	NerdCheck   Kind = "nf-check"
	NerdCross   Kind = "nf-cross"
	NerdInfo    Kind = "nf-info"
	NerdWarning Kind = "nf-warning"
	NerdBug     Kind = "nf-bug"
	NerdFolder  Kind = "nf-folder"
	NerdRefresh Kind = "nf-refresh"
	NerdGear    Kind = "nf-gear"
)

// Icon is the value registered for a Kind: the literal glyph and the
// default color applied to lines that carry no explicit override.
type Icon struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// Placeholder is returned by Lookup for kinds the registry does not
// know. It keeps Lookup total instead of panicking.
var Placeholder = Icon{Glyph: "•"}

// tableConfig is the shape of the embedded icons.yaml
type tableConfig struct {
	Icons map[string]Icon `yaml:"icons"`
}

//go:embed icons.yaml
var embeddedTable []byte

var (
	initOnce    sync.Once
	initialized atomic.Bool

	iconRegistry registry.Registry[Icon]

	// overridesMu guards pending overrides until initialization
	// consumes them.
	overridesMu sync.Mutex
	overrides   map[Kind]Icon
)

// ensureInit builds the registry exactly once. Concurrent callers
// block until the single build completes, then never again.
func ensureInit() {
	initOnce.Do(func() {
		logger := logging.GetLogger("icons")

		table := loadTable()

		overridesMu.Lock()
		for kind, icon := range overrides {
			base := table[string(kind)]
			if icon.Glyph != "" {
				base.Glyph = icon.Glyph
			}
			if icon.Color != "" {
				base.Color = icon.Color
			}
			table[string(kind)] = base
		}
		overrides = nil
		initialized.Store(true)
		overridesMu.Unlock()

		reg := registry.New[Icon]()
		for name, icon := range table {
			registry.MustRegister(reg, name, icon)
		}
		iconRegistry = reg

		logger.Debug().Int("icons", reg.Count()).Msg("Icon registry initialized")
	})
}

// loadTable parses the embedded YAML table, falling back to the
// compiled-in defaults if it cannot be read.
func loadTable() map[string]Icon {
	var cfg tableConfig
	if err := yaml.Unmarshal(embeddedTable, &cfg); err == nil && len(cfg.Icons) > 0 {
		valid := true
		for name, icon := range cfg.Icons {
			if name == "" || icon.Glyph == "" {
				valid = false
				break
			}
		}
		if valid {
			return cfg.Icons
		}
	}

	fallbackLogger := logging.GetLogger("icons")
	fallbackLogger.Debug().Msg("Embedded icon table unusable, using defaults")
	return defaultTable()
}

// Lookup returns the glyph and default color for the given kind.
// It is total and deterministic: every kind defined in this package
// resolves to a stable entry, and unknown kinds resolve to
// Placeholder rather than failing.
func Lookup(kind Kind) Icon {
	ensureInit()

	icon, err := iconRegistry.Get(string(kind))
	if err != nil {
		lookupLogger := logging.GetLogger("icons")
		lookupLogger.Trace().Str("kind", string(kind)).Msg("Unknown icon kind, using placeholder")
		return Placeholder
	}
	return icon
}

// Kinds returns every registered kind in sorted order.
func Kinds() []Kind {
	ensureInit()

	names := iconRegistry.List()
	kinds := make([]Kind, 0, len(names))
	for _, name := range names {
		kinds = append(kinds, Kind(name))
	}
	return kinds
}

// Parse converts a user-supplied string into a registered Kind.
func Parse(s string) (Kind, error) {
	ensureInit()

	if !iconRegistry.Has(s) {
		return "", errors.Newf(errors.ErrNotFound, "unknown icon kind '%s'", s)
	}
	return Kind(s), nil
}

// Configure installs glyph/color overrides to be applied when the
// registry is built. It must be called before the first Lookup, Kinds
// or Parse call; once the registry exists it is immutable and
// Configure fails with ErrAlreadyInitialized.
//
// Empty Glyph or Color fields leave the table value in place, so an
// override can recolor an icon without restating its glyph.
func Configure(custom map[Kind]Icon) error {
	overridesMu.Lock()
	defer overridesMu.Unlock()

	if initialized.Load() {
		return errors.New(errors.ErrAlreadyInitialized, "icon registry already initialized")
	}

	if overrides == nil {
		overrides = make(map[Kind]Icon, len(custom))
	}
	for kind, icon := range custom {
		overrides[kind] = icon
	}
	return nil
}

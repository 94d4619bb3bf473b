// Package themes defines theme records, expands them into full color
// palettes, and tracks the active theme for a style engine instance.
package themes

import (
	"errors"
	"fmt"
)

// Mode selects the light or dark rendering rules of the engine.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Channel name used by Provider to announce that the active theme changed.
const ChannelThemeChanged = "theme-changed"

// Sentinel errors surfaced by the provider.
var (
	ErrThemeNotFound = errors.New("themes: theme not found")
	ErrThemeExists   = errors.New("themes: theme already registered")
)

// Definition is the raw, declarative theme record: a handful of named base
// colors ("shades") plus semantic aliases pointing at them. Definitions are
// immutable once registered.
type Definition struct {
	Name   string            `json:"name" toml:"name"`
	Mode   Mode              `json:"mode" toml:"mode"`
	Shades map[string]string `json:"shades" toml:"shades"`
	// Semantic maps an alias (e.g. "background") to a shade key. Aliases
	// resolve in a single pass and must reference a shade, never another
	// alias.
	Semantic map[string]string `json:"semantic" toml:"semantic"`
}

// Validate checks the structural invariants a definition must satisfy
// before expansion.
func (d Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("themes: definition has no name")
	}
	if d.Mode != Light && d.Mode != Dark {
		return fmt.Errorf("themes: theme %q: mode must be %q or %q, got %q", d.Name, Light, Dark, d.Mode)
	}
	if len(d.Shades) == 0 {
		return fmt.Errorf("themes: theme %q: no shades defined", d.Name)
	}
	return nil
}

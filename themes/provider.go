package themes

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/fynestrap/fynestrap/publish"
)

// ResetHook runs just before a newly expanded palette becomes active. The
// engine uses it to reset the host style engine to its clean base state and
// release assets minted under the superseded palette epoch.
type ResetHook func(previousEpoch int)

// Provider owns the set of registered theme definitions and the active
// palette. It is not a process-wide singleton: every engine instance owns
// its own provider. All methods assume the single UI thread.
type Provider struct {
	definitions map[string]Definition
	active      *Palette
	epoch       int
	publisher   *publish.Publisher
	resetHook   ResetHook

	// Logger may be replaced before first use; defaults to no output.
	Logger zerolog.Logger
}

// NewProvider returns a provider broadcasting theme changes on pub. A nil
// publisher is allowed; changes then go unannounced (useful in tests that
// only exercise expansion).
func NewProvider(pub *publish.Publisher) *Provider {
	return &Provider{
		definitions: make(map[string]Definition),
		publisher:   pub,
		Logger:      zerolog.Nop(),
	}
}

// SetResetHook installs the pre-activation hook. The engine calls this once
// during wiring.
func (pr *Provider) SetResetHook(hook ResetHook) { pr.resetHook = hook }

// Register adds a definition to the provider's table. Registering a name
// that already exists is skipped and reported as ErrThemeExists; the
// original definition wins. Invalid definitions are rejected.
func (pr *Provider) Register(def Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	if _, exists := pr.definitions[def.Name]; exists {
		pr.Logger.Warn().Str("theme", def.Name).Msg("theme already registered, skipping")
		return fmt.Errorf("%w: %q", ErrThemeExists, def.Name)
	}
	pr.definitions[def.Name] = def
	return nil
}

// Definition returns the registered definition for name.
func (pr *Provider) Definition(name string) (Definition, bool) {
	def, ok := pr.definitions[name]
	return def, ok
}

// Names lists registered theme names in sorted order.
func (pr *Provider) Names() []string {
	names := make([]string, 0, len(pr.definitions))
	for name := range pr.definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Use activates the named theme: the definition is expanded to a fresh
// palette, the reset hook runs (host engine reset, stale asset release),
// the palette becomes active, and the change is published. Generated style
// names are never removed, only shadowed, so the reset is what forces every
// widget to rebuild against the new palette instead of recoloring old
// assets.
func (pr *Provider) Use(name string) error {
	def, ok := pr.definitions[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	palette, err := Expand(def)
	if err != nil {
		return err
	}

	previous := pr.epoch
	pr.epoch++
	if pr.resetHook != nil {
		pr.resetHook(previous)
	}
	pr.active = palette
	pr.Logger.Debug().Str("theme", name).Int("epoch", pr.epoch).Msg("theme activated")

	if pr.publisher != nil {
		pr.publisher.Publish(ChannelThemeChanged)
	}
	return nil
}

// Active returns the current palette, or nil before the first Use.
func (pr *Provider) Active() *Palette { return pr.active }

// Epoch returns the activation counter; it increments on every Use.
func (pr *Provider) Epoch() int { return pr.epoch }

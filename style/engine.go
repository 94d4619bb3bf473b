package style

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fynestrap/fynestrap/publish"
	"github.com/fynestrap/fynestrap/render"
	"github.com/fynestrap/fynestrap/themes"
)

// Engine is the explicit context owning every piece of engine state: the
// theme provider, the builder registry, the renderer, the broadcast
// publisher and the host style engine. Multiple engines can coexist (tests
// build throwaway ones); nothing is package-global.
//
// All methods must run on the single UI thread.
type Engine struct {
	Provider  *themes.Provider
	Registry  *Registry
	Renderer  *render.Renderer
	Publisher *publish.Publisher
	Host      HostEngine

	buildersLoaded bool
	Logger         zerolog.Logger
}

// NewEngine wires an engine around a host style engine. Switching themes
// resets the host to its clean base state and releases element assets
// minted under the superseded palette before the new palette activates.
func NewEngine(host HostEngine) *Engine {
	pub := publish.NewPublisher()
	e := &Engine{
		Provider:  themes.NewProvider(pub),
		Registry:  NewRegistry(),
		Renderer:  render.NewRenderer(),
		Publisher: pub,
		Host:      host,
		Logger:    zerolog.Nop(),
	}
	e.Provider.SetResetHook(func(previous int) {
		next := previous + 1
		host.Reset()
		e.Renderer.ReleaseBefore(next)
		e.Renderer.SetEpoch(next)
	})
	return e
}

// LoadBuilders runs a builder-registration function exactly once per
// engine, no matter how often it is called. Builder sets have import-time
// flavored side effects (they populate the registry), so repeated loads
// must not repeat them.
func (e *Engine) LoadBuilders(load func(*Registry)) {
	if e.buildersLoaded {
		return
	}
	e.buildersLoaded = true
	load(e.Registry)
}

// StyleName computes the deterministic generated style name for a
// color/variant/kind triple. Identical triples always map to the same
// name, which is what makes resolution idempotent.
func StyleName(color, variant string, kind WidgetKind) string {
	if variant == "" || variant == SolidVariant {
		return fmt.Sprintf("%s.%s", color, kind)
	}
	return fmt.Sprintf("%s.%s.%s", color, variant, kind)
}

// ResolveStyle resolves a widget's semantic style token to a generated
// style name and applies it. An empty token skips resolution entirely and
// leaves the widget with its toolkit default appearance; that is a valid
// path, not an error. The registered builder runs at most once per distinct
// generated name: if the host engine already has the record, it is reused
// unchanged.
func (e *Engine) ResolveStyle(w Styleable, token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", nil
	}
	palette := e.Provider.Active()
	if palette == nil {
		return "", fmt.Errorf("style: no active theme")
	}

	color, variant := ParseStyleToken(token)
	name := StyleName(color, variant, w.Kind())

	if !e.Host.StyleExists(name) {
		b := NewBuilder(palette, e.Renderer, e.Host)
		b.log = e.Logger
		if err := e.Registry.Dispatch(b, w.Kind(), variant, name, color, nil); err != nil {
			return "", fmt.Errorf("style: building %q: %w", name, err)
		}
	}
	w.ApplyStyle(name)
	return name, nil
}

// StyledWidget binds a widget to the engine for the widget's lifetime: it
// resolves style tokens on demand and re-resolves the current token
// whenever the active theme changes. The wrapper owns the theme-change
// subscription; Close releases it and must be called when the widget is
// destroyed.
type StyledWidget struct {
	engine *Engine
	target Styleable
	token  string
	sub    *publish.Subscription
}

// NewStyledWidget subscribes the widget to theme changes and returns the
// wrapper.
func (e *Engine) NewStyledWidget(target Styleable) *StyledWidget {
	w := &StyledWidget{engine: e, target: target}
	w.sub = e.Publisher.Subscribe(themes.ChannelThemeChanged, w.rebuild)
	return w
}

// SetStyle records the widget's style token and resolves it.
func (w *StyledWidget) SetStyle(token string) (string, error) {
	w.token = token
	return w.engine.ResolveStyle(w.target, token)
}

// StyleToken returns the widget's current semantic token.
func (w *StyledWidget) StyleToken() string { return w.token }

// Rebuild forces re-resolution of the current token against the active
// palette. This is the theme-change path; failures are logged and
// swallowed so a bad rebuild cannot crash widget code mid-broadcast.
func (w *StyledWidget) Rebuild() string {
	name, err := w.engine.ResolveStyle(w.target, w.token)
	if err != nil {
		w.engine.Logger.Warn().Err(err).Str("token", w.token).Msg("style rebuild failed")
		return ""
	}
	return name
}

func (w *StyledWidget) rebuild() {
	if w.token == "" {
		return
	}
	w.Rebuild()
}

// Close drops the theme-change subscription. Idempotent. Skipping Close
// leaks the subscription for the life of the engine.
func (w *StyledWidget) Close() {
	w.sub.Close()
}

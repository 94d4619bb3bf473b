package style

import "github.com/rs/zerolog"

// BuilderFn creates the style record (and any element images) for one
// generated style name. color is the already-extracted color token of the
// widget's style token.
type BuilderFn func(b *Builder, styleName, color string, opts Options) error

type builderKey struct {
	kind    WidgetKind
	variant string
}

// Registry maps (widget kind, variant) to builder functions. Registration
// is additive and last-registration-wins: re-registering a pair replaces
// the earlier function with only a warning. Third parties extend the
// engine by registering their own builders.
type Registry struct {
	table map[builderKey]BuilderFn

	Logger zerolog.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		table:  make(map[builderKey]BuilderFn),
		Logger: zerolog.Nop(),
	}
}

// Register installs fn for the (kind, variant) pair, replacing any earlier
// registration.
func (r *Registry) Register(kind WidgetKind, variant string, fn BuilderFn) {
	key := builderKey{kind: kind, variant: variant}
	if _, exists := r.table[key]; exists {
		r.Logger.Warn().
			Str("kind", kind.String()).
			Str("variant", variant).
			Msg("builder re-registered, replacing earlier registration")
	}
	r.table[key] = fn
}

// Lookup returns the builder for the pair.
func (r *Registry) Lookup(kind WidgetKind, variant string) (BuilderFn, bool) {
	fn, ok := r.table[builderKey{kind: kind, variant: variant}]
	return fn, ok
}

// Dispatch invokes the registered builder. A missing builder is a no-op,
// never an error: widget kinds without a custom look keep the toolkit
// default appearance.
func (r *Registry) Dispatch(b *Builder, kind WidgetKind, variant, styleName, color string, opts Options) error {
	fn, ok := r.table[builderKey{kind: kind, variant: variant}]
	if !ok {
		return nil
	}
	return fn(b, styleName, color, opts)
}

// Len reports the number of registered builders.
func (r *Registry) Len() int { return len(r.table) }

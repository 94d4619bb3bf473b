package style

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fynestrap/fynestrap/colorutil"
	"github.com/fynestrap/fynestrap/render"
	"github.com/fynestrap/fynestrap/themes"
)

// Role distinguishes what a derived color is used for, which picks the
// blend rule.
type Role int

const (
	RoleText Role = iota
	RoleBackground
	RoleBorder
)

// Derived-color deltas. Dark colors lighten and light colors darken by
// these amounts for the interaction states.
const (
	hoverDelta  = 0.08
	activeDelta = 0.12
	focusDelta  = 0.08

	subtleTextDelta    = 0.25
	subtleBgWeightLite = 0.08
	subtleBgWeightDark = 0.10

	elevateMaxLevel = 5
	elevateCeiling  = 0.3
)

// Disabled-state grays. These are fixed constants rather than
// palette-derived values so disabled chrome looks the same across themes;
// each is mixed with the widget's surface at a role- and mode-specific
// ratio:
//
//	role        gray     light-mix  dark-mix
//	text        #909090  0.35       0.45
//	background  #c8c8c8  0.85       0.80
//	border      #b0b0b0  0.60       0.55
var (
	disabledGrays = map[Role]colorutil.Color{
		RoleText:       colorutil.MustParse("#909090"),
		RoleBackground: colorutil.MustParse("#c8c8c8"),
		RoleBorder:     colorutil.MustParse("#b0b0b0"),
	}
	disabledMixLight = map[Role]float64{RoleText: 0.35, RoleBackground: 0.85, RoleBorder: 0.60}
	disabledMixDark  = map[Role]float64{RoleText: 0.45, RoleBackground: 0.80, RoleBorder: 0.55}
)

// Builder is the façade handed to every builder function: derived-color
// operations over the active palette plus the style-creation primitives.
// The color methods are pure; all mutation flows through Configure, Map,
// Layout and Element.
type Builder struct {
	palette  *themes.Palette
	renderer *render.Renderer
	host     HostEngine
	log      zerolog.Logger
}

// NewBuilder wraps a palette, renderer and host engine. The engine
// constructs one per dispatch; tests may construct their own.
func NewBuilder(palette *themes.Palette, renderer *render.Renderer, host HostEngine) *Builder {
	return &Builder{
		palette:  palette,
		renderer: renderer,
		host:     host,
		log:      zerolog.Nop(),
	}
}

// Palette exposes the active palette.
func (b *Builder) Palette() *themes.Palette { return b.palette }

// Mode reports the active theme's light/dark mode.
func (b *Builder) Mode() themes.Mode { return b.palette.Mode() }

// Surface returns the default surface color (the theme background) as hex.
func (b *Builder) Surface() string { return b.palette.Background().Hex() }

// Color resolves a color token (grammar "head[mod|...]") to a concrete hex
// value. Unknown heads resolve to whatever a raw palette lookup returns,
// which is the empty string; downstream code treats that as "unstyled"
// rather than an error.
func (b *Builder) Color(token string) string {
	tok := ParseColorToken(token)
	if tok.Fallback() {
		return b.palette.Hex(tok.Raw)
	}

	key := tok.Head
	if tok.Level != 0 {
		key = fmt.Sprintf("%s%d", tok.Head, tok.Level)
	}
	hex := b.palette.Hex(key)
	if hex == "" {
		return b.palette.Hex(tok.Raw)
	}
	if tok.Subtle {
		hex = b.Subtle(hex, b.Surface(), RoleBackground)
	}
	if tok.Elevation != 0 {
		hex = b.Elevate(hex, tok.Elevation)
	}
	return hex
}

// derive applies f to a parsed hex string. Malformed input (including the
// empty "unknown token" value) passes through unchanged so soft failures
// stay soft; the pass-through is logged so silent drops stay traceable.
func (b *Builder) derive(hex string, f func(colorutil.Color) colorutil.Color) string {
	c, err := colorutil.Parse(hex)
	if err != nil {
		b.log.Debug().Str("value", hex).Msg("unparseable color passed through underived")
		return hex
	}
	return f(c).Hex()
}

// Subtle softens a color against a surface. Text subtly darkens in light
// mode and lightens in dark mode; backgrounds blend toward the surface.
func (b *Builder) Subtle(token, surface string, role Role) string {
	hex := token
	if _, err := colorutil.Parse(token); err != nil {
		hex = b.Color(token)
	}
	return b.derive(hex, func(c colorutil.Color) colorutil.Color {
		switch role {
		case RoleText:
			if b.Mode() == themes.Dark {
				return c.Lighten(subtleTextDelta)
			}
			return c.Darken(subtleTextDelta)
		default:
			s, err := colorutil.Parse(surface)
			if err != nil {
				s = b.palette.Background()
			}
			w := subtleBgWeightLite
			if b.Mode() == themes.Dark {
				w = subtleBgWeightDark
			}
			return colorutil.Mix(c, s, w)
		}
	})
}

func shift(c colorutil.Color, delta float64) colorutil.Color {
	if c.Luminance() < 0.5 {
		return c.Lighten(delta)
	}
	return c.Darken(delta)
}

// Hover returns the hover-state variant of a color: dark colors lighten,
// light colors darken.
func (b *Builder) Hover(hex string) string {
	return b.derive(hex, func(c colorutil.Color) colorutil.Color { return shift(c, hoverDelta) })
}

// Active returns the pressed/active-state variant of a color.
func (b *Builder) Active(hex string) string {
	return b.derive(hex, func(c colorutil.Color) colorutil.Color { return shift(c, activeDelta) })
}

// Focus returns the focus-state variant of a color.
func (b *Builder) Focus(hex string) string {
	return b.derive(hex, func(c colorutil.Color) colorutil.Color { return shift(c, focusDelta) })
}

// Elevate raises a color off its surface: toward black in light mode,
// toward white in dark mode, by min(level/5, 1) * 0.3. Levels at or below
// zero are the identity; levels beyond the cap clamp to it.
func (b *Builder) Elevate(hex string, level int) string {
	if level <= 0 {
		return hex
	}
	return b.derive(hex, func(c colorutil.Color) colorutil.Color {
		ratio := float64(level) / float64(elevateMaxLevel)
		if ratio > 1 {
			ratio = 1
		}
		amount := ratio * elevateCeiling
		if b.Mode() == themes.Dark {
			return c.Lighten(amount)
		}
		return c.Darken(amount)
	})
}

// OnColor picks the text color with the best luminance contrast against
// the given fill, choosing among the fill itself, the theme background,
// and the theme foreground.
func (b *Builder) OnColor(hex string) string {
	return b.derive(hex, func(c colorutil.Color) colorutil.Color {
		return colorutil.BestForeground(c, []colorutil.Color{
			c,
			b.palette.Background(),
			b.palette.Foreground(),
		})
	})
}

// Disabled returns the disabled-state color for a role over a surface per
// the fixed gray table above.
func (b *Builder) Disabled(role Role, surface string) string {
	s, err := colorutil.Parse(surface)
	if err != nil {
		s = b.palette.Background()
	}
	mix := disabledMixLight[role]
	if b.Mode() == themes.Dark {
		mix = disabledMixDark[role]
	}
	return colorutil.Mix(disabledGrays[role], s, mix).Hex()
}

// Recolor rasterizes a template with hex fills through the renderer's memo
// cache.
func (b *Builder) Recolor(template string, fills ...string) (*render.Asset, error) {
	colors := make([]colorutil.Color, len(fills))
	for i, f := range fills {
		c, err := colorutil.Parse(f)
		if err != nil {
			return nil, fmt.Errorf("style: template %q fill %d: %w", template, i, err)
		}
		colors[i] = c
	}
	return b.renderer.Recolor(template, colors...)
}

// Element registers a named image element with the host engine. The name
// is adopted into the renderer's arena exactly once; repeated registration
// of the same name is a no-op, keeping image-primitive creation idempotent.
func (b *Builder) Element(spec render.ElementSpec) {
	if !b.renderer.Adopt(spec.Name, spec.Base) {
		return
	}
	b.host.CreateImagePrimitive(spec)
}

// Configure sets style configure options on the host engine.
func (b *Builder) Configure(name string, opts Options) {
	b.host.ConfigureStyle(name, opts)
}

// Map declares state-conditional option overrides, preserving order.
func (b *Builder) Map(name string, specs []StateSpec) {
	b.host.MapStyle(name, specs)
}

// Layout attaches a child-element layout tree to the style.
func (b *Builder) Layout(name string, tree *LayoutNode) {
	b.host.CreateLayout(name, tree)
}

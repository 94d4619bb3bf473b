package themes

import (
	"fmt"
	"sort"

	"github.com/fynestrap/fynestrap/colorutil"
)

// Spectrum levels run 100 (lightest tint) through 900 (darkest shade), with
// 500 holding the base color exactly.
const (
	SpectrumMin  = 100
	SpectrumBase = 500
	SpectrumMax  = 900
	SpectrumStep = 100
)

// tintWeights blend the base toward white for levels 100..400;
// shadeWeights blend toward black for levels 600..900.
var (
	tintWeights  = map[int]float64{100: 0.80, 200: 0.60, 300: 0.40, 400: 0.25}
	shadeWeights = map[int]float64{600: 0.25, 700: 0.40, 800: 0.60, 900: 0.85}
)

// Palette is the flat, fully expanded color table derived from a
// Definition: every shade, its nine-step spectrum, the fixed white/black
// endpoints, and every semantic alias. Palettes are immutable.
type Palette struct {
	name    string
	mode    Mode
	colors  map[string]colorutil.Color
	shades  []string
	aliases []string
}

// Expand derives a Palette from a definition. For each shade it computes
// four tints (levels 100..400), keeps the base at 500, and computes four
// shades (levels 600..900); alias resolution is a single pass over the
// already-populated table, so an alias referencing anything but a shade,
// "white" or "black" is an error.
func Expand(def Definition) (*Palette, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	p := &Palette{
		name:   def.Name,
		mode:   def.Mode,
		colors: make(map[string]colorutil.Color, len(def.Shades)*10+len(def.Semantic)+2),
	}
	p.colors["white"] = colorutil.White
	p.colors["black"] = colorutil.Black

	for shade := range def.Shades {
		p.shades = append(p.shades, shade)
	}
	sort.Strings(p.shades)

	for _, shade := range p.shades {
		base, err := colorutil.Parse(def.Shades[shade])
		if err != nil {
			return nil, fmt.Errorf("themes: theme %q: shade %q: %w", def.Name, shade, err)
		}
		p.colors[shade] = base
		p.colors[levelKey(shade, SpectrumBase)] = base
		for level, w := range tintWeights {
			p.colors[levelKey(shade, level)] = colorutil.Mix(base, colorutil.White, w)
		}
		for level, w := range shadeWeights {
			p.colors[levelKey(shade, level)] = colorutil.Mix(base, colorutil.Black, w)
		}
	}

	for alias := range def.Semantic {
		p.aliases = append(p.aliases, alias)
	}
	sort.Strings(p.aliases)

	for _, alias := range p.aliases {
		target := def.Semantic[alias]
		c, ok := p.colors[target]
		if !ok {
			return nil, fmt.Errorf("themes: theme %q: alias %q references unknown key %q", def.Name, alias, target)
		}
		p.colors[alias] = c
	}

	for _, required := range []string{"foreground", "background"} {
		if _, ok := p.colors[required]; !ok {
			return nil, fmt.Errorf("themes: theme %q: no %q shade or alias", def.Name, required)
		}
	}
	return p, nil
}

func levelKey(shade string, level int) string {
	return fmt.Sprintf("%s%d", shade, level)
}

// Name returns the originating theme name.
func (p *Palette) Name() string { return p.name }

// Mode returns the theme's light/dark mode.
func (p *Palette) Mode() Mode { return p.mode }

// Lookup returns the color stored under key, which may be a shade name, a
// spectrum key such as "primary600", an alias, or "white"/"black".
func (p *Palette) Lookup(key string) (colorutil.Color, bool) {
	c, ok := p.colors[key]
	return c, ok
}

// Hex returns the color under key formatted as "#rrggbb", or the empty
// string when the key is absent. Callers that need to distinguish absence
// use Lookup.
func (p *Palette) Hex(key string) string {
	c, ok := p.colors[key]
	if !ok {
		return ""
	}
	return c.Hex()
}

// Level returns the spectrum entry for a shade, e.g. Level("primary", 600).
func (p *Palette) Level(shade string, level int) (colorutil.Color, bool) {
	return p.Lookup(levelKey(shade, level))
}

// Foreground returns the palette's foreground color.
func (p *Palette) Foreground() colorutil.Color { return p.colors["foreground"] }

// Background returns the palette's background color.
func (p *Palette) Background() colorutil.Color { return p.colors["background"] }

// Shades lists the base shade names in sorted order.
func (p *Palette) Shades() []string { return append([]string(nil), p.shades...) }

// Aliases lists the semantic alias names in sorted order.
func (p *Palette) Aliases() []string { return append([]string(nil), p.aliases...) }

// Len reports the number of populated keys.
func (p *Palette) Len() int { return len(p.colors) }

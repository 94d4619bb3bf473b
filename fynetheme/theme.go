// Package fynetheme adapts the style engine's active palette to Fyne's
// theme interface, so stock Fyne widgets pick up the engine's colors and
// repaint on theme switches.
package fynetheme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/fynestrap/fynestrap/colorutil"
	"github.com/fynestrap/fynestrap/publish"
	"github.com/fynestrap/fynestrap/style"
	"github.com/fynestrap/fynestrap/themes"
)

// colorKeys maps Fyne color names onto palette keys, tried in order.
var colorKeys = map[fyne.ThemeColorName][]string{
	theme.ColorNameBackground:        {"background"},
	theme.ColorNameForeground:        {"foreground"},
	theme.ColorNamePrimary:           {"primary"},
	theme.ColorNameButton:            {"primary"},
	theme.ColorNameHyperlink:         {"info", "primary"},
	theme.ColorNameFocus:             {"primary300", "primary"},
	theme.ColorNameSelection:         {"selectbg", "primary"},
	theme.ColorNameInputBackground:   {"inputbg", "background"},
	theme.ColorNameInputBorder:       {"border", "secondary"},
	theme.ColorNamePlaceHolder:       {"secondary"},
	theme.ColorNameScrollBar:         {"border", "secondary"},
	theme.ColorNameSeparator:         {"border", "secondary"},
	theme.ColorNameSuccess:           {"success"},
	theme.ColorNameWarning:           {"warning"},
	theme.ColorNameError:             {"danger"},
	theme.ColorNameHeaderBackground:  {"light", "background"},
	theme.ColorNameMenuBackground:    {"background"},
	theme.ColorNameOverlayBackground: {"background"},
}

// Theme implements fyne.Theme over the engine's active palette. Color
// names without a palette mapping, fonts and icons delegate to the default
// theme; sizes carry the compact overrides for a dense layout.
type Theme struct {
	base   fyne.Theme
	engine *style.Engine
}

// New wraps an engine. The returned theme tracks the engine's active
// palette on every Color call, so a single instance stays correct across
// theme switches.
func New(engine *style.Engine) *Theme {
	return &Theme{base: theme.DefaultTheme(), engine: engine}
}

// Variant maps a theme mode onto Fyne's variant constants.
func Variant(mode themes.Mode) fyne.ThemeVariant {
	if mode == themes.Dark {
		return theme.VariantDark
	}
	return theme.VariantLight
}

// Color resolves a Fyne color name against the active palette, falling
// back to the base theme in the palette's variant.
func (t *Theme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	palette := t.engine.Provider.Active()
	if palette == nil {
		return t.base.Color(name, variant)
	}
	for _, key := range colorKeys[name] {
		if c, ok := palette.Lookup(key); ok {
			return nrgba(c)
		}
	}
	if name == theme.ColorNameDisabled {
		b := style.NewBuilder(palette, t.engine.Renderer, t.engine.Host)
		if c, err := colorutil.Parse(b.Disabled(style.RoleText, b.Surface())); err == nil {
			return nrgba(c)
		}
	}
	return t.base.Color(name, Variant(palette.Mode()))
}

// Font delegates to the base theme.
func (t *Theme) Font(s fyne.TextStyle) fyne.Resource {
	return t.base.Font(s)
}

// Icon delegates to the base theme.
func (t *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides for a dense gallery layout.
func (t *Theme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameHeadingText:
		return 21
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 6
	default:
		return t.base.Size(name)
	}
}

func nrgba(c colorutil.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Apply installs the adapter on the app and re-applies it after every
// theme switch so Fyne repaints with the new palette. The returned
// subscription belongs to the caller; Close it when the app shuts down.
func Apply(app fyne.App, engine *style.Engine) (*Theme, *publish.Subscription) {
	t := New(engine)
	app.Settings().SetTheme(t)
	sub := engine.Publisher.Subscribe(themes.ChannelThemeChanged, func() {
		app.Settings().SetTheme(t)
	})
	return t, sub
}

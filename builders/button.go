package builders

import (
	"github.com/fynestrap/fynestrap/render"
	"github.com/fynestrap/fynestrap/style"
)

// SolidButton builds the filled button: accent background, contrast-picked
// text, hover/pressed deltas, and a focus ring element keyed to the accent.
func SolidButton(b *style.Builder, styleName, color string, _ style.Options) error {
	bg := accent(b, color)
	fg := b.OnColor(bg)
	surface := b.Surface()

	ring, err := b.Recolor("focusring", b.Focus(bg), bg)
	if err != nil {
		return err
	}
	body, err := b.Recolor("input", bg, bg)
	if err != nil {
		return err
	}
	b.Element(render.ElementSpec{
		Name: styleName + ".border",
		Base: body,
		StateOverrides: []render.StateOverride{
			{When: "focus !disabled", Asset: ring},
		},
		Border:  render.Uniform(6),
		Padding: render.Insets{Left: 10, Top: 5, Right: 10, Bottom: 5},
		Sticky:  "nsew",
	})

	b.Configure(styleName, style.Options{
		"foreground":  fg,
		"background":  bg,
		"bordercolor": bg,
		"relief":      "flat",
		"anchor":      "center",
	})
	b.Map(styleName, []style.StateSpec{
		{When: "disabled", Options: style.Options{
			"foreground": b.Disabled(style.RoleText, surface),
			"background": b.Disabled(style.RoleBackground, surface),
		}},
		{When: "pressed !disabled", Options: style.Options{"background": b.Active(bg)}},
		{When: "hover !disabled", Options: style.Options{"background": b.Hover(bg)}},
	})
	b.Layout(styleName, &style.LayoutNode{
		Element: styleName + ".border",
		Sticky:  "nsew",
		Children: []*style.LayoutNode{
			{Element: "Button.label", Sticky: "nsew", Expand: true},
		},
	})
	return nil
}

// OutlineButton builds the bordered button: transparent body with an
// accent border and text that invert to solid on hover.
func OutlineButton(b *style.Builder, styleName, color string, _ style.Options) error {
	accentHex := accent(b, color)
	surface := b.Surface()
	onAccent := b.OnColor(accentHex)

	rest, err := b.Recolor("input", accentHex, surface)
	if err != nil {
		return err
	}
	filled, err := b.Recolor("input", accentHex, accentHex)
	if err != nil {
		return err
	}
	ring, err := b.Recolor("focusring", b.Focus(accentHex), surface)
	if err != nil {
		return err
	}
	b.Element(render.ElementSpec{
		Name: styleName + ".border",
		Base: rest,
		StateOverrides: []render.StateOverride{
			{When: "disabled", Asset: rest},
			{When: "pressed !disabled", Asset: filled},
			{When: "hover !disabled", Asset: filled},
			{When: "focus !disabled", Asset: ring},
		},
		Border:  render.Uniform(6),
		Padding: render.Insets{Left: 10, Top: 5, Right: 10, Bottom: 5},
		Sticky:  "nsew",
	})

	b.Configure(styleName, style.Options{
		"foreground":  accentHex,
		"background":  surface,
		"bordercolor": accentHex,
		"relief":      "flat",
		"anchor":      "center",
	})
	b.Map(styleName, []style.StateSpec{
		{When: "disabled", Options: style.Options{
			"foreground": b.Disabled(style.RoleText, surface),
		}},
		{When: "pressed !disabled", Options: style.Options{
			"foreground": onAccent,
			"background": accentHex,
		}},
		{When: "hover !disabled", Options: style.Options{
			"foreground": onAccent,
			"background": accentHex,
		}},
	})
	b.Layout(styleName, &style.LayoutNode{
		Element: styleName + ".border",
		Sticky:  "nsew",
		Children: []*style.LayoutNode{
			{Element: "Button.label", Sticky: "nsew", Expand: true},
		},
	})
	return nil
}

// LinkButton builds the borderless text-only button styled like a
// hyperlink.
func LinkButton(b *style.Builder, styleName, color string, _ style.Options) error {
	accentHex := accent(b, color)
	surface := b.Surface()

	b.Configure(styleName, style.Options{
		"foreground": accentHex,
		"background": surface,
		"relief":     "flat",
		"shiftrelief": 0,
	})
	b.Map(styleName, []style.StateSpec{
		{When: "disabled", Options: style.Options{
			"foreground": b.Disabled(style.RoleText, surface),
		}},
		{When: "pressed !disabled", Options: style.Options{"foreground": b.Active(accentHex)}},
		{When: "hover !disabled", Options: style.Options{"foreground": b.Hover(accentHex)}},
	})
	return nil
}

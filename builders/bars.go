package builders

import (
	"github.com/fynestrap/fynestrap/render"
	"github.com/fynestrap/fynestrap/style"
)

// Scrollbar builds the flat rectangular scrollbar thumb.
func Scrollbar(b *style.Builder, styleName, color string, _ style.Options) error {
	return scrollbar(b, styleName, color, "square")
}

// RoundScrollbar builds the pill-shaped thumb variant.
func RoundScrollbar(b *style.Builder, styleName, color string, _ style.Options) error {
	return scrollbar(b, styleName, color, "knob")
}

func scrollbar(b *style.Builder, styleName, color, template string) error {
	accentHex := accent(b, color)
	surface := b.Surface()
	thumb := b.Subtle(accentHex, surface, style.RoleBackground)

	rest, err := b.Recolor(template, accentHex, thumb)
	if err != nil {
		return err
	}
	hot, err := b.Recolor(template, accentHex, accentHex)
	if err != nil {
		return err
	}
	dis, err := b.Recolor(template,
		b.Disabled(style.RoleBorder, surface),
		b.Disabled(style.RoleBackground, surface))
	if err != nil {
		return err
	}
	b.Element(render.ElementSpec{
		Name: styleName + ".thumb",
		Base: rest,
		StateOverrides: []render.StateOverride{
			{When: "disabled", Asset: dis},
			{When: "pressed !disabled", Asset: hot},
			{When: "hover !disabled", Asset: hot},
		},
		Border: render.Uniform(4),
		Sticky: "ns",
	})

	b.Configure(styleName, style.Options{
		"troughcolor": surface,
		"background":  thumb,
		"relief":      "flat",
	})
	b.Layout(styleName, &style.LayoutNode{
		Element: styleName + ".thumb",
		Sticky:  "ns",
		Expand:  true,
	})
	return nil
}

// Progressbar builds the solid accent progress fill.
func Progressbar(b *style.Builder, styleName, color string, _ style.Options) error {
	accentHex := accent(b, color)
	surface := b.Surface()
	trough := b.Subtle(accentHex, surface, style.RoleBackground)

	fill, err := b.Recolor("square", accentHex)
	if err != nil {
		return err
	}
	b.Element(render.ElementSpec{
		Name:   styleName + ".pbar",
		Base:   fill,
		Border: render.Uniform(1),
		Sticky: "ew",
	})

	b.Configure(styleName, style.Options{
		"troughcolor": trough,
		"background":  accentHex,
		"borderwidth": 0,
	})
	return nil
}

// StripedProgressbar recolors the diagonal stripe template with the accent
// over its lighter band.
func StripedProgressbar(b *style.Builder, styleName, color string, _ style.Options) error {
	accentHex := accent(b, color)
	surface := b.Surface()
	band := b.Hover(accentHex)
	trough := b.Subtle(accentHex, surface, style.RoleBackground)

	fill, err := b.Recolor("striped", accentHex, band)
	if err != nil {
		return err
	}
	b.Element(render.ElementSpec{
		Name:   styleName + ".pbar",
		Base:   fill,
		Border: render.Uniform(1),
		Sticky: "ew",
	})

	b.Configure(styleName, style.Options{
		"troughcolor": trough,
		"background":  accentHex,
		"borderwidth": 0,
	})
	return nil
}

// Scale builds the slider: a thin trough bar plus a round accent knob that
// brightens while dragged.
func Scale(b *style.Builder, styleName, color string, _ style.Options) error {
	accentHex := accent(b, color)
	surface := b.Surface()

	trough, err := b.Recolor("hsep", b.Subtle(accentHex, surface, style.RoleBackground))
	if err != nil {
		return err
	}
	knob, err := b.Recolor("knob", accentHex, accentHex)
	if err != nil {
		return err
	}
	knobHot, err := b.Recolor("knob", b.Hover(accentHex), b.Hover(accentHex))
	if err != nil {
		return err
	}
	knobDis, err := b.Recolor("knob",
		b.Disabled(style.RoleBorder, surface),
		b.Disabled(style.RoleBackground, surface))
	if err != nil {
		return err
	}

	b.Element(render.ElementSpec{
		Name:   styleName + ".trough",
		Base:   trough,
		Border: render.Insets{Left: 1, Right: 1},
		Sticky: "ew",
	})
	b.Element(render.ElementSpec{
		Name: styleName + ".slider",
		Base: knob,
		StateOverrides: []render.StateOverride{
			{When: "disabled", Asset: knobDis},
			{When: "pressed !disabled", Asset: knobHot},
			{When: "hover !disabled", Asset: knobHot},
		},
	})

	b.Configure(styleName, style.Options{"background": surface})
	b.Layout(styleName, &style.LayoutNode{
		Element: styleName + ".trough",
		Sticky:  "ew",
		Children: []*style.LayoutNode{
			{Element: styleName + ".slider", Side: "left", Sticky: ""},
		},
	})
	return nil
}

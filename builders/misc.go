package builders

import (
	"github.com/fynestrap/fynestrap/render"
	"github.com/fynestrap/fynestrap/style"
)

// Frame builds a plain surface container. With a color token the frame
// becomes an accent panel.
func Frame(b *style.Builder, styleName, color string, _ style.Options) error {
	bg := b.Color(color)
	if bg == "" {
		bg = b.Surface()
	}
	b.Configure(styleName, style.Options{
		"background":  bg,
		"borderwidth": 0,
		"relief":      "flat",
	})
	return nil
}

// Label builds accent-colored text over the theme surface.
func Label(b *style.Builder, styleName, color string, _ style.Options) error {
	fg := b.Color(color)
	if fg == "" {
		fg = b.Color("foreground")
	}
	b.Configure(styleName, style.Options{
		"foreground": fg,
		"background": b.Surface(),
	})
	return nil
}

// InverseLabel swaps the roles: the accent becomes the background and the
// text is contrast-picked against it. Used for badges and banners.
func InverseLabel(b *style.Builder, styleName, color string, _ style.Options) error {
	bg := accent(b, color)
	b.Configure(styleName, style.Options{
		"foreground": b.OnColor(bg),
		"background": bg,
	})
	return nil
}

// Separator builds the thin rule element in both orientations.
func Separator(b *style.Builder, styleName, color string, _ style.Options) error {
	line := b.Color(color)
	if line == "" {
		line = b.Color("border")
	}
	if line == "" {
		line = b.Color("foreground")
	}

	h, err := b.Recolor("hsep", line)
	if err != nil {
		return err
	}
	v, err := b.Recolor("vsep", line)
	if err != nil {
		return err
	}
	b.Element(render.ElementSpec{Name: styleName + ".hseparator", Base: h, Sticky: "ew"})
	b.Element(render.ElementSpec{Name: styleName + ".vseparator", Base: v, Sticky: "ns"})

	b.Configure(styleName, style.Options{"background": line})
	return nil
}

// Notebook builds the tab strip: inactive tabs sit on a subtle accent
// wash, the selected tab joins the surface.
func Notebook(b *style.Builder, styleName, color string, _ style.Options) error {
	accentHex := accent(b, color)
	surface := b.Surface()
	fg := b.Color("foreground")
	inactive := b.Subtle(accentHex, surface, style.RoleBackground)

	b.Configure(styleName, style.Options{
		"background":  surface,
		"bordercolor": inactive,
		"borderwidth": 1,
	})
	tab := styleName + ".Tab"
	b.Configure(tab, style.Options{
		"foreground": fg,
		"background": inactive,
		"padding":    "8 4",
	})
	b.Map(tab, []style.StateSpec{
		{When: "disabled", Options: style.Options{"foreground": b.Disabled(style.RoleText, surface)}},
		{When: "selected !disabled", Options: style.Options{"background": surface}},
		{When: "hover !selected !disabled", Options: style.Options{"background": b.Hover(inactive)}},
	})
	return nil
}

// Treeview builds the table/tree look: accent header, alternating-free
// body on the input background, accent selection band.
func Treeview(b *style.Builder, styleName, color string, _ style.Options) error {
	accentHex := accent(b, color)
	surface := b.Surface()

	b.Configure(styleName, style.Options{
		"foreground":  b.Color("inputfg"),
		"background":  b.Color("inputbg"),
		"fieldbackground": b.Color("inputbg"),
		"bordercolor": b.Color("border"),
	})
	b.Map(styleName, []style.StateSpec{
		{When: "disabled", Options: style.Options{"foreground": b.Disabled(style.RoleText, surface)}},
		{When: "selected !disabled", Options: style.Options{
			"background": b.Color("selectbg"),
			"foreground": b.Color("selectfg"),
		}},
	})

	heading := styleName + ".Heading"
	b.Configure(heading, style.Options{
		"foreground": b.OnColor(accentHex),
		"background": accentHex,
		"relief":     "flat",
	})
	b.Map(heading, []style.StateSpec{
		{When: "pressed !disabled", Options: style.Options{"background": b.Active(accentHex)}},
		{When: "hover !disabled", Options: style.Options{"background": b.Hover(accentHex)}},
	})
	return nil
}

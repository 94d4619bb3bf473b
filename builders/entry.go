package builders

import (
	"github.com/fynestrap/fynestrap/render"
	"github.com/fynestrap/fynestrap/style"
)

// fieldElements synthesizes the shared input-field chrome: resting frame,
// focus ring keyed to the accent, hover border, and disabled frame. Entry,
// Combobox and Spinbox all wear it.
func fieldElements(b *style.Builder, styleName, accentHex string) error {
	surface := b.Surface()
	inputBg := b.Color("inputbg")
	if inputBg == "" {
		inputBg = surface
	}
	border := b.Color("border")
	if border == "" {
		border = b.Color("foreground")
	}

	rest, err := b.Recolor("input", border, inputBg)
	if err != nil {
		return err
	}
	focused, err := b.Recolor("focusring", accentHex, inputBg)
	if err != nil {
		return err
	}
	hovered, err := b.Recolor("input", b.Hover(border), inputBg)
	if err != nil {
		return err
	}
	disabled, err := b.Recolor("input",
		b.Disabled(style.RoleBorder, surface),
		b.Disabled(style.RoleBackground, surface))
	if err != nil {
		return err
	}

	b.Element(render.ElementSpec{
		Name: styleName + ".field",
		Base: rest,
		StateOverrides: []render.StateOverride{
			{When: "disabled", Asset: disabled},
			{When: "focus !disabled", Asset: focused},
			{When: "hover !disabled", Asset: hovered},
		},
		Border:  render.Uniform(6),
		Padding: render.Insets{Left: 8, Top: 4, Right: 8, Bottom: 4},
		Sticky:  "nsew",
	})
	return nil
}

func fieldOptions(b *style.Builder) (style.Options, []style.StateSpec) {
	surface := b.Surface()
	opts := style.Options{
		"foreground":       b.Color("inputfg"),
		"background":       b.Color("inputbg"),
		"insertcolor":      b.Color("inputfg"),
		"selectbackground": b.Color("selectbg"),
		"selectforeground": b.Color("selectfg"),
	}
	specs := []style.StateSpec{
		{When: "disabled", Options: style.Options{
			"foreground": b.Disabled(style.RoleText, surface),
			"background": b.Disabled(style.RoleBackground, surface),
		}},
	}
	return opts, specs
}

// Entry builds the single-line text input.
func Entry(b *style.Builder, styleName, color string, _ style.Options) error {
	accentHex := accent(b, color)
	if err := fieldElements(b, styleName, accentHex); err != nil {
		return err
	}
	opts, specs := fieldOptions(b)
	b.Configure(styleName, opts)
	b.Map(styleName, specs)
	b.Layout(styleName, &style.LayoutNode{
		Element: styleName + ".field",
		Sticky:  "nsew",
		Children: []*style.LayoutNode{
			{Element: "Entry.textarea", Sticky: "nsew", Expand: true},
		},
	})
	return nil
}

// Combobox builds the dropdown input: the shared field chrome plus a
// chevron element that dims when disabled.
func Combobox(b *style.Builder, styleName, color string, _ style.Options) error {
	accentHex := accent(b, color)
	if err := fieldElements(b, styleName, accentHex); err != nil {
		return err
	}

	surface := b.Surface()
	arrow := b.Color("inputfg")
	chevron, err := b.Recolor("chevron", arrow)
	if err != nil {
		return err
	}
	chevronDis, err := b.Recolor("chevron", b.Disabled(style.RoleText, surface))
	if err != nil {
		return err
	}
	chevronActive, err := b.Recolor("chevron", accentHex)
	if err != nil {
		return err
	}
	b.Element(render.ElementSpec{
		Name: styleName + ".chevron",
		Base: chevron,
		StateOverrides: []render.StateOverride{
			{When: "disabled", Asset: chevronDis},
			{When: "pressed !disabled", Asset: chevronActive},
		},
		Padding: render.Insets{Left: 4, Right: 6},
		Sticky:  "e",
	})

	opts, specs := fieldOptions(b)
	b.Configure(styleName, opts)
	b.Map(styleName, specs)
	b.Layout(styleName, &style.LayoutNode{
		Element: styleName + ".field",
		Sticky:  "nsew",
		Children: []*style.LayoutNode{
			{Element: styleName + ".chevron", Side: "right", Sticky: "e"},
			{Element: "Combobox.textarea", Sticky: "nsew", Expand: true},
		},
	})
	return nil
}

// Spinbox builds the numeric input with stacked up/down chevrons.
func Spinbox(b *style.Builder, styleName, color string, _ style.Options) error {
	accentHex := accent(b, color)
	if err := fieldElements(b, styleName, accentHex); err != nil {
		return err
	}

	arrow := b.Color("inputfg")
	chevron, err := b.Recolor("chevron", arrow)
	if err != nil {
		return err
	}
	chevronDis, err := b.Recolor("chevron", b.Disabled(style.RoleText, b.Surface()))
	if err != nil {
		return err
	}
	for _, dir := range []string{".uparrow", ".downarrow"} {
		b.Element(render.ElementSpec{
			Name: styleName + dir,
			Base: chevron,
			StateOverrides: []render.StateOverride{
				{When: "disabled", Asset: chevronDis},
			},
			Padding: render.Insets{Left: 3, Right: 3},
			Sticky:  "e",
		})
	}

	opts, specs := fieldOptions(b)
	b.Configure(styleName, opts)
	b.Map(styleName, specs)
	b.Layout(styleName, &style.LayoutNode{
		Element: styleName + ".field",
		Sticky:  "nsew",
		Children: []*style.LayoutNode{
			{Element: styleName + ".uparrow", Side: "right", Sticky: "ne"},
			{Element: styleName + ".downarrow", Side: "right", Sticky: "se"},
			{Element: "Spinbox.textarea", Sticky: "nsew", Expand: true},
		},
	})
	return nil
}

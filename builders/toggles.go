package builders

import (
	"github.com/fynestrap/fynestrap/render"
	"github.com/fynestrap/fynestrap/style"
)

// Checkbutton builds the checkbox indicator element. The override order
// matters: disabled entries come first so a disabled+selected widget shows
// the muted mark, not the accent one.
func Checkbutton(b *style.Builder, styleName, color string, _ style.Options) error {
	accentHex := accent(b, color)
	surface := b.Surface()
	fg := b.Color("foreground")
	border := b.Color("border")
	if border == "" {
		border = fg
	}
	disBorder := b.Disabled(style.RoleBorder, surface)
	disFill := b.Disabled(style.RoleBackground, surface)

	off, err := b.Recolor("check", border, surface)
	if err != nil {
		return err
	}
	on, err := b.Recolor("check", accentHex, accentHex, b.OnColor(accentHex))
	if err != nil {
		return err
	}
	disOff, err := b.Recolor("check", disBorder, disFill)
	if err != nil {
		return err
	}
	disOn, err := b.Recolor("check", disBorder, disFill, disBorder)
	if err != nil {
		return err
	}

	b.Element(render.ElementSpec{
		Name: styleName + ".indicator",
		Base: off,
		StateOverrides: []render.StateOverride{
			{When: "disabled selected", Asset: disOn},
			{When: "disabled", Asset: disOff},
			{When: "selected !disabled", Asset: on},
		},
		Padding: render.Insets{Right: 6},
		Sticky:  "w",
	})

	b.Configure(styleName, style.Options{
		"foreground": fg,
		"background": surface,
	})
	b.Map(styleName, []style.StateSpec{
		{When: "disabled", Options: style.Options{"foreground": b.Disabled(style.RoleText, surface)}},
	})
	b.Layout(styleName, &style.LayoutNode{
		Element: "Checkbutton.padding",
		Sticky:  "nsew",
		Children: []*style.LayoutNode{
			{Element: styleName + ".indicator", Side: "left", Sticky: "w"},
			{Element: "Checkbutton.label", Side: "left", Expand: true},
		},
	})
	return nil
}

// Radiobutton builds the radio indicator element.
func Radiobutton(b *style.Builder, styleName, color string, _ style.Options) error {
	accentHex := accent(b, color)
	surface := b.Surface()
	fg := b.Color("foreground")
	border := b.Color("border")
	if border == "" {
		border = fg
	}
	disBorder := b.Disabled(style.RoleBorder, surface)
	disFill := b.Disabled(style.RoleBackground, surface)

	off, err := b.Recolor("radio", border, surface)
	if err != nil {
		return err
	}
	on, err := b.Recolor("radio", accentHex, surface, accentHex)
	if err != nil {
		return err
	}
	disOff, err := b.Recolor("radio", disBorder, disFill)
	if err != nil {
		return err
	}
	disOn, err := b.Recolor("radio", disBorder, disFill, disBorder)
	if err != nil {
		return err
	}

	b.Element(render.ElementSpec{
		Name: styleName + ".indicator",
		Base: off,
		StateOverrides: []render.StateOverride{
			{When: "disabled selected", Asset: disOn},
			{When: "disabled", Asset: disOff},
			{When: "selected !disabled", Asset: on},
		},
		Padding: render.Insets{Right: 6},
		Sticky:  "w",
	})

	b.Configure(styleName, style.Options{
		"foreground": fg,
		"background": surface,
	})
	b.Map(styleName, []style.StateSpec{
		{When: "disabled", Options: style.Options{"foreground": b.Disabled(style.RoleText, surface)}},
	})
	b.Layout(styleName, &style.LayoutNode{
		Element: "Radiobutton.padding",
		Sticky:  "nsew",
		Children: []*style.LayoutNode{
			{Element: styleName + ".indicator", Side: "left", Sticky: "w"},
			{Element: "Radiobutton.label", Side: "left", Expand: true},
		},
	})
	return nil
}

// Switch builds the sliding toggle: an accent pill with the handle parked
// right when selected.
func Switch(b *style.Builder, styleName, color string, _ style.Options) error {
	accentHex := accent(b, color)
	surface := b.Surface()
	fg := b.Color("foreground")
	trough := b.Color("border")
	if trough == "" {
		trough = b.Disabled(style.RoleBorder, surface)
	}
	handle := b.OnColor(accentHex)
	disBorder := b.Disabled(style.RoleBorder, surface)
	disFill := b.Disabled(style.RoleBackground, surface)

	off, err := b.Recolor("switch-off", trough, surface, trough)
	if err != nil {
		return err
	}
	on, err := b.Recolor("switch-on", accentHex, accentHex, handle)
	if err != nil {
		return err
	}
	disOff, err := b.Recolor("switch-off", disBorder, disFill, disBorder)
	if err != nil {
		return err
	}
	disOn, err := b.Recolor("switch-on", disBorder, disFill, disBorder)
	if err != nil {
		return err
	}

	b.Element(render.ElementSpec{
		Name: styleName + ".indicator",
		Base: off,
		StateOverrides: []render.StateOverride{
			{When: "disabled selected", Asset: disOn},
			{When: "disabled", Asset: disOff},
			{When: "selected !disabled", Asset: on},
		},
		Padding: render.Insets{Right: 8},
		Sticky:  "w",
	})

	b.Configure(styleName, style.Options{
		"foreground": fg,
		"background": surface,
	})
	b.Map(styleName, []style.StateSpec{
		{When: "disabled", Options: style.Options{"foreground": b.Disabled(style.RoleText, surface)}},
	})
	b.Layout(styleName, &style.LayoutNode{
		Element: "Switch.padding",
		Sticky:  "nsew",
		Children: []*style.LayoutNode{
			{Element: styleName + ".indicator", Side: "left", Sticky: "w"},
			{Element: "Switch.label", Side: "left", Expand: true},
		},
	})
	return nil
}

// Package builders contains the default style builder functions: one per
// (widget kind, variant) pair the engine styles out of the box. Each
// builder derives its colors from the active palette through the style
// façade, synthesizes the element images the widget needs, and registers
// exactly one style record.
//
// State overrides are always declared most-specific-first: the host engine
// selects the first matching entry, so "pressed !disabled" must precede a
// bare "pressed" and "disabled" belongs at the top.
package builders

import "github.com/fynestrap/fynestrap/style"

// RegisterAll installs the default builder set. Engines call this once via
// Engine.LoadBuilders; calling it against the same registry twice only
// re-registers the same functions (last registration wins).
func RegisterAll(reg *style.Registry) {
	reg.Register(style.KindButton, style.SolidVariant, SolidButton)
	reg.Register(style.KindButton, "outline", OutlineButton)
	reg.Register(style.KindButton, "link", LinkButton)

	reg.Register(style.KindCheckbutton, style.SolidVariant, Checkbutton)
	reg.Register(style.KindRadiobutton, style.SolidVariant, Radiobutton)
	reg.Register(style.KindSwitch, style.SolidVariant, Switch)

	reg.Register(style.KindEntry, style.SolidVariant, Entry)
	reg.Register(style.KindCombobox, style.SolidVariant, Combobox)
	reg.Register(style.KindSpinbox, style.SolidVariant, Spinbox)

	reg.Register(style.KindScrollbar, style.SolidVariant, Scrollbar)
	reg.Register(style.KindScrollbar, "round", RoundScrollbar)
	reg.Register(style.KindProgressbar, style.SolidVariant, Progressbar)
	reg.Register(style.KindProgressbar, "striped", StripedProgressbar)
	reg.Register(style.KindScale, style.SolidVariant, Scale)

	reg.Register(style.KindFrame, style.SolidVariant, Frame)
	reg.Register(style.KindLabel, style.SolidVariant, Label)
	reg.Register(style.KindLabel, "inverse", InverseLabel)
	reg.Register(style.KindSeparator, style.SolidVariant, Separator)
	reg.Register(style.KindNotebook, style.SolidVariant, Notebook)
	reg.Register(style.KindTreeview, style.SolidVariant, Treeview)
}

// accent resolves the builder's color token, falling back to the default
// color when the token names nothing in the palette.
func accent(b *style.Builder, color string) string {
	if hex := b.Color(color); hex != "" {
		return hex
	}
	return b.Color(style.DefaultColor)
}

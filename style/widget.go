// Package style is the style builder engine: it resolves semantic style
// tokens (e.g. "success-outline") into concrete generated style records,
// dispatching per-widget-kind builder functions that derive colors from the
// active palette and synthesize element images.
//
// Everything in this package assumes the single UI thread; nothing locks.
package style

import "strings"

// WidgetKind is the closed set of widget classes the engine knows how to
// style. The registry is keyed on kinds rather than free-form class name
// strings so builder wiring is checked at compile time.
type WidgetKind int

const (
	KindUnknown WidgetKind = iota
	KindButton
	KindCheckbutton
	KindRadiobutton
	KindSwitch
	KindEntry
	KindCombobox
	KindSpinbox
	KindScrollbar
	KindProgressbar
	KindScale
	KindFrame
	KindLabel
	KindSeparator
	KindNotebook
	KindTreeview
)

var kindNames = map[WidgetKind]string{
	KindButton:      "Button",
	KindCheckbutton: "Checkbutton",
	KindRadiobutton: "Radiobutton",
	KindSwitch:      "Switch",
	KindEntry:       "Entry",
	KindCombobox:    "Combobox",
	KindSpinbox:     "Spinbox",
	KindScrollbar:   "Scrollbar",
	KindProgressbar: "Progressbar",
	KindScale:       "Scale",
	KindFrame:       "Frame",
	KindLabel:       "Label",
	KindSeparator:   "Separator",
	KindNotebook:    "Notebook",
	KindTreeview:    "Treeview",
}

func (k WidgetKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ParseKind maps a toolkit-reported class name onto a kind. Matching is
// case-insensitive and tolerates toolkit prefixes ("TButton" parses as
// Button). The exact name is tried before the prefix-stripped one so kinds
// whose names start with T (Treeview) are never mangled. Unrecognized names
// yield KindUnknown, which no builder ever registers for, so styling such
// widgets is a silent no-op.
func ParseKind(className string) WidgetKind {
	lower := strings.ToLower(strings.TrimSpace(className))
	trimmed := strings.TrimPrefix(lower, "t")
	for kind, name := range kindNames {
		n := strings.ToLower(name)
		if lower == n || trimmed == n {
			return kind
		}
	}
	return KindUnknown
}

// StateSet is the set of state flags a widget currently has
// (e.g. "pressed", "disabled", "focus", "hover", "selected").
type StateSet map[string]struct{}

// NewStateSet builds a set from flag names.
func NewStateSet(flags ...string) StateSet {
	s := make(StateSet, len(flags))
	for _, f := range flags {
		s[f] = struct{}{}
	}
	return s
}

// Has reports whether the flag is set. Usable directly as the predicate for
// render.SelectAsset.
func (s StateSet) Has(flag string) bool {
	_, ok := s[flag]
	return ok
}

// Styleable is the boundary the engine styles widgets through. Concrete
// widget types are out of scope here; anything exposing its kind, a way to
// apply a generated style name, and its current state can be styled.
type Styleable interface {
	Kind() WidgetKind
	ApplyStyle(name string)
	CurrentState() StateSet
}

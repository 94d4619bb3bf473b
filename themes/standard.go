package themes

// Built-in themes. Each carries the full shade vocabulary the default
// builders rely on (primary..dark plus fg/bg) and the semantic aliases the
// engine resolves surfaces and selections through.

func standardSemantic() map[string]string {
	return map[string]string{
		"foreground": "fg",
		"background": "bg",
		"selectbg":   "primary",
		"selectfg":   "white",
		"border":     "secondary",
		"inputfg":    "fg",
		"inputbg":    "bg",
		"active":     "light",
	}
}

// Standard returns the built-in theme set: two light themes (flatly, cosmo)
// and two dark themes (darkly, solar).
func Standard() []Definition {
	return []Definition{
		{
			Name: "flatly",
			Mode: Light,
			Shades: map[string]string{
				"primary":   "#2c3e50",
				"secondary": "#95a5a6",
				"success":   "#18bc9c",
				"info":      "#3498db",
				"warning":   "#f39c12",
				"danger":    "#e74c3c",
				"light":     "#ecf0f1",
				"dark":      "#7b8a8b",
				"fg":        "#212529",
				"bg":        "#ffffff",
			},
			Semantic: standardSemantic(),
		},
		{
			Name: "cosmo",
			Mode: Light,
			Shades: map[string]string{
				"primary":   "#2780e3",
				"secondary": "#7e8081",
				"success":   "#3fb618",
				"info":      "#9954bb",
				"warning":   "#ff7518",
				"danger":    "#ff0039",
				"light":     "#f8f9fa",
				"dark":      "#373a3c",
				"fg":        "#373a3c",
				"bg":        "#ffffff",
			},
			Semantic: standardSemantic(),
		},
		{
			Name: "darkly",
			Mode: Dark,
			Shades: map[string]string{
				"primary":   "#375a7f",
				"secondary": "#444444",
				"success":   "#00bc8c",
				"info":      "#3498db",
				"warning":   "#f39c12",
				"danger":    "#e74c3c",
				"light":     "#adb5bd",
				"dark":      "#303030",
				"fg":        "#ffffff",
				"bg":        "#222222",
			},
			Semantic: standardSemantic(),
		},
		{
			Name: "solar",
			Mode: Dark,
			Shades: map[string]string{
				"primary":   "#b58900",
				"secondary": "#586e75",
				"success":   "#859900",
				"info":      "#268bd2",
				"warning":   "#cb4b16",
				"danger":    "#dc322f",
				"light":     "#93a1a1",
				"dark":      "#073642",
				"fg":        "#fdf6e3",
				"bg":        "#002b36",
			},
			Semantic: standardSemantic(),
		},
	}
}

// RegisterStandard registers every built-in theme with the provider.
func RegisterStandard(pr *Provider) error {
	for _, def := range Standard() {
		if err := pr.Register(def); err != nil {
			return err
		}
	}
	return nil
}

package style

import (
	"strconv"
	"strings"
)

// ColorToken is the parsed form of the color token grammar
// "head[mod|mod|...]": a palette key plus optional modifiers: an explicit
// spectrum level (100..900), the literal "subtle", or a signed relative
// elevation such as "+2" or "-1".
type ColorToken struct {
	Raw       string
	Head      string
	Level     int // 0 when no explicit level modifier
	Subtle    bool
	Elevation int // 0 when no elevation modifier

	// fallback marks a malformed token; resolution degrades to a direct
	// palette lookup of the raw string.
	fallback bool
}

// Fallback reports whether the token failed the grammar and should resolve
// by direct key lookup.
func (t ColorToken) Fallback() bool { return t.fallback }

// ParseColorToken parses the token grammar. Parsing is total: no input is
// an error, malformed input just yields a fallback token.
func ParseColorToken(token string) ColorToken {
	tok := ColorToken{Raw: token}
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		tok.fallback = true
		return tok
	}

	open := strings.IndexByte(trimmed, '[')
	if open < 0 {
		if strings.ContainsAny(trimmed, "]|") {
			tok.fallback = true
			return tok
		}
		tok.Head = trimmed
		return tok
	}
	// A bracket must open after a non-empty head and close at the very end.
	if open == 0 || !strings.HasSuffix(trimmed, "]") {
		tok.fallback = true
		return tok
	}
	tok.Head = trimmed[:open]
	mods := trimmed[open+1 : len(trimmed)-1]
	if mods == "" {
		tok.fallback = true
		return tok
	}

	for _, mod := range strings.Split(mods, "|") {
		switch {
		case mod == "subtle":
			tok.Subtle = true
		case strings.HasPrefix(mod, "+") || strings.HasPrefix(mod, "-"):
			n, err := strconv.Atoi(mod)
			if err != nil {
				tok.fallback = true
				return tok
			}
			tok.Elevation = n
		default:
			n, err := strconv.Atoi(mod)
			if err != nil || n < 100 || n > 900 {
				tok.fallback = true
				return tok
			}
			tok.Level = n
		}
	}
	return tok
}

// DefaultColor is the color token used when a style token names no color
// at all (e.g. plain "outline").
const DefaultColor = "primary"

// SolidVariant is the implicit variant of a bare color token.
const SolidVariant = "solid"

// variants is the fixed variant vocabulary style tokens are scanned
// against.
var variants = map[string]bool{
	"solid":      true,
	"outline":    true,
	"link":       true,
	"ghost":      true,
	"round":      true,
	"square":     true,
	"striped":    true,
	"inverse":    true,
	"toolbutton": true,
}

// KnownVariant reports whether word is in the variant vocabulary.
func KnownVariant(word string) bool { return variants[word] }

// ParseStyleToken splits a widget style token such as "success-outline"
// into its color token and variant. Segments are scanned against the fixed
// variant vocabulary; every segment that is not a variant word belongs to
// the color token. Either part may be omitted: "outline" styles the default
// color, "success" uses the solid variant.
func ParseStyleToken(token string) (color, variant string) {
	variant = SolidVariant
	var colorParts []string
	for _, seg := range strings.Split(strings.TrimSpace(token), "-") {
		if seg == "" {
			continue
		}
		if variants[seg] {
			variant = seg
			continue
		}
		colorParts = append(colorParts, seg)
	}
	color = strings.Join(colorParts, "-")
	if color == "" {
		color = DefaultColor
	}
	return color, variant
}

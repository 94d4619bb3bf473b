package render

import "strings"

// Insets are 9-slice border or padding widths in pixels.
type Insets struct {
	Left, Top, Right, Bottom int
}

// Uniform builds equal insets on all four sides.
func Uniform(n int) Insets {
	return Insets{Left: n, Top: n, Right: n, Bottom: n}
}

// StateOverride pairs a state expression with the asset shown while the
// expression holds. Overrides are evaluated strictly in declaration order
// and the first satisfied entry wins, so callers must list the most
// specific expressions first; a broad expression declared before a narrower
// one silently shadows it.
type StateOverride struct {
	When  string
	Asset *Asset
}

// ElementSpec describes one named image element: its resting asset, ordered
// per-state overrides, and the 9-slice geometry the host engine stretches
// it with.
type ElementSpec struct {
	Name           string
	Base           *Asset
	StateOverrides []StateOverride
	Border         Insets
	Padding        Insets
	Width, Height  int
	Sticky         string
}

// StateExpr is a parsed state expression: a space-separated set of flags,
// each optionally negated with '!'. The empty expression matches every
// state.
type StateExpr struct {
	flags []stateFlag
}

type stateFlag struct {
	name    string
	negated bool
}

// ParseStateExpr parses an expression such as "pressed !disabled". Parsing
// is total; empty or whitespace-only input yields the match-all expression.
func ParseStateExpr(expr string) StateExpr {
	fields := strings.Fields(expr)
	if len(fields) == 0 {
		return StateExpr{}
	}
	flags := make([]stateFlag, 0, len(fields))
	for _, f := range fields {
		if name, ok := strings.CutPrefix(f, "!"); ok {
			flags = append(flags, stateFlag{name: name, negated: true})
		} else {
			flags = append(flags, stateFlag{name: f})
		}
	}
	return StateExpr{flags: flags}
}

// Match reports whether the widget state satisfies the expression. has
// reports whether a single state flag is set.
func (e StateExpr) Match(has func(string) bool) bool {
	for _, f := range e.flags {
		if has(f.name) == f.negated {
			return false
		}
	}
	return true
}

// SelectAsset resolves which asset an element shows for the given widget
// state: the first override whose expression matches, else the base asset.
func SelectAsset(base *Asset, overrides []StateOverride, has func(string) bool) *Asset {
	for _, o := range overrides {
		if ParseStateExpr(o.When).Match(has) {
			return o.Asset
		}
	}
	return base
}

package builders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fynestrap/fynestrap/render"
	"github.com/fynestrap/fynestrap/style"
	"github.com/fynestrap/fynestrap/themes"
)

type widget struct {
	kind    style.WidgetKind
	state   style.StateSet
	applied []string
}

func (w *widget) Kind() style.WidgetKind       { return w.kind }
func (w *widget) ApplyStyle(name string)       { w.applied = append(w.applied, name) }
func (w *widget) CurrentState() style.StateSet { return w.state }

func newEngine(t *testing.T, theme string) (*style.Engine, *style.RecordStore) {
	t.Helper()
	store := style.NewRecordStore()
	e := style.NewEngine(store)
	e.LoadBuilders(RegisterAll)
	require.NoError(t, themes.RegisterStandard(e.Provider))
	require.NoError(t, e.Provider.Use(theme))
	return e, store
}

func TestEveryDefaultBuilderProducesARecord(t *testing.T) {
	e, store := newEngine(t, "flatly")

	cases := []struct {
		kind  style.WidgetKind
		token string
		want  string
	}{
		{style.KindButton, "success", "success.Button"},
		{style.KindButton, "danger-outline", "danger.outline.Button"},
		{style.KindButton, "info-link", "info.link.Button"},
		{style.KindCheckbutton, "primary", "primary.Checkbutton"},
		{style.KindRadiobutton, "warning", "warning.Radiobutton"},
		{style.KindSwitch, "success", "success.Switch"},
		{style.KindEntry, "primary", "primary.Entry"},
		{style.KindCombobox, "info", "info.Combobox"},
		{style.KindSpinbox, "primary", "primary.Spinbox"},
		{style.KindScrollbar, "secondary", "secondary.Scrollbar"},
		{style.KindScrollbar, "secondary-round", "secondary.round.Scrollbar"},
		{style.KindProgressbar, "success", "success.Progressbar"},
		{style.KindProgressbar, "warning-striped", "warning.striped.Progressbar"},
		{style.KindScale, "info", "info.Scale"},
		{style.KindFrame, "light", "light.Frame"},
		{style.KindLabel, "danger", "danger.Label"},
		{style.KindLabel, "danger-inverse", "danger.inverse.Label"},
		{style.KindSeparator, "secondary", "secondary.Separator"},
		{style.KindNotebook, "primary", "primary.Notebook"},
		{style.KindTreeview, "primary", "primary.Treeview"},
	}
	for _, tc := range cases {
		w := &widget{kind: tc.kind}
		name, err := e.ResolveStyle(w, tc.token)
		require.NoError(t, err, tc.token)
		assert.Equal(t, tc.want, name, tc.token)

		rec, ok := store.Lookup(name)
		require.True(t, ok, "no record for %s", name)
		assert.NotEmpty(t, rec.Configure, "empty configure for %s", name)
	}
}

func TestSolidButtonRecordContents(t *testing.T) {
	e, store := newEngine(t, "flatly")
	w := &widget{kind: style.KindButton}

	_, err := e.ResolveStyle(w, "success")
	require.NoError(t, err)

	rec, ok := store.Lookup("success.Button")
	require.True(t, ok)
	// flatly success is #18bc9c; white text carries the better contrast.
	assert.Equal(t, "#18bc9c", rec.Configure["background"])
	assert.Equal(t, "#ffffff", rec.Configure["foreground"])
	require.Len(t, rec.Map, 3)
	assert.Equal(t, "disabled", rec.Map[0].When)
	assert.Equal(t, "pressed !disabled", rec.Map[1].When)
	assert.Equal(t, "hover !disabled", rec.Map[2].When)
	require.NotNil(t, rec.Layout)
	assert.Equal(t, "success.Button.border", rec.Layout.Element)

	el, ok := store.Element("success.Button.border")
	require.True(t, ok)
	assert.Equal(t, render.Uniform(6), el.Border)
}

func TestCheckbuttonIndicatorStatePrecedence(t *testing.T) {
	e, store := newEngine(t, "flatly")
	w := &widget{kind: style.KindCheckbutton}

	_, err := e.ResolveStyle(w, "primary")
	require.NoError(t, err)

	el, ok := store.Element("primary.Checkbutton.indicator")
	require.True(t, ok)
	require.Len(t, el.StateOverrides, 3)

	selected := style.NewStateSet("selected")
	disabledSelected := style.NewStateSet("disabled", "selected")
	idle := style.NewStateSet()

	onAsset := el.StateOverrides[2].Asset
	disOnAsset := el.StateOverrides[0].Asset

	assert.Same(t, onAsset, render.SelectAsset(el.Base, el.StateOverrides, selected.Has))
	assert.Same(t, disOnAsset, render.SelectAsset(el.Base, el.StateOverrides, disabledSelected.Has),
		"disabled+selected must stop at the first, most specific entry")
	assert.Same(t, el.Base, render.SelectAsset(el.Base, el.StateOverrides, idle.Has))
}

func TestOutlineButtonRestsOnSurface(t *testing.T) {
	e, store := newEngine(t, "darkly")
	w := &widget{kind: style.KindButton}

	_, err := e.ResolveStyle(w, "info-outline")
	require.NoError(t, err)

	rec, ok := store.Lookup("info.outline.Button")
	require.True(t, ok)
	// darkly background is #222222; the resting outline button shows it.
	assert.Equal(t, "#222222", rec.Configure["background"])
	assert.Equal(t, "#3498db", rec.Configure["foreground"])
}

func TestBuildersShareRecoloredAssets(t *testing.T) {
	e, _ := newEngine(t, "flatly")

	// Entry, Combobox and Spinbox share the same resting field chrome, so
	// the raster for it must be drawn once and reused.
	for _, tc := range []struct {
		kind  style.WidgetKind
		token string
	}{
		{style.KindEntry, "primary"},
		{style.KindCombobox, "primary"},
		{style.KindSpinbox, "primary"},
	} {
		_, err := e.ResolveStyle(&widget{kind: tc.kind}, tc.token)
		require.NoError(t, err)
	}

	raster := e.Renderer.Rasterizations()
	_, err := e.ResolveStyle(&widget{kind: style.KindEntry}, "success")
	require.NoError(t, err)
	// Only the accent-keyed focus ring differs for a new color; the rest
	// of the field chrome comes from the memo.
	assert.Equal(t, raster+1, e.Renderer.Rasterizations())
}

func TestRegisterAllIsStable(t *testing.T) {
	reg := style.NewRegistry()
	RegisterAll(reg)
	n := reg.Len()
	RegisterAll(reg)
	assert.Equal(t, n, reg.Len(), "re-registration replaces, never grows")
}

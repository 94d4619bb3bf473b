package style

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fynestrap/fynestrap/render"
	"github.com/fynestrap/fynestrap/themes"
)

type fakeWidget struct {
	kind    WidgetKind
	state   StateSet
	applied []string
}

func (f *fakeWidget) Kind() WidgetKind       { return f.kind }
func (f *fakeWidget) ApplyStyle(name string) { f.applied = append(f.applied, name) }
func (f *fakeWidget) CurrentState() StateSet { return f.state }

// testButtonBuilder is a minimal builder: one element image and one style
// record per generated name. builds counts invocations.
func testButtonBuilder(builds *int) BuilderFn {
	return func(b *Builder, styleName, color string, _ Options) error {
		*builds++
		bg := b.Color(color)
		if bg == "" {
			bg = b.Color(DefaultColor)
		}
		asset, err := b.Recolor("input", bg, bg)
		if err != nil {
			return err
		}
		b.Element(render.ElementSpec{
			Name:   styleName + ".field",
			Base:   asset,
			Border: render.Uniform(5),
		})
		b.Configure(styleName, Options{
			"background": bg,
			"foreground": b.OnColor(bg),
		})
		b.Map(styleName, []StateSpec{
			{When: "disabled", Options: Options{"background": b.Disabled(RoleBackground, b.Surface())}},
			{When: "pressed !disabled", Options: Options{"background": b.Active(bg)}},
			{When: "hover !disabled", Options: Options{"background": b.Hover(bg)}},
		})
		return nil
	}
}

func newTestEngine(t *testing.T) (*Engine, *RecordStore, *int) {
	t.Helper()
	store := NewRecordStore()
	e := NewEngine(store)
	builds := new(int)
	e.LoadBuilders(func(r *Registry) {
		r.Register(KindButton, SolidVariant, testButtonBuilder(builds))
		r.Register(KindButton, "outline", testButtonBuilder(builds))
	})
	require.NoError(t, themes.RegisterStandard(e.Provider))
	require.NoError(t, e.Provider.Use("flatly"))
	return e, store, builds
}

func TestResolveStyleIdempotence(t *testing.T) {
	e, store, builds := newTestEngine(t)
	w := &fakeWidget{kind: KindButton}

	name1, err := e.ResolveStyle(w, "success")
	require.NoError(t, err)
	name2, err := e.ResolveStyle(w, "success")
	require.NoError(t, err)

	assert.Equal(t, "success.Button", name1)
	assert.Equal(t, name1, name2, "identical keys must yield identical names")
	assert.Equal(t, 1, *builds, "builder must run at most once per key")
	assert.Equal(t, 1, store.ImageCreates(), "image primitive created exactly once")
	assert.Equal(t, []string{name1, name1}, w.applied)

	// A second widget with the same key reuses the record untouched.
	w2 := &fakeWidget{kind: KindButton}
	name3, err := e.ResolveStyle(w2, "success")
	require.NoError(t, err)
	assert.Equal(t, name1, name3)
	assert.Equal(t, 1, *builds)

	// A different variant is a distinct key.
	_, err = e.ResolveStyle(w, "success-outline")
	require.NoError(t, err)
	assert.Equal(t, 2, *builds)
	assert.True(t, store.StyleExists("success.outline.Button"))
}

func TestResolveStyleEmptyTokenSkips(t *testing.T) {
	e, store, builds := newTestEngine(t)
	w := &fakeWidget{kind: KindButton}

	for _, token := range []string{"", "   "} {
		name, err := e.ResolveStyle(w, token)
		require.NoError(t, err)
		assert.Equal(t, "", name)
	}
	assert.Empty(t, w.applied, "empty token must leave the widget untouched")
	assert.Equal(t, 0, *builds)
	assert.Equal(t, 0, store.Len())
}

func TestResolveStyleMissingBuilderIsNoop(t *testing.T) {
	e, _, _ := newTestEngine(t)
	w := &fakeWidget{kind: KindTreeview}

	name, err := e.ResolveStyle(w, "info")
	require.NoError(t, err, "missing builder must not be an error")
	assert.Equal(t, "info.Treeview", name)
	assert.Equal(t, []string{"info.Treeview"}, w.applied)
}

func TestResolveStyleWithoutActiveTheme(t *testing.T) {
	e := NewEngine(NewRecordStore())
	_, err := e.ResolveStyle(&fakeWidget{kind: KindButton}, "primary")
	assert.Error(t, err)
}

func TestThemeSwitchPropagation(t *testing.T) {
	e, _, _ := newTestEngine(t)

	var order []string
	widgets := make([]*StyledWidget, 0, 3)
	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("w%d", i)
		target := &orderedWidget{fakeWidget: fakeWidget{kind: KindButton}, id: id, order: &order}
		sw := e.NewStyledWidget(target)
		_, err := sw.SetStyle("primary")
		require.NoError(t, err)
		widgets = append(widgets, sw)
	}
	order = nil // drop the initial applications

	require.NoError(t, e.Provider.Use("darkly"))
	require.NoError(t, e.Provider.Use("flatly"))

	// Each subscriber rebuilt exactly twice, in subscription order.
	assert.Equal(t, []string{"w0", "w1", "w2", "w0", "w1", "w2"}, order)

	for _, sw := range widgets {
		sw.Close()
	}
	assert.Equal(t, 0, e.Publisher.Len(themes.ChannelThemeChanged),
		"closed widgets must leave no subscriptions behind")
}

type orderedWidget struct {
	fakeWidget
	id    string
	order *[]string
}

func (o *orderedWidget) ApplyStyle(name string) {
	*o.order = append(*o.order, o.id)
	o.fakeWidget.ApplyStyle(name)
}

func TestThemeSwitchRebuildsRecords(t *testing.T) {
	e, store, builds := newTestEngine(t)
	sw := e.NewStyledWidget(&fakeWidget{kind: KindButton})
	defer sw.Close()

	_, err := sw.SetStyle("primary")
	require.NoError(t, err)
	require.Equal(t, 1, *builds)

	rec1, ok := store.Lookup("primary.Button")
	require.True(t, ok)
	flatlyBg := rec1.Configure["background"]

	require.NoError(t, e.Provider.Use("darkly"))

	assert.Equal(t, 2, *builds, "theme switch must rebuild, not recolor")
	rec2, ok := store.Lookup("primary.Button")
	require.True(t, ok)
	assert.NotEqual(t, flatlyBg, rec2.Configure["background"],
		"rebuilt record must reflect the new palette")
}

func TestThemeSwitchReleasesStaleAssets(t *testing.T) {
	e, _, _ := newTestEngine(t)
	sw := e.NewStyledWidget(&fakeWidget{kind: KindButton})
	defer sw.Close()

	_, err := sw.SetStyle("primary")
	require.NoError(t, err)
	require.Equal(t, 1, e.Renderer.AssetCount())

	require.NoError(t, e.Provider.Use("darkly"))

	// The rebuild under the new palette re-adopted the element; nothing
	// from the flatly epoch survives.
	assert.Equal(t, 1, e.Renderer.AssetCount())
	assert.Equal(t, e.Provider.Epoch(), e.Renderer.Epoch())
}

func TestLoadBuildersRunsOnce(t *testing.T) {
	e := NewEngine(NewRecordStore())
	loads := 0
	for i := 0; i < 3; i++ {
		e.LoadBuilders(func(*Registry) { loads++ })
	}
	assert.Equal(t, 1, loads)
}

func TestRegistryLastRegistrationWins(t *testing.T) {
	r := NewRegistry()
	r.Register(KindButton, "solid", func(b *Builder, n, c string, o Options) error { return fmt.Errorf("first") })
	r.Register(KindButton, "solid", func(b *Builder, n, c string, o Options) error { return nil })

	assert.Equal(t, 1, r.Len())
	fn, ok := r.Lookup(KindButton, "solid")
	require.True(t, ok)
	assert.NoError(t, fn(nil, "", "", nil), "the later registration must win")
}

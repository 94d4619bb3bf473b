// Stylepad — theme and style engine demo
//
// A small desktop gallery that exercises the style engine: it registers
// the standard themes, styles a set of demo widgets through semantic
// tokens, switches themes live and exports the active palette as a PDF
// swatch sheet or an XLSX spectrum workbook.
//
// Build:
//   go build -o stylepad ./cmd/stylepad

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/fynestrap/fynestrap/builders"
	"github.com/fynestrap/fynestrap/export"
	"github.com/fynestrap/fynestrap/fynetheme"
	"github.com/fynestrap/fynestrap/style"
	"github.com/fynestrap/fynestrap/themes"
)

func main() {
	application := app.NewWithID("com.fynestrap.stylepad")
	window := application.NewWindow("Stylepad — Theme Gallery")

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	engine := style.NewEngine(style.NewRecordStore())
	engine.Logger = logger
	engine.Provider.Logger = logger
	engine.LoadBuilders(builders.RegisterAll)
	if err := themes.RegisterStandard(engine.Provider); err != nil {
		logger.Fatal().Err(err).Msg("register standard themes")
	}
	if err := engine.Provider.Use("flatly"); err != nil {
		logger.Fatal().Err(err).Msg("activate initial theme")
	}
	fynetheme.Apply(application, engine)

	ui := newGallery(window, engine)
	window.SetMainMenu(ui.buildMenus(application))
	window.SetContent(ui.build())
	window.Resize(fyne.NewSize(900, 640))
	window.CenterOnScreen()
	window.Show()

	application.Run()
}

// gallery holds the demo window state: the engine, the styled demo
// widgets and their wrappers so theme switches rebuild them.
type gallery struct {
	window  fyne.Window
	engine  *style.Engine
	wrapped []*style.StyledWidget
}

func newGallery(window fyne.Window, engine *style.Engine) *gallery {
	return &gallery{window: window, engine: engine}
}

// buildMenus creates the native menu bar.
func (g *gallery) buildMenus(application fyne.App) *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export Palette PDF...", func() {
			g.exportPalette("pdf")
		}),
		fyne.NewMenuItem("Export Spectrum XLSX...", func() {
			g.exportPalette("xlsx")
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			application.Quit()
		}),
	)

	themeItems := make([]*fyne.MenuItem, 0, 4)
	for _, name := range g.engine.Provider.Names() {
		themeItems = append(themeItems, fyne.NewMenuItem(name, func() {
			g.useTheme(name)
		}))
	}
	themeMenu := fyne.NewMenu("Theme", themeItems...)

	return fyne.NewMainMenu(fileMenu, themeMenu)
}

// build assembles the gallery content: a theme selector on top and one
// row of demo widgets per semantic color.
func (g *gallery) build() fyne.CanvasObject {
	names := g.engine.Provider.Names()
	selector := widget.NewSelect(names, func(name string) {
		g.useTheme(name)
	})
	selector.SetSelected(g.engine.Provider.Active().Name())

	rows := []fyne.CanvasObject{
		container.NewHBox(widget.NewLabel("Theme:"), selector),
		widget.NewSeparator(),
	}
	for _, token := range []string{"primary", "secondary", "success", "info", "warning", "danger"} {
		rows = append(rows, g.styleRow(token))
	}
	return container.NewVScroll(container.NewVBox(rows...))
}

// styleRow styles one button per variant under the given color token and
// shows the generated style name next to each.
func (g *gallery) styleRow(color string) fyne.CanvasObject {
	row := container.NewHBox(widget.NewLabelWithStyle(color, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	for _, token := range []string{color, color + "-outline", color + "-link"} {
		button := widget.NewButton(token, nil)
		demo := &demoWidget{kind: style.KindButton}
		wrapper := g.engine.NewStyledWidget(demo)
		if _, err := wrapper.SetStyle(token); err != nil {
			g.engine.Logger.Warn().Err(err).Str("token", token).Msg("style demo widget")
		}
		g.wrapped = append(g.wrapped, wrapper)
		row.Add(container.NewVBox(button, widget.NewLabel(demo.styleName)))
	}
	return row
}

func (g *gallery) useTheme(name string) {
	if err := g.engine.Provider.Use(name); err != nil {
		dialog.ShowError(err, g.window)
	}
}

// exportPalette writes the active palette to the user's chosen location.
func (g *gallery) exportPalette(format string) {
	palette := g.engine.Provider.Active()
	if palette == nil {
		dialog.ShowError(fmt.Errorf("no active theme"), g.window)
		return
	}
	fileDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		var exportErr error
		switch format {
		case "pdf":
			exportErr = export.WritePaletteSheet(path, palette)
		default:
			exportErr = export.WriteSpectrumWorkbook(path, palette)
		}
		if exportErr != nil {
			dialog.ShowError(exportErr, g.window)
			return
		}
		dialog.ShowInformation("Export Complete", "Wrote "+filepath.Base(path), g.window)
	}, g.window)
	fileDialog.SetFileName(palette.Name() + "." + format)
	fileDialog.Show()
}

// demoWidget is the gallery's Styleable stand-in. It records the applied
// style name so the gallery can display what the engine generated.
type demoWidget struct {
	kind      style.WidgetKind
	state     style.StateSet
	styleName string
}

func (w *demoWidget) Kind() style.WidgetKind { return w.kind }

func (w *demoWidget) ApplyStyle(name string) { w.styleName = name }

func (w *demoWidget) CurrentState() style.StateSet { return w.state }

// Package export writes palette reference documents: a PDF swatch sheet
// for design review and an XLSX spectrum workbook for handoff.
package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/fynestrap/fynestrap/colorutil"
	"github.com/fynestrap/fynestrap/themes"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 14.0
	rowHeight    = 12.0
	labelWidth   = 30.0
	swatchGap    = 1.0
)

// Spectrum columns per shade row: base plus the nine levels.
var spectrumLevels = []int{100, 200, 300, 400, 500, 600, 700, 800, 900}

// WritePaletteSheet renders the palette as a one-page-per-section PDF: a
// spectrum grid for every shade followed by a semantic alias table. Swatch
// labels are contrast-picked so the hex stays readable on its own color.
func WritePaletteSheet(path string, p *themes.Palette) error {
	if p == nil {
		return fmt.Errorf("export: nil palette")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddPage()

	renderHeader(pdf, p)
	y := marginTop + headerHeight
	for _, shade := range p.Shades() {
		y = renderSpectrumRow(pdf, p, shade, y)
	}
	renderAliasTable(pdf, p, y+6)

	return pdf.OutputFileAndClose(path)
}

func renderHeader(pdf *fpdf.Fpdf, p *themes.Palette) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(0, 8, fmt.Sprintf("Theme: %s (%s)", p.Name(), p.Mode()), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetX(marginLeft)
	pdf.CellFormat(0, 5, "Shade spectra 100-900 and semantic aliases", "", 1, "L", false, 0, "")
}

// renderSpectrumRow draws one shade's nine swatches and returns the next
// row's y position.
func renderSpectrumRow(pdf *fpdf.Fpdf, p *themes.Palette, shade string, y float64) float64 {
	if y+rowHeight > pageHeight-marginBottom {
		pdf.AddPage()
		y = marginTop
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(labelWidth, rowHeight, shade, "", 0, "L", false, 0, "")

	swatchWidth := (pageWidth - 2*marginLeft - labelWidth - swatchGap*float64(len(spectrumLevels)-1)) / float64(len(spectrumLevels))
	x := marginLeft + labelWidth
	pdf.SetFont("Helvetica", "", 6)
	for _, level := range spectrumLevels {
		c, ok := p.Level(shade, level)
		if !ok {
			continue
		}
		drawSwatch(pdf, x, y, swatchWidth, rowHeight, c, fmt.Sprintf("%d", level))
		x += swatchWidth + swatchGap
	}
	return y + rowHeight + swatchGap
}

func renderAliasTable(pdf *fpdf.Fpdf, p *themes.Palette, y float64) {
	if y+rowHeight > pageHeight-marginBottom {
		pdf.AddPage()
		y = marginTop
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(0, 7, "Semantic aliases", "", 1, "L", false, 0, "")
	y += 8

	pdf.SetFont("Helvetica", "", 8)
	for _, alias := range p.Aliases() {
		c, ok := p.Lookup(alias)
		if !ok {
			continue
		}
		if y+8 > pageHeight-marginBottom {
			pdf.AddPage()
			y = marginTop
		}
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(labelWidth, 7, alias, "", 0, "L", false, 0, "")
		drawSwatch(pdf, marginLeft+labelWidth, y, 50, 7, c, c.Hex())
		y += 8
	}
}

// drawSwatch fills a rectangle with the color and prints the label in the
// best-contrast text color.
func drawSwatch(pdf *fpdf.Fpdf, x, y, w, h float64, c colorutil.Color, label string) {
	pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	pdf.Rect(x, y, w, h, "F")

	text := colorutil.BestForeground(c, []colorutil.Color{colorutil.Black, colorutil.White})
	pdf.SetTextColor(int(text.R), int(text.G), int(text.B))
	pdf.SetXY(x, y)
	pdf.CellFormat(w, h, label, "", 0, "C", false, 0, "")
}

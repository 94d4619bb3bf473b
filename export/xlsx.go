package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/fynestrap/fynestrap/colorutil"
	"github.com/fynestrap/fynestrap/themes"
)

const spectrumSheet = "Spectrum"

// WriteSpectrumWorkbook writes the palette as an XLSX workbook. The sheet
// holds one row per shade with a column per level, each cell filled with
// its color and showing the hex value in contrast-picked text. Semantic
// aliases follow below the grid.
func WriteSpectrumWorkbook(path string, p *themes.Palette) error {
	if p == nil {
		return fmt.Errorf("export: nil palette")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", spectrumSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetColWidth(spectrumSheet, "A", "A", 14); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(1 + len(spectrumLevels))
	if err != nil {
		return fmt.Errorf("column name: %w", err)
	}
	if err := f.SetColWidth(spectrumSheet, "B", lastCol, 10); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if err := f.SetCellValue(spectrumSheet, "A1", fmt.Sprintf("%s (%s)", p.Name(), p.Mode())); err != nil {
		return fmt.Errorf("write title: %w", err)
	}
	for i, level := range spectrumLevels {
		cell, err := excelize.CoordinatesToCellName(i+2, 2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(spectrumSheet, cell, level); err != nil {
			return fmt.Errorf("write level header: %w", err)
		}
	}

	row := 3
	for _, shade := range p.Shades() {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(spectrumSheet, cell, shade); err != nil {
			return fmt.Errorf("write shade name: %w", err)
		}
		for i, level := range spectrumLevels {
			c, ok := p.Level(shade, level)
			if !ok {
				continue
			}
			if err := writeSwatchCell(f, i+2, row, c, c.Hex()); err != nil {
				return err
			}
		}
		row++
	}

	row++
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellValue(spectrumSheet, cell, "Aliases"); err != nil {
		return fmt.Errorf("write alias header: %w", err)
	}
	row++
	for _, alias := range p.Aliases() {
		c, ok := p.Lookup(alias)
		if !ok {
			continue
		}
		nameCell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(spectrumSheet, nameCell, alias); err != nil {
			return fmt.Errorf("write alias name: %w", err)
		}
		if err := writeSwatchCell(f, 2, row, c, c.Hex()); err != nil {
			return err
		}
		row++
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// writeSwatchCell fills a cell with the color and writes the label in the
// best-contrast font color.
func writeSwatchCell(f *excelize.File, col, row int, c colorutil.Color, label string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellValue(spectrumSheet, cell, label); err != nil {
		return fmt.Errorf("write swatch value: %w", err)
	}

	fill := strings.TrimPrefix(c.Hex(), "#")
	text := colorutil.BestForeground(c, []colorutil.Color{colorutil.Black, colorutil.White})
	styleID, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fill}},
		Font: &excelize.Font{Color: strings.TrimPrefix(text.Hex(), "#")},
	})
	if err != nil {
		return fmt.Errorf("swatch style: %w", err)
	}
	if err := f.SetCellStyle(spectrumSheet, cell, cell, styleID); err != nil {
		return fmt.Errorf("apply swatch style: %w", err)
	}
	return nil
}

package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/fynestrap/fynestrap/themes"
)

func testPalette(t *testing.T) *themes.Palette {
	t.Helper()
	for _, def := range themes.Standard() {
		if def.Name != "flatly" {
			continue
		}
		p, err := themes.Expand(def)
		if err != nil {
			t.Fatalf("Expand() error = %v", err)
		}
		return p
	}
	t.Fatal("standard theme flatly not found")
	return nil
}

func TestWritePaletteSheet(t *testing.T) {
	p := testPalette(t)
	path := filepath.Join(t.TempDir(), "palette.pdf")

	if err := WritePaletteSheet(path, p); err != nil {
		t.Fatalf("WritePaletteSheet() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file not created: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestWritePaletteSheetNilPalette(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.pdf")
	if err := WritePaletteSheet(path, nil); err == nil {
		t.Error("expected error for nil palette")
	}
}

func TestWriteSpectrumWorkbook(t *testing.T) {
	p := testPalette(t)
	path := filepath.Join(t.TempDir(), "spectrum.xlsx")

	if err := WriteSpectrumWorkbook(path, p); err != nil {
		t.Fatalf("WriteSpectrumWorkbook() error = %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	title, err := f.GetCellValue("Spectrum", "A1")
	if err != nil {
		t.Fatalf("read title cell: %v", err)
	}
	if title != "flatly (light)" {
		t.Errorf("title cell = %q, want %q", title, "flatly (light)")
	}

	// First shade row starts at row 3; column B holds the 100 level.
	shade, err := f.GetCellValue("Spectrum", "A3")
	if err != nil {
		t.Fatalf("read shade cell: %v", err)
	}
	if shade == "" {
		t.Error("first shade row is empty")
	}
	hex, err := f.GetCellValue("Spectrum", "B3")
	if err != nil {
		t.Fatalf("read swatch cell: %v", err)
	}
	if len(hex) != 7 || hex[0] != '#' {
		t.Errorf("swatch cell = %q, want a hex color", hex)
	}
}

func TestWriteSpectrumWorkbookNilPalette(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spectrum.xlsx")
	if err := WriteSpectrumWorkbook(path, nil); err == nil {
		t.Error("expected error for nil palette")
	}
}

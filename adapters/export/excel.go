// Package export writes generated samples to spreadsheet workbooks, the
// handout format used in class: one sheet per stream, a uniform column next
// to its inverted column so students can trace the inversion mapping.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"simvar/app"
	apperrors "simvar/internal/errors"
)

// Sheet is one worksheet of samples: the uniforms and inverted variates of a
// single stream. U may be nil when only the variates are wanted.
type Sheet struct {
	Name string
	U    []float64
	X    []float64
}

// WriteWorkbook writes one sheet per entry to path (xlsx).
func WriteWorkbook(path string, sheets []Sheet) error {
	if len(sheets) == 0 {
		return apperrors.ValidationError("export: no sheets to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		name := sheet.Name
		if name == "" {
			name = fmt.Sprintf("Sheet%d", i+1)
		}
		if i == 0 {
			// Rename the default sheet instead of leaving it empty.
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return apperrors.ExportError(err, "failed to name sheet")
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return apperrors.ExportError(err, "failed to add sheet")
			}
		}
		if err := writeSheet(f, name, sheet); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return apperrors.ExportError(err, fmt.Sprintf("failed to save workbook %s", path))
	}
	return nil
}

// FromSweep converts a sweep result into per-stream sheets.
func FromSweep(res *app.SweepResult) []Sheet {
	sheets := make([]Sheet, len(res.Samples))
	for i, sample := range res.Samples {
		sheets[i] = Sheet{
			Name: fmt.Sprintf("stream-%d", sample.Stream),
			U:    sample.U,
			X:    sample.X,
		}
	}
	return sheets
}

func writeSheet(f *excelize.File, name string, sheet Sheet) error {
	withU := sheet.U != nil

	header := []interface{}{"x"}
	if withU {
		header = []interface{}{"u", "x"}
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return apperrors.ExportError(err, "failed to write header")
	}

	for i, x := range sheet.X {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{x}
		if withU {
			row = []interface{}{sheet.U[i], x}
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return apperrors.ExportError(err, "failed to write row")
		}
	}
	return nil
}

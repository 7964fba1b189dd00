package writers

import (
	"github.com/mmrzaf/tabgen/internal/domain"
	"github.com/xuri/excelize/v2"
)

const excelSheet = "Sheet1"

type ExcelWriter struct{}

func (w *ExcelWriter) Write(spec *domain.FileSpec, rows []domain.Row) error {
	if len(rows) == 0 {
		return domain.ErrEmptyDataset
	}

	f := excelize.NewFile()
	defer f.Close()

	header := make([]any, len(spec.Columns))
	for i, col := range spec.Columns {
		header[i] = col.Name
	}
	if err := f.SetSheetRow(excelSheet, "A1", &header); err != nil {
		return err
	}

	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		values := make([]any, len(spec.Columns))
		for i, col := range spec.Columns {
			values[i] = row[col.Name]
		}
		if err := f.SetSheetRow(excelSheet, cell, &values); err != nil {
			return err
		}
	}

	return f.SaveAs(spec.OutputPath)
}

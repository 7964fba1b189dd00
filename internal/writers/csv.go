package writers

import (
	"encoding/csv"
	"os"

	"github.com/mmrzaf/tabgen/internal/domain"
)

type CSVWriter struct{}

func (w *CSVWriter) Write(spec *domain.FileSpec, rows []domain.Row) error {
	if len(rows) == 0 {
		return domain.ErrEmptyDataset
	}

	f, err := os.Create(spec.OutputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	header := make([]string, len(spec.Columns))
	for i, col := range spec.Columns {
		header[i] = col.Name
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, len(spec.Columns))
	for _, row := range rows {
		for i, col := range spec.Columns {
			record[i] = formatValue(row[col.Name])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return f.Close()
}

package writers

import (
	"bufio"
	"os"
	"strings"

	"github.com/mmrzaf/tabgen/internal/domain"
)

const textDelimiter = " | "

type TextWriter struct{}

func (w *TextWriter) Write(spec *domain.FileSpec, rows []domain.Row) error {
	if len(rows) == 0 {
		return domain.ErrEmptyDataset
	}

	f, err := os.Create(spec.OutputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)

	names := make([]string, len(spec.Columns))
	for i, col := range spec.Columns {
		names[i] = col.Name
	}
	header := strings.Join(names, textDelimiter)
	if _, err := bw.WriteString(header + "\n"); err != nil {
		return err
	}
	if _, err := bw.WriteString(strings.Repeat("-", len(header)) + "\n"); err != nil {
		return err
	}

	fields := make([]string, len(spec.Columns))
	for _, row := range rows {
		for i, col := range spec.Columns {
			fields[i] = formatValue(row[col.Name])
		}
		if _, err := bw.WriteString(strings.Join(fields, textDelimiter) + "\n"); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return err
	}
	return f.Close()
}

package writers

import (
	"encoding/json"
	"os"

	"github.com/mmrzaf/tabgen/internal/domain"
)

type JSONWriter struct{}

func (w *JSONWriter) Write(spec *domain.FileSpec, rows []domain.Row) error {
	if len(rows) == 0 {
		return domain.ErrEmptyDataset
	}

	f, err := os.Create(spec.OutputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	// Keep <, >, & and non-ASCII verbatim in the output.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rows); err != nil {
		return err
	}
	return f.Close()
}

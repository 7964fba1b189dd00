package writers

import (
	"encoding/xml"
	"io"
	"os"

	"github.com/mmrzaf/tabgen/internal/domain"
)

type XMLWriter struct{}

func (w *XMLWriter) Write(spec *domain.FileSpec, rows []domain.Row) error {
	if len(rows) == 0 {
		return domain.ErrEmptyDataset
	}

	f, err := os.Create(spec.OutputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.WriteString(f, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(f)
	enc.Indent("", "  ")

	// Element names come from column names, so the document is built from
	// tokens instead of struct tags.
	root := xml.StartElement{Name: xml.Name{Local: "data"}}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}

	record := xml.StartElement{Name: xml.Name{Local: "record"}}
	for _, row := range rows {
		if err := enc.EncodeToken(record); err != nil {
			return err
		}
		for _, col := range spec.Columns {
			el := xml.StartElement{Name: xml.Name{Local: col.Name}}
			if err := enc.EncodeToken(el); err != nil {
				return err
			}
			if err := enc.EncodeToken(xml.CharData(formatValue(row[col.Name]))); err != nil {
				return err
			}
			if err := enc.EncodeToken(el.End()); err != nil {
				return err
			}
		}
		if err := enc.EncodeToken(record.End()); err != nil {
			return err
		}
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	return f.Close()
}

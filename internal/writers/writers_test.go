package writers

import (
	"database/sql"
	"encoding/json"
	"encoding/xml"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mmrzaf/tabgen/internal/domain"
	"github.com/xuri/excelize/v2"
)

func sampleSpec(format domain.Format, path string) *domain.FileSpec {
	return &domain.FileSpec{
		Format:      format,
		RowCount:    2,
		ColumnCount: 2,
		Columns: []domain.ColumnSpec{
			{Name: "name", Type: domain.DataTypeName},
			{Name: "age", Type: domain.DataTypeInteger},
		},
		OutputPath: path,
	}
}

func sampleRows() []domain.Row {
	return []domain.Row{
		{"name": "Ada Lovelace", "age": int64(36)},
		{"name": "Alan Turing", "age": int64(41)},
	}
}

func TestAllWriters_RejectEmptyDataset(t *testing.T) {
	dir := t.TempDir()
	reg := DefaultWriterRegistry()

	for _, format := range reg.List() {
		t.Run(string(format), func(t *testing.T) {
			path := filepath.Join(dir, "empty-"+string(format))
			w, err := reg.Get(format)
			if err != nil {
				t.Fatal(err)
			}

			err = w.Write(sampleSpec(format, path), nil)
			if !errors.Is(err, domain.ErrEmptyDataset) {
				t.Fatalf("expected ErrEmptyDataset, got %v", err)
			}
			if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
				t.Fatal("no file should be created for an empty dataset")
			}
		})
	}
}

func TestWriterRegistry_UnknownFormat(t *testing.T) {
	reg := DefaultWriterRegistry()

	_, err := reg.Get(domain.Format("parquet"))
	var formatErr *domain.UnsupportedFormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected *UnsupportedFormatError, got %v", err)
	}
	if formatErr.Format != "parquet" {
		t.Fatalf("error should name the requested format, got %q", formatErr.Format)
	}
}

func TestCSVWriter_HeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w := &CSVWriter{}

	if err := w.Write(sampleSpec(domain.FormatCSV, path), sampleRows()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "name,age" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != "Ada Lovelace,36" {
		t.Fatalf("unexpected first row: %q", lines[1])
	}
}

func TestCSVWriter_MissingKeysRenderEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w := &CSVWriter{}

	rows := []domain.Row{{"name": "solo"}}
	if err := w.Write(sampleSpec(domain.FormatCSV, path), rows); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[1] != "solo," {
		t.Fatalf("missing key should render empty, got %q", lines[1])
	}
}

func TestJSONWriter_ArrayOfObjects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	w := &JSONWriter{}

	if err := w.Write(sampleSpec(domain.FormatJSON, path), sampleRows()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(decoded))
	}
	if decoded[0]["name"] != "Ada Lovelace" {
		t.Fatalf("unexpected first object: %v", decoded[0])
	}
	// Human-readable indentation.
	if !strings.Contains(string(data), "\n  {") && !strings.Contains(string(data), "{\n    ") {
		t.Fatalf("output does not look indented:\n%s", data)
	}
}

func TestJSONWriter_PreservesNonASCII(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	w := &JSONWriter{}

	rows := []domain.Row{{"name": "Åsa Öberg & Søn", "age": int64(1)}}
	if err := w.Write(sampleSpec(domain.FormatJSON, path), rows); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Åsa Öberg & Søn") {
		t.Fatalf("non-ASCII content was escaped:\n%s", data)
	}
}

func TestXMLWriter_Structure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xml")
	w := &XMLWriter{}

	if err := w.Write(sampleSpec(domain.FormatXML, path), sampleRows()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	content := string(data)
	if !strings.HasPrefix(content, "<?xml") {
		t.Fatal("expected xml declaration")
	}
	if strings.Count(content, "<record>") != 2 {
		t.Fatalf("expected 2 record elements:\n%s", content)
	}
	if !strings.Contains(content, "<name>Ada Lovelace</name>") {
		t.Fatalf("expected column element with text content:\n%s", content)
	}

	// Must be well-formed.
	type record struct {
		Name string `xml:"name"`
		Age  int64  `xml:"age"`
	}
	var doc struct {
		Records []record `xml:"record"`
	}
	if err := xml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not well-formed xml: %v", err)
	}
	if len(doc.Records) != 2 || doc.Records[1].Age != 41 {
		t.Fatalf("unexpected decoded document: %+v", doc)
	}
}

func TestTextWriter_Layout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	w := &TextWriter{}

	if err := w.Write(sampleSpec(domain.FormatTXT, path), sampleRows()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + separator + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "name | age" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != strings.Repeat("-", len(lines[0])) {
		t.Fatalf("separator should be dashes matching header length, got %q", lines[1])
	}
	if lines[2] != "Ada Lovelace | 36" {
		t.Fatalf("unexpected first row: %q", lines[2])
	}
}

func TestExcelWriter_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	w := &ExcelWriter{}

	if err := w.Write(sampleSpec(domain.FormatExcel, path), sampleRows()); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	cells, err := f.GetRows(excelSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(cells) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(cells))
	}
	if cells[0][0] != "name" || cells[0][1] != "age" {
		t.Fatalf("unexpected header row: %v", cells[0])
	}
	if cells[1][0] != "Ada Lovelace" {
		t.Fatalf("unexpected data row: %v", cells[1])
	}
}

func TestSQLiteWriter_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.db")
	w := &SQLiteWriter{}

	if err := w.Write(sampleSpec(domain.FormatSQLite, path), sampleRows()); err != nil {
		t.Fatal(err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM data").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Fatalf("expected 2 rows in table, got %d", count)
	}

	var name string
	var age int64
	if err := db.QueryRow(`SELECT "name", "age" FROM data LIMIT 1`).Scan(&name, &age); err != nil {
		t.Fatal(err)
	}
	if name != "Ada Lovelace" || age != 36 {
		t.Fatalf("unexpected row: %s, %d", name, age)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"x", "x"},
		{int64(42), "42"},
		{3.5, "3.5"},
		{true, "true"},
		{false, "false"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.in); got != tt.want {
			t.Errorf("formatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

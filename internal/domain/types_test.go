package domain

import (
	"errors"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func validColumns(n int) []ColumnSpec {
	cols := make([]ColumnSpec, n)
	for i := range cols {
		cols[i] = ColumnSpec{Name: "col", Type: DataTypeInteger}
	}
	return cols
}

func TestNewFileSpec_Valid(t *testing.T) {
	spec, err := NewFileSpec(FormatCSV, 10, 2, validColumns(2), "out.csv")
	if err != nil {
		t.Fatalf("expected valid spec, got %v", err)
	}
	if spec.RowCount != 10 || spec.ColumnCount != 2 {
		t.Fatalf("unexpected spec: %+v", spec)
	}
}

func TestNewFileSpec_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		rows    int
		columns int
		specs   []ColumnSpec
		output  string
	}{
		{"zero rows", FormatCSV, 0, 1, validColumns(1), "out.csv"},
		{"rows over ceiling", FormatCSV, 1_000_001, 1, validColumns(1), "out.csv"},
		{"zero columns", FormatCSV, 10, 0, nil, "out.csv"},
		{"columns over ceiling", FormatCSV, 10, 101, validColumns(101), "out.csv"},
		{"column count mismatch", FormatCSV, 10, 3, validColumns(2), "out.csv"},
		{"empty output path", FormatCSV, 10, 1, validColumns(1), ""},
		{"unknown format", Format("parquet"), 10, 1, validColumns(1), "out.parquet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFileSpec(tt.format, tt.rows, tt.columns, tt.specs, tt.output)
			if err == nil {
				t.Fatal("expected error")
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %T", err)
			}
		})
	}
}

func TestNewFileSpec_RejectsBadColumns(t *testing.T) {
	tests := []struct {
		name string
		col  ColumnSpec
	}{
		{"empty name", ColumnSpec{Name: "", Type: DataTypeInteger}},
		{"unknown type", ColumnSpec{Name: "c", Type: DataType("geo")}},
		{"zero text length", ColumnSpec{Name: "c", Type: DataTypeText, TextLength: intPtr(0)}},
		{"negative text length", ColumnSpec{Name: "c", Type: DataTypeText, TextLength: intPtr(-5)}},
		{"min equals max", ColumnSpec{Name: "c", Type: DataTypeInteger, MinValue: floatPtr(5), MaxValue: floatPtr(5)}},
		{"min above max", ColumnSpec{Name: "c", Type: DataTypeFloat, MinValue: floatPtr(10), MaxValue: floatPtr(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFileSpec(FormatCSV, 10, 1, []ColumnSpec{tt.col}, "out.csv")
			if err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNewRequest_BatchSizeBounds(t *testing.T) {
	spec, err := NewFileSpec(FormatCSV, 10, 1, validColumns(1), "out.csv")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewRequest(spec, nil, 99); err == nil {
		t.Fatal("expected batch size below minimum to be rejected")
	}
	if _, err := NewRequest(spec, nil, 10_001); err == nil {
		t.Fatal("expected batch size above maximum to be rejected")
	}

	req, err := NewRequest(spec, nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := req.EffectiveBatchSize(); got != DefaultBatchSize {
		t.Fatalf("expected default batch size %d, got %d", DefaultBatchSize, got)
	}
}

func TestRequest_Validate_RequiresConfig(t *testing.T) {
	req := &Request{}
	if err := req.Validate(); err == nil {
		t.Fatal("expected missing config to be rejected")
	}
}

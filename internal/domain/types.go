package domain

import "fmt"

type DataType string

const (
	DataTypeName       DataType = "name"
	DataTypeEmail      DataType = "email"
	DataTypePhone      DataType = "phone"
	DataTypeAddress    DataType = "address"
	DataTypeCompany    DataType = "company"
	DataTypeJob        DataType = "job"
	DataTypeDate       DataType = "date"
	DataTypeInteger    DataType = "integer"
	DataTypeFloat      DataType = "float"
	DataTypeBoolean    DataType = "boolean"
	DataTypeText       DataType = "text"
	DataTypeURL        DataType = "url"
	DataTypeIPAddress  DataType = "ip_address"
	DataTypeUUID       DataType = "uuid"
	DataTypeCreditCard DataType = "credit_card"
)

type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatXML    Format = "xml"
	FormatTXT    Format = "txt"
	FormatExcel  Format = "excel"
	FormatSQLite Format = "sqlite"
)

const (
	MaxRows    = 1_000_000
	MaxColumns = 100

	MinBatchSize     = 100
	MaxBatchSize     = 10_000
	DefaultBatchSize = 1000
)

type ColumnSpec struct {
	Name       string   `json:"name" yaml:"name"`
	Type       DataType `json:"type" yaml:"type"`
	MinValue   *float64 `json:"min_value,omitempty" yaml:"min_value,omitempty"`
	MaxValue   *float64 `json:"max_value,omitempty" yaml:"max_value,omitempty"`
	TextLength *int     `json:"text_length,omitempty" yaml:"text_length,omitempty"`
}

type FileSpec struct {
	Format      Format       `json:"format" yaml:"format"`
	RowCount    int          `json:"rows" yaml:"rows"`
	ColumnCount int          `json:"columns" yaml:"columns"`
	Columns     []ColumnSpec `json:"column_specs" yaml:"column_specs"`
	OutputPath  string       `json:"output_path" yaml:"output_path"`
}

type Request struct {
	Config    *FileSpec `json:"config" yaml:"config"`
	Seed      *int64    `json:"seed,omitempty" yaml:"seed,omitempty"`
	BatchSize int       `json:"batch_size,omitempty" yaml:"batch_size,omitempty"`
}

// Row holds one generated record, keyed by column name. Values are
// string, int64, float64 or bool depending on the column type.
type Row map[string]any

func NewFileSpec(format Format, rows, columns int, specs []ColumnSpec, outputPath string) (*FileSpec, error) {
	s := &FileSpec{
		Format:      format,
		RowCount:    rows,
		ColumnCount: columns,
		Columns:     specs,
		OutputPath:  outputPath,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate enforces the shape rules. Business-rule checks that should be
// collected rather than fail fast live in the validation package.
func (s *FileSpec) Validate() error {
	if !IsValidFormat(s.Format) {
		return &ConfigError{Msg: fmt.Sprintf("unknown format: %s", s.Format)}
	}
	if s.RowCount < 1 || s.RowCount > MaxRows {
		return &ConfigError{Msg: fmt.Sprintf("rows must be between 1 and %d, got %d", MaxRows, s.RowCount)}
	}
	if s.ColumnCount < 1 || s.ColumnCount > MaxColumns {
		return &ConfigError{Msg: fmt.Sprintf("columns must be between 1 and %d, got %d", MaxColumns, s.ColumnCount)}
	}
	if len(s.Columns) != s.ColumnCount {
		return &ConfigError{Msg: fmt.Sprintf("number of column specs (%d) must match columns (%d)", len(s.Columns), s.ColumnCount)}
	}
	if s.OutputPath == "" {
		return &ConfigError{Msg: "output path cannot be empty"}
	}
	for i := range s.Columns {
		if err := s.Columns[i].validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *ColumnSpec) validate() error {
	if c.Name == "" {
		return &ConfigError{Msg: "column name is required"}
	}
	if !IsValidDataType(c.Type) {
		return &ConfigError{Msg: fmt.Sprintf("column '%s': unknown data type: %s", c.Name, c.Type)}
	}
	if c.TextLength != nil && *c.TextLength <= 0 {
		return &ConfigError{Msg: fmt.Sprintf("column '%s': text length must be positive, got %d", c.Name, *c.TextLength)}
	}
	if c.MinValue != nil && c.MaxValue != nil && *c.MinValue >= *c.MaxValue {
		return &ConfigError{Msg: fmt.Sprintf("column '%s': min_value (%v) must be less than max_value (%v)", c.Name, *c.MinValue, *c.MaxValue)}
	}
	return nil
}

func NewRequest(config *FileSpec, seed *int64, batchSize int) (*Request, error) {
	r := &Request{Config: config, Seed: seed, BatchSize: batchSize}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Request) Validate() error {
	if r.Config == nil {
		return &ConfigError{Msg: "config is required"}
	}
	if err := r.Config.Validate(); err != nil {
		return err
	}
	if r.BatchSize != 0 && (r.BatchSize < MinBatchSize || r.BatchSize > MaxBatchSize) {
		return &ConfigError{Msg: fmt.Sprintf("batch size must be between %d and %d, got %d", MinBatchSize, MaxBatchSize, r.BatchSize)}
	}
	return nil
}

// EffectiveBatchSize resolves the default when the caller left it unset.
func (r *Request) EffectiveBatchSize() int {
	if r.BatchSize == 0 {
		return DefaultBatchSize
	}
	return r.BatchSize
}

func IsValidDataType(t DataType) bool {
	switch t {
	case DataTypeName, DataTypeEmail, DataTypePhone, DataTypeAddress,
		DataTypeCompany, DataTypeJob, DataTypeDate, DataTypeInteger,
		DataTypeFloat, DataTypeBoolean, DataTypeText, DataTypeURL,
		DataTypeIPAddress, DataTypeUUID, DataTypeCreditCard:
		return true
	default:
		return false
	}
}

func IsValidFormat(f Format) bool {
	switch f {
	case FormatCSV, FormatJSON, FormatXML, FormatTXT, FormatExcel, FormatSQLite:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether min/max bounds apply to the column type.
func (t DataType) IsNumeric() bool {
	return t == DataTypeInteger || t == DataTypeFloat
}

package validation

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mmrzaf/tabgen/internal/domain"
	"github.com/mmrzaf/tabgen/internal/registry"
)

// extensionsByFormat lists the accepted output-path extensions per format.
// The check is advisory: mismatches are reported, never auto-corrected.
var extensionsByFormat = map[domain.Format][]string{
	domain.FormatCSV:    {".csv"},
	domain.FormatJSON:   {".json"},
	domain.FormatXML:    {".xml"},
	domain.FormatTXT:    {".txt"},
	domain.FormatExcel:  {".xlsx", ".xls"},
	domain.FormatSQLite: {".db", ".sqlite"},
}

type Validator struct {
	genRegistry *registry.GeneratorRegistry
}

func NewValidator(genRegistry *registry.GeneratorRegistry) *Validator {
	return &Validator{genRegistry: genRegistry}
}

// ValidateSpec re-runs the hard shape checks. Specs built through
// domain.NewFileSpec already passed them; specs decoded from files or
// built field-by-field have not.
func (v *Validator) ValidateSpec(spec *domain.FileSpec) error {
	if spec == nil {
		return &domain.ConfigError{Msg: "config is required"}
	}
	return spec.Validate()
}

// CollectIssues runs the soft validation pass: every problem is gathered
// into one list so a caller can show cumulative feedback before committing
// to generation. An empty list means the spec is ready.
func (v *Validator) CollectIssues(spec *domain.FileSpec) []string {
	issues := make([]string, 0)

	if spec == nil {
		return append(issues, "config is required")
	}

	if err := spec.Validate(); err != nil {
		issues = append(issues, err.Error())
	}

	if spec.RowCount > domain.MaxRows {
		issues = append(issues, fmt.Sprintf("number of rows cannot exceed %d", domain.MaxRows))
	}
	if spec.ColumnCount > domain.MaxColumns {
		issues = append(issues, fmt.Sprintf("number of columns cannot exceed %d", domain.MaxColumns))
	}

	for _, col := range spec.Columns {
		if col.Type == "" {
			continue
		}
		if _, err := v.genRegistry.Get(col.Type); err != nil {
			issues = append(issues, fmt.Sprintf("column '%s': no generator registered for type '%s'", col.Name, col.Type))
		}
	}

	if spec.OutputPath != "" {
		if accepted, ok := extensionsByFormat[spec.Format]; ok {
			ext := strings.ToLower(filepath.Ext(spec.OutputPath))
			if !contains(accepted, ext) {
				issues = append(issues, fmt.Sprintf(
					"output file extension should match format %s (expected %s, got %q)",
					spec.Format, strings.Join(accepted, " or "), ext))
			}
		}
	}

	return issues
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

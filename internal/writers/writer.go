package writers

import (
	"fmt"
	"strconv"

	"github.com/mmrzaf/tabgen/internal/domain"
)

// Writer persists a complete row collection to spec.OutputPath. The parent
// directory is guaranteed to exist by the orchestrator; a writer never
// creates directories itself.
type Writer interface {
	Write(spec *domain.FileSpec, rows []domain.Row) error
}

// formatValue renders a generated value for the textual formats.
// Missing keys render as the empty string.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

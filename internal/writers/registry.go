package writers

import (
	"sync"

	"github.com/mmrzaf/tabgen/internal/domain"
)

type WriterRegistry struct {
	mu      sync.RWMutex
	writers map[domain.Format]Writer
}

func NewWriterRegistry() *WriterRegistry {
	return &WriterRegistry{
		writers: make(map[domain.Format]Writer),
	}
}

func (r *WriterRegistry) Register(f domain.Format, w Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writers[f] = w
}

func (r *WriterRegistry) Get(f domain.Format) (Writer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.writers[f]
	if !ok {
		return nil, &domain.UnsupportedFormatError{Format: f}
	}
	return w, nil
}

func (r *WriterRegistry) List() []domain.Format {
	r.mu.RLock()
	defer r.mu.RUnlock()
	formats := make([]domain.Format, 0, len(r.writers))
	for f := range r.writers {
		formats = append(formats, f)
	}
	return formats
}

func DefaultWriterRegistry() *WriterRegistry {
	r := NewWriterRegistry()
	r.Register(domain.FormatCSV, &CSVWriter{})
	r.Register(domain.FormatJSON, &JSONWriter{})
	r.Register(domain.FormatXML, &XMLWriter{})
	r.Register(domain.FormatTXT, &TextWriter{})
	r.Register(domain.FormatExcel, &ExcelWriter{})
	r.Register(domain.FormatSQLite, &SQLiteWriter{})
	return r
}

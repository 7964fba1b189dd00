package specfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmrzaf/tabgen/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileRepository loads generation requests from YAML or JSON files so the
// CLI can run from declarative specs instead of flags.
type FileRepository struct {
	baseDir string
}

func NewFileRepository(baseDir string) *FileRepository {
	return &FileRepository{baseDir: baseDir}
}

func (r *FileRepository) List() ([]string, error) {
	if _, err := os.Stat(r.baseDir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" && ext != ".json" {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

func (r *FileRepository) Get(name string) (*domain.Request, error) {
	return Load(filepath.Join(r.baseDir, name))
}

// Load reads one request file. The decoded request is shape-validated
// before it is returned.
func Load(path string) (*domain.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var req domain.Request
	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(data, &req)
	} else {
		err = yaml.Unmarshal(data, &req)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse spec file %s: %w", path, err)
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

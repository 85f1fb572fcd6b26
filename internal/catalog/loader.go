package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

// Loader reads the built-in catalog, either from a file or from the
// catalog compiled into the binary.
type Loader struct {
	filePath string
}

// NewLoader creates a catalog loader. An empty path selects the embedded
// default catalog.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the catalog file (.yaml, .yml or .toml)
func (l *Loader) Load() (File, error) {
	if l.filePath == "" {
		return decodeYAML(defaultCatalog)
	}

	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return File{}, fmt.Errorf("failed to read catalog file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(l.filePath)); ext {
	case ".yaml", ".yml":
		return decodeYAML(data)
	case ".toml":
		return decodeTOML(data)
	default:
		return File{}, fmt.Errorf("unsupported catalog format %q (want .yaml, .yml or .toml)", ext)
	}
}

func decodeYAML(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("failed to parse catalog yaml: %w", err)
	}
	return f, nil
}

func decodeTOML(data []byte) (File, error) {
	var f File
	if _, err := toml.Decode(string(data), &f); err != nil {
		return File{}, fmt.Errorf("failed to parse catalog toml: %w", err)
	}
	return f, nil
}

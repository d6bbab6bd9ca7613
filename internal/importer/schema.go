package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ImportSchema is the top-level structure of an item file.
type ImportSchema struct {
	Items []ItemImport `json:"items" yaml:"items"`
}

// ItemImport is one item entry. Dates use YYYY-MM-DD; an empty ID is
// generated on import.
type ItemImport struct {
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Name  string `json:"name" yaml:"name"`
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// Format is an item file encoding.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc"
	FormatYAML  Format = "yaml"
)

// ParseFormat accepts the names used on the command line.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "jsonc":
		return FormatJSONC, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (expected json, jsonc or yaml)", s)
}

// FormatFromPath picks the decoder by extension. Anything that is not YAML
// is read as JSONC, which accepts plain JSON too.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatJSONC
	}
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (*ImportSchema, error) {
	var schema ImportSchema
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	case FormatJSON, FormatJSONC:
		// Comments and trailing commas are stripped for both; plain JSON
		// passes through unchanged.
		if err := json.Unmarshal(jsonc.ToJSON(data), &schema); err != nil {
			return nil, fmt.Errorf("parsing json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return &schema, nil
}

// LoadImportSchema reads and parses an item file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	schema, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return schema, nil
}

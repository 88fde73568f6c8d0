package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RosterSchema is the top-level structure of a roster file, in JSON or YAML.
type RosterSchema struct {
	People []PersonImport `json:"people" yaml:"people"`
}

// PersonImport defines one directory entry and, optionally, their busy time.
type PersonImport struct {
	ID    string       `json:"id" yaml:"id"`
	Name  string       `json:"name" yaml:"name"`
	Team  string       `json:"team,omitempty" yaml:"team,omitempty"`
	Email string       `json:"email,omitempty" yaml:"email,omitempty"`
	Role  string       `json:"role,omitempty" yaml:"role,omitempty"`
	Busy  []BusyImport `json:"busy,omitempty" yaml:"busy,omitempty"`
}

// BusyImport is one busy interval with RFC3339 bounds.
type BusyImport struct {
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// LoadRosterSchema reads a roster file, choosing the decoder by extension:
// .yaml and .yml are YAML, everything else is JSON.
func LoadRosterSchema(path string) (*RosterSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRosterSchema(data, filepath.Ext(path))
}

// ParseRosterSchema decodes roster bytes in the format implied by ext.
func ParseRosterSchema(data []byte, ext string) (*RosterSchema, error) {
	var schema RosterSchema
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing roster yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("parsing roster json: %w", err)
		}
	}
	return &schema, nil
}

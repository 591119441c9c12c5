package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// LoadConf reads the opaque transform conf from a YAML or TOML file, chosen
// by extension. The result is handed to templates untouched.
func LoadConf(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read conf: %w", err)
	}
	return ParseConf(data, filepath.Ext(path))
}

// ParseConf decodes conf data; ext selects the format (".yml", ".yaml", ".toml").
func ParseConf(data []byte, ext string) (map[string]any, error) {
	conf := map[string]any{}

	switch strings.ToLower(ext) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &conf); err != nil {
			return nil, fmt.Errorf("failed to parse yaml conf: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &conf); err != nil {
			return nil, fmt.Errorf("failed to parse toml conf: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported conf format %q", ext)
	}

	return conf, nil
}

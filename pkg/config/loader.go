package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Common errors for configuration loading.
var (
	ErrFileNotFound      = errors.New("configuration file not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrInvalidJSON       = errors.New("invalid JSON syntax")
	ErrInvalidYAML       = errors.New("invalid YAML syntax")
	ErrInvalidTOML       = errors.New("invalid TOML syntax")
	ErrEmptyFile         = errors.New("configuration file is empty")
	ErrUnsupportedFormat = errors.New("unsupported configuration format")
)

// Format is a configuration file syntax.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension. Unknown
// extensions are read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// LoadFromFile reads and parses a configuration file. The format follows the
// extension (.json, .yaml/.yml, .toml; anything else is JSON). Mount files
// are read relative to the configuration file's directory.
func LoadFromFile(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	cfg, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.resolveMounts(filepath.Dir(path)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes a configuration document in the given format. Inline JSON
// bodies and documents are encoded to text; mount files are left for
// LoadFromFile to read.
func Parse(data []byte, format Format) (*Config, error) {
	var cfg Config

	switch format {
	case FormatJSON:
		if !json.Valid(data) {
			return nil, ErrInvalidJSON
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidYAML, err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTOML, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	cfg.normalize()
	if err := cfg.encodeInline(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// encodeInline turns structured endpoint bodies and mount documents into
// JSON text.
func (c *Config) encodeInline() error {
	for method, eps := range c.Endpoints {
		for i := range eps {
			if eps[i].JSON == nil {
				continue
			}
			text, err := encodeJSON(eps[i].JSON)
			if err != nil {
				return fmt.Errorf("endpoints.%s[%d].json: %w", method, i, err)
			}
			eps[i].Body = text
		}
	}
	for i := range c.DB {
		if c.DB[i].JSON == nil {
			continue
		}
		if c.DB[i].Data != "" {
			return fmt.Errorf("db[%d]: data and json are mutually exclusive", i)
		}
		text, err := encodeJSON(c.DB[i].JSON)
		if err != nil {
			return fmt.Errorf("db[%d].json: %w", i, err)
		}
		c.DB[i].Data = text
	}
	return nil
}

// resolveMounts reads mount files into Data.
func (c *Config) resolveMounts(baseDir string) error {
	for i := range c.DB {
		if c.DB[i].File == "" {
			continue
		}
		if c.DB[i].Data != "" {
			return fmt.Errorf("db[%d]: file cannot be combined with data or json", i)
		}
		path := c.DB[i].File
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("db[%d].file: %w", i, err)
		}
		c.DB[i].Data = string(data)
	}
	return nil
}

// encodeJSON marshals a decoded YAML/TOML/JSON value without HTML escaping.
func encodeJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func sortedKeys(m map[string][]Endpoint) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

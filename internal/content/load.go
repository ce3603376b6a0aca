package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/site.yml
var defaultDocument []byte

// Format is the encoding of a content document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported content file extension %q", ext)
	}
}

// Load reads, normalizes and validates the content document at path. An
// empty path loads the embedded sample document.
func Load(path string) (*Site, error) {
	if path == "" {
		s := Default()
		return s, s.Validate()
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	s, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("decoding content %s: %w", path, err)
	}
	s.Normalize()
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content %s: %w", path, err)
	}
	return s, nil
}

// Decode parses a raw document without normalizing it.
func Decode(data []byte, format Format) (*Site, error) {
	var s Site
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, err
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
			return nil, err
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown content format %q", format)
	}
	return &s, nil
}

// Default returns a fresh, normalized copy of the embedded sample document.
// It panics if the embedded document cannot be decoded.
func Default() *Site {
	s, err := Decode(defaultDocument, FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("content: embedded default document: %v", err))
	}
	s.Normalize()
	return s
}

// DefaultDocument returns the raw embedded sample document, used by
// `productpage init` to seed a content file.
func DefaultDocument() []byte {
	out := make([]byte, len(defaultDocument))
	copy(out, defaultDocument)
	return out
}

// Encode writes s in the given format.
func Encode(s *Site, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(s)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(s); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		return json.MarshalIndent(s, "", "  ")
	default:
		return nil, fmt.Errorf("unknown content format %q", format)
	}
}

package scene

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
type Format int

const (
	// YAML documents use gopkg.in/yaml.v3.
	YAML Format = iota + 1
	// TOML documents use github.com/BurntSushi/toml.
	TOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf picks the format from the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Decode parses a document.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case YAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("scene: parse yaml: %w", err)
		}
	case TOML:
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, fmt.Errorf("scene: parse toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if !(doc.Width > 0 && doc.Height > 0) {
		return nil, fmt.Errorf("scene: invalid size %vx%v", doc.Width, doc.Height)
	}
	if doc.Scale == 0 {
		doc.Scale = 1
	}
	return &doc, nil
}

// Load reads and decodes the document at path. Image paths in the
// document are resolved relative to its directory.
func Load(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	doc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.dir = filepath.Dir(path)
	return doc, nil
}

// UnmarshalYAML accepts a color string or a brush mapping.
func (b *Brush) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*b = Brush{Color: value.Value}
		return nil
	}
	type plain Brush
	return value.Decode((*plain)(b))
}

// UnmarshalTOML accepts a color string or a brush table.
func (b *Brush) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*b = Brush{Color: v}
		return nil
	case map[string]any:
		// re-encode the table so the struct tags drive decoding
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(v); err != nil {
			return fmt.Errorf("%w: %v", ErrBrush, err)
		}
		type plain Brush
		_, err := toml.Decode(buf.String(), (*plain)(b))
		return err
	default:
		return fmt.Errorf("%w: unexpected %T", ErrBrush, data)
	}
}

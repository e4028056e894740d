package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Format is the encoding of a manifest document.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Manifest is the root of a package description.
type Manifest struct {
	Name     string             `toml:"name" yaml:"name" json:"name"`
	Licenses map[string]License `toml:"licenses" yaml:"licenses" json:"licenses"`
	Groups   []Group            `toml:"groups" yaml:"groups" json:"groups"`
	Sets     []Set              `toml:"sets" yaml:"sets" json:"sets"`

	// Dir is the directory relative icon files are resolved against.
	Dir string `toml:"-" yaml:"-" json:"-"`
}

type License struct {
	Name string `toml:"name" yaml:"name" json:"name"`
	URL  string `toml:"url" yaml:"url" json:"url"`
	Text string `toml:"text" yaml:"text" json:"text"`
}

type Group struct {
	Name        string  `toml:"name" yaml:"name" json:"name"`
	Description string  `toml:"description" yaml:"description" json:"description"`
	Sort        int     `toml:"sort" yaml:"sort" json:"sort"`
	Groups      []Group `toml:"groups" yaml:"groups" json:"groups"`
	Sets        []Set   `toml:"sets" yaml:"sets" json:"sets"`
}

type Set struct {
	Name        string `toml:"name" yaml:"name" json:"name"`
	Description string `toml:"description" yaml:"description" json:"description"`
	Sort        int    `toml:"sort" yaml:"sort" json:"sort"`
	Date        string `toml:"date" yaml:"date" json:"date"`
	License     string `toml:"license" yaml:"license" json:"license"`
	Icons       []Icon `toml:"icons" yaml:"icons" json:"icons"`
}

type Icon struct {
	Name        string   `toml:"name" yaml:"name" json:"name"`
	File        string   `toml:"file" yaml:"file" json:"file"`
	Type        string   `toml:"type" yaml:"type" json:"type"`
	Width       int      `toml:"width" yaml:"width" json:"width"`
	Height      int      `toml:"height" yaml:"height" json:"height"`
	Date        string   `toml:"date" yaml:"date" json:"date"`
	Unicode     string   `toml:"unicode" yaml:"unicode" json:"unicode"`
	Description string   `toml:"description" yaml:"description" json:"description"`
	Tags        []string `toml:"tags" yaml:"tags" json:"tags"`
	License     string   `toml:"license" yaml:"license" json:"license"`
}

// Load reads the manifest at path. The format follows the file extension, a
// missing name defaults to the file name without extension and Dir is set to
// the manifest's directory.
func Load(path string) (*Manifest, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if m.Name == "" {
		base := filepath.Base(abs)
		m.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	m.Dir = filepath.Dir(abs)
	return m, nil
}

// Parse decodes a manifest document.
func Parse(data []byte, format Format) (*Manifest, error) {
	var m Manifest
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &m)
	case FormatYAML:
		err = yaml.Unmarshal(data, &m)
	case FormatJSON:
		err = json.Unmarshal(data, &m)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s manifest: %w", format, err)
	}
	return &m, nil
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

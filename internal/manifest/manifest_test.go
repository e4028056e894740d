package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendrascience/iconjar/iconjar"
)

const tomlManifest = `
name = "Animals"

[licenses.mit]
name = "MIT"
url = "https://opensource.org/licenses/MIT"

[[groups]]
name = "Wild"
description = "wild animals"

[[groups.sets]]
name = "Mammals"
license = "mit"
date = "2020-01-02"

[[groups.sets.icons]]
name = "Bear"
file = "bear.svg"
tags = ["animal", "bear"]

[[sets]]
name = "Pets"

[[sets.icons]]
name = "Cat"
file = "cat.png"
width = 32
height = 32
license = "mit"
`

const yamlManifest = `
name: Animals
licenses:
  mit:
    name: MIT
    url: https://opensource.org/licenses/MIT
groups:
  - name: Wild
    description: wild animals
    sets:
      - name: Mammals
        license: mit
        date: "2020-01-02"
        icons:
          - name: Bear
            file: bear.svg
            tags: [animal, bear]
sets:
  - name: Pets
    icons:
      - name: Cat
        file: cat.png
        width: 32
        height: 32
        license: mit
`

const jsonManifest = `{
  "name": "Animals",
  "licenses": {"mit": {"name": "MIT", "url": "https://opensource.org/licenses/MIT"}},
  "groups": [{
    "name": "Wild",
    "description": "wild animals",
    "sets": [{
      "name": "Mammals",
      "license": "mit",
      "date": "2020-01-02",
      "icons": [{"name": "Bear", "file": "bear.svg", "tags": ["animal", "bear"]}]
    }]
  }],
  "sets": [{
    "name": "Pets",
    "icons": [{"name": "Cat", "file": "cat.png", "width": 32, "height": 32, "license": "mit"}]
  }]
}`

func TestParse(t *testing.T) {
	tests := []struct {
		format Format
		data   string
	}{
		{FormatTOML, tomlManifest},
		{FormatYAML, yamlManifest},
		{FormatJSON, jsonManifest},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			m, err := Parse([]byte(tt.data), tt.format)
			require.NoError(t, err)

			assert.Equal(t, "Animals", m.Name)
			assert.Equal(t, License{Name: "MIT", URL: "https://opensource.org/licenses/MIT"}, m.Licenses["mit"])
			require.Len(t, m.Groups, 1)
			assert.Equal(t, "wild animals", m.Groups[0].Description)
			require.Len(t, m.Groups[0].Sets, 1)
			mammals := m.Groups[0].Sets[0]
			assert.Equal(t, "mit", mammals.License)
			assert.Equal(t, "2020-01-02", mammals.Date)
			assert.Equal(t, []Icon{{Name: "Bear", File: "bear.svg", Tags: []string{"animal", "bear"}}}, mammals.Icons)
			require.Len(t, m.Sets, 1)
			assert.Equal(t, Icon{Name: "Cat", File: "cat.png", Width: 32, Height: 32, License: "mit"}, m.Sets[0].Icons[0])
		})
	}
}

func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := Parse([]byte("{}"), "xml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = FormatFromPath("icons.ini")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	f, err := FormatFromPath("ICONS.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("name = "), FormatTOML)
	assert.Error(t, err)
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndBuild(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "bear.svg", `<svg xmlns="http://www.w3.org/2000/svg"/>`)
	writeFixture(t, dir, "cat.png", "not really a png")
	path := writeFixture(t, dir, "animals.toml", tomlManifest)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, dir, m.Dir)

	clock := func() time.Time { return time.Date(2021, time.May, 6, 7, 8, 9, 0, time.Local) }
	pkg, err := m.Build(iconjar.WithClock(clock))
	require.NoError(t, err)
	assert.Equal(t, "Animals", pkg.Name())
	require.Len(t, pkg.Roots(), 2)

	out, err := pkg.Save(filepath.Join(dir, "out"), false)
	require.NoError(t, err)

	doc, err := iconjar.ReadDocument(osfs.New("/"), out)
	require.NoError(t, err)
	assert.Len(t, doc.Groups, 1)
	assert.Len(t, doc.Sets, 2)
	assert.Len(t, doc.Items, 2)
	require.Len(t, doc.Licences, 1, "license key used twice must produce one record")

	for _, s := range doc.Sets {
		switch s.Name {
		case "Mammals":
			assert.Equal(t, "2020-1-2 0:00:00", s.Date)
			assert.NotEmpty(t, s.License)
		case "Pets":
			assert.Equal(t, "2021-5-6 7:08:09", s.Date)
			assert.Empty(t, s.License)
		}
	}
	for _, item := range doc.Items {
		if item.Name == "Bear" {
			assert.Equal(t, "animal,bear", item.Tags)
			assert.Equal(t, iconjar.TypeSVG, item.Type)
		}
	}
	assert.Empty(t, doc.Verify(osfs.New("/"), out))
}

func TestLoad_DefaultName(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "my-icons.yaml", "sets: []\n")

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "my-icons", m.Name)
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		m       Manifest
		wantErr error
	}{
		{
			name:    "unknown license on set",
			m:       Manifest{Name: "x", Sets: []Set{{Name: "s", License: "gpl"}}},
			wantErr: ErrUnknownLicense,
		},
		{
			name:    "unknown license on icon",
			m:       Manifest{Name: "x", Sets: []Set{{Name: "s", Icons: []Icon{{Name: "i", File: "i.svg", License: "gpl"}}}}},
			wantErr: ErrUnknownLicense,
		},
		{
			name:    "unknown type override",
			m:       Manifest{Name: "x", Sets: []Set{{Name: "s", Icons: []Icon{{Name: "i", File: "i.bmp", Type: "bmp"}}}}},
			wantErr: ErrUnknownType,
		},
		{
			name:    "bad date",
			m:       Manifest{Name: "x", Groups: []Group{{Name: "g", Sets: []Set{{Name: "s", Date: "yesterday"}}}}},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "missing file",
			m:       Manifest{Name: "x", Sets: []Set{{Name: "s", Icons: []Icon{{Name: "i"}}}}},
			wantErr: ErrMissingFile,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.m.Build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2020-01-02", time.Date(2020, 1, 2, 0, 0, 0, 0, time.Local)},
		{"2020-01-02 03:04:05", time.Date(2020, 1, 2, 3, 4, 5, 0, time.Local)},
		{"2020-01-02T03:04:05Z", time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDate(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

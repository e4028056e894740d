package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendrascience/iconjar/iconjar"
)

func TestBuildCmd(t *testing.T) {
	dir := buildTestPackage(t)

	doc, err := iconjar.ReadDocument(osfs.New("/"), dir)
	require.NoError(t, err)
	assert.Len(t, doc.Groups, 1)
	assert.Len(t, doc.Sets, 1)
	assert.Len(t, doc.Items, 2)
	assert.Len(t, doc.Licences, 1)

	for _, name := range []string{"love.svg", "star.svg"} {
		_, err := os.Stat(filepath.Join(dir, "icons", name))
		assert.NoError(t, err, name)
	}
}

func TestBuildCmd_Overwrite(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.svg"), testSVG)
	manifest := writeFile(t, filepath.Join(src, "pkg.yaml"), `
sets:
  - name: Only
    icons:
      - name: A
        file: a.svg
`)
	out := t.TempDir()

	stdout, err := execute(t, "build", "-m", manifest, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, filepath.Join(out, "pkg.iconjar"))

	_, err = execute(t, "build", "-m", manifest, "-o", out)
	assert.ErrorIs(t, err, iconjar.ErrCreation)

	_, err = execute(t, "build", "-m", manifest, "-o", out, "--overwrite")
	assert.NoError(t, err)

	t.Setenv("ICONJAR_OVERWRITE", "true")
	_, err = execute(t, "build", "-m", manifest, "-o", out)
	assert.NoError(t, err)
}

func TestBuildCmd_Errors(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()

	_, err := execute(t, "build", "-m", filepath.Join(src, "missing.toml"), "-o", out)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := writeFile(t, filepath.Join(src, "bad.json"), `{"sets":[{"name":"s","license":"nope"}]}`)
	_, err = execute(t, "build", "-m", bad, "-o", out)
	assert.ErrorContains(t, err, "unknown license key")

	_, err = execute(t, "build", "-o", out)
	assert.Error(t, err, "manifest flag is required")
}

package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24"></svg>`

// execute runs the root command with args and returns what it wrote to
// stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// buildTestPackage writes a small manifest and builds it into a fresh
// directory, returning the package path.
func buildTestPackage(t *testing.T) string {
	t.Helper()
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "svg", "love.svg"), testSVG)
	writeFile(t, filepath.Join(src, "svg", "star.svg"), testSVG)
	manifest := writeFile(t, filepath.Join(src, "icons.toml"), `
name = "Test"

[licenses.mit]
name = "MIT"

[[groups]]
name = "Shapes"

[[groups.sets]]
name = "Outline"
license = "mit"

[[groups.sets.icons]]
name = "Love"
file = "svg/love.svg"

[[groups.sets.icons]]
name = "Star"
file = "svg/star.svg"
`)
	out := t.TempDir()
	_, err := execute(t, "build", "--manifest", manifest, "--output", out)
	require.NoError(t, err)
	return filepath.Join(out, "Test.iconjar")
}

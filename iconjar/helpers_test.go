package iconjar

import (
	"testing"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	billyutil "github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2010, time.December, 10, 12, 13, 11, 0, time.Local)

func fixedClock() time.Time { return fixedTime }

// newTestPackage returns a package on an in-memory filesystem holding the
// given source files, each with its own name as content.
func newTestPackage(t *testing.T, name string, sources ...string) (*Package, billy.Filesystem) {
	t.Helper()
	fs := memfs.New()
	for _, src := range sources {
		require.NoError(t, billyutil.WriteFile(fs, src, []byte(src), 0o644))
	}
	return New(name, WithFilesystem(fs), WithClock(fixedClock)), fs
}

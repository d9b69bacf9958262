package output

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/staged/internal/render"
)

// failingFs refuses to open one path for writing.
type failingFs struct {
	afero.Fs
	fail string
}

func (f *failingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if name == f.fail && flag&os.O_WRONLY != 0 {
		return nil, errors.New("disk full")
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func TestWriteAll(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, "out", nil)
	var written []string
	w.OnWrite = func(path string) { written = append(written, path) }

	err := w.WriteAll([]render.File{
		{Path: filepath.Join("shapes", "a.go"), Content: []byte("package shapes\n")},
		{Path: filepath.Join("shapes", "b.go"), Content: []byte("package shapes\n")},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("out", "shapes", "a.go"), filepath.Join("out", "shapes", "b.go")}, written)

	data, err := afero.ReadFile(fs, filepath.Join("out", "shapes", "a.go"))
	require.NoError(t, err)
	assert.Equal(t, "package shapes\n", string(data))
}

func TestWriteAll_RollsBackOnFailure(t *testing.T) {
	mem := afero.NewMemMapFs()
	existing := filepath.Join("out", "shapes", "a.go")
	require.NoError(t, afero.WriteFile(mem, existing, []byte("old"), 0o644))

	fs := &failingFs{Fs: mem, fail: filepath.Join("out", "shapes", "c.go")}
	w := NewWriter(fs, "out", nil)

	err := w.WriteAll([]render.File{
		{Path: filepath.Join("shapes", "a.go"), Content: []byte("new")},
		{Path: filepath.Join("shapes", "b.go"), Content: []byte("new")},
		{Path: filepath.Join("shapes", "c.go"), Content: []byte("new")},
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "disk full")

	data, err := afero.ReadFile(mem, existing)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data), "pre-existing file is restored")

	for _, name := range []string{"b.go", "c.go"} {
		ok, err := afero.Exists(mem, filepath.Join("out", "shapes", name))
		require.NoError(t, err)
		assert.False(t, ok, "%s must not survive the failed run", name)
	}
}

package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveOpenRemove(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	file, err := store.Save("Invoice March.PNG", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(9), file.Size)
	assert.True(t, strings.HasSuffix(file.Name, ".png"))
	assert.Equal(t, store.Root(), filepath.Dir(file.Path))

	rc, err := store.Open(file.Path)
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "png-bytes", string(body))

	require.NoError(t, store.Remove(file.Path))
	_, err = os.Stat(file.Path)
	assert.True(t, os.IsNotExist(err))

	// second removal is a no-op
	assert.NoError(t, store.Remove(file.Path))
}

func TestSaveDropsSuspiciousExtensions(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	file, err := store.Save("evil.ph p", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "", filepath.Ext(file.Name))
}

func TestOpenRejectsPathsOutsideRoot(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Open(filepath.Join(store.Root(), "..", "passwd"))
	assert.ErrorIs(t, err, ErrOutsideRoot)
	assert.ErrorIs(t, store.Remove("/etc/passwd"), ErrOutsideRoot)
}

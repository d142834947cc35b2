package hostfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	p, err := Path("/mnt/image", EtcShadowRel)
	require.NoError(t, err)
	assert.Equal(t, "/mnt/image/etc/shadow", p)

	p, err = Path("", "/etc/group")
	require.NoError(t, err)
	assert.Equal(t, "/etc/group", p)

	for _, rel := range []string{"", "/", ".", "..", "../etc/passwd"} {
		_, err := Path("/mnt/image", rel)
		assert.ErrorIs(t, err, ErrInvalidPath, "rel %q", rel)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "out.json")

	require.NoError(t, WriteFileAtomic(p, []byte("first"), 0600))
	require.NoError(t, WriteFileAtomic(p, []byte("second"), 0640))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))

	st, err := os.Stat(p)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), st.Mode().Perm())

	// No temp files are left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	err := WriteFileAtomic(filepath.Join(t.TempDir(), "missing", "out.json"), []byte("x"), 0600)
	assert.Error(t, err)
}

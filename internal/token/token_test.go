package token

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	assert.Empty(t, s.Get())

	require.NoError(t, s.Save("secret"))
	assert.Equal(t, "secret", s.Get())

	require.NoError(t, s.Drop())
	assert.Empty(t, s.Get())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	s, err := NewFileStore(path)
	require.NoError(t, err)

	assert.Empty(t, s.Get())

	require.NoError(t, s.Save("secret"))
	assert.Equal(t, "secret", s.Get())

	// A second store over the same file sees the token.
	again, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, "secret", again.Get())

	require.NoError(t, s.Drop())
	assert.Empty(t, s.Get())

	// Dropping an already-missing token is fine.
	require.NoError(t, s.Drop())
}

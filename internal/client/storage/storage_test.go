package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "token"))

	_, err := s.Load()
	require.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, s.Save("t1"))

	token, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, "t1", token)

	require.NoError(t, s.Clear())

	_, err = s.Load()
	require.ErrorIs(t, err, ErrNoToken)
}

func TestFileStoreClearIsIdempotent(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())
}

func TestFileStoreEmptyFileMeansNoToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := NewFileStore(path)
	require.NoError(t, s.Save("  \n"))

	_, err := s.Load()
	require.ErrorIs(t, err, ErrNoToken)
}

func TestMemStore(t *testing.T) {
	s := NewMemStore()

	_, err := s.Load()
	require.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, s.Save("t2"))
	token, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, "t2", token)

	require.NoError(t, s.Clear())
	_, err = s.Load()
	require.ErrorIs(t, err, ErrNoToken)
}

package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepository_LoadDefaultsWhenMissing(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "connection.yaml"))

	cs, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, "localhost", cs.Host)
	assert.Equal(t, DefaultPort, cs.Port)
	assert.Equal(t, AuthModeSQL, cs.AuthMode)
	assert.True(t, cs.TrustServerCertificate)
}

func TestFileRepository_SaveCreatesDirectoryAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "connection.yaml")
	repo := NewFileRepository(path)

	err := repo.Save(ConnectionSettings{
		Host: "sql01", Port: 1500, Database: "HR", AuthMode: AuthModeSQL,
		Username: "sa", Password: "p@ss", Encrypt: true,
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "host: sql01")

	cs, err := NewFileRepository(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "sql01", cs.Host)
	assert.Equal(t, 1500, cs.Port)
	assert.Equal(t, "p@ss", cs.Password)
	assert.False(t, cs.TrustServerCertificate)
}

func TestFileRepository_LoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connection.yaml")
	require.NoError(t, os.WriteFile(path, []byte("host: [unterminated"), 0o600))

	_, err := NewFileRepository(path).Load()
	assert.Error(t, err)
}

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"user-vault/internal/pkg/config"
)

func TestInit_FileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.log")
	require.NoError(t, Init(&config.LogConfig{Level: "debug", Format: "json", Output: "file", FilePath: path}))

	Info("凭据已创建", zap.String("credential_id", "c1"))
	Debug("debug line")
	GetWriter().Printf("[gorm] %s", "SELECT 1")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"凭据已创建"`)
	assert.Contains(t, out, `"credential_id":"c1"`)
	assert.Contains(t, out, "debug line")
	assert.Contains(t, out, "[gorm] SELECT 1")
	assert.Contains(t, out, "logger_test.go")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestInit_LevelFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.log")
	require.NoError(t, Init(&config.LogConfig{Level: "not-a-level", Format: "json", Output: "file", FilePath: path}))

	Debug("hidden")
	Warn("shown")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestInit_BadPath(t *testing.T) {
	err := Init(&config.LogConfig{Output: "file", FilePath: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	assert.Error(t, err)
}

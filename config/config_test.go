package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp runs the test from an empty directory so no stray .env is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("TASK_TRACKER_ADDR", "")

	cfg := Load()
	assert.Equal(t, DefaultAddr, cfg.Addr)
}

func TestLoadFromEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("TASK_TRACKER_ADDR", "0.0.0.0:9090")

	cfg := Load()
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr)
}

func TestLoadFromDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("TASK_TRACKER_ADDR", "")
	// godotenv does not override variables that are already set, even when empty.
	require.NoError(t, os.Unsetenv("TASK_TRACKER_ADDR"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TASK_TRACKER_ADDR=127.0.0.1:7070\n"), 0o600))

	cfg := Load()
	assert.Equal(t, "127.0.0.1:7070", cfg.Addr)
}

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte("interval: 2s\n"), 0o644)
}

func TestCommandTree(t *testing.T) {
	cmd := New()
	assert.Equal(t, "zenmon", cmd.Name)

	names := make([]string, 0, len(cmd.Commands))
	for _, sub := range cmd.Commands {
		names = append(names, sub.Name)
	}
	assert.Contains(t, names, "monitor")
	assert.Contains(t, names, "export")
}

func TestDefaultConfigPathMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	assert.Empty(t, defaultConfigPath())
}

func TestDefaultConfigPathPresent(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, ".config", "zenmon", "config.yaml")
	require.NoError(t, mkConfig(path))
	assert.Equal(t, path, defaultConfigPath())
}

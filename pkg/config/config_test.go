package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"strhash/pkg/strhash"
)

// chdir moves the test into dir and restores the working directory on
// cleanup, keeping the "." search path away from any real strhash.yaml.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, strhash.DefaultRounds, cfg.DefaultRounds)
	require.Equal(t, strhash.DefaultSalt, cfg.DefaultSalt)
	require.Equal(t, strhash.DefaultLength, cfg.HashLength)
	require.False(t, cfg.Debug)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "strhash.yaml")
	data := []byte("default_rounds: 25\ndefault_salt: pepper\nhash_length: 16\ndebug: true\n")
	require.NoError(t, os.WriteFile(file, data, 0o644))

	cfg, err := Load(file)
	require.NoError(t, err)
	require.Equal(t, 25, cfg.DefaultRounds)
	require.Equal(t, "pepper", cfg.DefaultSalt)
	require.Equal(t, 16, cfg.HashLength)
	require.True(t, cfg.Debug)
	require.Equal(t, file, cfg.ConfigFile)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STRHASH_DEFAULT_ROUNDS", "12")
	t.Setenv("STRHASH_DEFAULT_SALT", "envsalt")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 12, cfg.DefaultRounds)
	require.Equal(t, "envsalt", cfg.DefaultSalt)
}

func TestHasherFromConfig(t *testing.T) {
	cfg := &Config{DefaultRounds: 3, DefaultSalt: "s1", HashLength: 8}
	h := cfg.Hasher()
	require.Equal(t, 8, h.Length())
	want := strhash.Pad(strhash.HashWith("hello world", "s1", 3), 8)
	require.Equal(t, want, h.Hash("hello world"))
}

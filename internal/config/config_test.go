package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 0, cfg.IngestChunkSize)
	assert.True(t, cfg.ValidateUTF8)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantError string
	}{
		{name: "negative chunk size", cfg: Config{IngestChunkSize: -1}, wantError: "must be >= 0"},
		{name: "oversized chunk size", cfg: Config{IngestChunkSize: MaxIngestChunkSize + 1}, wantError: "must be <="},
		{name: "max chunk size ok", cfg: Config{IngestChunkSize: MaxIngestChunkSize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "ingest_chunk_size")
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ingest_chunk_size: 128\nvalidate_utf8: false\n"), 0o600))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.IngestChunkSize)
	assert.False(t, cfg.ValidateUTF8)
}

func TestLoadFromFile_PartialAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ingest_chunk_size: 16\n"), 0o600))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.IngestChunkSize)
	assert.True(t, cfg.ValidateUTF8, "unset fields keep defaults")
}

func TestLoadFromFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ingest_chunk_size: -5\n"), 0o600))

	_, err := LoadFromFile(path)
	assert.Error(t, err)

	_, err = LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LEMUR_INGEST_CHUNK_SIZE", "64")
	t.Setenv("LEMUR_VALIDATE_UTF8", "false")

	cfg := LoadFromEnv(DefaultConfig())
	assert.Equal(t, 64, cfg.IngestChunkSize)
	assert.False(t, cfg.ValidateUTF8)
}

func TestGlobalConfig(t *testing.T) {
	defer ResetConfig()

	require.NoError(t, SetConfig(Config{IngestChunkSize: 2, ValidateUTF8: true}))
	assert.Equal(t, 2, GetConfig().IngestChunkSize)

	assert.Error(t, SetConfig(Config{IngestChunkSize: -1}))
	assert.Equal(t, 2, GetConfig().IngestChunkSize, "invalid config must not replace the current one")

	ResetConfig()
	assert.Equal(t, DefaultConfig(), GetConfig())
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"api_key": "test-key",
		"use_ai": true,
		"include_raw_text": false,
		"strict_parsing": true,
		"out_dir": "/tmp",
		"concurrency": 4,
		"mvp": {
			"title": "Product Designer",
			"availability": "Available",
			"totalExperienceYears": 6.5,
			"skillsProficiency": {"Figma": 5}
		}
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.True(t, cfg.UseAI)
	assert.False(t, cfg.IncludeRaw())
	assert.True(t, cfg.StrictParsing)
	assert.Equal(t, 4, cfg.Concurrency)
	require.NotNil(t, cfg.MVP)
	assert.Equal(t, "Product Designer", cfg.MVP.Title)
	assert.InDelta(t, 6.5, cfg.MVP.TotalExperienceYears, 1e-9)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, `{"api_key": `))
		assert.Error(t, err)
	})
}

func TestConfigIncludeRawDefaultsTrue(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{}`))
	require.NoError(t, err)
	assert.True(t, cfg.IncludeRaw())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid",
			cfg:  Config{APIKey: "k", UseAI: true, Concurrency: 8},
		},
		{
			name:    "use_ai without key",
			cfg:     Config{UseAI: true},
			wantErr: "requires 'api_key'",
		},
		{
			name:    "negative concurrency",
			cfg:     Config{Concurrency: -1},
			wantErr: "config error",
		},
		{
			name:    "excessive concurrency",
			cfg:     Config{Concurrency: 100},
			wantErr: "config error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfigValidateOutDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.NoError(t, (&Config{OutDir: dir}).Validate())
	assert.Error(t, (&Config{OutDir: file}).Validate())
	// Nonexistent directories are created at write time, not rejected here.
	assert.NoError(t, (&Config{OutDir: filepath.Join(dir, "new")}).Validate())
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"job_url": "https://example.com/job",
		"format": "json",
		"port": 9000,
		"log_level": "debug",
		"verbose": true,
		"use_browser": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://example.com/job", cfg.JobURL)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.UseBrowser)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	existing := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(existing, []byte("resume"), 0644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty config", Config{}, ""},
		{"valid config", Config{Resume: existing, Format: "json", LogFormat: "pretty", Port: 8080}, ""},
		{"job and job_url", Config{Job: "job.txt", JobURL: "https://example.com/job"}, "mutually exclusive"},
		{"bad format", Config{Format: "xml"}, "'format'"},
		{"bad log format", Config{LogFormat: "logfmt"}, "'log_format'"},
		{"negative port", Config{Port: -1}, "'port'"},
		{"missing resume", Config{Resume: "/nonexistent/resume.txt"}, "resume file not found"},
		{"missing dictionary", Config{Dictionary: "/nonexistent/skills.yaml"}, "dictionary file not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Resume:    "default-resume.txt",
		Job:       "default-job.txt",
		Format:    "text",
		LogLevel:  "info",
		LogFormat: "json",
		Port:      8080,
	}

	partial := Config{
		Resume: "custom.pdf",
		Format: "json",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom.pdf", merged.Resume)
	assert.Equal(t, "json", merged.Format)

	// Default values should fill in empty fields
	assert.Equal(t, "default-job.txt", merged.Job)
	assert.Equal(t, "info", merged.LogLevel)
	assert.Equal(t, "json", merged.LogFormat)
	assert.Equal(t, 8080, merged.Port)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Resume: "resume.txt", Verbose: true}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "resume.txt", merged.Resume)
	assert.True(t, merged.Verbose)
	assert.Empty(t, merged.Job)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowOrigin)
	assert.Equal(t, "local", cfg.ObjectStoreType)
	assert.Equal(t, 10*time.Second, cfg.ExtractTimeout)
	assert.Equal(t, int64(5<<20), cfg.MaxUploadBytes)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.ValidateOutput)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "prod")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("OBJECT_STORE", "S3")
	t.Setenv("S3_BUCKET", "resumes")
	t.Setenv("EXTRACT_TIMEOUT", "3s")
	t.Setenv("LOG_FORMAT", "Pretty")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigin)
	assert.Equal(t, "s3", cfg.ObjectStoreType)
	assert.Equal(t, 3*time.Second, cfg.ExtractTimeout)
	assert.Equal(t, "pretty", cfg.LogFormat)
	assert.InDelta(t, 2.5, cfg.RateLimitRPS, 1e-9)
	assert.False(t, cfg.ValidateOutput, "validation is off by default in production")
}

func TestValidateOutputOverride(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("VALIDATE_OUTPUT", "true")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.ValidateOutput)
}

func TestLoadRejectsS3WithoutBucket(t *testing.T) {
	t.Setenv("OBJECT_STORE", "s3")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "S3_BUCKET")
}

func TestLoadFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"7070\"\nindustry_table_path: /etc/industries.yaml\nmax_upload_bytes: 1024\n"), 0o600))

	cfg, err := LoadFrom(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "/etc/industries.yaml", cfg.IndustryTablePath)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)

	_, err = LoadFrom(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestNormalizeEnv(t *testing.T) {
	cases := map[string]string{
		"prod":        "production",
		"Production":  "production",
		"staging":     "staging",
		"development": "dev",
		"":            "dev",
		"weird":       "dev",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeEnv(in), in)
	}
}

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port              string
	Env               string
	CORSAllowOrigin   []string
	ObjectStoreType   string
	LocalStoreDir     string
	AWSRegion         string
	S3Bucket          string
	S3Prefix          string
	IndustryTablePath string
	ExtractTimeout    time.Duration
	MaxUploadBytes    int64
	LogLevel          string
	LogFormat         string
	RateLimitRPS      float64
	RateLimitBurst    int
	ValidateOutput    bool
}

// Keys double as lower-cased environment variable names.
const (
	KeyPort              = "port"
	KeyEnv               = "env"
	KeyCORSAllowOrigins  = "cors_allow_origins"
	KeyObjectStore       = "object_store"
	KeyLocalStoreDir     = "local_store_dir"
	KeyAWSRegion         = "aws_region"
	KeyS3Bucket          = "s3_bucket"
	KeyS3Prefix          = "s3_prefix"
	KeyIndustryTablePath = "industry_table_path"
	KeyExtractTimeout    = "extract_timeout"
	KeyMaxUploadBytes    = "max_upload_bytes"
	KeyLogLevel          = "log_level"
	KeyLogFormat         = "log_format"
	KeyRateLimitRPS      = "rate_limit_rps"
	KeyRateLimitBurst    = "rate_limit_burst"
	KeyValidateOutput    = "validate_output"
)

// Load reads configuration from the environment with sensible defaults.
func Load() (Config, error) {
	return LoadFrom(viper.New(), "")
}

// LoadFrom reads configuration through v, so callers can bind flags to the same
// keys first. configFile is optional; without it a resume-insights.yaml in the
// working directory is used when present.
func LoadFrom(v *viper.Viper, configFile string) (Config, error) {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	setDefaults(v)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("resume-insights")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	env := normalizeEnv(v.GetString(KeyEnv))
	validate := env != "production"
	if v.IsSet(KeyValidateOutput) {
		validate = v.GetBool(KeyValidateOutput)
	}

	cfg := Config{
		Port:              v.GetString(KeyPort),
		Env:               env,
		CORSAllowOrigin:   splitAndTrim(v.GetString(KeyCORSAllowOrigins)),
		ObjectStoreType:   normalizeStoreType(v.GetString(KeyObjectStore)),
		LocalStoreDir:     v.GetString(KeyLocalStoreDir),
		AWSRegion:         v.GetString(KeyAWSRegion),
		S3Bucket:          v.GetString(KeyS3Bucket),
		S3Prefix:          v.GetString(KeyS3Prefix),
		IndustryTablePath: v.GetString(KeyIndustryTablePath),
		ExtractTimeout:    v.GetDuration(KeyExtractTimeout),
		MaxUploadBytes:    v.GetInt64(KeyMaxUploadBytes),
		LogLevel:          strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat:         normalizeLogFormat(v.GetString(KeyLogFormat)),
		RateLimitRPS:      v.GetFloat64(KeyRateLimitRPS),
		RateLimitBurst:    v.GetInt(KeyRateLimitBurst),
		ValidateOutput:    validate,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	if c.ObjectStoreType == "s3" && c.S3Bucket == "" {
		return errors.New("config: S3_BUCKET is required when OBJECT_STORE=s3")
	}
	if c.ExtractTimeout <= 0 {
		return fmt.Errorf("config: EXTRACT_TIMEOUT must be positive, got %s", c.ExtractTimeout)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("config: MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, "8080")
	v.SetDefault(KeyEnv, "dev")
	v.SetDefault(KeyCORSAllowOrigins, "http://localhost:5173")
	v.SetDefault(KeyObjectStore, "local")
	v.SetDefault(KeyLocalStoreDir, "./data")
	v.SetDefault(KeyAWSRegion, "")
	v.SetDefault(KeyS3Bucket, "")
	v.SetDefault(KeyS3Prefix, "")
	v.SetDefault(KeyIndustryTablePath, "")
	v.SetDefault(KeyExtractTimeout, "10s")
	v.SetDefault(KeyMaxUploadBytes, 5<<20)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "json")
	v.SetDefault(KeyRateLimitRPS, 5.0)
	v.SetDefault(KeyRateLimitBurst, 10)
}

// loadEnvFiles loads the given files if they exist. Variables already set in the
// environment win.
func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		_ = godotenv.Load(path)
	}
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}

func normalizeLogFormat(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), "pretty") {
		return "pretty"
	}
	return "json"
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Results webhook (optional)
	CallbackURL    string
	CallbackAPIKey string

	// Worker pool
	WorkerCount        int
	MaxQueueSize       int
	MaxConcurrentSolve int

	// Upload limits
	MaxUploadBytes int64

	// Job state
	JobTTL time.Duration

	// Stats window
	StatsWindow time.Duration

	// PDF
	PDFFallbackPdftotext bool
}

// fileConfig is the YAML shape of the optional config file. Durations
// are strings in time.ParseDuration syntax.
type fileConfig struct {
	Port                 string `yaml:"port"`
	APIKey               string `yaml:"api_key"`
	CallbackURL          string `yaml:"callback_url"`
	CallbackAPIKey       string `yaml:"callback_api_key"`
	WorkerCount          int    `yaml:"worker_count"`
	MaxQueueSize         int    `yaml:"max_queue_size"`
	MaxConcurrentSolve   int    `yaml:"max_concurrent_solve"`
	MaxUploadBytes       int64  `yaml:"max_upload_bytes"`
	JobTTL               string `yaml:"job_ttl"`
	StatsWindow          string `yaml:"stats_window"`
	PDFFallbackPdftotext *bool  `yaml:"pdf_fallback_pdftotext"`
}

// Load builds the configuration. An optional YAML file named by
// COMPUTOR_CONFIG is read first; environment variables override it.
func Load() Config {
	cfg := Config{
		Port:                 "8090",
		WorkerCount:          4,
		MaxQueueSize:         100,
		MaxConcurrentSolve:   8,
		MaxUploadBytes:       52428800, // 50MB
		JobTTL:               1 * time.Hour,
		StatsWindow:          1 * time.Hour,
		PDFFallbackPdftotext: true,
	}

	if path := os.Getenv("COMPUTOR_CONFIG"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			var fc fileConfig
			if err := yaml.Unmarshal(data, &fc); err == nil {
				applyFile(&cfg, fc)
			}
		}
	}

	cfg.Port = envOr("PORT", cfg.Port)
	cfg.APIKey = envOr("COMPUTOR_API_KEY", cfg.APIKey)
	cfg.CallbackURL = envOr("CALLBACK_URL", cfg.CallbackURL)
	cfg.CallbackAPIKey = envOr("CALLBACK_API_KEY", cfg.CallbackAPIKey)
	cfg.WorkerCount = envInt("WORKER_COUNT", cfg.WorkerCount)
	cfg.MaxQueueSize = envInt("MAX_QUEUE_SIZE", cfg.MaxQueueSize)
	cfg.MaxConcurrentSolve = envInt("MAX_CONCURRENT_SOLVE", cfg.MaxConcurrentSolve)
	cfg.MaxUploadBytes = envInt64("MAX_UPLOAD_BYTES", cfg.MaxUploadBytes)
	cfg.JobTTL = envDuration("JOB_TTL", cfg.JobTTL)
	cfg.StatsWindow = envDuration("STATS_WINDOW", cfg.StatsWindow)
	cfg.PDFFallbackPdftotext = envBool("PDF_FALLBACK_PDFTOTEXT", cfg.PDFFallbackPdftotext)

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxConcurrentSolve <= 0 {
		cfg.MaxConcurrentSolve = 8
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}

	return cfg
}

func applyFile(cfg *Config, fc fileConfig) {
	if fc.Port != "" {
		cfg.Port = fc.Port
	}
	if fc.APIKey != "" {
		cfg.APIKey = fc.APIKey
	}
	if fc.CallbackURL != "" {
		cfg.CallbackURL = fc.CallbackURL
	}
	if fc.CallbackAPIKey != "" {
		cfg.CallbackAPIKey = fc.CallbackAPIKey
	}
	if fc.WorkerCount > 0 {
		cfg.WorkerCount = fc.WorkerCount
	}
	if fc.MaxQueueSize > 0 {
		cfg.MaxQueueSize = fc.MaxQueueSize
	}
	if fc.MaxConcurrentSolve > 0 {
		cfg.MaxConcurrentSolve = fc.MaxConcurrentSolve
	}
	if fc.MaxUploadBytes > 0 {
		cfg.MaxUploadBytes = fc.MaxUploadBytes
	}
	if d, err := time.ParseDuration(fc.JobTTL); err == nil && d > 0 {
		cfg.JobTTL = d
	}
	if d, err := time.ParseDuration(fc.StatsWindow); err == nil && d > 0 {
		cfg.StatsWindow = d
	}
	if fc.PDFFallbackPdftotext != nil {
		cfg.PDFFallbackPdftotext = *fc.PDFFallbackPdftotext
	}
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("COMPUTOR_API_KEY is required")
	}
	if c.CallbackURL == "" && c.CallbackAPIKey != "" {
		return fmt.Errorf("CALLBACK_API_KEY set without CALLBACK_URL")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

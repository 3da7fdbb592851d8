package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// OpenAI solution generation
	OpenAIAPIKey string
	Model        string
	Temperature  float64
	MaxRetries   int

	// Concurrent question solves per document
	Workers int

	// Splitting policy
	KeepPreamble bool

	// HTTP serve mode
	Port           string
	APIKey         string // optional bearer auth for the HTTP API
	MaxUploadBytes int64

	// Solver latency stats window
	StatsWindow time.Duration
}

// Load reads configuration from the environment and any config file viper
// was pointed at. Every key can be set as EXAM2NB_<KEY>; the OpenAI key
// also honors the conventional OPENAI_API_KEY.
func Load() Config {
	viper.SetDefault("model", "gpt-4o-mini")
	viper.SetDefault("temperature", 0.2)
	viper.SetDefault("max_retries", 3)
	viper.SetDefault("workers", 3)
	viper.SetDefault("keep_preamble", true)
	viper.SetDefault("port", "8090")
	viper.SetDefault("max_upload_bytes", int64(52428800)) // 50MB
	viper.SetDefault("stats_window", time.Hour)

	viper.SetEnvPrefix("EXAM2NB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	_ = viper.BindEnv("openai_api_key", "OPENAI_API_KEY", "EXAM2NB_OPENAI_API_KEY")
	_ = viper.BindEnv("api_key", "EXAM2NB_API_KEY")

	cfg := Config{
		OpenAIAPIKey:   viper.GetString("openai_api_key"),
		Model:          viper.GetString("model"),
		Temperature:    viper.GetFloat64("temperature"),
		MaxRetries:     viper.GetInt("max_retries"),
		Workers:        viper.GetInt("workers"),
		KeepPreamble:   viper.GetBool("keep_preamble"),
		Port:           viper.GetString("port"),
		APIKey:         viper.GetString("api_key"),
		MaxUploadBytes: viper.GetInt64("max_upload_bytes"),
		StatsWindow:    viper.GetDuration("stats_window"),
	}

	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		cfg.Temperature = 0.2
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 3
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = time.Hour
	}

	return cfg
}

// Validate checks the settings solution generation requires.
func (c Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr        string        `mapstructure:"http_addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	RateLimitCapacity int           `mapstructure:"rate_limit_capacity"`
	RateLimitRefill   time.Duration `mapstructure:"rate_limit_refill"`

	RedisAddr       string        `mapstructure:"redis_addr"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`
	CacheMaxEntries int           `mapstructure:"cache_max_entries"`

	UpstreamURL     string        `mapstructure:"upstream_url"`
	UpstreamTimeout time.Duration `mapstructure:"upstream_timeout"`
	UpstreamRetries int           `mapstructure:"upstream_retries"`

	OpenAIAPIKey  string `mapstructure:"openai_api_key"`
	OpenAIModel   string `mapstructure:"openai_model"`
	OpenAIBaseURL string `mapstructure:"openai_base_url"`

	AllowedOrigins []string `mapstructure:"allowed_origins"`
	Development    bool     `mapstructure:"development"`
}

const (
	DefaultHTTPAddr          = ":8080"
	DefaultRateLimitCapacity = 60
	DefaultCacheMaxEntries   = 10_000
	DefaultUpstreamRetries   = 3
	DefaultOpenAIModel       = "gpt-4o-mini"

	envPrefix = "RENTAL"
)

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"http_addr":           DefaultHTTPAddr,
		"read_timeout":        15 * time.Second,
		"write_timeout":       30 * time.Second,
		"idle_timeout":        60 * time.Second,
		"shutdown_timeout":    10 * time.Second,
		"rate_limit_capacity": DefaultRateLimitCapacity,
		"rate_limit_refill":   time.Minute,
		"redis_addr":          "",
		"cache_ttl":           time.Hour,
		"cache_max_entries":   DefaultCacheMaxEntries,
		"upstream_url":        "",
		"upstream_timeout":    10 * time.Second,
		"upstream_retries":    DefaultUpstreamRetries,
		"openai_api_key":      "",
		"openai_model":        DefaultOpenAIModel,
		"openai_base_url":     "",
		"allowed_origins":     []string{"http://localhost:3000", "http://localhost:5173"},
		"development":         false,
	}
}

// Load reads the configuration from path (optional) and RENTAL_* environment
// variables, which take precedence over the file.
func Load(path string) (*Config, error) {
	v := viper.New()

	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.AllowedOrigins = splitList(cfg.AllowedOrigins)

	return &cfg, validateConfig(&cfg)
}

// splitList accepts origins given either as a list or as a single
// comma-separated environment value.
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if clean := strings.TrimSpace(part); clean != "" {
				out = append(out, clean)
			}
		}
	}
	return out
}

func validateConfig(cfg *Config) error {
	if cfg.HTTPAddr == "" {
		return errors.New("http_addr is empty")
	}
	if cfg.RateLimitCapacity <= 0 {
		return errors.New("invalid rate_limit_capacity")
	}
	if cfg.RateLimitRefill <= 0 {
		return errors.New("invalid rate_limit_refill")
	}
	if cfg.CacheTTL < 0 {
		return errors.New("invalid cache_ttl")
	}
	if cfg.CacheMaxEntries < 0 {
		return errors.New("invalid cache_max_entries")
	}
	if cfg.UpstreamRetries < 0 {
		return errors.New("invalid upstream_retries")
	}
	if cfg.UpstreamURL != "" {
		if err := validateURL(cfg.UpstreamURL); err != nil {
			return fmt.Errorf("invalid upstream_url: %w", err)
		}
	}
	if cfg.OpenAIBaseURL != "" {
		if err := validateURL(cfg.OpenAIBaseURL); err != nil {
			return fmt.Errorf("invalid openai_base_url: %w", err)
		}
	}
	return nil
}

func validateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.New("invalid URL format")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("URL must use http or https")
	}
	if parsed.Host == "" {
		return errors.New("URL has no host")
	}
	return nil
}

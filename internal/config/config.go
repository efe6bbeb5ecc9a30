package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Auth          AuthConfig          `mapstructure:"auth"`
	CORS          CORSConfig          `mapstructure:"cors"`
	RateLimit     RateLimitConfig     `mapstructure:"rate_limit"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Supabase      SupabaseConfig      `mapstructure:"supabase"`
	SMS           SMSConfig           `mapstructure:"sms"`
	TemplateCache TemplateCacheConfig `mapstructure:"template_cache"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// AuthConfig holds API key authentication settings.
type AuthConfig struct {
	APIKeys []string `mapstructure:"api_keys"`
}

// CORSConfig holds CORS policy settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

// RateLimitConfig holds per-IP request rate limiting settings.
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SupabaseConfig holds Supabase project settings. The repair-shop
// application keeps its SMS settings and message templates there.
type SupabaseConfig struct {
	URL        string `mapstructure:"url"`
	ServiceKey string `mapstructure:"service_key"`
}

// SMSConfig holds the environment fallback for the SMS gateway. These
// values are used only when the settings store is unreachable or empty;
// normally the active provider configuration comes from the store.
type SMSConfig struct {
	Provider       string `mapstructure:"provider"`
	APIKey         string `mapstructure:"api_key"`
	Username       string `mapstructure:"username"`
	Password       string `mapstructure:"password"`
	SenderID       string `mapstructure:"sender_id"`
	BaseURL        string `mapstructure:"base_url"`
	CustomEndpoint string `mapstructure:"custom_endpoint"`
	// CustomHeaders is a comma-separated list of key=value pairs when
	// sourced from the environment, e.g. "X-Auth=abc,X-Tenant=solnet".
	CustomHeaders  string `mapstructure:"custom_headers"`
	SendTimeoutSec int    `mapstructure:"send_timeout_sec"`
}

// TemplateCacheConfig holds settings for the Redis template cache.
type TemplateCacheConfig struct {
	Enabled bool `mapstructure:"enabled"`
	TTLSec  int  `mapstructure:"ttl_sec"`
}

// SendTimeout returns the outbound HTTP timeout for provider calls.
func (s SMSConfig) SendTimeout() time.Duration {
	if s.SendTimeoutSec <= 0 {
		return 10 * time.Second
	}
	return time.Duration(s.SendTimeoutSec) * time.Second
}

// ParsedCustomHeaders splits the comma-separated header list into a map.
func (s SMSConfig) ParsedCustomHeaders() map[string]string {
	if s.CustomHeaders == "" {
		return nil
	}
	headers := make(map[string]string)
	for _, pair := range strings.Split(s.CustomHeaders, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || key == "" {
			continue
		}
		headers[key] = value
	}
	return headers
}

// TTL returns the template cache TTL.
func (t TemplateCacheConfig) TTL() time.Duration {
	if t.TTLSec <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(t.TTLSec) * time.Second
}

// Load reads configuration from config.yaml and environment variables.
// Environment variables use the SOLNET_ prefix and underscore separators.
// Example: SOLNET_SMS_PROVIDER overrides sms.provider in config.yaml.
func Load() (*Config, error) {
	v := viper.New()

	// Config file settings
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Load .env file if it exists
	_ = godotenv.Load()

	// Environment variable settings
	v.SetEnvPrefix("SOLNET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("server.port", 8082)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("rate_limit.requests_per_second", 10)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("sms.provider", "africas_talking")
	v.SetDefault("sms.sender_id", "SolNet")
	v.SetDefault("sms.send_timeout_sec", 10)
	v.SetDefault("template_cache.enabled", true)
	v.SetDefault("template_cache.ttl_sec", 300) // 5 minutes

	// Read config file (optional — env vars can provide everything)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Handle comma-separated API keys from env var
	if apiKeysStr := v.GetString("auth.api_keys"); apiKeysStr != "" && len(cfg.Auth.APIKeys) == 0 {
		keys := strings.Split(apiKeysStr, ",")
		for i := range keys {
			keys[i] = strings.TrimSpace(keys[i])
		}
		cfg.Auth.APIKeys = keys
	}

	return &cfg, nil
}

package config

import (
	"fmt"
	"net/url"

	"github.com/spf13/viper"
)

type Config struct {
	APIBaseURL  string `mapstructure:"HMS_API_URL"`
	Env         string `mapstructure:"ENV"`
	Token       string `mapstructure:"PORTAL_TOKEN"`
	TokenSecret string `mapstructure:"PORTAL_TOKEN_SECRET"`
	PageSize    int    `mapstructure:"PAGE_SIZE"`
	HTTPTimeout int    `mapstructure:"HTTP_TIMEOUT_SECONDS"`
	RetryMax    int    `mapstructure:"HTTP_RETRY_MAX"`
	DemoPort    string `mapstructure:"DEMO_PORT"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("PAGE_SIZE", 7)
	v.SetDefault("HTTP_TIMEOUT_SECONDS", 30)
	v.SetDefault("HTTP_RETRY_MAX", 3)
	v.SetDefault("DEMO_PORT", "8090")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("HMS_API_URL")
	v.BindEnv("ENV")
	v.BindEnv("PORTAL_TOKEN")
	v.BindEnv("PORTAL_TOKEN_SECRET")
	v.BindEnv("PAGE_SIZE")
	v.BindEnv("HTTP_TIMEOUT_SECONDS")
	v.BindEnv("HTTP_RETRY_MAX")
	v.BindEnv("DEMO_PORT")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is safe to run with. Outside
// development a token secret is required so session claims are actually
// verified instead of trusted.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("HMS_API_URL is required")
	}
	if _, err := url.ParseRequestURI(c.APIBaseURL); err != nil {
		return fmt.Errorf("HMS_API_URL is not a valid URL: %w", err)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	if !c.IsDev() && c.TokenSecret == "" {
		return fmt.Errorf("PORTAL_TOKEN_SECRET is required when ENV is not development")
	}
	return nil
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	Log struct {
		Level  log.Level
		Format string
	}
	LLM struct {
		Provider string
		APIKey   string
		Model    string
		BaseURL  string
		// Prompt overrides the built-in system prompt template.
		Prompt   string
		SiteURL  string
		SiteName string
		Timeout  time.Duration
	}
	SessionLifetime time.Duration
	InsecureCookies bool
}

// Load reads config from environment (DEVGUIDE_ prefix) and optional devguide.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DEVGUIDE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("devguide")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file
	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("db.driver", "sqlite3")
	v.SetDefault("db.dsn", "file:devguide.db")
	v.SetDefault("session.lifetime", "24h")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("llm.site_name", "DevGuide Generator")
	v.SetDefault("llm.timeout", "60s")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.InsecureCookies = v.GetBool("insecure_cookies")
	cfg.Log.Format = strings.ToLower(v.GetString("log.format"))
	cfg.LLM.Provider = strings.ToLower(v.GetString("llm.provider"))
	cfg.LLM.APIKey = v.GetString("llm.api_key")
	cfg.LLM.Model = v.GetString("llm.model")
	cfg.LLM.BaseURL = strings.TrimRight(v.GetString("llm.base_url"), "/")
	cfg.LLM.Prompt = v.GetString("llm.prompt")
	cfg.LLM.SiteURL = v.GetString("llm.site_url")
	cfg.LLM.SiteName = v.GetString("llm.site_name")

	lifetime, err := time.ParseDuration(v.GetString("session.lifetime"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEVGUIDE_SESSION_LIFETIME: %w", err)
	}
	cfg.SessionLifetime = lifetime

	timeout, err := time.ParseDuration(v.GetString("llm.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEVGUIDE_LLM_TIMEOUT: %w", err)
	}
	cfg.LLM.Timeout = timeout

	level, err := log.ParseLevel(v.GetString("log.level"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEVGUIDE_LOG_LEVEL: %w", err)
	}
	cfg.Log.Level = level

	switch cfg.Log.Format {
	case "text", "json", "logfmt":
	default:
		return nil, fmt.Errorf("DEVGUIDE_LOG_FORMAT must be text, json or logfmt, got %q", cfg.Log.Format)
	}

	switch cfg.DB.Driver {
	case "sqlite3", "mysql", "postgres":
	default:
		return nil, fmt.Errorf("DEVGUIDE_DB_DRIVER must be sqlite3, mysql or postgres, got %q", cfg.DB.Driver)
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("DEVGUIDE_DB_DSN is required")
	}

	return cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config aggregates application settings that may be sourced from files or environment variables.
type Config struct {
	API    APIConfig    `mapstructure:"api"`
	Editor EditorConfig `mapstructure:"editor"`
	Photo  PhotoConfig  `mapstructure:"photo"`
}

// APIConfig contains HTTP server settings.
type APIConfig struct {
	Port           int    `mapstructure:"port"`
	AllowedOrigins string `mapstructure:"allowed_origins"`
}

// EditorConfig tunes the bullet generator defaults for the editing session.
type EditorConfig struct {
	DefaultBulletCount int `mapstructure:"default_bullet_count"`
	MaxBulletCount     int `mapstructure:"max_bullet_count"`
}

// PhotoConfig controls the profile photo upload path.
type PhotoConfig struct {
	MaxBytes      int64  `mapstructure:"max_bytes"`
	MIMEWhitelist string `mapstructure:"mime_whitelist"`
	ClamdAddr     string `mapstructure:"clamd_addr"`
}

// AllowedOriginList splits the comma-separated origin allow list.
func (a APIConfig) AllowedOriginList() []string {
	return splitList(a.AllowedOrigins)
}

// MIMEWhitelistList splits the comma-separated MIME allow list.
func (p PhotoConfig) MIMEWhitelistList() []string {
	return splitList(p.MIMEWhitelist)
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			result = append(result, v)
		}
	}
	return result
}

// Load reads configuration solely from environment variables (with optional defaults).
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad wraps Load and panics on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.allowed_origins", "")
	v.SetDefault("editor.default_bullet_count", 4)
	v.SetDefault("editor.max_bullet_count", 8)
	v.SetDefault("photo.max_bytes", 5*1024*1024)
	v.SetDefault("photo.mime_whitelist", "image/png,image/jpeg")
	v.SetDefault("photo.clamd_addr", "")
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"api.port":                    "API_PORT",
		"api.allowed_origins":         "API_ALLOWED_ORIGINS",
		"editor.default_bullet_count": "EDITOR_DEFAULT_BULLET_COUNT",
		"editor.max_bullet_count":     "EDITOR_MAX_BULLET_COUNT",
		"photo.max_bytes":             "PHOTO_MAX_BYTES",
		"photo.mime_whitelist":        "PHOTO_MIME_WHITELIST",
		"photo.clamd_addr":            "CLAMD_ADDR",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}

	return nil
}

func validate(cfg Config) error {
	if cfg.API.Port <= 0 {
		return errors.New("api port must be positive")
	}
	if cfg.Editor.DefaultBulletCount <= 0 {
		return errors.New("default bullet count must be positive")
	}
	if cfg.Editor.MaxBulletCount < cfg.Editor.DefaultBulletCount {
		return errors.New("max bullet count must not be below the default")
	}
	if cfg.Photo.MaxBytes <= 0 {
		return errors.New("photo max bytes must be positive")
	}
	if len(cfg.Photo.MIMEWhitelistList()) == 0 {
		return errors.New("photo mime whitelist is required")
	}
	return nil
}

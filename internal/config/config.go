package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/five82/nimbus/internal/geo"
	"github.com/five82/nimbus/internal/state"
	"github.com/five82/nimbus/internal/weatherapi"
)

// Config captures everything nimbus reads at startup.
type Config struct {
	APIKey          string
	BaseURL         string
	DefaultLocation string
	Favorites       []string
	GPS             *geo.Coords
	GeoURL          string
	// RefreshInterval reloads the dashboard periodically. Zero disables it.
	RefreshInterval time.Duration
	Log             LogConfig
}

// LogConfig controls the slog logger. The TUI owns stdout, so logs go to File.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text, json
	File   string
}

const (
	defaultConfigPath = "~/.config/nimbus/config.toml"
	defaultLogFile    = "~/.local/state/nimbus/nimbus.log"
	envPrefix         = "NIMBUS"
	// apiKeyEnv is the provider secret name used outside nimbus' own prefix.
	apiKeyEnv = "WEATHER_API_KEY"
)

// Load reads the TOML config at path (or the default path), applies
// NIMBUS_* environment overrides, and falls back to defaults when the file is
// missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetDefault("base_url", weatherapi.DefaultBaseURL)
	v.SetDefault("default_location", state.DefaultLocation)
	v.SetDefault("favorites", state.DefaultFavorites)
	v.SetDefault("geo_url", geo.DefaultIPLookupURL)
	v.SetDefault("refresh_interval", "0s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", defaultLogFile)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("api_key", envPrefix+"_API_KEY", apiKeyEnv); err != nil {
		return Config{}, fmt.Errorf("bind api key env: %w", err)
	}

	if _, err := os.Stat(resolved); err == nil {
		v.SetConfigFile(resolved)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	cfg := Config{
		APIKey:          strings.TrimSpace(v.GetString("api_key")),
		BaseURL:         strings.TrimSpace(v.GetString("base_url")),
		DefaultLocation: strings.TrimSpace(v.GetString("default_location")),
		Favorites:       favoritesFrom(v),
		GeoURL:          strings.TrimSpace(v.GetString("geo_url")),
		RefreshInterval: v.GetDuration("refresh_interval"),
		Log: LogConfig{
			Level:  strings.TrimSpace(v.GetString("log.level")),
			Format: strings.TrimSpace(v.GetString("log.format")),
			File:   strings.TrimSpace(v.GetString("log.file")),
		},
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = weatherapi.DefaultBaseURL
	}
	if cfg.DefaultLocation == "" {
		cfg.DefaultLocation = state.DefaultLocation
	}
	if cfg.RefreshInterval < 0 {
		cfg.RefreshInterval = 0
	}
	if cfg.Log.File != "" {
		cfg.Log.File = mustExpand(cfg.Log.File)
	}

	if raw := strings.TrimSpace(v.GetString("gps")); raw != "" {
		coords, err := geo.ParseCoords(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: gps: %w", err)
		}
		cfg.GPS = &coords
	}

	return cfg, nil
}

// favoritesFrom reads the favorites list. Environment values arrive as one
// comma-separated string, since city names may contain spaces.
func favoritesFrom(v *viper.Viper) []string {
	raw, ok := v.Get("favorites").(string)
	if !ok {
		return v.GetStringSlice("favorites")
	}
	var out []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// Validate reports configuration that prevents startup.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("weather api key is not set (use api_key in config or %s)", apiKeyEnv)
	}
	return nil
}

// NewLogger creates a slog.Logger writing to w based on the log configuration.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// OpenLog opens the configured log file for appending, creating directories
// as needed. An empty File discards logs.
func (c Config) OpenLog() (io.WriteCloser, error) {
	if strings.TrimSpace(c.Log.File) == "" {
		return nopCloser{io.Discard}, nil
	}
	if err := os.MkdirAll(filepath.Dir(c.Log.File), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(c.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

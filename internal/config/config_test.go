package config

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/five82/nimbus/internal/geo"
	"github.com/five82/nimbus/internal/state"
	"github.com/five82/nimbus/internal/weatherapi"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"WEATHER_API_KEY", "NIMBUS_API_KEY", "NIMBUS_DEFAULT_LOCATION", "NIMBUS_FAVORITES", "NIMBUS_GPS", "NIMBUS_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BaseURL != weatherapi.DefaultBaseURL {
		t.Fatalf("BaseURL = %q, want %q", cfg.BaseURL, weatherapi.DefaultBaseURL)
	}
	if cfg.DefaultLocation != state.DefaultLocation {
		t.Fatalf("DefaultLocation = %q, want %q", cfg.DefaultLocation, state.DefaultLocation)
	}
	if !slices.Equal(cfg.Favorites, state.DefaultFavorites) {
		t.Fatalf("Favorites = %v, want %v", cfg.Favorites, state.DefaultFavorites)
	}
	if cfg.GeoURL != geo.DefaultIPLookupURL {
		t.Fatalf("GeoURL = %q, want %q", cfg.GeoURL, geo.DefaultIPLookupURL)
	}
	if cfg.GPS != nil {
		t.Fatalf("GPS = %v, want nil", cfg.GPS)
	}
	if cfg.RefreshInterval != 0 {
		t.Fatalf("RefreshInterval = %v, want 0", cfg.RefreshInterval)
	}

	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.Log.File != wantLog {
		t.Fatalf("Log.File = %q, want %q", cfg.Log.File, wantLog)
	}
	if cfg.Validate() == nil {
		t.Fatalf("Validate returned nil error, want missing api key error")
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
api_key = "  abc123  "
default_location = " Busan "
favorites = ["Busan", "Tokyo"]
gps = "35.1, 129.04"
refresh_interval = "15m"

[log]
level = "debug"
format = "json"
file = "~/logs/nimbus.log"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIKey != "abc123" {
		t.Fatalf("APIKey = %q, want abc123", cfg.APIKey)
	}
	if cfg.DefaultLocation != "Busan" {
		t.Fatalf("DefaultLocation = %q, want Busan", cfg.DefaultLocation)
	}
	if !slices.Equal(cfg.Favorites, []string{"Busan", "Tokyo"}) {
		t.Fatalf("Favorites = %v, want [Busan Tokyo]", cfg.Favorites)
	}
	if cfg.GPS == nil || cfg.GPS.Latitude != 35.1 || cfg.GPS.Longitude != 129.04 {
		t.Fatalf("GPS = %v, want 35.1,129.04", cfg.GPS)
	}
	if cfg.RefreshInterval != 15*time.Minute {
		t.Fatalf("RefreshInterval = %v, want 15m", cfg.RefreshInterval)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("Log = %#v, want debug/json", cfg.Log)
	}
	if !strings.HasPrefix(cfg.Log.File, home) {
		t.Fatalf("Log.File = %q, want it under HOME %q", cfg.Log.File, home)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("WEATHER_API_KEY", "from-env")
	t.Setenv("NIMBUS_DEFAULT_LOCATION", "Lisbon")
	t.Setenv("NIMBUS_FAVORITES", "Seoul, New York ,,London")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("default_location = \"Busan\"\nfavorites = [\"Busan\"]\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIKey != "from-env" {
		t.Fatalf("APIKey = %q, want from-env", cfg.APIKey)
	}
	if cfg.DefaultLocation != "Lisbon" {
		t.Fatalf("DefaultLocation = %q, want Lisbon", cfg.DefaultLocation)
	}
	want := []string{"Seoul", "New York", "London"}
	if !slices.Equal(cfg.Favorites, want) {
		t.Fatalf("Favorites = %q, want %q", cfg.Favorites, want)
	}
}

func TestLoad_PrefixedKeyWinsOverProviderKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("WEATHER_API_KEY", "generic")
	t.Setenv("NIMBUS_API_KEY", "specific")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIKey != "specific" {
		t.Fatalf("APIKey = %q, want specific", cfg.APIKey)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
base_url = "   "
default_location = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BaseURL != weatherapi.DefaultBaseURL {
		t.Fatalf("BaseURL = %q, want %q", cfg.BaseURL, weatherapi.DefaultBaseURL)
	}
	if cfg.DefaultLocation != state.DefaultLocation {
		t.Fatalf("DefaultLocation = %q, want %q", cfg.DefaultLocation, state.DefaultLocation)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`api_key = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_InvalidGPSFails(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`gps = "north pole"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "gps") {
		t.Fatalf("Load error = %v, want gps parse error", err)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestNewLogger_LevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{Log: LogConfig{Level: "warn", Format: "json"}}
	logger := cfg.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "query", "Seoul")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record written at warn level: %q", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"query":"Seoul"`) {
		t.Fatalf("json output = %q, want msg and query fields", out)
	}
}

func TestOpenLog_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "nimbus.log")
	cfg := Config{Log: LogConfig{File: path}}

	w, err := cfg.OpenLog()
	if err != nil {
		t.Fatalf("OpenLog returned error: %v", err)
	}
	if _, err := w.Write([]byte("line\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "line\n" {
		t.Fatalf("log contents = %q, want line", data)
	}
}

func TestOpenLog_EmptyFileDiscards(t *testing.T) {
	w, err := Config{}.OpenLog()
	if err != nil {
		t.Fatalf("OpenLog returned error: %v", err)
	}
	if _, err := w.Write([]byte("x")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

// Package config loads nimbus configuration from TOML and the environment.
//
// # Overview
//
// nimbus needs one secret (the weatherapi.com key) plus a handful of optional
// settings. Load reads them through viper so that every value can come from
// the config file or be overridden by an environment variable.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/nimbus/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. NIMBUS_* environment variables override file values
//
// The API key is also read from WEATHER_API_KEY. NIMBUS_API_KEY wins when
// both are set. A .env file in the working directory is loaded by the app
// package before Load runs.
//
// # TOML Format
//
//	api_key = "..."
//	base_url = "https://api.weatherapi.com/v1"
//	default_location = "Seoul"
//	favorites = ["Seoul", "New York", "London"]
//	gps = "37.5665,126.978"   # optional fixed position for GPS lookups
//	geo_url = "http://ip-api.com/json/"
//	refresh_interval = "10m"  # optional periodic reload, off by default
//
//	[log]
//	level = "info"            # debug, info, warn, error
//	format = "text"           # text, json
//	file = "~/.local/state/nimbus/nimbus.log"
//
// # Error Handling
//
// Load returns errors for unreadable or unparsable files and an invalid gps
// value. A missing file is not an error. Validate reports a missing API key,
// which is the only setting nimbus cannot run without.
package config

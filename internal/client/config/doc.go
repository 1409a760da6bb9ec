// Package config loads runtime configuration for the UFood CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string     base URL of the UFood API
//	-t duration   per-request timeout
//	-d string     local SQLite database file
//	-l string     log level
//	-r float      outgoing requests per second
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "5s"
// or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://ufoodapi.herokuapp.com",
//	  "request_timeout": "5s",
//	  "token_ttl": "24h",
//	  "data_dir": "~/.ufood",
//	  "database_path": "ufood.db",
//	  "log_level": "info",
//	  "rate_limit": 5
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config

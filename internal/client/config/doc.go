// Package config loads runtime configuration for the Expensify client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables: EXPENSIFY_API_URL, EXPENSIFY_DB,
//     EXPENSIFY_REQUEST_TIMEOUT (a Go duration string such as "15s").
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API (e.g. http://localhost:5000/api)
//	-f string   local SQLite database file
//	-t int      request timeout in seconds (0 = transport default)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so the value can be
// either a string like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:5000/api",
//	  "database_file": "expensify.db",
//	  "request_timeout": "15s"
//	}
package config

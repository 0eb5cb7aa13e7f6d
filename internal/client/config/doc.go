// Package config loads runtime configuration for the WillBank CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed WILLBANK_, optionally read from a .env
//     file in the working directory (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// # Environment
//
//	WILLBANK_CLIENT_URL, WILLBANK_ACCOUNT_URL, WILLBANK_TRANSACTION_URL,
//	WILLBANK_NOTIFICATION_URL, WILLBANK_DASHBOARD_URL, WILLBANK_AUTH_BASE_PATH,
//	WILLBANK_REQUEST_TIMEOUT, WILLBANK_REFRESH_TIMEOUT, WILLBANK_PUBLIC_ENDPOINTS,
//	WILLBANK_STORE_PATH, WILLBANK_STORE_PASSPHRASE, WILLBANK_LOG_FORMAT,
//	WILLBANK_LOG_LEVEL, WILLBANK_ONLINE_CHECK_INTERVAL
//
// # JSON schema
//
// Intervals accept strings like "3s" or integer nanoseconds:
//
//	{
//	  "client_service_url": "http://localhost:8081",
//	  "request_timeout": "15s",
//	  "public_endpoints": ["/api/auth/login", "/api/auth/register", "/api/auth/refresh"],
//	  "store_path": "credentials.db",
//	  "online_check_interval": "3s"
//	}
//
// Malformed values in any source panic during LoadConfig.
package config

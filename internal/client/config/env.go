package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "WILLBANK_"

// loadDotEnv reads .env files into the process environment. Variables that
// are already set win; missing files are ignored.
func loadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			panic(fmt.Errorf("load %s: %w", f, err))
		}
	}
}

func envString(name string, dst *string) {
	if v, ok := os.LookupEnv(envPrefix + name); ok {
		*dst = v
	}
}

func envDuration(name string, dst *time.Duration) {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(fmt.Errorf("%s%s: %w", envPrefix, name, err))
	}
	*dst = d
}

// parseEnv overlays Config with WILLBANK_* environment variables.
//
// Durations use Go syntax ("15s"); WILLBANK_PUBLIC_ENDPOINTS is comma
// separated. Panics on malformed values.
func parseEnv(cfg *Config) {
	envString("CLIENT_URL", &cfg.ClientServiceURL)
	envString("ACCOUNT_URL", &cfg.AccountServiceURL)
	envString("TRANSACTION_URL", &cfg.TransactionServiceURL)
	envString("NOTIFICATION_URL", &cfg.NotificationServiceURL)
	envString("DASHBOARD_URL", &cfg.DashboardServiceURL)
	envString("AUTH_BASE_PATH", &cfg.AuthBasePath)
	envString("STORE_PATH", &cfg.StorePath)
	envString("STORE_PASSPHRASE", &cfg.StorePassphrase)
	envString("LOG_FORMAT", &cfg.LogFormat)
	envString("LOG_LEVEL", &cfg.LogLevel)

	envDuration("REQUEST_TIMEOUT", &cfg.RequestTimeout)
	envDuration("REFRESH_TIMEOUT", &cfg.RefreshTimeout)
	envDuration("ONLINE_CHECK_INTERVAL", &cfg.OnlineCheckInterval)

	if v, ok := os.LookupEnv(envPrefix + "PUBLIC_ENDPOINTS"); ok {
		cfg.PublicEndpoints = splitList(v)
	}
}

func splitList(v string) []string {
	out := []string{}
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

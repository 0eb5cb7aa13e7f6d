package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/willbank/internal/flagx"
	"github.com/dmitrijs2005/willbank/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "3s" or as integer nanoseconds.
type JsonConfig struct {
	ClientServiceURL       string         `json:"client_service_url"`
	AccountServiceURL      string         `json:"account_service_url"`
	TransactionServiceURL  string         `json:"transaction_service_url"`
	NotificationServiceURL string         `json:"notification_service_url"`
	DashboardServiceURL    string         `json:"dashboard_service_url"`
	AuthBasePath           string         `json:"auth_base_path"`
	RequestTimeout         timex.Duration `json:"request_timeout"`
	RefreshTimeout         timex.Duration `json:"refresh_timeout"`
	PublicEndpoints        []string       `json:"public_endpoints"`
	StorePath              string         `json:"store_path"`
	StorePassphrase        string         `json:"store_passphrase"`
	LogFormat              string         `json:"log_format"`
	LogLevel               string         `json:"log_level"`
	OnlineCheckInterval    timex.Duration `json:"online_check_interval"`
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Fields missing from the file keep their current value.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.ClientServiceURL, jc.ClientServiceURL)
	setString(&cfg.AccountServiceURL, jc.AccountServiceURL)
	setString(&cfg.TransactionServiceURL, jc.TransactionServiceURL)
	setString(&cfg.NotificationServiceURL, jc.NotificationServiceURL)
	setString(&cfg.DashboardServiceURL, jc.DashboardServiceURL)
	setString(&cfg.AuthBasePath, jc.AuthBasePath)
	setString(&cfg.StorePath, jc.StorePath)
	setString(&cfg.StorePassphrase, jc.StorePassphrase)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.LogLevel, jc.LogLevel)

	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RefreshTimeout.Duration > 0 {
		cfg.RefreshTimeout = jc.RefreshTimeout.Duration
	}
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.PublicEndpoints != nil {
		cfg.PublicEndpoints = jc.PublicEndpoints
	}
}

package config

import (
	"time"

	"github.com/dmitrijs2005/willbank/internal/client/client"
)

// Config holds runtime settings for the WillBank CLI.
//
// Units: all durations are time.Duration. StorePath ":memory:" keeps the
// session in process memory only. A nil PublicEndpoints means the login,
// register and refresh paths under AuthBasePath.
type Config struct {
	ClientServiceURL       string
	AccountServiceURL      string
	TransactionServiceURL  string
	NotificationServiceURL string
	DashboardServiceURL    string

	AuthBasePath    string
	RequestTimeout  time.Duration
	RefreshTimeout  time.Duration
	PublicEndpoints []string

	StorePath       string
	StorePassphrase string

	LogFormat string
	LogLevel  string

	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with the local development setup.
func (c *Config) LoadDefaults() {
	c.ClientServiceURL = "http://localhost:8081"
	c.AccountServiceURL = "http://localhost:8082"
	c.TransactionServiceURL = "http://localhost:8083"
	c.NotificationServiceURL = "http://localhost:8084"
	c.DashboardServiceURL = "http://localhost:8085"

	c.AuthBasePath = client.DefaultAuthBasePath
	c.RequestTimeout = client.DefaultRequestTimeout
	c.RefreshTimeout = client.DefaultRefreshTimeout
	c.PublicEndpoints = nil

	c.StorePath = "credentials.db"
	c.StorePassphrase = ""

	c.LogFormat = "text"
	c.LogLevel = "info"

	c.OnlineCheckInterval = 3 * time.Second
}

// ServiceURLs maps each service to its configured base URL.
func (c *Config) ServiceURLs() map[client.Service]string {
	return map[client.Service]string{
		client.ServiceClient:       c.ClientServiceURL,
		client.ServiceAccount:      c.AccountServiceURL,
		client.ServiceTransaction:  c.TransactionServiceURL,
		client.ServiceNotification: c.NotificationServiceURL,
		client.ServiceDashboard:    c.DashboardServiceURL,
	}
}

// HTTPConfig converts c into the transport settings.
func (c *Config) HTTPConfig() client.Config {
	return client.Config{
		BaseURLs:        c.ServiceURLs(),
		AuthBasePath:    c.AuthBasePath,
		RequestTimeout:  c.RequestTimeout,
		RefreshTimeout:  c.RefreshTimeout,
		PublicEndpoints: c.PublicEndpoints,
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including an optional .env file), JSON (if present) and
// command-line flags (if present). Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	loadDotEnv()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/willbank/internal/flagx"
)

var knownFlags = []string{
	"-a", "-account-url", "-transaction-url", "-notification-url", "-dashboard-url",
	"-i", "-t", "-s", "-p", "-log-format", "-log-level",
}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string                client service URL (auth lives there)
//	-account-url string      account service URL
//	-transaction-url string  transaction service URL
//	-notification-url string notification service URL
//	-dashboard-url string    dashboard service URL
//	-i int                   online check interval in seconds
//	-t duration              per-request timeout
//	-s string                credential store path, ":memory:" for none
//	-p list                  public endpoint patterns, repeatable
//	-log-format string       text, json or zap
//	-log-level string        debug, info, warn or error
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ClientServiceURL, "a", cfg.ClientServiceURL, "client service URL")
	fs.StringVar(&cfg.AccountServiceURL, "account-url", cfg.AccountServiceURL, "account service URL")
	fs.StringVar(&cfg.TransactionServiceURL, "transaction-url", cfg.TransactionServiceURL, "transaction service URL")
	fs.StringVar(&cfg.NotificationServiceURL, "notification-url", cfg.NotificationServiceURL, "notification service URL")
	fs.StringVar(&cfg.DashboardServiceURL, "dashboard-url", cfg.DashboardServiceURL, "dashboard service URL")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "credential store path")
	var public flagx.StringList
	fs.Var(&public, "p", "public endpoint pattern (repeatable)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text, json or zap")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		case "p":
			cfg.PublicEndpoints = public
		}
	})
}

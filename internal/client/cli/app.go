package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/willbank/internal/client/client"
	"github.com/dmitrijs2005/willbank/internal/client/config"
	"github.com/dmitrijs2005/willbank/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/willbank/internal/client/services"
	"github.com/dmitrijs2005/willbank/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// memoryStore is the StorePath value that keeps credentials in process memory.
const memoryStore = ":memory:"

const pingTimeout = 3 * time.Second

type App struct {
	config *config.Config
	log    logging.Logger

	http                *client.HTTPClient
	authService         services.AuthService
	accountService      services.AccountService
	transactionService  services.TransactionService
	notificationService services.NotificationService
	dashboardService    services.DashboardService
	healthService       services.HealthService

	closeStore func() error

	mu   sync.RWMutex
	mode Mode

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the credential store named by c.StorePath, builds the
// authenticated transport and the service clients, and binds the console to
// stdin/stdout.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	repo, closeStore, err := openStore(ctx, c)
	if err != nil {
		log.Error(ctx, "error initializing credential store", "error", err)
		return nil, err
	}

	hc := client.New(c.HTTPConfig(), client.NewSession(repo, log), log)

	a := newApp(c, hc, log, os.Stdin, os.Stdout)
	a.closeStore = closeStore
	return a, nil
}

func newApp(c *config.Config, hc *client.HTTPClient, log logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		config:              c,
		log:                 log,
		http:                hc,
		authService:         services.NewAuthService(hc),
		accountService:      services.NewAccountService(hc),
		transactionService:  services.NewTransactionService(hc),
		notificationService: services.NewNotificationService(hc),
		dashboardService:    services.NewDashboardService(hc),
		healthService:       services.NewHealthService(hc),
		closeStore:          func() error { return nil },
		mode:                ModeOffline,
		reader:              bufio.NewReader(in),
		out:                 out,
	}
	hc.OnSessionExpired(a.onSessionExpired)
	return a
}

// openStore returns the repository for c.StorePath, sealed with
// c.StorePassphrase when one is configured.
func openStore(ctx context.Context, c *config.Config) (credentials.Repository, func() error, error) {
	var (
		repo      credentials.Repository
		closeRepo = func() error { return nil }
	)

	if c.StorePath == memoryStore {
		repo = credentials.NewMemoryRepository()
	} else {
		db, err := credentials.InitDatabase(ctx, c.StorePath)
		if err != nil {
			return nil, nil, err
		}
		repo = credentials.NewSQLiteRepository(db)
		closeRepo = db.Close
	}

	if c.StorePassphrase == "" {
		return repo, closeRepo, nil
	}

	sealed, err := credentials.NewSealedRepository(ctx, repo, []byte(c.StorePassphrase))
	if err != nil {
		_ = closeRepo()
		return nil, nil, fmt.Errorf("error unlocking credential store: %w", err)
	}
	return sealed, closeRepo, nil
}

func (a *App) onSessionExpired(ctx context.Context, cause error) {
	a.log.Warn(ctx, "session expired", "cause", cause)
	fmt.Fprintln(a.out, "Your session has expired. Please log in again.")
}

func (a *App) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), "switched mode", "mode", mode)
	}
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.closeStore(); err != nil {
			a.log.Error(ctx, "error closing credential store", "error", err)
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.authService.IsAuthenticated(context.Background())
}

// StartOnlineStatusWatcher pings the client service every interval and
// flips the console between online and offline mode. It returns when ctx is
// done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkHealth(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkHealth(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := a.healthService.Ping(ctx); err != nil {
		a.log.Debug(ctx, "ping failed", "error", err)
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

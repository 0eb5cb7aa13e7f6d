package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/willbank/internal/client/models"
	"github.com/dmitrijs2005/willbank/internal/logging"
	"golang.org/x/sync/singleflight"
)

// State of the refresh coordinator.
type State int32

const (
	StateIdle State = iota
	StateRefreshing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRefreshing:
		return "refreshing"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// RefreshFunc exchanges a refresh token for a new token pair. Any error
// ends the session.
type RefreshFunc func(ctx context.Context, refreshToken string) (*models.LoginResponse, error)

// SessionExpiredFunc is called after credentials were purged.
type SessionExpiredFunc func(ctx context.Context, cause error)

const refreshKey = "refresh"

// Coordinator runs at most one token refresh at a time. Callers arriving
// while a refresh is in flight wait for its result.
type Coordinator struct {
	session *Session
	refresh RefreshFunc
	timeout time.Duration
	log     logging.Logger

	group singleflight.Group
	state atomic.Int32
	calls atomic.Int64

	mu    sync.RWMutex
	hooks []SessionExpiredFunc
}

func NewCoordinator(session *Session, refresh RefreshFunc, timeout time.Duration, log logging.Logger) *Coordinator {
	if log == nil {
		log = logging.Nop()
	}
	return &Coordinator{session: session, refresh: refresh, timeout: timeout, log: log}
}

// State reports whether a refresh is in flight.
func (c *Coordinator) State() State {
	return State(c.state.Load())
}

// Calls returns how many refresh requests were sent since creation.
func (c *Coordinator) Calls() int64 {
	return c.calls.Load()
}

// OnSessionExpired registers fn to run whenever the session is purged
// because it could not be refreshed.
func (c *Coordinator) OnSessionExpired(fn SessionExpiredFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hooks = append(c.hooks, fn)
}

// Refresh returns an access token newer than staleToken.
//
// The shared refresh is detached from ctx and bounded by the coordinator
// timeout, so a waiter giving up does not abort it for the others. A caller
// that joined a flight started for an older token and got its own stale
// token back starts one more flight of its own.
func (c *Coordinator) Refresh(ctx context.Context, staleToken string) (string, error) {
	token, err := c.wait(ctx, staleToken)
	if err != nil || token != staleToken {
		return token, err
	}
	c.log.Debug(ctx, "joined refresh returned the rejected token, refreshing again")
	return c.wait(ctx, staleToken)
}

func (c *Coordinator) wait(ctx context.Context, staleToken string) (string, error) {
	detached := context.WithoutCancel(ctx)
	ch := c.group.DoChan(refreshKey, func() (any, error) {
		return c.run(detached, staleToken)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: waiting for token refresh: %w", ErrTimeout, ctx.Err())
		}
		return "", ctx.Err()
	}
}

func (c *Coordinator) run(ctx context.Context, staleToken string) (string, error) {
	c.state.Store(int32(StateRefreshing))
	defer c.state.Store(int32(StateIdle))

	// Another refresh finished after the caller's request was sent.
	if current := c.session.AccessToken(ctx); current != "" && current != staleToken {
		c.log.Debug(ctx, "access token already rotated")
		return current, nil
	}

	refreshToken := c.session.RefreshToken(ctx)
	if refreshToken == "" {
		return "", c.expire(ctx, errNoRefreshToken)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	c.calls.Add(1)
	resp, err := c.refresh(ctx, refreshToken)
	if err != nil {
		return "", c.expire(ctx, err)
	}
	if resp == nil || resp.AccessToken == "" {
		return "", c.expire(ctx, errEmptyAccessToken)
	}

	if err := c.session.Save(context.WithoutCancel(ctx), resp); err != nil {
		return "", err
	}

	c.log.Info(ctx, "access token refreshed")
	return resp.AccessToken, nil
}

func (c *Coordinator) expire(ctx context.Context, cause error) error {
	ctx = context.WithoutCancel(ctx)

	if err := c.session.Clear(ctx); err != nil {
		c.log.Error(ctx, "failed to purge credentials", "error", err)
	}

	c.log.Warn(ctx, "session expired", "cause", cause)

	err := fmt.Errorf("%w: %w", ErrSessionExpired, cause)

	c.mu.RLock()
	hooks := append([]SessionExpiredFunc(nil), c.hooks...)
	c.mu.RUnlock()

	for _, fn := range hooks {
		fn(ctx, err)
	}
	return err
}

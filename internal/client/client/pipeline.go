package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/willbank/internal/logging"
	"github.com/google/uuid"
)

// SendFunc sends one attempt and returns the response for any status.
// Only transport failures are returned as errors.
type SendFunc func(ctx context.Context, a Attempt) (*Response, error)

// Middleware wraps a SendFunc.
type Middleware func(SendFunc) SendFunc

// Chain wraps base so that mws[0] is the outermost layer.
func Chain(base SendFunc, mws ...Middleware) SendFunc {
	send := base
	for i := len(mws) - 1; i >= 0; i-- {
		send = mws[i](send)
	}
	return send
}

// WithRequestID assigns an X-Request-ID shared by all attempts of a request.
func WithRequestID(log logging.Logger) Middleware {
	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, a Attempt) (*Response, error) {
			if a.RequestID == "" {
				a.RequestID = uuid.NewString()
			}

			resp, err := next(ctx, a)
			if err != nil {
				log.Debug(ctx, "request failed", "request_id", a.RequestID, "path", a.Request.Path, "error", err)
				return nil, err
			}
			log.Debug(ctx, "request done",
				"request_id", a.RequestID,
				"method", a.Request.Method,
				"path", a.Request.Path,
				"status", resp.Status,
				"attempt", resp.Attempt.N,
			)
			return resp, nil
		}
	}
}

// WithBearer puts the stored access token on attempts for protected paths.
// A missing or unreadable token sends the request unauthenticated.
func WithBearer(session *Session, public Allowlist) Middleware {
	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, a Attempt) (*Response, error) {
			if public.Match(a.Request.Path) {
				a.Token = ""
			} else if a.Token == "" {
				a.Token = session.AccessToken(ctx)
			}
			return next(ctx, a)
		}
	}
}

// WithRefresh refreshes the session once when a protected original attempt
// gets 401 and re-sends it with the new token. The retry's response is
// returned as is, so a second 401 reaches the caller.
func WithRefresh(coord *Coordinator, public Allowlist, log logging.Logger) Middleware {
	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, a Attempt) (*Response, error) {
			resp, err := next(ctx, a)
			if err != nil || resp.Status != http.StatusUnauthorized {
				return resp, err
			}
			if a.IsRetry() || public.Match(a.Request.Path) {
				return resp, nil
			}

			log.Info(ctx, "access token rejected, refreshing", "request_id", a.RequestID, "path", a.Request.Path)

			token, err := coord.Refresh(ctx, a.Token)
			if err != nil {
				return nil, err
			}
			return next(ctx, a.Retry(token))
		}
	}
}

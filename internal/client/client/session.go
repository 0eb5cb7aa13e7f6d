package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/willbank/internal/client/models"
	"github.com/dmitrijs2005/willbank/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/willbank/internal/common"
	"github.com/dmitrijs2005/willbank/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// Session is the typed view of the persisted credentials.
// Read failures are logged and reported as an absent value.
type Session struct {
	repo credentials.Repository
	log  logging.Logger
}

func NewSession(repo credentials.Repository, log logging.Logger) *Session {
	if log == nil {
		log = logging.Nop()
	}
	return &Session{repo: repo, log: log}
}

func (s *Session) get(ctx context.Context, key string) string {
	v, ok, err := s.repo.Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "credential store read failed", "key", key, "error", err)
		return ""
	}
	if !ok {
		return ""
	}
	return v
}

func (s *Session) AccessToken(ctx context.Context) string {
	return s.get(ctx, common.AccessTokenKey)
}

func (s *Session) RefreshToken(ctx context.Context) string {
	return s.get(ctx, common.RefreshTokenKey)
}

// IsAuthenticated reports whether an access token is stored.
func (s *Session) IsAuthenticated(ctx context.Context) bool {
	return s.AccessToken(ctx) != ""
}

// CurrentUser returns the cached profile, if any.
func (s *Session) CurrentUser(ctx context.Context) (*models.Client, bool) {
	raw := s.get(ctx, common.CurrentUserKey)
	if raw == "" {
		return nil, false
	}

	var c models.Client
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		s.log.Warn(ctx, "cached user is corrupt", "error", err)
		return nil, false
	}
	return &c, true
}

func (s *Session) SetCurrentUser(ctx context.Context, c *models.Client) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode current user: %w", err)
	}
	return s.repo.Set(ctx, common.CurrentUserKey, string(data))
}

// Save stores the token pair and, when present, the profile in one write.
func (s *Session) Save(ctx context.Context, resp *models.LoginResponse) error {
	values := map[string]string{
		common.AccessTokenKey:  resp.AccessToken,
		common.RefreshTokenKey: resp.RefreshToken,
	}

	if resp.Client != nil {
		data, err := json.Marshal(resp.Client)
		if err != nil {
			return fmt.Errorf("encode current user: %w", err)
		}
		values[common.CurrentUserKey] = string(data)
	}

	if err := s.repo.SetMany(ctx, values); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear removes the three session keys.
func (s *Session) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, common.SessionKeys...); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// ExpiresAt returns the expiry of the stored access token, or the zero time
// when there is none or the token is not a JWT with an exp claim.
func (s *Session) ExpiresAt(ctx context.Context) time.Time {
	exp, err := TokenExpiry(s.AccessToken(ctx))
	if err != nil {
		return time.Time{}
	}
	return exp
}

// TokenExpiry reads the exp claim of a JWT without verifying its signature.
// The client never holds the signing key; the server stays the authority.
func TokenExpiry(token string) (time.Time, error) {
	if token == "" {
		return time.Time{}, common.ErrInvalidToken
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, common.ErrInvalidToken
	}
	return exp.Time, nil
}

package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/willbank/internal/client/client"
	"github.com/dmitrijs2005/willbank/internal/client/models"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login, Register: authenticate against the client service and persist
//     the token pair and profile.
//   - Logout: purge the local session.
//   - Me: the cached profile, fetched and cached on a miss.
//   - ChangePassword: change the password of the logged-in client.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.Client, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.Client, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.Client, error)
	RefreshProfile(ctx context.Context) (*models.Client, error)
	ChangePassword(ctx context.Context, current, next string) error
	IsAuthenticated(ctx context.Context) bool
	AccessToken(ctx context.Context) string
	RefreshToken(ctx context.Context) string
}

type authService struct {
	client *client.HTTPClient
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(c *client.HTTPClient) AuthService {
	return &authService{client: c}
}

func (a *authService) session() *client.Session { return a.client.Session() }

// Login exchanges credentials for a token pair and stores it.
func (a *authService) Login(ctx context.Context, email, password string) (*models.Client, error) {
	resp, err := client.PostPublic[models.LoginResponse](ctx, a.client, client.ServiceClient, a.client.AuthPath("/login"),
		models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	return a.establish(ctx, &resp)
}

// Register creates the client and logs it in with the returned tokens.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.Client, error) {
	resp, err := client.PostPublic[models.LoginResponse](ctx, a.client, client.ServiceClient, a.client.AuthPath("/register"), req)
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	return a.establish(ctx, &resp)
}

func (a *authService) establish(ctx context.Context, resp *models.LoginResponse) (*models.Client, error) {
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("login error: empty access token")
	}
	if err := a.session().Save(ctx, resp); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	if resp.Client != nil {
		return resp.Client, nil
	}
	return a.RefreshProfile(ctx)
}

// Logout removes the tokens and cached profile. The server keeps no
// session state for the client, so nothing is sent.
func (a *authService) Logout(ctx context.Context) error {
	return a.session().Clear(ctx)
}

func (a *authService) Me(ctx context.Context) (*models.Client, error) {
	if c, ok := a.session().CurrentUser(ctx); ok {
		return c, nil
	}
	return a.RefreshProfile(ctx)
}

// RefreshProfile fetches the profile from the server and caches it.
func (a *authService) RefreshProfile(ctx context.Context) (*models.Client, error) {
	c, err := client.Get[models.Client](ctx, a.client, client.ServiceClient, a.client.AuthPath("/me"), nil)
	if err != nil {
		return nil, fmt.Errorf("profile error: %w", err)
	}
	if err := a.session().SetCurrentUser(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (a *authService) ChangePassword(ctx context.Context, current, next string) error {
	_, err := a.client.Send(ctx, &client.Request{
		Service: client.ServiceClient,
		Method:  http.MethodPut,
		Path:    a.client.AuthPath("/change-password"),
		Body:    models.ChangePasswordRequest{CurrentPassword: current, NewPassword: next},
	})
	if err != nil {
		return fmt.Errorf("change password error: %w", err)
	}
	return nil
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	return a.session().IsAuthenticated(ctx)
}

func (a *authService) AccessToken(ctx context.Context) string {
	return a.session().AccessToken(ctx)
}

func (a *authService) RefreshToken(ctx context.Context) string {
	return a.session().RefreshToken(ctx)
}

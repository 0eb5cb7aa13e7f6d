package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/willbank/internal/client/models"
	"github.com/dmitrijs2005/willbank/internal/netx"
)

var (
	// ErrNetwork reports that no response was received: connection refused,
	// DNS failure, reset and so on.
	ErrNetwork = errors.New("network error")

	// ErrTimeout reports that a deadline expired before a response arrived.
	ErrTimeout = errors.New("request timed out")

	// ErrSessionExpired is returned when the session cannot be refreshed.
	// Credentials have already been purged when it is returned.
	ErrSessionExpired = errors.New("session expired")

	errNoRefreshToken   = errors.New("no refresh token stored")
	errEmptyAccessToken = errors.New("refresh response carries no access token")
)

// ServerError is a non-2xx response.
type ServerError struct {
	Status  int
	Message string
	Body    []byte
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server error %d: %s", e.Status, http.StatusText(e.Status))
}

func newServerError(status int, body []byte) *ServerError {
	e := &ServerError{Status: status, Body: body}

	var apiErr models.APIError
	if err := json.Unmarshal(body, &apiErr); err == nil {
		e.Message = apiErr.Message
	} else if s := strings.TrimSpace(string(body)); len(s) > 0 && len(s) <= 200 {
		e.Message = s
	}

	return e
}

// IsStatus reports whether err is a *ServerError with the given status.
func IsStatus(err error, status int) bool {
	var se *ServerError
	return errors.As(err, &se) && se.Status == status
}

// classify maps a transport failure onto ErrTimeout or ErrNetwork.
// Cancellation is passed through so callers can match context.Canceled.
func classify(err error) error {
	switch {
	case netx.IsCanceled(err):
		return err
	case netx.IsTimeout(err):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	default:
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
}

// isTransport reports whether err came from classify.
func isTransport(err error) bool {
	return errors.Is(err, ErrNetwork) || errors.Is(err, ErrTimeout) || netx.IsCanceled(err)
}

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/willbank/internal/client/models"
	"github.com/dmitrijs2005/willbank/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/willbank/internal/common"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, values map[string]string) *credentials.MemoryRepository {
	t.Helper()
	repo := credentials.NewMemoryRepository()
	require.NoError(t, repo.SetMany(context.Background(), values))
	return repo
}

func loggedIn(access, refresh string) map[string]string {
	return map[string]string{
		common.AccessTokenKey:  access,
		common.RefreshTokenKey: refresh,
		common.CurrentUserKey:  `{"id":1,"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`,
	}
}

// newTestClient points every service at srv.
func newTestClient(t *testing.T, srv *httptest.Server, repo credentials.Repository) *HTTPClient {
	t.Helper()
	urls := make(map[Service]string, len(Services))
	for _, s := range Services {
		urls[s] = srv.URL
	}
	return New(Config{
		BaseURLs:       urls,
		RequestTimeout: 5 * time.Second,
		RefreshTimeout: 5 * time.Second,
		HTTP:           srv.Client(),
	}, NewSession(repo, nil), nil)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func bearer(r *http.Request) string {
	h := r.Header.Get(common.AuthorizationHeaderName)
	if len(h) < len(common.BearerPrefix) {
		return ""
	}
	return h[len(common.BearerPrefix):]
}

// refreshRoute answers refresh calls with the given pair and checks the
// refresh token sent.
func refreshRoute(t *testing.T, r *mux.Router, wantRefresh, access, refresh string, calls *int32Counter) {
	r.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, req *http.Request) {
		calls.inc()
		var body models.RefreshTokenRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			t.Errorf("decode refresh body: %v", err)
		}
		if body.RefreshToken != wantRefresh {
			writeJSON(w, http.StatusUnauthorized, models.APIError{Message: "invalid refresh token"})
			return
		}
		writeJSON(w, http.StatusOK, models.LoginResponse{AccessToken: access, RefreshToken: refresh, TokenType: "Bearer", ExpiresIn: 900})
	}).Methods(http.MethodPost)
}

type int32Counter struct{ n atomic.Int32 }

func (c *int32Counter) inc() int32 { return c.n.Add(1) }

func (c *int32Counter) get() int32 { return c.n.Load() }

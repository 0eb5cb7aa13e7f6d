package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/willbank/internal/client/client"
	"github.com/dmitrijs2005/willbank/internal/client/config"
	"github.com/dmitrijs2005/willbank/internal/client/models"
	"github.com/dmitrijs2005/willbank/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/willbank/internal/logging"
	"github.com/gorilla/mux"
)

var ada = models.Client{ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}

// bank is a minimal stand-in for the WillBank services.
type bank struct {
	srv *httptest.Server

	mu          sync.Mutex
	access      string
	refreshOK   bool
	lastBody    map[string][]byte
	healthState string
}

func newBank(t *testing.T) *bank {
	t.Helper()
	b := &bank{refreshOK: true, lastBody: map[string][]byte{}, healthState: "UP"}
	r := mux.NewRouter()
	r.Use(b.record)

	r.HandleFunc("/actuator/health", func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		state := b.healthState
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, models.Health{Status: state})
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/auth/login", func(w http.ResponseWriter, req *http.Request) {
		var body models.LoginRequest
		_ = json.NewDecoder(req.Body).Decode(&body)
		if body.Email != ada.Email || body.Password != "secret" {
			writeJSON(w, http.StatusUnauthorized, models.APIError{Message: "Email ou mot de passe incorrect"})
			return
		}
		b.mu.Lock()
		b.access = "A1"
		b.mu.Unlock()
		c := ada
		writeJSON(w, http.StatusOK, models.LoginResponse{AccessToken: "A1", RefreshToken: "R1", TokenType: "Bearer", Client: &c})
	}).Methods(http.MethodPost)

	r.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		ok := b.refreshOK
		if ok {
			b.access = "A2"
		}
		b.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusUnauthorized, models.APIError{Message: "Refresh token invalide"})
			return
		}
		writeJSON(w, http.StatusOK, models.LoginResponse{AccessToken: "A2", RefreshToken: "R2"})
	}).Methods(http.MethodPost)

	r.HandleFunc("/api/accounts/client/{id}", b.protected(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []models.Account{
			{ID: 10, AccountNumber: "WB-0010", ClientID: 1, AccountType: models.AccountChecking, Balance: 1250.5, Status: models.AccountActive},
		})
	})).Methods(http.MethodGet)

	r.HandleFunc("/api/accounts/{id}/balance", b.protected(func(w http.ResponseWriter, req *http.Request) {
		if mux.Vars(req)["id"] != "10" {
			writeJSON(w, http.StatusNotFound, models.APIError{Message: "Compte introuvable"})
			return
		}
		writeJSON(w, http.StatusOK, 1250.5)
	})).Methods(http.MethodGet)

	r.HandleFunc("/api/transactions", b.protected(func(w http.ResponseWriter, req *http.Request) {
		var tx models.Transaction
		_ = json.NewDecoder(req.Body).Decode(&tx)
		tx.TransactionReference = "TX-1"
		tx.Status = models.TransactionCompleted
		writeJSON(w, http.StatusCreated, tx)
	})).Methods(http.MethodPost)

	r.HandleFunc("/api/transactions/account/{id}", b.protected(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []models.Transaction{
			{TransactionReference: "TX-0", Type: models.TransactionDeposit, Amount: 100, Status: models.TransactionCompleted},
		})
	})).Methods(http.MethodGet)

	r.HandleFunc("/api/dashboard/{id}", b.protected(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, models.Dashboard{Client: ada, TotalBalance: 1250.5})
	})).Methods(http.MethodGet)

	b.srv = httptest.NewServer(r)
	t.Cleanup(b.srv.Close)
	return b
}

func (b *bank) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		b.mu.Lock()
		b.lastBody[r.Method+" "+r.URL.Path] = body
		b.mu.Unlock()
		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

func (b *bank) protected(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		ok := b.access != "" && r.Header.Get("Authorization") == "Bearer "+b.access
		b.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusUnauthorized, models.APIError{Message: "Unauthorized"})
			return
		}
		h(w, r)
	}
}

func (b *bank) body(key string) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastBody[key]
}

// invalidate rejects the current access token and, unless refreshOK, the
// refresh token too.
func (b *bank) invalidate(refreshOK bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.access = "expired"
	b.refreshOK = refreshOK
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// newTestApp builds an App against b with an in-memory store. in feeds the
// prompts; out collects everything the console prints.
func newTestApp(t *testing.T, b *bank, in string) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ClientServiceURL = b.srv.URL
	cfg.AccountServiceURL = b.srv.URL
	cfg.TransactionServiceURL = b.srv.URL
	cfg.NotificationServiceURL = b.srv.URL
	cfg.DashboardServiceURL = b.srv.URL
	cfg.StorePath = memoryStore

	session := client.NewSession(credentials.NewMemoryRepository(), logging.Nop())
	hc := client.New(cfg.HTTPConfig(), session, logging.Nop())

	var out bytes.Buffer
	return newApp(cfg, hc, logging.Nop(), strings.NewReader(in), &out), &out
}

// stubPassword makes every password prompt return pw.
func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ *bufio.Reader, _ string, _ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func login(t *testing.T, a *App) {
	t.Helper()
	stubPassword(t, "secret")
	if err := a.Login(context.Background(), []string{ada.Email}); err != nil {
		t.Fatalf("login: %v", err)
	}
}

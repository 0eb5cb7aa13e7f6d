package services

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/willbank/internal/client/client"
	"github.com/dmitrijs2005/willbank/internal/client/models"
	"github.com/dmitrijs2005/willbank/internal/client/repositories/credentials"
	"github.com/gorilla/mux"
)

// fakeBank is a single httptest server standing in for every service.
// Protected routes accept only the current access token.
type fakeBank struct {
	t      *testing.T
	router *mux.Router
	srv    *httptest.Server

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	generation   int
	hits         map[string]int
	lastBodies   map[string][]byte
	lastQueries  map[string]string
	lastAuth     map[string]string
}

var ada = models.Client{ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Role: models.RoleClient, Status: models.ClientActive}

func newFakeBank(t *testing.T) *fakeBank {
	t.Helper()
	fb := &fakeBank{
		t:           t,
		router:      mux.NewRouter(),
		hits:        map[string]int{},
		lastBodies:  map[string][]byte{},
		lastQueries: map[string]string{},
		lastAuth:    map[string]string{},
	}
	fb.router.Use(fb.record)
	fb.routes()
	fb.srv = httptest.NewServer(fb.router)
	t.Cleanup(fb.srv.Close)
	return fb
}

func (fb *fakeBank) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		body, _ := io.ReadAll(r.Body)
		fb.mu.Lock()
		fb.hits[key]++
		fb.lastBodies[key] = body
		fb.lastQueries[key] = r.URL.RawQuery
		fb.lastAuth[key] = r.Header.Get("Authorization")
		fb.mu.Unlock()
		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

func (fb *fakeBank) hitCount(key string) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.hits[key]
}

func (fb *fakeBank) body(key string) []byte {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.lastBodies[key]
}

func (fb *fakeBank) query(key string) string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.lastQueries[key]
}

func (fb *fakeBank) auth(key string) string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.lastAuth[key]
}

// rotate issues a new token pair, invalidating the old access token.
func (fb *fakeBank) rotate() models.LoginResponse {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.generation++
	fb.accessToken = "access-" + strconv.Itoa(fb.generation)
	fb.refreshToken = "refresh-" + strconv.Itoa(fb.generation)
	c := ada
	return models.LoginResponse{AccessToken: fb.accessToken, RefreshToken: fb.refreshToken, TokenType: "Bearer", ExpiresIn: 900, Client: &c}
}

// expireAccess makes the current access token invalid while keeping the
// refresh token usable.
func (fb *fakeBank) expireAccess() {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.accessToken = "expired"
}

func (fb *fakeBank) protected(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		valid := fb.accessToken != "" && r.Header.Get("Authorization") == "Bearer "+fb.accessToken
		fb.mu.Unlock()
		if !valid {
			writeJSON(w, http.StatusUnauthorized, models.APIError{Message: "Unauthorized", Status: 401})
			return
		}
		h(w, r)
	}
}

func (fb *fakeBank) routes() {
	r := fb.router

	r.HandleFunc("/api/auth/login", func(w http.ResponseWriter, req *http.Request) {
		var body models.LoginRequest
		_ = json.NewDecoder(req.Body).Decode(&body)
		if body.Email != ada.Email || body.Password != "secret" {
			writeJSON(w, http.StatusUnauthorized, models.APIError{Message: "Email ou mot de passe incorrect"})
			return
		}
		writeJSON(w, http.StatusOK, fb.rotate())
	}).Methods(http.MethodPost)

	r.HandleFunc("/api/auth/register", func(w http.ResponseWriter, req *http.Request) {
		var body models.RegisterRequest
		_ = json.NewDecoder(req.Body).Decode(&body)
		if body.Email == ada.Email {
			writeJSON(w, http.StatusConflict, models.APIError{Message: "Email déjà utilisé"})
			return
		}
		resp := fb.rotate()
		resp.Client = &models.Client{ID: 2, FirstName: body.FirstName, LastName: body.LastName, Email: body.Email}
		writeJSON(w, http.StatusCreated, resp)
	}).Methods(http.MethodPost)

	r.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, req *http.Request) {
		var body models.RefreshTokenRequest
		_ = json.NewDecoder(req.Body).Decode(&body)
		fb.mu.Lock()
		ok := body.RefreshToken != "" && body.RefreshToken == fb.refreshToken
		fb.mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusUnauthorized, models.APIError{Message: "Refresh token invalide"})
			return
		}
		resp := fb.rotate()
		resp.Client = nil
		writeJSON(w, http.StatusOK, resp)
	}).Methods(http.MethodPost)

	r.HandleFunc("/api/auth/me", fb.protected(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, ada)
	})).Methods(http.MethodGet)

	r.HandleFunc("/api/auth/change-password", fb.protected(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).Methods(http.MethodPut)

	r.HandleFunc("/api/clients", fb.protected(func(w http.ResponseWriter, req *http.Request) {
		if req.Method == http.MethodPost {
			var c models.Client
			_ = json.NewDecoder(req.Body).Decode(&c)
			c.ID = 9
			writeJSON(w, http.StatusCreated, c)
			return
		}
		writeJSON(w, http.StatusOK, []models.Client{ada})
	})).Methods(http.MethodGet, http.MethodPost)

	r.HandleFunc("/api/clients/{id}", fb.protected(func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		case http.MethodPut:
			var c models.Client
			_ = json.NewDecoder(req.Body).Decode(&c)
			writeJSON(w, http.StatusOK, c)
		default:
			if mux.Vars(req)["id"] != "1" {
				writeJSON(w, http.StatusNotFound, models.APIError{Message: "Client introuvable"})
				return
			}
			writeJSON(w, http.StatusOK, ada)
		}
	})).Methods(http.MethodGet, http.MethodPut, http.MethodDelete)

	checking := models.Account{ID: 10, AccountNumber: "WB0001", ClientID: 1, AccountType: models.AccountChecking, Balance: 1500.25, Status: models.AccountActive}

	r.HandleFunc("/api/accounts", fb.protected(func(w http.ResponseWriter, req *http.Request) {
		if req.Method == http.MethodPost {
			var in models.CreateAccountRequest
			_ = json.NewDecoder(req.Body).Decode(&in)
			writeJSON(w, http.StatusCreated, models.Account{ID: 11, ClientID: in.ClientID, AccountType: in.AccountType, Status: models.AccountActive})
			return
		}
		writeJSON(w, http.StatusOK, []models.Account{checking})
	})).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/api/accounts/number/{number}", fb.protected(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, checking)
	})).Methods(http.MethodGet)
	r.HandleFunc("/api/accounts/client/{id}", fb.protected(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, []models.Account{checking})
	})).Methods(http.MethodGet)
	r.HandleFunc("/api/accounts/{id}/balance", fb.protected(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, checking.Balance)
	})).Methods(http.MethodGet)
	r.HandleFunc("/api/accounts/{id}/{op:credit|debit}", fb.protected(func(w http.ResponseWriter, req *http.Request) {
		if mux.Vars(req)["op"] == "debit" && req.URL.Query().Get("amount") == "1000000" {
			writeJSON(w, http.StatusBadRequest, models.APIError{Message: "Solde insuffisant"})
			return
		}
		w.WriteHeader(http.StatusOK)
	})).Methods(http.MethodPost)
	r.HandleFunc("/api/accounts/{id}", fb.protected(func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		case http.MethodPut:
			var a models.Account
			_ = json.NewDecoder(req.Body).Decode(&a)
			writeJSON(w, http.StatusOK, a)
		default:
			writeJSON(w, http.StatusOK, checking)
		}
	})).Methods(http.MethodGet, http.MethodPut, http.MethodDelete)

	deposit := models.Transaction{ID: 100, TransactionReference: "TX-100", Type: models.TransactionDeposit, SourceAccountID: 10, Amount: 50, Status: models.TransactionCompleted}

	r.HandleFunc("/api/transactions", fb.protected(func(w http.ResponseWriter, req *http.Request) {
		if req.Method == http.MethodPost {
			var tx models.Transaction
			_ = json.NewDecoder(req.Body).Decode(&tx)
			tx.ID = 101
			tx.TransactionReference = "TX-101"
			tx.Status = models.TransactionCompleted
			writeJSON(w, http.StatusCreated, tx)
			return
		}
		writeJSON(w, http.StatusOK, []models.Transaction{deposit})
	})).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/api/transactions/reference/{ref}", fb.protected(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, deposit)
	})).Methods(http.MethodGet)
	r.HandleFunc("/api/transactions/account/{id}/range", fb.protected(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, []models.Transaction{deposit})
	})).Methods(http.MethodGet)
	r.HandleFunc("/api/transactions/account/{id}", fb.protected(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, []models.Transaction{deposit})
	})).Methods(http.MethodGet)
	r.HandleFunc("/api/transactions/{id}", fb.protected(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, deposit)
	})).Methods(http.MethodGet)

	prefs := models.NotificationPreferences{Email: true, Push: true, Transactions: true, Security: true, TransactionThreshold: 100, QuietHoursStart: "22:00", QuietHoursEnd: "07:00"}

	r.HandleFunc("/api/notifications", fb.protected(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, []models.Notification{{ID: 1, Type: models.NotificationEmail, Recipient: ada.Email, Message: "Virement reçu", Status: models.NotificationSent}})
	})).Methods(http.MethodGet)
	r.HandleFunc("/api/notifications/recipient/{recipient}", fb.protected(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, []models.Notification{{ID: 1, Type: models.NotificationEmail, Recipient: mux.Vars(req)["recipient"], Status: models.NotificationSent}})
	})).Methods(http.MethodGet)
	r.HandleFunc("/api/notifications/preferences/{id}", fb.protected(func(w http.ResponseWriter, req *http.Request) {
		if req.Method == http.MethodPut {
			var p models.NotificationPreferences
			_ = json.NewDecoder(req.Body).Decode(&p)
			writeJSON(w, http.StatusOK, p)
			return
		}
		writeJSON(w, http.StatusOK, prefs)
	})).Methods(http.MethodGet, http.MethodPut)
	r.HandleFunc("/api/notifications/test", fb.protected(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Notification de test envoyée"})
	})).Methods(http.MethodPost)

	r.HandleFunc("/api/dashboard/{id}", fb.protected(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, models.Dashboard{Client: ada, Accounts: []models.Account{checking}, RecentTransactions: []models.Transaction{deposit}, TotalBalance: 1500.25, MonthlyIncome: 50})
	})).Methods(http.MethodGet)
	r.HandleFunc("/api/statements/{id}", fb.protected(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, models.Statement{Account: checking, Transactions: []models.Transaction{deposit}, StartDate: req.URL.Query().Get("from"), EndDate: req.URL.Query().Get("to"), TotalCredits: 50, Balance: 1500.25})
	})).Methods(http.MethodGet)

	r.HandleFunc("/actuator/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, models.Health{Status: "UP"})
	}).Methods(http.MethodGet)
}

func (fb *fakeBank) newClient(t *testing.T) (*client.HTTPClient, *credentials.MemoryRepository) {
	t.Helper()
	repo := credentials.NewMemoryRepository()
	urls := map[client.Service]string{}
	for _, s := range client.Services {
		urls[s] = fb.srv.URL
	}
	c := client.New(client.Config{BaseURLs: urls, RequestTimeout: 5 * time.Second, HTTP: fb.srv.Client()}, client.NewSession(repo, nil), nil)
	return c, repo
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}


package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propertyhub-dev/propertyhub/internal/api"
	"github.com/propertyhub-dev/propertyhub/internal/cache"
	"github.com/propertyhub-dev/propertyhub/internal/config"
	"github.com/propertyhub-dev/propertyhub/internal/session"
	"github.com/propertyhub-dev/propertyhub/internal/tokenstore"
)

// fakeBackend serves the slice of the PropertyHub REST API the front end
// touches during a landlord's session
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()

	landlord := map[string]any{
		"id":    "landlord-1",
		"name":  "Grace",
		"email": "grace@example.com",
		"roles": []string{"ROLE_LANDLORD"},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		if req.Email != "grace@example.com" || req.Password != "portfolio" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Invalid email or password"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"token": "tok-grace", "user": landlord})
	})
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-grace" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Invalid or expired token"}`))
			return
		}
		json.NewEncoder(w).Encode(landlord)
	})
	mux.HandleFunc("GET /properties/landlord/landlord-1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{{
			"id":      "p1",
			"title":   "Harborview Flat",
			"address": "12 Quay St",
			"rent":    1450.0,
		}})
	})
	for _, path := range []string{"GET /properties", "GET /payments", "GET /leases", "GET /users/tenants"} {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		})
	}

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// newTestServer wires the full front end against the fake backend, with
// the session already hydrated (no persisted token, so anonymous)
func newTestServer(t *testing.T) (*Server, *session.Store) {
	t.Helper()

	backend := fakeBackend(t)

	client := api.New(backend.URL)
	sessions := session.New(client, tokenstore.NewMemory(), zerolog.Nop())
	client.OnUnauthorized(func() {
		sessions.ForceLogout("request rejected as unauthorized")
	})
	sessions.Initialize(context.Background())

	store, err := cache.Open(filepath.Join(t.TempDir(), "cache.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := &config.Config{}
	cfg.API.BaseURL = backend.URL
	cfg.Web.ListenAddr = "127.0.0.1:0"

	return New(cfg, zerolog.Nop(), sessions, client, store), sessions
}

func get(handler http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	handler.ServeHTTP(rec, req)
	return rec
}

func postForm(handler http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	handler.ServeHTTP(rec, req)
	return rec
}

func TestLandlordSessionLifecycle(t *testing.T) {
	srv, sessions := newTestServer(t)
	handler := srv.Handler()

	// Health endpoint is reachable regardless of session state
	rec := get(handler, "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	// Anonymous visitor is bounced off protected pages
	rec = get(handler, "/dashboard")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth", rec.Header().Get("Location"))

	// ...but sees the auth screen
	rec = get(handler, "/auth")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome back")

	// A rejected login re-renders the form with the backend's message
	rec = postForm(handler, "/auth/login", url.Values{
		"email":    {"grace@example.com"},
		"password": {"wrong"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password")
	assert.False(t, sessions.IsAuthenticated())

	// A successful login lands on the virtual app entry point
	rec = postForm(handler, "/auth/login", url.Values{
		"email":    {"grace@example.com"},
		"password": {"portfolio"},
	})
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/app", rec.Header().Get("Location"))
	require.True(t, sessions.IsAuthenticated())

	// The entry point resolves to the elevated dashboard for a landlord
	rec = get(handler, "/app")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin-dashboard", rec.Header().Get("Location"))

	// The elevated dashboard renders the landlord's portfolio
	rec = get(handler, "/admin-dashboard")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Portfolio overview")

	// Property pages show only this landlord's own listings
	rec = get(handler, "/admin-properties")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Harborview Flat")

	// Public pages now redirect into the app
	rec = get(handler, "/auth")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/app", rec.Header().Get("Location"))

	// Logout returns to the landing page and closes the session
	rec = postForm(handler, "/logout", url.Values{})
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.False(t, sessions.IsAuthenticated())

	// Protected pages are gated again
	rec = get(handler, "/dashboard")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth", rec.Header().Get("Location"))
}

func TestSessionEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	handler := srv.Handler()

	rec := get(handler, "/api/session")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status        string `json:"status"`
		Authenticated bool   `json:"authenticated"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "anonymous", body.Status)
	assert.False(t, body.Authenticated)
}

func TestUnknownRouteRedirectsToLanding(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := get(srv.Handler(), "/no-such-page")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

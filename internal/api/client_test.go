package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestBearerAndRequestIDHeaders(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"u1","name":"Ada","email":"ada@example.com","roles":["ROLE_TENANT"]}`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	client.SetToken("tok-xyz")

	if _, err := client.CurrentUser(context.Background()); err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}

	if gotAuth != "Bearer tok-xyz" {
		t.Errorf("Authorization header = %q, want %q", gotAuth, "Bearer tok-xyz")
	}
	if len(gotRequestID) != 26 {
		t.Errorf("X-Request-ID %q is not a ULID", gotRequestID)
	}
}

func TestNoBearerAfterClearToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	client.SetToken("tok-xyz")
	client.ClearToken()

	if _, err := client.ListProperties(context.Background()); err != nil {
		t.Fatalf("ListProperties failed: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization header = %q, want empty", gotAuth)
	}
}

func TestErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{name: "message field", status: 401, body: `{"message":"Invalid email or password"}`, expected: "Invalid email or password"},
		{name: "error field", status: 400, body: `{"error":"email already registered"}`, expected: "email already registered"},
		{name: "plain text body", status: 500, body: `backend exploded`, expected: "backend exploded"},
		{name: "empty body", status: 502, body: ``, expected: "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := New(srv.URL)
			_, err := client.Login(context.Background(), "a@b.c", "pw")
			if err == nil {
				t.Fatal("expected an error")
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %T", err)
			}
			if apiErr.Status != tt.status {
				t.Errorf("status = %d, want %d", apiErr.Status, tt.status)
			}
			if apiErr.Message != tt.expected {
				t.Errorf("message = %q, want %q", apiErr.Message, tt.expected)
			}
		})
	}
}

func TestUnauthorizedHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"token expired"}`))
	}))
	defer srv.Close()

	t.Run("fires on authenticated request", func(t *testing.T) {
		client := New(srv.URL)
		fired := 0
		client.OnUnauthorized(func() { fired++ })
		client.SetToken("stale-token")

		if _, err := client.CurrentUser(context.Background()); err == nil {
			t.Fatal("expected an error")
		}
		if fired != 1 {
			t.Errorf("hook fired %d times, want 1", fired)
		}
	})

	t.Run("does not fire without a credential", func(t *testing.T) {
		// A rejected login is not a forced-logout event
		client := New(srv.URL)
		fired := 0
		client.OnUnauthorized(func() { fired++ })

		if _, err := client.Login(context.Background(), "a@b.c", "wrong"); err == nil {
			t.Fatal("expected an error")
		}
		if fired != 0 {
			t.Errorf("hook fired %d times, want 0", fired)
		}
	})
}

func TestTokenExpired(t *testing.T) {
	signed := func(exp time.Time) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "u1",
			"exp": exp.Unix(),
		})
		s, err := token.SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}
		return s
	}

	if !TokenExpired(signed(time.Now().Add(-time.Hour))) {
		t.Error("expected past-exp token to be expired")
	}
	if TokenExpired(signed(time.Now().Add(time.Hour))) {
		t.Error("did not expect future-exp token to be expired")
	}
	if TokenExpired("opaque-session-token") {
		t.Error("opaque tokens must never be reported expired")
	}
}

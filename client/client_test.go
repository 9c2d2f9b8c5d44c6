package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	apimodels "talent-engine-backend/models/api"
	authapimodels "talent-engine-backend/models/api/auth"
)

type fakeBackend struct {
	mux            *http.ServeMux
	refreshCalls   int
	protectedCalls int
	validAccess    string
}

func newFakeBackend(refreshedAccess string, refreshStatus int) *fakeBackend {
	b := &fakeBackend{
		mux:         http.NewServeMux(),
		validAccess: refreshedAccess,
	}
	b.mux.HandleFunc("/api/token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		b.refreshCalls++
		w.Header().Set("Content-Type", "application/json")
		if refreshStatus != http.StatusOK {
			w.WriteHeader(refreshStatus)
			_ = json.NewEncoder(w).Encode(apimodels.NewError("refresh token is invalid or expired"))
			return
		}
		_ = json.NewEncoder(w).Encode(apimodels.NewResponse(authapimodels.JWTAccessResponse{Access: refreshedAccess}))
	})
	b.mux.HandleFunc("/protected", func(w http.ResponseWriter, r *http.Request) {
		b.protectedCalls++
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") != "Bearer "+b.validAccess {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(apimodels.NewError("token expired"))
			return
		}
		_ = json.NewEncoder(w).Encode(apimodels.NewResponse("payload"))
	})
	return b
}

func TestClientTokenRefresh(t *testing.T) {
	t.Run(`401 triggers exactly one refresh and one replay`, func(t *testing.T) {
		backend := newFakeBackend("fresh-access", http.StatusOK)
		server := httptest.NewServer(backend.mux)
		defer server.Close()

		session := NewSession("stale-access", "refresh-token")
		c := New(server.URL, session)

		var out string
		_, err := c.do(context.Background(), http.MethodGet, "/protected", nil, &out)
		require.Nil(t, err)
		require.Equal(t, "payload", out)
		require.Equal(t, 1, backend.refreshCalls)
		require.Equal(t, 2, backend.protectedCalls)

		access, _ := session.Snapshot()
		require.Equal(t, "fresh-access", access)
	})

	t.Run(`second consecutive 401 expires the session without another refresh`, func(t *testing.T) {
		backend := newFakeBackend("fresh-access", http.StatusOK)
		backend.validAccess = "never-issued" // replay stays 401
		server := httptest.NewServer(backend.mux)
		defer server.Close()

		session := NewSession("stale-access", "refresh-token")
		c := New(server.URL, session)

		_, err := c.do(context.Background(), http.MethodGet, "/protected", nil, nil)
		require.ErrorIs(t, err, ErrSessionExpired)
		require.Equal(t, 1, backend.refreshCalls)
		require.Equal(t, 2, backend.protectedCalls)
		require.Equal(t, false, session.IsAuthenticated())
	})

	t.Run(`rejected refresh expires the session`, func(t *testing.T) {
		backend := newFakeBackend("fresh-access", http.StatusUnauthorized)
		server := httptest.NewServer(backend.mux)
		defer server.Close()

		session := NewSession("stale-access", "refresh-token")
		c := New(server.URL, session)

		_, err := c.do(context.Background(), http.MethodGet, "/protected", nil, nil)
		require.ErrorIs(t, err, ErrSessionExpired)
		require.Equal(t, 1, backend.refreshCalls)
		require.Equal(t, false, session.IsAuthenticated())
	})

	t.Run(`stale generation skips the refresh call entirely`, func(t *testing.T) {
		backend := newFakeBackend("fresh-access", http.StatusOK)
		server := httptest.NewServer(backend.mux)
		defer server.Close()

		session := NewSession("stale-access", "refresh-token")
		c := New(server.URL, session)

		_, seenGeneration := session.Snapshot()
		// another request refreshed in the meantime
		session.Advance("fresh-access")

		require.Nil(t, c.refreshOnce(context.Background(), seenGeneration))
		require.Equal(t, 0, backend.refreshCalls)
	})

	t.Run(`missing refresh token expires immediately`, func(t *testing.T) {
		backend := newFakeBackend("fresh-access", http.StatusOK)
		server := httptest.NewServer(backend.mux)
		defer server.Close()

		session := NewSession("stale-access", "")
		c := New(server.URL, session)

		_, err := c.do(context.Background(), http.MethodGet, "/protected", nil, nil)
		require.ErrorIs(t, err, ErrSessionExpired)
		require.Equal(t, 0, backend.refreshCalls)
	})
}

func TestClientErrors(t *testing.T) {
	t.Run(`field scoped errors decode into APIError`, func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/talent-engine/requisitions/rec-1/publish", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(apimodels.NewFieldErrors("Company name is required.", []apimodels.FieldError{
				{Field: "company_name", Message: "Company name is required."},
			}))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		session := NewSession("access", "refresh")
		c := New(server.URL, session)

		_, err := c.do(context.Background(), http.MethodPatch, "/api/talent-engine/requisitions/rec-1/publish", nil, nil)
		require.NotNil(t, err)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		require.Equal(t, "Company name is required.", apiErr.FieldMessage("company_name"))
		require.Empty(t, apiErr.FieldMessage("location"))
	})
}

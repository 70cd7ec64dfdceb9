package companieshouse_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/opencompanybot/registration-service/internal/companieshouse"
	"github.com/opencompanybot/registration-service/internal/config"
	"github.com/opencompanybot/registration-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPayload = entities.CompanyPayload{
	CompanyName: "Acme Widgets Ltd",
	CompanyType: "ltd",
	RegisteredOffice: entities.Address{
		AddressLine1: "1 Main Street",
		Locality:     "London",
		PostalCode:   "EC1A 1AA",
		Country:      "England",
	},
	Directors:    []entities.Officer{{Name: "Jane Smith"}},
	Shareholders: []entities.Shareholder{{Name: "Jane Smith", Shares: 100}},
	SICCodes:     []string{"62012"},
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *companieshouse.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return companieshouse.NewClient(config.CompaniesHouse{
		BaseURL: srv.URL,
		APIKey:  "ch-key",
		Timeout: time.Second,
	})
}

func TestClient_Incorporate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/company/incorporation", r.URL.Path)

			// API key travels as the basic-auth user.
			user, _, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "ch-key", user)

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Acme Widgets Ltd", req["company_name"])
			assert.Equal(t, "ltd", req["type"])

			json.NewEncoder(w).Encode(map[string]string{
				"company_number":     "12345678",
				"company_name":       "Acme Widgets Ltd",
				"incorporation_date": "2026-08-31",
				"status":             "active",
			})
		})

		got, err := client.Incorporate(context.Background(), testPayload)
		require.NoError(t, err)
		assert.Equal(t, "12345678", got.CompanyNumber)
		assert.Equal(t, "active", got.Status)
	})

	t.Run("rejected filing is terminal", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error":"company name already taken"}`, http.StatusBadRequest)
		})

		_, err := client.Incorporate(context.Background(), testPayload)
		assert.ErrorIs(t, err, companieshouse.ErrTerminal)
		assert.False(t, companieshouse.Retryable(err))
	})

	t.Run("server errors are retryable", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "try later", http.StatusServiceUnavailable)
		})

		_, err := client.Incorporate(context.Background(), testPayload)
		assert.ErrorIs(t, err, companieshouse.ErrUnavailable)
		assert.True(t, companieshouse.Retryable(err))
	})

	t.Run("rate limit is retryable", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "slow down", http.StatusTooManyRequests)
		})

		_, err := client.Incorporate(context.Background(), testPayload)
		assert.ErrorIs(t, err, companieshouse.ErrUnavailable)
	})

	t.Run("missing company number is terminal", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"status": "active"})
		})

		_, err := client.Incorporate(context.Background(), testPayload)
		assert.ErrorIs(t, err, companieshouse.ErrTerminal)
	})
}

func TestClient_Lookups(t *testing.T) {
	t.Run("company profile", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/company/12345678", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]string{"company_number": "12345678"})
		})

		got, err := client.Company(context.Background(), "12345678")
		require.NoError(t, err)
		assert.Equal(t, "12345678", got["company_number"])
	})

	t.Run("filing history", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/company/12345678/filing-history", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]any{"items": []any{}})
		})

		got, err := client.FilingHistory(context.Background(), "12345678")
		require.NoError(t, err)
		assert.Contains(t, got, "items")
	})

	t.Run("search", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search/companies", r.URL.Path)
			assert.Equal(t, "acme", r.URL.Query().Get("q"))
			assert.Equal(t, "ltd", r.URL.Query().Get("type"))
			json.NewEncoder(w).Encode(map[string]any{"total_results": 1})
		})

		got, err := client.Search(context.Background(), "acme", "ltd")
		require.NoError(t, err)
		assert.EqualValues(t, 1, got["total_results"])
	})
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	client := companieshouse.NewClient(config.CompaniesHouse{
		BaseURL: srv.URL,
		APIKey:  "ch-key",
		Timeout: 20 * time.Millisecond,
	})

	_, err := client.Company(context.Background(), "12345678")
	assert.ErrorIs(t, err, companieshouse.ErrTimeout)
	assert.True(t, companieshouse.Retryable(err))
}

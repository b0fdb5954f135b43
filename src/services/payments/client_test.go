package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentLink(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/payment_links", r.URL.Path)
			assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"url": "https://pay.example.com/link/abc"})
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "sk_test_123")
		url, err := client.CreatePaymentLink(context.Background(), 65.00, "CAD", "Cethos academic-transcript quote")
		require.NoError(t, err)
		assert.Equal(t, "https://pay.example.com/link/abc", url)

		// Amount travels in minor units, currency lowercased.
		assert.Equal(t, float64(6500), gotBody["amount"])
		assert.Equal(t, "cad", gotBody["currency"])
	})

	t.Run("SloppyContentTypeStillParsed", func(t *testing.T) {
		// JSON body with no Content-Type header; the client must not mistake
		// the successful response for an empty one.
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			json.NewEncoder(w).Encode(map[string]string{"url": "https://pay.example.com/link/def"})
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "sk_test_123")
		url, err := client.CreatePaymentLink(context.Background(), 20, "USD", "test")
		require.NoError(t, err)
		assert.Equal(t, "https://pay.example.com/link/def", url)
	})

	t.Run("ProviderErrorSurfacesMessage", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
			json.NewEncoder(w).Encode(map[string]any{"error": map[string]string{"message": "account not activated"}})
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "sk_test_123")
		_, err := client.CreatePaymentLink(context.Background(), 10, "USD", "test")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "account not activated")
	})

	t.Run("EmptyLinkIsAnError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{})
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "sk_test_123")
		_, err := client.CreatePaymentLink(context.Background(), 10, "USD", "test")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no link")
	})

	t.Run("UnconfiguredClient", func(t *testing.T) {
		client := NewClient("", "")
		_, err := client.CreatePaymentLink(context.Background(), 10, "USD", "test")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not configured")
	})
}

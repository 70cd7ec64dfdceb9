package ccpayment_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/opencompanybot/registration-service/internal/ccpayment"
	"github.com/opencompanybot/registration-service/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *ccpayment.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return ccpayment.NewClient(config.CCPayment{
		BaseURL:       srv.URL,
		APIKey:        "test-key",
		MerchantID:    "merchant-1",
		CallbackURL:   "https://example.com/webhook",
		WebhookSecret: "secret",
		Timeout:       time.Second,
	})
}

func TestClient_CreatePayment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/payment/create", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "merchant-1", req["merchant_id"])
			assert.Equal(t, "order-1", req["order_id"])
			assert.Equal(t, "150", req["amount"])
			assert.Equal(t, "https://example.com/webhook", req["callback_url"])

			json.NewEncoder(w).Encode(map[string]string{
				"payment_id":  "pay_1",
				"pay_address": "0xdeadbeef",
			})
		})

		got, err := client.CreatePayment(context.Background(), "order-1", decimal.NewFromInt(150), "USDT", "ERC20", "")
		require.NoError(t, err)
		assert.Equal(t, "pay_1", got.PaymentReference)
		assert.Equal(t, "0xdeadbeef", got.Address)
		assert.Equal(t, "USDT", got.Currency)
	})

	t.Run("missing pay address", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"payment_id": "pay_1"})
		})

		_, err := client.CreatePayment(context.Background(), "order-1", decimal.NewFromInt(150), "USDT", "ERC20", "")
		assert.ErrorIs(t, err, ccpayment.ErrBadPayload)
	})

	t.Run("non-2xx response", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		})

		_, err := client.CreatePayment(context.Background(), "order-1", decimal.NewFromInt(150), "USDT", "ERC20", "")
		assert.ErrorIs(t, err, ccpayment.ErrBadStatus)
	})
}

func TestClient_GetStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/payment/status", r.URL.Path)
			assert.Equal(t, "pay_1", r.URL.Query().Get("payment_id"))

			json.NewEncoder(w).Encode(map[string]string{
				"payment_id": "pay_1",
				"status":     "confirmed",
				"tx_hash":    "0xabc",
			})
		})

		got, err := client.GetStatus(context.Background(), "pay_1")
		require.NoError(t, err)
		assert.Equal(t, ccpayment.StatusConfirmed, got.Status)
		assert.Equal(t, "0xabc", got.TxHash)
	})

	t.Run("missing status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"payment_id": "pay_1"})
		})

		_, err := client.GetStatus(context.Background(), "pay_1")
		assert.ErrorIs(t, err, ccpayment.ErrBadPayload)
	})
}

func TestClient_VerifySignature(t *testing.T) {
	client := ccpayment.NewClient(config.CCPayment{
		BaseURL:       "http://localhost",
		APIKey:        "k",
		MerchantID:    "m",
		WebhookSecret: "secret",
		Timeout:       time.Second,
	})

	body := []byte(`{"payment_reference":"pay_1","status":"confirmed"}`)
	mac := hmac.New(sha256.New, []byte("secret"))
	mac.Write(body)
	signature := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, client.SignatureConfigured())
	assert.True(t, client.VerifySignature(body, signature))
	assert.False(t, client.VerifySignature(body, "deadbeef"))
	assert.False(t, client.VerifySignature([]byte("tampered"), signature))

	unsigned := ccpayment.NewClient(config.CCPayment{
		BaseURL: "http://localhost", APIKey: "k", MerchantID: "m", Timeout: time.Second,
	})
	assert.False(t, unsigned.SignatureConfigured())
	// Without a secret nothing verifies.
	assert.False(t, unsigned.VerifySignature(body, signature))
}

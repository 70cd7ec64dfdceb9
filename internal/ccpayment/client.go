package ccpayment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/opencompanybot/registration-service/internal/config"
)

// Processor-side payment statuses. Callbacks and polls use the same values.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusSuccess   = "success"
	StatusFailed    = "failed"
	StatusExpired   = "expired"
)

var (
	ErrTimeout    = errors.New("payment processor timeout")
	ErrBadStatus  = errors.New("payment processor returned unexpected status")
	ErrBadPayload = errors.New("payment processor returned unexpected payload")
)

// PaymentInstructions is what the client shows to the payer.
type PaymentInstructions struct {
	PaymentReference string
	Address          string
	Amount           decimal.Decimal
	Currency         string
	Network          string
}

type PaymentStatus struct {
	PaymentReference string
	Status           string
	TxHash           string
}

type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	merchantID  string
	callbackURL string
	secret      string
}

func NewClient(cfg config.CCPayment) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
			},
		},
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		merchantID:  cfg.MerchantID,
		callbackURL: cfg.CallbackURL,
		secret:      cfg.WebhookSecret,
	}
}

type createRequest struct {
	MerchantID  string `json:"merchant_id"`
	OrderID     string `json:"order_id"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Network     string `json:"network"`
	Description string `json:"description,omitempty"`
	CallbackURL string `json:"callback_url,omitempty"`
}

type createResponse struct {
	PaymentID  string `json:"payment_id"`
	PayAddress string `json:"pay_address"`
}

// CreatePayment registers a payment intent with the processor and returns the
// reference and deposit address the payer should use.
func (c *Client) CreatePayment(
	ctx context.Context,
	orderID string,
	amount decimal.Decimal,
	currency, network, description string,
) (PaymentInstructions, error) {
	body, err := json.Marshal(createRequest{
		MerchantID:  c.merchantID,
		OrderID:     orderID,
		Amount:      amount.String(),
		Currency:    currency,
		Network:     network,
		Description: description,
		CallbackURL: c.callbackURL,
	})
	if err != nil {
		return PaymentInstructions{}, fmt.Errorf("failed to marshal create request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/payment/create", bytes.NewReader(body))
	if err != nil {
		return PaymentInstructions{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	var resp createResponse
	if err := c.do(req, &resp); err != nil {
		return PaymentInstructions{}, err
	}
	if resp.PaymentID == "" || resp.PayAddress == "" {
		return PaymentInstructions{}, fmt.Errorf("%w: missing payment_id or pay_address", ErrBadPayload)
	}

	return PaymentInstructions{
		PaymentReference: resp.PaymentID,
		Address:          resp.PayAddress,
		Amount:           amount,
		Currency:         currency,
		Network:          network,
	}, nil
}

type statusResponse struct {
	PaymentID string `json:"payment_id"`
	Status    string `json:"status"`
	TxHash    string `json:"tx_hash"`
}

// GetStatus polls the processor for the current state of a payment.
func (c *Client) GetStatus(ctx context.Context, paymentReference string) (PaymentStatus, error) {
	u := fmt.Sprintf("%s/v1/payment/status?%s", c.baseURL, url.Values{"payment_id": {paymentReference}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return PaymentStatus{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	var resp statusResponse
	if err := c.do(req, &resp); err != nil {
		return PaymentStatus{}, err
	}
	if resp.Status == "" {
		return PaymentStatus{}, fmt.Errorf("%w: missing status", ErrBadPayload)
	}

	return PaymentStatus{
		PaymentReference: paymentReference,
		Status:           resp.Status,
		TxHash:           resp.TxHash,
	}, nil
}

// VerifySignature checks the HMAC-SHA256 webhook signature over the raw body.
// When no secret is configured every signature is rejected, callers decide
// whether an unsigned deployment is acceptable.
func (c *Client) VerifySignature(body []byte, signature string) bool {
	if c.secret == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(c.secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (c *Client) SignatureConfigured() bool {
	return c.secret != ""
}

func (c *Client) do(req *http.Request, dest any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w: %s", ErrTimeout, err)
		}
		return fmt.Errorf("payment processor request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read processor response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %d: %s", ErrBadStatus, resp.StatusCode, raw)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: %s", ErrBadPayload, err)
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

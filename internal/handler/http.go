package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/opencompanybot/registration-service/internal/entities"
	"github.com/opencompanybot/registration-service/pkg/utils"
)

const signatureHeader = "X-CC-Webhook-Signature"

type OrderService interface {
	CreatePayment(ctx context.Context, amount decimal.Decimal, currency, network, description string, payload entities.CompanyPayload) (entities.Order, error)
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	PollPayment(ctx context.Context, orderID string) (entities.Order, error)
	HandlePaymentEvent(ctx context.Context, paymentReference, status string) error
}

// WebhookVerifier authenticates processor callbacks.
type WebhookVerifier interface {
	VerifySignature(body []byte, signature string) bool
	SignatureConfigured() bool
}

// CompanyDirectory proxies read-only registry lookups.
type CompanyDirectory interface {
	Company(ctx context.Context, companyNumber string) (map[string]any, error)
	FilingHistory(ctx context.Context, companyNumber string) (map[string]any, error)
	Search(ctx context.Context, query, companyType string) (map[string]any, error)
}

type HTTPHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	svc       OrderService
	verifier  WebhookVerifier
	directory CompanyDirectory
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService, verifier WebhookVerifier, directory CompanyDirectory) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "http")),
		validate:  validator.New(),
		svc:       svc,
		verifier:  verifier,
		directory: directory,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/payment", func(r chi.Router) {
			r.Post("/create", h.CreatePayment)
			r.Get("/status/{order_id}", h.PollPayment)
			r.Post("/webhook", h.PaymentWebhook)
		})
		r.Get("/orders/{order_id}", h.GetOrder)
		r.Route("/companies", func(r chi.Router) {
			r.Get("/search", h.SearchCompanies)
			r.Get("/{company_number}", h.GetCompany)
			r.Get("/{company_number}/filing-history", h.GetFilingHistory)
		})
	})
}

// CreatePayment creates a payment order for a company registration.
// @Summary      Create payment order
// @Description  Requests a crypto payment address from the processor and records a pending registration order
// @Tags         payment
// @Accept       json
// @Param        request  body      CreatePaymentRequest  true  "Payment terms and company registration payload"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      502  {object}  utils.ErrorResponse "Payment processor error"
// @Router       /api/v1/payment/create [post]
func (h *HTTPHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreatePaymentRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Currency == "" {
		req.Currency = "USDT"
	}
	if req.Network == "" {
		req.Network = "ERC20"
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if !req.Amount.IsPositive() {
		utils.WriteError(w, "amount must be positive", http.StatusBadRequest)
		return
	}

	order, err := h.svc.CreatePayment(ctx, req.Amount, req.Currency, req.Network, req.Description, PayloadJSONToEntity(req.Company))
	if errors.Is(err, entities.ErrInconsistentState) {
		// Already logged with order and payment reference for manual
		// reconciliation; the client must not retry blindly.
		utils.WriteError(w, "payment created but order not recorded, contact support", http.StatusInternalServerError)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create payment", slog.Any("error", err))
		utils.WriteError(w, "failed to create payment", http.StatusBadGateway)
		return
	}

	paymentsCreated.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrder returns the current state of an order.
// @Summary      Get order
// @Tags         orders
// @Param        order_id   path      string  true  "Order identifier"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /api/v1/orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required,uuid4"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrder(ctx, orderID)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// PollPayment polls the processor for payment progress and returns the refreshed order.
// @Summary      Poll payment status
// @Description  Asks the payment processor for the current payment state and applies it to the order
// @Tags         payment
// @Param        order_id   path      string  true  "Order identifier"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      502  {object}  utils.ErrorResponse "Payment processor error"
// @Router       /api/v1/payment/status/{order_id} [get]
func (h *HTTPHandler) PollPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required,uuid4"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.PollPayment(ctx, orderID)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to poll payment", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "failed to poll payment status", http.StatusBadGateway)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// PaymentWebhook receives payment callbacks from the processor.
// @Summary      Payment webhook
// @Description  Applies a processor payment event; delivery is at-least-once and duplicates are tolerated
// @Tags         payment
// @Accept       json
// @Param        request  body  PaymentEvent  true  "Payment event"
// @Success      200  {string}  string "ok"
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      401  {object}  utils.ErrorResponse "Bad signature"
// @Router       /api/v1/payment/webhook [post]
func (h *HTTPHandler) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.WriteError(w, "failed to read body", http.StatusBadRequest)
		return
	}

	if h.verifier.SignatureConfigured() {
		if !h.verifier.VerifySignature(body, r.Header.Get(signatureHeader)) {
			h.logger.WarnContext(ctx, "webhook signature rejected", slog.String("remote", r.RemoteAddr))
			utils.WriteError(w, "bad signature", http.StatusUnauthorized)
			return
		}
	}

	var event PaymentEvent
	if err := json.Unmarshal(body, &event); err != nil {
		utils.WriteError(w, "invalid event payload", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(event); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.HandlePaymentEvent(ctx, event.PaymentReference, event.Status); err != nil {
		if errors.Is(err, entities.ErrOrderNotFound) {
			utils.WriteError(w, "unknown payment reference", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to handle payment event",
			slog.Any("error", err),
			slog.String("payment_reference", event.PaymentReference),
		)
		utils.WriteError(w, "failed to process event", http.StatusInternalServerError)
		return
	}

	webhooksProcessed.Inc()
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// GetCompany proxies the registry's company profile lookup.
// @Summary      Get company profile
// @Tags         companies
// @Param        company_number   path      string  true  "Company number"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  utils.ErrorResponse "Company not found"
// @Router       /api/v1/companies/{company_number} [get]
func (h *HTTPHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	h.proxyCompanyLookup(w, r, func(ctx context.Context, companyNumber string) (map[string]any, error) {
		return h.directory.Company(ctx, companyNumber)
	})
}

// GetFilingHistory proxies the registry's filing history lookup.
// @Summary      Get filing history
// @Tags         companies
// @Param        company_number   path      string  true  "Company number"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  utils.ErrorResponse "Company not found"
// @Router       /api/v1/companies/{company_number}/filing-history [get]
func (h *HTTPHandler) GetFilingHistory(w http.ResponseWriter, r *http.Request) {
	h.proxyCompanyLookup(w, r, func(ctx context.Context, companyNumber string) (map[string]any, error) {
		return h.directory.FilingHistory(ctx, companyNumber)
	})
}

func (h *HTTPHandler) proxyCompanyLookup(
	w http.ResponseWriter,
	r *http.Request,
	lookup func(ctx context.Context, companyNumber string) (map[string]any, error),
) {
	ctx := r.Context()
	companyNumber := chi.URLParam(r, "company_number")

	if err := h.validate.Var(companyNumber, "required,alphanum"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	result, err := lookup(ctx, companyNumber)
	if err != nil {
		h.logger.ErrorContext(ctx, "registry lookup failed",
			slog.Any("error", err),
			slog.String("company_number", companyNumber),
		)
		utils.WriteError(w, "company not found", http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// SearchCompanies proxies the registry's company search.
// @Summary      Search companies
// @Tags         companies
// @Param        q      query     string  true   "Search query"
// @Param        type   query     string  false  "Incorporation type"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Router       /api/v1/companies/search [get]
func (h *HTTPHandler) SearchCompanies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query().Get("q")

	if err := h.validate.Var(query, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	results, err := h.directory.Search(ctx, query, r.URL.Query().Get("type"))
	if err != nil {
		h.logger.ErrorContext(ctx, "registry search failed", slog.Any("error", err), slog.String("query", query))
		utils.WriteError(w, "search failed", http.StatusBadGateway)
		return
	}

	utils.WriteJSON(w, results, http.StatusOK)
}

// Package http serves the payment return deep link: the provider redirects
// the user's browser here after a wallet payment, and the handler feeds the
// query parameters to the payment return flow.
package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/danghoa77/e-project-mobile/internal/payment"
)

// ReturnResolver normalizes a provider return into a terminal result.
type ReturnResolver interface {
	Resolve(ctx context.Context, query url.Values) payment.Result
}

type PaymentReturnHandler struct {
	resolver ReturnResolver
	logger   *zap.Logger
}

func NewPaymentReturnHandler(resolver ReturnResolver, logger *zap.Logger) *PaymentReturnHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentReturnHandler{resolver: resolver, logger: logger}
}

type ReturnResponseDTO struct {
	Status   string `json:"status"`
	Provider string `json:"provider,omitempty"`
	OrderID  string `json:"orderId,omitempty"`
	Amount   string `json:"amount,omitempty"`
	Message  string `json:"message"`
}

// GET /payments/return
func (h *PaymentReturnHandler) HandleReturn(w http.ResponseWriter, r *http.Request) {
	result := h.resolver.Resolve(r.Context(), r.URL.Query())

	status := http.StatusOK
	switch result.Outcome {
	case payment.OutcomeFailed:
		status = http.StatusPaymentRequired
	case payment.OutcomeVerifyError:
		status = http.StatusBadGateway
	}

	h.respondJSON(w, status, ReturnResponseDTO{
		Status:   string(result.Outcome),
		Provider: result.Provider.String(),
		OrderID:  result.OrderID,
		Amount:   result.Amount,
		Message:  result.Message,
	})
}

func (h *PaymentReturnHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// NewRouter mounts the return listener routes.
func NewRouter(h *PaymentReturnHandler, timeout time.Duration) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/payments/return", h.HandleReturn)

	return r
}

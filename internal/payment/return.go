// Package payment normalizes the two provider return callbacks into one
// outcome. The redirect's client-visible success code is never trusted
// alone: a server verification round-trip is mandatory before any cleanup.
package payment

import (
	"context"
	"net/url"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/danghoa77/e-project-mobile/internal/domain"
)

const (
	momoSuccessCode  = "0"
	vnpaySuccessCode = "00"
)

// Verifier is the provider-specific return verification endpoint.
type Verifier interface {
	VerifyPaymentReturn(ctx context.Context, provider domain.PaymentProvider, orderID, code string) error
}

// CartClearer removes the cart after a verified successful payment.
type CartClearer interface {
	Clear(ctx context.Context) error
}

type Outcome string

const (
	OutcomeSucceeded Outcome = "SUCCESS"
	OutcomeFailed    Outcome = "FAILED"
	// OutcomeVerifyError means the verification call itself failed; the
	// cart is left untouched.
	OutcomeVerifyError Outcome = "VERIFICATION_ERROR"
)

// Result is the normalized terminal state of one provider return. The flow
// is non-retryable: whatever the outcome, the caller navigates home.
type Result struct {
	Outcome  Outcome
	Provider domain.PaymentProvider
	OrderID  string
	// Amount is the formatted paid amount when the provider sent one.
	Amount  string
	Message string
}

type ReturnHandler struct {
	verifier Verifier
	cart     CartClearer
	logger   *zap.Logger
}

func NewReturnHandler(verifier Verifier, cart CartClearer, logger *zap.Logger) *ReturnHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReturnHandler{verifier: verifier, cart: cart, logger: logger}
}

// Resolve detects which provider redirected back by its distinguishing query
// parameters, verifies the result server-side and runs post-payment cleanup.
// When neither provider's parameters are present the return is a failure
// with no network call.
func (h *ReturnHandler) Resolve(ctx context.Context, query url.Values) Result {
	switch {
	case query.Get("orderId") != "" && query.Get("resultCode") != "":
		return h.resolve(ctx, domain.ProviderMomo,
			query.Get("orderId"), query.Get("resultCode"),
			formatAmount(query.Get("amount"), 1))

	case query.Get("vnp_TxnRef") != "" && query.Get("vnp_TransactionStatus") != "":
		// vnpay reports amounts scaled by 100.
		return h.resolve(ctx, domain.ProviderVnpay,
			query.Get("vnp_TxnRef"), query.Get("vnp_TransactionStatus"),
			formatAmount(query.Get("vnp_Amount"), 100))

	default:
		h.logger.Warn("payment return without provider parameters")
		return Result{Outcome: OutcomeFailed, Message: "Payment failed."}
	}
}

func (h *ReturnHandler) resolve(ctx context.Context, provider domain.PaymentProvider, orderID, code, amount string) Result {
	logger := h.logger.With(
		zap.String("provider", provider.String()),
		zap.String("order_id", orderID),
	)

	if err := h.verifier.VerifyPaymentReturn(ctx, provider, orderID, code); err != nil {
		logger.Warn("payment verification call failed", zap.Error(err))
		return Result{
			Outcome:  OutcomeVerifyError,
			Provider: provider,
			OrderID:  orderID,
			Message:  "Payment verification error.",
		}
	}

	if code != successCode(provider) {
		logger.Info("payment declined", zap.String("code", code))
		return Result{
			Outcome:  OutcomeFailed,
			Provider: provider,
			OrderID:  orderID,
			Message:  "Payment failed. Please try again.",
		}
	}

	if err := h.cart.Clear(ctx); err != nil {
		// The payment went through; a stale cart is an annoyance, not a
		// failure of the return flow.
		logger.Warn("cart clear after payment failed", zap.Error(err))
	}

	message := "Payment successful"
	if amount != "" {
		message += " (" + amount + ")"
	}
	logger.Info("payment verified", zap.String("amount", amount))
	return Result{
		Outcome:  OutcomeSucceeded,
		Provider: provider,
		OrderID:  orderID,
		Amount:   amount,
		Message:  message,
	}
}

func successCode(provider domain.PaymentProvider) string {
	if provider == domain.ProviderVnpay {
		return vnpaySuccessCode
	}
	return momoSuccessCode
}

func formatAmount(raw string, scale int64) string {
	if raw == "" {
		return ""
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return ""
	}
	if scale > 1 {
		amount = amount.Div(decimal.NewFromInt(scale))
	}
	return domain.FormatVND(amount)
}

package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// PaymentProvider identifies one of the supported wallet providers.
type PaymentProvider string

const (
	ProviderMomo  PaymentProvider = "momo"
	ProviderVnpay PaymentProvider = "vnpay"
)

func (p PaymentProvider) String() string {
	return string(p)
}

// PaymentMethod selects how an order is paid at checkout.
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentMomo  PaymentMethod = "momo"
	PaymentVnpay PaymentMethod = "vnpay"
)

// Provider maps a wallet payment method to its provider. Cash has none.
func (m PaymentMethod) Provider() (PaymentProvider, bool) {
	switch m {
	case PaymentMomo:
		return ProviderMomo, true
	case PaymentVnpay:
		return ProviderVnpay, true
	default:
		return "", false
	}
}

var vnd = currency.MustParseISO("VND")

// FormatVND renders an amount in Vietnamese dong for user-facing messages.
func FormatVND(amount decimal.Decimal) string {
	return fmt.Sprintf("%v", currency.Symbol(vnd.Amount(amount.InexactFloat64())))
}

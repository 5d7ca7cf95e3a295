package gateway

import (
	"context"

	"github.com/shopspring/decimal"
)

// Intent is the result of creating a payment intent with the provider. The
// client secret goes back to the browser; the reference is what we persist.
type Intent struct {
	Reference    string
	ClientSecret string
}

// PaymentGateway creates payment intents with an external provider. The core
// only forwards amount and currency; settlement is the provider's problem.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount decimal.Decimal, currency string) (*Intent, error)
}

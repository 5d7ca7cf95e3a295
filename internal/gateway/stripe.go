package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"surveywallet/internal/errors"
)

// StripeClient talks to the Stripe payment-intents API. Amounts are converted
// to the smallest currency unit on the wire, as Stripe expects.
type StripeClient struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// Ensure StripeClient implements PaymentGateway
var _ PaymentGateway = (*StripeClient)(nil)

// NewStripeClient creates a gateway client against baseURL (the production
// API unless overridden for tests).
func NewStripeClient(baseURL, secretKey string) *StripeClient {
	return &StripeClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// CreateIntent creates a payment intent and returns its reference and client
// secret. Provider failures surface as ErrGatewayUnavailable; the response
// body is not exposed to callers.
func (c *StripeClient) CreateIntent(ctx context.Context, amount decimal.Decimal, currency string) (*Intent, error) {
	form := url.Values{}
	form.Set("amount", amount.Mul(decimal.NewFromInt(100)).Truncate(0).String())
	form.Set("currency", strings.ToLower(currency))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build intent request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.ErrGatewayUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.ErrGatewayUnavailable
	}

	var payload intentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode intent response: %w", err)
	}
	if payload.ClientSecret == "" {
		return nil, errors.ErrGatewayUnavailable
	}

	return &Intent{
		Reference:    payload.ID,
		ClientSecret: payload.ClientSecret,
	}, nil
}

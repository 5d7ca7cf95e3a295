package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"surveywallet/internal/errors"
	"surveywallet/internal/gateway"
	"surveywallet/internal/model"
)

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) List(ctx context.Context) ([]model.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByPayer(ctx context.Context, payerEmail string) ([]model.Payment, error) {
	args := m.Called(ctx, payerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Payment), args.Error(1)
}

// MockPaymentGateway is a mock implementation of gateway.PaymentGateway.
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateIntent(ctx context.Context, amount decimal.Decimal, currency string) (*gateway.Intent, error) {
	args := m.Called(ctx, amount, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Intent), args.Error(1)
}

func TestPaymentService_CreateIntent(t *testing.T) {
	tests := []struct {
		name          string
		amount        decimal.Decimal
		currency      string
		gatewayErr    error
		expectedError error
	}{
		{
			name:     "valid amount forwarded verbatim",
			amount:   decimal.NewFromFloat(19.99),
			currency: "usd",
		},
		{
			name:          "zero amount rejected before the gateway is called",
			amount:        decimal.Zero,
			currency:      "usd",
			expectedError: errors.ErrInvalidAmount,
		},
		{
			name:          "negative amount rejected",
			amount:        decimal.NewFromInt(-5),
			currency:      "usd",
			expectedError: errors.ErrInvalidAmount,
		},
		{
			name:          "missing currency rejected",
			amount:        decimal.NewFromInt(10),
			currency:      "",
			expectedError: errors.ErrInvalidAmount,
		},
		{
			name:          "gateway outage surfaces as-is",
			amount:        decimal.NewFromInt(10),
			currency:      "usd",
			gatewayErr:    errors.ErrGatewayUnavailable,
			expectedError: errors.ErrGatewayUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockPaymentRepository)
			gw := new(MockPaymentGateway)
			if tt.expectedError == nil || tt.gatewayErr != nil {
				var intent *gateway.Intent
				if tt.gatewayErr == nil {
					intent = &gateway.Intent{Reference: "pi_123", ClientSecret: "secret"}
				}
				gw.On("CreateIntent", mock.Anything, tt.amount, tt.currency).Return(intent, tt.gatewayErr)
			}

			svc := NewPaymentService(repo, gw)
			intent, err := svc.CreateIntent(context.Background(), tt.amount, tt.currency)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, intent)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "pi_123", intent.Reference)
			}
			// Creating an intent never writes a transaction record.
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			gw.AssertExpectations(t)
		})
	}
}

func TestPaymentService_Record(t *testing.T) {
	amount := decimal.NewFromFloat(42.50)

	repo := new(MockPaymentRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Payment) bool {
		return p.PayerEmail == "payer@example.com" &&
			p.Amount.Equal(amount) &&
			p.Currency == "usd" &&
			p.ProviderRef == "pi_123"
	})).Return(nil)

	svc := NewPaymentService(repo, new(MockPaymentGateway))
	payment, err := svc.Record(context.Background(), "payer@example.com", amount, "usd", "pi_123")

	assert.NoError(t, err)
	assert.True(t, payment.Amount.Equal(amount))
	repo.AssertExpectations(t)
}

func TestPaymentService_Record_InvalidAmount(t *testing.T) {
	repo := new(MockPaymentRepository)

	svc := NewPaymentService(repo, new(MockPaymentGateway))
	_, err := svc.Record(context.Background(), "payer@example.com", decimal.Zero, "usd", "pi_123")

	assert.ErrorIs(t, err, errors.ErrInvalidAmount)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPaymentService_History(t *testing.T) {
	all := []model.Payment{{PayerEmail: "a@x.com"}, {PayerEmail: "b@x.com"}}
	own := []model.Payment{{PayerEmail: "a@x.com"}}

	t.Run("admin sees everything", func(t *testing.T) {
		repo := new(MockPaymentRepository)
		repo.On("List", mock.Anything).Return(all, nil)

		svc := NewPaymentService(repo, new(MockPaymentGateway))
		payments, err := svc.History(context.Background(), "a@x.com", true)

		assert.NoError(t, err)
		assert.Len(t, payments, 2)
		repo.AssertNotCalled(t, "ListByPayer", mock.Anything, mock.Anything)
	})

	t.Run("member sees only their own", func(t *testing.T) {
		repo := new(MockPaymentRepository)
		repo.On("ListByPayer", mock.Anything, "a@x.com").Return(own, nil)

		svc := NewPaymentService(repo, new(MockPaymentGateway))
		payments, err := svc.History(context.Background(), "a@x.com", false)

		assert.NoError(t, err)
		assert.Len(t, payments, 1)
		repo.AssertNotCalled(t, "List", mock.Anything)
	})
}

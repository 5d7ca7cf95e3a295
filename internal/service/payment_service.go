package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"surveywallet/internal/errors"
	"surveywallet/internal/gateway"
	"surveywallet/internal/model"
	"surveywallet/internal/repository"
)

// PaymentService creates payment intents with the gateway and records
// completed transactions. It never reconciles settlement status.
type PaymentService interface {
	CreateIntent(ctx context.Context, amount decimal.Decimal, currency string) (*gateway.Intent, error)
	Record(ctx context.Context, payerEmail string, amount decimal.Decimal, currency, providerRef string) (*model.Payment, error)
	// History returns the caller's own transactions, or everyone's when the
	// caller is an admin.
	History(ctx context.Context, callerEmail string, isAdmin bool) ([]model.Payment, error)
}

type paymentService struct {
	repo    repository.PaymentRepository
	gateway gateway.PaymentGateway
}

// NewPaymentService creates a new payment service.
func NewPaymentService(repo repository.PaymentRepository, gw gateway.PaymentGateway) PaymentService {
	return &paymentService{repo: repo, gateway: gw}
}

// CreateIntent forwards amount and currency to the gateway. Nothing is
// persisted at this step.
func (s *paymentService) CreateIntent(ctx context.Context, amount decimal.Decimal, currency string) (*gateway.Intent, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, errors.ErrInvalidAmount
	}
	if currency == "" {
		return nil, errors.ErrInvalidAmount
	}
	return s.gateway.CreateIntent(ctx, amount, currency)
}

// Record persists one immutable transaction record for a completed payment.
func (s *paymentService) Record(ctx context.Context, payerEmail string, amount decimal.Decimal, currency, providerRef string) (*model.Payment, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, errors.ErrInvalidAmount
	}

	payment := &model.Payment{
		PayerEmail:  payerEmail,
		Amount:      amount,
		Currency:    currency,
		ProviderRef: providerRef,
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}
	return payment, nil
}

// History lists transactions visible to the caller.
func (s *paymentService) History(ctx context.Context, callerEmail string, isAdmin bool) ([]model.Payment, error) {
	if isAdmin {
		return s.repo.List(ctx)
	}
	return s.repo.ListByPayer(ctx, callerEmail)
}

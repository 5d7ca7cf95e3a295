package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment is the immutable record of one completed transaction. It stores the
// gateway's intent reference; settlement reconciliation is out of scope.
type Payment struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	PayerEmail  string          `json:"payer_email" gorm:"size:255;not null;index"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Currency    string          `json:"currency" gorm:"size:10;not null"`
	ProviderRef string          `json:"provider_ref" gorm:"size:255;not null"`
	CreatedAt   time.Time       `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

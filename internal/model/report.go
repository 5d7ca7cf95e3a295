package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Report flags a survey for moderator attention. Readable and deletable only
// by admins.
type Report struct {
	ID            uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	SurveyID      uuid.UUID `json:"survey_id" gorm:"type:char(36);not null;index"`
	ReporterEmail string    `json:"reporter_email" gorm:"size:255;not null"`
	Reason        string    `json:"reason" gorm:"type:text;not null"`
	CreatedAt     time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is an immutable remark left on a survey by an authenticated user.
type Comment struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	SurveyID    uuid.UUID `json:"survey_id" gorm:"type:char(36);not null;index"`
	AuthorEmail string    `json:"author_email" gorm:"size:255;not null"`
	Body        string    `json:"body" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

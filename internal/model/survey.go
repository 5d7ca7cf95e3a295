package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SurveyStatus represents the lifecycle status of a survey.
type SurveyStatus string

const (
	SurveyStatusActive      SurveyStatus = "active"
	SurveyStatusUnpublished SurveyStatus = "unpublished"
)

// ReactionKind distinguishes the two mutually exclusive reaction sets.
type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// Survey represents a poll with its denormalized counters. Participation
// entries, reactions, and comments live in child tables so that appending one
// is a single atomic row insert and subject uniqueness is enforced by index.
type Survey struct {
	ID           uuid.UUID    `json:"id" gorm:"type:char(36);primaryKey"`
	OwnerEmail   string       `json:"owner_email" gorm:"size:255;not null;index"`
	Title        string       `json:"title" gorm:"size:255;not null"`
	Description  string       `json:"description" gorm:"type:text"`
	Category     string       `json:"category" gorm:"size:100;index"`
	Question     string       `json:"question" gorm:"size:512;not null"`
	Options      OptionList   `json:"options" gorm:"type:json"`
	TotalVotes   int          `json:"total_votes" gorm:"not null;default:0"`
	LikeCount    int          `json:"like_count" gorm:"not null;default:0"`
	DislikeCount int          `json:"dislike_count" gorm:"not null;default:0"`
	Featured     bool         `json:"featured" gorm:"not null;default:false;index"`
	Status       SurveyStatus `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	// Relations
	Votes     []SurveyVote     `json:"votes" gorm:"foreignKey:SurveyID"`
	Reactions []SurveyReaction `json:"reactions,omitempty" gorm:"foreignKey:SurveyID"`
	Comments  []Comment        `json:"comments" gorm:"foreignKey:SurveyID"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Survey) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// AfterFind normalizes absent child collections so a fresh survey marshals
// with an empty participation list instead of null.
func (s *Survey) AfterFind(tx *gorm.DB) error {
	if s.Votes == nil {
		s.Votes = []SurveyVote{}
	}
	if s.Comments == nil {
		s.Comments = []Comment{}
	}
	return nil
}

// SurveyVote is one participation entry: a subject's choice in a survey.
// The (survey_id, voter_email) unique index rejects duplicate participation.
type SurveyVote struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	SurveyID   uuid.UUID `json:"survey_id" gorm:"type:char(36);not null;uniqueIndex:idx_vote_subject"`
	VoterEmail string    `json:"user" gorm:"size:255;not null;uniqueIndex:idx_vote_subject"`
	Choice     string    `json:"choice" gorm:"size:255;not null"`
	CreatedAt  time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (v *SurveyVote) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// SurveyReaction records a subject in exactly one of the like/dislike sets.
// The (survey_id, subject_email) unique index spans both kinds, so a subject
// cannot like and dislike the same survey.
type SurveyReaction struct {
	ID           uuid.UUID    `json:"id" gorm:"type:char(36);primaryKey"`
	SurveyID     uuid.UUID    `json:"survey_id" gorm:"type:char(36);not null;uniqueIndex:idx_reaction_subject"`
	SubjectEmail string       `json:"user" gorm:"size:255;not null;uniqueIndex:idx_reaction_subject"`
	Kind         ReactionKind `json:"kind" gorm:"type:varchar(10);not null"`
	CreatedAt    time.Time    `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (r *SurveyReaction) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

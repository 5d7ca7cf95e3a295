package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"surveywallet/internal/model"
)

// SurveyFilter narrows and orders survey listings.
type SurveyFilter struct {
	Category     string
	Status       model.SurveyStatus
	FeaturedOnly bool
	SortByVotes  bool
	Limit        int
}

// SurveyRepository defines survey persistence operations. Participation,
// reactions, and comments are appended through it so each append is a single
// row insert paired with its counter update inside one transaction.
type SurveyRepository interface {
	Create(ctx context.Context, survey *model.Survey) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Survey, error)
	List(ctx context.Context, filter SurveyFilter) ([]model.Survey, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	AddVote(ctx context.Context, vote *model.SurveyVote) error
	FindVote(ctx context.Context, surveyID uuid.UUID, voterEmail string) (*model.SurveyVote, error)
	AddReaction(ctx context.Context, reaction *model.SurveyReaction) error
	FindReaction(ctx context.Context, surveyID uuid.UUID, subjectEmail string) (*model.SurveyReaction, error)
	AddComment(ctx context.Context, comment *model.Comment) error
}

type surveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository creates a new survey repository.
func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

// Create inserts a new survey.
func (r *surveyRepository) Create(ctx context.Context, survey *model.Survey) error {
	return r.db.WithContext(ctx).Create(survey).Error
}

// FindByID loads a survey with its participation entries and comments.
func (r *surveyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Survey, error) {
	var survey model.Survey
	err := r.db.WithContext(ctx).
		Preload("Votes", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		Where("id = ?", id).First(&survey).Error
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

// List returns surveys matching the filter.
func (r *surveyRepository) List(ctx context.Context, filter SurveyFilter) ([]model.Survey, error) {
	q := r.db.WithContext(ctx).Model(&model.Survey{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.FeaturedOnly {
		q = q.Where("featured = ?", true)
	}
	if filter.SortByVotes {
		q = q.Order("total_votes DESC")
	} else {
		q = q.Order("created_at DESC")
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var surveys []model.Survey
	if err := q.Find(&surveys).Error; err != nil {
		return nil, err
	}
	return surveys, nil
}

// UpdateFields overwrites the named columns verbatim and reports the driver's
// RowsAffected. MySQL counts rows changed, not rows matched, so zero can mean
// either a missing survey or a write of the already-stored values.
func (r *surveyRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Survey{}).
		Where("id = ?", id).
		Updates(fields)
	return result.RowsAffected, result.Error
}

// Delete removes a survey and its child rows in one transaction, reporting
// how many survey rows were deleted.
func (r *surveyRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("survey_id = ?", id).Delete(&model.SurveyVote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("survey_id = ?", id).Delete(&model.SurveyReaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("survey_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&model.Survey{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	return deleted, err
}

// AddVote appends one participation entry and bumps the survey's vote counter
// in the same transaction. The counter update doubles as the existence check:
// zero matched rows means the survey is gone and nothing is inserted.
func (r *surveyRepository) AddVote(ctx context.Context, vote *model.SurveyVote) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Survey{}).
			Where("id = ?", vote.SurveyID).
			Update("total_votes", gorm.Expr("total_votes + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(vote).Error
	})
}

// FindVote returns the participation entry for a subject, or
// gorm.ErrRecordNotFound when the subject has not voted.
func (r *surveyRepository) FindVote(ctx context.Context, surveyID uuid.UUID, voterEmail string) (*model.SurveyVote, error) {
	var vote model.SurveyVote
	err := r.db.WithContext(ctx).
		Where("survey_id = ? AND voter_email = ?", surveyID, voterEmail).
		First(&vote).Error
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

// AddReaction appends a subject to exactly one of the like/dislike sets and
// bumps the matching counter in the same transaction.
func (r *surveyRepository) AddReaction(ctx context.Context, reaction *model.SurveyReaction) error {
	column := "like_count"
	if reaction.Kind == model.ReactionDislike {
		column = "dislike_count"
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Survey{}).
			Where("id = ?", reaction.SurveyID).
			Update(column, gorm.Expr(column+" + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(reaction).Error
	})
}

// FindReaction returns a subject's reaction, or gorm.ErrRecordNotFound when
// the subject has neither liked nor disliked the survey.
func (r *surveyRepository) FindReaction(ctx context.Context, surveyID uuid.UUID, subjectEmail string) (*model.SurveyReaction, error) {
	var reaction model.SurveyReaction
	err := r.db.WithContext(ctx).
		Where("survey_id = ? AND subject_email = ?", surveyID, subjectEmail).
		First(&reaction).Error
	if err != nil {
		return nil, err
	}
	return &reaction, nil
}

// AddComment appends a comment to a survey after checking the survey exists.
func (r *surveyRepository) AddComment(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Survey{}).Where("id = ?", comment.SurveyID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(comment).Error
	})
}

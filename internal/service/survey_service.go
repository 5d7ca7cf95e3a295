package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"surveywallet/internal/cache"
	"surveywallet/internal/errors"
	"surveywallet/internal/model"
	"surveywallet/internal/repository"
)

const (
	surveyCacheTTL        = 5 * time.Minute
	surveyCacheKeyPrefix  = "survey:"
	surveyListCachePrefix = "surveys:"
)

// CreateSurveyInput carries the caller-supplied survey payload.
type CreateSurveyInput struct {
	Title       string
	Description string
	Category    string
	Question    string
	Options     []string
}

// UpdateSurveyInput carries the owner-editable survey fields. Nil pointers
// leave the stored value untouched.
type UpdateSurveyInput struct {
	Title       *string
	Description *string
	Category    *string
	Question    *string
	Options     []string
}

// ParticipationResult answers "has this subject voted, and how". The boolean
// is explicit so absence is never confused with an empty record.
type ParticipationResult struct {
	Participate bool              `json:"participate"`
	VoteData    *model.SurveyVote `json:"vote_data,omitempty"`
}

// ReactionResult answers "has this subject liked or disliked".
type ReactionResult struct {
	Voted bool                  `json:"voted"`
	Kind  model.ReactionKind    `json:"kind,omitempty"`
	Data  *model.SurveyReaction `json:"reaction_data,omitempty"`
}

// SurveyService handles survey operations.
type SurveyService interface {
	Create(ctx context.Context, ownerEmail string, input CreateSurveyInput) (*model.Survey, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Survey, error)
	List(ctx context.Context, filter repository.SurveyFilter) ([]model.Survey, error)
	Update(ctx context.Context, id uuid.UUID, callerEmail string, isAdmin bool, input UpdateSurveyInput) (*model.Survey, error)
	Delete(ctx context.Context, id uuid.UUID, callerEmail string, isAdmin bool) error
	Participate(ctx context.Context, id uuid.UUID, voterEmail, choice string) error
	Participation(ctx context.Context, id uuid.UUID, voterEmail string) (*ParticipationResult, error)
	React(ctx context.Context, id uuid.UUID, subjectEmail string, kind model.ReactionKind) error
	Reaction(ctx context.Context, id uuid.UUID, subjectEmail string) (*ReactionResult, error)
	AddComment(ctx context.Context, id uuid.UUID, authorEmail, body string) (*model.Comment, error)
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error
	SetStatus(ctx context.Context, id uuid.UUID, status model.SurveyStatus) error
}

type surveyService struct {
	repo  repository.SurveyRepository
	cache *cache.Client
}

// NewSurveyService creates a new survey service.
func NewSurveyService(repo repository.SurveyRepository, cache *cache.Client) SurveyService {
	return &surveyService{repo: repo, cache: cache}
}

func (s *surveyService) cacheKey(id uuid.UUID) string {
	return surveyCacheKeyPrefix + id.String()
}

func (s *surveyService) listCacheKey(filter repository.SurveyFilter) string {
	return fmt.Sprintf("%s%s:%s:%t:%t:%d", surveyListCachePrefix,
		filter.Category, filter.Status, filter.FeaturedOnly, filter.SortByVotes, filter.Limit)
}

// invalidate drops the cached projections touched by any survey mutation.
func (s *surveyService) invalidate(ctx context.Context, id uuid.UUID) {
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	_ = s.cache.DeleteByPrefix(ctx, surveyListCachePrefix)
}

// Create inserts a new survey owned by the caller. Every call creates a
// distinct record.
func (s *surveyService) Create(ctx context.Context, ownerEmail string, input CreateSurveyInput) (*model.Survey, error) {
	survey := &model.Survey{
		OwnerEmail:  ownerEmail,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Question:    input.Question,
		Options:     model.OptionList(input.Options),
		Status:      model.SurveyStatusActive,
		Votes:       []model.SurveyVote{},
		Comments:    []model.Comment{},
	}
	if err := s.repo.Create(ctx, survey); err != nil {
		return nil, fmt.Errorf("create survey: %w", err)
	}
	_ = s.cache.DeleteByPrefix(ctx, surveyListCachePrefix)
	return survey, nil
}

// Get retrieves a survey by ID with caching.
func (s *surveyService) Get(ctx context.Context, id uuid.UUID) (*model.Survey, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Survey
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	survey, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrSurveyNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(survey); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, surveyCacheTTL)
	}
	return survey, nil
}

// List returns surveys matching the filter with caching.
func (s *surveyService) List(ctx context.Context, filter repository.SurveyFilter) ([]model.Survey, error) {
	key := s.listCacheKey(filter)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.Survey
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	surveys, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(surveys); err == nil {
		_ = s.cache.Set(ctx, key, payload, surveyCacheTTL)
	}
	return surveys, nil
}

// Update patches the owner-editable fields. Only the owner or an admin may
// change a survey's content.
func (s *surveyService) Update(ctx context.Context, id uuid.UUID, callerEmail string, isAdmin bool, input UpdateSurveyInput) (*model.Survey, error) {
	survey, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrSurveyNotFound
		}
		return nil, err
	}
	if survey.OwnerEmail != callerEmail && !isAdmin {
		return nil, errors.ErrForbidden
	}

	fields := map[string]interface{}{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.Question != nil {
		fields["question"] = *input.Question
	}
	if input.Options != nil {
		fields["options"] = model.OptionList(input.Options)
	}
	if len(fields) > 0 {
		if _, err := s.repo.UpdateFields(ctx, id, fields); err != nil {
			return nil, fmt.Errorf("update survey: %w", err)
		}
		s.invalidate(ctx, id)
	}

	return s.repo.FindByID(ctx, id)
}

// Delete removes a survey and its votes, reactions, and comments. Only the
// owner or an admin may delete; deleting a missing survey is an error, not a
// no-op success.
func (s *surveyService) Delete(ctx context.Context, id uuid.UUID, callerEmail string, isAdmin bool) error {
	survey, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrSurveyNotFound
		}
		return err
	}
	if survey.OwnerEmail != callerEmail && !isAdmin {
		return errors.ErrForbidden
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete survey: %w", err)
	}
	if deleted == 0 {
		return errors.ErrSurveyNotFound
	}
	s.invalidate(ctx, id)
	return nil
}

// Participate appends the caller's vote and bumps the vote counter. A second
// vote by the same subject is rejected, not silently ignored.
func (s *surveyService) Participate(ctx context.Context, id uuid.UUID, voterEmail, choice string) error {
	survey, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !survey.Options.Contains(choice) {
		return errors.ErrInvalidChoice
	}

	err = s.repo.AddVote(ctx, &model.SurveyVote{
		SurveyID:   id,
		VoterEmail: voterEmail,
		Choice:     choice,
	})
	switch {
	case err == nil:
		s.invalidate(ctx, id)
		return nil
	case err == gorm.ErrRecordNotFound:
		return errors.ErrSurveyNotFound
	case err == gorm.ErrDuplicatedKey:
		return errors.ErrAlreadyVoted
	default:
		return fmt.Errorf("add vote: %w", err)
	}
}

// Participation reports whether a subject has voted, with the vote entry when
// present.
func (s *surveyService) Participation(ctx context.Context, id uuid.UUID, voterEmail string) (*ParticipationResult, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	vote, err := s.repo.FindVote(ctx, id, voterEmail)
	if err == gorm.ErrRecordNotFound {
		return &ParticipationResult{Participate: false}, nil
	}
	if err != nil {
		return nil, err
	}
	return &ParticipationResult{Participate: true, VoteData: vote}, nil
}

// React appends the subject to exactly one of the like/dislike sets. A
// subject already present in either set is rejected.
func (s *surveyService) React(ctx context.Context, id uuid.UUID, subjectEmail string, kind model.ReactionKind) error {
	err := s.repo.AddReaction(ctx, &model.SurveyReaction{
		SurveyID:     id,
		SubjectEmail: subjectEmail,
		Kind:         kind,
	})
	switch {
	case err == nil:
		s.invalidate(ctx, id)
		return nil
	case err == gorm.ErrRecordNotFound:
		return errors.ErrSurveyNotFound
	case err == gorm.ErrDuplicatedKey:
		return errors.ErrAlreadyReacted
	default:
		return fmt.Errorf("add reaction: %w", err)
	}
}

// Reaction reports whether a subject has liked or disliked the survey.
func (s *surveyService) Reaction(ctx context.Context, id uuid.UUID, subjectEmail string) (*ReactionResult, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	reaction, err := s.repo.FindReaction(ctx, id, subjectEmail)
	if err == gorm.ErrRecordNotFound {
		return &ReactionResult{Voted: false}, nil
	}
	if err != nil {
		return nil, err
	}
	return &ReactionResult{Voted: true, Kind: reaction.Kind, Data: reaction}, nil
}

// AddComment appends an immutable comment to an existing survey.
func (s *surveyService) AddComment(ctx context.Context, id uuid.UUID, authorEmail, body string) (*model.Comment, error) {
	comment := &model.Comment{
		SurveyID:    id,
		AuthorEmail: authorEmail,
		Body:        body,
	}
	if err := s.repo.AddComment(ctx, comment); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrSurveyNotFound
		}
		return nil, fmt.Errorf("add comment: %w", err)
	}
	s.invalidate(ctx, id)
	return comment, nil
}

// SetFeatured overwrites the featured flag verbatim.
func (s *surveyService) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	return s.patch(ctx, id, map[string]interface{}{"featured": featured})
}

// SetStatus overwrites the lifecycle status verbatim.
func (s *surveyService) SetStatus(ctx context.Context, id uuid.UUID, status model.SurveyStatus) error {
	if status != model.SurveyStatusActive && status != model.SurveyStatusUnpublished {
		return errors.ErrInvalidStatus
	}
	return s.patch(ctx, id, map[string]interface{}{"status": status})
}

func (s *surveyService) patch(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	rows, err := s.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		return err
	}
	if rows == 0 {
		// MySQL reports rows changed, not rows matched, so a patch that
		// re-asserts the stored value looks identical to a missing row.
		// Confirm absence before reporting it.
		if _, err := s.repo.FindByID(ctx, id); err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrSurveyNotFound
			}
			return err
		}
	}
	s.invalidate(ctx, id)
	return nil
}

package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"surveywallet/internal/errors"
	"surveywallet/internal/model"
)

// MockReportRepository is a mock implementation of ReportRepository.
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, report *model.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) List(ctx context.Context) ([]model.Report, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Report), args.Error(1)
}

func (m *MockReportRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestReportService_Create(t *testing.T) {
	surveyID := uuid.New()

	repo := new(MockReportRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *model.Report) bool {
		return r.SurveyID == surveyID &&
			r.ReporterEmail == "reporter@example.com" &&
			r.Reason == "spam"
	})).Return(nil)

	svc := NewReportService(repo)
	report, err := svc.Create(context.Background(), surveyID, "reporter@example.com", "spam")

	assert.NoError(t, err)
	assert.Equal(t, "spam", report.Reason)
	repo.AssertExpectations(t)
}

func TestReportService_Delete(t *testing.T) {
	id := uuid.New()

	t.Run("existing report removed", func(t *testing.T) {
		repo := new(MockReportRepository)
		repo.On("Delete", mock.Anything, id).Return(int64(1), nil)

		svc := NewReportService(repo)
		assert.NoError(t, svc.Delete(context.Background(), id))
	})

	t.Run("missing report is an error not a noop", func(t *testing.T) {
		repo := new(MockReportRepository)
		repo.On("Delete", mock.Anything, id).Return(int64(0), nil)

		svc := NewReportService(repo)
		err := svc.Delete(context.Background(), id)

		assert.ErrorIs(t, err, errors.ErrReportNotFound)
	})
}

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"surveywallet/internal/errors"
	"surveywallet/internal/model"
	"surveywallet/internal/repository"
)

// ReportService handles content reports. Any authenticated user may file one;
// reading and deleting are admin-only and gated at the router.
type ReportService interface {
	Create(ctx context.Context, surveyID uuid.UUID, reporterEmail, reason string) (*model.Report, error)
	List(ctx context.Context) ([]model.Report, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reportService struct {
	repo repository.ReportRepository
}

// NewReportService creates a new report service.
func NewReportService(repo repository.ReportRepository) ReportService {
	return &reportService{repo: repo}
}

// Create files a report. Each call creates a distinct record.
func (s *reportService) Create(ctx context.Context, surveyID uuid.UUID, reporterEmail, reason string) (*model.Report, error) {
	report := &model.Report{
		SurveyID:      surveyID,
		ReporterEmail: reporterEmail,
		Reason:        reason,
	}
	if err := s.repo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}
	return report, nil
}

// List returns all open reports.
func (s *reportService) List(ctx context.Context) ([]model.Report, error) {
	return s.repo.List(ctx)
}

// Delete removes a handled report. Deleting a missing report is an error.
func (s *reportService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return errors.ErrReportNotFound
	}
	return nil
}

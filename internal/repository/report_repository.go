package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"surveywallet/internal/model"
)

// ReportRepository defines report persistence operations.
type ReportRepository interface {
	Create(ctx context.Context, report *model.Report) error
	List(ctx context.Context) ([]model.Report, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *model.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) List(ctx context.Context) ([]model.Report, error) {
	var reports []model.Report
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// Delete removes a report and reports how many rows were deleted.
func (r *reportRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Report{})
	return result.RowsAffected, result.Error
}

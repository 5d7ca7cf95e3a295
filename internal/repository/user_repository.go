package repository

import (
	"context"

	"gorm.io/gorm"

	"surveywallet/internal/model"
)

// UserRepository defines user directory persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	UpdateFields(ctx context.Context, email string, fields map[string]interface{}) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateFields overwrites the named columns for the user with the given email
// and reports the driver's RowsAffected. MySQL counts rows changed, not rows
// matched, so zero can mean either a missing user or a no-op write.
func (r *userRepository) UpdateFields(ctx context.Context, email string, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", email).
		Updates(fields)
	return result.RowsAffected, result.Error
}

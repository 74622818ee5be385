package repository

import (
	"context"

	"gorm.io/gorm"

	"taskapi/internal/api"
	"taskapi/internal/model"
	"taskapi/internal/pagination"
)

// UserFilter holds optional predicates for user listing. Empty fields add no
// predicate; present fields match as substring-contains. Multiple fields
// combine with AND.
type UserFilter struct {
	Name     string
	Username string
	Email    string
}

// UserRepository defines user persistence operations.
type UserRepository interface {
	CreateWithProfile(ctx context.Context, user *model.User, profile *model.UserProfile) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context, filter UserFilter, page, perPage int, currentURL string) ([]model.User, api.Meta, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateWithProfile inserts a user and its profile in one transaction. The
// profile references the generated user ID; a failure on either insert rolls
// back both.
func (r *userRepository) CreateWithProfile(ctx context.Context, user *model.User, profile *model.UserProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		user.Profile = profile
		return nil
	})
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Preload("Profile").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns one page of users matching the filter, newest first, with
// profiles preloaded.
func (r *userRepository) List(ctx context.Context, filter UserFilter, page, perPage int, currentURL string) ([]model.User, api.Meta, error) {
	query := r.db.WithContext(ctx).Model(&model.User{}).Preload("Profile")
	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.Username != "" {
		query = query.Where("username LIKE ?", "%"+filter.Username+"%")
	}
	if filter.Email != "" {
		query = query.Where("email LIKE ?", "%"+filter.Email+"%")
	}

	var users []model.User
	meta, err := pagination.Paginate(query, "date_created DESC", page, perPage, currentURL, &users)
	if err != nil {
		return nil, api.Meta{}, err
	}
	return users, meta, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// Delete removes a user; tasks, labels, the profile, and join rows go with it
// via foreign key cascade.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, id).Error
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"taskapi/internal/model"
)

// LabelRepository defines label persistence operations, all scoped to the
// owning user.
type LabelRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]model.Label, error)
	FindOwned(ctx context.Context, userID, labelID uint) (*model.Label, error)
	TitleTaken(ctx context.Context, userID uint, title string, excludeID uint) (bool, error)
	Create(ctx context.Context, label *model.Label) error
	Update(ctx context.Context, label *model.Label) error
	Delete(ctx context.Context, label *model.Label) error
}

type labelRepository struct {
	db *gorm.DB
}

// NewLabelRepository builds a GORM-backed repository.
func NewLabelRepository(db *gorm.DB) LabelRepository {
	return &labelRepository{db: db}
}

func (r *labelRepository) ListByUser(ctx context.Context, userID uint) ([]model.Label, error) {
	var labels []model.Label
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}

func (r *labelRepository) FindOwned(ctx context.Context, userID, labelID uint) (*model.Label, error) {
	var label model.Label
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, labelID).
		First(&label).Error; err != nil {
		return nil, err
	}
	return &label, nil
}

// TitleTaken reports whether the user already has a label with the given
// title, ignoring the label with excludeID (pass 0 on create).
func (r *labelRepository) TitleTaken(ctx context.Context, userID uint, title string, excludeID uint) (bool, error) {
	query := r.db.WithContext(ctx).Model(&model.Label{}).
		Where("user_id = ? AND title = ?", userID, title)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *labelRepository) Create(ctx context.Context, label *model.Label) error {
	return r.db.WithContext(ctx).Create(label).Error
}

func (r *labelRepository) Update(ctx context.Context, label *model.Label) error {
	return r.db.WithContext(ctx).Save(label).Error
}

// Delete removes a label; join rows cascade.
func (r *labelRepository) Delete(ctx context.Context, label *model.Label) error {
	return r.db.WithContext(ctx).Delete(label).Error
}

package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"taskapi/internal/apperrors"
	"taskapi/internal/model"
	"taskapi/internal/repository"
)

// LabelService exposes label domain operations scoped to the requesting user.
type LabelService interface {
	ListLabels(ctx context.Context, userID uint) ([]model.Label, error)
	CreateLabel(ctx context.Context, userID uint, title, color string) (*model.Label, error)
	GetLabel(ctx context.Context, userID, labelID uint) (*model.Label, error)
	UpdateLabel(ctx context.Context, userID, labelID uint, title, color string) (*model.Label, error)
	DeleteLabel(ctx context.Context, userID, labelID uint) error
}

type labelService struct {
	repo repository.LabelRepository
}

// NewLabelService builds a LabelService.
func NewLabelService(repo repository.LabelRepository) LabelService {
	return &labelService{repo: repo}
}

func (s *labelService) ListLabels(ctx context.Context, userID uint) ([]model.Label, error) {
	return s.repo.ListByUser(ctx, userID)
}

// CreateLabel rejects a title the user already owns; the composite unique
// index backs the pre-check against races.
func (s *labelService) CreateLabel(ctx context.Context, userID uint, title, color string) (*model.Label, error) {
	taken, err := s.repo.TitleTaken(ctx, userID, title, 0)
	if err != nil {
		return nil, fmt.Errorf("check label title: %w", err)
	}
	if taken {
		return nil, apperrors.ErrLabelAlreadyExists
	}

	label := &model.Label{Title: title, UserID: userID}
	if color != "" {
		label.Color = color
	}

	if err := s.repo.Create(ctx, label); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrLabelAlreadyExists
		}
		return nil, fmt.Errorf("create label: %w", err)
	}
	return label, nil
}

func (s *labelService) GetLabel(ctx context.Context, userID, labelID uint) (*model.Label, error) {
	return s.findOwned(ctx, userID, labelID)
}

// UpdateLabel renames a label; renaming into a title the user already owns
// fails.
func (s *labelService) UpdateLabel(ctx context.Context, userID, labelID uint, title, color string) (*model.Label, error) {
	label, err := s.findOwned(ctx, userID, labelID)
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.TitleTaken(ctx, userID, title, label.ID)
	if err != nil {
		return nil, fmt.Errorf("check label title: %w", err)
	}
	if taken {
		return nil, apperrors.ErrLabelAlreadyExists
	}

	label.Title = title
	if color != "" {
		label.Color = color
	}

	if err := s.repo.Update(ctx, label); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrLabelAlreadyExists
		}
		return nil, fmt.Errorf("update label: %w", err)
	}
	return label, nil
}

func (s *labelService) DeleteLabel(ctx context.Context, userID, labelID uint) error {
	label, err := s.findOwned(ctx, userID, labelID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, label); err != nil {
		return fmt.Errorf("delete label: %w", err)
	}
	return nil
}

func (s *labelService) findOwned(ctx context.Context, userID, labelID uint) (*model.Label, error) {
	label, err := s.repo.FindOwned(ctx, userID, labelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLabelNotFound
		}
		return nil, fmt.Errorf("find label: %w", err)
	}
	return label, nil
}

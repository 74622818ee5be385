package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskapi/internal/api"
	"taskapi/internal/apperrors"
	"taskapi/internal/cache"
	"taskapi/internal/model"
	"taskapi/internal/repository"
)

const taskCacheTTL = 5 * time.Minute

// CreateTaskInput carries the fields accepted on task creation. Status and
// Priority default to pending/low when empty.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     *time.Time
	Labels      []string
}

// UpdateTaskInput carries the full replacement field set for a task.
type UpdateTaskInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     *time.Time
	Labels      []string
}

// TaskService exposes task domain operations scoped to the requesting user.
type TaskService interface {
	ListTasks(ctx context.Context, userID uint, filter repository.TaskFilter, page, perPage int, currentURL string) ([]model.Task, api.Meta, error)
	CreateTask(ctx context.Context, userID uint, input CreateTaskInput) (*model.Task, error)
	GetTask(ctx context.Context, userID uint, taskUUID string) (*model.Task, error)
	GetTaskWithLabels(ctx context.Context, userID uint, taskUUID string) (*model.Task, []model.Label, error)
	UpdateTask(ctx context.Context, userID uint, taskUUID string, input UpdateTaskInput) (*model.Task, error)
	UpdateStatus(ctx context.Context, userID uint, taskUUID, status string) (*model.Task, error)
	UpdatePriority(ctx context.Context, userID uint, taskUUID, priority string) (*model.Task, error)
	DeleteTask(ctx context.Context, userID uint, taskUUID string) error
}

type taskService struct {
	repo  repository.TaskRepository
	cache *cache.Client
}

// NewTaskService builds a TaskService with repository and cache.
func NewTaskService(repo repository.TaskRepository, cache *cache.Client) TaskService {
	return &taskService{repo: repo, cache: cache}
}

// cacheKey is scoped by owner so a cached task never leaks across users.
func (s *taskService) cacheKey(userID uint, taskUUID string) string {
	return fmt.Sprintf("task:%d:%s", userID, taskUUID)
}

func (s *taskService) ListTasks(ctx context.Context, userID uint, filter repository.TaskFilter, page, perPage int, currentURL string) ([]model.Task, api.Meta, error) {
	return s.repo.List(ctx, userID, filter, page, perPage, currentURL)
}

// CreateTask assigns a fresh UUID, applies defaults, and persists the task
// together with its label associations.
func (s *taskService) CreateTask(ctx context.Context, userID uint, input CreateTaskInput) (*model.Task, error) {
	task := &model.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      model.TaskStatus(input.Status),
		Priority:    model.TaskPriority(input.Priority),
		UUID:        uuid.NewString(),
		DueDate:     input.DueDate,
		UserID:      userID,
	}
	if task.Status == "" {
		task.Status = model.TaskStatusPending
	}
	if task.Priority == "" {
		task.Priority = model.TaskPriorityLow
	}

	if err := s.repo.CreateWithLabels(ctx, task, input.Labels); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

func (s *taskService) GetTask(ctx context.Context, userID uint, taskUUID string) (*model.Task, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(userID, taskUUID)); data != nil {
		var cached model.Task
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	task, err := s.findOwned(ctx, userID, taskUUID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(task); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(userID, taskUUID), payload, taskCacheTTL)
	}
	return task, nil
}

func (s *taskService) GetTaskWithLabels(ctx context.Context, userID uint, taskUUID string) (*model.Task, []model.Label, error) {
	task, err := s.findOwned(ctx, userID, taskUUID)
	if err != nil {
		return nil, nil, err
	}

	labels, err := s.repo.FindLabels(ctx, task.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("find task labels: %w", err)
	}
	return task, labels, nil
}

// UpdateTask replaces the task's fields and reconciles label associations.
// The reconciliation is additive: labels omitted from input.Labels stay
// assigned.
func (s *taskService) UpdateTask(ctx context.Context, userID uint, taskUUID string, input UpdateTaskInput) (*model.Task, error) {
	task, err := s.findOwned(ctx, userID, taskUUID)
	if err != nil {
		return nil, err
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Status = model.TaskStatus(input.Status)
	if input.Priority != "" {
		task.Priority = model.TaskPriority(input.Priority)
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}

	if err := s.repo.UpdateWithLabels(ctx, task, input.Labels); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(userID, taskUUID))
	return task, nil
}

func (s *taskService) UpdateStatus(ctx context.Context, userID uint, taskUUID, status string) (*model.Task, error) {
	task, err := s.findOwned(ctx, userID, taskUUID)
	if err != nil {
		return nil, err
	}

	task.Status = model.TaskStatus(status)
	if err := s.repo.Save(ctx, task); err != nil {
		return nil, fmt.Errorf("update task status: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(userID, taskUUID))
	return task, nil
}

func (s *taskService) UpdatePriority(ctx context.Context, userID uint, taskUUID, priority string) (*model.Task, error) {
	task, err := s.findOwned(ctx, userID, taskUUID)
	if err != nil {
		return nil, err
	}

	task.Priority = model.TaskPriority(priority)
	if err := s.repo.Save(ctx, task); err != nil {
		return nil, fmt.Errorf("update task priority: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(userID, taskUUID))
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, userID uint, taskUUID string) error {
	task, err := s.findOwned(ctx, userID, taskUUID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, task); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(userID, taskUUID))
	return nil
}

func (s *taskService) findOwned(ctx context.Context, userID uint, taskUUID string) (*model.Task, error) {
	task, err := s.repo.FindByUUID(ctx, userID, taskUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return task, nil
}

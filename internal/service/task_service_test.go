package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"taskapi/internal/api"
	"taskapi/internal/apperrors"
	"taskapi/internal/model"
	"taskapi/internal/repository"
)

// MockTaskRepository is a mock implementation of TaskRepository.
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) List(ctx context.Context, userID uint, filter repository.TaskFilter, page, perPage int, currentURL string) ([]model.Task, api.Meta, error) {
	args := m.Called(ctx, userID, filter, page, perPage, currentURL)
	if args.Get(0) == nil {
		return nil, args.Get(1).(api.Meta), args.Error(2)
	}
	return args.Get(0).([]model.Task), args.Get(1).(api.Meta), args.Error(2)
}

func (m *MockTaskRepository) FindByUUID(ctx context.Context, userID uint, taskUUID string) (*model.Task, error) {
	args := m.Called(ctx, userID, taskUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) FindLabels(ctx context.Context, taskID uint) ([]model.Label, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Label), args.Error(1)
}

func (m *MockTaskRepository) CreateWithLabels(ctx context.Context, task *model.Task, labelTitles []string) error {
	args := m.Called(ctx, task, labelTitles)
	return args.Error(0)
}

func (m *MockTaskRepository) UpdateWithLabels(ctx context.Context, task *model.Task, labelTitles []string) error {
	args := m.Called(ctx, task, labelTitles)
	return args.Error(0)
}

func (m *MockTaskRepository) Save(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func TestTaskService_CreateTask(t *testing.T) {
	tests := []struct {
		name             string
		input            CreateTaskInput
		expectedStatus   model.TaskStatus
		expectedPriority model.TaskPriority
	}{
		{
			name:             "defaults applied when omitted",
			input:            CreateTaskInput{Title: "t", Description: "d"},
			expectedStatus:   model.TaskStatusPending,
			expectedPriority: model.TaskPriorityLow,
		},
		{
			name: "explicit values pass through",
			input: CreateTaskInput{
				Title: "t", Description: "d",
				Status: "completed", Priority: "high",
				Labels: []string{"urgent"},
			},
			expectedStatus:   model.TaskStatusCompleted,
			expectedPriority: model.TaskPriorityHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTaskRepository)
			mockRepo.On("CreateWithLabels", mock.Anything, mock.AnythingOfType("*model.Task"), tt.input.Labels).Return(nil)

			service := NewTaskService(mockRepo, nil)
			task, err := service.CreateTask(context.Background(), 42, tt.input)

			assert.NoError(t, err)
			assert.NotNil(t, task)
			assert.Equal(t, tt.expectedStatus, task.Status)
			assert.Equal(t, tt.expectedPriority, task.Priority)
			assert.EqualValues(t, 42, task.UserID)
			assert.NotEmpty(t, task.UUID)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTaskService_GetTask_NotFound(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	mockRepo.On("FindByUUID", mock.Anything, uint(42), "missing-uuid").Return(nil, gorm.ErrRecordNotFound)

	service := NewTaskService(mockRepo, nil)
	task, err := service.GetTask(context.Background(), 42, "missing-uuid")

	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
	assert.Nil(t, task)
	mockRepo.AssertExpectations(t)
}

func TestTaskService_GetTaskWithLabels(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	stored := &model.Task{ID: 7, UUID: "uuid-1", UserID: 42, Title: "t"}
	mockRepo.On("FindByUUID", mock.Anything, uint(42), "uuid-1").Return(stored, nil)
	mockRepo.On("FindLabels", mock.Anything, uint(7)).Return([]model.Label{{Title: "urgent"}}, nil)

	service := NewTaskService(mockRepo, nil)
	task, labels, err := service.GetTaskWithLabels(context.Background(), 42, "uuid-1")

	assert.NoError(t, err)
	assert.Equal(t, stored, task)
	assert.Len(t, labels, 1)
	mockRepo.AssertExpectations(t)
}

func TestTaskService_UpdateStatus(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	stored := &model.Task{ID: 7, UUID: "uuid-1", UserID: 42, Status: model.TaskStatusPending}
	mockRepo.On("FindByUUID", mock.Anything, uint(42), "uuid-1").Return(stored, nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)

	service := NewTaskService(mockRepo, nil)
	task, err := service.UpdateStatus(context.Background(), 42, "uuid-1", "in-progress")

	assert.NoError(t, err)
	assert.Equal(t, model.TaskStatusInProgress, task.Status)
	mockRepo.AssertExpectations(t)
}

func TestTaskService_UpdateTask_KeepsLabelsAdditive(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	stored := &model.Task{ID: 7, UUID: "uuid-1", UserID: 42, Status: model.TaskStatusPending}
	mockRepo.On("FindByUUID", mock.Anything, uint(42), "uuid-1").Return(stored, nil)
	mockRepo.On("UpdateWithLabels", mock.Anything, mock.AnythingOfType("*model.Task"), []string{"new"}).Return(nil)

	service := NewTaskService(mockRepo, nil)
	task, err := service.UpdateTask(context.Background(), 42, "uuid-1", UpdateTaskInput{
		Title:       "renamed",
		Description: "d",
		Status:      "completed",
		Labels:      []string{"new"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "renamed", task.Title)
	assert.Equal(t, model.TaskStatusCompleted, task.Status)
	mockRepo.AssertExpectations(t)
}

func TestTaskService_DeleteTask(t *testing.T) {
	mockRepo := new(MockTaskRepository)
	stored := &model.Task{ID: 7, UUID: "uuid-1", UserID: 42}
	mockRepo.On("FindByUUID", mock.Anything, uint(42), "uuid-1").Return(stored, nil)
	mockRepo.On("Delete", mock.Anything, stored).Return(nil)

	service := NewTaskService(mockRepo, nil)
	assert.NoError(t, service.DeleteTask(context.Background(), 42, "uuid-1"))
	mockRepo.AssertExpectations(t)
}

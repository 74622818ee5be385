package repository

import (
	"context"

	"gorm.io/gorm"

	"taskapi/internal/api"
	"taskapi/internal/model"
	"taskapi/internal/pagination"
)

// TaskFilter holds optional predicates for task listing. An empty Status adds
// no predicate; a present one matches exactly.
type TaskFilter struct {
	Status string
}

// TaskRepository defines task persistence operations. Every read is scoped by
// the owning user; a task that exists but belongs to someone else is
// indistinguishable from one that does not exist.
type TaskRepository interface {
	List(ctx context.Context, userID uint, filter TaskFilter, page, perPage int, currentURL string) ([]model.Task, api.Meta, error)
	FindByUUID(ctx context.Context, userID uint, taskUUID string) (*model.Task, error)
	FindLabels(ctx context.Context, taskID uint) ([]model.Label, error)
	CreateWithLabels(ctx context.Context, task *model.Task, labelTitles []string) error
	UpdateWithLabels(ctx context.Context, task *model.Task, labelTitles []string) error
	Save(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, task *model.Task) error
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository builds a GORM-backed repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

// List returns one page of the user's tasks, newest first.
func (r *taskRepository) List(ctx context.Context, userID uint, filter TaskFilter, page, perPage int, currentURL string) ([]model.Task, api.Meta, error) {
	query := r.db.WithContext(ctx).Model(&model.Task{}).Where("user_id = ?", userID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var tasks []model.Task
	meta, err := pagination.Paginate(query, "date_created DESC", page, perPage, currentURL, &tasks)
	if err != nil {
		return nil, api.Meta{}, err
	}
	return tasks, meta, nil
}

func (r *taskRepository) FindByUUID(ctx context.Context, userID uint, taskUUID string) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND uuid = ?", userID, taskUUID).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindLabels returns the labels associated with a task via the join table.
func (r *taskRepository) FindLabels(ctx context.Context, taskID uint) ([]model.Label, error) {
	var labels []model.Label
	if err := r.db.WithContext(ctx).
		Joins("JOIN task_labels ON task_labels.label_id = labels.id").
		Where("task_labels.task_id = ?", taskID).
		Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}

// CreateWithLabels inserts the task and the join rows for its labels in one
// transaction. Either the task and all resolvable associations persist, or
// nothing does.
func (r *taskRepository) CreateWithLabels(ctx context.Context, task *model.Task, labelTitles []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(task).Error; err != nil {
			return err
		}
		return attachLabels(tx, task, labelTitles)
	})
}

// UpdateWithLabels persists the task's changed fields and reconciles its
// label associations in one transaction. Reconciliation is additive only:
// titles absent from labelTitles never cause a join row to be removed.
func (r *taskRepository) UpdateWithLabels(ctx context.Context, task *model.Task, labelTitles []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := attachLabels(tx, task, labelTitles); err != nil {
			return err
		}
		return tx.Save(task).Error
	})
}

func (r *taskRepository) Save(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

// Delete removes a task; join rows cascade.
func (r *taskRepository) Delete(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Delete(task).Error
}

// attachLabels reconciles desired label titles against the task's current
// associations. Titles already assigned are left untouched. The rest are
// resolved against the owner's label set; titles that resolve to no owned
// label are silently skipped, never created. An empty resolution inserts
// nothing and succeeds.
func attachLabels(tx *gorm.DB, task *model.Task, titles []string) error {
	if len(titles) == 0 {
		return nil
	}

	var assigned []string
	if err := tx.Model(&model.Label{}).
		Joins("JOIN task_labels ON task_labels.label_id = labels.id").
		Where("task_labels.task_id = ?", task.ID).
		Where("labels.title IN ?", titles).
		Pluck("labels.title", &assigned).Error; err != nil {
		return err
	}

	missing := missingTitles(titles, assigned)
	if len(missing) == 0 {
		return nil
	}

	var labels []model.Label
	if err := tx.
		Where("user_id = ?", task.UserID).
		Where("title IN ?", missing).
		Find(&labels).Error; err != nil {
		return err
	}
	if len(labels) == 0 {
		return nil
	}

	joins := make([]model.TaskLabel, 0, len(labels))
	for _, label := range labels {
		joins = append(joins, model.TaskLabel{TaskID: task.ID, LabelID: label.ID})
	}
	return tx.CreateInBatches(joins, 100).Error
}

func missingTitles(desired, assigned []string) []string {
	seen := make(map[string]struct{}, len(assigned))
	for _, title := range assigned {
		seen[title] = struct{}{}
	}

	var missing []string
	for _, title := range desired {
		if _, ok := seen[title]; !ok {
			missing = append(missing, title)
			seen[title] = struct{}{} // dedupe repeated titles in the payload
		}
	}
	return missing
}

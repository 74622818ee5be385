package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskapi/internal/model"
)

// newTestDB opens a per-test in-memory SQLite database. A single connection
// keeps the :memory: database alive across the test; the pragma makes the
// cascade constraints actually fire.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.UserProfile{},
		&model.Label{},
		&model.Task{},
		&model.TaskLabel{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{
		Name:     username,
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createLabel(t *testing.T, db *gorm.DB, userID uint, title string) *model.Label {
	t.Helper()
	label := &model.Label{Title: title, UserID: userID}
	require.NoError(t, db.Create(label).Error)
	return label
}

// createTask inserts a task with an explicit creation timestamp so ordering
// assertions are deterministic.
func createTask(t *testing.T, db *gorm.DB, userID uint, title string, status model.TaskStatus, createdAt time.Time) *model.Task {
	t.Helper()
	task := &model.Task{
		Title:       title,
		Description: "test task",
		Status:      status,
		Priority:    model.TaskPriorityLow,
		UUID:        uuid.NewString(),
		DateCreated: createdAt,
		UserID:      userID,
	}
	require.NoError(t, db.Create(task).Error)
	return task
}

func countRows(t *testing.T, db *gorm.DB, value interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(value).Count(&count).Error)
	return count
}

func taskLabelCount(t *testing.T, db *gorm.DB, taskID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&model.TaskLabel{}).Where("task_id = ?", taskID).Count(&count).Error)
	return count
}

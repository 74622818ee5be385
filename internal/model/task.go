package model

import "time"

// TaskStatus represents the workflow state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskPriority represents the urgency of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task represents a single to-do item owned by a user. The UUID is assigned
// once at creation and is the only identifier exposed in routes; the surrogate
// ID never leaves the API boundary as a lookup key.
type Task struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Title       string       `json:"title" gorm:"size:255;not null"`
	Description string       `json:"description" gorm:"size:255;not null"`
	Status      TaskStatus   `json:"status" gorm:"size:50;default:'pending';index"`
	Priority    TaskPriority `json:"priority" gorm:"size:50;default:'low'"`
	UUID        string       `json:"uuid" gorm:"uniqueIndex;size:36;not null"`
	DueDate     *time.Time   `json:"due_date"`
	DateCreated time.Time    `json:"date_created" gorm:"autoCreateTime;index"`
	DateUpdated *time.Time   `json:"date_updated" gorm:"autoUpdateTime"`
	UserID      uint         `json:"-" gorm:"not null;index"`
	User        *User        `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

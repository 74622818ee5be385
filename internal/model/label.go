package model

// Label is a user-scoped tag for tasks. A title may repeat across users but
// not within one user's label set.
type Label struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Title  string `json:"title" gorm:"size:255;not null;uniqueIndex:idx_labels_title_user_id"`
	Color  string `json:"color" gorm:"size:50;default:'#FFFFFF'"`
	UserID uint   `json:"-" gorm:"not null;uniqueIndex:idx_labels_title_user_id"`
	User   *User  `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TaskLabel is the join row associating a task with a label. Rows cascade from
// either parent and are only ever written through task create/update, never
// edited directly by clients.
type TaskLabel struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	TaskID  uint   `json:"task_id" gorm:"not null;index"`
	LabelID uint   `json:"label_id" gorm:"not null;index"`
	Task    *Task  `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Label   *Label `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

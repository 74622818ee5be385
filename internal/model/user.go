package model

import "time"

// User represents an authenticated user in the system. A user owns tasks and
// labels; both are removed when the user is deleted.
type User struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"size:255;not null"`
	Username    string     `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email       string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password    string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	DateCreated time.Time  `json:"date_created" gorm:"autoCreateTime"`
	DateUpdated *time.Time `json:"date_updated" gorm:"autoUpdateTime"`

	// Relations. GORM derives the migration FKs from these parent-side
	// declarations, so the cascade constraint must live here.
	Profile *UserProfile `json:"profile,omitempty" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Tasks   []Task       `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Labels  []Label      `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// UserProfile holds optional contact details for a user. It is created inside
// the same transaction as its owner and cascades on delete.
type UserProfile struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Address      *string `json:"address" gorm:"size:255"`
	MobileNumber *string `json:"mobile_number" gorm:"size:50"`
	UserID       uint    `json:"-" gorm:"uniqueIndex;not null"`
	User         *User   `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

package model

import "time"

// ActivityCategory groups activities that share reduction tips (transport, electricity, food).
type ActivityCategory struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName pins the table name used by every backend.
func (ActivityCategory) TableName() string {
	return "activity_categories"
}

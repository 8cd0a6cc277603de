package model

import "time"

// Suggestion is a static reduction tip attached to a category.
type Suggestion struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	CategoryID        uint      `json:"category_id" gorm:"not null;index"`
	Tip               string    `json:"tip" gorm:"type:text;not null"`
	ReductionEstimate *float64  `json:"reduction_estimate,omitempty"` // kg CO2e
	CreatedAt         time.Time `json:"created_at"`

	// Relations
	Category ActivityCategory `json:"-" gorm:"foreignKey:CategoryID"`
}

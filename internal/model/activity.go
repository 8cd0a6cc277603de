package model

import "time"

// Activity is a single logged event, e.g. a car trip or a month of electricity use.
type Activity struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"user_id" gorm:"not null;index:idx_activities_user_date,priority:1"`
	CategoryID     uint      `json:"category_id" gorm:"not null;index"`
	Description    string    `json:"description" gorm:"size:255;not null"`
	Value          float64   `json:"value" gorm:"not null"`
	Unit           string    `json:"unit" gorm:"size:32;not null"`
	EmissionFactor float64   `json:"emission_factor" gorm:"not null"` // kg CO2e per unit
	Date           time.Time `json:"date" gorm:"not null;index:idx_activities_user_date,priority:2"`
	CreatedAt      time.Time `json:"created_at"`

	// Relations
	User     User             `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Category ActivityCategory `json:"-" gorm:"foreignKey:CategoryID"`
}

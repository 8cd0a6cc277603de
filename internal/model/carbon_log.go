package model

import "time"

// CarbonLog records the computed emission of one activity.
// Period totals are derived on read, never stored.
type CarbonLog struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"user_id" gorm:"not null;index:idx_carbon_logs_user_date,priority:1"`
	ActivityID    uint      `json:"activity_id" gorm:"not null;uniqueIndex"`
	TotalEmission float64   `json:"total_emission" gorm:"not null"` // kg CO2e
	LogDate       time.Time `json:"log_date" gorm:"not null;index:idx_carbon_logs_user_date,priority:2"`
	CreatedAt     time.Time `json:"created_at"`

	// Relations
	User     User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Activity Activity `json:"-" gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE"`
}

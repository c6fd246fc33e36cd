package storage

import "time"

// PlanModel is the GORM model for week plans.
type PlanModel struct {
	WeekID    string `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM.
func (PlanModel) TableName() string { return "plans" }

// SessionModel is the GORM model for scheduled sessions. Teams and
// Participants are stored as JSON arrays; the canonical minutes are the
// source of truth and TimeRange is the derived display string kept for
// legacy readers of the database.
type SessionModel struct {
	ID                string `gorm:"primaryKey"`
	WeekID            string `gorm:"not null;index:idx_sessions_week"`
	Date              string `gorm:"not null;index:idx_sessions_date"`
	Day               string `gorm:"default:''"`
	StartMin          int    `gorm:"not null;default:0"`
	DurationMin       int    `gorm:"not null;default:0"`
	TimeRange         string `gorm:"default:''"`
	Teams             string `gorm:"not null;default:'[]'"`
	Location          string `gorm:"default:''"`
	Info              string `gorm:"default:''"`
	Participants      string `gorm:"not null;default:'[]'"`
	WarmupMin         int    `gorm:"not null;default:0"`
	TravelMin         int    `gorm:"not null;default:0"`
	ExcludeFromRoster bool   `gorm:"not null;default:false"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM.
func (SessionModel) TableName() string { return "sessions" }

// PersonModel is the GORM model for roster members.
type PersonModel struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null;default:''"`
	GroupName string `gorm:"not null;default:'';column:group_name"`
	LicenseNo string `gorm:"default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM.
func (PersonModel) TableName() string { return "people" }

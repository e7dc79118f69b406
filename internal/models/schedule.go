package models

import "time"

// Schedule is one weekday's working window for a master. DayOfWeek is
// ISO-8601 (1=Monday .. 7=Sunday). A master has at most one row per day;
// a day with no row is a day off.
type Schedule struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	MasterID   int       `gorm:"uniqueIndex:idx_master_day;not null" json:"master_id"`
	DayOfWeek  int       `gorm:"uniqueIndex:idx_master_day;not null" json:"day_of_week"`
	StartTime  string    `gorm:"size:5;not null" json:"start_time"` // "HH:MM"
	EndTime    string    `gorm:"size:5;not null" json:"end_time"`   // "HH:MM"
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Schedule) TableName() string {
	return "schedules"
}

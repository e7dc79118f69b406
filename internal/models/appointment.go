package models

import "time"

// Appointment is a booked slot for one client with one master for one
// service. StartTime/EndTime are stored as naive local wall-clock values
// (no UTC offset), per §6.3 — the business timezone is an
// installation-wide config value, not carried per row.
type Appointment struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	TenantID  int       `gorm:"index;not null" json:"tenant_id"`
	ClientID  int       `gorm:"index;not null" json:"client_id"`
	MasterID  int       `gorm:"index;not null" json:"master_id"`
	ServiceID int       `gorm:"index;not null" json:"service_id"`
	StartTime time.Time `gorm:"index;not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Overlaps reports whether the half-open interval [a.StartTime, a.EndTime)
// intersects [start, end) — touching intervals are not overlaps, per §8.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartTime.Before(end) && start.Before(a.EndTime)
}

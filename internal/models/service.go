package models

import "time"

// Service is one bookable offering in a tenant's catalog (a haircut, a
// manicure, ...). Price is stored as a positive integer in the tenant's
// minor currency unit, per the wire convention.
type Service struct {
	ID              int       `gorm:"primaryKey" json:"id"`
	TenantID        int       `gorm:"index;not null" json:"tenant_id"`
	Name            string    `gorm:"size:200;not null" json:"name"`
	Price           int       `gorm:"not null" json:"price"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Service) TableName() string {
	return "services"
}

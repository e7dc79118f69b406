package models

import "time"

// Master is a staff member who performs services and keeps a weekly
// availability schedule.
type Master struct {
	ID             int       `gorm:"primaryKey" json:"id"`
	TenantID       int       `gorm:"index;not null" json:"tenant_id"`
	Name           string    `gorm:"size:200;not null" json:"name"`
	Specialization string    `gorm:"size:200" json:"specialization"`
	Description    string    `gorm:"type:text" json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Schedules []Schedule `gorm:"foreignKey:MasterID" json:"-"`
}

func (Master) TableName() string {
	return "masters"
}

// MasterService is the explicit join row between a master and the
// services they can perform; kept explicit (rather than letting GORM
// manage an implicit join table) because tenant-scoped uniqueness and
// restrict-on-delete checks need to query it directly.
type MasterService struct {
	MasterID  int `gorm:"primaryKey" json:"master_id"`
	ServiceID int `gorm:"primaryKey" json:"service_id"`
}

func (MasterService) TableName() string {
	return "master_services"
}

package models

import "time"

// Tenant represents one salon installation. Bot calls authenticate with
// BotToken; the admin UI authenticates with LoginName/AdminPassword over
// HTTP Basic.
type Tenant struct {
	ID             int       `gorm:"primaryKey" json:"id"`
	LoginName      string    `gorm:"uniqueIndex;size:100;not null" json:"login_name"`
	Title          string    `gorm:"size:200;not null" json:"title"`
	BotToken       string    `gorm:"uniqueIndex;size:200;not null" json:"-"`
	AdminPassword  string    `gorm:"size:200;not null" json:"-"` // bcrypt hash
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Services []Service `gorm:"foreignKey:TenantID" json:"-"`
	Masters  []Master  `gorm:"foreignKey:TenantID" json:"-"`
	Clients  []Client  `gorm:"foreignKey:TenantID" json:"-"`
}

func (Tenant) TableName() string {
	return "tenants"
}

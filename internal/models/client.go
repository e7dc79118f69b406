package models

import "time"

// Client is a salon customer. Bot-created clients carry the chat
// platform's ExternalUserID; admin-created clients (walk-ins with no
// chat identity) get a synthesized negative ExternalUserID so the
// (tenant_id, external_user_id) unique index still holds, per §4.2.
type Client struct {
	ID             int       `gorm:"primaryKey" json:"id"`
	TenantID       int       `gorm:"uniqueIndex:idx_tenant_external_user;not null" json:"tenant_id"`
	ExternalUserID int64     `gorm:"uniqueIndex:idx_tenant_external_user;not null" json:"external_user_id"`
	Name           string    `gorm:"size:200;not null" json:"name"`
	PhoneNumber    string    `gorm:"size:30" json:"phone_number"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Client) TableName() string {
	return "clients"
}

// IsAdminCreated reports whether this client has no real chat identity.
func (c *Client) IsAdminCreated() bool {
	return c.ExternalUserID < 0
}

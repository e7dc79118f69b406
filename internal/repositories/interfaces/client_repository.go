package interfaces

import "salon-booking-api/internal/models"

// ClientRepository is the tenant-scoped persistence layer for clients.
type ClientRepository interface {
	Create(client *models.Client) error
	GetByID(tenantID, id int) (*models.Client, error)
	GetByExternalUserID(tenantID int, externalUserID int64) (*models.Client, error)
	List(tenantID int) ([]models.Client, error)
	Update(client *models.Client) error
	Delete(tenantID, id int) error
	// NextAdminSyntheticExternalUserID returns an unused negative
	// external_user_id for an admin-created client with no chat identity
	// (§4.2).
	NextAdminSyntheticExternalUserID(tenantID int) (int64, error)
}

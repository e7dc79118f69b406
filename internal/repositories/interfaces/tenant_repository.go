package interfaces

import "salon-booking-api/internal/models"

// TenantRepository persists and resolves tenants (salon installations).
type TenantRepository interface {
	Create(tenant *models.Tenant) error
	GetByID(id int) (*models.Tenant, error)
	GetByBotToken(token string) (*models.Tenant, error)
	GetByLoginName(login string) (*models.Tenant, error)
	List() ([]models.Tenant, error)
	Update(tenant *models.Tenant) error
	Count() (int64, error)
}

package repositories

import (
	"errors"

	"gorm.io/gorm"

	"salon-booking-api/internal/apperr"
	"salon-booking-api/internal/models"
	"salon-booking-api/internal/repositories/interfaces"
)

type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository builds the GORM-backed interfaces.TenantRepository.
func NewTenantRepository(db *gorm.DB) interfaces.TenantRepository {
	return &tenantRepository{db: db}
}

func (r *tenantRepository) Create(tenant *models.Tenant) error {
	return r.db.Create(tenant).Error
}

func (r *tenantRepository) GetByID(id int) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.db.First(&tenant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("tenant")
		}
		return nil, err
	}
	return &tenant, nil
}

func (r *tenantRepository) GetByBotToken(token string) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.db.First(&tenant, "bot_token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("tenant")
		}
		return nil, err
	}
	return &tenant, nil
}

func (r *tenantRepository) GetByLoginName(login string) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.db.First(&tenant, "login_name = ?", login).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("tenant")
		}
		return nil, err
	}
	return &tenant, nil
}

func (r *tenantRepository) List() ([]models.Tenant, error) {
	var tenants []models.Tenant
	if err := r.db.Order("id").Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

func (r *tenantRepository) Update(tenant *models.Tenant) error {
	return r.db.Save(tenant).Error
}

func (r *tenantRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Tenant{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

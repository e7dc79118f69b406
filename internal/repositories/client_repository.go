package repositories

import (
	"errors"

	"gorm.io/gorm"

	"salon-booking-api/internal/apperr"
	"salon-booking-api/internal/models"
	"salon-booking-api/internal/repositories/interfaces"
)

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository builds the GORM-backed interfaces.ClientRepository.
func NewClientRepository(db *gorm.DB) interfaces.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

func (r *clientRepository) GetByID(tenantID, id int) (*models.Client, error) {
	var client models.Client
	err := r.db.Where("tenant_id = ? AND id = ?", tenantID, id).First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("client")
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) GetByExternalUserID(tenantID int, externalUserID int64) (*models.Client, error) {
	var client models.Client
	err := r.db.Where("tenant_id = ? AND external_user_id = ?", tenantID, externalUserID).First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("client")
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) List(tenantID int) ([]models.Client, error) {
	var clients []models.Client
	err := r.db.Where("tenant_id = ?", tenantID).Order("id").Find(&clients).Error
	return clients, err
}

func (r *clientRepository) Update(client *models.Client) error {
	return r.db.Save(client).Error
}

func (r *clientRepository) Delete(tenantID, id int) error {
	return r.db.Where("tenant_id = ? AND id = ?", tenantID, id).Delete(&models.Client{}).Error
}

// NextAdminSyntheticExternalUserID returns one less than the smallest
// negative external_user_id already used for this tenant (or -1 if none),
// so an admin-created client never collides with a real chat platform id
// (which are always non-negative), per §4.2.
func (r *clientRepository) NextAdminSyntheticExternalUserID(tenantID int) (int64, error) {
	var min int64
	row := r.db.Model(&models.Client{}).
		Where("tenant_id = ? AND external_user_id < 0", tenantID).
		Select("COALESCE(MIN(external_user_id), 0)").Row()
	if err := row.Scan(&min); err != nil {
		return 0, err
	}
	if min == 0 {
		return -1, nil
	}
	return min - 1, nil
}

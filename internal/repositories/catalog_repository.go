package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"salon-booking-api/internal/apperr"
	"salon-booking-api/internal/models"
	"salon-booking-api/internal/repositories/interfaces"
)

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository builds the GORM-backed interfaces.CatalogRepository.
func NewCatalogRepository(db *gorm.DB) interfaces.CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) CreateService(service *models.Service) error {
	return r.db.Create(service).Error
}

func (r *catalogRepository) GetServiceByID(tenantID, id int) (*models.Service, error) {
	var service models.Service
	err := r.db.Where("tenant_id = ? AND id = ?", tenantID, id).First(&service).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("service")
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *catalogRepository) ListServices(tenantID int) ([]models.Service, error) {
	var services []models.Service
	err := r.db.Where("tenant_id = ?", tenantID).Order("id").Find(&services).Error
	return services, err
}

func (r *catalogRepository) UpdateService(service *models.Service) error {
	return r.db.Save(service).Error
}

func (r *catalogRepository) DeleteService(tenantID, id int) error {
	return r.db.Where("tenant_id = ? AND id = ?", tenantID, id).Delete(&models.Service{}).Error
}

func (r *catalogRepository) SearchServicesByName(tenantID int, substr string) ([]models.Service, error) {
	var services []models.Service
	pattern := fmt.Sprintf("%%%s%%", strings.ToLower(substr))
	err := r.db.Where("tenant_id = ? AND LOWER(name) LIKE ?", tenantID, pattern).Order("id").Find(&services).Error
	return services, err
}

func (r *catalogRepository) CreateMaster(master *models.Master) error {
	return r.db.Create(master).Error
}

func (r *catalogRepository) GetMasterByID(tenantID, id int) (*models.Master, error) {
	var master models.Master
	err := r.db.Where("tenant_id = ? AND id = ?", tenantID, id).First(&master).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("master")
	}
	if err != nil {
		return nil, err
	}
	return &master, nil
}

func (r *catalogRepository) ListMasters(tenantID int) ([]models.Master, error) {
	var masters []models.Master
	err := r.db.Where("tenant_id = ?", tenantID).Order("id").Find(&masters).Error
	return masters, err
}

func (r *catalogRepository) UpdateMaster(master *models.Master) error {
	return r.db.Save(master).Error
}

func (r *catalogRepository) DeleteMaster(tenantID, id int) error {
	return r.db.Where("tenant_id = ? AND id = ?", tenantID, id).Delete(&models.Master{}).Error
}

func (r *catalogRepository) SearchMastersByName(tenantID int, substr string) ([]models.Master, error) {
	var masters []models.Master
	pattern := fmt.Sprintf("%%%s%%", strings.ToLower(substr))
	err := r.db.Where("tenant_id = ? AND LOWER(name) LIKE ?", tenantID, pattern).Order("id").Find(&masters).Error
	return masters, err
}

func (r *catalogRepository) AddMasterService(masterID, serviceID int) error {
	link := models.MasterService{MasterID: masterID, ServiceID: serviceID}
	return r.db.Where(link).FirstOrCreate(&link).Error
}

func (r *catalogRepository) RemoveMasterService(masterID, serviceID int) error {
	return r.db.Where("master_id = ? AND service_id = ?", masterID, serviceID).
		Delete(&models.MasterService{}).Error
}

func (r *catalogRepository) ServiceIDsForMaster(masterID int) ([]int, error) {
	var ids []int
	err := r.db.Model(&models.MasterService{}).
		Where("master_id = ?", masterID).
		Pluck("service_id", &ids).Error
	return ids, err
}

func (r *catalogRepository) MasterIDsForService(serviceID int) ([]int, error) {
	var ids []int
	err := r.db.Model(&models.MasterService{}).
		Where("service_id = ?", serviceID).
		Pluck("master_id", &ids).Error
	return ids, err
}

func (r *catalogRepository) MasterOffersService(masterID, serviceID int) (bool, error) {
	var count int64
	err := r.db.Model(&models.MasterService{}).
		Where("master_id = ? AND service_id = ?", masterID, serviceID).
		Count(&count).Error
	return count > 0, err
}

func (r *catalogRepository) CountAppointmentsForService(serviceID int) (int64, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).Where("service_id = ?", serviceID).Count(&count).Error
	return count, err
}

func (r *catalogRepository) CountAppointmentsForMaster(masterID int) (int64, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).Where("master_id = ?", masterID).Count(&count).Error
	return count, err
}

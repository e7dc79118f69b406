package interfaces

import "salon-booking-api/internal/models"

// CatalogRepository is the tenant-scoped persistence layer for services,
// masters, and the membership between them (§4.2).
type CatalogRepository interface {
	CreateService(service *models.Service) error
	GetServiceByID(tenantID, id int) (*models.Service, error)
	ListServices(tenantID int) ([]models.Service, error)
	UpdateService(service *models.Service) error
	DeleteService(tenantID, id int) error
	SearchServicesByName(tenantID int, substr string) ([]models.Service, error)

	CreateMaster(master *models.Master) error
	GetMasterByID(tenantID, id int) (*models.Master, error)
	ListMasters(tenantID int) ([]models.Master, error)
	UpdateMaster(master *models.Master) error
	DeleteMaster(tenantID, id int) error
	SearchMastersByName(tenantID int, substr string) ([]models.Master, error)

	AddMasterService(masterID, serviceID int) error
	RemoveMasterService(masterID, serviceID int) error
	ServiceIDsForMaster(masterID int) ([]int, error)
	MasterIDsForService(serviceID int) ([]int, error)
	MasterOffersService(masterID, serviceID int) (bool, error)

	CountAppointmentsForService(serviceID int) (int64, error)
	CountAppointmentsForMaster(masterID int) (int64, error)
}

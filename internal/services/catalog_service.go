package services

import (
	"strings"

	"salon-booking-api/internal/apperr"
	"salon-booking-api/internal/models"
	"salon-booking-api/internal/repositories/interfaces"
	"salon-booking-api/internal/utils"
)

// CatalogService is the catalog store (C3): services, masters, their
// membership, and weekly schedules, all tenant-scoped (§4.2).
type CatalogService struct {
	catalog  interfaces.CatalogRepository
	schedule interfaces.ScheduleRepository
}

func NewCatalogService(catalog interfaces.CatalogRepository, schedule interfaces.ScheduleRepository) *CatalogService {
	return &CatalogService{catalog: catalog, schedule: schedule}
}

func (s *CatalogService) CreateService(tenantID int, name string, price, durationMinutes int) (*models.Service, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("name is required")
	}
	if price <= 0 {
		return nil, apperr.Validation("price must be a positive integer")
	}
	if durationMinutes <= 0 {
		return nil, apperr.Validation("duration_minutes must be positive")
	}

	service := &models.Service{
		TenantID:        tenantID,
		Name:            name,
		Price:           price,
		DurationMinutes: durationMinutes,
	}
	if err := s.catalog.CreateService(service); err != nil {
		return nil, apperr.Internal(err)
	}
	return service, nil
}

func (s *CatalogService) GetService(tenantID, id int) (*models.Service, error) {
	return s.catalog.GetServiceByID(tenantID, id)
}

func (s *CatalogService) ListServices(tenantID int) ([]models.Service, error) {
	return s.catalog.ListServices(tenantID)
}

func (s *CatalogService) UpdateService(tenantID, id int, name string, price, durationMinutes int) (*models.Service, error) {
	service, err := s.catalog.GetServiceByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		service.Name = name
	}
	if price > 0 {
		service.Price = price
	}
	if durationMinutes > 0 {
		service.DurationMinutes = durationMinutes
	}
	if err := s.catalog.UpdateService(service); err != nil {
		return nil, apperr.Internal(err)
	}
	return service, nil
}

// DeleteService enforces Open Question O4's restrict-on-delete decision:
// a service referenced by an existing appointment can't be deleted unless
// force is set.
func (s *CatalogService) DeleteService(tenantID, id int, force bool) error {
	if _, err := s.catalog.GetServiceByID(tenantID, id); err != nil {
		return err
	}
	if !force {
		count, err := s.catalog.CountAppointmentsForService(id)
		if err != nil {
			return apperr.Internal(err)
		}
		if count > 0 {
			return apperr.Conflict("service has %d existing appointments; pass force=true to delete anyway", count)
		}
	}
	if err := s.catalog.DeleteService(tenantID, id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *CatalogService) CreateMaster(tenantID int, name, specialization, description string) (*models.Master, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperr.Validation("name is required")
	}
	master := &models.Master{
		TenantID:       tenantID,
		Name:           name,
		Specialization: specialization,
		Description:    description,
	}
	if err := s.catalog.CreateMaster(master); err != nil {
		return nil, apperr.Internal(err)
	}
	return master, nil
}

func (s *CatalogService) GetMaster(tenantID, id int) (*models.Master, error) {
	return s.catalog.GetMasterByID(tenantID, id)
}

func (s *CatalogService) ListMasters(tenantID int) ([]models.Master, error) {
	return s.catalog.ListMasters(tenantID)
}

func (s *CatalogService) UpdateMaster(tenantID, id int, name, specialization, description string) (*models.Master, error) {
	master, err := s.catalog.GetMasterByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		master.Name = name
	}
	if specialization != "" {
		master.Specialization = specialization
	}
	if description != "" {
		master.Description = description
	}
	if err := s.catalog.UpdateMaster(master); err != nil {
		return nil, apperr.Internal(err)
	}
	return master, nil
}

func (s *CatalogService) DeleteMaster(tenantID, id int, force bool) error {
	if _, err := s.catalog.GetMasterByID(tenantID, id); err != nil {
		return err
	}
	if !force {
		count, err := s.catalog.CountAppointmentsForMaster(id)
		if err != nil {
			return apperr.Internal(err)
		}
		if count > 0 {
			return apperr.Conflict("master has %d existing appointments; pass force=true to delete anyway", count)
		}
	}
	if err := s.catalog.DeleteMaster(tenantID, id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// SetMasterServices replaces the full set of services a master offers.
func (s *CatalogService) SetMasterServices(tenantID, masterID int, serviceIDs []int) error {
	if _, err := s.catalog.GetMasterByID(tenantID, masterID); err != nil {
		return err
	}
	existing, err := s.catalog.ServiceIDsForMaster(masterID)
	if err != nil {
		return apperr.Internal(err)
	}
	existingSet := make(map[int]bool, len(existing))
	for _, id := range existing {
		existingSet[id] = true
	}
	wantSet := make(map[int]bool, len(serviceIDs))
	for _, id := range serviceIDs {
		wantSet[id] = true
	}

	for _, id := range serviceIDs {
		if !existingSet[id] {
			if _, err := s.catalog.GetServiceByID(tenantID, id); err != nil {
				return err
			}
			if err := s.catalog.AddMasterService(masterID, id); err != nil {
				return apperr.Internal(err)
			}
		}
	}
	for _, id := range existing {
		if !wantSet[id] {
			if err := s.catalog.RemoveMasterService(masterID, id); err != nil {
				return apperr.Internal(err)
			}
		}
	}
	return nil
}

func (s *CatalogService) ServicesForMaster(tenantID, masterID int) ([]models.Service, error) {
	if _, err := s.catalog.GetMasterByID(tenantID, masterID); err != nil {
		return nil, err
	}
	ids, err := s.catalog.ServiceIDsForMaster(masterID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	var out []models.Service
	for _, id := range ids {
		svc, err := s.catalog.GetServiceByID(tenantID, id)
		if err == nil {
			out = append(out, *svc)
		}
	}
	return out, nil
}

func (s *CatalogService) MastersForService(tenantID, serviceID int) ([]models.Master, error) {
	if _, err := s.catalog.GetServiceByID(tenantID, serviceID); err != nil {
		return nil, err
	}
	ids, err := s.catalog.MasterIDsForService(serviceID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	var out []models.Master
	for _, id := range ids {
		m, err := s.catalog.GetMasterByID(tenantID, id)
		if err == nil {
			out = append(out, *m)
		}
	}
	return out, nil
}

// ReplaceSchedule replaces all weekly schedule rows for a master in one
// atomic operation. Entries whose clock strings don't parse are skipped
// and reported back rather than failing the whole call (§4.2).
func (s *CatalogService) ReplaceSchedule(tenantID, masterID int, entries []ScheduleEntryInput) (applied []models.Schedule, skipped []ScheduleEntryInput, err error) {
	if _, err := s.catalog.GetMasterByID(tenantID, masterID); err != nil {
		return nil, nil, err
	}

	for _, e := range entries {
		if e.DayOfWeek < 1 || e.DayOfWeek > 7 {
			skipped = append(skipped, e)
			continue
		}
		sh, sm, ok1 := utils.ParseClockTime(e.StartTime)
		eh, em, ok2 := utils.ParseClockTime(e.EndTime)
		if !ok1 || !ok2 {
			skipped = append(skipped, e)
			continue
		}
		if sh*60+sm >= eh*60+em {
			skipped = append(skipped, e)
			continue
		}
		applied = append(applied, models.Schedule{
			MasterID:  masterID,
			DayOfWeek: e.DayOfWeek,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
		})
	}

	if err := s.schedule.ReplaceForMaster(masterID, applied); err != nil {
		return nil, nil, apperr.Internal(err)
	}

	return applied, skipped, nil
}

func (s *CatalogService) GetSchedule(tenantID, masterID int) ([]models.Schedule, error) {
	if _, err := s.catalog.GetMasterByID(tenantID, masterID); err != nil {
		return nil, err
	}
	return s.schedule.ListForMaster(masterID)
}

// ScheduleEntryInput is one raw (possibly invalid) weekly schedule row
// coming in from the admin API.
type ScheduleEntryInput struct {
	DayOfWeek int
	StartTime string
	EndTime   string
}

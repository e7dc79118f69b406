package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"salon-booking-api/internal/apperr"
	"salon-booking-api/internal/dto"
	"salon-booking-api/internal/middlewares"
	"salon-booking-api/internal/services"
	"salon-booking-api/internal/utils"
)

// CatalogHandler exposes the catalog store (C3) to both the bot zone
// (read-only) and the admin zone (full CRUD), mirroring the teacher's
// thin-handler-calls-service pattern.
type CatalogHandler struct {
	catalog *services.CatalogService
}

func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	list, err := h.catalog.ListServices(tenantID)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, "services retrieved", dto.ToServiceResponses(list))
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Validation(err.Error()))
		return
	}
	service, err := h.catalog.CreateService(tenantID, req.Name, req.Price, req.DurationMinutes)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Created(c, "service created", dto.ToServiceResponse(service))
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	id, err := idParam(c, "id")
	if err != nil {
		utils.Fail(c, err)
		return
	}
	service, err := h.catalog.GetService(tenantID, id)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, "service retrieved", dto.ToServiceResponse(service))
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	id, err := idParam(c, "id")
	if err != nil {
		utils.Fail(c, err)
		return
	}
	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Validation(err.Error()))
		return
	}
	service, err := h.catalog.UpdateService(tenantID, id, req.Name, req.Price, req.DurationMinutes)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, "service updated", dto.ToServiceResponse(service))
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	id, err := idParam(c, "id")
	if err != nil {
		utils.Fail(c, err)
		return
	}
	force := c.Query("force") == "true"
	if err := h.catalog.DeleteService(tenantID, id, force); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, "service deleted", nil)
}

func (h *CatalogHandler) MastersForService(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	id, err := idParam(c, "id")
	if err != nil {
		utils.Fail(c, err)
		return
	}
	masters, err := h.catalog.MastersForService(tenantID, id)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, "masters retrieved", dto.ToMasterResponses(masters))
}

func (h *CatalogHandler) ListMasters(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	list, err := h.catalog.ListMasters(tenantID)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, "masters retrieved", dto.ToMasterResponses(list))
}

func (h *CatalogHandler) CreateMaster(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	var req dto.CreateMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Validation(err.Error()))
		return
	}
	master, err := h.catalog.CreateMaster(tenantID, req.Name, req.Specialization, req.Description)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	if len(req.ServiceIDs) > 0 {
		if err := h.catalog.SetMasterServices(tenantID, master.ID, req.ServiceIDs); err != nil {
			utils.Fail(c, err)
			return
		}
	}
	utils.Created(c, "master created", dto.ToMasterResponse(master))
}

func (h *CatalogHandler) GetMaster(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	id, err := idParam(c, "id")
	if err != nil {
		utils.Fail(c, err)
		return
	}
	master, err := h.catalog.GetMaster(tenantID, id)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, "master retrieved", dto.ToMasterResponse(master))
}

func (h *CatalogHandler) UpdateMaster(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	id, err := idParam(c, "id")
	if err != nil {
		utils.Fail(c, err)
		return
	}
	var req dto.UpdateMasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Validation(err.Error()))
		return
	}
	master, err := h.catalog.UpdateMaster(tenantID, id, req.Name, req.Specialization, req.Description)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, "master updated", dto.ToMasterResponse(master))
}

func (h *CatalogHandler) DeleteMaster(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	id, err := idParam(c, "id")
	if err != nil {
		utils.Fail(c, err)
		return
	}
	force := c.Query("force") == "true"
	if err := h.catalog.DeleteMaster(tenantID, id, force); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, "master deleted", nil)
}

func (h *CatalogHandler) SetMasterServices(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	id, err := idParam(c, "id")
	if err != nil {
		utils.Fail(c, err)
		return
	}
	var req dto.SetMasterServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Validation(err.Error()))
		return
	}
	if err := h.catalog.SetMasterServices(tenantID, id, req.ServiceIDs); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, "master services updated", nil)
}

func (h *CatalogHandler) ServicesForMaster(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	id, err := idParam(c, "id")
	if err != nil {
		utils.Fail(c, err)
		return
	}
	list, err := h.catalog.ServicesForMaster(tenantID, id)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, "services retrieved", dto.ToServiceResponses(list))
}

func (h *CatalogHandler) GetSchedule(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	id, err := idParam(c, "id")
	if err != nil {
		utils.Fail(c, err)
		return
	}
	schedule, err := h.catalog.GetSchedule(tenantID, id)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, "schedule retrieved", dto.ToWeeklyScheduleResponse(schedule))
}

func (h *CatalogHandler) ReplaceSchedule(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	id, err := idParam(c, "id")
	if err != nil {
		utils.Fail(c, err)
		return
	}
	var req dto.ReplaceScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Validation(err.Error()))
		return
	}

	entries := make([]services.ScheduleEntryInput, len(req.Entries))
	for i, e := range req.Entries {
		entries[i] = services.ScheduleEntryInput{
			DayOfWeek: e.DayOfWeek,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
		}
	}

	applied, skipped, err := h.catalog.ReplaceSchedule(tenantID, id, entries)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	resp := dto.ScheduleReplaceResponse{
		Applied: dto.ToScheduleResponses(applied),
		Skipped: make([]dto.ScheduleEntryRequest, len(skipped)),
	}
	for i, e := range skipped {
		resp.Skipped[i] = dto.ScheduleEntryRequest{DayOfWeek: e.DayOfWeek, StartTime: e.StartTime, EndTime: e.EndTime}
	}
	utils.Success(c, "schedule replaced", resp)
}

// idParam parses a required positive integer path parameter, reported as
// a 400 on anything else (missing, non-numeric, zero/negative).
func idParam(c *gin.Context, name string) (int, error) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("invalid %s %q", name, raw)
	}
	return id, nil
}

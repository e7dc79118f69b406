package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"salon-booking-api/internal/apperr"
	"salon-booking-api/internal/config"
	"salon-booking-api/internal/dto"
	"salon-booking-api/internal/middlewares"
	"salon-booking-api/internal/models"
	"salon-booking-api/internal/repositories/interfaces"
	"salon-booking-api/internal/services"
	"salon-booking-api/internal/utils"
)

// AdminHandler is the tenant admin API's client and appointment CRUD,
// plus the supplemented schedule day-view, all scoped to the tenant
// resolved by the Basic-auth middleware.
type AdminHandler struct {
	client      interfaces.ClientRepository
	booking     *services.BookingService
	appointment interfaces.AppointmentRepository
	catalog     *services.CatalogService
	cfg         *config.Config
}

func NewAdminHandler(
	client interfaces.ClientRepository,
	booking *services.BookingService,
	appointment interfaces.AppointmentRepository,
	catalog *services.CatalogService,
	cfg *config.Config,
) *AdminHandler {
	return &AdminHandler{client: client, booking: booking, appointment: appointment, catalog: catalog, cfg: cfg}
}

func (h *AdminHandler) ListClients(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	list, err := h.client.List(tenantID)
	if err != nil {
		utils.Fail(c, apperr.Internal(err))
		return
	}
	utils.Success(c, "clients retrieved", dto.ToClientResponses(list))
}

// CreateClient implements admin walk-in creation: a client with no chat
// identity gets a synthesized negative external_user_id (§4.2).
func (h *AdminHandler) CreateClient(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Validation(err.Error()))
		return
	}

	externalID, err := h.client.NextAdminSyntheticExternalUserID(tenantID)
	if err != nil {
		utils.Fail(c, apperr.Internal(err))
		return
	}

	newClient := &models.Client{
		TenantID:       tenantID,
		ExternalUserID: externalID,
		Name:           req.Name,
		PhoneNumber:    req.PhoneNumber,
	}
	if err := h.client.Create(newClient); err != nil {
		utils.Fail(c, apperr.Internal(err))
		return
	}
	utils.Created(c, "client created", dto.ToClientResponse(newClient))
}

func (h *AdminHandler) GetClient(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	id, err := idParam(c, "id")
	if err != nil {
		utils.Fail(c, err)
		return
	}
	client, err := h.client.GetByID(tenantID, id)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, "client retrieved", dto.ToClientResponse(client))
}

func (h *AdminHandler) UpdateClient(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	id, err := idParam(c, "id")
	if err != nil {
		utils.Fail(c, err)
		return
	}
	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Validation(err.Error()))
		return
	}
	client, err := h.client.GetByID(tenantID, id)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	if req.Name != "" {
		client.Name = req.Name
	}
	if req.PhoneNumber != "" {
		client.PhoneNumber = req.PhoneNumber
	}
	if err := h.client.Update(client); err != nil {
		utils.Fail(c, apperr.Internal(err))
		return
	}
	utils.Success(c, "client updated", dto.ToClientResponse(client))
}

func (h *AdminHandler) DeleteClient(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	id, err := idParam(c, "id")
	if err != nil {
		utils.Fail(c, err)
		return
	}
	if err := h.client.Delete(tenantID, id); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, "client deleted", nil)
}

// CreateAppointment implements POST /admin/appointments.
func (h *AdminHandler) CreateAppointment(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	var req dto.AdminCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Validation(err.Error()))
		return
	}
	startTime, err := time.ParseInLocation("2006-01-02T15:04:05", req.StartTime, h.cfg.Location())
	if err != nil {
		utils.Fail(c, apperr.Validation("start_time must be an ISO-8601 local timestamp"))
		return
	}

	appt, err := h.booking.CreateByAdmin(services.BookingRequest{
		TenantID:  tenantID,
		ClientID:  req.ClientID,
		MasterID:  req.MasterID,
		ServiceID: req.ServiceID,
		StartTime: startTime,
	})
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Created(c, "appointment created", dto.ToAppointmentResponse(appt))
}

// UpdateAppointment implements PUT /admin/appointments/{id}.
func (h *AdminHandler) UpdateAppointment(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	id, err := idParam(c, "id")
	if err != nil {
		utils.Fail(c, err)
		return
	}
	var req dto.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Validation(err.Error()))
		return
	}

	var startTime time.Time
	if req.StartTime != "" {
		startTime, err = time.ParseInLocation("2006-01-02T15:04:05", req.StartTime, h.cfg.Location())
		if err != nil {
			utils.Fail(c, apperr.Validation("start_time must be an ISO-8601 local timestamp"))
			return
		}
	}

	appt, err := h.booking.Update(tenantID, id, services.BookingRequest{
		TenantID:  tenantID,
		MasterID:  req.MasterID,
		ServiceID: req.ServiceID,
		StartTime: startTime,
	})
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, "appointment updated", dto.ToAppointmentResponse(appt))
}

func (h *AdminHandler) CancelAppointment(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	id, err := idParam(c, "id")
	if err != nil {
		utils.Fail(c, err)
		return
	}
	if err := h.booking.Cancel(tenantID, id); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, "appointment cancelled", nil)
}

func (h *AdminHandler) ClientAppointments(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	id, err := idParam(c, "id")
	if err != nil {
		utils.Fail(c, err)
		return
	}
	appts, err := h.booking.ListClientAppointments(tenantID, id)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, "appointments retrieved", dto.ToAppointmentResponses(appts, h.catalog, tenantID))
}

// ScheduleDayView implements the supplemented GET /admin/schedule endpoint:
// every master's appointments for one day, with previous/next date
// cursors, grounded on the original's server-rendered admin schedule page.
func (h *AdminHandler) ScheduleDayView(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)

	dateText := c.Query("date")
	loc := h.cfg.Location()
	date := time.Now().In(loc)
	if dateText != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateText, loc)
		if err != nil {
			utils.Fail(c, apperr.Validation("date must be YYYY-MM-DD"))
			return
		}
		date = parsed
	}

	masters, err := h.catalog.ListMasters(tenantID)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	type masterDay struct {
		Master       dto.MasterResponse       `json:"master"`
		Appointments []dto.AppointmentResponse `json:"appointments"`
	}
	days := make([]masterDay, len(masters))
	for i := range masters {
		appts, err := h.appointment.ListForMasterOnDate(tenantID, masters[i].ID, dayStart, dayEnd)
		if err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}
		days[i] = masterDay{Master: dto.ToMasterResponse(&masters[i]), Appointments: dto.ToAppointmentResponses(appts, h.catalog, tenantID)}
	}

	utils.Success(c, "schedule retrieved", gin.H{
		"date":      dayStart.Format("2006-01-02"),
		"prev_date": dayStart.AddDate(0, 0, -1).Format("2006-01-02"),
		"next_date": dayStart.AddDate(0, 0, 1).Format("2006-01-02"),
		"masters":   days,
	})
}

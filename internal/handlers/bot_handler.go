package handlers

import (
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"salon-booking-api/internal/apperr"
	"salon-booking-api/internal/config"
	"salon-booking-api/internal/dto"
	"salon-booking-api/internal/middlewares"
	"salon-booking-api/internal/services"
	"salon-booking-api/internal/utils"
)

// BotHandler is the tenant bot API (§6.1): read-only catalog/availability
// browsing plus appointment create/cancel/list, all scoped to the tenant
// resolved by the bot-token middleware.
type BotHandler struct {
	catalog      *services.CatalogService
	availability *services.AvailabilityService
	booking      *services.BookingService
	cfg          *config.Config
}

func NewBotHandler(catalog *services.CatalogService, availability *services.AvailabilityService, booking *services.BookingService, cfg *config.Config) *BotHandler {
	return &BotHandler{catalog: catalog, availability: availability, booking: booking, cfg: cfg}
}

// AvailableSlots implements GET /api/v1/available-slots.
func (h *BotHandler) AvailableSlots(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)

	serviceID, err := strconv.Atoi(c.Query("service_id"))
	if err != nil || serviceID <= 0 {
		utils.Fail(c, apperr.Validation("service_id is required"))
		return
	}
	masterID, _ := strconv.Atoi(c.Query("master_id"))

	date, err := time.ParseInLocation("2006-01-02", c.Query("selected_date"), h.cfg.Location())
	if err != nil {
		utils.Fail(c, apperr.Validation("selected_date must be YYYY-MM-DD"))
		return
	}

	if masterID == 0 {
		masters, err := h.catalog.MastersForService(tenantID, serviceID)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		var all []services.Slot
		for i := range masters {
			slots, err := h.availability.AvailableSlots(tenantID, masters[i].ID, serviceID, date, 0)
			if err != nil {
				continue
			}
			all = append(all, slots...)
		}
		if all == nil {
			all = []services.Slot{}
		}
		utils.Success(c, "available slots retrieved", dto.ToSlotResponses(all))
		return
	}

	slots, err := h.availability.AvailableSlots(tenantID, masterID, serviceID, date, 0)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, "available slots retrieved", dto.ToSlotResponses(slots))
}

// ActiveDaysInMonth implements GET /api/v1/active-days-in-month.
func (h *BotHandler) ActiveDaysInMonth(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)

	serviceID, err := strconv.Atoi(c.Query("service_id"))
	if err != nil || serviceID <= 0 {
		utils.Fail(c, apperr.Validation("service_id is required"))
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		utils.Fail(c, apperr.Validation("year is required"))
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		utils.Fail(c, apperr.Validation("month is required"))
		return
	}
	masterID, _ := strconv.Atoi(c.Query("master_id"))

	if masterID == 0 {
		masters, err := h.catalog.MastersForService(tenantID, serviceID)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		dayset := map[int]bool{}
		for i := range masters {
			days, err := h.availability.ActiveDaysInMonth(tenantID, masters[i].ID, serviceID, year, month)
			if err != nil {
				continue
			}
			for _, d := range days {
				dayset[d] = true
			}
		}
		out := make([]int, 0, len(dayset))
		for d := range dayset {
			out = append(out, d)
		}
		sort.Ints(out)
		utils.Success(c, "active days retrieved", out)
		return
	}

	days, err := h.availability.ActiveDaysInMonth(tenantID, masterID, serviceID, year, month)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, "active days retrieved", days)
}

// CreateAppointment implements POST /api/v1/appointments.
func (h *BotHandler) CreateAppointment(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)

	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Validation(err.Error()))
		return
	}

	startTime, err := time.ParseInLocation("2006-01-02T15:04:05", req.StartTime, h.cfg.Location())
	if err != nil {
		utils.Fail(c, apperr.Validation("start_time must be an ISO-8601 local timestamp"))
		return
	}

	appt, err := h.booking.CreateFromBot(tenantID, req.ExternalUserID, req.UserName, req.ClientPhone, req.MasterID, req.ServiceID, startTime)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Created(c, "appointment created", dto.ToAppointmentResponse(appt))
}

// CreateAppointmentNatural implements POST /api/v1/appointments/natural.
func (h *BotHandler) CreateAppointmentNatural(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)

	var req dto.NaturalLanguageBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Validation(err.Error()))
		return
	}

	appt, err := h.booking.ResolveNaturalLanguageBooking(services.NaturalLanguageBookingInput{
		TenantID:       tenantID,
		ExternalUserID: req.ExternalUserID,
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
		ServiceText:    req.ServiceText,
		MasterText:     req.MasterText,
		DateText:       req.Date,
		TimeText:       req.Time,
	})
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Created(c, "appointment created", dto.ToAppointmentResponse(appt))
}

// ClientAppointments implements GET /api/v1/clients/{external_user_id}/appointments.
func (h *BotHandler) ClientAppointments(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	externalID, err := strconv.ParseInt(c.Param("external_user_id"), 10, 64)
	if err != nil {
		utils.Fail(c, apperr.Validation("invalid external_user_id"))
		return
	}

	client, err := h.booking.ClientByExternalID(tenantID, externalID)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	appts, err := h.booking.ListClientAppointments(tenantID, client.ID)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, "appointments retrieved", dto.ToAppointmentResponses(appts, h.catalog, tenantID))
}

// CancelAppointment implements DELETE /api/v1/bot/appointments/{id}.
func (h *BotHandler) CancelAppointment(c *gin.Context) {
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

// UpdateClientPhone implements PATCH /api/v1/clients/{external_user_id}.
func (h *BotHandler) UpdateClientPhone(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)
	externalID, err := strconv.ParseInt(c.Param("external_user_id"), 10, 64)
	if err != nil {
		utils.Fail(c, apperr.Validation("invalid external_user_id"))
		return
	}
	var req dto.UpdateClientPhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Validation(err.Error()))
		return
	}
	client, err := h.booking.UpdateClientPhone(tenantID, externalID, req.PhoneNumber)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Success(c, "client updated", dto.ToClientResponse(client))
}

// SalonInfo implements the supplemented GET /api/v1/salon-info aggregate
// endpoint: the full catalog in one call, for the chatbot's opening turn.
func (h *BotHandler) SalonInfo(c *gin.Context) {
	tenantID := middlewares.TenantFromContext(c)

	serviceList, err := h.catalog.ListServices(tenantID)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	masterList, err := h.catalog.ListMasters(tenantID)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	masters := make([]SalonInfoMaster, len(masterList))
	for i := range masterList {
		serviceIDs, err := h.catalog.ServicesForMaster(tenantID, masterList[i].ID)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		masters[i] = SalonInfoMaster{
			MasterResponse: dto.ToMasterResponse(&masterList[i]),
			Services:       dto.ToServiceResponses(serviceIDs),
		}
	}

	utils.Success(c, "salon info retrieved", SalonInfoResponse{
		Services: dto.ToServiceResponses(serviceList),
		Masters:  masters,
	})
}

// SalonInfoMaster pairs a master with the services they offer.
type SalonInfoMaster struct {
	dto.MasterResponse
	Services []dto.ServiceResponse `json:"services"`
}

// SalonInfoResponse is the body of the salon-info aggregate endpoint.
type SalonInfoResponse struct {
	Services []dto.ServiceResponse `json:"services"`
	Masters  []SalonInfoMaster     `json:"masters"`
}

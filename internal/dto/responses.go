package dto

import (
	"time"

	"salon-booking-api/internal/models"
	"salon-booking-api/internal/services"
)

// ServiceResponse is a service in API responses.
type ServiceResponse struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Price           int    `json:"price"`
	DurationMinutes int    `json:"duration_minutes"`
}

func ToServiceResponse(s *models.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
	}
}

func ToServiceResponses(services []models.Service) []ServiceResponse {
	out := make([]ServiceResponse, len(services))
	for i := range services {
		out[i] = ToServiceResponse(&services[i])
	}
	return out
}

// MasterResponse is a master in API responses.
type MasterResponse struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Description    string `json:"description"`
}

func ToMasterResponse(m *models.Master) MasterResponse {
	return MasterResponse{
		ID:             m.ID,
		Name:           m.Name,
		Specialization: m.Specialization,
		Description:    m.Description,
	}
}

func ToMasterResponses(masters []models.Master) []MasterResponse {
	out := make([]MasterResponse, len(masters))
	for i := range masters {
		out[i] = ToMasterResponse(&masters[i])
	}
	return out
}

// ScheduleResponse is a weekly schedule row in API responses.
type ScheduleResponse struct {
	DayOfWeek int    `json:"day_of_week"`
	Working   bool   `json:"working"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func ToScheduleResponse(s *models.Schedule) ScheduleResponse {
	return ScheduleResponse{
		DayOfWeek: s.DayOfWeek,
		Working:   true,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
}

func ToScheduleResponses(schedules []models.Schedule) []ScheduleResponse {
	out := make([]ScheduleResponse, len(schedules))
	for i := range schedules {
		out[i] = ToScheduleResponse(&schedules[i])
	}
	return out
}

// ToWeeklyScheduleResponse expands a sparse set of schedule rows (a day
// off has no row) into exactly 7 entries, one per ISO weekday, each
// flagged Working or not, per §4.2's "read weekly schedule" contract.
func ToWeeklyScheduleResponse(schedules []models.Schedule) []ScheduleResponse {
	byDay := make(map[int]models.Schedule, len(schedules))
	for _, s := range schedules {
		byDay[s.DayOfWeek] = s
	}
	out := make([]ScheduleResponse, 7)
	for day := 1; day <= 7; day++ {
		if s, ok := byDay[day]; ok {
			out[day-1] = ToScheduleResponse(&s)
			continue
		}
		out[day-1] = ScheduleResponse{DayOfWeek: day, Working: false}
	}
	return out
}

// ClientResponse is a client in API responses.
type ClientResponse struct {
	ID             int    `json:"id"`
	ExternalUserID int64  `json:"external_user_id"`
	Name           string `json:"name"`
	PhoneNumber    string `json:"phone_number"`
}

func ToClientResponse(c *models.Client) ClientResponse {
	return ClientResponse{
		ID:             c.ID,
		ExternalUserID: c.ExternalUserID,
		Name:           c.Name,
		PhoneNumber:    c.PhoneNumber,
	}
}

func ToClientResponses(clients []models.Client) []ClientResponse {
	out := make([]ClientResponse, len(clients))
	for i := range clients {
		out[i] = ToClientResponse(&clients[i])
	}
	return out
}

// AppointmentResponse is an appointment in API responses, carrying the
// resolved service/master names per §4.4 step 5 (ground-truth
// `AppointmentInfoSchema` in the original).
type AppointmentResponse struct {
	ID          int       `json:"id"`
	ClientID    int       `json:"client_id"`
	MasterID    int       `json:"master_id"`
	ServiceID   int       `json:"service_id"`
	ServiceName string    `json:"service_name"`
	MasterName  string    `json:"master_name"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}

// ToAppointmentResponse converts a freshly created/updated appointment,
// whose service and master were already loaded along the booking path.
func ToAppointmentResponse(a *services.BookedAppointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          a.ID,
		ClientID:    a.ClientID,
		MasterID:    a.MasterID,
		ServiceID:   a.ServiceID,
		ServiceName: a.ServiceName,
		MasterName:  a.MasterName,
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
	}
}

// catalogNameResolver is the subset of CatalogService a name lookup needs,
// so list endpoints can resolve service/master names without a booking
// result to carry them.
type catalogNameResolver interface {
	GetService(tenantID, id int) (*models.Service, error)
	GetMaster(tenantID, id int) (*models.Master, error)
}

// ToAppointmentResponses resolves each listed appointment's service/master
// name via catalog, caching one lookup per id so a list of appointments
// sharing a master or service doesn't re-query for each row (mirrors
// CatalogService.ServicesForMaster's per-item lookup pattern).
func ToAppointmentResponses(appts []models.Appointment, catalog catalogNameResolver, tenantID int) []AppointmentResponse {
	serviceNames := make(map[int]string, len(appts))
	masterNames := make(map[int]string, len(appts))

	out := make([]AppointmentResponse, len(appts))
	for i := range appts {
		a := &appts[i]

		serviceName, ok := serviceNames[a.ServiceID]
		if !ok {
			if svc, err := catalog.GetService(tenantID, a.ServiceID); err == nil {
				serviceName = svc.Name
			}
			serviceNames[a.ServiceID] = serviceName
		}

		masterName, ok := masterNames[a.MasterID]
		if !ok {
			if m, err := catalog.GetMaster(tenantID, a.MasterID); err == nil {
				masterName = m.Name
			}
			masterNames[a.MasterID] = masterName
		}

		out[i] = AppointmentResponse{
			ID:          a.ID,
			ClientID:    a.ClientID,
			MasterID:    a.MasterID,
			ServiceID:   a.ServiceID,
			ServiceName: serviceName,
			MasterName:  masterName,
			StartTime:   a.StartTime,
			EndTime:     a.EndTime,
		}
	}
	return out
}

// SlotResponse is one bookable window in an availability response, per
// §6.1's `{time:"HH:MM", master_id}` wire shape; duplicates across
// masters are preserved, each carrying its own master_id (§4.3 step 5).
type SlotResponse struct {
	Time     string `json:"time"`
	MasterID int    `json:"master_id"`
}

func ToSlotResponses(slots []services.Slot) []SlotResponse {
	out := make([]SlotResponse, len(slots))
	for i, s := range slots {
		out[i] = SlotResponse{Time: s.Start.Format("15:04"), MasterID: s.MasterID}
	}
	return out
}

// TenantResponse is a tenant in super-admin API responses.
type TenantResponse struct {
	ID        int    `json:"id"`
	LoginName string `json:"login_name"`
	Title     string `json:"title"`
	IsActive  bool   `json:"is_active"`
}

func ToTenantResponse(t *models.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		LoginName: t.LoginName,
		Title:     t.Title,
		IsActive:  t.IsActive,
	}
}

func ToTenantResponses(tenants []models.Tenant) []TenantResponse {
	out := make([]TenantResponse, len(tenants))
	for i := range tenants {
		out[i] = ToTenantResponse(&tenants[i])
	}
	return out
}

// CreateTenantResponse includes the bot token only once, at creation
// time, since it is never returned by any other endpoint.
type CreateTenantResponse struct {
	TenantResponse
	BotToken string `json:"bot_token"`
}

// ScheduleReplaceResponse reports which schedule entries were applied and
// which were skipped for being unparsable (§4.2).
type ScheduleReplaceResponse struct {
	Applied []ScheduleResponse     `json:"applied"`
	Skipped []ScheduleEntryRequest `json:"skipped"`
}

// Package dto holds the request/response shapes for the HTTP surface,
// validated through gin's binding tags the way the teacher's
// internal/dto/requests.go does.
package dto

// CreateServiceRequest is the body for POST .../services.
type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required"`
	Price           int    `json:"price" binding:"required,gt=0"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,gt=0"`
}

// UpdateServiceRequest is the body for PUT .../services/:id.
type UpdateServiceRequest struct {
	Name            string `json:"name"`
	Price           int    `json:"price"`
	DurationMinutes int    `json:"duration_minutes"`
}

// CreateMasterRequest is the body for POST .../masters.
type CreateMasterRequest struct {
	Name           string `json:"name" binding:"required"`
	Specialization string `json:"specialization"`
	Description    string `json:"description"`
	ServiceIDs     []int  `json:"service_ids"`
}

// UpdateMasterRequest is the body for PUT .../masters/:id.
type UpdateMasterRequest struct {
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Description    string `json:"description"`
}

// SetMasterServicesRequest is the body for PUT .../masters/:id/services.
type SetMasterServicesRequest struct {
	ServiceIDs []int `json:"service_ids" binding:"required"`
}

// ScheduleEntryRequest is one raw weekly schedule row; invalid entries are
// reported back, not rejected outright (§4.2).
type ScheduleEntryRequest struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ReplaceScheduleRequest is the body for PUT .../masters/:id/schedule.
type ReplaceScheduleRequest struct {
	Entries []ScheduleEntryRequest `json:"entries" binding:"required"`
}

// CreateClientRequest is the body for POST /admin/clients (admin-created
// walk-in clients get a synthesized external id, §4.2).
type CreateClientRequest struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number"`
}

// UpdateClientRequest is the body for PUT /admin/clients/:id.
type UpdateClientRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// CreateAppointmentRequest is the body for the bot-facing appointment
// create endpoint.
type CreateAppointmentRequest struct {
	ExternalUserID int64  `json:"external_user_id" binding:"required"`
	UserName       string `json:"user_name"`
	ClientPhone    string `json:"client_phone"`
	MasterID       int    `json:"master_id" binding:"required"`
	ServiceID      int    `json:"service_id" binding:"required"`
	StartTime      string `json:"start_time" binding:"required"` // "2006-01-02T15:04:05"
}

// AdminCreateAppointmentRequest is the body for the admin-facing
// appointment create endpoint, which already knows the client id.
type AdminCreateAppointmentRequest struct {
	ClientID  int    `json:"client_id" binding:"required"`
	MasterID  int    `json:"master_id" binding:"required"`
	ServiceID int    `json:"service_id" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
}

// UpdateAppointmentRequest is the body for PUT /admin/appointments/:id.
type UpdateAppointmentRequest struct {
	MasterID  int    `json:"master_id"`
	ServiceID int    `json:"service_id"`
	StartTime string `json:"start_time"`
}

// UpdateClientPhoneRequest is the body for PATCH
// /api/v1/clients/{external_user_id}; the external id comes from the
// path, not the body.
type UpdateClientPhoneRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
}

// NaturalLanguageBookingRequest is the body for the LLM-assisted booking
// endpoint (C7): free-text service/master names plus a date and time, per
// §4.6's documented input contract (ground-truth
// `AppointmentNaturalLanguageSchema` in the original).
type NaturalLanguageBookingRequest struct {
	ExternalUserID int64  `json:"external_user_id" binding:"required"`
	ClientName     string `json:"user_name"`
	ClientPhone    string `json:"client_phone"`
	ServiceText    string `json:"service_name" binding:"required"`
	MasterText     string `json:"master_name"`
	Date           string `json:"appointment_date" binding:"required"` // "YYYY-MM-DD"
	Time           string `json:"appointment_time" binding:"required"` // "HH:MM"
}

// CreateTenantRequest models the form-encoded body of POST
// /superadmin/salons (name, title, token, password), per §6.1. The bot
// token is supplied by the super-admin rather than generated, matching
// original_source's salon-provisioning flow.
type CreateTenantRequest struct {
	LoginName string `form:"name" binding:"required"`
	Title     string `form:"title" binding:"required"`
	BotToken  string `form:"token" binding:"required"`
	Password  string `form:"password" binding:"required,min=8"`
}

// UpdateTenantRequest is the JSON body for PUT /superadmin/salons/{id}.
type UpdateTenantRequest struct {
	Title    string `json:"title"`
	Password string `json:"password"`
	IsActive *bool  `json:"is_active"`
}

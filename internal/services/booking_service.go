package services

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"salon-booking-api/internal/apperr"
	"salon-booking-api/internal/config"
	"salon-booking-api/internal/models"
	"salon-booking-api/internal/repositories/interfaces"
	"salon-booking-api/internal/utils"
)

// BookingService is the booking engine (C5) plus the natural-language
// resolution step of C7. Every write path opens a serializable
// transaction around the conflict check and the insert/update, following
// the teacher's ReservationRepository.CreateBatch transaction pattern,
// generalized and tightened to Serializable per §5.
type BookingService struct {
	db          *gorm.DB
	catalog     interfaces.CatalogRepository
	schedule    interfaces.ScheduleRepository
	client      interfaces.ClientRepository
	appointment interfaces.AppointmentRepository
	cfg         *config.Config
	now         func() time.Time
	// txIsolation is the isolation level the create/update path opens its
	// transaction at. Defaults to Serializable per §5; tests running
	// against a single-writer engine with no isolation-level concept
	// (sqlite) override it to the driver default.
	txIsolation sql.IsolationLevel
}

func NewBookingService(
	db *gorm.DB,
	catalog interfaces.CatalogRepository,
	schedule interfaces.ScheduleRepository,
	client interfaces.ClientRepository,
	appointment interfaces.AppointmentRepository,
	cfg *config.Config,
) *BookingService {
	return &BookingService{
		db:          db,
		catalog:     catalog,
		schedule:    schedule,
		client:      client,
		appointment: appointment,
		cfg:         cfg,
		now:         time.Now,
		txIsolation: sql.LevelSerializable,
	}
}

// BookingRequest carries the resolved ids and time window a create/update
// needs; the HTTP handlers build it after resolving body fields.
type BookingRequest struct {
	TenantID  int
	ClientID  int
	MasterID  int
	ServiceID int
	StartTime time.Time
}

// BookedAppointment pairs an appointment with the service/master names it
// was booked under, per §4.4 step 5's "resolved service and master names"
// response contract.
type BookedAppointment struct {
	*models.Appointment
	ServiceName string
	MasterName  string
}

// CreateFromBot upserts the client by external chat identity, then books
// the appointment (§4.4's bot-path create).
func (s *BookingService) CreateFromBot(tenantID int, externalUserID int64, name, phone string, masterID, serviceID int, startTime time.Time) (*BookedAppointment, error) {
	client, err := s.upsertClient(tenantID, externalUserID, name, phone)
	if err != nil {
		return nil, err
	}
	return s.create(BookingRequest{
		TenantID:  tenantID,
		ClientID:  client.ID,
		MasterID:  masterID,
		ServiceID: serviceID,
		StartTime: startTime,
	})
}

// CreateByAdmin books an appointment for an already-known client id
// (§4.4's admin-path create).
func (s *BookingService) CreateByAdmin(req BookingRequest) (*BookedAppointment, error) {
	if _, err := s.client.GetByID(req.TenantID, req.ClientID); err != nil {
		return nil, err
	}
	return s.create(req)
}

func (s *BookingService) upsertClient(tenantID int, externalUserID int64, name, phone string) (*models.Client, error) {
	existing, err := s.client.GetByExternalUserID(tenantID, externalUserID)
	if err == nil {
		if name != "" {
			existing.Name = name
		}
		if phone != "" {
			existing.PhoneNumber = phone
		}
		if err := s.client.Update(existing); err != nil {
			return nil, apperr.Internal(err)
		}
		return existing, nil
	}
	if apperr.KindOf(err) != apperr.KindNotFound {
		return nil, apperr.Internal(err)
	}

	newClient := &models.Client{
		TenantID:       tenantID,
		ExternalUserID: externalUserID,
		Name:           name,
		PhoneNumber:    phone,
	}
	if err := s.client.Create(newClient); err != nil {
		return nil, apperr.Internal(err)
	}
	return newClient, nil
}

// create runs the shared create path: load service/master, compute the
// end time, re-validate schedule coverage (Open Question O3), and run the
// conflict check + insert inside one serializable transaction.
func (s *BookingService) create(req BookingRequest) (*BookedAppointment, error) {
	service, err := s.catalog.GetServiceByID(req.TenantID, req.ServiceID)
	if err != nil {
		return nil, err
	}
	master, err := s.catalog.GetMasterByID(req.TenantID, req.MasterID)
	if err != nil {
		return nil, err
	}
	offers, err := s.catalog.MasterOffersService(master.ID, service.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !offers {
		return nil, apperr.Validation("master %q does not offer this service", master.Name)
	}

	endTime := req.StartTime.Add(time.Duration(service.DurationMinutes) * time.Minute)

	if err := s.verifyScheduleCoverage(master.ID, req.StartTime, endTime); err != nil {
		return nil, err
	}

	var created *models.Appointment
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		apptTx := s.appointment.WithTx(tx)

		masterConflicts, err := apptTx.ConflictingForMaster(req.TenantID, master.ID, req.StartTime, endTime, 0)
		if err != nil {
			return err
		}
		if len(masterConflicts) > 0 {
			return apperr.Conflict("master is already booked for that time")
		}

		clientConflicts, err := apptTx.ConflictingForClient(req.TenantID, req.ClientID, req.StartTime, endTime, 0)
		if err != nil {
			return err
		}
		if len(clientConflicts) > 0 {
			return apperr.Conflict("client already has an appointment at that time")
		}

		appt := &models.Appointment{
			TenantID:  req.TenantID,
			ClientID:  req.ClientID,
			MasterID:  master.ID,
			ServiceID: service.ID,
			StartTime: req.StartTime,
			EndTime:   endTime,
		}
		if err := apptTx.Create(appt); err != nil {
			return err
		}
		created = appt
		return nil
	}, &sql.TxOptions{Isolation: s.txIsolation})

	if txErr != nil {
		if _, ok := txErr.(*apperr.Error); ok {
			return nil, txErr
		}
		return nil, apperr.Internal(txErr)
	}

	return &BookedAppointment{Appointment: created, ServiceName: service.Name, MasterName: master.Name}, nil
}

// Update rebinds an existing appointment to new master/service/time,
// re-running the same conflict check excluding the appointment's own id
// (§4.4, admin-only).
func (s *BookingService) Update(tenantID, id int, req BookingRequest) (*BookedAppointment, error) {
	existing, err := s.appointment.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}

	masterID := req.MasterID
	if masterID == 0 {
		masterID = existing.MasterID
	}
	serviceID := req.ServiceID
	if serviceID == 0 {
		serviceID = existing.ServiceID
	}
	startTime := req.StartTime
	if startTime.IsZero() {
		startTime = existing.StartTime
	}

	service, err := s.catalog.GetServiceByID(tenantID, serviceID)
	if err != nil {
		return nil, err
	}
	master, err := s.catalog.GetMasterByID(tenantID, masterID)
	if err != nil {
		return nil, err
	}
	offers, err := s.catalog.MasterOffersService(master.ID, service.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !offers {
		return nil, apperr.Validation("master %q does not offer this service", master.Name)
	}

	endTime := startTime.Add(time.Duration(service.DurationMinutes) * time.Minute)

	if err := s.verifyScheduleCoverage(master.ID, startTime, endTime); err != nil {
		return nil, err
	}

	var updated *models.Appointment
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		apptTx := s.appointment.WithTx(tx)

		masterConflicts, err := apptTx.ConflictingForMaster(tenantID, master.ID, startTime, endTime, id)
		if err != nil {
			return err
		}
		if len(masterConflicts) > 0 {
			return apperr.Conflict("master is already booked for that time")
		}

		clientConflicts, err := apptTx.ConflictingForClient(tenantID, existing.ClientID, startTime, endTime, id)
		if err != nil {
			return err
		}
		if len(clientConflicts) > 0 {
			return apperr.Conflict("client already has an appointment at that time")
		}

		existing.MasterID = master.ID
		existing.ServiceID = service.ID
		existing.StartTime = startTime
		existing.EndTime = endTime
		if err := apptTx.Update(existing); err != nil {
			return err
		}
		updated = existing
		return nil
	}, &sql.TxOptions{Isolation: s.txIsolation})

	if txErr != nil {
		if _, ok := txErr.(*apperr.Error); ok {
			return nil, txErr
		}
		return nil, apperr.Internal(txErr)
	}

	return &BookedAppointment{Appointment: updated, ServiceName: service.Name, MasterName: master.Name}, nil
}

// Cancel hard-deletes an appointment, tenant-scoped (§4.4).
func (s *BookingService) Cancel(tenantID, id int) error {
	if err := s.appointment.Delete(tenantID, id); err != nil {
		return err
	}
	return nil
}

// ClientByExternalID resolves a client by their chat-platform identity,
// for the bot-facing appointment-listing endpoint.
func (s *BookingService) ClientByExternalID(tenantID int, externalUserID int64) (*models.Client, error) {
	return s.client.GetByExternalUserID(tenantID, externalUserID)
}

// ListClientAppointments returns a client's future appointments, ascending
// (§4.4).
func (s *BookingService) ListClientAppointments(tenantID, clientID int) ([]models.Appointment, error) {
	if _, err := s.client.GetByID(tenantID, clientID); err != nil {
		return nil, err
	}
	return s.appointment.ListFutureForClient(tenantID, clientID, s.now())
}

// UpdateClientPhone upserts a client's phone number by external chat
// identity, creating the client with a placeholder name if it doesn't
// exist yet (§4.4).
func (s *BookingService) UpdateClientPhone(tenantID int, externalUserID int64, phone string) (*models.Client, error) {
	existing, err := s.client.GetByExternalUserID(tenantID, externalUserID)
	if err == nil {
		existing.PhoneNumber = phone
		if err := s.client.Update(existing); err != nil {
			return nil, apperr.Internal(err)
		}
		return existing, nil
	}
	if apperr.KindOf(err) != apperr.KindNotFound {
		return nil, apperr.Internal(err)
	}

	newClient := &models.Client{
		TenantID:       tenantID,
		ExternalUserID: externalUserID,
		Name:           "Client",
		PhoneNumber:    phone,
	}
	if err := s.client.Create(newClient); err != nil {
		return nil, apperr.Internal(err)
	}
	return newClient, nil
}

// verifyScheduleCoverage enforces Open Question O3: every appointment
// write re-checks that its interval lies within the master's working
// hours for that weekday, closing the admin direct-insert bypass the
// original design left open.
func (s *BookingService) verifyScheduleCoverage(masterID int, start, end time.Time) error {
	dayOfWeek := utils.ISOWeekday(start)
	working, err := s.schedule.GetForMasterDay(masterID, dayOfWeek)
	if err != nil {
		return apperr.Validation("master has no working hours on that day")
	}

	loc := start.Location()
	sh, sm, ok1 := utils.ParseClockTime(working.StartTime)
	eh, em, ok2 := utils.ParseClockTime(working.EndTime)
	if !ok1 || !ok2 {
		return apperr.Validation("master has no working hours on that day")
	}

	dayStart := time.Date(start.Year(), start.Month(), start.Day(), sh, sm, 0, 0, loc)
	dayEnd := time.Date(start.Year(), start.Month(), start.Day(), eh, em, 0, 0, loc)

	if start.Before(dayStart) || end.After(dayEnd) {
		return apperr.Validation("requested time falls outside the master's working hours")
	}
	return nil
}

// NaturalLanguageBookingInput is the input of ResolveNaturalLanguageBooking,
// which implements C7: case-insensitive substring resolution of the service
// and (optionally) the master from free text, parsing of the date/time, then
// delegation into the bot-path create, grounded on the original's
// create_appointment_from_natural_language.
type NaturalLanguageBookingInput struct {
	TenantID       int
	ExternalUserID int64
	ClientName     string
	ClientPhone    string
	ServiceText    string
	MasterText     string
	DateText       string // "YYYY-MM-DD"
	TimeText       string // "HH:MM"
}

func (s *BookingService) ResolveNaturalLanguageBooking(in NaturalLanguageBookingInput) (*BookedAppointment, error) {
	services, err := s.catalog.SearchServicesByName(in.TenantID, in.ServiceText)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(services) == 0 {
		return nil, apperr.NotFound(fmt.Sprintf("service matching %q", in.ServiceText))
	}
	service := services[0]

	var master *models.Master
	if strings.TrimSpace(in.MasterText) != "" {
		masters, err := s.catalog.SearchMastersByName(in.TenantID, in.MasterText)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		for i := range masters {
			offers, err := s.catalog.MasterOffersService(masters[i].ID, service.ID)
			if err == nil && offers {
				master = &masters[i]
				break
			}
		}
		if master == nil {
			return nil, apperr.NotFound(fmt.Sprintf("master matching %q offering %q", in.MasterText, service.Name))
		}
	} else {
		ids, err := s.catalog.MasterIDsForService(service.ID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if len(ids) == 0 {
			return nil, apperr.NotFound(fmt.Sprintf("master offering %q", service.Name))
		}
		m, err := s.catalog.GetMasterByID(in.TenantID, ids[0])
		if err != nil {
			return nil, err
		}
		master = m
	}

	loc := s.cfg.Location()
	startTime, err := parseDateTime(in.DateText, in.TimeText, loc)
	if err != nil {
		return nil, apperr.Validation("could not parse date/time %q %q", in.DateText, in.TimeText)
	}

	return s.CreateFromBot(in.TenantID, in.ExternalUserID, in.ClientName, in.ClientPhone, master.ID, service.ID, startTime)
}

func parseDateTime(dateText, timeText string, loc *time.Location) (time.Time, error) {
	layout := "2006-01-02 15:04"
	return time.ParseInLocation(layout, dateText+" "+timeText, loc)
}

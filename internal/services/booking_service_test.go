package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"salon-booking-api/internal/apperr"
	"salon-booking-api/internal/config"
	"salon-booking-api/internal/models"
	"salon-booking-api/internal/repositories"
)

// BookingServiceTestSuite exercises the booking engine (C5): conflict
// detection for both master and client, schedule-coverage enforcement,
// and the client-upsert bot path, following the teacher pack's sqlite
// service-suite shape (slotwise's BookingServiceTestSuite, adapted to a
// self-contained in-memory database since this domain's create/update
// path is a single insert rather than a batch).
type BookingServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	booking *BookingService
	cfg     *config.Config
	tenant  int
	master  int
	service int
}

func (s *BookingServiceTestSuite) SetupTest() {
	dsn := "file:" + s.T().Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(s.T(), err)
	sqlDB, err := db.DB()
	require.NoError(s.T(), err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(s.T(), db.AutoMigrate(
		&models.Tenant{}, &models.Service{}, &models.Master{},
		&models.MasterService{}, &models.Schedule{}, &models.Client{}, &models.Appointment{},
	))
	s.db = db

	s.cfg = &config.Config{BusinessTimezone: "UTC", SlotGridMinutes: 15}

	catalogRepo := repositories.NewCatalogRepository(db)
	scheduleRepo := repositories.NewScheduleRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	appointmentRepo := repositories.NewAppointmentRepository(db)
	s.booking = NewBookingService(db, catalogRepo, scheduleRepo, clientRepo, appointmentRepo, s.cfg)
	// sqlite has no isolation-level concept; the booking engine's
	// Serializable requirement is exercised against postgres in
	// production (§5) and at the repository-query level here.
	s.booking.txIsolation = 0

	s.tenant = 1
	master := &models.Master{TenantID: s.tenant, Name: "Elena"}
	require.NoError(s.T(), db.Create(master).Error)
	s.master = master.ID

	service := &models.Service{TenantID: s.tenant, Name: "Haircut", Price: 1000, DurationMinutes: 60}
	require.NoError(s.T(), db.Create(service).Error)
	s.service = service.ID

	require.NoError(s.T(), db.Create(&models.MasterService{MasterID: s.master, ServiceID: s.service}).Error)
	// 2025-04-14 is a Monday (ISO day 1).
	require.NoError(s.T(), db.Create(&models.Schedule{MasterID: s.master, DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00"}).Error)
}

func (s *BookingServiceTestSuite) TestCreateFromBotSucceeds() {
	start := time.Date(2025, 4, 14, 10, 0, 0, 0, time.UTC)
	appt, err := s.booking.CreateFromBot(s.tenant, 555, "Nina", "", s.master, s.service, start)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), start.Add(time.Hour), appt.EndTime)
	assert.Equal(s.T(), s.master, appt.MasterID)
}

func (s *BookingServiceTestSuite) TestMasterDoubleBookingConflicts() {
	start := time.Date(2025, 4, 14, 10, 0, 0, 0, time.UTC)
	_, err := s.booking.CreateFromBot(s.tenant, 1, "Client A", "", s.master, s.service, start)
	require.NoError(s.T(), err)

	_, err = s.booking.CreateFromBot(s.tenant, 2, "Client B", "", s.master, s.service, start)
	require.Error(s.T(), err)
	assert.Equal(s.T(), apperr.KindConflict, apperr.KindOf(err))
}

func (s *BookingServiceTestSuite) TestClientDoubleBookingConflicts() {
	otherMaster := &models.Master{TenantID: s.tenant, Name: "Other"}
	require.NoError(s.T(), s.db.Create(otherMaster).Error)
	require.NoError(s.T(), s.db.Create(&models.MasterService{MasterID: otherMaster.ID, ServiceID: s.service}).Error)
	require.NoError(s.T(), s.db.Create(&models.Schedule{MasterID: otherMaster.ID, DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00"}).Error)

	start := time.Date(2025, 4, 14, 10, 0, 0, 0, time.UTC)
	_, err := s.booking.CreateFromBot(s.tenant, 99, "Nina", "", s.master, s.service, start)
	require.NoError(s.T(), err)

	// Same client, different master, overlapping time: client-busy.
	_, err = s.booking.CreateFromBot(s.tenant, 99, "Nina", "", otherMaster.ID, s.service, start)
	require.Error(s.T(), err)
	assert.Equal(s.T(), apperr.KindConflict, apperr.KindOf(err))
}

func (s *BookingServiceTestSuite) TestTouchingIntervalsDoNotConflict() {
	first := time.Date(2025, 4, 14, 10, 0, 0, 0, time.UTC)
	_, err := s.booking.CreateFromBot(s.tenant, 1, "Client A", "", s.master, s.service, first)
	require.NoError(s.T(), err)

	// Starts exactly where the first ends; must succeed (§8).
	second := first.Add(time.Hour)
	_, err = s.booking.CreateFromBot(s.tenant, 2, "Client B", "", s.master, s.service, second)
	assert.NoError(s.T(), err)
}

func (s *BookingServiceTestSuite) TestScheduleCoverageRejectsOutOfHoursBooking() {
	start := time.Date(2025, 4, 14, 7, 0, 0, 0, time.UTC) // before 09:00
	_, err := s.booking.CreateFromBot(s.tenant, 1, "Nina", "", s.master, s.service, start)
	require.Error(s.T(), err)
	assert.Equal(s.T(), apperr.KindValidation, apperr.KindOf(err))
}

func (s *BookingServiceTestSuite) TestUpdateExcludesOwnRowFromConflictCheck() {
	start := time.Date(2025, 4, 14, 10, 0, 0, 0, time.UTC)
	appt, err := s.booking.CreateFromBot(s.tenant, 1, "Nina", "", s.master, s.service, start)
	require.NoError(s.T(), err)

	// Re-saving the same appointment at the same time must not conflict
	// with itself.
	updated, err := s.booking.Update(s.tenant, appt.ID, BookingRequest{
		MasterID: s.master, ServiceID: s.service, StartTime: start,
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), appt.ID, updated.ID)
}

func (s *BookingServiceTestSuite) TestCancelThenListOmitsAppointment() {
	start := time.Date(2025, 4, 14, 10, 0, 0, 0, time.UTC)
	appt, err := s.booking.CreateFromBot(s.tenant, 1, "Nina", "", s.master, s.service, start)
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.booking.Cancel(s.tenant, appt.ID))

	client, err := s.booking.ClientByExternalID(s.tenant, 1)
	require.NoError(s.T(), err)
	appts, err := s.booking.ListClientAppointments(s.tenant, client.ID)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), appts)
}

func (s *BookingServiceTestSuite) TestUpdateClientPhoneCreatesPlaceholderClient() {
	client, err := s.booking.UpdateClientPhone(s.tenant, 777, "+15551234567")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "+15551234567", client.PhoneNumber)

	again, err := s.booking.UpdateClientPhone(s.tenant, 777, "+15557654321")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), client.ID, again.ID)
	assert.Equal(s.T(), "+15557654321", again.PhoneNumber)
}

func (s *BookingServiceTestSuite) TestResolveNaturalLanguageUnknownServiceIs404() {
	_, err := s.booking.ResolveNaturalLanguageBooking(NaturalLanguageBookingInput{
		TenantID: s.tenant, ExternalUserID: 1, ServiceText: "does-not-exist",
		DateText: "2025-04-14", TimeText: "10:00",
	})
	require.Error(s.T(), err)
	assert.Equal(s.T(), apperr.KindNotFound, apperr.KindOf(err))
}

func (s *BookingServiceTestSuite) TestResolveNaturalLanguageBadDateIs400() {
	_, err := s.booking.ResolveNaturalLanguageBooking(NaturalLanguageBookingInput{
		TenantID: s.tenant, ExternalUserID: 1, ServiceText: "hair",
		DateText: "not-a-date", TimeText: "10:00",
	})
	require.Error(s.T(), err)
	assert.Equal(s.T(), apperr.KindValidation, apperr.KindOf(err))
}

func (s *BookingServiceTestSuite) TestResolveNaturalLanguageResolvesSubstringMatch() {
	appt, err := s.booking.ResolveNaturalLanguageBooking(NaturalLanguageBookingInput{
		TenantID: s.tenant, ExternalUserID: 123, ClientName: "Nina",
		ServiceText: "hair", DateText: "2025-04-14", TimeText: "10:00",
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), s.service, appt.ServiceID)
	assert.Equal(s.T(), s.master, appt.MasterID)
}

func TestBookingServiceSuite(t *testing.T) {
	suite.Run(t, new(BookingServiceTestSuite))
}

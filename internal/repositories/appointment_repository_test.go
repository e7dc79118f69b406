package repositories_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"salon-booking-api/internal/apperr"
	"salon-booking-api/internal/models"
	"salon-booking-api/internal/repositories"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.Tenant{}, &models.Service{}, &models.Master{},
		&models.MasterService{}, &models.Schedule{}, &models.Client{}, &models.Appointment{},
	))
	return db
}

func TestAppointmentRepository_GetByID_TenantScoped(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewAppointmentRepository(db)

	start := time.Date(2025, 4, 14, 10, 0, 0, 0, time.UTC)
	appt := &models.Appointment{TenantID: 1, ClientID: 1, MasterID: 1, ServiceID: 1, StartTime: start, EndTime: start.Add(time.Hour)}
	require.NoError(t, repo.Create(appt))

	_, err := repo.GetByID(2, appt.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	got, err := repo.GetByID(1, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, appt.ID, got.ID)
}

func TestAppointmentRepository_ConflictingForMaster_TouchingIntervalsDoNotConflict(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewAppointmentRepository(db)

	start := time.Date(2025, 4, 14, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	require.NoError(t, repo.Create(&models.Appointment{TenantID: 1, ClientID: 1, MasterID: 9, ServiceID: 1, StartTime: start, EndTime: end}))

	conflicts, err := repo.ConflictingForMaster(1, 9, end, end.Add(time.Hour), 0)
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	conflicts, err = repo.ConflictingForMaster(1, 9, start.Add(-time.Hour), start, 0)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestAppointmentRepository_ConflictingForMaster_OverlapDetected(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewAppointmentRepository(db)

	start := time.Date(2025, 4, 14, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	appt := &models.Appointment{TenantID: 1, ClientID: 1, MasterID: 9, ServiceID: 1, StartTime: start, EndTime: end}
	require.NoError(t, repo.Create(appt))

	conflicts, err := repo.ConflictingForMaster(1, 9, start.Add(30*time.Minute), end.Add(30*time.Minute), 0)
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)

	// Excluding the row's own id (the update path) clears the conflict.
	conflicts, err = repo.ConflictingForMaster(1, 9, start, end, appt.ID)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestAppointmentRepository_ConflictingForClient_CrossesMasters(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewAppointmentRepository(db)

	start := time.Date(2025, 4, 14, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	require.NoError(t, repo.Create(&models.Appointment{TenantID: 1, ClientID: 5, MasterID: 1, ServiceID: 1, StartTime: start, EndTime: end}))

	conflicts, err := repo.ConflictingForClient(1, 5, start.Add(30*time.Minute), end.Add(30*time.Minute), 0)
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)

	conflicts, err = repo.ConflictingForClient(1, 6, start, end, 0)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestAppointmentRepository_ListFutureForClient_OrderedAndFiltered(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewAppointmentRepository(db)

	now := time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	soon := now.Add(time.Hour)
	later := now.Add(48 * time.Hour)

	require.NoError(t, repo.Create(&models.Appointment{TenantID: 1, ClientID: 1, MasterID: 1, ServiceID: 1, StartTime: past, EndTime: past.Add(time.Hour)}))
	require.NoError(t, repo.Create(&models.Appointment{TenantID: 1, ClientID: 1, MasterID: 1, ServiceID: 1, StartTime: later, EndTime: later.Add(time.Hour)}))
	require.NoError(t, repo.Create(&models.Appointment{TenantID: 1, ClientID: 1, MasterID: 1, ServiceID: 1, StartTime: soon, EndTime: soon.Add(time.Hour)}))

	appts, err := repo.ListFutureForClient(1, 1, now)
	require.NoError(t, err)
	require.Len(t, appts, 2)
	assert.True(t, appts[0].StartTime.Before(appts[1].StartTime))
}

func TestAppointmentRepository_Delete_NotFoundForWrongTenant(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewAppointmentRepository(db)

	start := time.Date(2025, 4, 14, 10, 0, 0, 0, time.UTC)
	appt := &models.Appointment{TenantID: 1, ClientID: 1, MasterID: 1, ServiceID: 1, StartTime: start, EndTime: start.Add(time.Hour)}
	require.NoError(t, repo.Create(appt))

	err := repo.Delete(2, appt.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	require.NoError(t, repo.Delete(1, appt.ID))
}

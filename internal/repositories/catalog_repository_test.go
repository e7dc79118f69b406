package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-booking-api/internal/apperr"
	"salon-booking-api/internal/models"
	"salon-booking-api/internal/repositories"
)

func TestCatalogRepository_ServiceTenantIsolation(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewCatalogRepository(db)

	svc := &models.Service{TenantID: 1, Name: "Cut", Price: 1000, DurationMinutes: 30}
	require.NoError(t, repo.CreateService(svc))

	_, err := repo.GetServiceByID(2, svc.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	got, err := repo.GetServiceByID(1, svc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cut", got.Name)
}

func TestCatalogRepository_SearchServicesByName_CaseInsensitiveSubstring(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewCatalogRepository(db)

	require.NoError(t, repo.CreateService(&models.Service{TenantID: 1, Name: "Женская стрижка", Price: 1000, DurationMinutes: 60}))
	require.NoError(t, repo.CreateService(&models.Service{TenantID: 1, Name: "Manicure", Price: 500, DurationMinutes: 45}))

	found, err := repo.SearchServicesByName(1, "стрижка")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Женская стрижка", found[0].Name)

	found, err = repo.SearchServicesByName(1, "MANI")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Manicure", found[0].Name)

	found, err = repo.SearchServicesByName(1, "nope")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestCatalogRepository_MasterServiceMembership(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewCatalogRepository(db)

	svc := &models.Service{TenantID: 1, Name: "Cut", Price: 1000, DurationMinutes: 30}
	require.NoError(t, repo.CreateService(svc))
	master := &models.Master{TenantID: 1, Name: "Elena"}
	require.NoError(t, repo.CreateMaster(master))

	offers, err := repo.MasterOffersService(master.ID, svc.ID)
	require.NoError(t, err)
	assert.False(t, offers)

	require.NoError(t, repo.AddMasterService(master.ID, svc.ID))
	// Adding twice is idempotent.
	require.NoError(t, repo.AddMasterService(master.ID, svc.ID))

	offers, err = repo.MasterOffersService(master.ID, svc.ID)
	require.NoError(t, err)
	assert.True(t, offers)

	ids, err := repo.ServiceIDsForMaster(master.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{svc.ID}, ids)

	require.NoError(t, repo.RemoveMasterService(master.ID, svc.ID))
	offers, err = repo.MasterOffersService(master.ID, svc.ID)
	require.NoError(t, err)
	assert.False(t, offers)
}

func TestCatalogRepository_CountAppointmentsForRestrictOnDelete(t *testing.T) {
	db := openTestDB(t)
	catalog := repositories.NewCatalogRepository(db)
	appts := repositories.NewAppointmentRepository(db)

	svc := &models.Service{TenantID: 1, Name: "Cut", Price: 1000, DurationMinutes: 30}
	require.NoError(t, catalog.CreateService(svc))
	master := &models.Master{TenantID: 1, Name: "Elena"}
	require.NoError(t, catalog.CreateMaster(master))

	count, err := catalog.CountAppointmentsForService(svc.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, appts.Create(&models.Appointment{
		TenantID: 1, ClientID: 1, MasterID: master.ID, ServiceID: svc.ID,
	}))

	count, err = catalog.CountAppointmentsForService(svc.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

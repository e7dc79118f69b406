package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-booking-api/internal/models"
	"salon-booking-api/internal/repositories"
)

func TestScheduleRepository_ReplaceForMaster_IsAtomicAndIdempotent(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewScheduleRepository(db)

	require.NoError(t, repo.ReplaceForMaster(1, []models.Schedule{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00"},
		{DayOfWeek: 3, StartTime: "10:00", EndTime: "19:00"},
	}))

	rows, err := repo.ListForMaster(1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].DayOfWeek)
	assert.Equal(t, 3, rows[1].DayOfWeek)

	// Replacing with the value just read back leaves it unchanged (§8's
	// round-trip property).
	require.NoError(t, repo.ReplaceForMaster(1, rows))
	rows2, err := repo.ListForMaster(1)
	require.NoError(t, err)
	require.Len(t, rows2, 2)
	assert.Equal(t, rows[0].StartTime, rows2[0].StartTime)
	assert.Equal(t, rows[1].EndTime, rows2[1].EndTime)

	// A second replace with fewer days drops the removed ones.
	require.NoError(t, repo.ReplaceForMaster(1, []models.Schedule{
		{DayOfWeek: 5, StartTime: "11:00", EndTime: "15:00"},
	}))
	rows3, err := repo.ListForMaster(1)
	require.NoError(t, err)
	require.Len(t, rows3, 1)
	assert.Equal(t, 5, rows3[0].DayOfWeek)
}

func TestScheduleRepository_GetForMasterDay_AbsentDayErrors(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewScheduleRepository(db)
	require.NoError(t, repo.ReplaceForMaster(1, []models.Schedule{
		{DayOfWeek: 2, StartTime: "09:00", EndTime: "17:00"},
	}))

	_, err := repo.GetForMasterDay(1, 7)
	assert.Error(t, err)

	got, err := repo.GetForMasterDay(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "09:00", got.StartTime)
}

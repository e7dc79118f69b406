package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-booking-api/internal/apperr"
	"salon-booking-api/internal/models"
	"salon-booking-api/internal/repositories"
)

func TestClientRepository_UniqueByTenantAndExternalUserID(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewClientRepository(db)

	require.NoError(t, repo.Create(&models.Client{TenantID: 1, ExternalUserID: 42, Name: "Nina"}))

	got, err := repo.GetByExternalUserID(1, 42)
	require.NoError(t, err)
	assert.Equal(t, "Nina", got.Name)

	_, err = repo.GetByExternalUserID(2, 42)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestClientRepository_NextAdminSyntheticExternalUserID(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewClientRepository(db)

	first, err := repo.NextAdminSyntheticExternalUserID(1)
	require.NoError(t, err)
	assert.EqualValues(t, -1, first)

	require.NoError(t, repo.Create(&models.Client{TenantID: 1, ExternalUserID: first, Name: "Walk-in"}))

	second, err := repo.NextAdminSyntheticExternalUserID(1)
	require.NoError(t, err)
	assert.EqualValues(t, -2, second)

	// A different tenant's synthetic ids don't collide.
	firstForOtherTenant, err := repo.NextAdminSyntheticExternalUserID(2)
	require.NoError(t, err)
	assert.EqualValues(t, -1, firstForOtherTenant)
}

package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-booking-api/internal/apperr"
	"salon-booking-api/internal/config"
	"salon-booking-api/internal/models"
	"salon-booking-api/internal/repositories"
	"salon-booking-api/internal/services"
)

func TestTenantService_ResolveByToken(t *testing.T) {
	db := newCatalogTestDB(t)
	repo := repositories.NewTenantRepository(db)
	svc := services.NewTenantService(repo, &config.Config{})

	require.NoError(t, repo.Create(&models.Tenant{
		LoginName: "demo", Title: "Demo Salon", BotToken: "tok-123", AdminPassword: "hash", IsActive: true,
	}))

	got, err := svc.ResolveByToken("tok-123")
	require.NoError(t, err)
	assert.Equal(t, "demo", got.LoginName)

	_, err = svc.ResolveByToken("")
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	_, err = svc.ResolveByToken("wrong-token")
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestTenantService_ResolveByTokenRejectsDisabledTenant(t *testing.T) {
	db := newCatalogTestDB(t)
	repo := repositories.NewTenantRepository(db)
	svc := services.NewTenantService(repo, &config.Config{})

	require.NoError(t, repo.Create(&models.Tenant{
		LoginName: "demo", Title: "Demo Salon", BotToken: "tok-123", AdminPassword: "hash", IsActive: false,
	}))

	_, err := svc.ResolveByToken("tok-123")
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestTenantService_ResolveByBasicAuth(t *testing.T) {
	db := newCatalogTestDB(t)
	repo := repositories.NewTenantRepository(db)
	svc := services.NewTenantService(repo, &config.Config{})

	hash, err := services.HashPassword("s3cret")
	require.NoError(t, err)
	require.NoError(t, repo.Create(&models.Tenant{
		LoginName: "demo", Title: "Demo Salon", BotToken: "tok-123", AdminPassword: hash, IsActive: true,
	}))

	got, err := svc.ResolveByBasicAuth("demo", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "demo", got.LoginName)

	_, err = svc.ResolveByBasicAuth("demo", "wrong-password")
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	_, err = svc.ResolveByBasicAuth("nobody", "whatever")
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestTenantService_ResolveByBasicAuthRejectsDisabledTenant(t *testing.T) {
	db := newCatalogTestDB(t)
	repo := repositories.NewTenantRepository(db)
	svc := services.NewTenantService(repo, &config.Config{})

	hash, err := services.HashPassword("s3cret")
	require.NoError(t, err)
	require.NoError(t, repo.Create(&models.Tenant{
		LoginName: "demo", Title: "Demo Salon", BotToken: "tok-123", AdminPassword: hash, IsActive: false,
	}))

	_, err = svc.ResolveByBasicAuth("demo", "s3cret")
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestTenantService_ResolveSuperAdmin(t *testing.T) {
	svc := services.NewTenantService(nil, &config.Config{
		SuperAdminLogin:    "root",
		SuperAdminPassword: "toor",
	})

	assert.True(t, svc.ResolveSuperAdmin("root", "toor"))
	assert.False(t, svc.ResolveSuperAdmin("root", "wrong"))
	assert.False(t, svc.ResolveSuperAdmin("nobody", "toor"))
}

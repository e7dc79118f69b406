package services

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"salon-booking-api/internal/apperr"
	"salon-booking-api/internal/config"
	"salon-booking-api/internal/models"
	"salon-booking-api/internal/repositories/interfaces"
)

// TenantService is the tenant registry (C2): it resolves which tenant an
// incoming request belongs to across the three auth zones described in
// §4.1, always comparing secrets in constant time.
type TenantService struct {
	repo interfaces.TenantRepository
	cfg  *config.Config
}

func NewTenantService(repo interfaces.TenantRepository, cfg *config.Config) *TenantService {
	return &TenantService{repo: repo, cfg: cfg}
}

// ResolveByToken resolves the tenant owning a bot token, used by the
// tenant-facing bot API (§6.1's X-Salon-Token zone).
func (s *TenantService) ResolveByToken(token string) (*models.Tenant, error) {
	if token == "" {
		return nil, apperr.Unauthorized("missing bot token")
	}

	tenant, err := s.repo.GetByBotToken(token)
	if err != nil {
		return nil, apperr.Unauthorized("invalid bot token")
	}

	if !constantTimeEqual(tenant.BotToken, token) {
		return nil, apperr.Unauthorized("invalid bot token")
	}
	if !tenant.IsActive {
		return nil, apperr.Forbidden("tenant is disabled")
	}

	return tenant, nil
}

// ResolveByBasicAuth resolves the tenant owning a (login, password) HTTP
// Basic credential pair, used by the tenant admin API.
func (s *TenantService) ResolveByBasicAuth(login, password string) (*models.Tenant, error) {
	tenant, err := s.repo.GetByLoginName(login)
	if err != nil {
		// Always run the bcrypt compare, even on a missing login, so a
		// login-existence timing side-channel isn't introduced.
		bcrypt.CompareHashAndPassword([]byte("$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinva"), []byte(password))
		return nil, apperr.Unauthorized("invalid credentials")
	}

	passwordOK := bcrypt.CompareHashAndPassword([]byte(tenant.AdminPassword), []byte(password)) == nil
	if !passwordOK {
		return nil, apperr.Unauthorized("invalid credentials")
	}
	if !tenant.IsActive {
		return nil, apperr.Forbidden("tenant is disabled")
	}

	return tenant, nil
}

// ResolveSuperAdmin checks the single fixed super-admin identity for this
// deployment (§4.1).
func (s *TenantService) ResolveSuperAdmin(login, password string) bool {
	return constantTimeEqual(login, s.cfg.SuperAdminLogin) &&
		constantTimeEqual(password, s.cfg.SuperAdminPassword)
}

func constantTimeEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// HashPassword bcrypt-hashes an admin password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperr.Internal(err)
	}
	return string(hash), nil
}

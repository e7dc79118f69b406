package handlers

import (
	"github.com/gin-gonic/gin"

	"salon-booking-api/internal/apperr"
	"salon-booking-api/internal/dto"
	"salon-booking-api/internal/models"
	"salon-booking-api/internal/repositories/interfaces"
	"salon-booking-api/internal/services"
	"salon-booking-api/internal/utils"
)

// TenantHandler is the super-admin tenant-registry API (§6.1): salon
// provisioning and updates, gated by the fixed super-admin Basic-auth
// credentials.
type TenantHandler struct {
	tenants interfaces.TenantRepository
}

func NewTenantHandler(tenants interfaces.TenantRepository) *TenantHandler {
	return &TenantHandler{tenants: tenants}
}

func (h *TenantHandler) ListTenants(c *gin.Context) {
	list, err := h.tenants.List()
	if err != nil {
		utils.Fail(c, apperr.Internal(err))
		return
	}
	utils.Success(c, "salons retrieved", dto.ToTenantResponses(list))
}

// CreateTenant implements POST /superadmin/salons (form-encoded).
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req dto.CreateTenantRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.Fail(c, apperr.Validation(err.Error()))
		return
	}

	hash, err := services.HashPassword(req.Password)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	tenant := &models.Tenant{
		LoginName:     req.LoginName,
		Title:         req.Title,
		BotToken:      req.BotToken,
		AdminPassword: hash,
		IsActive:      true,
	}
	if err := h.tenants.Create(tenant); err != nil {
		utils.Fail(c, apperr.Internal(err))
		return
	}
	utils.Created(c, "salon created", dto.CreateTenantResponse{
		TenantResponse: dto.ToTenantResponse(tenant),
		BotToken:       tenant.BotToken,
	})
}

// UpdateTenant implements PUT /superadmin/salons/{id} (JSON).
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		utils.Fail(c, err)
		return
	}
	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, apperr.Validation(err.Error()))
		return
	}

	tenant, err := h.tenants.GetByID(id)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	if req.Title != "" {
		tenant.Title = req.Title
	}
	if req.Password != "" {
		hash, err := services.HashPassword(req.Password)
		if err != nil {
			utils.Fail(c, err)
			return
		}
		tenant.AdminPassword = hash
	}
	if req.IsActive != nil {
		tenant.IsActive = *req.IsActive
	}
	if err := h.tenants.Update(tenant); err != nil {
		utils.Fail(c, apperr.Internal(err))
		return
	}
	utils.Success(c, "salon updated", dto.ToTenantResponse(tenant))
}

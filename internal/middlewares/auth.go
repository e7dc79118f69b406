package middlewares

import (
	"github.com/gin-gonic/gin"

	"salon-booking-api/internal/apperr"
	"salon-booking-api/internal/services"
	"salon-booking-api/internal/utils"
)

const tenantContextKey = "tenant"

// TenantFromContext retrieves the tenant resolved by one of this file's
// auth middlewares, for handlers downstream of any of the three auth
// zones in §4.1.
func TenantFromContext(c *gin.Context) int {
	if v, ok := c.Get(tenantContextKey); ok {
		if id, ok := v.(int); ok {
			return id
		}
	}
	return 0
}

// TenantTokenAuth resolves the tenant from a bot token carried in a
// configurable header (default X-Salon-Token), for the bot-facing API.
func TenantTokenAuth(tenantService *services.TenantService, headerName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(headerName)
		tenant, err := tenantService.ResolveByToken(token)
		if err != nil {
			utils.Fail(c, err)
			c.Abort()
			return
		}
		c.Set(tenantContextKey, tenant.ID)
		c.Next()
	}
}

// TenantBasicAuth resolves the tenant from HTTP Basic credentials, for
// the tenant admin API.
func TenantBasicAuth(tenantService *services.TenantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		login, password, ok := c.Request.BasicAuth()
		if !ok {
			challengeBasicAuth(c, "salon-admin")
			return
		}
		tenant, err := tenantService.ResolveByBasicAuth(login, password)
		if err != nil {
			if apperr.KindOf(err) == apperr.KindForbidden {
				utils.Fail(c, err)
				c.Abort()
				return
			}
			challengeBasicAuth(c, "salon-admin")
			return
		}
		c.Set(tenantContextKey, tenant.ID)
		c.Next()
	}
}

// SuperAdminBasicAuth checks the single fixed super-admin identity for
// this deployment, for the tenant-registry API.
func SuperAdminBasicAuth(tenantService *services.TenantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		login, password, ok := c.Request.BasicAuth()
		if !ok || !tenantService.ResolveSuperAdmin(login, password) {
			challengeBasicAuth(c, "salon-super-admin")
			return
		}
		c.Next()
	}
}

func challengeBasicAuth(c *gin.Context, realm string) {
	c.Header("WWW-Authenticate", `Basic realm="`+realm+`"`)
	utils.FailWithStatus(c, 401, "invalid credentials")
	c.Abort()
}

package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/loan-reschedule-api/internal/models"
	appErrors "github.com/noah-isme/loan-reschedule-api/pkg/errors"
	"github.com/noah-isme/loan-reschedule-api/pkg/response"
)

// RescheduleReaders may read reschedule requests.
var RescheduleReaders = []models.UserRole{
	models.RoleSuperAdmin,
	models.RoleAdmin,
	models.RoleLoanOfficer,
	models.RoleAuditor,
}

// RescheduleExporters may export reschedule request listings.
var RescheduleExporters = []models.UserRole{
	models.RoleSuperAdmin,
	models.RoleAdmin,
	models.RoleAuditor,
}

// RequireRoles rejects requests whose token role is not in roles. It must run after JWT.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		value, exists := c.Get(ContextUserKey)
		if !exists {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		claims, ok := value.(*models.JWTClaims)
		if !ok || claims == nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		if _, ok := allowed[claims.Role]; !ok {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "talent-engine-backend/lib/utils/auth-utils"
	"talent-engine-backend/models"
	apimodels "talent-engine-backend/models/api"
)

func GetUserTenant(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if tenant, exist := claims["tenant"]; exist {
		if stringTenant, ok := tenant.(string); ok {
			return stringTenant
		}
	}
	return ""
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if stringSub, ok := sub.(string); ok {
			return stringSub
		}
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

func TenantAdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != models.TenantAdminRole {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not permitted"))
		}
		return ctx.Next()
	}
}

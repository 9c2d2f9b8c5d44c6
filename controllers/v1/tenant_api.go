package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"talent-engine-backend/controllers"
	tenanthandler "talent-engine-backend/lib/tenant"
	"talent-engine-backend/middleware"
	apimodels "talent-engine-backend/models/api"
	tenantapimodels "talent-engine-backend/models/api/tenant"
)

type tenantApiController struct {
	controllers.BaseAPIController
}

func InitTenantApiRouters(app *fiber.App) {
	controller := tenantApiController{}
	app.Get("config", controller.getConfig)
	app.Patch("config", middleware.TenantAdminRequired(), controller.updateConfig)
	app.Get("modules", controller.listModules)
	app.Get("tenants", controller.listTenants)
}

// @Summary Email config
// @Tags Tenant
// @Description Mail server settings of the caller's tenant
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=tenantapimodels.EmailConfigView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/tenant/config [get]
func (c *tenantApiController) getConfig(ctx *fiber.Ctx) error {
	tenantID := middleware.GetUserTenant(ctx)
	resp, err := tenanthandler.Instance.GetEmailConfig(tenantID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "email config lookup failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update email config
// @Tags Tenant
// @Description Update mail server settings, tenant admin only
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 tenantapimodels.EmailConfigData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/tenant/config [patch]
func (c *tenantApiController) updateConfig(ctx *fiber.Ctx) error {
	var payload tenantapimodels.EmailConfigData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	err := tenanthandler.Instance.UpdateEmailConfig(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "email config update failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Module catalog
// @Tags Tenant
// @Description Modules a user can be granted access to
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]tenantapimodels.ModuleView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/tenant/modules [get]
func (c *tenantApiController) listModules(ctx *fiber.Ctx) error {
	resp, err := tenanthandler.Instance.ListModules()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "module list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Tenant list
// @Tags Tenant
// @Description Registered tenants with their domains
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]tenantapimodels.TenantView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/tenant/tenants [get]
func (c *tenantApiController) listTenants(ctx *fiber.Ctx) error {
	resp, err := tenanthandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "tenant list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"talent-engine-backend/controllers"
	schedulehandler "talent-engine-backend/lib/schedule"
	"talent-engine-backend/middleware"
	apimodels "talent-engine-backend/models/api"
	scheduleapimodels "talent-engine-backend/models/api/schedule"
)

type scheduleApiController struct {
	controllers.BaseAPIController
}

func InitScheduleApiRouters(app *fiber.App) {
	controller := scheduleApiController{}
	app.Route("schedules", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Put("complete", controller.complete)
			idRoute.Put("cancel", controller.cancel)
		})
	})
}

// @Summary Create schedule
// @Tags Schedule
// @Description Schedule an interview, the candidate is notified by email when the tenant mail server is configured
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 scheduleapimodels.ScheduleData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine/schedules [post]
func (c *scheduleApiController) create(ctx *fiber.Ctx) error {
	var payload scheduleapimodels.ScheduleData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	id, err := schedulehandler.Instance.Create(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "schedule create failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Schedule list
// @Tags Schedule
// @Description Filtered paginated interview schedule list
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 scheduleapimodels.ScheduleFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]scheduleapimodels.ScheduleView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine/schedules/list [post]
func (c *scheduleApiController) list(ctx *fiber.Ctx) error {
	var payload scheduleapimodels.ScheduleFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	list, rowCount, err := schedulehandler.Instance.List(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "schedule list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Schedule by id
// @Tags Schedule
// @Description Schedule by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=scheduleapimodels.ScheduleView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine/schedules/{id} [get]
func (c *scheduleApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	resp, err := schedulehandler.Instance.GetByID(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "schedule lookup failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update schedule
// @Tags Schedule
// @Description Update an interview schedule, only scheduled items are editable
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 scheduleapimodels.ScheduleData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine/schedules/{id} [put]
func (c *scheduleApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload scheduleapimodels.ScheduleData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	err = schedulehandler.Instance.Update(tenantID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "schedule update failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Complete schedule
// @Tags Schedule
// @Description Mark an interview as completed
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine/schedules/{id}/complete [put]
func (c *scheduleApiController) complete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	err = schedulehandler.Instance.Complete(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "schedule complete failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Cancel schedule
// @Tags Schedule
// @Description Cancel an interview with a reason, the candidate is notified
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 scheduleapimodels.CancelData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine/schedules/{id}/cancel [put]
func (c *scheduleApiController) cancel(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload scheduleapimodels.CancelData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	err = schedulehandler.Instance.Cancel(tenantID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "schedule cancel failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete schedule
// @Tags Schedule
// @Description Delete an interview schedule
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine/schedules/{id} [delete]
func (c *scheduleApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	err = schedulehandler.Instance.Delete(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "schedule delete failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"talent-engine-backend/controllers"
	applicationhandler "talent-engine-backend/lib/application"
	xlsexport "talent-engine-backend/lib/export/xls"
	"talent-engine-backend/middleware"
	apimodels "talent-engine-backend/models/api"
	applicationapimodels "talent-engine-backend/models/api/application"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("applications", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("bulk-delete", controller.bulkDelete)
		router.Post("deleted", controller.listDeleted)
		router.Post("export", controller.exportXLSX)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("restore", controller.restore)
			idRoute.Delete("purge", controller.purge)
		})
	})
}

// @Summary Application list
// @Tags Application
// @Description Filtered paginated job application list
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.ApplicationFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine-job-applications/applications/list [post]
func (c *applicationApiController) list(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ApplicationFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	list, rowCount, err := applicationhandler.Instance.List(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "application list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Application by id
// @Tags Application
// @Description Application by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine-job-applications/applications/{id} [get]
func (c *applicationApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	resp, err := applicationhandler.Instance.GetByID(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "application lookup failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Bulk delete
// @Tags Application
// @Description Move the selected applications to the recycle bin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 apimodels.IDsRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine-job-applications/applications/bulk-delete [post]
func (c *applicationApiController) bulkDelete(ctx *fiber.Ctx) error {
	var payload apimodels.IDsRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	err := applicationhandler.Instance.BulkDelete(tenantID, payload.IDs)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "application bulk delete failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Recycle bin
// @Tags Application
// @Description Paginated list of soft deleted applications
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 apimodels.Pagination	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine-job-applications/applications/deleted [post]
func (c *applicationApiController) listDeleted(ctx *fiber.Ctx) error {
	var payload apimodels.Pagination
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	list, rowCount, err := applicationhandler.Instance.ListDeleted(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "recycle bin list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Restore application
// @Tags Application
// @Description Restore an application from the recycle bin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine-job-applications/applications/{id}/restore [put]
func (c *applicationApiController) restore(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	err = applicationhandler.Instance.Restore(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "application restore failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Purge application
// @Tags Application
// @Description Permanently delete an application from the recycle bin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine-job-applications/applications/{id}/purge [delete]
func (c *applicationApiController) purge(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	err = applicationhandler.Instance.Purge(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "application purge failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Export to xlsx
// @Tags Application
// @Description Export the filtered application list as an xlsx file
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 applicationapimodels.ApplicationFilter	true	"request filter body"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine-job-applications/applications/export [post]
func (c *applicationApiController) exportXLSX(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ApplicationFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	recList, err := applicationhandler.Instance.ListRecords(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "application export failed")
	}
	buf, err := xlsexport.Instance.ExportApplicationList(recList)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "application export failed")
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="applications.xlsx"`)
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

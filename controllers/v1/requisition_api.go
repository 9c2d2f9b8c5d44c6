package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"talent-engine-backend/controllers"
	pdfexport "talent-engine-backend/lib/export/pdf"
	xlsexport "talent-engine-backend/lib/export/xls"
	filestorage "talent-engine-backend/lib/file-storage"
	requisitionhandler "talent-engine-backend/lib/requisition"
	"talent-engine-backend/middleware"
	apimodels "talent-engine-backend/models/api"
	requisitionapimodels "talent-engine-backend/models/api/requisition"
)

type requisitionApiController struct {
	controllers.BaseAPIController
}

func InitRequisitionApiRouters(app *fiber.App) {
	controller := requisitionApiController{}
	app.Route("requisitions", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Post("bulk-delete", controller.bulkDelete)
		router.Post("deleted", controller.listDeleted)
		router.Post("export", controller.exportXLSX)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Delete("", controller.delete)
			idRoute.Put("accept", controller.accept)
			idRoute.Put("reject", controller.reject)
			idRoute.Put("draft", controller.saveDraft)
			idRoute.Patch("publish", controller.publish)
			idRoute.Post("banner", controller.uploadBanner)
			idRoute.Put("restore", controller.restore)
			idRoute.Delete("purge", controller.purge)
			idRoute.Get("summary", controller.exportPDF)
		})
	})
}

// @Summary Create requisition
// @Tags Requisition
// @Description Create a pending job requisition
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requisitionapimodels.RequisitionCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine/requisitions [post]
func (c *requisitionApiController) create(ctx *fiber.Ctx) error {
	var payload requisitionapimodels.RequisitionCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	userID := middleware.GetUserID(ctx)
	id, err := requisitionhandler.Instance.Create(tenantID, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "requisition create failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Requisition list
// @Tags Requisition
// @Description Filtered paginated requisition list
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requisitionapimodels.RequisitionFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]requisitionapimodels.RequisitionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine/requisitions/list [post]
func (c *requisitionApiController) list(ctx *fiber.Ctx) error {
	var payload requisitionapimodels.RequisitionFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	list, rowCount, err := requisitionhandler.Instance.List(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "requisition list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Requisition by id
// @Tags Requisition
// @Description Requisition by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=requisitionapimodels.RequisitionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine/requisitions/{id} [get]
func (c *requisitionApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	resp, err := requisitionhandler.Instance.GetByID(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "requisition lookup failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Accept requisition
// @Tags Requisition
// @Description Move a pending requisition to open
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine/requisitions/{id}/accept [put]
func (c *requisitionApiController) accept(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	err = requisitionhandler.Instance.Accept(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "requisition accept failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Reject requisition
// @Tags Requisition
// @Description Reject a pending requisition, the record stays read only
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine/requisitions/{id}/reject [put]
func (c *requisitionApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	err = requisitionhandler.Instance.Reject(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "requisition reject failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Save advert draft
// @Tags Requisition
// @Description Save advert draft fields of an open requisition
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requisitionapimodels.AdvertDraft	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine/requisitions/{id}/draft [put]
func (c *requisitionApiController) saveDraft(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload requisitionapimodels.AdvertDraft
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	err = requisitionhandler.Instance.SaveDraft(tenantID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "advert draft save failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Publish advert
// @Tags Requisition
// @Description Validate the advert and flip publish status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requisitionapimodels.PublishData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine/requisitions/{id}/publish [patch]
func (c *requisitionApiController) publish(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload requisitionapimodels.PublishData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	err = requisitionhandler.Instance.Publish(tenantID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "advert publish failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Upload advert banner
// @Tags Requisition
// @Description Upload an advert banner image
// @Accept  multipart/form-data
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file				formData	file	true	"banner image"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine/requisitions/{id}/banner [post]
func (c *requisitionApiController) uploadBanner(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("banner file is not attached"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("banner file is not readable"))
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("banner file is not readable"))
	}
	tenantID := middleware.GetUserTenant(ctx)
	key, err := filestorage.Instance.UploadAdvertBanner(ctx.UserContext(), tenantID, id, body, fileHeader.Filename)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "banner upload failed")
	}
	err = requisitionhandler.Instance.SetBanner(tenantID, id, key)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "banner save failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(key))
}

// @Summary Delete requisition
// @Tags Requisition
// @Description Move a requisition to the recycle bin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine/requisitions/{id} [delete]
func (c *requisitionApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	err = requisitionhandler.Instance.Delete(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "requisition delete failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Bulk delete
// @Tags Requisition
// @Description Move the selected requisitions to the recycle bin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 apimodels.IDsRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine/requisitions/bulk-delete [post]
func (c *requisitionApiController) bulkDelete(ctx *fiber.Ctx) error {
	var payload apimodels.IDsRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	err := requisitionhandler.Instance.BulkDelete(tenantID, payload.IDs)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "requisition bulk delete failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Recycle bin
// @Tags Requisition
// @Description Paginated list of soft deleted requisitions
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 apimodels.Pagination	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]requisitionapimodels.RequisitionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine/requisitions/deleted [post]
func (c *requisitionApiController) listDeleted(ctx *fiber.Ctx) error {
	var payload apimodels.Pagination
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	list, rowCount, err := requisitionhandler.Instance.ListDeleted(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "recycle bin list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Restore requisition
// @Tags Requisition
// @Description Restore a requisition from the recycle bin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine/requisitions/{id}/restore [put]
func (c *requisitionApiController) restore(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	err = requisitionhandler.Instance.Restore(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "requisition restore failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Purge requisition
// @Tags Requisition
// @Description Permanently delete a requisition from the recycle bin
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine/requisitions/{id}/purge [delete]
func (c *requisitionApiController) purge(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	err = requisitionhandler.Instance.Purge(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "requisition purge failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Export to xlsx
// @Tags Requisition
// @Description Export the filtered requisition list as an xlsx file
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requisitionapimodels.RequisitionFilter	true	"request filter body"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine/requisitions/export [post]
func (c *requisitionApiController) exportXLSX(ctx *fiber.Ctx) error {
	var payload requisitionapimodels.RequisitionFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	recList, err := requisitionhandler.Instance.ListRecords(tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "requisition export failed")
	}
	buf, err := xlsexport.Instance.ExportRequisitionList(recList)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "requisition export failed")
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="requisitions.xlsx"`)
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Requisition pdf summary
// @Tags Requisition
// @Description Printable pdf summary of a requisition and its advert
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/talent-engine/requisitions/{id}/summary [get]
func (c *requisitionApiController) exportPDF(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	rec, err := requisitionhandler.Instance.GetRecord(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "requisition lookup failed")
	}
	body, err := pdfexport.GenerateRequisitionSummary(rec)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "summary generation failed")
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="requisition.pdf"`)
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	return ctx.Status(fiber.StatusOK).Send(body)
}

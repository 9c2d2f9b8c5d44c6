package apiv1

import (
	"fmt"
	"io"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"talent-engine-backend/controllers"
	usershandler "talent-engine-backend/lib/users"
	"talent-engine-backend/middleware"
	"talent-engine-backend/models"
	apimodels "talent-engine-backend/models/api"
	userapimodels "talent-engine-backend/models/api/user"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app *fiber.App) {
	controller := userApiController{}
	app.Post("create", middleware.TenantAdminRequired(), controller.create)
	app.Post("list", controller.list)
	app.Route(":id", func(idRoute fiber.Router) {
		idRoute.Get("", controller.get)
		idRoute.Put("", middleware.TenantAdminRequired(), controller.update)
		idRoute.Delete("", middleware.TenantAdminRequired(), controller.delete)
	})
}

// @Summary Create user
// @Tags User
// @Description Create a tenant user from the flattened multipart wizard form
// @Accept  multipart/form-data
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   account_type		formData	string	true	"Staff or Client"
// @Param   first_name			formData	string	true	"first name"
// @Param   last_name			formData	string	true	"last name"
// @Param   profile[phone]		formData	string	false	"phone, required for Staff"
// @Param   profile[address]	formData	string	false	"address"
// @Param   profile[department]	formData	string	false	"department, required for Staff"
// @Param   profile[job_role]	formData	string	false	"job role, required for Staff"
// @Param   profile[employee_code]	formData	string	false	"employee code"
// @Param   modules				formData	string	true	"module id, repeated per module"
// @Param   email				formData	string	true	"email"
// @Param   username			formData	string	true	"username"
// @Param   password			formData	string	true	"password, 8 characters minimum"
// @Param   is_admin			formData	bool	false	"grant tenant admin role"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/user/create [post]
func (c *userApiController) create(ctx *fiber.Ctx) error {
	payload, err := c.parseCreateForm(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	id, err := usershandler.Instance.CreateUser(ctx.UserContext(), tenantID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "user create failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// parseCreateForm reads the wizard submission: flattened profile[...] keys,
// one modules value per selected module and documents[i][title] paired with
// an uploaded documents[i][file].
func (c *userApiController) parseCreateForm(ctx *fiber.Ctx) (userapimodels.CreateUserData, error) {
	form, err := ctx.MultipartForm()
	if err != nil {
		return userapimodels.CreateUserData{}, errors.New("could not read request data")
	}
	formValue := func(name string) string {
		values := form.Value[name]
		if len(values) == 0 {
			return ""
		}
		return values[0]
	}
	isAdmin, _ := strconv.ParseBool(formValue("is_admin"))
	payload := userapimodels.CreateUserData{
		AccountType: models.AccountType(formValue("account_type")),
		FirstName:   formValue("first_name"),
		LastName:    formValue("last_name"),
		Profile: userapimodels.ProfileData{
			Phone:        formValue("profile[phone]"),
			Address:      formValue("profile[address]"),
			Department:   formValue("profile[department]"),
			JobRole:      formValue("profile[job_role]"),
			EmployeeCode: formValue("profile[employee_code]"),
		},
		ModuleIDs: form.Value["modules"],
		Email:     formValue("email"),
		Username:  formValue("username"),
		Password:  formValue("password"),
		IsAdmin:   isAdmin,
	}
	for idx := 0; ; idx++ {
		title := formValue(fmt.Sprintf("documents[%d][title]", idx))
		files := form.File[fmt.Sprintf("documents[%d][file]", idx)]
		if title == "" && len(files) == 0 {
			break
		}
		if title == "" || len(files) == 0 {
			return userapimodels.CreateUserData{}, errors.Errorf("document %d must have both a title and a file", idx)
		}
		body, fileErr := readFormFile(files[0])
		if fileErr != nil {
			return userapimodels.CreateUserData{}, fileErr
		}
		payload.Documents = append(payload.Documents, userapimodels.DocumentData{
			Title:    title,
			FileName: files[0].Filename,
			File:     body,
		})
	}
	return payload, nil
}

func readFormFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Errorf("uploaded file %v is not readable", fileHeader.Filename)
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Errorf("uploaded file %v is not readable", fileHeader.Filename)
	}
	return body, nil
}

// @Summary User list
// @Tags User
// @Description Paginated tenant user list
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 apimodels.Pagination	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]userapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/user/list [post]
func (c *userApiController) list(ctx *fiber.Ctx) error {
	var payload apimodels.Pagination
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	page, limit := payload.GetPage()
	list, rowCount, err := usershandler.Instance.List(tenantID, page, limit)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "user list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary User by id
// @Tags User
// @Description User by id
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/user/{id} [get]
func (c *userApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	resp, err := usershandler.Instance.GetByID(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "user lookup failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update user
// @Tags User
// @Description Update profile, role and module access, tenant admin only
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 userapimodels.UpdateUserData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/user/{id} [put]
func (c *userApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload userapimodels.UpdateUserData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	err = usershandler.Instance.UpdateUser(tenantID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "user update failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete user
// @Tags User
// @Description Delete a tenant user, tenant admin only
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/user/{id} [delete]
func (c *userApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tenantID := middleware.GetUserTenant(ctx)
	err = usershandler.Instance.DeleteUser(tenantID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "user delete failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

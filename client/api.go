package client

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	apimodels "talent-engine-backend/models/api"
	applicationapimodels "talent-engine-backend/models/api/application"
	authapimodels "talent-engine-backend/models/api/auth"
	requisitionapimodels "talent-engine-backend/models/api/requisition"
	scheduleapimodels "talent-engine-backend/models/api/schedule"
	tenantapimodels "talent-engine-backend/models/api/tenant"
	userapimodels "talent-engine-backend/models/api/user"
)

// Login signs in and installs the returned token pair on the session.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp authapimodels.JWTResponse
	_, err := c.do(ctx, http.MethodPost, "/api/token/login/", authapimodels.LoginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return err
	}
	c.session.SetTokens(resp.Access, resp.Refresh)
	return nil
}

// --- requisitions ---

func (c *Client) CreateRequisition(ctx context.Context, data requisitionapimodels.RequisitionCreateData) (id string, err error) {
	_, err = c.do(ctx, http.MethodPost, "/api/talent-engine/requisitions/", data, &id)
	return id, err
}

func (c *Client) GetRequisition(ctx context.Context, id string) (item requisitionapimodels.RequisitionView, err error) {
	_, err = c.do(ctx, http.MethodGet, "/api/talent-engine/requisitions/"+id, nil, &item)
	return item, err
}

func (c *Client) ListRequisitions(ctx context.Context, filter requisitionapimodels.RequisitionFilter) (list []requisitionapimodels.RequisitionView, rowCount int64, err error) {
	rowCount, err = c.do(ctx, http.MethodPost, "/api/talent-engine/requisitions/list", filter, &list)
	return list, rowCount, err
}

func (c *Client) AcceptRequisition(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodPut, "/api/talent-engine/requisitions/"+id+"/accept", nil, nil)
	return err
}

func (c *Client) RejectRequisition(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodPut, "/api/talent-engine/requisitions/"+id+"/reject", nil, nil)
	return err
}

func (c *Client) SaveAdvertDraft(ctx context.Context, id string, draft requisitionapimodels.AdvertDraft) error {
	_, err := c.do(ctx, http.MethodPut, "/api/talent-engine/requisitions/"+id+"/draft", draft, nil)
	return err
}

func (c *Client) PublishAdvert(ctx context.Context, id string, data requisitionapimodels.PublishData) error {
	_, err := c.do(ctx, http.MethodPatch, "/api/talent-engine/requisitions/"+id+"/publish", data, nil)
	return err
}

func (c *Client) DeleteRequisition(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/talent-engine/requisitions/"+id, nil, nil)
	return err
}

func (c *Client) BulkDeleteRequisitions(ctx context.Context, ids []string) error {
	_, err := c.do(ctx, http.MethodPost, "/api/talent-engine/requisitions/bulk-delete", apimodels.IDsRequest{IDs: ids}, nil)
	return err
}

func (c *Client) ListDeletedRequisitions(ctx context.Context, pagination apimodels.Pagination) (list []requisitionapimodels.RequisitionView, rowCount int64, err error) {
	rowCount, err = c.do(ctx, http.MethodPost, "/api/talent-engine/requisitions/deleted", pagination, &list)
	return list, rowCount, err
}

func (c *Client) RestoreRequisition(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodPut, "/api/talent-engine/requisitions/"+id+"/restore", nil, nil)
	return err
}

func (c *Client) PurgeRequisition(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/talent-engine/requisitions/"+id+"/purge", nil, nil)
	return err
}

// --- job applications ---

func (c *Client) ListApplications(ctx context.Context, filter applicationapimodels.ApplicationFilter) (list []applicationapimodels.ApplicationView, rowCount int64, err error) {
	rowCount, err = c.do(ctx, http.MethodPost, "/api/talent-engine-job-applications/applications/list", filter, &list)
	return list, rowCount, err
}

func (c *Client) BulkDeleteApplications(ctx context.Context, ids []string) error {
	_, err := c.do(ctx, http.MethodPost, "/api/talent-engine-job-applications/applications/bulk-delete", apimodels.IDsRequest{IDs: ids}, nil)
	return err
}

func (c *Client) ListDeletedApplications(ctx context.Context, pagination apimodels.Pagination) (list []applicationapimodels.ApplicationView, rowCount int64, err error) {
	rowCount, err = c.do(ctx, http.MethodPost, "/api/talent-engine-job-applications/applications/deleted", pagination, &list)
	return list, rowCount, err
}

func (c *Client) RestoreApplication(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodPut, "/api/talent-engine-job-applications/applications/"+id+"/restore", nil, nil)
	return err
}

func (c *Client) PurgeApplication(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/talent-engine-job-applications/applications/"+id+"/purge", nil, nil)
	return err
}

// --- interview schedules ---

func (c *Client) CreateSchedule(ctx context.Context, data scheduleapimodels.ScheduleData) (id string, err error) {
	_, err = c.do(ctx, http.MethodPost, "/api/talent-engine/schedules/", data, &id)
	return id, err
}

func (c *Client) ListSchedules(ctx context.Context, filter scheduleapimodels.ScheduleFilter) (list []scheduleapimodels.ScheduleView, rowCount int64, err error) {
	rowCount, err = c.do(ctx, http.MethodPost, "/api/talent-engine/schedules/list", filter, &list)
	return list, rowCount, err
}

func (c *Client) UpdateSchedule(ctx context.Context, id string, data scheduleapimodels.ScheduleData) error {
	_, err := c.do(ctx, http.MethodPut, "/api/talent-engine/schedules/"+id, data, nil)
	return err
}

func (c *Client) CompleteSchedule(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodPut, "/api/talent-engine/schedules/"+id+"/complete", nil, nil)
	return err
}

func (c *Client) CancelSchedule(ctx context.Context, id string, reason string) error {
	_, err := c.do(ctx, http.MethodPut, "/api/talent-engine/schedules/"+id+"/cancel", scheduleapimodels.CancelData{Reason: reason}, nil)
	return err
}

func (c *Client) DeleteSchedule(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/talent-engine/schedules/"+id, nil, nil)
	return err
}

// --- tenant ---

func (c *Client) GetEmailConfig(ctx context.Context) (item tenantapimodels.EmailConfigView, err error) {
	_, err = c.do(ctx, http.MethodGet, "/api/tenant/config/", nil, &item)
	return item, err
}

func (c *Client) UpdateEmailConfig(ctx context.Context, data tenantapimodels.EmailConfigData) error {
	_, err := c.do(ctx, http.MethodPatch, "/api/tenant/config/", data, nil)
	return err
}

func (c *Client) ListModules(ctx context.Context) (list []tenantapimodels.ModuleView, err error) {
	_, err = c.do(ctx, http.MethodGet, "/api/tenant/modules/", nil, &list)
	return list, err
}

func (c *Client) ListTenants(ctx context.Context) (list []tenantapimodels.TenantView, err error) {
	_, err = c.do(ctx, http.MethodGet, "/api/tenant/tenants/", nil, &list)
	return list, err
}

// --- users ---

// CreateUser submits the user creation wizard as a flattened multipart form:
// profile fields as profile[...] keys, one modules value per id and indexed
// documents[i][title] / documents[i][file] pairs.
func (c *Client) CreateUser(ctx context.Context, data userapimodels.CreateUserData) (id string, err error) {
	body, err := buildCreateUserForm(data)
	if err != nil {
		return "", err
	}
	_, err = c.do(ctx, http.MethodPost, "/api/user/create/", body, &id)
	return id, err
}

func buildCreateUserForm(data userapimodels.CreateUserData) (*multipartBody, error) {
	buf := new(bytes.Buffer)
	writer := multipart.NewWriter(buf)
	fields := map[string]string{
		"account_type":           string(data.AccountType),
		"first_name":             data.FirstName,
		"last_name":              data.LastName,
		"profile[phone]":         data.Profile.Phone,
		"profile[address]":       data.Profile.Address,
		"profile[department]":    data.Profile.Department,
		"profile[job_role]":      data.Profile.JobRole,
		"profile[employee_code]": data.Profile.EmployeeCode,
		"email":                  data.Email,
		"username":               data.Username,
		"password":               data.Password,
		"is_admin":               strconv.FormatBool(data.IsAdmin),
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, errors.Wrap(err, "form field write failed")
		}
	}
	for _, moduleID := range data.ModuleIDs {
		if err := writer.WriteField("modules", moduleID); err != nil {
			return nil, errors.Wrap(err, "form field write failed")
		}
	}
	for idx, doc := range data.Documents {
		if err := writer.WriteField(fmt.Sprintf("documents[%d][title]", idx), doc.Title); err != nil {
			return nil, errors.Wrap(err, "form field write failed")
		}
		part, err := writer.CreateFormFile(fmt.Sprintf("documents[%d][file]", idx), doc.FileName)
		if err != nil {
			return nil, errors.Wrap(err, "form file write failed")
		}
		if _, err = part.Write(doc.File); err != nil {
			return nil, errors.Wrap(err, "form file write failed")
		}
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "form finalize failed")
	}
	return &multipartBody{
		body:        buf.Bytes(),
		contentType: writer.FormDataContentType(),
	}, nil
}

package usershandler

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"talent-engine-backend/db"
	filestorage "talent-engine-backend/lib/file-storage"
	"talent-engine-backend/lib/smtp"
	tenantstore "talent-engine-backend/lib/tenant/store"
	usersstore "talent-engine-backend/lib/users/store"
	authutils "talent-engine-backend/lib/utils/auth-utils"
	"talent-engine-backend/models"
	userapimodels "talent-engine-backend/models/api/user"
	dbmodels "talent-engine-backend/models/db"
)

type Provider interface {
	CreateUser(ctx context.Context, tenantID string, request userapimodels.CreateUserData) (id string, err error)
	UpdateUser(tenantID, userID string, request userapimodels.UpdateUserData) error
	GetByID(tenantID, userID string) (user userapimodels.UserView, err error)
	List(tenantID string, page, limit int) (list []userapimodels.UserView, rowCount int64, err error)
	DeleteUser(tenantID, userID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:       usersstore.NewInstance(db.DB),
		tenantStore: tenantstore.NewInstance(db.DB),
	}
}

type impl struct {
	store       usersstore.Provider
	tenantStore tenantstore.Provider
}

// CreateUser persists the full 4-step wizard payload: account, profile,
// module permissions and uploaded documents.
func (i impl) CreateUser(ctx context.Context, tenantID string, request userapimodels.CreateUserData) (id string, err error) {
	logger := log.WithField("tenant_id", tenantID)
	if err = request.Validate(); err != nil {
		return "", err
	}
	userExist, err := i.store.ExistByEmail(tenantID, request.Email)
	if err != nil {
		logger.
			WithError(err).
			Error("existing user check failed")
		return "", err
	}
	if userExist {
		return "", errors.New("a user with this email already exists")
	}
	modules, err := i.tenantStore.GetModules(request.ModuleIDs)
	if err != nil {
		logger.
			WithError(err).
			Error("module lookup failed")
		return "", err
	}
	if len(modules) != len(request.ModuleIDs) {
		return "", errors.New("unknown module selected")
	}
	rec := dbmodels.TenantUser{
		BaseTenantModel: dbmodels.BaseTenantModel{
			TenantID: tenantID,
		},
		Email:        request.Email,
		Username:     request.Username,
		Password:     authutils.GetMD5Hash(request.Password),
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		AccountType:  request.AccountType,
		IsActive:     true,
		Phone:        request.Profile.Phone,
		Address:      request.Profile.Address,
		Department:   request.Profile.Department,
		JobRole:      request.Profile.JobRole,
		EmployeeCode: request.Profile.EmployeeCode,
		Modules:      modules,
	}
	if request.IsAdmin {
		rec.Role = models.TenantAdminRole
	} else {
		rec.Role = models.TenantUserRole
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.
			WithField("request_email", request.Email).
			WithError(err).
			Error("user create failed")
		return "", err
	}
	for _, doc := range request.Documents {
		key, uploadErr := filestorage.Instance.UploadUserDocument(ctx, tenantID, id, doc.File, doc.FileName)
		if uploadErr != nil {
			logger.
				WithField("user_id", id).
				WithField("document", doc.Title).
				WithError(uploadErr).
				Error("user document upload failed")
			return "", uploadErr
		}
		docErr := i.store.AddDocument(dbmodels.UserDocument{
			TenantUserID: id,
			Title:        doc.Title,
			FileKey:      key,
			FileName:     doc.FileName,
		})
		if docErr != nil {
			return "", docErr
		}
	}
	logger.
		WithField("user_id", id).
		Info("user created")
	i.sendWelcome(request)
	return id, nil
}

func (i impl) UpdateUser(tenantID, userID string, request userapimodels.UpdateUserData) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("user_id", userID)
	rec, err := i.getRec(tenantID, userID)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"first_name":    request.FirstName,
		"last_name":     request.LastName,
		"phone":         request.Profile.Phone,
		"address":       request.Profile.Address,
		"department":    request.Profile.Department,
		"job_role":      request.Profile.JobRole,
		"employee_code": request.Profile.EmployeeCode,
	}
	if request.IsAdmin {
		updMap["role"] = models.TenantAdminRole
	} else {
		updMap["role"] = models.TenantUserRole
	}
	err = i.store.Update(tenantID, userID, updMap)
	if err != nil {
		logger.
			WithError(err).
			Error("user update failed")
		return err
	}
	if request.ModuleIDs != nil {
		modules, err := i.tenantStore.GetModules(request.ModuleIDs)
		if err != nil {
			return err
		}
		err = i.store.ReplaceModules(rec, modules)
		if err != nil {
			logger.
				WithError(err).
				Error("user module update failed")
			return err
		}
	}
	logger.Info("user updated")
	return nil
}

func (i impl) GetByID(tenantID, userID string) (user userapimodels.UserView, err error) {
	rec, err := i.getRec(tenantID, userID)
	if err != nil {
		return userapimodels.UserView{}, err
	}
	return userapimodels.UserConvert(*rec), nil
}

func (i impl) List(tenantID string, page, limit int) (list []userapimodels.UserView, rowCount int64, err error) {
	recList, rowCount, err := i.store.List(tenantID, page, limit)
	if err != nil {
		log.
			WithField("tenant_id", tenantID).
			WithError(err).
			Error("user list failed")
		return nil, 0, err
	}
	result := make([]userapimodels.UserView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, userapimodels.UserConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) DeleteUser(tenantID, userID string) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("user_id", userID)
	err := i.store.Delete(tenantID, userID)
	if err != nil {
		logger.
			WithError(err).
			Error("user delete failed")
		return err
	}
	logger.Info("user deleted")
	return nil
}

func (i impl) getRec(tenantID, userID string) (*dbmodels.TenantUser, error) {
	rec, err := i.store.GetByID(tenantID, userID)
	if err != nil {
		log.
			WithField("tenant_id", tenantID).
			WithField("user_id", userID).
			WithError(err).
			Error("user lookup failed")
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("user not found")
	}
	return rec, nil
}

func (i impl) sendWelcome(request userapimodels.CreateUserData) {
	message := fmt.Sprintf("An account was created for you.\nUsername: %v\nUse the password provided by your administrator to sign in.", request.Username)
	err := smtp.Instance.SendEMail(request.Email, request.Email, message, "Account created")
	if err != nil {
		log.WithError(err).Warn("welcome mail not delivered")
	}
}

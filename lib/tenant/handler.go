package tenanthandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"talent-engine-backend/db"
	tenantstore "talent-engine-backend/lib/tenant/store"
	tenantapimodels "talent-engine-backend/models/api/tenant"
	dbmodels "talent-engine-backend/models/db"
)

type Provider interface {
	List() (list []tenantapimodels.TenantView, err error)
	ListModules() (list []tenantapimodels.ModuleView, err error)
	GetEmailConfig(tenantID string) (item tenantapimodels.EmailConfigView, err error)
	UpdateEmailConfig(tenantID string, data tenantapimodels.EmailConfigData) error
	GetConfigRecord(tenantID string) (rec dbmodels.TenantConfig, err error)
	GetUniqueID(tenantID string) (uniqueID string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: tenantstore.NewInstance(db.DB),
	}
}

type impl struct {
	store tenantstore.Provider
}

func (i impl) List() (list []tenantapimodels.TenantView, err error) {
	recList, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("tenant list failed")
		return nil, err
	}
	result := make([]tenantapimodels.TenantView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, tenantapimodels.TenantConvert(rec))
	}
	return result, nil
}

func (i impl) ListModules() (list []tenantapimodels.ModuleView, err error) {
	recList, err := i.store.ListModules()
	if err != nil {
		log.WithError(err).Error("module list failed")
		return nil, err
	}
	result := make([]tenantapimodels.ModuleView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, tenantapimodels.ModuleConvert(rec))
	}
	return result, nil
}

func (i impl) GetEmailConfig(tenantID string) (item tenantapimodels.EmailConfigView, err error) {
	rec, err := i.GetConfigRecord(tenantID)
	if err != nil {
		return tenantapimodels.EmailConfigView{}, err
	}
	return tenantapimodels.EmailConfigConvert(rec), nil
}

// UpdateEmailConfig is edit-only: the config row is created on first save
// and never deleted.
func (i impl) UpdateEmailConfig(tenantID string, data tenantapimodels.EmailConfigData) error {
	logger := log.WithField("tenant_id", tenantID)
	rec, err := i.store.GetConfig(tenantID)
	if err != nil {
		logger.WithError(err).Error("tenant config lookup failed")
		return err
	}
	if rec == nil {
		rec = &dbmodels.TenantConfig{
			TenantID: tenantID,
		}
	}
	rec.EmailHost = data.EmailHost
	rec.EmailPort = data.EmailPort
	rec.EmailUseSSL = data.EmailUseSSL
	rec.EmailHostUser = data.EmailHostUser
	rec.EmailHostPassword = data.EmailHostPassword
	rec.DefaultFromEmail = data.DefaultFromEmail
	err = i.store.SaveConfig(*rec)
	if err != nil {
		logger.WithError(err).Error("tenant config save failed")
		return err
	}
	logger.Info("tenant email config updated")
	return nil
}

// GetConfigRecord returns the raw config row for the tenant mailer. A
// missing row comes back zero-valued, reported unconfigured.
func (i impl) GetConfigRecord(tenantID string) (rec dbmodels.TenantConfig, err error) {
	found, err := i.store.GetConfig(tenantID)
	if err != nil {
		log.
			WithField("tenant_id", tenantID).
			WithError(err).
			Error("tenant config lookup failed")
		return dbmodels.TenantConfig{}, err
	}
	if found == nil {
		return dbmodels.TenantConfig{TenantID: tenantID}, nil
	}
	return *found, nil
}

func (i impl) GetUniqueID(tenantID string) (uniqueID string, err error) {
	rec, err := i.store.GetByID(tenantID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", errors.New("tenant not found")
	}
	return rec.UniqueID, nil
}

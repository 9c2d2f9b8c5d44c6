package tenantstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "talent-engine-backend/models/db"
)

type Provider interface {
	GetByID(id string) (rec *dbmodels.Tenant, err error)
	List() (list []dbmodels.Tenant, err error)
	ListModules() (list []dbmodels.Module, err error)
	GetModules(ids []string) (list []dbmodels.Module, err error)
	GetConfig(tenantID string) (rec *dbmodels.TenantConfig, err error)
	SaveConfig(rec dbmodels.TenantConfig) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(id string) (*dbmodels.Tenant, error) {
	rec := dbmodels.Tenant{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List() (list []dbmodels.Tenant, err error) {
	list = []dbmodels.Tenant{}
	err = i.db.
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListModules() (list []dbmodels.Module, err error) {
	list = []dbmodels.Module{}
	err = i.db.
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetModules(ids []string) (list []dbmodels.Module, err error) {
	list = []dbmodels.Module{}
	if len(ids) == 0 {
		return list, nil
	}
	err = i.db.
		Where("id IN ?", ids).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetConfig(tenantID string) (*dbmodels.TenantConfig, error) {
	rec := dbmodels.TenantConfig{}
	err := i.db.
		Where("tenant_id = ?", tenantID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) SaveConfig(rec dbmodels.TenantConfig) error {
	return i.db.Save(&rec).Error
}

package usersstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "talent-engine-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.TenantUser) (id string, err error)
	GetByID(tenantID, id string) (rec *dbmodels.TenantUser, err error)
	GetByEmail(email string) (rec *dbmodels.TenantUser, err error)
	GetAnyByID(id string) (rec *dbmodels.TenantUser, err error)
	ExistByEmail(tenantID, email string) (exist bool, err error)
	Update(tenantID, id string, updMap map[string]interface{}) error
	ReplaceModules(rec *dbmodels.TenantUser, modules []dbmodels.Module) error
	List(tenantID string, page, limit int) (list []dbmodels.TenantUser, rowCount int64, err error)
	Delete(tenantID, id string) error
	AddDocument(rec dbmodels.UserDocument) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TenantUser) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(tenantID, id string) (*dbmodels.TenantUser, error) {
	rec := dbmodels.TenantUser{}
	err := i.db.
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Preload("Modules").
		Preload("Documents").
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

func (i impl) GetByEmail(email string) (*dbmodels.TenantUser, error) {
	rec := dbmodels.TenantUser{}
	err := i.db.
		Where("email = ?", email).
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

// GetAnyByID looks a user up without tenant scoping; used by token refresh
// where only the subject id is known.
func (i impl) GetAnyByID(id string) (*dbmodels.TenantUser, error) {
	rec := dbmodels.TenantUser{}
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

func (i impl) ExistByEmail(tenantID, email string) (exist bool, err error) {
	var count int64
	err = i.db.
		Model(&dbmodels.TenantUser{}).
		Where("tenant_id = ?", tenantID).
		Where("email = ?", email).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) Update(tenantID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.TenantUser{}).
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

func (i impl) ReplaceModules(rec *dbmodels.TenantUser, modules []dbmodels.Module) error {
	return i.db.Model(rec).Association("Modules").Replace(modules)
}

func (i impl) List(tenantID string, page, limit int) (list []dbmodels.TenantUser, rowCount int64, err error) {
	list = []dbmodels.TenantUser{}
	tx := i.db.
		Model(&dbmodels.TenantUser{}).
		Where("tenant_id = ?", tenantID)
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	err = tx.
		Preload("Modules").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) Delete(tenantID, id string) error {
	tx := i.db.
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Delete(&dbmodels.TenantUser{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

func (i impl) AddDocument(rec dbmodels.UserDocument) error {
	return i.db.Save(&rec).Error
}

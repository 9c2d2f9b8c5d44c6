package applicationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "talent-engine-backend/models/db"
)

type Filter struct {
	Search string
	Status string
}

type Provider interface {
	GetByID(tenantID, id string) (rec *dbmodels.JobApplication, err error)
	List(tenantID string, filter Filter, page, limit int) (list []dbmodels.JobApplication, rowCount int64, err error)
	SoftDelete(tenantID string, ids []string) error
	ListDeleted(tenantID string, page, limit int) (list []dbmodels.JobApplication, rowCount int64, err error)
	Restore(tenantID, id string) error
	Purge(tenantID, id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(tenantID, id string) (*dbmodels.JobApplication, error) {
	rec := dbmodels.JobApplication{}
	err := i.db.
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Preload("Requisition").
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

func (i impl) List(tenantID string, filter Filter, page, limit int) (list []dbmodels.JobApplication, rowCount int64, err error) {
	list = []dbmodels.JobApplication{}
	tx := i.db.
		Model(&dbmodels.JobApplication{}).
		Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		tx = tx.Where("applicant_name ILIKE ? OR applicant_email ILIKE ?", pattern, pattern)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	err = tx.
		Preload("Requisition").
		Order("applied_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) SoftDelete(tenantID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return i.db.
		Where("tenant_id = ?", tenantID).
		Where("id IN ?", ids).
		Delete(&dbmodels.JobApplication{}).
		Error
}

func (i impl) ListDeleted(tenantID string, page, limit int) (list []dbmodels.JobApplication, rowCount int64, err error) {
	list = []dbmodels.JobApplication{}
	tx := i.db.Unscoped().
		Model(&dbmodels.JobApplication{}).
		Where("tenant_id = ?", tenantID).
		Where("deleted_at IS NOT NULL")
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	err = tx.
		Order("deleted_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) Restore(tenantID, id string) error {
	tx := i.db.Unscoped().
		Model(&dbmodels.JobApplication{}).
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Update("deleted_at", nil)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

func (i impl) Purge(tenantID, id string) error {
	tx := i.db.Unscoped().
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Delete(&dbmodels.JobApplication{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

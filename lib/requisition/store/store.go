package requisitionstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "talent-engine-backend/models/db"
	requisitionapimodels "talent-engine-backend/models/api/requisition"
)

type Provider interface {
	Create(rec dbmodels.Requisition) (id string, err error)
	GetByID(tenantID, id string) (rec *dbmodels.Requisition, err error)
	Update(tenantID, id string, updMap map[string]interface{}) error
	List(tenantID string, filter requisitionapimodels.RequisitionFilter) (list []dbmodels.Requisition, err error)
	ListCount(tenantID string, filter requisitionapimodels.RequisitionFilter) (rowCount int64, err error)
	SoftDelete(tenantID string, ids []string) error
	ListDeleted(tenantID string, page, limit int) (list []dbmodels.Requisition, rowCount int64, err error)
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

func (i impl) Create(rec dbmodels.Requisition) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(tenantID, id string) (*dbmodels.Requisition, error) {
	rec := dbmodels.Requisition{}
	err := i.db.
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Preload("RequestedBy").
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

func (i impl) Update(tenantID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Requisition{}).
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

func (i impl) applyFilter(tx *gorm.DB, filter requisitionapimodels.RequisitionFilter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		tx = tx.Where("title ILIKE ? OR job_requisition_code ILIKE ?", pattern, pattern)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	return tx
}

func (i impl) List(tenantID string, filter requisitionapimodels.RequisitionFilter) (list []dbmodels.Requisition, err error) {
	list = []dbmodels.Requisition{}
	page, limit := filter.GetPage()
	tx := i.db.
		Where("tenant_id = ?", tenantID).
		Preload("RequestedBy")
	tx = i.applyFilter(tx, filter)
	err = tx.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(tenantID string, filter requisitionapimodels.RequisitionFilter) (rowCount int64, err error) {
	tx := i.db.
		Model(&dbmodels.Requisition{}).
		Where("tenant_id = ?", tenantID)
	tx = i.applyFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) SoftDelete(tenantID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return i.db.
		Where("tenant_id = ?", tenantID).
		Where("id IN ?", ids).
		Delete(&dbmodels.Requisition{}).
		Error
}

func (i impl) ListDeleted(tenantID string, page, limit int) (list []dbmodels.Requisition, rowCount int64, err error) {
	list = []dbmodels.Requisition{}
	tx := i.db.Unscoped().
		Model(&dbmodels.Requisition{}).
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
		Model(&dbmodels.Requisition{}).
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
		Delete(&dbmodels.Requisition{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

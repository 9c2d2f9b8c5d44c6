package schedulestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	scheduleapimodels "talent-engine-backend/models/api/schedule"
	dbmodels "talent-engine-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Schedule) (id string, err error)
	GetByID(tenantID, id string) (rec *dbmodels.Schedule, err error)
	Update(tenantID, id string, updMap map[string]interface{}) error
	Delete(tenantID, id string) error
	List(tenantID string, filter scheduleapimodels.ScheduleFilter) (list []dbmodels.Schedule, rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Schedule) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(tenantID, id string) (*dbmodels.Schedule, error) {
	rec := dbmodels.Schedule{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) Update(tenantID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Schedule{}).
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

func (i impl) Delete(tenantID, id string) error {
	tx := i.db.
		Where("id = ?", id).
		Where("tenant_id = ?", tenantID).
		Delete(&dbmodels.Schedule{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

func (i impl) List(tenantID string, filter scheduleapimodels.ScheduleFilter) (list []dbmodels.Schedule, rowCount int64, err error) {
	list = []dbmodels.Schedule{}
	tx := i.db.
		Model(&dbmodels.Schedule{}).
		Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		tx = tx.Where("candidate_name ILIKE ? OR job_requisition_title ILIKE ?", pattern, pattern)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.
		Order("interview_date_time ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

package applicationhandler

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"talent-engine-backend/db"
	applicationstore "talent-engine-backend/lib/application/store"
	apimodels "talent-engine-backend/models/api"
	applicationapimodels "talent-engine-backend/models/api/application"
	dbmodels "talent-engine-backend/models/db"
)

type Provider interface {
	GetByID(tenantID, id string) (item applicationapimodels.ApplicationView, err error)
	List(tenantID string, filter applicationapimodels.ApplicationFilter) (list []applicationapimodels.ApplicationView, rowCount int64, err error)
	ListRecords(tenantID string, filter applicationapimodels.ApplicationFilter) (list []dbmodels.JobApplication, err error)
	BulkDelete(tenantID string, ids []string) error
	ListDeleted(tenantID string, pagination apimodels.Pagination) (list []applicationapimodels.ApplicationView, rowCount int64, err error)
	Restore(tenantID, id string) error
	Purge(tenantID, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: applicationstore.NewInstance(db.DB),
	}
}

type impl struct {
	store applicationstore.Provider
}

func (i impl) GetByID(tenantID, id string) (item applicationapimodels.ApplicationView, err error) {
	rec, err := i.store.GetByID(tenantID, id)
	if err != nil {
		log.
			WithField("tenant_id", tenantID).
			WithField("rec_id", id).
			WithError(err).
			Error("application lookup failed")
		return applicationapimodels.ApplicationView{}, err
	}
	if rec == nil {
		return applicationapimodels.ApplicationView{}, errors.New("application not found")
	}
	return applicationapimodels.ApplicationConvert(*rec), nil
}

func (i impl) List(tenantID string, filter applicationapimodels.ApplicationFilter) (list []applicationapimodels.ApplicationView, rowCount int64, err error) {
	recList, rowCount, err := i.listRecords(tenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]applicationapimodels.ApplicationView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, applicationapimodels.ApplicationConvert(rec))
	}
	return result, rowCount, nil
}

const exportPageSize = 100

// ListRecords returns all matching rows for export, walking the filter page
// by page.
func (i impl) ListRecords(tenantID string, filter applicationapimodels.ApplicationFilter) (list []dbmodels.JobApplication, err error) {
	filter.Limit = exportPageSize
	filter.Page = 1
	for {
		chunk, _, err := i.listRecords(tenantID, filter)
		if err != nil {
			return nil, err
		}
		list = append(list, chunk...)
		if len(chunk) < exportPageSize {
			return list, nil
		}
		filter.Page++
	}
}

func (i impl) listRecords(tenantID string, filter applicationapimodels.ApplicationFilter) (list []dbmodels.JobApplication, rowCount int64, err error) {
	page, limit := filter.GetPage()
	recList, rowCount, err := i.store.List(tenantID, applicationstore.Filter{
		Search: filter.Search,
		Status: filter.Status,
	}, page, limit)
	if err != nil {
		log.
			WithField("tenant_id", tenantID).
			WithError(err).
			Error("application list failed")
		return nil, 0, err
	}
	return recList, rowCount, nil
}

func (i impl) BulkDelete(tenantID string, ids []string) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_ids", strings.Join(ids, ","))
	if len(ids) == 0 {
		return errors.New("no records selected")
	}
	err := i.store.SoftDelete(tenantID, ids)
	if err != nil {
		logger.
			WithError(err).
			Error("application soft delete failed")
		return err
	}
	logger.Info("applications moved to recycle bin")
	return nil
}

func (i impl) ListDeleted(tenantID string, pagination apimodels.Pagination) (list []applicationapimodels.ApplicationView, rowCount int64, err error) {
	page, limit := pagination.GetPage()
	recList, rowCount, err := i.store.ListDeleted(tenantID, page, limit)
	if err != nil {
		log.
			WithField("tenant_id", tenantID).
			WithError(err).
			Error("application recycle bin list failed")
		return nil, 0, err
	}
	result := make([]applicationapimodels.ApplicationView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, applicationapimodels.ApplicationConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Restore(tenantID, id string) error {
	err := i.store.Restore(tenantID, id)
	if err != nil {
		log.
			WithField("tenant_id", tenantID).
			WithField("rec_id", id).
			WithError(err).
			Error("application restore failed")
		return err
	}
	return nil
}

func (i impl) Purge(tenantID, id string) error {
	err := i.store.Purge(tenantID, id)
	if err != nil {
		log.
			WithField("tenant_id", tenantID).
			WithField("rec_id", id).
			WithError(err).
			Error("application purge failed")
		return err
	}
	return nil
}

package requisitionhandler

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"talent-engine-backend/db"
	requisitionstore "talent-engine-backend/lib/requisition/store"
	"talent-engine-backend/models"
	apimodels "talent-engine-backend/models/api"
	requisitionapimodels "talent-engine-backend/models/api/requisition"
	dbmodels "talent-engine-backend/models/db"
)

type Provider interface {
	Create(tenantID, userID string, data requisitionapimodels.RequisitionCreateData) (id string, err error)
	GetByID(tenantID, id string) (item requisitionapimodels.RequisitionView, err error)
	List(tenantID string, filter requisitionapimodels.RequisitionFilter) (list []requisitionapimodels.RequisitionView, rowCount int64, err error)
	ListRecords(tenantID string, filter requisitionapimodels.RequisitionFilter) (list []dbmodels.Requisition, err error)
	GetRecord(tenantID, id string) (rec dbmodels.Requisition, err error)
	Accept(tenantID, id string) error
	Reject(tenantID, id string) error
	SaveDraft(tenantID, id string, draft requisitionapimodels.AdvertDraft) error
	Publish(tenantID, id string, data requisitionapimodels.PublishData) error
	SetBanner(tenantID, id, fileKey string) error
	Delete(tenantID, id string) error
	BulkDelete(tenantID string, ids []string) error
	ListDeleted(tenantID string, pagination apimodels.Pagination) (list []requisitionapimodels.RequisitionView, rowCount int64, err error)
	Restore(tenantID, id string) error
	Purge(tenantID, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: requisitionstore.NewInstance(db.DB),
	}
}

type impl struct {
	store requisitionstore.Provider
}

func (i impl) Create(tenantID, userID string, data requisitionapimodels.RequisitionCreateData) (id string, err error) {
	logger := log.WithField("tenant_id", tenantID)
	rec := dbmodels.Requisition{
		BaseTenantModel: dbmodels.BaseTenantModel{
			TenantID: tenantID,
		},
		JobRequisitionCode:       newRequisitionCode(),
		Title:                    data.Title,
		Reason:                   data.Reason,
		QualificationRequirement: data.QualificationRequirement,
		ExperienceRequirement:    data.ExperienceRequirement,
		KnowledgeRequirement:     data.KnowledgeRequirement,
		Status:                   models.RequisitionStatusPending,
		RequestedByID:            userID,
		RequestedDate:            time.Now(),
		DocumentsRequired:        pqArray(models.CompulsoryDocuments),
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.
			WithField("request", fmt.Sprintf("%+v", data)).
			WithError(err).
			Error("requisition create failed")
		return "", err
	}
	logger.
		WithField("rec_id", id).
		Info("requisition created")
	return id, nil
}

func (i impl) GetByID(tenantID, id string) (item requisitionapimodels.RequisitionView, err error) {
	rec, err := i.getRec(tenantID, id)
	if err != nil {
		return requisitionapimodels.RequisitionView{}, err
	}
	return requisitionapimodels.RequisitionConvert(*rec), nil
}

func (i impl) List(tenantID string, filter requisitionapimodels.RequisitionFilter) (list []requisitionapimodels.RequisitionView, rowCount int64, err error) {
	logger := log.WithField("tenant_id", tenantID)
	rowCount, err = i.store.ListCount(tenantID, filter)
	if err != nil {
		return nil, 0, err
	}

	page, limit := filter.GetPage()
	offset := (page - 1) * limit
	if int64(offset) > rowCount {
		return []requisitionapimodels.RequisitionView{}, rowCount, nil
	}

	recList, err := i.store.List(tenantID, filter)
	if err != nil {
		logger.
			WithError(err).
			Error("requisition list failed")
		return nil, 0, err
	}
	result := make([]requisitionapimodels.RequisitionView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, requisitionapimodels.RequisitionConvert(rec))
	}
	return result, rowCount, nil
}

const exportPageSize = 100

// ListRecords returns all matching records for export, walking the filter
// page by page.
func (i impl) ListRecords(tenantID string, filter requisitionapimodels.RequisitionFilter) (list []dbmodels.Requisition, err error) {
	filter.Limit = exportPageSize
	filter.Page = 1
	for {
		chunk, err := i.store.List(tenantID, filter)
		if err != nil {
			log.
				WithField("tenant_id", tenantID).
				WithError(err).
				Error("requisition export list failed")
			return nil, err
		}
		list = append(list, chunk...)
		if len(chunk) < exportPageSize {
			return list, nil
		}
		filter.Page++
	}
}

func (i impl) GetRecord(tenantID, id string) (rec dbmodels.Requisition, err error) {
	recPtr, err := i.getRec(tenantID, id)
	if err != nil {
		return dbmodels.Requisition{}, err
	}
	return *recPtr, nil
}

// Accept moves a pending requisition to open, making the advert draft
// mutable.
func (i impl) Accept(tenantID, id string) error {
	return i.changeStatus(tenantID, id, models.RequisitionStatusOpen)
}

// Reject is terminal: the requisition stays immutable forever.
func (i impl) Reject(tenantID, id string) error {
	return i.changeStatus(tenantID, id, models.RequisitionStatusRejected)
}

func (i impl) changeStatus(tenantID, id string, status models.RequisitionStatus) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", id).
		WithField("new_status", status)
	rec, err := i.getRec(tenantID, id)
	if err != nil {
		return err
	}
	if !rec.Status.IsAllowChange(status) {
		return errors.Errorf("status change to %v is not allowed from %v", status, rec.Status)
	}
	updMap := map[string]interface{}{
		"status": status,
	}
	err = i.store.Update(tenantID, id, updMap)
	if err != nil {
		logger.
			WithError(err).
			Error("requisition status update failed")
		return err
	}
	logger.Info("requisition status updated")
	return nil
}

// SaveDraft persists advert fields. Every edit is rejected unless the
// requisition is open.
func (i impl) SaveDraft(tenantID, id string, draft requisitionapimodels.AdvertDraft) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", id)
	rec, err := i.getRec(tenantID, id)
	if err != nil {
		return err
	}
	if !rec.Status.IsMutable() {
		return errors.Errorf("requisition is not open for editing (status: %v)", rec.Status)
	}
	if fieldErrs := draft.ValidateDocuments(); len(fieldErrs) != 0 {
		return apimodels.ValidationError{Fields: fieldErrs}
	}
	err = i.store.Update(tenantID, id, draftUpdMap(draft))
	if err != nil {
		logger.
			WithError(err).
			Error("advert draft update failed")
		return err
	}
	logger.Info("advert draft updated")
	return nil
}

// Publish runs the full pre-publish validation and flips publish_status.
// Only an open requisition can publish.
func (i impl) Publish(tenantID, id string, data requisitionapimodels.PublishData) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", id)
	rec, err := i.getRec(tenantID, id)
	if err != nil {
		return err
	}
	if !rec.Status.AllowPublish() {
		return errors.Errorf("requisition must be open before publishing (status: %v)", rec.Status)
	}
	if fieldErrs := data.ValidateForPublish(rec.Title); len(fieldErrs) != 0 {
		return apimodels.ValidationError{Fields: fieldErrs}
	}
	now := time.Now()
	updMap := draftUpdMap(data.AdvertDraft)
	updMap["publish_status"] = true
	updMap["published_at"] = &now
	err = i.store.Update(tenantID, id, updMap)
	if err != nil {
		logger.
			WithError(err).
			Error("advert publish failed")
		return err
	}
	logger.Info("advert published")
	return nil
}

func (i impl) SetBanner(tenantID, id, fileKey string) error {
	rec, err := i.getRec(tenantID, id)
	if err != nil {
		return err
	}
	if !rec.Status.IsMutable() {
		return errors.Errorf("requisition is not open for editing (status: %v)", rec.Status)
	}
	return i.store.Update(tenantID, id, map[string]interface{}{
		"advert_banner_key": fileKey,
	})
}

func (i impl) Delete(tenantID, id string) error {
	return i.BulkDelete(tenantID, []string{id})
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
			Error("requisition soft delete failed")
		return err
	}
	logger.Info("requisitions moved to recycle bin")
	return nil
}

func (i impl) ListDeleted(tenantID string, pagination apimodels.Pagination) (list []requisitionapimodels.RequisitionView, rowCount int64, err error) {
	page, limit := pagination.GetPage()
	recList, rowCount, err := i.store.ListDeleted(tenantID, page, limit)
	if err != nil {
		log.
			WithField("tenant_id", tenantID).
			WithError(err).
			Error("recycle bin list failed")
		return nil, 0, err
	}
	result := make([]requisitionapimodels.RequisitionView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, requisitionapimodels.RequisitionConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Restore(tenantID, id string) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", id)
	err := i.store.Restore(tenantID, id)
	if err != nil {
		logger.
			WithError(err).
			Error("requisition restore failed")
		return err
	}
	logger.Info("requisition restored from recycle bin")
	return nil
}

// Purge removes a record from the recycle bin permanently.
func (i impl) Purge(tenantID, id string) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", id)
	err := i.store.Purge(tenantID, id)
	if err != nil {
		logger.
			WithError(err).
			Error("requisition purge failed")
		return err
	}
	logger.Info("requisition permanently deleted")
	return nil
}

func (i impl) getRec(tenantID, id string) (item *dbmodels.Requisition, err error) {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", id)
	rec, err := i.store.GetByID(tenantID, id)
	if err != nil {
		logger.
			WithError(err).
			Error("requisition lookup failed")
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("requisition not found")
	}
	return rec, nil
}

func draftUpdMap(draft requisitionapimodels.AdvertDraft) map[string]interface{} {
	docs := draft.DocumentsRequired
	for _, compulsory := range models.CompulsoryDocuments {
		found := false
		for _, doc := range docs {
			if doc == compulsory {
				found = true
				break
			}
		}
		if !found {
			docs = append([]string{compulsory}, docs...)
		}
	}
	return map[string]interface{}{
		"company_name":         draft.CompanyName,
		"job_type":             draft.JobType,
		"location_type":        draft.LocationType,
		"location":             draft.Location,
		"description":          draft.Description,
		"responsibilities":     pqArray(draft.Responsibilities),
		"documents_required":   pqArray(docs),
		"compliance_checklist": pqArray(draft.ComplianceChecklist),
		"deadline_date":        draft.DeadlineDate,
		"start_date":           draft.StartDate,
	}
}

func pqArray(list []string) pq.StringArray {
	if list == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(list)
}

func newRequisitionCode() string {
	return fmt.Sprintf("REQ-%v", strings.ToUpper(uuid.NewString()[:8]))
}

package schedulehandler

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"talent-engine-backend/db"
	schedulestore "talent-engine-backend/lib/schedule/store"
	tenanthandler "talent-engine-backend/lib/tenant"
	tenantmailer "talent-engine-backend/lib/tenant-mailer"
	"talent-engine-backend/models"
	scheduleapimodels "talent-engine-backend/models/api/schedule"
	dbmodels "talent-engine-backend/models/db"
)

type Provider interface {
	Create(tenantID string, data scheduleapimodels.ScheduleData) (id string, err error)
	GetByID(tenantID, id string) (item scheduleapimodels.ScheduleView, err error)
	Update(tenantID, id string, data scheduleapimodels.ScheduleData) error
	List(tenantID string, filter scheduleapimodels.ScheduleFilter) (list []scheduleapimodels.ScheduleView, rowCount int64, err error)
	Complete(tenantID, id string) error
	Cancel(tenantID, id string, data scheduleapimodels.CancelData) error
	Delete(tenantID, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         schedulestore.NewInstance(db.DB),
		tenantHandler: tenanthandler.Instance,
		mailer:        tenantmailer.Instance,
	}
}

type impl struct {
	store         schedulestore.Provider
	tenantHandler tenanthandler.Provider
	mailer        tenantmailer.Provider
}

func (i impl) Create(tenantID string, data scheduleapimodels.ScheduleData) (id string, err error) {
	logger := log.WithField("tenant_id", tenantID)
	uniqueID, err := i.tenantHandler.GetUniqueID(tenantID)
	if err != nil {
		logger.WithError(err).Error("tenant lookup failed")
		return "", err
	}
	rec := dbmodels.Schedule{
		BaseTenantModel: dbmodels.BaseTenantModel{
			TenantID: tenantID,
		},
		TenantUniqueID:      uniqueID,
		CandidateName:       data.CandidateName,
		CandidateEmail:      data.CandidateEmail,
		JobRequisitionTitle: data.JobRequisitionTitle,
		InterviewDateTime:   data.InterviewDateTime,
		MeetingMode:         data.MeetingMode,
		MeetingLink:         data.MeetingLink,
		InterviewAddress:    data.InterviewAddress,
		Message:             data.Message,
		Status:              models.ScheduleStatusScheduled,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.
			WithField("request", fmt.Sprintf("%+v", data)).
			WithError(err).
			Error("schedule create failed")
		return "", err
	}
	logger.
		WithField("rec_id", id).
		Info("interview scheduled")
	i.notifyCandidate(tenantID, rec, "Interview invitation")
	return id, nil
}

func (i impl) GetByID(tenantID, id string) (item scheduleapimodels.ScheduleView, err error) {
	rec, err := i.getRec(tenantID, id)
	if err != nil {
		return scheduleapimodels.ScheduleView{}, err
	}
	return scheduleapimodels.ScheduleConvert(*rec), nil
}

// Update is allowed only while the schedule is still in scheduled state.
func (i impl) Update(tenantID, id string, data scheduleapimodels.ScheduleData) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", id)
	rec, err := i.getRec(tenantID, id)
	if err != nil {
		return err
	}
	if !rec.Status.IsEditable() {
		return errors.Errorf("schedule can no longer be edited (status: %v)", rec.Status)
	}
	updMap := map[string]interface{}{
		"candidate_name":        data.CandidateName,
		"candidate_email":       data.CandidateEmail,
		"job_requisition_title": data.JobRequisitionTitle,
		"interview_date_time":   data.InterviewDateTime,
		"meeting_mode":          data.MeetingMode,
		"meeting_link":          data.MeetingLink,
		"interview_address":     data.InterviewAddress,
		"message":               data.Message,
	}
	err = i.store.Update(tenantID, id, updMap)
	if err != nil {
		logger.
			WithError(err).
			Error("schedule update failed")
		return err
	}
	logger.Info("schedule updated")
	return nil
}

func (i impl) List(tenantID string, filter scheduleapimodels.ScheduleFilter) (list []scheduleapimodels.ScheduleView, rowCount int64, err error) {
	recList, rowCount, err := i.store.List(tenantID, filter)
	if err != nil {
		log.
			WithField("tenant_id", tenantID).
			WithError(err).
			Error("schedule list failed")
		return nil, 0, err
	}
	result := make([]scheduleapimodels.ScheduleView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, scheduleapimodels.ScheduleConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Complete(tenantID, id string) error {
	return i.changeStatus(tenantID, id, models.ScheduleStatusCompleted, map[string]interface{}{})
}

// Cancel requires a reason; the transition is terminal.
func (i impl) Cancel(tenantID, id string, data scheduleapimodels.CancelData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	err := i.changeStatus(tenantID, id, models.ScheduleStatusCancelled, map[string]interface{}{
		"cancellation_reason": data.Reason,
	})
	if err != nil {
		return err
	}
	rec, err := i.getRec(tenantID, id)
	if err == nil {
		i.notifyCandidate(tenantID, *rec, "Interview cancelled")
	}
	return nil
}

func (i impl) changeStatus(tenantID, id string, status models.ScheduleStatus, updMap map[string]interface{}) error {
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
	updMap["status"] = status
	err = i.store.Update(tenantID, id, updMap)
	if err != nil {
		logger.
			WithError(err).
			Error("schedule status update failed")
		return err
	}
	logger.Info("schedule status updated")
	return nil
}

func (i impl) Delete(tenantID, id string) error {
	logger := log.
		WithField("tenant_id", tenantID).
		WithField("rec_id", id)
	err := i.store.Delete(tenantID, id)
	if err != nil {
		logger.
			WithError(err).
			Error("schedule delete failed")
		return err
	}
	logger.Info("schedule deleted")
	return nil
}

func (i impl) getRec(tenantID, id string) (item *dbmodels.Schedule, err error) {
	rec, err := i.store.GetByID(tenantID, id)
	if err != nil {
		log.
			WithField("tenant_id", tenantID).
			WithField("rec_id", id).
			WithError(err).
			Error("schedule lookup failed")
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("schedule not found")
	}
	return rec, nil
}

// notifyCandidate mails through the tenant's own email server. Send
// failures are logged, never propagated: mail is best effort.
func (i impl) notifyCandidate(tenantID string, rec dbmodels.Schedule, subject string) {
	if rec.CandidateEmail == "" {
		return
	}
	cfg, err := i.tenantHandler.GetConfigRecord(tenantID)
	if err != nil {
		return
	}
	var place string
	if rec.MeetingMode == models.MeetingModeVirtual {
		place = fmt.Sprintf("Meeting link: %v", rec.MeetingLink)
	} else {
		place = fmt.Sprintf("Address: %v", rec.InterviewAddress)
	}
	body := fmt.Sprintf("Dear %v,\n\n%v\n\nPosition: %v\nDate and time: %v\n%v\n",
		rec.CandidateName, rec.Message, rec.JobRequisitionTitle,
		rec.InterviewDateTime.Format("02 Jan 2006 15:04"), place)
	if rec.CancellationReason != "" {
		body = fmt.Sprintf("%v\nReason: %v\n", body, rec.CancellationReason)
	}
	_ = i.mailer.Send(cfg, rec.CandidateEmail, subject, body)
}

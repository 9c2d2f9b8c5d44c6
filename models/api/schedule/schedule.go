package scheduleapimodels

import (
	"strings"
	"time"

	"talent-engine-backend/models"
	apimodels "talent-engine-backend/models/api"
	dbmodels "talent-engine-backend/models/db"

	"github.com/pkg/errors"
)

type ScheduleData struct {
	CandidateName       string             `json:"candidate_name"`
	CandidateEmail      string             `json:"candidate_email"`
	JobRequisitionTitle string             `json:"job_requisition_title"`
	InterviewDateTime   time.Time          `json:"interview_date_time"`
	MeetingMode         models.MeetingMode `json:"meeting_mode"`
	MeetingLink         string             `json:"meeting_link"`
	InterviewAddress    string             `json:"interview_address"`
	Message             string             `json:"message"`
}

func (r ScheduleData) Validate() error {
	if len(strings.TrimSpace(r.CandidateName)) == 0 {
		return errors.New("Candidate name is required.")
	}
	if len(strings.TrimSpace(r.JobRequisitionTitle)) == 0 {
		return errors.New("Job requisition title is required.")
	}
	if r.InterviewDateTime.IsZero() {
		return errors.New("Interview date and time is required.")
	}
	if !r.MeetingMode.IsValid() {
		return errors.New("Meeting mode must be Virtual or Physical.")
	}
	if r.MeetingMode == models.MeetingModeVirtual && len(strings.TrimSpace(r.MeetingLink)) == 0 {
		return errors.New("Meeting link is required for virtual interviews.")
	}
	if r.MeetingMode == models.MeetingModePhysical && len(strings.TrimSpace(r.InterviewAddress)) == 0 {
		return errors.New("Interview address is required for physical interviews.")
	}
	return nil
}

type CancelData struct {
	Reason string `json:"reason"`
}

func (r CancelData) Validate() error {
	if len(strings.TrimSpace(r.Reason)) == 0 {
		return errors.New("Cancellation reason is required.")
	}
	return nil
}

type ScheduleFilter struct {
	apimodels.Pagination
	Search string                `json:"search"`
	Status models.ScheduleStatus `json:"status"`
}

func (r ScheduleFilter) Validate() error {
	return nil
}

type ScheduleView struct {
	ID                  string                `json:"id"`
	TenantUniqueID      string                `json:"tenant_unique_id"`
	CandidateName       string                `json:"candidate_name"`
	CandidateEmail      string                `json:"candidate_email"`
	JobRequisitionTitle string                `json:"job_requisition_title"`
	InterviewDateTime   time.Time             `json:"interview_date_time"`
	MeetingMode         models.MeetingMode    `json:"meeting_mode"`
	MeetingLink         string                `json:"meeting_link,omitempty"`
	InterviewAddress    string                `json:"interview_address,omitempty"`
	Message             string                `json:"message"`
	Status              models.ScheduleStatus `json:"status"`
	StatusName          string                `json:"status_name"`
	CancellationReason  string                `json:"cancellation_reason,omitempty"`
	CreatedAt           time.Time             `json:"created_at"`
}

func ScheduleConvert(rec dbmodels.Schedule) ScheduleView {
	return ScheduleView{
		ID:                  rec.ID,
		TenantUniqueID:      rec.TenantUniqueID,
		CandidateName:       rec.CandidateName,
		CandidateEmail:      rec.CandidateEmail,
		JobRequisitionTitle: rec.JobRequisitionTitle,
		InterviewDateTime:   rec.InterviewDateTime,
		MeetingMode:         rec.MeetingMode,
		MeetingLink:         rec.MeetingLink,
		InterviewAddress:    rec.InterviewAddress,
		Message:             rec.Message,
		Status:              rec.Status,
		StatusName:          rec.Status.ToHuman(),
		CancellationReason:  rec.CancellationReason,
		CreatedAt:           rec.CreatedAt,
	}
}

package applicationapimodels

import (
	"time"

	apimodels "talent-engine-backend/models/api"
	dbmodels "talent-engine-backend/models/db"
)

type ApplicationFilter struct {
	apimodels.Pagination
	Search string `json:"search"`
	Status string `json:"status"`
}

func (r ApplicationFilter) Validate() error {
	return nil
}

type ApplicationView struct {
	ID               string     `json:"id"`
	RequisitionID    string     `json:"requisition_id"`
	RequisitionTitle string     `json:"requisition_title,omitempty"`
	ApplicantName    string     `json:"applicant_name"`
	ApplicantEmail   string     `json:"applicant_email"`
	Phone            string     `json:"phone"`
	Source           string     `json:"source"`
	Status           string     `json:"status"`
	AppliedAt        time.Time  `json:"applied_at"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty"`
}

func ApplicationConvert(rec dbmodels.JobApplication) ApplicationView {
	view := ApplicationView{
		ID:             rec.ID,
		RequisitionID:  rec.RequisitionID,
		ApplicantName:  rec.ApplicantName,
		ApplicantEmail: rec.ApplicantEmail,
		Phone:          rec.Phone,
		Source:         rec.Source,
		Status:         rec.Status,
		AppliedAt:      rec.AppliedAt,
	}
	if rec.Requisition != nil {
		view.RequisitionTitle = rec.Requisition.Title
	}
	if rec.DeletedAt.Valid {
		deletedAt := rec.DeletedAt.Time
		view.DeletedAt = &deletedAt
	}
	return view
}

package requisitionapimodels

import (
	"strings"
	"time"

	"talent-engine-backend/models"
	apimodels "talent-engine-backend/models/api"
	dbmodels "talent-engine-backend/models/db"

	"github.com/pkg/errors"
)

// RequisitionCreateData is the reason-and-requirements form a staff member
// submits to request a new position. The created record is pending until
// accepted or rejected.
type RequisitionCreateData struct {
	Title                    string `json:"title"`
	Reason                   string `json:"reason"`
	QualificationRequirement string `json:"qualification_requirement"`
	ExperienceRequirement    string `json:"experience_requirement"`
	KnowledgeRequirement     string `json:"knowledge_requirement"`
}

func (r RequisitionCreateData) Validate() error {
	if len(strings.TrimSpace(r.Title)) == 0 {
		return errors.New("Job title is required.")
	}
	if len(strings.TrimSpace(r.Reason)) == 0 {
		return errors.New("Reason is required.")
	}
	return nil
}

// AdvertDraft carries the candidate-facing advert fields. Only an open
// requisition accepts a draft.
type AdvertDraft struct {
	CompanyName         string              `json:"company_name"`
	JobType             string              `json:"job_type"`
	LocationType        models.LocationType `json:"location_type"`
	Location            string              `json:"location"`
	Description         string              `json:"description"`
	Responsibilities    []string            `json:"responsibilities"`
	DocumentsRequired   []string            `json:"documents_required"`
	ComplianceChecklist []string            `json:"compliance_checklist"`
	DeadlineDate        *time.Time          `json:"deadline_date"`
	StartDate           *time.Time          `json:"start_date"`
}

func (d AdvertDraft) hasResponsibility() bool {
	for _, r := range d.Responsibilities {
		if len(strings.TrimSpace(r)) != 0 {
			return true
		}
	}
	return false
}

// ValidateJobDetails checks the first drafting step.
func (d AdvertDraft) ValidateJobDetails(title string) []apimodels.FieldError {
	fieldErrs := []apimodels.FieldError{}
	if len(strings.TrimSpace(title)) == 0 {
		fieldErrs = append(fieldErrs, apimodels.FieldError{Field: "title", Message: "Job title is required."})
	}
	if len(strings.TrimSpace(d.CompanyName)) == 0 {
		fieldErrs = append(fieldErrs, apimodels.FieldError{Field: "company_name", Message: "Company name is required."})
	}
	if d.LocationType == models.LocationTypeOnSite && len(strings.TrimSpace(d.Location)) == 0 {
		fieldErrs = append(fieldErrs, apimodels.FieldError{Field: "location", Message: "On-site address is required."})
	}
	if len(strings.TrimSpace(d.Description)) == 0 {
		fieldErrs = append(fieldErrs, apimodels.FieldError{Field: "description", Message: "Job description is required."})
	}
	if !d.hasResponsibility() {
		fieldErrs = append(fieldErrs, apimodels.FieldError{Field: "responsibilities", Message: "At least one responsibility is required."})
	}
	if d.DeadlineDate == nil {
		fieldErrs = append(fieldErrs, apimodels.FieldError{Field: "deadline_date", Message: "Application deadline is required."})
	}
	return fieldErrs
}

func (d AdvertDraft) ValidateDocuments() []apimodels.FieldError {
	fieldErrs := []apimodels.FieldError{}
	if len(d.DocumentsRequired) == 0 {
		fieldErrs = append(fieldErrs, apimodels.FieldError{Field: "documents_required", Message: "At least one required document is needed."})
	}
	seen := map[string]bool{}
	for _, title := range d.DocumentsRequired {
		if seen[title] {
			fieldErrs = append(fieldErrs, apimodels.FieldError{Field: "documents_required", Message: "Document titles must be unique."})
			break
		}
		seen[title] = true
	}
	return fieldErrs
}

// ValidateForPublish runs the full pre-publish check: job details,
// documents and compliance.
func (d AdvertDraft) ValidateForPublish(title string) []apimodels.FieldError {
	fieldErrs := d.ValidateJobDetails(title)
	fieldErrs = append(fieldErrs, d.ValidateDocuments()...)
	return fieldErrs
}

type PublishData struct {
	AdvertDraft
	PublishStatus bool `json:"publish_status"`
}

type RequisitionFilter struct {
	apimodels.Pagination
	Search string                   `json:"search"`
	Status models.RequisitionStatus `json:"status"`
}

func (r RequisitionFilter) Validate() error {
	return nil
}

type UserRef struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type RequisitionView struct {
	ID                       string                   `json:"id"`
	JobRequisitionCode       string                   `json:"job_requisition_code"`
	Title                    string                   `json:"title"`
	Reason                   string                   `json:"reason"`
	QualificationRequirement string                   `json:"qualification_requirement"`
	ExperienceRequirement    string                   `json:"experience_requirement"`
	KnowledgeRequirement     string                   `json:"knowledge_requirement"`
	Status                   models.RequisitionStatus `json:"status"`
	StatusName               string                   `json:"status_name"`
	RequestedBy              UserRef                  `json:"requested_by"`
	RequestedDate            time.Time                `json:"requested_date"`
	CreatedAt                time.Time                `json:"created_at"`
	UpdatedAt                time.Time                `json:"updated_at"`
	Advert                   AdvertDraft              `json:"advert"`
	AdvertBannerKey          string                   `json:"advert_banner,omitempty"`
	PublishStatus            bool                     `json:"publish_status"`
	PublishedAt              *time.Time               `json:"published_at,omitempty"`
	DeletedAt                *time.Time               `json:"deleted_at,omitempty"`
}

func RequisitionConvert(rec dbmodels.Requisition) RequisitionView {
	view := RequisitionView{
		ID:                       rec.ID,
		JobRequisitionCode:       rec.JobRequisitionCode,
		Title:                    rec.Title,
		Reason:                   rec.Reason,
		QualificationRequirement: rec.QualificationRequirement,
		ExperienceRequirement:    rec.ExperienceRequirement,
		KnowledgeRequirement:     rec.KnowledgeRequirement,
		Status:                   rec.Status,
		StatusName:               rec.Status.ToHuman(),
		RequestedDate:            rec.RequestedDate,
		CreatedAt:                rec.CreatedAt,
		UpdatedAt:                rec.UpdatedAt,
		Advert: AdvertDraft{
			CompanyName:         rec.CompanyName,
			JobType:             rec.JobType,
			LocationType:        rec.LocationType,
			Location:            rec.Location,
			Description:         rec.Description,
			Responsibilities:    rec.Responsibilities,
			DocumentsRequired:   rec.DocumentsRequired,
			ComplianceChecklist: rec.ComplianceChecklist,
			DeadlineDate:        rec.DeadlineDate,
			StartDate:           rec.StartDate,
		},
		AdvertBannerKey: rec.AdvertBannerKey,
		PublishStatus:   rec.PublishStatus,
		PublishedAt:     rec.PublishedAt,
	}
	if rec.RequestedBy != nil {
		view.RequestedBy = UserRef{
			ID:       rec.RequestedBy.ID,
			FullName: rec.RequestedBy.GetFullName(),
			Email:    rec.RequestedBy.Email,
		}
	}
	if rec.DeletedAt.Valid {
		deletedAt := rec.DeletedAt.Time
		view.DeletedAt = &deletedAt
	}
	return view
}

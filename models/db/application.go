package dbmodels

import (
	"time"

	"talent-engine-backend/models"
)

type JobApplication struct {
	BaseTenantModel
	SoftDelete
	RequisitionID  string       `gorm:"type:varchar(36);index"`
	Requisition    *Requisition `gorm:"foreignKey:RequisitionID"`
	ApplicantName  string       `gorm:"type:varchar(255)"`
	ApplicantEmail string       `gorm:"type:varchar(255)"`
	Phone          string       `gorm:"type:varchar(50)"`
	Source         string       `gorm:"type:varchar(100)"`
	Status         string       `gorm:"type:varchar(50);index"`
	AppliedAt      time.Time
	ResumeKey      string `gorm:"type:varchar(255)"`
}

type Schedule struct {
	BaseTenantModel
	TenantUniqueID      string `gorm:"type:varchar(36);index"`
	CandidateName       string `gorm:"type:varchar(255)"`
	CandidateEmail      string `gorm:"type:varchar(255)"`
	JobRequisitionTitle string `gorm:"type:varchar(255)"`
	InterviewDateTime   time.Time
	MeetingMode         models.MeetingMode `gorm:"type:varchar(50)"`
	MeetingLink         string             `gorm:"type:varchar(512)"`
	InterviewAddress    string             `gorm:"type:varchar(512)"`
	Message             string
	Status              models.ScheduleStatus `gorm:"type:varchar(50);index"`
	CancellationReason  string
}

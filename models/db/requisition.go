package dbmodels

import (
	"time"

	"talent-engine-backend/models"

	"github.com/lib/pq"
)

type Requisition struct {
	BaseTenantModel
	SoftDelete
	JobRequisitionCode       string `gorm:"type:varchar(64);index"`
	Title                    string `gorm:"type:varchar(255)"`
	Reason                   string
	QualificationRequirement string
	ExperienceRequirement    string
	KnowledgeRequirement     string
	Status                   models.RequisitionStatus `gorm:"type:varchar(50);index"`
	RequestedByID            string                   `gorm:"type:varchar(36)"`
	RequestedBy              *TenantUser              `gorm:"foreignKey:RequestedByID"`
	RequestedDate            time.Time

	// Advert draft, mutable only while status is open.
	CompanyName         string `gorm:"type:varchar(255)"`
	JobType             string `gorm:"type:varchar(100)"`
	LocationType        models.LocationType `gorm:"type:varchar(50)"`
	Location            string              `gorm:"type:varchar(255)"`
	Description         string
	Responsibilities    pq.StringArray `gorm:"type:text[]"`
	DocumentsRequired   pq.StringArray `gorm:"type:text[]"`
	ComplianceChecklist pq.StringArray `gorm:"type:text[]"`
	DeadlineDate        *time.Time
	StartDate           *time.Time
	AdvertBannerKey     string `gorm:"type:varchar(255)"`
	PublishStatus       bool   `gorm:"index"`
	PublishedAt         *time.Time
}

package dbmodels

import (
	"time"

	"gorm.io/gorm"
)

type BaseModel struct {
	ID        string    `gorm:"primaryKey;default:uuid_generate_v4()" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BaseTenantModel struct {
	BaseModel
	TenantID string  `gorm:"type:varchar(36);index" json:"tenant_id"`
	Tenant   *Tenant `json:"-"`
}

// SoftDelete is embedded by entities that move to the recycle bin instead
// of being destroyed. Purge uses Unscoped.
type SoftDelete struct {
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

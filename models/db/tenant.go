package dbmodels

type Tenant struct {
	BaseModel
	Name     string `gorm:"type:varchar(255)"`
	Domain   string `gorm:"type:varchar(255);uniqueIndex"`
	UniqueID string `gorm:"type:varchar(36);uniqueIndex"`
	IsActive bool
	Config   *TenantConfig `gorm:"foreignKey:TenantID"`
	Users    []TenantUser  `gorm:"foreignKey:TenantID"`
}

// TenantConfig holds the per-tenant outbound email server settings.
// One row per tenant, edit-only.
type TenantConfig struct {
	BaseModel
	TenantID          string `gorm:"type:varchar(36);uniqueIndex"`
	EmailHost         string `gorm:"type:varchar(255)"`
	EmailPort         int
	EmailUseSSL       bool
	EmailHostUser     string `gorm:"type:varchar(255)"`
	EmailHostPassword string `gorm:"type:varchar(255)"`
	DefaultFromEmail  string `gorm:"type:varchar(255)"`
}

func (c TenantConfig) IsConfigured() bool {
	return c.EmailHost != "" && c.EmailPort != 0 && c.EmailHostUser != ""
}

// Module is a product module a tenant can enable and a user can be granted
// access to.
type Module struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);uniqueIndex"`
	Description string
	IsActive    bool
}

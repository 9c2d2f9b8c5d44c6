package dbmodels

import (
	"fmt"

	"talent-engine-backend/models"
)

type TenantUser struct {
	BaseTenantModel
	Email       string `gorm:"type:varchar(255);index"`
	Username    string `gorm:"type:varchar(255);index"`
	Password    string `gorm:"type:varchar(255)"`
	FirstName   string `gorm:"type:varchar(255)"`
	LastName    string `gorm:"type:varchar(255)"`
	AccountType models.AccountType `gorm:"type:varchar(50)"`
	Role        models.UserRole    `gorm:"type:varchar(50)"`
	IsActive    bool

	// Staff profile, required only for AccountType Staff.
	Phone        string `gorm:"type:varchar(50)"`
	Address      string `gorm:"type:varchar(255)"`
	Department   string `gorm:"type:varchar(255)"`
	JobRole      string `gorm:"type:varchar(255)"`
	EmployeeCode string `gorm:"type:varchar(64)"`

	Modules   []Module       `gorm:"many2many:tenant_user_modules"`
	Documents []UserDocument `gorm:"foreignKey:TenantUserID"`
}

func (u TenantUser) GetFullName() string {
	return fmt.Sprintf("%v %v", u.FirstName, u.LastName)
}

// UserDocument is an uploaded document attached to a user at creation time
// (passport, contract, certificates). The file body lives in object storage,
// only the key is stored here.
type UserDocument struct {
	BaseModel
	TenantUserID string `gorm:"type:varchar(36);index"`
	Title        string `gorm:"type:varchar(255)"`
	FileKey      string `gorm:"type:varchar(255)"`
	FileName     string `gorm:"type:varchar(255)"`
}

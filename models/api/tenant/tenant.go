package tenantapimodels

import (
	"strings"

	dbmodels "talent-engine-backend/models/db"

	"github.com/pkg/errors"
)

type EmailConfigData struct {
	EmailHost         string `json:"email_host"`
	EmailPort         int    `json:"email_port"`
	EmailUseSSL       bool   `json:"email_use_ssl"`
	EmailHostUser     string `json:"email_host_user"`
	EmailHostPassword string `json:"email_host_password"`
	DefaultFromEmail  string `json:"default_from_email"`
}

func (r EmailConfigData) Validate() error {
	if len(strings.TrimSpace(r.EmailHost)) == 0 {
		return errors.New("email host must not be empty")
	}
	if r.EmailPort <= 0 || r.EmailPort > 65535 {
		return errors.New("email port is invalid")
	}
	if len(strings.TrimSpace(r.DefaultFromEmail)) == 0 {
		return errors.New("default from email must not be empty")
	}
	return nil
}

type EmailConfigView struct {
	EmailConfigData
	TenantID string `json:"tenant_id"`
}

func EmailConfigConvert(rec dbmodels.TenantConfig) EmailConfigView {
	return EmailConfigView{
		EmailConfigData: EmailConfigData{
			EmailHost:         rec.EmailHost,
			EmailPort:         rec.EmailPort,
			EmailUseSSL:       rec.EmailUseSSL,
			EmailHostUser:     rec.EmailHostUser,
			EmailHostPassword: rec.EmailHostPassword,
			DefaultFromEmail:  rec.DefaultFromEmail,
		},
		TenantID: rec.TenantID,
	}
}

type ModuleView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

func ModuleConvert(rec dbmodels.Module) ModuleView {
	return ModuleView{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		IsActive:    rec.IsActive,
	}
}

type TenantView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Domain   string `json:"domain"`
	UniqueID string `json:"tenant_unique_id"`
	IsActive bool   `json:"is_active"`
}

func TenantConvert(rec dbmodels.Tenant) TenantView {
	return TenantView{
		ID:       rec.ID,
		Name:     rec.Name,
		Domain:   rec.Domain,
		UniqueID: rec.UniqueID,
		IsActive: rec.IsActive,
	}
}

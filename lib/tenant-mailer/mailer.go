package tenantmailer

import (
	"crypto/tls"

	log "github.com/sirupsen/logrus"
	dbmodels "talent-engine-backend/models/db"
	"gopkg.in/gomail.v2"
)

// Provider sends mail through a tenant's own email server, configured per
// tenant in TenantConfig. Unconfigured tenants are skipped silently so a
// missing mail server never blocks the business action.
type Provider interface {
	Send(cfg dbmodels.TenantConfig, to, subject, body string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) Send(cfg dbmodels.TenantConfig, to, subject, body string) error {
	logger := log.
		WithField("tenant_id", cfg.TenantID).
		WithField("recipient", to)
	if !cfg.IsConfigured() {
		logger.Warn("mail not sent, tenant email server is not configured")
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", cfg.DefaultFromEmail)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(cfg.EmailHost, cfg.EmailPort, cfg.EmailHostUser, cfg.EmailHostPassword)
	if cfg.EmailUseSSL {
		dialer.SSL = true
	} else {
		dialer.TLSConfig = &tls.Config{ServerName: cfg.EmailHost}
	}
	if err := dialer.DialAndSend(msg); err != nil {
		logger.WithError(err).Error("tenant mail send failed")
		return err
	}
	logger.Info("tenant mail sent")
	return nil
}

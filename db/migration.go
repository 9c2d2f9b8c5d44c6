package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "talent-engine-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.Tenant{}); err != nil {
		return errors.Wrap(err, "migration failed for Tenant")
	}
	if err := DB.AutoMigrate(&dbmodels.TenantConfig{}); err != nil {
		return errors.Wrap(err, "migration failed for TenantConfig")
	}
	if err := DB.AutoMigrate(&dbmodels.Module{}); err != nil {
		return errors.Wrap(err, "migration failed for Module")
	}
	if err := DB.AutoMigrate(&dbmodels.TenantUser{}); err != nil {
		return errors.Wrap(err, "migration failed for TenantUser")
	}
	if err := DB.AutoMigrate(&dbmodels.UserDocument{}); err != nil {
		return errors.Wrap(err, "migration failed for UserDocument")
	}
	if err := DB.AutoMigrate(&dbmodels.Requisition{}); err != nil {
		return errors.Wrap(err, "migration failed for Requisition")
	}
	if err := DB.AutoMigrate(&dbmodels.JobApplication{}); err != nil {
		return errors.Wrap(err, "migration failed for JobApplication")
	}
	if err := DB.AutoMigrate(&dbmodels.Schedule{}); err != nil {
		return errors.Wrap(err, "migration failed for Schedule")
	}
	log.Info("migrations finished")
	return nil
}

package db

import (
	log "github.com/sirupsen/logrus"
	dbmodels "talent-engine-backend/models/db"
)

var defaultModules = []dbmodels.Module{
	{Name: "Talent Engine", Description: "Job requisitions, adverts and applications", IsActive: true},
	{Name: "Interview Scheduling", Description: "Candidate interview scheduling", IsActive: true},
	{Name: "User Management", Description: "Company user administration", IsActive: true},
	{Name: "Payroll", Description: "Payroll processing", IsActive: true},
	{Name: "Compliance", Description: "Compliance checklists and verification", IsActive: true},
}

// PreloadModules seeds the module catalog on an empty database.
func PreloadModules() {
	var count int64
	if err := DB.Model(&dbmodels.Module{}).Count(&count).Error; err != nil {
		log.WithError(err).Error("module preload check failed")
		return
	}
	if count > 0 {
		return
	}
	log.Info("preloading module catalog")
	for _, rec := range defaultModules {
		if err := DB.Create(&rec).Error; err != nil {
			log.WithError(err).WithField("module", rec.Name).Error("module preload failed")
			return
		}
	}
}

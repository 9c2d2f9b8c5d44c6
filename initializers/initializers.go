package initializers

import (
	"context"

	"talent-engine-backend/config"
	"talent-engine-backend/fiberlog"
	applicationhandler "talent-engine-backend/lib/application"
	authhandler "talent-engine-backend/lib/auth"
	xlsexport "talent-engine-backend/lib/export/xls"
	requisitionhandler "talent-engine-backend/lib/requisition"
	schedulehandler "talent-engine-backend/lib/schedule"
	tenanthandler "talent-engine-backend/lib/tenant"
	tenantmailer "talent-engine-backend/lib/tenant-mailer"
	usershandler "talent-engine-backend/lib/users"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	tenantmailer.NewHandler()
	tenanthandler.NewHandler()
	authhandler.NewHandler()
	usershandler.NewHandler()
	requisitionhandler.NewHandler()
	applicationhandler.NewHandler()
	schedulehandler.NewHandler()
	xlsexport.NewHandler()
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
	"talent-engine-backend/config"
	apiv1 "talent-engine-backend/controllers/v1"
	"talent-engine-backend/fiberlog"
	"talent-engine-backend/initializers"
	"talent-engine-backend/middleware"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // limit of 100MB
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	api := fiber.New()
	api.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api", api)
	api.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiv1.InitAuthApiRouters(api)

	//talent engine core
	talentEngine := fiber.New()
	api.Mount("/talent-engine", talentEngine)
	talentEngine.Use(middleware.AuthorizationRequired())
	apiv1.InitRequisitionApiRouters(talentEngine)
	apiv1.InitScheduleApiRouters(talentEngine)

	//job applications
	jobApplications := fiber.New()
	api.Mount("/talent-engine-job-applications", jobApplications)
	jobApplications.Use(middleware.AuthorizationRequired())
	apiv1.InitApplicationApiRouters(jobApplications)

	//tenant
	tenant := fiber.New()
	api.Mount("/tenant", tenant)
	tenant.Use(middleware.AuthorizationRequired())
	apiv1.InitTenantApiRouters(tenant)

	//users
	users := fiber.New()
	api.Mount("/user", users)
	users.Use(middleware.AuthorizationRequired())
	apiv1.InitUserApiRouters(users)

	app.Hooks().OnShutdown()

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}

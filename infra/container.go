package infra

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"tambua/infra/logger"
	"tambua/infra/metrics"
	"tambua/infra/token"
	"tambua/internal/activity"
	"tambua/internal/agent"
	"tambua/internal/dashboard"
	"tambua/internal/fine"
	"tambua/internal/infraction"
	"tambua/internal/license"
	"tambua/internal/login"
	"tambua/internal/motorcycle"
	"tambua/internal/printing"
	"tambua/internal/report"
	"tambua/internal/vehicle"
	"tambua/internal/ws"
	"tambua/pkg/cache"
	bucket "tambua/pkg/s3"
)

type ContainerDI struct {
	Config      Config
	Logger      *log.Logger
	Metrics     *metrics.Metrics
	Seed        Seed
	PasetoMaker token.Maker
	Cache       cache.Cache
	Photos      bucket.PhotoStore
	Hub         *ws.Hub

	RepositoryActivity   *activity.Repository
	RepositoryAgent      *agent.Repository
	RepositoryVehicle    *vehicle.Repository
	RepositoryMotorcycle *motorcycle.Repository
	RepositoryLicense    *license.Repository
	RepositoryFine       *fine.Repository
	RepositoryInfraction *infraction.Repository
	RepositoryPrinting   *printing.Repository
	LoginRepository      *login.Repository

	ServiceActivity   *activity.Service
	ServiceAgent      *agent.Service
	ServiceVehicle    *vehicle.Service
	ServiceMotorcycle *motorcycle.Service
	ServiceLicense    *license.Service
	ServiceFine       *fine.Service
	ServiceInfraction *infraction.Service
	ServicePrinting   *printing.Service
	ServiceReport     *report.Service
	ServiceDashboard  *dashboard.Service
	LoginService      *login.Service

	HandlerActivity   *activity.Handler
	HandlerAgent      *agent.Handler
	HandlerVehicle    *vehicle.Handler
	HandlerMotorcycle *motorcycle.Handler
	HandlerLicense    *license.Handler
	HandlerFine       *fine.Handler
	HandlerInfraction *infraction.Handler
	HandlerPrinting   *printing.Handler
	HandlerReport     *report.Handler
	HandlerDashboard  *dashboard.Handler
	LoginHandler      *login.Handler
	WsHandler         *ws.Handler
}

func NewContainerDI(ctx context.Context, config Config) (*ContainerDI, error) {
	container := &ContainerDI{Config: config}
	if err := container.buildPkg(ctx); err != nil {
		return nil, err
	}
	container.buildRepository()
	container.buildService()
	container.buildHandler()
	return container, nil
}

func (c *ContainerDI) buildPkg(ctx context.Context) error {
	c.Logger = logger.New(c.Config.LogLevel, c.Config.Verbose, c.Config.Environment)
	c.Metrics = metrics.New()

	seed, err := LoadSeed(time.Now())
	if err != nil {
		return err
	}
	c.Seed = seed

	maker, err := token.NewPasetoMaker(c.Config.SignatureToken)
	if err != nil {
		return fmt.Errorf("SIGNATURE_STRING: %w", err)
	}
	c.PasetoMaker = maker

	c.Cache = cache.NewMemory()
	if c.Config.RedisUrl != "" {
		rdb, err := cache.NewRedis(ctx, c.Config.RedisUrl)
		if err != nil {
			c.Logger.WithError(err).Warn("redis unavailable, using the memory render cache")
		} else {
			c.Cache = rdb
		}
	}

	c.Photos = bucket.Inline{}
	if c.Config.S3Enabled() {
		s3, err := bucket.NewS3(c.Config.AwsAccessKeyID, c.Config.AwsSecretAccessKey, c.Config.AwsRegion, c.Config.AwsBucketName)
		if err != nil {
			c.Logger.WithError(err).Warn("s3 unavailable, photos stay inline")
		} else {
			c.Photos = s3
		}
	}

	c.Hub = ws.NewHub(c.Metrics, c.Logger)
	return nil
}

func (c *ContainerDI) buildRepository() {
	c.RepositoryActivity = activity.NewActivityRepository(c.Seed.Activities)
	c.RepositoryAgent = agent.NewAgentRepository(c.Seed.Agents)
	c.RepositoryVehicle = vehicle.NewVehicleRepository(c.Seed.Vehicles)
	c.RepositoryMotorcycle = motorcycle.NewMotorcycleRepository(c.Seed.Motorcycles)
	c.RepositoryLicense = license.NewLicenseRepository(c.Seed.Licenses)
	c.RepositoryFine = fine.NewFineRepository(c.Seed.Fines)
	c.RepositoryInfraction = infraction.NewInfractionRepository(c.Seed.Infractions)
	c.RepositoryPrinting = printing.NewPrintingRepository(c.Seed.Impressions)
	c.LoginRepository = login.NewRepository(c.Seed.Accounts)
}

func (c *ContainerDI) buildService() {
	c.ServiceActivity = activity.NewActivityService(c.RepositoryActivity, c.Hub, c.Logger)
	c.ServiceAgent = agent.NewAgentService(c.RepositoryAgent, c.ServiceActivity, c.Logger)
	c.ServiceActivity.SetLedger(c.ServiceAgent)

	c.ServiceFine = fine.NewFineService(c.RepositoryFine, c.ServiceActivity, c.Metrics, c.Logger)
	c.ServiceVehicle = vehicle.NewVehicleService(c.RepositoryVehicle, c.ServiceFine, c.ServiceActivity, c.Photos, c.Metrics, c.Logger)
	c.ServiceMotorcycle = motorcycle.NewMotorcycleService(c.RepositoryMotorcycle, c.ServiceFine, c.ServiceActivity, c.Photos, c.Metrics, c.Logger)
	c.ServiceLicense = license.NewLicenseService(c.RepositoryLicense, c.ServiceActivity, c.Photos, c.Metrics, c.Logger)
	c.ServiceInfraction = infraction.NewInfractionService(c.RepositoryInfraction, c.Logger)
	c.ServicePrinting = printing.NewPrintingService(c.RepositoryPrinting, c.ServiceLicense, c.ServiceVehicle, c.ServiceMotorcycle,
		c.ServiceActivity, c.Cache, c.Metrics, c.Logger)
	c.ServiceReport = report.NewReportService(c.ServiceFine, c.ServicePrinting, c.Logger)
	c.ServiceDashboard = dashboard.NewDashboardService(c.ServiceVehicle, c.ServiceMotorcycle, c.ServiceFine, c.ServicePrinting,
		c.ServiceActivity, c.Logger)
	c.LoginService = login.NewService(c.LoginRepository, c.ServiceAgent, c.PasetoMaker, c.Config.TokenTTL, c.Logger)
}

func (c *ContainerDI) buildHandler() {
	c.HandlerActivity = activity.NewActivityHandler(c.ServiceActivity)
	c.HandlerAgent = agent.NewAgentHandler(c.ServiceAgent)
	c.HandlerVehicle = vehicle.NewVehicleHandler(c.ServiceVehicle)
	c.HandlerMotorcycle = motorcycle.NewMotorcycleHandler(c.ServiceMotorcycle)
	c.HandlerLicense = license.NewLicenseHandler(c.ServiceLicense)
	c.HandlerFine = fine.NewFineHandler(c.ServiceFine)
	c.HandlerInfraction = infraction.NewInfractionHandler(c.ServiceInfraction)
	c.HandlerPrinting = printing.NewPrintingHandler(c.ServicePrinting)
	c.HandlerReport = report.NewReportHandler(c.ServiceReport)
	c.HandlerDashboard = dashboard.NewDashboardHandler(c.ServiceDashboard)
	c.LoginHandler = login.NewHandler(c.LoginService)
	c.WsHandler = ws.NewWsHandler(c.Hub, c.ServiceActivity)
}

// NewReportService builds a report service over the seed data alone, for the
// report command which runs without a server.
func NewReportService(l *log.Logger) (*report.Service, error) {
	seed, err := LoadSeed(time.Now())
	if err != nil {
		return nil, err
	}
	fines := fine.NewFineService(fine.NewFineRepository(seed.Fines), nil, nil, l)
	prints := printing.NewPrintingService(printing.NewPrintingRepository(seed.Impressions), nil, nil, nil, nil, cache.NewMemory(), nil, l)
	return report.NewReportService(fines, prints, l), nil
}

package cmd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "tambua/docs"
	"tambua/infra"
	_midlleware "tambua/infra/middleware"
	"tambua/infra/token"
)

func NewRouter(container *infra.ContainerDI) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(_midlleware.RequestLogger(container.Logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods: middleware.DefaultCORSConfig.AllowMethods,
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(container.Metrics.Registry, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/login", container.LoginHandler.Login)

	auth := _midlleware.CheckAuthorization(container.PasetoMaker)
	supervisor := e.Group("", auth, _midlleware.RequireRole(token.RoleSupervisor))
	agent := e.Group("", auth, _midlleware.RequireRole(token.RoleAgent))
	anyone := e.Group("", auth, _midlleware.RequireRole(token.RoleSupervisor, token.RoleAgent))

	supervisor.GET("/dashboard", container.HandlerDashboard.SupervisorDashboardHandler)
	anyone.GET("/dashboard/agent", container.HandlerDashboard.AgentDashboardHandler)

	supervisor.POST("/agents", container.HandlerAgent.CreateAgentHandler)
	supervisor.GET("/agents", container.HandlerAgent.ListAgentsHandler)
	supervisor.GET("/agents/export", container.HandlerAgent.ExportAgentsHandler)
	supervisor.GET("/agents/:id", container.HandlerAgent.GetAgentHandler)
	supervisor.PUT("/agents/:id", container.HandlerAgent.UpdateAgentHandler)
	supervisor.DELETE("/agents/:id", container.HandlerAgent.DeleteAgentHandler)
	supervisor.GET("/activities", container.HandlerActivity.ListActivitiesHandler)
	supervisor.GET("/ws/activity", container.WsHandler.HandleWs)

	agent.POST("/vehicles", container.HandlerVehicle.RegisterVehicleHandler)
	anyone.GET("/vehicles", container.HandlerVehicle.ListVehiclesHandler)
	supervisor.GET("/vehicles/export", container.HandlerVehicle.ExportVehiclesHandler)
	anyone.GET("/vehicles/:id", container.HandlerVehicle.GetVehicleHandler)
	supervisor.PUT("/vehicles/:id", container.HandlerVehicle.UpdateVehicleHandler)
	supervisor.DELETE("/vehicles/:id", container.HandlerVehicle.DeleteVehicleHandler)

	agent.POST("/motorcycles", container.HandlerMotorcycle.RegisterMotorcycleHandler)
	anyone.GET("/motorcycles", container.HandlerMotorcycle.ListMotorcyclesHandler)
	supervisor.GET("/motorcycles/export", container.HandlerMotorcycle.ExportMotorcyclesHandler)
	anyone.GET("/motorcycles/:id", container.HandlerMotorcycle.GetMotorcycleHandler)
	supervisor.PUT("/motorcycles/:id", container.HandlerMotorcycle.UpdateMotorcycleHandler)
	supervisor.DELETE("/motorcycles/:id", container.HandlerMotorcycle.DeleteMotorcycleHandler)

	agent.POST("/licenses", container.HandlerLicense.RegisterLicenseHandler)
	anyone.GET("/licenses", container.HandlerLicense.ListLicensesHandler)
	anyone.GET("/licenses/:number", container.HandlerLicense.GetLicenseHandler)

	anyone.POST("/fines", container.HandlerFine.CreateFineHandler)
	supervisor.GET("/fines", container.HandlerFine.ListFinesHandler)
	supervisor.GET("/fines/export", container.HandlerFine.ExportFinesHandler)
	anyone.GET("/fines/:id", container.HandlerFine.GetFineHandler)
	supervisor.PUT("/fines/:id", container.HandlerFine.UpdateFineHandler)
	supervisor.DELETE("/fines/:id", container.HandlerFine.DeleteFineHandler)

	anyone.GET("/payments/unpaid", container.HandlerFine.UnpaidFinesHandler)
	anyone.POST("/payments", container.HandlerFine.PayFinesHandler)
	anyone.GET("/payments/receipts/:tx", container.HandlerFine.GetReceiptHandler)
	anyone.GET("/payments/receipts/:tx/pdf", container.HandlerFine.ReceiptPdfHandler)

	supervisor.POST("/infractions", container.HandlerInfraction.CreateInfractionHandler)
	anyone.GET("/infractions", container.HandlerInfraction.ListInfractionsHandler)
	anyone.GET("/infractions/:id", container.HandlerInfraction.GetInfractionHandler)
	supervisor.PUT("/infractions/:id", container.HandlerInfraction.UpdateInfractionHandler)
	supervisor.DELETE("/infractions/:id", container.HandlerInfraction.DeleteInfractionHandler)

	supervisor.GET("/printing/history", container.HandlerPrinting.ListImpressionsHandler)
	agent.GET("/printing/:document/preview", container.HandlerPrinting.PreviewHandler)
	agent.GET("/printing/:document/pdf", container.HandlerPrinting.PrintHandler)

	supervisor.GET("/reports", container.HandlerReport.GenerateReportHandler)
	supervisor.GET("/reports/export", container.HandlerReport.ExportReportHandler)

	return e
}

func StartAPI(ctx context.Context, container *infra.ContainerDI) error {
	e := NewRouter(container)

	go container.Hub.Run(ctx)

	go func() {
		for {
			select {
			case <-ctx.Done():
				shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := e.Shutdown(shutdown); err != nil {
					container.Logger.WithError(err).Error("server shutdown")
				}
				return
			default:
				time.Sleep(1 * time.Second)
			}
		}
	}()

	container.Logger.WithField("addr", container.Config.ServerPort).Info("tambua api listening")
	if err := e.Start(container.Config.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

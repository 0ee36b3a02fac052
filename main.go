package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"tambua/cmd"
	"tambua/infra"
	"tambua/infra/logger"
	"tambua/internal/report"
	"tambua/pkg/qrcode"
)

func serve(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	container, err := infra.NewContainerDI(ctx, infra.NewConfig())
	if err != nil {
		return err
	}
	return cmd.StartAPI(ctx, container)
}

func main() {
	log.SetOutput(os.Stderr)

	app := cli.NewApp()
	app.Name = "tambua"
	app.Usage = "Tambua RDC registry API"
	app.Action = serve

	app.Commands = []cli.Command{
		{
			Name:   "serve",
			Usage:  "Start the HTTP API",
			Action: serve,
		},
		{
			Name:      "qr",
			Usage:     "Print a QR code in the terminal",
			ArgsUsage: "<text>",
			Action: func(c *cli.Context) error {
				text := strings.Join(c.Args(), " ")
				if text == "" {
					return cli.NewExitError("qr: text required", 1)
				}
				qrcode.Terminal(os.Stdout, text)
				return nil
			},
		},
		{
			Name:  "report",
			Usage: "Export a report from the seed data to stdout",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "type", Value: report.TypeFines, Usage: "fines or prints"},
				cli.StringFlag{Name: "period", Value: report.PeriodMonthly, Usage: strings.Join(report.Periods, ", ")},
				cli.StringFlag{Name: "zone", Value: report.ZoneAll, Usage: "all, " + strings.Join(report.Zones, ", ")},
				cli.StringFlag{Name: "format", Value: report.FormatCSV, Usage: "csv or pdf"},
				cli.StringFlag{Name: "at", Usage: "reference date, yyyy-mm-dd or RFC3339"},
			},
			Action: func(c *cli.Context) error {
				service, err := infra.NewReportService(logger.Discard())
				if err != nil {
					return err
				}
				export, err := service.ExportReportService(context.Background(), report.ExportReportRequest{
					ReportRequest: report.ReportRequest{
						Type:   c.String("type"),
						Period: c.String("period"),
						Zone:   c.String("zone"),
						At:     c.String("at"),
					},
					Format: c.String("format"),
				})
				if err != nil {
					return cli.NewExitError(err.Error(), 1)
				}
				if _, err := os.Stdout.Write(export.Body); err != nil {
					return err
				}
				log.Infof("%s (%d octets)", export.FileName, len(export.Body))
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

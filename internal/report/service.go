package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"tambua/internal/fine"
	"tambua/internal/printing"
	"tambua/pkg/money"
	"tambua/pkg/pdf"
	"tambua/validation"
)

var (
	ErrEmptyReport = errors.New("Aucune donnée à exporter pour ces critères.")
	ErrBadDate     = errors.New("Date de référence invalide.")
)

type FineSource interface {
	ListFinesService(ctx context.Context, data fine.ListFinesRequest) ([]fine.Fine, error)
}

type PrintSource interface {
	ListImpressionsService(ctx context.Context) ([]printing.Impression, error)
}

type InterfaceService interface {
	GenerateReportService(ctx context.Context, data ReportRequest) (Report, error)
	ExportReportService(ctx context.Context, data ExportReportRequest) (Export, error)
}

type Service struct {
	Fines  FineSource
	Prints PrintSource
	Logger *log.Logger
	Now    func() time.Time
}

func NewReportService(fines FineSource, prints PrintSource, logger *log.Logger) *Service {
	return &Service{Fines: fines, Prints: prints, Logger: logger, Now: time.Now}
}

func inZone(zone, want string) bool {
	return want == "" || want == ZoneAll || strings.EqualFold(zone, want)
}

func inWindow(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

func (s *Service) GenerateReportService(ctx context.Context, data ReportRequest) (Report, error) {
	if err := validation.Validate(data); err != nil {
		return Report{}, err
	}
	if data.Period == "" {
		data.Period = PeriodMonthly
	}
	if data.Zone == "" {
		data.Zone = ZoneAll
	}

	to := s.Now()
	if data.At != "" {
		at, err := validation.ParseDate(data.At)
		if err != nil {
			return Report{}, fmt.Errorf("%w %v", ErrBadDate, err)
		}
		// a bare date covers the whole day
		if len(data.At) == len(validation.DateLayout) {
			at = at.Add(24*time.Hour - time.Nanosecond)
		}
		to = at
	}
	r := Report{Type: data.Type, Period: data.Period, Zone: data.Zone, From: Since(data.Period, to), To: to}

	switch data.Type {
	case TypeFines:
		all, err := s.Fines.ListFinesService(ctx, fine.ListFinesRequest{})
		if err != nil {
			return Report{}, err
		}
		r.Fines = []fine.Fine{}
		for _, f := range all {
			if inZone(f.Zone, data.Zone) && inWindow(f.Date, r.From, r.To) {
				r.Fines = append(r.Fines, f)
			}
		}
		summarizeFines(&r)
	case TypePrints:
		all, err := s.Prints.ListImpressionsService(ctx)
		if err != nil {
			return Report{}, err
		}
		r.Prints = []printing.Impression{}
		for _, p := range all {
			if inZone(p.Zone, data.Zone) && inWindow(p.Date, r.From, r.To) {
				r.Prints = append(r.Prints, p)
			}
		}
		summarizePrints(&r)
	}

	s.Logger.WithFields(log.Fields{"type": r.Type, "period": r.Period, "zone": r.Zone, "rows": r.Len()}).Debug("report generated")
	return r, nil
}

func summarizeFines(r *Report) {
	var paid, pending int64
	status, zones := newCounter(), newCounter()
	dates := make([]time.Time, 0, len(r.Fines))
	amounts := make([]int64, 0, len(r.Fines))
	for _, f := range r.Fines {
		if f.IsPaid() {
			paid += f.Amount
		} else {
			pending += f.Amount
		}
		status.add(f.Status, 1)
		zones.add(f.Zone, 1)
		dates = append(dates, f.Date)
		amounts = append(amounts, f.Amount)
	}

	r.Summary = []Stat{
		{Label: "Total Amendes", Value: strconv.Itoa(len(r.Fines))},
		{Label: "Montant Perçu (CDF)", Value: money.Group(paid)},
		{Label: "Montant en Attente (CDF)", Value: money.Group(pending)},
	}
	r.Pie = status.points()
	r.Bar = Series{Label: "Amendes", Points: zones.points()}
	if r.Period == PeriodMonthly && len(r.Fines) > 0 {
		r.Line = weeks("Montant (CDF)", dates, amounts)
	}
}

func summarizePrints(r *Report) {
	types, agents := newCounter(), newCounter()
	perType := map[string]int{}
	dates := make([]time.Time, 0, len(r.Prints))
	ones := make([]int64, 0, len(r.Prints))
	for _, p := range r.Prints {
		perType[p.DocumentType]++
		types.add(p.DocumentType, 1)
		agents.add(p.AgentName, 1)
		dates = append(dates, p.Date)
		ones = append(ones, 1)
	}

	r.Summary = []Stat{
		{Label: "Total Impressions", Value: strconv.Itoa(len(r.Prints))},
		{Label: "Permis", Value: strconv.Itoa(perType[printing.TypeLicense])},
		{Label: "Cartes Roses", Value: strconv.Itoa(perType[printing.TypePinkCard])},
		{Label: "Attestations", Value: strconv.Itoa(perType[printing.TypeAttestation])},
	}
	r.Pie = types.points()
	r.Bar = Series{Label: "Impressions", Points: agents.points()}
	if r.Period == PeriodMonthly && len(r.Prints) > 0 {
		r.Line = weeks("Impressions", dates, ones)
	}
}

func (s *Service) ExportReportService(ctx context.Context, data ExportReportRequest) (Export, error) {
	if err := validation.Validate(data); err != nil {
		return Export{}, err
	}
	r, err := s.GenerateReportService(ctx, data.ReportRequest)
	if err != nil {
		return Export{}, err
	}
	if r.Len() == 0 {
		return Export{}, ErrEmptyReport
	}

	name := fmt.Sprintf("rapport_%s_%s.%s", r.Type, s.Now().Format(validation.DateLayout), data.Format)
	var body []byte
	var contentType string
	switch data.Format {
	case FormatCSV:
		contentType = "text/csv; charset=utf-8"
		body, err = csvBytes(r)
	default:
		contentType = "application/pdf"
		body, err = pdf.Bytes(table(r, s.Now()))
	}
	if err != nil {
		return Export{}, err
	}
	return Export{FileName: name, ContentType: contentType, Body: body}, nil
}

func table(r Report, now time.Time) pdf.Table {
	t := pdf.Table{
		Subtitle:    fmt.Sprintf("Du %s au %s, zone %s", validation.FormatDateFR(r.From), validation.FormatDateFR(r.To), r.Zone),
		GeneratedAt: now,
	}
	for _, st := range r.Summary {
		t.Summary = append(t.Summary, pdf.Field{Label: st.Label, Value: st.Value})
	}

	if r.Type == TypeFines {
		t.Title = "Rapport des Amendes"
		t.Headers = []string{"Date", "Plaque", "Motif", "Montant", "Statut", "Zone"}
		for _, f := range r.Fines {
			t.Rows = append(t.Rows, []string{
				validation.FormatDateFR(f.Date), f.Plate, f.Reason, money.Group(f.Amount) + " " + f.Currency, f.Status, f.Zone,
			})
		}
		return t
	}

	t.Title = "Rapport des Impressions"
	t.Headers = []string{"Date", "Type", "Identifiant", "Agent", "Zone"}
	for _, p := range r.Prints {
		t.Rows = append(t.Rows, []string{
			validation.FormatDateFR(p.Date), p.DocumentType, p.Identifier, p.AgentName, p.Zone,
		})
	}
	return t
}

func csvBytes(r Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	var rows [][]string
	if r.Type == TypeFines {
		rows = append(rows, []string{"id", "plate", "reason", "driver", "location", "date", "amount", "currency", "status", "zone"})
		for _, f := range r.Fines {
			rows = append(rows, []string{
				f.ID, f.Plate, f.Reason, f.Driver, f.Location, f.Date.Format(time.RFC3339),
				strconv.FormatInt(f.Amount, 10), f.Currency, f.Status, f.Zone,
			})
		}
	} else {
		rows = append(rows, []string{"id", "document_type", "agent_name", "date", "identifier", "zone"})
		for _, p := range r.Prints {
			rows = append(rows, []string{p.ID, p.DocumentType, p.AgentName, p.Date.Format(time.RFC3339), p.Identifier, p.Zone})
		}
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

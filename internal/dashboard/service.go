package dashboard

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"tambua/internal/activity"
	"tambua/internal/fine"
	"tambua/internal/motorcycle"
	"tambua/internal/report"
	"tambua/internal/vehicle"
	"tambua/pkg/money"
	"tambua/validation"
)

var ErrNoAgent = errors.New("Aucun agent associé à ce compte.")

type VehicleSource interface {
	ListVehiclesService(ctx context.Context, data vehicle.ListVehiclesRequest) ([]vehicle.Vehicle, error)
}

type MotorcycleSource interface {
	ListMotorcyclesService(ctx context.Context, data motorcycle.ListMotorcyclesRequest) ([]motorcycle.Motorcycle, error)
}

type InterfaceService interface {
	SupervisorDashboardService(ctx context.Context, data SupervisorRequest) (SupervisorResponse, error)
	AgentDashboardService(ctx context.Context, data AgentRequest) (AgentResponse, error)
}

type Service struct {
	Vehicles    VehicleSource
	Motorcycles MotorcycleSource
	Fines       report.FineSource
	Prints      report.PrintSource
	Activities  activity.InterfaceService
	Logger      *log.Logger
	Now         func() time.Time
}

func NewDashboardService(vehicles VehicleSource, motorcycles MotorcycleSource, fines report.FineSource, prints report.PrintSource,
	activities activity.InterfaceService, logger *log.Logger) *Service {
	return &Service{
		Vehicles:    vehicles,
		Motorcycles: motorcycles,
		Fines:       fines,
		Prints:      prints,
		Activities:  activities,
		Logger:      logger,
		Now:         time.Now,
	}
}

func (s *Service) SupervisorDashboardService(ctx context.Context, data SupervisorRequest) (SupervisorResponse, error) {
	if err := validation.Validate(data); err != nil {
		return SupervisorResponse{}, err
	}
	if data.Period == "" {
		data.Period = PeriodWeekly
	}

	vehicles, err := s.Vehicles.ListVehiclesService(ctx, vehicle.ListVehiclesRequest{})
	if err != nil {
		return SupervisorResponse{}, err
	}
	motorcycles, err := s.Motorcycles.ListMotorcyclesService(ctx, motorcycle.ListMotorcyclesRequest{})
	if err != nil {
		return SupervisorResponse{}, err
	}
	fines, err := s.Fines.ListFinesService(ctx, fine.ListFinesRequest{})
	if err != nil {
		return SupervisorResponse{}, err
	}
	prints, err := s.Prints.ListImpressionsService(ctx)
	if err != nil {
		return SupervisorResponse{}, err
	}

	totals := Totals{
		Vehicles:      len(vehicles),
		Motorcycles:   len(motorcycles),
		Registrations: len(vehicles) + len(motorcycles),
		Prints:        len(prints),
	}
	for _, f := range fines {
		if f.IsPaid() {
			totals.PaidFines++
			totals.CollectedRevenue += f.Amount
		} else {
			totals.PendingFines++
		}
	}

	now := s.Now()
	revenue, from, to := revenueBuckets(data.Period, now)
	var inWindow []fine.Fine
	for _, f := range fines {
		if !f.Date.Before(from) && f.Date.Before(to) {
			inWindow = append(inWindow, f)
		}
		if !f.IsPaid() {
			continue
		}
		paid := paidAt(f)
		if paid.Before(from) || !paid.Before(to) {
			continue
		}
		if i := revenue.index(paid); i >= 0 {
			revenue.series.Points[i].Value += f.Amount
		}
	}

	return SupervisorResponse{
		Period:  data.Period,
		Totals:  totals,
		Revenue: revenue.series,
		Reasons: reasonShares(inWindow),
	}, nil
}

func paidAt(f fine.Fine) time.Time {
	if f.PaidAt != nil {
		return *f.PaidAt
	}
	return f.Date
}

type buckets struct {
	series report.Series
	index  func(t time.Time) int
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// revenueBuckets returns the empty revenue line for the period and the
// half-open window [from, to) it covers.
func revenueBuckets(period string, now time.Time) (buckets, time.Time, time.Time) {
	today := midnight(now)
	b := buckets{series: report.Series{Label: "Revenus"}}

	switch period {
	case PeriodMonthly:
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		to := from.AddDate(0, 1, 0)
		n := report.WeekOfMonth(to.AddDate(0, 0, -1))
		for i := 1; i <= n; i++ {
			b.series.Points = append(b.series.Points, report.Point{Name: fmt.Sprintf("Sem %d", i)})
		}
		b.index = func(t time.Time) int { return report.WeekOfMonth(t.In(now.Location())) - 1 }
		return b, from, to
	case PeriodQuarterly:
		first := time.Month((int(now.Month())-1)/3*3 + 1)
		from := time.Date(now.Year(), first, 1, 0, 0, 0, 0, now.Location())
		for i := 1; i <= 3; i++ {
			b.series.Points = append(b.series.Points, report.Point{Name: fmt.Sprintf("Mois %d", i)})
		}
		b.index = func(t time.Time) int { return int(t.In(now.Location()).Month() - first) }
		return b, from, from.AddDate(0, 3, 0)
	}

	for _, d := range weekdays {
		b.series.Points = append(b.series.Points, report.Point{Name: d})
	}
	b.index = func(t time.Time) int { return (int(t.In(now.Location()).Weekday()) + 6) % 7 }
	return b, today.AddDate(0, 0, -6), today.AddDate(0, 0, 1)
}

// reasonShares keeps the three most frequent reasons and folds the rest into Autres.
func reasonShares(fines []fine.Fine) []Share {
	if len(fines) == 0 {
		return []Share{}
	}
	counts := map[string]int{}
	var order []string
	for _, f := range fines {
		if _, ok := counts[f.Reason]; !ok {
			order = append(order, f.Reason)
		}
		counts[f.Reason]++
	}
	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })

	total := float64(len(fines))
	out := make([]Share, 0, 4)
	others := 0
	for i, reason := range order {
		if i >= 3 {
			others += counts[reason]
			continue
		}
		out = append(out, Share{Name: reason, Count: counts[reason], Percent: percent(counts[reason], total)})
	}
	if others > 0 {
		out = append(out, Share{Name: OthersLabel, Count: others, Percent: percent(others, total)})
	}
	return out
}

func percent(n int, total float64) int {
	return int(math.Round(float64(n) * 100 / total))
}

func (s *Service) AgentDashboardService(ctx context.Context, data AgentRequest) (AgentResponse, error) {
	if data.AgentID == "" {
		return AgentResponse{}, ErrNoAgent
	}
	day := s.Now()
	if data.Date != "" {
		d, err := validation.ParseDate(data.Date)
		if err != nil {
			return AgentResponse{}, err
		}
		day = d
	}

	list, err := s.Activities.AgentActivitiesService(ctx, data.AgentID, day)
	if err != nil {
		return AgentResponse{}, err
	}

	r := AgentResponse{AgentID: data.AgentID, Date: day.Format(validation.DateLayout), Activities: list}
	for _, a := range list {
		switch a.Action {
		case activity.ActionVehicleRegistration:
			r.VehicleRegistrations++
		case activity.ActionMotorcycleRegistration:
			r.MotorcycleRegistrations++
		case activity.ActionLicenseApplication:
			r.LicenseRegistrations++
		case activity.ActionLicensePrint:
			r.Prints.License++
		case activity.ActionPinkCardPrint:
			r.Prints.PinkCard++
		case activity.ActionAttestationPrint:
			r.Prints.Attestation++
		case activity.ActionFinePayment:
			r.FinePaymentsCount++
			if a.Amount != nil {
				r.FinePaymentsValue += *a.Amount
			}
		}
	}
	r.Prints.Total = r.Prints.License + r.Prints.PinkCard + r.Prints.Attestation
	r.FinePaymentsLabel = money.FC(r.FinePaymentsValue)
	return r, nil
}

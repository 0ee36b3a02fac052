package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tambua/infra/logger"
	"tambua/infra/token"
	"tambua/internal/activity"
	"tambua/internal/fine"
	"tambua/internal/motorcycle"
	"tambua/internal/printing"
	"tambua/internal/report"
	"tambua/internal/vehicle"
	"tambua/validation"
)

// A Wednesday.
var now = time.Date(2025, 10, 22, 12, 0, 0, 0, time.UTC)

func at(month time.Month, day int) time.Time {
	return time.Date(2025, month, day, 10, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

type registry struct{}

func (registry) ListVehiclesService(context.Context, vehicle.ListVehiclesRequest) ([]vehicle.Vehicle, error) {
	return []vehicle.Vehicle{{ID: "1"}, {ID: "2"}}, nil
}

func (registry) ListMotorcyclesService(context.Context, motorcycle.ListMotorcyclesRequest) ([]motorcycle.Motorcycle, error) {
	return []motorcycle.Motorcycle{{ID: "m1"}}, nil
}

func (registry) ListFinesService(context.Context, fine.ListFinesRequest) ([]fine.Fine, error) {
	paid, pending := validation.FineStatusPaid, validation.FineStatusPending
	return []fine.Fine{
		{ID: "a", Reason: "Excès de vitesse", Status: paid, Amount: 50000, Date: at(10, 18), PaidAt: ptr(at(10, 20))},
		{ID: "b", Reason: "Excès de vitesse", Status: pending, Amount: 50000, Date: at(10, 21)},
		{ID: "c", Reason: "Stationnement", Status: paid, Amount: 30000, Date: at(10, 22)},
		{ID: "d", Reason: "Défaut assurance", Status: pending, Amount: 200000, Date: at(10, 19)},
		{ID: "e", Reason: "Défaut de casque", Status: validation.FineStatusLate, Amount: 25000, Date: at(10, 17)},
		{ID: "f", Reason: "Feu rouge", Status: paid, Amount: 100000, Date: at(9, 1), PaidAt: ptr(at(10, 2))},
	}, nil
}

func (registry) ListImpressionsService(context.Context) ([]printing.Impression, error) {
	return []printing.Impression{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}}, nil
}

type activities struct {
	list []activity.Activity
}

func (a activities) RecordActivityService(context.Context, activity.RecordActivityDto) (activity.Activity, error) {
	return activity.Activity{}, nil
}

func (a activities) ListActivitiesService(context.Context, activity.ListActivitiesRequest) ([]activity.Activity, error) {
	return a.list, nil
}

func (a activities) AgentActivitiesService(_ context.Context, agentID string, day time.Time) ([]activity.Activity, error) {
	var out []activity.Activity
	for _, x := range a.list {
		if x.AgentID == agentID && activity.SameDay(x.Date, day) {
			out = append(out, x)
		}
	}
	return out, nil
}

func amount(n int64) *int64 { return &n }

func newService() *Service {
	acts := activities{list: []activity.Activity{
		{AgentID: "agent-1", Date: now, Action: activity.ActionVehicleRegistration},
		{AgentID: "agent-1", Date: now, Action: activity.ActionMotorcycleRegistration},
		{AgentID: "agent-1", Date: now, Action: activity.ActionMotorcycleRegistration},
		{AgentID: "agent-1", Date: now, Action: activity.ActionLicensePrint},
		{AgentID: "agent-1", Date: now, Action: activity.ActionAttestationPrint},
		{AgentID: "agent-1", Date: now, Action: activity.ActionFinePayment, Amount: amount(1800000)},
		{AgentID: "agent-1", Date: now, Action: activity.ActionFinePayment, Amount: amount(50000)},
		{AgentID: "agent-1", Date: now.AddDate(0, 0, -1), Action: activity.ActionLicenseApplication},
		{AgentID: "agent-2", Date: now, Action: activity.ActionPinkCardPrint},
	}}
	s := NewDashboardService(registry{}, registry{}, registry{}, registry{}, acts, logger.Discard())
	s.Now = func() time.Time { return now }
	return s
}

func TestSupervisorDashboard_Weekly(t *testing.T) {
	r, err := newService().SupervisorDashboardService(context.Background(), SupervisorRequest{})
	require.NoError(t, err)

	assert.Equal(t, PeriodWeekly, r.Period)
	assert.Equal(t, Totals{
		Vehicles: 2, Motorcycles: 1, Registrations: 3,
		CollectedRevenue: 180000, PaidFines: 3, PendingFines: 3, Prints: 3,
	}, r.Totals)

	require.Len(t, r.Revenue.Points, 7)
	assert.Equal(t, report.Point{Name: "Lun", Value: 50000}, r.Revenue.Points[0])
	assert.Equal(t, report.Point{Name: "Mer", Value: 30000}, r.Revenue.Points[2])
	assert.Equal(t, "Dim", r.Revenue.Points[6].Name)

	assert.Equal(t, []Share{
		{Name: "Excès de vitesse", Count: 2, Percent: 40},
		{Name: "Stationnement", Count: 1, Percent: 20},
		{Name: "Défaut assurance", Count: 1, Percent: 20},
		{Name: OthersLabel, Count: 1, Percent: 20},
	}, r.Reasons)
}

func TestSupervisorDashboard_Monthly(t *testing.T) {
	r, err := newService().SupervisorDashboardService(context.Background(), SupervisorRequest{Period: PeriodMonthly})
	require.NoError(t, err)

	assert.Equal(t, []report.Point{
		{Name: "Sem 1", Value: 100000}, {Name: "Sem 2"}, {Name: "Sem 3"}, {Name: "Sem 4", Value: 80000}, {Name: "Sem 5"},
	}, r.Revenue.Points)
}

func TestSupervisorDashboard_Quarterly(t *testing.T) {
	r, err := newService().SupervisorDashboardService(context.Background(), SupervisorRequest{Period: PeriodQuarterly})
	require.NoError(t, err)

	assert.Equal(t, []report.Point{{Name: "Mois 1", Value: 180000}, {Name: "Mois 2"}, {Name: "Mois 3"}}, r.Revenue.Points)
	assert.Len(t, r.Reasons, 4)
}

func TestSupervisorDashboard_BadPeriod(t *testing.T) {
	_, err := newService().SupervisorDashboardService(context.Background(), SupervisorRequest{Period: "daily"})
	assert.Equal(t, http.StatusBadRequest, statusFor(err))
}

func TestReasonShares_Empty(t *testing.T) {
	assert.Equal(t, []Share{}, reasonShares(nil))
}

func TestAgentDashboard(t *testing.T) {
	s := newService()

	r, err := s.AgentDashboardService(context.Background(), AgentRequest{AgentID: "agent-1"})
	require.NoError(t, err)
	assert.Equal(t, "2025-10-22", r.Date)
	assert.Equal(t, 1, r.VehicleRegistrations)
	assert.Equal(t, 2, r.MotorcycleRegistrations)
	assert.Equal(t, 0, r.LicenseRegistrations)
	assert.Equal(t, PrintCounts{License: 1, Attestation: 1, Total: 2}, r.Prints)
	assert.Equal(t, 2, r.FinePaymentsCount)
	assert.Equal(t, int64(1850000), r.FinePaymentsValue)
	assert.Equal(t, "1 850 000 FC", r.FinePaymentsLabel)

	r, err = s.AgentDashboardService(context.Background(), AgentRequest{AgentID: "agent-1", Date: "2025-10-21"})
	require.NoError(t, err)
	assert.Equal(t, 1, r.LicenseRegistrations)

	_, err = s.AgentDashboardService(context.Background(), AgentRequest{})
	assert.ErrorIs(t, err, ErrNoAgent)
}

func TestAgentDashboardHandler_AgentSeesOwnReport(t *testing.T) {
	h := NewDashboardHandler(newService())
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/dashboard/agent?agent_id=agent-2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("token_user_role", token.RoleAgent)
	c.Set("token_agent_id", "agent-1")

	require.NoError(t, h.AgentDashboardHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"agent_id":"agent-1"`)
}

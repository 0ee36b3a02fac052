package fine

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tambua/infra/logger"
	"tambua/infra/metrics"
	"tambua/internal/activity"
	"tambua/validation"
)

var now = time.Date(2025, 10, 22, 14, 0, 0, 0, time.UTC)

func seed() []Fine {
	return []Fine{
		{ID: "1", Plate: "GOM45D", Reason: "Feu rouge grillé", Driver: "Marie", Location: "Centre-ville", Date: time.Date(2025, 10, 10, 10, 0, 0, 0, time.UTC), Amount: 80000, Currency: Currency, Status: validation.FineStatusPending, Zone: "Goma"},
		{ID: "2", Plate: "BB123C", Reason: "Assurance expirée", Driver: "Richard", Location: "Keshero", Date: time.Date(2025, 10, 7, 11, 0, 0, 0, time.UTC), Amount: 200000, Currency: Currency, Status: validation.FineStatusPaid, Zone: "Goma"},
		{ID: "3", Plate: "KIN89Z", Reason: "Stationnement interdit", Driver: "Jean", Location: "Lycée Wima", Date: time.Date(2025, 9, 5, 12, 0, 0, 0, time.UTC), Amount: 50000, Currency: Currency, Status: validation.FineStatusLate, Zone: "Kinshasa"},
		{ID: "5", Plate: "GOM45D", Reason: "Excès de vitesse", Driver: "Marie", Location: "Aéroport", Date: time.Date(2025, 10, 12, 9, 0, 0, 0, time.UTC), Amount: 120000, Currency: Currency, Status: validation.FineStatusLate, Zone: "Goma"},
	}
}

type recorder struct {
	mu   sync.Mutex
	seen []activity.RecordActivityDto
}

func (r *recorder) RecordActivityService(_ context.Context, data activity.RecordActivityDto) (activity.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, data)
	return activity.Activity{Action: data.Action}, nil
}

func (r *recorder) ListActivitiesService(context.Context, activity.ListActivitiesRequest) ([]activity.Activity, error) {
	return nil, nil
}

func (r *recorder) AgentActivitiesService(context.Context, string, time.Time) ([]activity.Activity, error) {
	return nil, nil
}

func newService() (*Service, *recorder, *metrics.Metrics) {
	rec := &recorder{}
	m := metrics.New()
	s := NewFineService(NewFineRepository(seed()), rec, m, logger.Discard())
	s.Now = func() time.Time { return now }
	return s, rec, m
}

var agent = activity.Actor{AgentID: "agent-1", Name: "Agent Tambua"}

func TestListFines(t *testing.T) {
	s, _, _ := newService()
	ctx := context.Background()

	all, err := s.ListFinesService(ctx, ListFinesRequest{Status: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	late, err := s.ListFinesService(ctx, ListFinesRequest{Status: validation.FineStatusLate})
	require.NoError(t, err)
	assert.Len(t, late, 2)

	byDriver, err := s.ListFinesService(ctx, ListFinesRequest{Search: "richard"})
	require.NoError(t, err)
	require.Len(t, byDriver, 1)
	assert.Equal(t, "2", byDriver[0].ID)

	_, err = s.ListFinesService(ctx, ListFinesRequest{Status: "Annulée"})
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestUpdateDeleteFine(t *testing.T) {
	s, _, _ := newService()
	ctx := context.Background()

	f, err := s.UpdateFineService(ctx, UpdateFineRequest{ID: "3", Reason: "Stationnement gênant", Amount: 45000, Status: validation.FineStatusPending})
	require.NoError(t, err)
	assert.Equal(t, int64(45000), f.Amount)
	assert.Equal(t, "KIN89Z", f.Plate)

	_, err = s.UpdateFineService(ctx, UpdateFineRequest{ID: "3", Reason: "x", Amount: 1, Status: "Payee"})
	assert.Error(t, err)

	_, err = s.UpdateFineService(ctx, UpdateFineRequest{ID: "99", Reason: "x", Amount: 1, Status: validation.FineStatusPaid})
	assert.ErrorIs(t, err, ErrFineNotFound)

	require.NoError(t, s.DeleteFineService(ctx, "3"))
	assert.ErrorIs(t, s.DeleteFineService(ctx, "3"), ErrFineNotFound)
}

func TestFinesByPlate(t *testing.T) {
	s, _, _ := newService()

	got, err := s.FinesByPlateService(context.Background(), " gom45d ")
	require.NoError(t, err)
	assert.Len(t, got.Fines, 2)
	assert.Equal(t, int64(200000), got.Total)
	assert.Equal(t, int64(200000), got.Pending)

	got, err = s.FinesByPlateService(context.Background(), "BB123C")
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Pending)
}

func TestPayFines_All(t *testing.T) {
	s, rec, m := newService()
	ctx := context.Background()

	r, err := s.PayFinesService(ctx, PayFinesRequest{Plate: "gom45d", Method: validation.PaymentMobile}, agent)
	require.NoError(t, err)

	assert.Equal(t, "GOM45D", r.Plate)
	assert.Equal(t, int64(200000), r.Total)
	assert.Len(t, r.Fines, 2)
	assert.Equal(t, fmt.Sprintf("TX-%06d", now.UnixMilli()%1000000), r.TransactionID)
	assert.Equal(t, "Agent Tambua", r.AgentName)

	for _, id := range []string{"1", "5"} {
		f, err := s.GetFineService(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, validation.FineStatusPaid, f.Status)
		assert.Equal(t, r.TransactionID, f.TransactionID)
	}

	require.Len(t, rec.seen, 1)
	assert.Equal(t, activity.ActionFinePayment, rec.seen[0].Action)
	assert.Equal(t, int64(200000), *rec.seen[0].Amount)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Payments))
	assert.Equal(t, 200000.0, testutil.ToFloat64(m.PaidAmount))

	got, err := s.GetReceiptService(ctx, strings.ToLower(r.TransactionID))
	require.NoError(t, err)
	assert.Equal(t, r.Total, got.Total)

	_, err = s.PayFinesService(ctx, PayFinesRequest{Plate: "GOM45D", Method: validation.PaymentCash}, agent)
	assert.ErrorIs(t, err, ErrNothingToPay)
}

func TestPayFines_TransactionIDs(t *testing.T) {
	s, _, _ := newService()
	ctx := context.Background()

	a, err := s.PayFinesService(ctx, PayFinesRequest{Plate: "GOM45D", FineIDs: []string{"1"}, Method: validation.PaymentCash}, agent)
	require.NoError(t, err)
	b, err := s.PayFinesService(ctx, PayFinesRequest{Plate: "GOM45D", FineIDs: []string{"5"}, Method: validation.PaymentCash}, agent)
	require.NoError(t, err)

	assert.Regexp(t, `^TX-\d{6}$`, a.TransactionID)
	assert.Regexp(t, `^TX-\d{6}$`, b.TransactionID)
	assert.NotEqual(t, a.TransactionID, b.TransactionID)
}

func TestPayFines_Rejections(t *testing.T) {
	s, rec, _ := newService()
	ctx := context.Background()

	_, err := s.PayFinesService(ctx, PayFinesRequest{Plate: "BB123C", FineIDs: []string{"2"}, Method: validation.PaymentCard}, agent)
	assert.ErrorIs(t, err, ErrAlreadyPaid)

	_, err = s.PayFinesService(ctx, PayFinesRequest{Plate: "BB123C", FineIDs: []string{"1"}, Method: validation.PaymentCard}, agent)
	assert.ErrorIs(t, err, ErrPlateMismatch)

	_, err = s.PayFinesService(ctx, PayFinesRequest{Plate: "GOM45D", FineIDs: []string{"1", "404"}, Method: validation.PaymentCard}, agent)
	assert.ErrorIs(t, err, ErrFineNotFound)

	_, err = s.PayFinesService(ctx, PayFinesRequest{Plate: "GOM45D", Method: "Chèque"}, agent)
	assert.Error(t, err)

	f, err := s.GetFineService(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, validation.FineStatusPending, f.Status)
	assert.Empty(t, rec.seen)
}

func TestPdfs(t *testing.T) {
	s, _, _ := newService()
	ctx := context.Background()

	b, err := s.ExportFinesPdfService(ctx, ListFinesRequest{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))

	r, err := s.PayFinesService(ctx, PayFinesRequest{Plate: "KIN89Z", Method: validation.PaymentCash}, agent)
	require.NoError(t, err)
	b, err = s.ReceiptPdfService(ctx, r.TransactionID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))

	_, err = s.ReceiptPdfService(ctx, "TX-000000")
	assert.ErrorIs(t, err, ErrReceiptNotFound)
}

func TestPayFinesHandler(t *testing.T) {
	s, _, _ := newService()
	h := NewFineHandler(s)
	e := echo.New()

	body := `{"plate":"GOM45D","fine_ids":["1"],"method":"Espèces"}`
	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("token_user_name", "Agent Tambua")
	c.Set("token_agent_id", "agent-1")

	require.NoError(t, h.PayFinesHandler(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	var r Receipt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Equal(t, int64(80000), r.Total)

	req = httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	require.NoError(t, h.PayFinesHandler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusConflict, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/payments/unpaid", nil)
	rec = httptest.NewRecorder()
	require.NoError(t, h.UnpaidFinesHandler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/payments/unpaid?plate=GOM45D", nil)
	rec = httptest.NewRecorder()
	require.NoError(t, h.UnpaidFinesHandler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	var unpaid PlateFinesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &unpaid))
	require.Len(t, unpaid.Fines, 1)
	assert.Equal(t, "5", unpaid.Fines[0].ID)
}

func TestUpdateFineHandler_BadAmount(t *testing.T) {
	s, _, _ := newService()
	h := NewFineHandler(s)

	req := httptest.NewRequest(http.MethodPut, "/fines/1", strings.NewReader(`{"reason":"x","amount":12.5,"status":"Payée"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.UpdateFineHandler(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

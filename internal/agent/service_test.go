package agent

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tambua/infra/logger"
	"tambua/internal/activity"
)

var now = time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC)

func seed() []Agent {
	return []Agent{
		{ID: "agent-1", Name: "Agent Tambua", Email: "agent@tambua.com", Avatar: "AT", Status: "Actif", RegistrationsToday: 5, FinesCollectedToday: 120000, CountersDay: "2024-06-12"},
		{ID: "agent-2", Name: "John Doe", Email: "john.doe@tambua.com", Avatar: "JD", Status: "Actif", RegistrationsToday: 3, FinesCollectedToday: 85000, CountersDay: "2024-06-12"},
		{ID: "agent-3", Name: "Jane Smith", Email: "jane.smith@tambua.com", Avatar: "JS", Status: "Inactif"},
	}
}

func newService(t *testing.T) (*Service, *activity.Service) {
	t.Helper()
	acts := activity.NewActivityService(activity.NewActivityRepository([]activity.Activity{
		{ID: "x1", AgentID: "agent-1", Date: now.Add(-time.Hour), Action: activity.ActionFinePayment},
		{ID: "x2", AgentID: "agent-1", Date: now.AddDate(0, 0, -2), Action: activity.ActionLicensePrint},
	}), nil, logger.Discard())
	acts.Now = func() time.Time { return now }

	s := NewAgentService(NewAgentRepository(seed()), acts, logger.Discard())
	s.Now = func() time.Time { return now }
	acts.SetLedger(s)
	return s, acts
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "AT", Initials("Agent Tambua"))
	assert.Equal(t, "KM", Initials("kabeya mutombo ilunga"))
	assert.Equal(t, "É", Initials("élodie"))
	assert.Equal(t, "", Initials("  "))
}

func TestCreateAgent(t *testing.T) {
	s, _ := newService(t)
	ctx := context.Background()

	a, err := s.CreateAgentService(ctx, CreateAgentRequest{Name: "Pierre Simon", Email: "pierre.simon@tambua.com", Status: "Actif"})
	require.NoError(t, err)
	assert.Equal(t, "agent-4", a.ID)
	assert.Equal(t, "PS", a.Avatar)
	assert.Zero(t, a.RegistrationsToday)
	assert.Zero(t, a.FinesCollectedToday)

	list, err := s.ListAgentsService(ctx, ListAgentsRequest{})
	require.NoError(t, err)
	assert.Equal(t, "agent-4", list[0].ID)

	_, err = s.CreateAgentService(ctx, CreateAgentRequest{Name: "Dup", Email: "AGENT@tambua.com", Status: "Actif"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = s.CreateAgentService(ctx, CreateAgentRequest{Name: "Bad", Email: "bad@tambua.com", Status: "En congé"})
	assert.Error(t, err)
}

func TestCreateAgent_DeletedIdNotReused(t *testing.T) {
	s, acts := newService(t)
	ctx := context.Background()

	_, err := acts.RecordActivityService(ctx, activity.RecordActivityDto{
		Actor:  activity.Actor{AgentID: "agent-3", Name: "Jane Smith"},
		Action: activity.ActionVehicleRegistration,
	})
	require.NoError(t, err)
	require.NoError(t, s.DeleteAgentService(ctx, "agent-3"))

	a, err := s.CreateAgentService(ctx, CreateAgentRequest{Name: "Pierre Simon", Email: "pierre.simon@tambua.com", Status: "Actif"})
	require.NoError(t, err)
	assert.Equal(t, "agent-4", a.ID)

	d, err := s.GetAgentService(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, d.Activities)
	assert.Zero(t, d.RegistrationsToday)

	require.NoError(t, s.DeleteAgentService(ctx, "agent-4"))
	b, err := s.CreateAgentService(ctx, CreateAgentRequest{Name: "Marie Kahindo", Email: "marie@tambua.com", Status: "Actif"})
	require.NoError(t, err)
	assert.Equal(t, "agent-5", b.ID)
}

func TestCreateAgent_ConcurrentSameEmail(t *testing.T) {
	s, _ := newService(t)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.CreateAgentService(ctx, CreateAgentRequest{Name: "Pierre Simon", Email: "pierre.simon@tambua.com", Status: "Actif"})
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	list, err := s.ListAgentsService(ctx, ListAgentsRequest{Search: "pierre"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUpdateDeleteAgent(t *testing.T) {
	s, _ := newService(t)
	ctx := context.Background()

	a, err := s.UpdateAgentService(ctx, UpdateAgentRequest{ID: "agent-2", Name: "Johnny Dorsey", Email: "john.doe@tambua.com", Status: "Inactif"})
	require.NoError(t, err)
	assert.Equal(t, "JD", a.Avatar)
	assert.Equal(t, "Inactif", a.Status)
	assert.Equal(t, 3, a.RegistrationsToday)

	_, err = s.UpdateAgentService(ctx, UpdateAgentRequest{ID: "agent-2", Name: "X", Email: "agent@tambua.com", Status: "Actif"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = s.UpdateAgentService(ctx, UpdateAgentRequest{ID: "agent-9", Name: "X", Email: "x@tambua.com", Status: "Actif"})
	assert.ErrorIs(t, err, ErrAgentNotFound)

	require.NoError(t, s.DeleteAgentService(ctx, "agent-3"))
	assert.ErrorIs(t, s.DeleteAgentService(ctx, "agent-3"), ErrAgentNotFound)
}

func TestGetAgent_TodayActivities(t *testing.T) {
	s, _ := newService(t)

	d, err := s.GetAgentService(context.Background(), "agent-1")
	require.NoError(t, err)
	assert.Equal(t, "Agent Tambua", d.Name)
	require.Len(t, d.Activities, 1)
	assert.Equal(t, "x1", d.Activities[0].ID)
}

func TestSearchAgents(t *testing.T) {
	s, _ := newService(t)

	got, err := s.ListAgentsService(context.Background(), ListAgentsRequest{Search: "SMITH"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "agent-3", got[0].ID)
}

func TestActivityBumpsCounters(t *testing.T) {
	s, acts := newService(t)
	ctx := context.Background()
	actor := activity.Actor{AgentID: "agent-2", Name: "John Doe"}
	amount := int64(25000)

	_, err := acts.RecordActivityService(ctx, activity.RecordActivityDto{Actor: actor, Action: activity.ActionLicenseApplication})
	require.NoError(t, err)
	_, err = acts.RecordActivityService(ctx, activity.RecordActivityDto{Actor: actor, Action: activity.ActionFinePayment, Amount: &amount})
	require.NoError(t, err)

	d, err := s.GetAgentService(ctx, "agent-2")
	require.NoError(t, err)
	assert.Equal(t, 4, d.RegistrationsToday)
	assert.Equal(t, int64(110000), d.FinesCollectedToday)
	assert.Len(t, d.Activities, 2)
}

func TestCounters_StartOverEachDay(t *testing.T) {
	s, acts := newService(t)
	ctx := context.Background()
	tomorrow := now.AddDate(0, 0, 1)
	s.Now = func() time.Time { return tomorrow }
	acts.Now = func() time.Time { return tomorrow }

	d, err := s.GetAgentService(ctx, "agent-1")
	require.NoError(t, err)
	assert.Zero(t, d.RegistrationsToday)
	assert.Zero(t, d.FinesCollectedToday)

	_, err = acts.RecordActivityService(ctx, activity.RecordActivityDto{
		Actor:  activity.Actor{AgentID: "agent-1", Name: "Agent Tambua"},
		Action: activity.ActionVehicleRegistration,
	})
	require.NoError(t, err)

	d, err = s.GetAgentService(ctx, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, 1, d.RegistrationsToday)
	assert.Zero(t, d.FinesCollectedToday)

	list, err := s.ListAgentsService(ctx, ListAgentsRequest{Search: "john"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Zero(t, list[0].RegistrationsToday)
}

func TestExportAgentsPdf(t *testing.T) {
	s, _ := newService(t)
	b, err := s.ExportAgentsPdfService(context.Background(), ListAgentsRequest{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))
}

func TestHandlers(t *testing.T) {
	s, _ := newService(t)
	h := NewAgentHandler(s)
	e := echo.New()

	body := `{"name":"Marie Kahindo","email":"marie@tambua.com","status":"Actif"}`
	req := httptest.NewRequest(http.MethodPost, "/agents", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.CreateAgentHandler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created Agent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "MK", created.Avatar)

	req = httptest.NewRequest(http.MethodPost, "/agents", strings.NewReader(`{"name":"","email":"x","status":"Actif"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	require.NoError(t, h.CreateAgentHandler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/agents/agent-9", nil)
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("agent-9")
	require.NoError(t, h.GetAgentHandler(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/agents/export", nil)
	rec = httptest.NewRecorder()
	require.NoError(t, h.ExportAgentsHandler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "agents_")
}

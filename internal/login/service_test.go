package login

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tambua/infra/logger"
	"tambua/infra/token"
	"tambua/internal/agent"
)

func newService(t *testing.T) (*Service, token.Maker) {
	t.Helper()
	maker, err := token.NewPasetoMaker("12345678901234567890123456789012")
	require.NoError(t, err)

	admin, err := HashPassword("admin123")
	require.NoError(t, err)
	field, err := HashPassword("agent123")
	require.NoError(t, err)

	repo := NewRepository([]Account{
		{Email: "admin@tambua.com", PasswordHash: admin, Name: "Admin Goma", Role: token.RoleSupervisor, Avatar: "AG"},
		{Email: "agent@tambua.com", PasswordHash: field, Name: "Agent Tambua", Role: token.RoleAgent, Avatar: "AT"},
	})
	agents := agent.NewAgentService(agent.NewAgentRepository([]agent.Agent{
		{ID: "agent-1", Name: "Agent Tambua", Email: "agent@tambua.com", Avatar: "AT", Status: "Actif"},
	}), nil, logger.Discard())

	return NewService(repo, agents, maker, time.Hour, logger.Discard()), maker
}

func TestLogin_Supervisor(t *testing.T) {
	s, maker := newService(t)

	got, err := s.Login(context.Background(), RequestLogin{Email: " ADMIN@tambua.com", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, HomeSupervisor, got.Home)
	assert.Equal(t, ResponseUser{Name: "Admin Goma", Email: "admin@tambua.com", Role: token.RoleSupervisor, Avatar: "AG"}, got.User)

	payload, err := maker.VerifyToken(got.Token)
	require.NoError(t, err)
	assert.Equal(t, token.RoleSupervisor, payload.User.Role)
}

func TestLogin_AgentLinkedToRecord(t *testing.T) {
	s, maker := newService(t)

	got, err := s.Login(context.Background(), RequestLogin{Email: "agent@tambua.com", Password: "agent123"})
	require.NoError(t, err)
	assert.Equal(t, HomeAgent, got.Home)
	assert.Equal(t, "agent-1", got.User.AgentID)

	payload, err := maker.VerifyToken(got.Token)
	require.NoError(t, err)
	assert.Equal(t, "agent-1", payload.User.AgentID)
}

func TestLogin_Rejected(t *testing.T) {
	s, _ := newService(t)
	ctx := context.Background()

	for _, req := range []RequestLogin{
		{Email: "admin@tambua.com", Password: "ADMIN123"},
		{Email: "nobody@tambua.com", Password: "admin123"},
		{Email: "admin@tambua.com"},
	} {
		_, err := s.Login(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Equal(t, "Adresse e-mail ou mot de passe incorrect.", err.Error())
	}
}

func TestLoginHandler(t *testing.T) {
	s, _ := newService(t)
	h := NewHandler(s)
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"agent@tambua.com","password":"nope"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Login(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"agent@tambua.com","password":"agent123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()

	require.NoError(t, h.Login(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"home":"/agent-dashboard"`)
}

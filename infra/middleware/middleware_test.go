package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tambua/infra/token"
)

func newMaker(t *testing.T) token.Maker {
	maker, err := token.NewPasetoMaker("12345678901234567890123456789012")
	require.NoError(t, err)
	return maker
}

func okHandler(c echo.Context) error {
	role, _ := c.Get("token_user_role").(string)
	return c.String(http.StatusOK, role)
}

func TestCheckAuthorization(t *testing.T) {
	maker := newMaker(t)
	e := echo.New()
	tok, _, err := maker.CreateToken(token.User{Name: "Admin Goma", Role: token.RoleSupervisor}, time.Minute)
	require.NoError(t, err)

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		rec := httptest.NewRecorder()

		err := CheckAuthorization(maker)(okHandler)(e.NewContext(req, rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, token.RoleSupervisor, rec.Body.String())
	})

	t.Run("query parameter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?token="+tok, nil)
		rec := httptest.NewRecorder()

		err := CheckAuthorization(maker)(okHandler)(e.NewContext(req, rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		err := CheckAuthorization(maker)(okHandler)(e.NewContext(req, rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()

		err := CheckAuthorization(maker)(okHandler)(e.NewContext(req, rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("token_user_role", token.RoleAgent)

	err := RequireRole(token.RoleSupervisor)(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.Set("token_user_role", token.RoleAgent)

	err = RequireRole(token.RoleSupervisor, token.RoleAgent)(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

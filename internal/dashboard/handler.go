package dashboard

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"tambua/infra/token"
	"tambua/internal/get_token"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewDashboardHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

func statusFor(err error) int {
	var verr validator.ValidationErrors
	switch {
	case errors.Is(err, ErrNoAgent):
		return http.StatusNotFound
	case errors.As(err, &verr):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// SupervisorDashboardHandler godoc
// @Summary Tableau de bord superviseur.
// @Description Totaux, courbe des revenus et répartition des motifs d'amende.
// @Tags Dashboard
// @Produce json
// @Param period query string false "weekly, monthly ou quarterly"
// @Success 200 {object} SupervisorResponse
// @Failure 400 {string} string "Requête invalide"
// @Router /dashboard [get]
// @Security ApiKeyAuth
func (h *Handler) SupervisorDashboardHandler(c echo.Context) error {
	var request SupervisorRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.SupervisorDashboardService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// AgentDashboardHandler godoc
// @Summary Rapport d'activité journalier d'un agent.
// @Description Un agent ne voit que son propre rapport; un superviseur peut choisir l'agent.
// @Tags Dashboard
// @Produce json
// @Param agent_id query string false "ID de l'agent (superviseur)"
// @Param date query string false "Jour (yyyy-mm-dd), aujourd'hui par défaut"
// @Success 200 {object} AgentResponse
// @Failure 404 {string} string "Aucun agent"
// @Router /dashboard/agent [get]
// @Security ApiKeyAuth
func (h *Handler) AgentDashboardHandler(c echo.Context) error {
	var request AgentRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	payload := get_token.GetPayloadToken(c)
	if payload.Role != token.RoleSupervisor || request.AgentID == "" {
		request.AgentID = payload.AgentID
	}

	result, err := h.InterfaceService.AgentDashboardService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

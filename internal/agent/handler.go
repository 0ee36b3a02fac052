package agent

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewAgentHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

func statusFor(err error) int {
	var verr validator.ValidationErrors
	switch {
	case errors.Is(err, ErrAgentNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmailTaken):
		return http.StatusConflict
	case errors.As(err, &verr):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// CreateAgentHandler godoc
// @Summary Ajouter un agent.
// @Description Crée un agent de terrain; l'avatar est dérivé du nom et les compteurs partent de zéro.
// @Tags Agents
// @Accept json
// @Produce json
// @Param request body CreateAgentRequest true "Agent"
// @Success 201 {object} Agent
// @Failure 400 {string} string "Requête invalide"
// @Failure 409 {string} string "E-mail déjà utilisé"
// @Router /agents [post]
// @Security ApiKeyAuth
func (h *Handler) CreateAgentHandler(c echo.Context) error {
	var request CreateAgentRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.CreateAgentService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusCreated, result)
}

// UpdateAgentHandler godoc
// @Summary Modifier un agent.
// @Tags Agents
// @Accept json
// @Produce json
// @Param id path string true "ID de l'agent"
// @Param request body UpdateAgentRequest true "Agent"
// @Success 200 {object} Agent
// @Failure 400 {string} string "Requête invalide"
// @Failure 404 {string} string "Agent introuvable"
// @Router /agents/{id} [put]
// @Security ApiKeyAuth
func (h *Handler) UpdateAgentHandler(c echo.Context) error {
	var request UpdateAgentRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	request.ID = c.Param("id")

	result, err := h.InterfaceService.UpdateAgentService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// DeleteAgentHandler godoc
// @Summary Supprimer un agent.
// @Tags Agents
// @Produce json
// @Param id path string true "ID de l'agent"
// @Success 200 {string} string "Succès"
// @Failure 404 {string} string "Agent introuvable"
// @Router /agents/{id} [delete]
// @Security ApiKeyAuth
func (h *Handler) DeleteAgentHandler(c echo.Context) error {
	if err := h.InterfaceService.DeleteAgentService(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, "Succès")
}

// GetAgentHandler godoc
// @Summary Détail d'un agent.
// @Description L'agent et ses activités du jour.
// @Tags Agents
// @Produce json
// @Param id path string true "ID de l'agent"
// @Success 200 {object} AgentDetailResponse
// @Failure 404 {string} string "Agent introuvable"
// @Router /agents/{id} [get]
// @Security ApiKeyAuth
func (h *Handler) GetAgentHandler(c echo.Context) error {
	result, err := h.InterfaceService.GetAgentService(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// ListAgentsHandler godoc
// @Summary Lister les agents.
// @Tags Agents
// @Produce json
// @Param search query string false "Nom ou e-mail"
// @Success 200 {array} Agent
// @Router /agents [get]
// @Security ApiKeyAuth
func (h *Handler) ListAgentsHandler(c echo.Context) error {
	var request ListAgentsRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.ListAgentsService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// ExportAgentsHandler godoc
// @Summary Exporter les agents en PDF.
// @Tags Agents
// @Produce application/pdf
// @Param search query string false "Nom ou e-mail"
// @Success 200 {file} file
// @Router /agents/export [get]
// @Security ApiKeyAuth
func (h *Handler) ExportAgentsHandler(c echo.Context) error {
	var request ListAgentsRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	b, err := h.InterfaceService.ExportAgentsPdfService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	name := fmt.Sprintf("agents_%s.pdf", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, "application/pdf", b)
}

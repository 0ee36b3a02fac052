package infraction

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewInfractionHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

func statusFor(err error) int {
	var verr validator.ValidationErrors
	switch {
	case errors.Is(err, ErrInfractionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrCodeTaken):
		return http.StatusConflict
	case errors.As(err, &verr):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// CreateInfractionHandler godoc
// @Summary Ajouter une infraction au catalogue.
// @Tags Infractions
// @Accept json
// @Produce json
// @Param request body CreateInfractionRequest true "Infraction"
// @Success 201 {object} InfractionResponse
// @Failure 400 {string} string "Requête invalide"
// @Failure 409 {string} string "Code déjà utilisé"
// @Router /infractions [post]
// @Security ApiKeyAuth
func (h *Handler) CreateInfractionHandler(c echo.Context) error {
	var request CreateInfractionRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.CreateInfractionService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusCreated, result)
}

// UpdateInfractionHandler godoc
// @Summary Modifier une infraction.
// @Tags Infractions
// @Accept json
// @Produce json
// @Param id path string true "ID de l'infraction"
// @Param request body CreateInfractionRequest true "Infraction"
// @Success 200 {object} InfractionResponse
// @Failure 404 {string} string "Infraction introuvable"
// @Router /infractions/{id} [put]
// @Security ApiKeyAuth
func (h *Handler) UpdateInfractionHandler(c echo.Context) error {
	var request UpdateInfractionRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	request.ID = c.Param("id")

	result, err := h.InterfaceService.UpdateInfractionService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// DeleteInfractionHandler godoc
// @Summary Supprimer une infraction.
// @Tags Infractions
// @Produce json
// @Param id path string true "ID de l'infraction"
// @Success 200 {string} string "Succès"
// @Failure 404 {string} string "Infraction introuvable"
// @Router /infractions/{id} [delete]
// @Security ApiKeyAuth
func (h *Handler) DeleteInfractionHandler(c echo.Context) error {
	if err := h.InterfaceService.DeleteInfractionService(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, "Succès")
}

// GetInfractionHandler godoc
// @Summary Obtenir une infraction.
// @Tags Infractions
// @Produce json
// @Param id path string true "ID de l'infraction"
// @Success 200 {object} InfractionResponse
// @Failure 404 {string} string "Infraction introuvable"
// @Router /infractions/{id} [get]
// @Security ApiKeyAuth
func (h *Handler) GetInfractionHandler(c echo.Context) error {
	result, err := h.InterfaceService.GetInfractionService(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// ListInfractionsHandler godoc
// @Summary Catalogue des infractions.
// @Tags Infractions
// @Produce json
// @Success 200 {array} InfractionResponse
// @Router /infractions [get]
// @Security ApiKeyAuth
func (h *Handler) ListInfractionsHandler(c echo.Context) error {
	result, err := h.InterfaceService.ListInfractionsService(c.Request().Context())
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

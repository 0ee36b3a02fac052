package vehicle

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"tambua/internal/activity"
	"tambua/internal/get_token"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewVehicleHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

func statusFor(err error) int {
	var verr validator.ValidationErrors
	switch {
	case errors.Is(err, ErrVehicleNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrPlateTaken):
		return http.StatusConflict
	case errors.As(err, &verr):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// RegisterVehicleHandler godoc
// @Summary Enregistrer un véhicule.
// @Description Formulaire agent: véhicule, propriétaire, permis et photo. Les statuts partent à Valide.
// @Tags Véhicules
// @Accept json
// @Produce json
// @Param request body RegisterVehicleRequest true "Véhicule"
// @Success 201 {object} Vehicle
// @Failure 400 {string} string "Requête invalide"
// @Failure 409 {string} string "Plaque déjà enregistrée"
// @Router /vehicles [post]
// @Security ApiKeyAuth
func (h *Handler) RegisterVehicleHandler(c echo.Context) error {
	var request RegisterVehicleRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	actor := activity.ActorFromPayload(get_token.GetPayloadToken(c))
	result, err := h.InterfaceService.RegisterVehicleService(c.Request().Context(), request, actor)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusCreated, result)
}

// UpdateVehicleHandler godoc
// @Summary Modifier un véhicule.
// @Tags Véhicules
// @Accept json
// @Produce json
// @Param id path string true "ID du véhicule"
// @Param request body UpdateVehicleRequest true "Véhicule"
// @Success 200 {object} Vehicle
// @Failure 400 {string} string "Requête invalide"
// @Failure 404 {string} string "Véhicule introuvable"
// @Router /vehicles/{id} [put]
// @Security ApiKeyAuth
func (h *Handler) UpdateVehicleHandler(c echo.Context) error {
	var request UpdateVehicleRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	request.ID = c.Param("id")

	result, err := h.InterfaceService.UpdateVehicleService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// DeleteVehicleHandler godoc
// @Summary Supprimer un véhicule.
// @Tags Véhicules
// @Produce json
// @Param id path string true "ID du véhicule"
// @Success 200 {string} string "Succès"
// @Failure 404 {string} string "Véhicule introuvable"
// @Router /vehicles/{id} [delete]
// @Security ApiKeyAuth
func (h *Handler) DeleteVehicleHandler(c echo.Context) error {
	if err := h.InterfaceService.DeleteVehicleService(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, "Succès")
}

// GetVehicleHandler godoc
// @Summary Détail d'un véhicule.
// @Description Le véhicule, ses amendes et leurs montants.
// @Tags Véhicules
// @Produce json
// @Param id path string true "ID du véhicule"
// @Success 200 {object} VehicleDetailResponse
// @Failure 404 {string} string "Véhicule introuvable"
// @Router /vehicles/{id} [get]
// @Security ApiKeyAuth
func (h *Handler) GetVehicleHandler(c echo.Context) error {
	result, err := h.InterfaceService.GetVehicleService(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// ListVehiclesHandler godoc
// @Summary Lister les véhicules.
// @Tags Véhicules
// @Produce json
// @Param search query string false "Plaque, propriétaire ou modèle"
// @Success 200 {array} Vehicle
// @Router /vehicles [get]
// @Security ApiKeyAuth
func (h *Handler) ListVehiclesHandler(c echo.Context) error {
	var request ListVehiclesRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.ListVehiclesService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// ExportVehiclesHandler godoc
// @Summary Exporter les véhicules en PDF.
// @Tags Véhicules
// @Produce application/pdf
// @Param search query string false "Plaque, propriétaire ou modèle"
// @Success 200 {file} file
// @Router /vehicles/export [get]
// @Security ApiKeyAuth
func (h *Handler) ExportVehiclesHandler(c echo.Context) error {
	var request ListVehiclesRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	b, err := h.InterfaceService.ExportVehiclesPdfService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	name := fmt.Sprintf("vehicules_%s.pdf", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, "application/pdf", b)
}

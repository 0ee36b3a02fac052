package motorcycle

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

func NewMotorcycleHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

func statusFor(err error) int {
	var verr validator.ValidationErrors
	switch {
	case errors.Is(err, ErrMotorcycleNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrPlateTaken), errors.Is(err, ErrQRTaken):
		return http.StatusConflict
	case errors.As(err, &verr):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// RegisterMotorcycleHandler godoc
// @Summary Enregistrer une moto.
// @Description Formulaire agent: détenteur, moto, numéro QR et photo. Les statuts partent à Valide.
// @Tags Motos
// @Accept json
// @Produce json
// @Param request body RegisterMotorcycleRequest true "Moto"
// @Success 201 {object} Motorcycle
// @Failure 400 {string} string "Requête invalide"
// @Failure 409 {string} string "Plaque déjà enregistrée"
// @Router /motorcycles [post]
// @Security ApiKeyAuth
func (h *Handler) RegisterMotorcycleHandler(c echo.Context) error {
	var request RegisterMotorcycleRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	actor := activity.ActorFromPayload(get_token.GetPayloadToken(c))
	result, err := h.InterfaceService.RegisterMotorcycleService(c.Request().Context(), request, actor)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusCreated, result)
}

// UpdateMotorcycleHandler godoc
// @Summary Modifier une moto.
// @Tags Motos
// @Accept json
// @Produce json
// @Param id path string true "ID de la moto"
// @Param request body UpdateMotorcycleRequest true "Moto"
// @Success 200 {object} Motorcycle
// @Failure 400 {string} string "Requête invalide"
// @Failure 404 {string} string "Moto introuvable"
// @Router /motorcycles/{id} [put]
// @Security ApiKeyAuth
func (h *Handler) UpdateMotorcycleHandler(c echo.Context) error {
	var request UpdateMotorcycleRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	request.ID = c.Param("id")

	result, err := h.InterfaceService.UpdateMotorcycleService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// DeleteMotorcycleHandler godoc
// @Summary Supprimer une moto.
// @Tags Motos
// @Produce json
// @Param id path string true "ID de la moto"
// @Success 200 {string} string "Succès"
// @Failure 404 {string} string "Moto introuvable"
// @Router /motorcycles/{id} [delete]
// @Security ApiKeyAuth
func (h *Handler) DeleteMotorcycleHandler(c echo.Context) error {
	if err := h.InterfaceService.DeleteMotorcycleService(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, "Succès")
}

// GetMotorcycleHandler godoc
// @Summary Détail d'une moto.
// @Description La moto, ses amendes et leurs montants.
// @Tags Motos
// @Produce json
// @Param id path string true "ID de la moto"
// @Success 200 {object} MotorcycleDetailResponse
// @Failure 404 {string} string "Moto introuvable"
// @Router /motorcycles/{id} [get]
// @Security ApiKeyAuth
func (h *Handler) GetMotorcycleHandler(c echo.Context) error {
	result, err := h.InterfaceService.GetMotorcycleService(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// ListMotorcyclesHandler godoc
// @Summary Lister les motos.
// @Tags Motos
// @Produce json
// @Param search query string false "Plaque, propriétaire ou modèle"
// @Success 200 {array} Motorcycle
// @Router /motorcycles [get]
// @Security ApiKeyAuth
func (h *Handler) ListMotorcyclesHandler(c echo.Context) error {
	var request ListMotorcyclesRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.ListMotorcyclesService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// ExportMotorcyclesHandler godoc
// @Summary Exporter les motos en PDF.
// @Tags Motos
// @Produce application/pdf
// @Param search query string false "Plaque, propriétaire ou modèle"
// @Success 200 {file} file
// @Router /motorcycles/export [get]
// @Security ApiKeyAuth
func (h *Handler) ExportMotorcyclesHandler(c echo.Context) error {
	var request ListMotorcyclesRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	b, err := h.InterfaceService.ExportMotorcyclesPdfService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	name := fmt.Sprintf("motos_%s.pdf", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, "application/pdf", b)
}

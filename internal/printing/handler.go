package printing

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"tambua/internal/activity"
	"tambua/internal/get_token"
	"tambua/internal/license"
	"tambua/internal/motorcycle"
	"tambua/internal/vehicle"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewPrintingHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

func statusFor(err error) int {
	var verr validator.ValidationErrors
	switch {
	case errors.Is(err, license.ErrLicenseNotFound),
		errors.Is(err, vehicle.ErrVehicleNotFound),
		errors.Is(err, motorcycle.ErrMotorcycleNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnknownDocument), errors.As(err, &verr):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// PreviewHandler godoc
// @Summary Aperçu d'un document à imprimer.
// @Description Retourne les données imprimées sur la carte et le QR code en data URL.
// @Tags Impression
// @Produce json
// @Param document path string true "license, pink-card ou attestation"
// @Param id query string true "N° de permis ou plaque"
// @Success 200 {object} PreviewResponse
// @Failure 404 {string} string "Document introuvable"
// @Router /printing/{document}/preview [get]
// @Security ApiKeyAuth
func (h *Handler) PreviewHandler(c echo.Context) error {
	var request PrintRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.PreviewService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// PrintHandler godoc
// @Summary Imprimer un document au format carte.
// @Tags Impression
// @Produce application/pdf
// @Param document path string true "license, pink-card ou attestation"
// @Param id query string true "N° de permis ou plaque"
// @Success 200 {file} file
// @Failure 404 {string} string "Document introuvable"
// @Router /printing/{document}/pdf [get]
// @Security ApiKeyAuth
func (h *Handler) PrintHandler(c echo.Context) error {
	var request PrintRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	actor := activity.ActorFromPayload(get_token.GetPayloadToken(c))
	name, b, err := h.InterfaceService.PrintService(c.Request().Context(), request, actor)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, "application/pdf", b)
}

// ListImpressionsHandler godoc
// @Summary Historique des impressions.
// @Tags Impression
// @Produce json
// @Success 200 {array} Impression
// @Router /printing/history [get]
// @Security ApiKeyAuth
func (h *Handler) ListImpressionsHandler(c echo.Context) error {
	result, err := h.InterfaceService.ListImpressionsService(c.Request().Context())
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

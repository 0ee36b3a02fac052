package license

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"tambua/internal/activity"
	"tambua/internal/get_token"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewLicenseHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

func statusFor(err error) int {
	var verr validator.ValidationErrors
	switch {
	case errors.Is(err, ErrLicenseNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNoCategory), errors.Is(err, ErrBadBirthDate), errors.As(err, &verr):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// RegisterLicenseHandler godoc
// @Summary Enregistrer une demande de permis.
// @Description Au moins une catégorie (A à F). Le permis expire cinq ans moins un jour après l'émission.
// @Tags Permis
// @Accept json
// @Produce json
// @Param request body RegisterLicenseRequest true "Demande de permis"
// @Success 201 {object} License
// @Failure 400 {string} string "Requête invalide"
// @Router /licenses [post]
// @Security ApiKeyAuth
func (h *Handler) RegisterLicenseHandler(c echo.Context) error {
	var request RegisterLicenseRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	actor := activity.ActorFromPayload(get_token.GetPayloadToken(c))
	result, err := h.InterfaceService.RegisterLicenseService(c.Request().Context(), request, actor)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusCreated, result)
}

// GetLicenseHandler godoc
// @Summary Rechercher un permis.
// @Tags Permis
// @Produce json
// @Param number path string true "Numéro de permis"
// @Success 200 {object} License
// @Failure 404 {string} string "Permis introuvable"
// @Router /licenses/{number} [get]
// @Security ApiKeyAuth
func (h *Handler) GetLicenseHandler(c echo.Context) error {
	result, err := h.InterfaceService.GetLicenseService(c.Request().Context(), c.Param("number"))
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// ListLicensesHandler godoc
// @Summary Lister les permis.
// @Tags Permis
// @Produce json
// @Param search query string false "Numéro ou nom"
// @Success 200 {array} License
// @Router /licenses [get]
// @Security ApiKeyAuth
func (h *Handler) ListLicensesHandler(c echo.Context) error {
	var request ListLicensesRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.ListLicensesService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

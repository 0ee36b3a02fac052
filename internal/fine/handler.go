package fine

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"tambua/internal/activity"
	"tambua/internal/get_token"
	"tambua/validation"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewFineHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

func statusFor(err error) int {
	var verr validator.ValidationErrors
	switch {
	case errors.Is(err, ErrFineNotFound), errors.Is(err, ErrReceiptNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyPaid), errors.Is(err, ErrPlateMismatch):
		return http.StatusConflict
	case errors.Is(err, ErrNothingToPay), errors.Is(err, ErrUnknownStatus), errors.As(err, &verr):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// CreateFineHandler godoc
// @Summary Dresser une amende.
// @Tags Amendes
// @Accept json
// @Produce json
// @Param request body CreateFineRequest true "Amende"
// @Success 201 {object} Fine
// @Failure 400 {string} string "Requête invalide"
// @Router /fines [post]
// @Security ApiKeyAuth
func (h *Handler) CreateFineHandler(c echo.Context) error {
	var request CreateFineRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.CreateFineService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusCreated, result)
}

// UpdateFineHandler godoc
// @Summary Modifier une amende.
// @Description Motif, montant (entier) et statut.
// @Tags Amendes
// @Accept json
// @Produce json
// @Param id path string true "ID de l'amende"
// @Param request body UpdateFineRequest true "Amende"
// @Success 200 {object} Fine
// @Failure 400 {string} string "Requête invalide"
// @Failure 404 {string} string "Amende introuvable"
// @Router /fines/{id} [put]
// @Security ApiKeyAuth
func (h *Handler) UpdateFineHandler(c echo.Context) error {
	var request UpdateFineRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	request.ID = c.Param("id")

	result, err := h.InterfaceService.UpdateFineService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// DeleteFineHandler godoc
// @Summary Supprimer une amende.
// @Tags Amendes
// @Produce json
// @Param id path string true "ID de l'amende"
// @Success 200 {string} string "Succès"
// @Failure 404 {string} string "Amende introuvable"
// @Router /fines/{id} [delete]
// @Security ApiKeyAuth
func (h *Handler) DeleteFineHandler(c echo.Context) error {
	if err := h.InterfaceService.DeleteFineService(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, "Succès")
}

// GetFineHandler godoc
// @Summary Obtenir une amende.
// @Tags Amendes
// @Produce json
// @Param id path string true "ID de l'amende"
// @Success 200 {object} Fine
// @Failure 404 {string} string "Amende introuvable"
// @Router /fines/{id} [get]
// @Security ApiKeyAuth
func (h *Handler) GetFineHandler(c echo.Context) error {
	result, err := h.InterfaceService.GetFineService(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// ListFinesHandler godoc
// @Summary Lister les amendes.
// @Tags Amendes
// @Produce json
// @Param search query string false "Plaque ou conducteur"
// @Param status query string false "all, En attente, Payée, En retard"
// @Success 200 {array} Fine
// @Failure 400 {string} string "Statut inconnu"
// @Router /fines [get]
// @Security ApiKeyAuth
func (h *Handler) ListFinesHandler(c echo.Context) error {
	var request ListFinesRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.ListFinesService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// ExportFinesHandler godoc
// @Summary Exporter les amendes en PDF.
// @Tags Amendes
// @Produce application/pdf
// @Param search query string false "Plaque ou conducteur"
// @Param status query string false "Statut"
// @Success 200 {file} file
// @Router /fines/export [get]
// @Security ApiKeyAuth
func (h *Handler) ExportFinesHandler(c echo.Context) error {
	var request ListFinesRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	b, err := h.InterfaceService.ExportFinesPdfService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return attachment(c, fmt.Sprintf("amendes_%s.pdf", time.Now().Format("2006-01-02")), b)
}

// UnpaidFinesHandler godoc
// @Summary Amendes impayées d'une plaque.
// @Tags Paiements
// @Produce json
// @Param plate query string true "Plaque"
// @Success 200 {object} PlateFinesResponse
// @Failure 400 {string} string "Requête invalide"
// @Router /payments/unpaid [get]
// @Security ApiKeyAuth
func (h *Handler) UnpaidFinesHandler(c echo.Context) error {
	var request UnpaidFinesRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	if err := validation.Validate(request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.UnpaidFinesService(c.Request().Context(), request.Plate)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// PayFinesHandler godoc
// @Summary Payer des amendes.
// @Description Paie les amendes choisies (ou toutes les impayées de la plaque) et émet un reçu.
// @Tags Paiements
// @Accept json
// @Produce json
// @Param request body PayFinesRequest true "Paiement"
// @Success 201 {object} Receipt
// @Failure 400 {string} string "Requête invalide"
// @Failure 404 {string} string "Amende introuvable"
// @Failure 409 {string} string "Amende déjà payée ou d'une autre plaque"
// @Router /payments [post]
// @Security ApiKeyAuth
func (h *Handler) PayFinesHandler(c echo.Context) error {
	var request PayFinesRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	actor := activity.ActorFromPayload(get_token.GetPayloadToken(c))
	result, err := h.InterfaceService.PayFinesService(c.Request().Context(), request, actor)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusCreated, result)
}

// GetReceiptHandler godoc
// @Summary Obtenir un reçu.
// @Tags Paiements
// @Produce json
// @Param tx path string true "N° de transaction"
// @Success 200 {object} Receipt
// @Failure 404 {string} string "Reçu introuvable"
// @Router /payments/receipts/{tx} [get]
// @Security ApiKeyAuth
func (h *Handler) GetReceiptHandler(c echo.Context) error {
	result, err := h.InterfaceService.GetReceiptService(c.Request().Context(), c.Param("tx"))
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// ReceiptPdfHandler godoc
// @Summary Télécharger un reçu en PDF.
// @Tags Paiements
// @Produce application/pdf
// @Param tx path string true "N° de transaction"
// @Success 200 {file} file
// @Failure 404 {string} string "Reçu introuvable"
// @Router /payments/receipts/{tx}/pdf [get]
// @Security ApiKeyAuth
func (h *Handler) ReceiptPdfHandler(c echo.Context) error {
	tx := c.Param("tx")
	b, err := h.InterfaceService.ReceiptPdfService(c.Request().Context(), tx)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return attachment(c, fmt.Sprintf("recu_%s.pdf", tx), b)
}

func attachment(c echo.Context, name string, b []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, "application/pdf", b)
}

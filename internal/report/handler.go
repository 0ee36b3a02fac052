package report

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewReportHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

func statusFor(err error) int {
	var verr validator.ValidationErrors
	switch {
	case errors.Is(err, ErrEmptyReport):
		return http.StatusNotFound
	case errors.Is(err, ErrBadDate), errors.As(err, &verr):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// GenerateReportHandler godoc
// @Summary Générer un rapport.
// @Description Résumé, graphiques et lignes des amendes ou des impressions sur une période et une zone.
// @Tags Rapports
// @Produce json
// @Param type query string true "fines ou prints"
// @Param period query string false "daily, weekly, monthly, quarterly, semiannual, annual"
// @Param zone query string false "all, Goma, Bukavu, Kinshasa"
// @Param at query string false "Date de référence (yyyy-mm-dd)"
// @Success 200 {object} Report
// @Failure 400 {string} string "Requête invalide"
// @Router /reports [get]
// @Security ApiKeyAuth
func (h *Handler) GenerateReportHandler(c echo.Context) error {
	var request ReportRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.GenerateReportService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// ExportReportHandler godoc
// @Summary Exporter un rapport en PDF ou CSV.
// @Tags Rapports
// @Produce application/pdf
// @Produce text/csv
// @Param type query string true "fines ou prints"
// @Param period query string false "Période"
// @Param zone query string false "Zone"
// @Param at query string false "Date de référence (yyyy-mm-dd)"
// @Param format query string true "pdf ou csv"
// @Success 200 {file} file
// @Failure 404 {string} string "Aucune donnée"
// @Router /reports/export [get]
// @Security ApiKeyAuth
func (h *Handler) ExportReportHandler(c echo.Context) error {
	var request ExportReportRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.ExportReportService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(statusFor(err), err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", result.FileName))
	return c.Blob(http.StatusOK, result.ContentType, result.Body)
}

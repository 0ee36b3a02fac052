package activity

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewActivityHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

// ListActivitiesHandler godoc
// @Summary Lister les activités.
// @Description Journal des activités des agents, filtrable par agent, action et jour.
// @Tags Activités
// @Produce json
// @Param agent_id query string false "ID de l'agent"
// @Param action query string false "Action"
// @Param date query string false "Jour (yyyy-mm-dd)"
// @Success 200 {array} Activity
// @Failure 400 {string} string "Requête invalide"
// @Router /activities [get]
// @Security ApiKeyAuth
func (h *Handler) ListActivitiesHandler(c echo.Context) error {
	var request ListActivitiesRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.InterfaceService.ListActivitiesService(c.Request().Context(), request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

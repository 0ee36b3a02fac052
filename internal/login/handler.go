package login

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	service ServiceInterface
}

func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service}
}

// Login godoc
// @Summary Se connecter.
// @Description Authentifie un superviseur ou un agent par e-mail et mot de passe.
// @Tags Authentification
// @Accept json
// @Produce json
// @Param request body RequestLogin true "Identifiants"
// @Success 200 {object} ResponseLogin "Jeton et profil"
// @Failure 400 {string} string "Requête invalide"
// @Failure 401 {string} string "Adresse e-mail ou mot de passe incorrect."
// @Router /login [post]
func (h *Handler) Login(e echo.Context) error {
	var request RequestLogin
	if err := e.Bind(&request); err != nil {
		return e.JSON(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Login(e.Request().Context(), request)
	if errors.Is(err, ErrInvalidCredentials) {
		return e.JSON(http.StatusUnauthorized, err.Error())
	}
	if err != nil {
		return e.JSON(http.StatusInternalServerError, err.Error())
	}

	return e.JSON(http.StatusOK, result)
}

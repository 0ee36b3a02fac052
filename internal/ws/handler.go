package ws

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"tambua/internal/activity"
	"tambua/internal/get_token"
)

// RecentLimit is how many past activities a new client receives on connect.
const RecentLimit = 20

type Handler struct {
	Activities activity.InterfaceService
	hub        *Hub
}

func NewWsHandler(hub *Hub, activities activity.InterfaceService) *Handler {
	return &Handler{
		hub:        hub,
		Activities: activities,
	}
}

var upgrade = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWs godoc
// @Summary Flux des activités en direct.
// @Description Websocket réservé aux superviseurs. Le jeton peut être passé en paramètre token.
// @Tags Activités
// @Param token query string false "Jeton d'accès"
// @Success 101 {string} string "Switching Protocols"
// @Router /ws/activity [get]
// @Security ApiKeyAuth
func (h *Handler) HandleWs(c echo.Context) error {
	payload := get_token.GetPayloadToken(c)

	conn, err := upgrade.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.hub.Logger.WithError(err).Warn("activity feed upgrade failed")
		return nil
	}

	recent, err := h.Activities.ListActivitiesService(c.Request().Context(), activity.ListActivitiesRequest{})
	if err != nil {
		h.hub.Logger.WithError(err).Warn("recent activities not loaded")
	}
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(Event{Type: "recent", Data: recent}); err != nil {
		_ = conn.Close()
		return nil
	}

	cl := NewClient(conn, payload.Actor())
	if !h.hub.Join(cl) {
		_ = conn.Close()
		return nil
	}

	go cl.writeMessage()
	cl.readMessage(h.hub)
	return nil
}

package get_token

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func GetPayloadToken(c echo.Context) PayloadDTO {
	strID, _ := c.Get("token_id").(uuid.UUID)
	strName, _ := c.Get("token_user_name").(string)
	strEmail, _ := c.Get("token_user_email").(string)
	strRole, _ := c.Get("token_user_role").(string)
	strAvatar, _ := c.Get("token_user_avatar").(string)
	strAgentID, _ := c.Get("token_agent_id").(string)
	strExpiryAt, _ := c.Get("token_expiry_at").(time.Time)

	return PayloadDTO{
		ID:       strID,
		Name:     strName,
		Email:    strEmail,
		Role:     strRole,
		Avatar:   strAvatar,
		AgentID:  strAgentID,
		ExpiryAt: strExpiryAt,
	}
}

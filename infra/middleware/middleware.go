package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"tambua/infra/token"
)

// CheckAuthorization verifies the bearer token (or the token query parameter,
// which websocket clients use) and stores its claims on the echo context.
func CheckAuthorization(maker token.Maker) echo.MiddlewareFunc {
	return func(handlerFunc echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			bearerToken := c.Request().Header.Get("Authorization")
			tokenStr := strings.TrimSpace(strings.Replace(bearerToken, "Bearer ", "", 1))
			if tokenStr == "" {
				tokenStr = c.QueryParam("token")
			}
			if tokenStr == "" {
				return c.JSON(http.StatusUnauthorized, "missing authorization token")
			}

			tokenPayload, err := maker.VerifyToken(tokenStr)
			if err != nil {
				if errors.Is(err, token.ErrExpiredToken) {
					return c.JSON(http.StatusUnauthorized, err.Error())
				}
				return c.JSON(http.StatusUnauthorized, token.ErrInvalidToken.Error())
			}
			c.Set("token_id", tokenPayload.ID)
			c.Set("token_user_name", tokenPayload.User.Name)
			c.Set("token_user_email", tokenPayload.User.Email)
			c.Set("token_user_role", tokenPayload.User.Role)
			c.Set("token_user_avatar", tokenPayload.User.Avatar)
			c.Set("token_agent_id", tokenPayload.User.AgentID)
			c.Set("token_expiry_at", tokenPayload.ExpiredAt)

			return handlerFunc(c)
		}
	}
}

// RequireRole must run after CheckAuthorization.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(handlerFunc echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("token_user_role").(string)
			for _, r := range roles {
				if r == role {
					return handlerFunc(c)
				}
			}
			return c.JSON(http.StatusForbidden, "access denied for role "+role)
		}
	}
}

func RequestLogger(logger *log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			logger.WithFields(log.Fields{
				"method":  req.Method,
				"path":    req.URL.Path,
				"status":  c.Response().Status,
				"latency": time.Since(start).String(),
				"remote":  c.RealIP(),
			}).Info("request")
			return nil
		}
	}
}

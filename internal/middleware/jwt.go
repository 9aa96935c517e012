// Package middleware provides the request processing chain shared by
// the HTTP handlers: JWT auth, role checks, response caching and rate
// limiting.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pawcare/pet-care-booking/internal/utils"
)

// Context keys set by JWTAuth and read by handlers and RequireRole.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// JWTAuth validates the Bearer access token and stores the caller's
// user ID (uint64) and role (string) in the request context. Wrap it
// around every protected route group.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			userID, role, err := utils.ParseAccessToken(secret, strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			c.Set(CtxUserID, userID)
			c.Set(CtxRole, role)
			return next(c)
		}
	}
}

package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/adpshop/backend/pkg/tokens"
)

// Identity resolves an "Authorization: Bearer <token>" header into the
// "user_id" context key. It never rejects a request: a missing or invalid
// token just leaves the request unauthenticated, enforcement is not this
// layer's job.
func Identity(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				raw := strings.TrimPrefix(header, "Bearer ")
				if userID, err := tokens.Parse(raw, secret); err == nil {
					c.Set("user_id", userID)
				}
			}
			return next(c)
		}
	}
}

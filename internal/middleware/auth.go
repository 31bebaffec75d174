package middleware

import "github.com/labstack/echo/v4"

const demoUserEmail = "demo-user@example.com"

// AuthMiddleware resolves the caller's identity into context. Identity
// comes from the X-User-Email header for now; later we can expand this
// to jwt auth or session auth.
func AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := c.Request().Header.Get("X-User-Email")
			if email == "" {
				email = demoUserEmail
			}
			c.Set("user_email", email)
			return next(c)
		}
	}
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/banjos/restaurant-api/internal/model"
)

// RequireAdmin allows callers whose role is admin or superadmin.  It must
// run after JWTAuth so that the user is already loaded into the context.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		u, _ := c.Get(CtxUser).(*model.User)
		if u == nil || !model.IsAdmin(u.Role) {
			return c.JSON(http.StatusForbidden, echo.Map{"detail": "Admin privileges required"})
		}
		return next(c)
	}
}

// RequireSuperadmin allows only superadmin callers.
func RequireSuperadmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		u, _ := c.Get(CtxUser).(*model.User)
		if u == nil || u.Role != model.RoleSuperadmin {
			return c.JSON(http.StatusForbidden, echo.Map{"detail": "Superadmin privileges required"})
		}
		return next(c)
	}
}

package middleware // reusable HTTP middleware for the protected user routes

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/banjos/restaurant-api/internal/repository"
	"github.com/banjos/restaurant-api/internal/utils"
)

// Context keys populated by JWTAuth.
const (
	CtxUser   = "user"    // *model.User of the authenticated caller
	CtxUserID = "user_id" // subject claim of the access token
)

// JWTAuth returns an Echo middleware that validates a Bearer access token,
// enforces the CSRF double-submit header on state-changing requests, loads
// the caller from the store and rejects disabled accounts.  Handlers behind
// it read the caller via c.Get("user").
//
// CSRF enforcement is toggled by csrfOn: when enabled, every method except
// GET, HEAD and OPTIONS must carry an X-CSRF-Token header holding a CSRF
// token issued for the same user as the access token.
func JWTAuth(secret string, csrfOn bool, users *repository.UserRepo) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Not authenticated"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			userID, err := utils.VerifyToken(secret, raw, utils.TokenAccess)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Could not validate credentials"})
			}

			if csrfOn {
				switch c.Request().Method {
				case http.MethodGet, http.MethodHead, http.MethodOptions:
					// safe methods skip the check
				default:
					csrf := c.Request().Header.Get("X-CSRF-Token")
					if csrf == "" || !utils.VerifyCSRFToken(secret, csrf, userID) {
						return c.JSON(http.StatusForbidden, echo.Map{"detail": "CSRF token missing or invalid"})
					}
				}
			}

			user, err := users.GetByID(c.Request().Context(), userID)
			if err != nil {
				if err == repository.ErrNotFound {
					return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Could not validate credentials"})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "internal server error"})
			}
			if user.Disabled {
				return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Inactive user"})
			}

			c.Set(CtxUser, &user)
			c.Set(CtxUserID, user.ID)
			return next(c)
		}
	}
}

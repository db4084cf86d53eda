// Package handler contains the Echo HTTP handlers, one family per entity.
// Error responses use {"detail": ...} bodies throughout.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/banjos/restaurant-api/internal/repository"
)

// reqCtx bounds every store call issued from a handler.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

// fail translates repository errors into HTTP responses.
func fail(c echo.Context, err error) error {
	switch err {
	case repository.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Not found"})
	case repository.ErrEmailExists:
		return c.JSON(http.StatusConflict, echo.Map{"detail": "Email already registered"})
	case repository.ErrMobileExists:
		return c.JSON(http.StatusConflict, echo.Map{"detail": "Mobile number already registered"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "internal server error"})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"detail": msg})
}

// Form field helpers for multipart routes.  Invalid numeric input maps to
// the zero value; routes validate required fields separately.

func formFloat(c echo.Context, name string) float64 {
	f, _ := strconv.ParseFloat(c.FormValue(name), 64)
	return f
}

func formInt(c echo.Context, name string) int {
	n, _ := strconv.Atoi(c.FormValue(name))
	return n
}

func formBool(c echo.Context, name string) bool {
	switch c.FormValue(name) {
	case "1", "true", "TRUE", "True", "on":
		return true
	}
	return false
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Welcome greets API consumers at the root path.
func Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Welcome to the Banjos restaurant API"})
}

// Healthz is the liveness probe.
func Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/banjos/restaurant-api/internal/model"
	"github.com/banjos/restaurant-api/internal/notify"
	"github.com/banjos/restaurant-api/internal/queue"
	"github.com/banjos/restaurant-api/internal/repository"
)

// FranchiseHandler serves the /franchise/requests family.  Requests start as
// "pending"; status moves through the PUT /:id/status/:status route.
type FranchiseHandler struct {
	Franchise *repository.FranchiseRepo
}

func NewFranchiseHandler(r *repository.FranchiseRepo) *FranchiseHandler {
	return &FranchiseHandler{Franchise: r}
}

func (h *FranchiseHandler) Create(c echo.Context) error {
	var fr model.FranchiseRequest
	if err := c.Bind(&fr); err != nil {
		return badRequest(c, "invalid body")
	}
	if fr.UserName == "" || fr.UserEmail == "" || fr.RequestedCity == "" {
		return badRequest(c, "user_name, user_email and requested_city are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	created, err := h.Franchise.Create(ctx, fr)
	if err != nil {
		return fail(c, err)
	}

	if err := notify.PublishEmail(ctx, queue.EmailEvent{
		Recipient: created.UserEmail,
		Subject:   "Your franchise request has been received",
		Template:  queue.TemplateFranchiseCreated,
		Context: map[string]string{
			"name":     created.UserName,
			"location": created.RequestedCity,
		},
	}); err != nil {
		log.Printf("franchise: request email publish failed: %v", err)
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *FranchiseHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	reqs, err := h.Franchise.List(ctx)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, reqs)
}

func (h *FranchiseHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	fr, err := h.Franchise.GetByID(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, fr)
}

func (h *FranchiseHandler) UpdateStatus(c echo.Context) error {
	status := strings.ToLower(c.Param("status"))
	switch status {
	case "pending", "approved", "rejected", "contacted":
	default:
		return badRequest(c, "invalid status")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	fr, err := h.Franchise.UpdateStatus(ctx, c.Param("id"), status)
	if err != nil {
		return fail(c, err)
	}

	if err := notify.PublishEmail(ctx, queue.EmailEvent{
		Recipient: fr.UserEmail,
		Subject:   "Franchise request status update",
		Template:  queue.TemplateFranchiseStatus,
		Context: map[string]string{
			"name":   fr.UserName,
			"status": fr.RequestStatus,
		},
	}); err != nil {
		log.Printf("franchise: status email publish failed: %v", err)
	}

	return c.JSON(http.StatusOK, fr)
}

func (h *FranchiseHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Franchise.Delete(ctx, c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"detail": "Franchise request deleted"})
}

package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/banjos/restaurant-api/internal/model"
	"github.com/banjos/restaurant-api/internal/notify"
	"github.com/banjos/restaurant-api/internal/queue"
	"github.com/banjos/restaurant-api/internal/repository"
	"github.com/banjos/restaurant-api/internal/storage"
)

// TestimonialHandler serves the /testimonial family.  Submissions start as
// "pending" and only become visible once a moderator approves them.
type TestimonialHandler struct {
	Testimonials *repository.TestimonialRepo
}

func NewTestimonialHandler(r *repository.TestimonialRepo) *TestimonialHandler {
	return &TestimonialHandler{Testimonials: r}
}

func (h *TestimonialHandler) Create(c echo.Context) error {
	t := model.Testimonial{
		Name:        c.FormValue("name"),
		Email:       c.FormValue("email"),
		Description: c.FormValue("description"),
		Rating:      formInt(c, "rating"),
	}
	if t.Name == "" || t.Description == "" {
		return badRequest(c, "name and description are required")
	}
	if t.Rating < 1 || t.Rating > 5 {
		return badRequest(c, "rating must be between 1 and 5")
	}

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		url, err := storage.SaveImage(fh)
		if err != nil {
			return fail(c, err)
		}
		t.Image = url
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	created, err := h.Testimonials.Create(ctx, t)
	if err != nil {
		return fail(c, err)
	}

	if created.Email != "" {
		if err := notify.PublishEmail(ctx, queue.EmailEvent{
			Recipient: created.Email,
			Subject:   "Thanks for your feedback",
			Template:  queue.TemplateTestimonialThanks,
			Context:   map[string]string{"name": created.Name},
		}); err != nil {
			log.Printf("testimonial: thanks email publish failed: %v", err)
		}
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *TestimonialHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	ts, err := h.Testimonials.List(ctx)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, ts)
}

func (h *TestimonialHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	t, err := h.Testimonials.GetByID(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

type testimonialStatusReq struct {
	Status string `json:"status"`
}

// UpdateStatus moves a testimonial between pending, approved and rejected.
func (h *TestimonialHandler) UpdateStatus(c echo.Context) error {
	var req testimonialStatusReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	switch req.Status {
	case "pending", "approved", "rejected":
	default:
		return badRequest(c, "invalid status")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	t, err := h.Testimonials.UpdateStatus(ctx, c.Param("id"), req.Status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TestimonialHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Testimonials.Delete(ctx, c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

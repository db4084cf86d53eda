package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/banjos/restaurant-api/internal/model"
	"github.com/banjos/restaurant-api/internal/notify"
	"github.com/banjos/restaurant-api/internal/queue"
	"github.com/banjos/restaurant-api/internal/repository"
	"github.com/banjos/restaurant-api/internal/storage"
)

// CareerHandler serves the /job-positions and /job-applications families.
type CareerHandler struct {
	Positions    *repository.JobPositionRepo
	Applications *repository.JobApplicationRepo
}

func NewCareerHandler(p *repository.JobPositionRepo, a *repository.JobApplicationRepo) *CareerHandler {
	return &CareerHandler{Positions: p, Applications: a}
}

// --- Job positions ---

func (h *CareerHandler) CreatePosition(c echo.Context) error {
	p := model.JobPosition{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		MinSalary:   formFloat(c, "min_salary"),
		MaxSalary:   formFloat(c, "max_salary"),
		BranchName:  c.FormValue("branch_name"),
		JobType:     c.FormValue("job_type"),
	}
	if p.Title == "" {
		return badRequest(c, "title is required")
	}

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		url, err := storage.SaveImage(fh)
		if err != nil {
			return fail(c, err)
		}
		p.ImageURL = url
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	created, err := h.Positions.Create(ctx, p)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *CareerHandler) ListPositions(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	positions, err := h.Positions.List(ctx)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, positions)
}

func (h *CareerHandler) GetPosition(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.Positions.GetByID(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *CareerHandler) UpdatePosition(c echo.Context) error {
	var upd model.JobPositionUpdate

	strField := func(name string, dst **string) {
		if v := c.FormValue(name); v != "" {
			*dst = &v
		}
	}
	strField("title", &upd.Title)
	strField("description", &upd.Description)
	strField("branch_name", &upd.BranchName)
	strField("job_type", &upd.JobType)

	if v := c.FormValue("min_salary"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return badRequest(c, "invalid min_salary")
		}
		upd.MinSalary = &f
	}
	if v := c.FormValue("max_salary"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return badRequest(c, "invalid max_salary")
		}
		upd.MaxSalary = &f
	}

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		url, err := storage.SaveImage(fh)
		if err != nil {
			return fail(c, err)
		}
		upd.ImageURL = &url
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.Positions.Update(ctx, c.Param("id"), upd)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *CareerHandler) DeletePosition(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Positions.Delete(ctx, c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"detail": "Job position deleted"})
}

// --- Job applications ---

// CreateApplication accepts a multipart form with a required resume upload.
// The position title is copied onto the application so listings do not need
// a second lookup.
func (h *CareerHandler) CreateApplication(c echo.Context) error {
	a := model.JobApplication{
		FullName:      c.FormValue("full_name"),
		Email:         c.FormValue("email"),
		Phone:         c.FormValue("phone"),
		Address:       c.FormValue("address"),
		JobPositionID: c.FormValue("job_position_id"),
		Experience:    c.FormValue("experience"),
		Skills:        c.FormValue("skills"),
		CoverLetter:   c.FormValue("cover_letter"),
	}
	if a.FullName == "" || a.Email == "" || a.JobPositionID == "" {
		return badRequest(c, "full_name, email and job_position_id are required")
	}

	fh, err := c.FormFile("resume")
	if err != nil || fh == nil {
		return badRequest(c, "resume file is required")
	}
	resumeURL, err := storage.SaveResume(fh)
	if err != nil {
		return fail(c, err)
	}
	a.ResumeURL = resumeURL

	ctx, cancel := reqCtx(c)
	defer cancel()

	pos, err := h.Positions.GetByID(ctx, a.JobPositionID)
	if err != nil {
		if err == repository.ErrNotFound {
			return badRequest(c, "unknown job_position_id")
		}
		return fail(c, err)
	}
	a.JobPositionTitle = pos.Title

	created, err := h.Applications.Create(ctx, a)
	if err != nil {
		return fail(c, err)
	}

	if err := notify.PublishEmail(ctx, queue.EmailEvent{
		Recipient: created.Email,
		Subject:   "We received your application",
		Template:  queue.TemplateApplicationCreated,
		Context: map[string]string{
			"name":      created.FullName,
			"job_title": created.JobPositionTitle,
		},
	}); err != nil {
		log.Printf("career: application email publish failed: %v", err)
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *CareerHandler) ListApplications(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	apps, err := h.Applications.List(ctx)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, apps)
}

// FilterApplications returns applications whose position title matches the
// job_title query parameter exactly.
func (h *CareerHandler) FilterApplications(c echo.Context) error {
	title := c.QueryParam("job_title")
	if title == "" {
		return badRequest(c, "job_title query parameter is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	apps, err := h.Applications.FilterByTitle(ctx, title)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, apps)
}

func (h *CareerHandler) GetApplication(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	a, err := h.Applications.GetByID(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

type applicationStatusReq struct {
	Status string `json:"status"`
}

func (h *CareerHandler) UpdateApplicationStatus(c echo.Context) error {
	var req applicationStatusReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if !model.ValidApplicationStatus(req.Status) {
		return badRequest(c, "invalid status")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	a, err := h.Applications.UpdateStatus(ctx, c.Param("id"), req.Status)
	if err != nil {
		return fail(c, err)
	}

	if err := notify.PublishEmail(ctx, queue.EmailEvent{
		Recipient: a.Email,
		Subject:   "Update on your application",
		Template:  queue.TemplateApplicationStatus,
		Context: map[string]string{
			"name":      a.FullName,
			"job_title": a.JobPositionTitle,
			"status":    a.Status,
		},
	}); err != nil {
		log.Printf("career: status email publish failed: %v", err)
	}

	return c.JSON(http.StatusOK, a)
}

func (h *CareerHandler) DeleteApplication(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Applications.Delete(ctx, c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"detail": "Job application deleted"})
}

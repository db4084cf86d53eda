package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/banjos/restaurant-api/internal/model"
	"github.com/banjos/restaurant-api/internal/repository"
	"github.com/banjos/restaurant-api/internal/storage"
)

// OrderLinkHandler serves /api/online-order-links.  Create and update accept
// multipart forms so a platform logo can be uploaded alongside the fields.
type OrderLinkHandler struct {
	Links *repository.OrderLinkRepo
}

func NewOrderLinkHandler(r *repository.OrderLinkRepo) *OrderLinkHandler {
	return &OrderLinkHandler{Links: r}
}

func (h *OrderLinkHandler) Create(c echo.Context) error {
	l := model.OnlineOrderLink{
		Platform: c.FormValue("platform"),
		URL:      c.FormValue("url"),
		BranchID: c.FormValue("branch_id"),
	}
	if l.Platform == "" || l.URL == "" {
		return badRequest(c, "platform and url are required")
	}

	if fh, err := c.FormFile("logo"); err == nil && fh != nil {
		url, err := storage.SaveImage(fh)
		if err != nil {
			return fail(c, err)
		}
		l.Logo = url
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	created, err := h.Links.Create(ctx, l)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *OrderLinkHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	links, err := h.Links.List(ctx)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, links)
}

func (h *OrderLinkHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	l, err := h.Links.GetByID(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *OrderLinkHandler) Update(c echo.Context) error {
	var upd model.OnlineOrderLinkUpdate

	strField := func(name string, dst **string) {
		if v := c.FormValue(name); v != "" {
			*dst = &v
		}
	}
	strField("platform", &upd.Platform)
	strField("url", &upd.URL)
	strField("branch_id", &upd.BranchID)

	if fh, err := c.FormFile("logo"); err == nil && fh != nil {
		url, err := storage.SaveImage(fh)
		if err != nil {
			return fail(c, err)
		}
		upd.Logo = &url
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	l, err := h.Links.Update(ctx, c.Param("id"), upd)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *OrderLinkHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Links.Delete(ctx, c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"detail": "Online order link deleted"})
}

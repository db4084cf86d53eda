package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/banjos/restaurant-api/internal/model"
	"github.com/banjos/restaurant-api/internal/repository"
	"github.com/banjos/restaurant-api/internal/storage"
)

// MenuHandler serves the /menu and /categories families.
type MenuHandler struct {
	Menu *repository.MenuRepo
}

func NewMenuHandler(r *repository.MenuRepo) *MenuHandler {
	return &MenuHandler{Menu: r}
}

// CreateItem accepts a multipart form.  parcel_price is nullable: an absent
// or empty field stores NULL, not zero.
func (h *MenuHandler) CreateItem(c echo.Context) error {
	m := model.MenuItem{
		Name:         c.FormValue("name"),
		Description:  c.FormValue("description"),
		CategoryName: c.FormValue("category_name"),
		Price:        formFloat(c, "price"),
		IsAvailable:  formBool(c, "is_available"),
		IsVeg:        formBool(c, "is_veg"),
	}
	if m.Name == "" || m.CategoryName == "" {
		return badRequest(c, "name and category_name are required")
	}
	if v := c.FormValue("parcel_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return badRequest(c, "invalid parcel_price")
		}
		m.ParcelPrice = &f
	}

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		url, err := storage.SaveImage(fh)
		if err != nil {
			return fail(c, err)
		}
		m.ImageURL = url
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	created, err := h.Menu.Create(ctx, m)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *MenuHandler) ListItems(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	items, err := h.Menu.List(ctx)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *MenuHandler) GetItem(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	m, err := h.Menu.GetByID(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *MenuHandler) UpdateItem(c echo.Context) error {
	var upd model.MenuItemUpdate

	strField := func(name string, dst **string) {
		if v := c.FormValue(name); v != "" {
			*dst = &v
		}
	}
	strField("name", &upd.Name)
	strField("description", &upd.Description)
	strField("category_name", &upd.CategoryName)

	if v := c.FormValue("price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return badRequest(c, "invalid price")
		}
		upd.Price = &f
	}
	// "null" clears the parcel price back to no-value; any number sets it.
	if v := c.FormValue("parcel_price"); v != "" {
		if v == "null" {
			upd.ClearParcelPrice = true
		} else {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return badRequest(c, "invalid parcel_price")
			}
			upd.ParcelPrice = &f
		}
	}
	if v := c.FormValue("is_available"); v != "" {
		b := formBool(c, "is_available")
		upd.IsAvailable = &b
	}
	if v := c.FormValue("is_veg"); v != "" {
		b := formBool(c, "is_veg")
		upd.IsVeg = &b
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

	m, err := h.Menu.Update(ctx, c.Param("id"), upd)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *MenuHandler) DeleteItem(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Menu.Delete(ctx, c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"detail": "Menu item deleted"})
}

// --- Categories ---

type categoryReq struct {
	Name string `json:"name"`
}

func (h *MenuHandler) CreateCategory(c echo.Context) error {
	var req categoryReq
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return badRequest(c, "name is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	cat, err := h.Menu.CreateCategory(ctx, req.Name)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, cat)
}

func (h *MenuHandler) ListCategories(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	cats, err := h.Menu.ListCategories(ctx)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, cats)
}

func (h *MenuHandler) GetCategory(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	cat, err := h.Menu.GetCategory(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *MenuHandler) UpdateCategory(c echo.Context) error {
	var req categoryReq
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return badRequest(c, "name is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	cat, err := h.Menu.UpdateCategory(ctx, c.Param("id"), req.Name)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *MenuHandler) DeleteCategory(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Menu.DeleteCategory(ctx, c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"detail": "Category deleted"})
}

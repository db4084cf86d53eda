package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/banjos/restaurant-api/internal/model"
	"github.com/banjos/restaurant-api/internal/repository"
	"github.com/banjos/restaurant-api/internal/storage"
)

// GalleryHandler serves the /gallery_cat/categories and /images families.
// Both accept multipart forms; gallery uploads land under
// static/images/gallery.
type GalleryHandler struct {
	Gallery *repository.GalleryRepo
}

func NewGalleryHandler(r *repository.GalleryRepo) *GalleryHandler {
	return &GalleryHandler{Gallery: r}
}

// --- Gallery categories ---

func (h *GalleryHandler) CreateCategory(c echo.Context) error {
	name := c.FormValue("name")
	if name == "" {
		return badRequest(c, "name is required")
	}

	imageURL := ""
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		url, err := storage.SaveGalleryImage(fh)
		if err != nil {
			return fail(c, err)
		}
		imageURL = url
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	cat, err := h.Gallery.CreateCategory(ctx, name, imageURL)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, cat)
}

func (h *GalleryHandler) ListCategories(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	cats, err := h.Gallery.ListCategories(ctx)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, cats)
}

func (h *GalleryHandler) GetCategory(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	cat, err := h.Gallery.GetCategory(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *GalleryHandler) UpdateCategory(c echo.Context) error {
	name := c.FormValue("name")
	imageURL := ""
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		url, err := storage.SaveGalleryImage(fh)
		if err != nil {
			return fail(c, err)
		}
		imageURL = url
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	cat, err := h.Gallery.UpdateCategory(ctx, c.Param("id"), name, imageURL)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *GalleryHandler) DeleteCategory(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Gallery.DeleteCategory(ctx, c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"detail": "Gallery category deleted"})
}

// --- Images ---

func (h *GalleryHandler) CreateImage(c echo.Context) error {
	img := model.Image{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		CategoryID:  c.FormValue("category_id"),
	}
	if img.Name == "" || img.CategoryID == "" {
		return badRequest(c, "name and category_id are required")
	}

	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return badRequest(c, "file is required")
	}
	path, err := storage.SaveGalleryImage(fh)
	if err != nil {
		return fail(c, err)
	}
	img.FilePath = path

	ctx, cancel := reqCtx(c)
	defer cancel()

	created, err := h.Gallery.CreateImage(ctx, img)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *GalleryHandler) ListImages(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	images, err := h.Gallery.ListImages(ctx)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, images)
}

func (h *GalleryHandler) GetImage(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	img, err := h.Gallery.GetImage(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, img)
}

func (h *GalleryHandler) UpdateImage(c echo.Context) error {
	filePath := ""
	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		path, err := storage.SaveGalleryImage(fh)
		if err != nil {
			return fail(c, err)
		}
		filePath = path
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	img, err := h.Gallery.UpdateImage(ctx, c.Param("id"),
		c.FormValue("name"), c.FormValue("description"), c.FormValue("category_id"), filePath)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, img)
}

func (h *GalleryHandler) DeleteImage(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Gallery.DeleteImage(ctx, c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"detail": "Image deleted"})
}

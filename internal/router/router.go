// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/banjos/restaurant-api/internal/config"
	"github.com/banjos/restaurant-api/internal/handler"
	"github.com/banjos/restaurant-api/internal/middleware"
	"github.com/banjos/restaurant-api/internal/repository"
)

// Handlers bundles every handler needed to register the full route table.
type Handlers struct {
	Users        *handler.UserHandler
	Branches     *handler.BranchHandler
	Menu         *handler.MenuHandler
	Franchise    *handler.FranchiseHandler
	Career       *handler.CareerHandler
	Gallery      *handler.GalleryHandler
	OrderLinks   *handler.OrderLinkHandler
	Testimonials *handler.TestimonialHandler
}

// Register mounts the complete API surface.  Entity families are public;
// only the /users routes sit behind JWT auth, with admin gates on register
// and listing.  Uploaded files are served back under /static.
func Register(e *echo.Echo, cfg config.Config, h Handlers, users *repository.UserRepo) {
	e.GET("/", handler.Welcome)
	e.GET("/healthz", handler.Healthz)
	e.Static("/static", "static")

	// Users: login/refresh/bootstrap are open, everything else needs a
	// valid access token (and CSRF header on writes when enabled).
	u := e.Group("/users")
	u.POST("/login", h.Users.Login)
	u.POST("/refresh-token", h.Users.RefreshToken)
	u.POST("/bootstrap", h.Users.Bootstrap)

	auth := e.Group("/users")
	auth.Use(middleware.JWTAuth(cfg.JWTSecret, cfg.CSRFProtection, users))
	auth.POST("/register", h.Users.Register, middleware.RequireAdmin)
	auth.GET("", h.Users.List, middleware.RequireAdmin)
	auth.GET("/me", h.Users.Me)
	auth.GET("/:id", h.Users.Get)
	auth.PUT("/:id", h.Users.Update)
	auth.DELETE("/:id", h.Users.Delete)

	b := e.Group("/branches")
	b.POST("", h.Branches.Create)
	b.GET("", h.Branches.List)
	b.GET("/:id", h.Branches.Get)
	b.PUT("/:id", h.Branches.Update)
	b.DELETE("/:id", h.Branches.Delete)

	cat := e.Group("/categories")
	cat.POST("", h.Menu.CreateCategory)
	cat.GET("", h.Menu.ListCategories)
	cat.GET("/:id", h.Menu.GetCategory)
	cat.PUT("/:id", h.Menu.UpdateCategory)
	cat.DELETE("/:id", h.Menu.DeleteCategory)

	m := e.Group("/menu")
	m.POST("", h.Menu.CreateItem)
	m.GET("", h.Menu.ListItems)
	m.GET("/:id", h.Menu.GetItem)
	m.PUT("/:id", h.Menu.UpdateItem)
	m.DELETE("/:id", h.Menu.DeleteItem)

	fr := e.Group("/franchise/requests")
	fr.POST("", h.Franchise.Create)
	fr.GET("", h.Franchise.List)
	fr.GET("/:id", h.Franchise.Get)
	fr.PUT("/:id/status/:status", h.Franchise.UpdateStatus)
	fr.DELETE("/:id", h.Franchise.Delete)

	jp := e.Group("/job-positions")
	jp.POST("", h.Career.CreatePosition)
	jp.GET("", h.Career.ListPositions)
	jp.GET("/:id", h.Career.GetPosition)
	jp.PUT("/:id", h.Career.UpdatePosition)
	jp.DELETE("/:id", h.Career.DeletePosition)

	ja := e.Group("/job-applications")
	ja.POST("", h.Career.CreateApplication)
	ja.GET("", h.Career.ListApplications)
	ja.GET("/filter", h.Career.FilterApplications)
	ja.GET("/:id", h.Career.GetApplication)
	ja.PUT("/:id/status", h.Career.UpdateApplicationStatus)
	ja.DELETE("/:id", h.Career.DeleteApplication)

	// Gallery category paths keep the original shape: creation lives at
	// /gallery_cat/categories/add, the rest under /gallery_cat/categories.
	gc := e.Group("/gallery_cat/categories")
	gc.POST("/add", h.Gallery.CreateCategory)
	gc.GET("", h.Gallery.ListCategories)
	gc.GET("/:id", h.Gallery.GetCategory)
	gc.PUT("/:id", h.Gallery.UpdateCategory)
	gc.DELETE("/:id", h.Gallery.DeleteCategory)

	img := e.Group("/images")
	img.POST("", h.Gallery.CreateImage)
	img.GET("", h.Gallery.ListImages)
	img.GET("/:id", h.Gallery.GetImage)
	img.PUT("/:id", h.Gallery.UpdateImage)
	img.DELETE("/:id", h.Gallery.DeleteImage)

	ol := e.Group("/api/online-order-links")
	ol.POST("", h.OrderLinks.Create)
	ol.GET("", h.OrderLinks.List)
	ol.GET("/:id", h.OrderLinks.Get)
	ol.PUT("/:id", h.OrderLinks.Update)
	ol.DELETE("/:id", h.OrderLinks.Delete)

	t := e.Group("/testimonial")
	t.POST("", h.Testimonials.Create)
	t.GET("", h.Testimonials.List)
	t.GET("/:id", h.Testimonials.Get)
	t.PATCH("/:id/status", h.Testimonials.UpdateStatus)
	t.DELETE("/:id", h.Testimonials.Delete)
}

package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/banjos/restaurant-api/internal/config"
	"github.com/banjos/restaurant-api/internal/middleware"
	"github.com/banjos/restaurant-api/internal/model"
	"github.com/banjos/restaurant-api/internal/notify"
	"github.com/banjos/restaurant-api/internal/queue"
	"github.com/banjos/restaurant-api/internal/repository"
	"github.com/banjos/restaurant-api/internal/utils"
)

// UserHandler bundles dependencies for the auth and user-management routes.
type UserHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewUserHandler(cfg config.Config, u *repository.UserRepo) *UserHandler {
	return &UserHandler{Cfg: cfg, Users: u}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResp struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	CSRFToken    string `json:"csrf_token"`
}

// Register creates a user.  The route is admin-gated; the requested role
// defaults to "user" and must be one of the known roles.
func (h *UserHandler) Register(c echo.Context) error {
	var req model.UserRegister
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return badRequest(c, "username, email and password are required")
	}
	if req.MobileNumber != "" && !model.ValidMobile(req.MobileNumber) {
		return badRequest(c, "invalid mobile number")
	}
	role := req.Role
	if role == "" {
		role = model.RoleUser
	}
	if !model.ValidRole(role) {
		return badRequest(c, "invalid role")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.Create(ctx, req, role)
	if err != nil {
		return fail(c, err)
	}

	if err := notify.PublishEmail(ctx, queue.EmailEvent{
		Recipient: u.Email,
		Subject:   "Welcome to Banjos",
		Template:  queue.TemplateRegistration,
		Context:   map[string]string{"name": u.Username},
	}); err != nil {
		log.Printf("user: registration email publish failed: %v", err)
	}

	return c.JSON(http.StatusCreated, u)
}

// Bootstrap creates the first superadmin.  It only works while the Users
// partition is empty; afterwards it always returns 403.
func (h *UserHandler) Bootstrap(c echo.Context) error {
	var req model.UserRegister
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return badRequest(c, "username, email and password are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.Bootstrap(ctx, req)
	if err != nil {
		if err == repository.ErrBootstrapClosed {
			return c.JSON(http.StatusForbidden, echo.Map{"detail": "Bootstrap is closed"})
		}
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// Login verifies credentials and issues the access/refresh/csrf token
// triple.  Unknown emails and wrong passwords are indistinguishable.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return badRequest(c, "email and password are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Incorrect email or password"})
		}
		return fail(c, err)
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Incorrect email or password"})
	}
	if u.Disabled {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Inactive user"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, h.Cfg.AccessTTLMin)
	if err != nil {
		return fail(c, err)
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.JWTSecret, u.ID, h.Cfg.RefreshTTLDays)
	if err != nil {
		return fail(c, err)
	}
	csrf, err := utils.NewCSRFToken(h.Cfg.JWTSecret, u.ID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, tokenResp{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		CSRFToken:    csrf,
	})
}

// RefreshToken exchanges a bearer refresh token for a fresh access token and
// csrf token.  The refresh token itself is not rotated.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	auth := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Not authenticated"})
	}
	raw := strings.TrimPrefix(auth, "Bearer ")

	userID, err := utils.VerifyToken(h.Cfg.JWTSecret, raw, utils.TokenRefresh)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Invalid refresh token"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Invalid refresh token"})
		}
		return fail(c, err)
	}
	if u.Disabled {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Inactive user"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, h.Cfg.AccessTTLMin)
	if err != nil {
		return fail(c, err)
	}
	csrf, err := utils.NewCSRFToken(h.Cfg.JWTSecret, u.ID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, tokenResp{
		AccessToken: access,
		TokenType:   "bearer",
		CSRFToken:   csrf,
	})
}

// Me returns the authenticated caller.
func (h *UserHandler) Me(c echo.Context) error {
	u, _ := c.Get(middleware.CtxUser).(*model.User)
	if u == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Not authenticated"})
	}
	return c.JSON(http.StatusOK, u)
}

// List returns every user.  Admin-gated at the route level.
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// selfOrAdmin reports whether the caller may act on the target user id.
func selfOrAdmin(c echo.Context, targetID string) bool {
	u, _ := c.Get(middleware.CtxUser).(*model.User)
	if u == nil {
		return false
	}
	return u.ID == targetID || model.IsAdmin(u.Role)
}

func (h *UserHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if !selfOrAdmin(c, id) {
		return c.JSON(http.StatusForbidden, echo.Map{"detail": "Not enough permissions"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserHandler) Update(c echo.Context) error {
	id := c.Param("id")
	if !selfOrAdmin(c, id) {
		return c.JSON(http.StatusForbidden, echo.Map{"detail": "Not enough permissions"})
	}

	var upd model.UserUpdate
	if err := c.Bind(&upd); err != nil {
		return badRequest(c, "invalid body")
	}
	if upd.MobileNumber != nil && *upd.MobileNumber != "" && !model.ValidMobile(*upd.MobileNumber) {
		return badRequest(c, "invalid mobile number")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.Update(ctx, id, upd)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if !selfOrAdmin(c, id) {
		return c.JSON(http.StatusForbidden, echo.Map{"detail": "Not enough permissions"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Users.Delete(ctx, id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"detail": "User deleted"})
}

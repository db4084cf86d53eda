package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/banjos/restaurant-api/internal/model"
	"github.com/banjos/restaurant-api/internal/repository"
	"github.com/banjos/restaurant-api/internal/store"
	"github.com/banjos/restaurant-api/internal/store/storetest"
	"github.com/banjos/restaurant-api/internal/utils"
)

const testSecret = "mw-secret"

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

func setupUser(t *testing.T, role string, disabled bool) (*repository.UserRepo, model.User) {
	t.Helper()
	users := repository.NewUserRepo(store.New(storetest.New(), "test"), 4)
	u, err := users.Create(context.Background(), model.UserRegister{
		Username: "alex", Email: "alex@x.com", Password: "pw",
	}, role)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if disabled {
		d := true
		if u, err = users.Update(context.Background(), u.ID, model.UserUpdate{Disabled: &d}); err != nil {
			t.Fatalf("disable user: %v", err)
		}
	}
	return users, u
}

func run(mw echo.MiddlewareFunc, method string, headers map[string]string, extra ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(method, "/users/me", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := okHandler
	for i := len(extra) - 1; i >= 0; i-- {
		h = extra[i](h)
	}
	_ = mw(h)(c)
	return rec
}

func TestJWTAuthRejectsMissingAndBadTokens(t *testing.T) {
	users, _ := setupUser(t, model.RoleUser, false)
	mw := JWTAuth(testSecret, false, users)

	if rec := run(mw, http.MethodGet, nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("no header: code = %d, want 401", rec.Code)
	}
	if rec := run(mw, http.MethodGet, map[string]string{"Authorization": "Bearer garbage"}); rec.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: code = %d, want 401", rec.Code)
	}

	// A refresh token must not pass as an access token.
	refresh, _ := utils.NewRefreshToken(testSecret, "u-1", 7)
	if rec := run(mw, http.MethodGet, map[string]string{"Authorization": "Bearer " + refresh}); rec.Code != http.StatusUnauthorized {
		t.Errorf("refresh-as-access: code = %d, want 401", rec.Code)
	}
}

func TestJWTAuthAcceptsValidAccessToken(t *testing.T) {
	users, u := setupUser(t, model.RoleUser, false)
	mw := JWTAuth(testSecret, false, users)

	access, _ := utils.NewAccessToken(testSecret, u.ID, 5)
	rec := run(mw, http.MethodGet, map[string]string{"Authorization": "Bearer " + access})
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
}

func TestJWTAuthRejectsDeletedAndDisabledUsers(t *testing.T) {
	users, u := setupUser(t, model.RoleUser, true)
	mw := JWTAuth(testSecret, false, users)

	access, _ := utils.NewAccessToken(testSecret, u.ID, 5)
	if rec := run(mw, http.MethodGet, map[string]string{"Authorization": "Bearer " + access}); rec.Code != http.StatusBadRequest {
		t.Errorf("disabled user: code = %d, want 400", rec.Code)
	}

	ghost, _ := utils.NewAccessToken(testSecret, "no-such-user", 5)
	if rec := run(mw, http.MethodGet, map[string]string{"Authorization": "Bearer " + ghost}); rec.Code != http.StatusUnauthorized {
		t.Errorf("deleted user: code = %d, want 401", rec.Code)
	}
}

func TestCSRFEnforcementMatrix(t *testing.T) {
	users, u := setupUser(t, model.RoleUser, false)
	access, _ := utils.NewAccessToken(testSecret, u.ID, 5)
	csrf, _ := utils.NewCSRFToken(testSecret, u.ID)
	otherCSRF, _ := utils.NewCSRFToken(testSecret, "someone-else")

	on := JWTAuth(testSecret, true, users)
	off := JWTAuth(testSecret, false, users)
	bearer := map[string]string{"Authorization": "Bearer " + access}
	withCSRF := map[string]string{"Authorization": "Bearer " + access, "X-CSRF-Token": csrf}
	wrongCSRF := map[string]string{"Authorization": "Bearer " + access, "X-CSRF-Token": otherCSRF}

	if rec := run(on, http.MethodGet, bearer); rec.Code != http.StatusOK {
		t.Errorf("GET skips csrf: code = %d, want 200", rec.Code)
	}
	if rec := run(on, http.MethodPost, bearer); rec.Code != http.StatusForbidden {
		t.Errorf("POST without csrf: code = %d, want 403", rec.Code)
	}
	if rec := run(on, http.MethodPost, withCSRF); rec.Code != http.StatusOK {
		t.Errorf("POST with csrf: code = %d, want 200", rec.Code)
	}
	if rec := run(on, http.MethodPost, wrongCSRF); rec.Code != http.StatusForbidden {
		t.Errorf("POST with other user's csrf: code = %d, want 403", rec.Code)
	}
	if rec := run(off, http.MethodPost, bearer); rec.Code != http.StatusOK {
		t.Errorf("toggle off: code = %d, want 200", rec.Code)
	}
}

func TestRoleGates(t *testing.T) {
	cases := []struct {
		role       string
		admin      int // expected code behind RequireAdmin
		superadmin int // expected code behind RequireSuperadmin
	}{
		{model.RoleUser, http.StatusForbidden, http.StatusForbidden},
		{model.RoleManager, http.StatusForbidden, http.StatusForbidden},
		{model.RoleAdmin, http.StatusOK, http.StatusForbidden},
		{model.RoleSuperadmin, http.StatusOK, http.StatusOK},
	}
	for _, tc := range cases {
		users, u := setupUser(t, tc.role, false)
		mw := JWTAuth(testSecret, false, users)
		access, _ := utils.NewAccessToken(testSecret, u.ID, 5)
		headers := map[string]string{"Authorization": "Bearer " + access}

		if rec := run(mw, http.MethodGet, headers, RequireAdmin); rec.Code != tc.admin {
			t.Errorf("%s behind RequireAdmin: code = %d, want %d", tc.role, rec.Code, tc.admin)
		}
		if rec := run(mw, http.MethodGet, headers, RequireSuperadmin); rec.Code != tc.superadmin {
			t.Errorf("%s behind RequireSuperadmin: code = %d, want %d", tc.role, rec.Code, tc.superadmin)
		}
	}
}

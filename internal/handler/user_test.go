package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/banjos/restaurant-api/internal/config"
	"github.com/banjos/restaurant-api/internal/repository"
	"github.com/banjos/restaurant-api/internal/store"
	"github.com/banjos/restaurant-api/internal/store/storetest"
	"github.com/banjos/restaurant-api/internal/utils"
)

func newUserHandler() *UserHandler {
	cfg := config.Config{
		JWTSecret:      "handler-secret",
		AccessTTLMin:   5,
		RefreshTTLDays: 1,
		BcryptCost:     4,
	}
	users := repository.NewUserRepo(store.New(storetest.New(), "test"), cfg.BcryptCost)
	return NewUserHandler(cfg, users)
}

func postJSON(t *testing.T, h echo.HandlerFunc, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

const bootstrapBody = `{"username":"root","email":"root@x.com","password":"pw"}`

func TestBootstrapOpensOnceThenCloses(t *testing.T) {
	h := newUserHandler()

	rec := postJSON(t, h.Bootstrap, bootstrapBody, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("first bootstrap: code = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	var created struct {
		Role string `json:"role"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Role != "superadmin" {
		t.Errorf("role = %q, want superadmin", created.Role)
	}

	rec = postJSON(t, h.Bootstrap, `{"username":"x","email":"x@x.com","password":"pw"}`, nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("second bootstrap: code = %d, want 403", rec.Code)
	}
}

func TestLoginReturnsTokenTriple(t *testing.T) {
	h := newUserHandler()
	postJSON(t, h.Bootstrap, bootstrapBody, nil)

	rec := postJSON(t, h.Login, `{"email":"ROOT@x.com","password":"pw"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: code = %d (%s)", rec.Code, rec.Body.String())
	}

	var resp struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		TokenType    string `json:"token_type"`
		CSRFToken    string `json:"csrf_token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.TokenType != "bearer" {
		t.Errorf("token_type = %q, want bearer", resp.TokenType)
	}

	sub, err := utils.VerifyToken(h.Cfg.JWTSecret, resp.AccessToken, utils.TokenAccess)
	if err != nil || sub == "" {
		t.Errorf("access token does not verify: %v", err)
	}
	if _, err := utils.VerifyToken(h.Cfg.JWTSecret, resp.RefreshToken, utils.TokenRefresh); err != nil {
		t.Errorf("refresh token does not verify: %v", err)
	}
	if !utils.VerifyCSRFToken(h.Cfg.JWTSecret, resp.CSRFToken, sub) {
		t.Error("csrf token not bound to subject")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	h := newUserHandler()
	postJSON(t, h.Bootstrap, bootstrapBody, nil)

	if rec := postJSON(t, h.Login, `{"email":"root@x.com","password":"wrong"}`, nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: code = %d, want 401", rec.Code)
	}
	if rec := postJSON(t, h.Login, `{"email":"ghost@x.com","password":"pw"}`, nil); rec.Code != http.StatusUnauthorized {
		t.Errorf("unknown email: code = %d, want 401", rec.Code)
	}
}

func TestRefreshTokenIssuesNewAccess(t *testing.T) {
	h := newUserHandler()
	postJSON(t, h.Bootstrap, bootstrapBody, nil)

	login := postJSON(t, h.Login, `{"email":"root@x.com","password":"pw"}`, nil)
	var resp struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(login.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login: %v", err)
	}

	rec := postJSON(t, h.RefreshToken, "", map[string]string{"Authorization": "Bearer " + resp.RefreshToken})
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh: code = %d (%s)", rec.Code, rec.Body.String())
	}
	var refreshed struct {
		AccessToken string `json:"access_token"`
		CSRFToken   string `json:"csrf_token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &refreshed); err != nil {
		t.Fatalf("decode refresh: %v", err)
	}
	if _, err := utils.VerifyToken(h.Cfg.JWTSecret, refreshed.AccessToken, utils.TokenAccess); err != nil {
		t.Errorf("new access token does not verify: %v", err)
	}

	// An access token must not work as a refresh credential.
	rec = postJSON(t, h.RefreshToken, "", map[string]string{"Authorization": "Bearer " + resp.AccessToken})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("access-as-refresh: code = %d, want 401", rec.Code)
	}
}

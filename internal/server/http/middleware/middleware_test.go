package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/heavybuild/heavybuild-pro/internal/domain/model"
	pkgAuth "github.com/heavybuild/heavybuild-pro/internal/pkg/auth"
	testhelpers "github.com/heavybuild/heavybuild-pro/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveWithToken(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAuthRequired(t *testing.T) {
	router := gin.New()
	router.Use(AuthRequired(testhelpers.TokenParserStub{}))
	router.GET("/", func(c *gin.Context) {})
	resp := serveWithToken(router, "/", "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "no token") {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}

	router = gin.New()
	router.Use(AuthRequired(testhelpers.TokenParserStub{Err: pkgAuth.ErrInvalidToken}))
	router.GET("/", func(c *gin.Context) {})
	if resp := serveWithToken(router, "/", "token"); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", resp.Code)
	}

	router = gin.New()
	router.Use(AuthRequired(testhelpers.TokenParserStub{Err: context.DeadlineExceeded}))
	router.GET("/", func(c *gin.Context) {})
	if resp := serveWithToken(router, "/", "token"); resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}

	var stored model.Identity
	router = gin.New()
	router.Use(AuthRequired(testhelpers.TokenParserStub{Identity: model.Identity{UserID: 42, Role: model.RoleAdmin}}))
	router.GET("/", func(c *gin.Context) {
		stored, _ = CurrentIdentity(c)
		c.Status(http.StatusOK)
	})
	if resp := serveWithToken(router, "/", "token"); resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if stored.UserID != 42 || !stored.IsAdmin() {
		t.Fatalf("unexpected identity %+v", stored)
	}
}

func TestAdminOnly(t *testing.T) {
	cases := []struct {
		name   string
		role   model.Role
		status int
	}{
		{"admin passes", model.RoleAdmin, http.StatusOK},
		{"user rejected", model.RoleUser, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.Use(AuthRequired(testhelpers.TokenParserStub{Identity: model.Identity{UserID: 1, Role: tc.role}}), AdminOnly())
			router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
			if resp := serveWithToken(router, "/", "token"); resp.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.Code)
			}
		})
	}

	router := gin.New()
	router.Use(AdminOnly())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	if resp := serveWithToken(router, "/", ""); resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without identity, got %d", resp.Code)
	}
}

func TestCurrentIdentity(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if _, ok := CurrentIdentity(c); ok {
		t.Fatal("expected no identity")
	}
	c.Set(IdentityContextKey, "garbage")
	if _, ok := CurrentIdentity(c); ok {
		t.Fatal("expected type mismatch to be rejected")
	}
	c.Set(IdentityContextKey, model.Identity{UserID: 7})
	if id, ok := CurrentIdentity(c); !ok || id.UserID != 7 {
		t.Fatalf("unexpected identity %+v", id)
	}
}

func TestSetAuthCookie(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	SetAuthCookie(c, "token")
	if got := recorder.Header().Get("Authorization"); got != "Bearer token" {
		t.Fatalf("expected auth header, got %q", got)
	}
	result := recorder.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	cookies := result.Cookies()
	if len(cookies) == 0 || cookies[0].Name != authCookieName || cookies[0].Value != "token" {
		t.Fatalf("expected cookie with token, got %+v", cookies)
	}
}

func TestExtractToken(t *testing.T) {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)
	if token := extractToken(c); token != "" {
		t.Fatalf("expected empty token, got %q", token)
	}
	c.Request.Header.Set("Authorization", "Bearer abc")
	if token := extractToken(c); token != "abc" {
		t.Fatalf("expected token from header, got %q", token)
	}
	c.Request.Header.Del("Authorization")
	c.Request.AddCookie(&http.Cookie{Name: authCookieName, Value: "cookie"})
	if token := extractToken(c); token != "cookie" {
		t.Fatalf("expected token from cookie, got %q", token)
	}
}

func TestRequestLogger(t *testing.T) {
	var levels []slog.Level
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey {
			levels = append(levels, a.Value.Any().(slog.Level))
		}
		return a
	}})
	logger := slog.New(handler)

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok", "/bad", "/fail"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	want := []slog.Level{slog.LevelInfo, slog.LevelWarn, slog.LevelError}
	if len(levels) != len(want) {
		t.Fatalf("expected %d log lines, got %d", len(want), len(levels))
	}
	for i := range want {
		if levels[i] != want[i] {
			t.Fatalf("line %d: expected %v, got %v", i, want[i], levels[i])
		}
	}
}

package middleware

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stemsi/curriculum-backend/internal/model"
	"github.com/stemsi/curriculum-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeTokens struct {
	claims *service.Claims
	err    error
}

func (f fakeTokens) ValidateToken(string) (*service.Claims, error) {
	return f.claims, f.err
}

type fakeSessions struct {
	activeJTI string
}

func (f fakeSessions) ValidateAdminSession(_ context.Context, _ int, jti string) error {
	if jti != f.activeJTI {
		return service.ErrSessionInvalidated
	}
	return nil
}

func adminClaims(jti string, role model.Role) *service.Claims {
	c := &service.Claims{TokenType: service.TokenTypeAdmin, UserID: 1, Role: role, Permissions: role.Permissions()}
	c.ID = jti
	return c
}

func serve(r *gin.Engine, method, path string, header map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func okHandler(c *gin.Context) { c.String(http.StatusOK, "ok") }

func TestRequireAdminJWT(t *testing.T) {
	tests := []struct {
		name   string
		tokens fakeTokens
		header string
		status int
		code   string
	}{
		{"missing header", fakeTokens{}, "", http.StatusUnauthorized, "TOKEN_REQUIRED"},
		{"wrong scheme", fakeTokens{}, "Basic abc", http.StatusUnauthorized, "TOKEN_REQUIRED"},
		{"expired", fakeTokens{err: fmt.Errorf("parse token: %w", jwt.ErrTokenExpired)}, "Bearer x", http.StatusUnauthorized, "TOKEN_EXPIRED"},
		{"invalid", fakeTokens{err: errors.New("bad")}, "Bearer x", http.StatusUnauthorized, "TOKEN_INVALID"},
		{"not admin", fakeTokens{claims: &service.Claims{TokenType: "student"}}, "Bearer x", http.StatusForbidden, "ADMIN_ACCESS_ONLY"},
		{"admin", fakeTokens{claims: adminClaims("j", model.RoleAdvisor)}, "bearer x", http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", RequireAdminJWT(tt.tokens), okHandler)

			w := serve(r, http.MethodGet, "/", map[string]string{"Authorization": tt.header})
			assert.Equal(t, tt.status, w.Code)
			if tt.code != "" {
				assert.Contains(t, w.Body.String(), tt.code)
			}
		})
	}
}

func TestCheckSingleSession(t *testing.T) {
	newRouter := func(jti string) *gin.Engine {
		r := gin.New()
		r.GET("/",
			RequireAdminJWT(fakeTokens{claims: adminClaims(jti, model.RoleRegistrar)}),
			CheckSingleSession(fakeSessions{activeJTI: "current"}),
			okHandler)
		return r
	}

	w := serve(newRouter("current"), http.MethodGet, "/", map[string]string{"Authorization": "Bearer t"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(newRouter("stale"), http.MethodGet, "/", map[string]string{"Authorization": "Bearer t"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "SESSION_INVALIDATED")
}

func TestRequirePermission(t *testing.T) {
	r := gin.New()
	auth := RequireAdminJWT(fakeTokens{claims: adminClaims("j", model.RoleAdvisor)})
	r.GET("/read", auth, RequirePermission(model.PermissionCurriculumRead), okHandler)
	r.PUT("/write", auth, RequirePermission(model.PermissionCurriculumWrite), okHandler)

	h := map[string]string{"Authorization": "Bearer t"}
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/read", h).Code)

	w := serve(r, http.MethodPut, "/write", h)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "PERMISSION_DENIED")
}

func TestRequirePermission_NoClaims(t *testing.T) {
	r := gin.New()
	r.GET("/", RequirePermission(model.PermissionCurriculumRead), okHandler)

	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/", nil).Code)
}

func TestRateLimiter_Allow(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(ctx, 2, time.Minute)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("a"))
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"))

	now = now.Add(time.Minute)
	assert.True(t, rl.Allow("a"))
}

func TestRateLimiter_Middleware(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := gin.New()
	r.POST("/login", NewRateLimiter(ctx, 1, time.Hour).Middleware(), okHandler)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/login", nil).Code)
	w := serve(r, http.MethodPost, "/login", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "RATE_LIMIT_EXCEEDED")
}

func TestNoStore(t *testing.T) {
	r := gin.New()
	r.GET("/", NoStore(), okHandler)

	w := serve(r, http.MethodGet, "/", nil)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestBrotli(t *testing.T) {
	large := strings.Repeat("curriculum ", 500)
	r := gin.New()
	r.Use(BrotliWithConfig(BrotliConfig{Quality: 5, MinLength: 64}))
	r.GET("/large", func(c *gin.Context) {
		// Several writes, the last one shorter than MinLength.
		c.Writer.WriteString(large)
		c.Writer.WriteString("tail")
	})
	r.GET("/small", func(c *gin.Context) { c.String(http.StatusOK, "tiny") })

	t.Run("compresses large bodies", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/large", map[string]string{"Accept-Encoding": "gzip, br;q=0.9"})
		require.Equal(t, "br", w.Header().Get("Content-Encoding"))

		body, err := io.ReadAll(brotli.NewReader(bytes.NewReader(w.Body.Bytes())))
		require.NoError(t, err)
		assert.Equal(t, large+"tail", string(body))
	})

	t.Run("passes small bodies through", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/small", map[string]string{"Accept-Encoding": "br"})
		assert.Empty(t, w.Header().Get("Content-Encoding"))
		assert.Equal(t, "tiny", w.Body.String())
	})

	t.Run("ignores clients without br", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/large", map[string]string{"Accept-Encoding": "gzip"})
		assert.Empty(t, w.Header().Get("Content-Encoding"))
		assert.Equal(t, large+"tail", w.Body.String())
	})
}

//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"grandehotel-core/internal/domain/user"
	"grandehotel-core/internal/handler/middleware"
	"grandehotel-core/internal/pkg/config"
	"grandehotel-core/internal/pkg/jwt"
	"grandehotel-core/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T, jwtService *jwt.Service, minRole user.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mw := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwtService))
	router := gin.New()

	group := router.Group("")
	group.Use(mw.RequireAuth())
	if minRole != "" {
		group.Use(mw.RequireRoleAtLeast(minRole))
	}
	group.GET("/protected", func(c *gin.Context) {
		userID, ok := middleware.GetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	cfg := config.NewTestConfig()
	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)

	t.Run("missing token", func(t *testing.T) {
		router := newAuthRouter(t, jwtService, "")

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bearer token", func(t *testing.T) {
		router := newAuthRouter(t, jwtService, "")
		token, err := jwtService.GenerateToken(uuid.New(), user.RoleGuest)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("cookie token", func(t *testing.T) {
		router := newAuthRouter(t, jwtService, "")
		token, err := jwtService.GenerateToken(uuid.New(), user.RoleGuest)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		router := newAuthRouter(t, jwtService, "")

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		router := newAuthRouter(t, jwtService, "")
		otherService := jwt.NewService("some-other-secret", time.Hour)
		token, err := otherService.GenerateToken(uuid.New(), user.RoleGuest)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	cfg := config.NewTestConfig()
	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)

	cases := []struct {
		name       string
		role       user.Role
		minRole    user.Role
		expectCode int
	}{
		{name: "guest blocked from staff routes", role: user.RoleGuest, minRole: user.RoleStaff, expectCode: http.StatusForbidden},
		{name: "staff allowed on staff routes", role: user.RoleStaff, minRole: user.RoleStaff, expectCode: http.StatusOK},
		{name: "admin allowed on staff routes", role: user.RoleAdmin, minRole: user.RoleStaff, expectCode: http.StatusOK},
		{name: "staff blocked from admin routes", role: user.RoleStaff, minRole: user.RoleAdmin, expectCode: http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newAuthRouter(t, jwtService, tc.minRole)
			token, err := jwtService.GenerateToken(uuid.New(), tc.role)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectCode, rec.Code)
		})
	}
}

//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/Fox-16s/reservat-io/internal/handler/middleware"
	"github.com/Fox-16s/reservat-io/internal/pkg/cookie"
	"github.com/Fox-16s/reservat-io/internal/pkg/jwt"
	"github.com/Fox-16s/reservat-io/internal/usecase"
	"github.com/Fox-16s/reservat-io/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(svc *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))
	r.GET("/me", mw.RequireAuth(), func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	svc := jwt.NewService("middleware-test-secret", 15*time.Minute, time.Hour)
	router := newAuthRouter(svc)
	userID := uuid.New()

	access, err := svc.GenerateAccessToken(userID)
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(userID)
	require.NoError(t, err)

	t.Run("bearer header", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, access)

		var body struct{ ID uuid.UUID }
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, userID, body.ID)
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		rec := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/me", nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: access}}, "garbage")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("refresh token is not a session", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, refresh)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("token signed with another key", func(t *testing.T) {
		other, err := jwt.NewService("someone-else", time.Minute, time.Hour).GenerateAccessToken(userID)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, other)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := jwt.NewService("middleware-test-secret", -time.Minute, time.Hour).GenerateAccessToken(userID)
		require.NoError(t, err)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, expired)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"jetski-rentals/internal/handler/middleware"
	"jetski-rentals/internal/pkg/cookie"
	"jetski-rentals/internal/pkg/jwt"
	"jetski-rentals/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router     *gin.Engine
	jwtService *jwt.Service
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.jwtService = jwt.NewService("test-secret", time.Hour)

	authMiddleware := middleware.NewAuthMiddleware(s.jwtService)
	protected := s.router.Group("/protected")
	protected.Use(authMiddleware.RequireAuth())
	protected.GET("/me", func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "role": role.String()})
	})
	protected.GET("/admin-only", authMiddleware.RequireRoleAtLeast(jwt.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) token(role jwt.Role) string {
	token, err := s.jwtService.GenerateToken(uuid.New(), role)
	s.Require().NoError(err)
	return token
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("success: bearer header token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected/me", nil, s.token(jwt.RoleStaff))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("success: cookie token", func() {
		cookies := []*http.Cookie{{Name: cookie.AdminTokenCookieName, Value: s.token(jwt.RoleAdmin)}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/protected/me", nil, cookies, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: no token at all", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "token required")
	})

	s.Run("error: token signed with another secret", func() {
		other := jwt.NewService("other-secret", time.Hour)
		forged, err := other.GenerateToken(uuid.New(), jwt.RoleAdmin)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected/me", nil, forged)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired")
	})

	s.Run("error: expired token", func() {
		expired := jwt.NewService("test-secret", -time.Minute)
		token, err := expired.GenerateToken(uuid.New(), jwt.RoleStaff)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected/me", nil, token)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("invalid cookie token gets cleared", func() {
		cookies := []*http.Cookie{{Name: cookie.AdminTokenCookieName, Value: "stale-garbage"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/protected/me", nil, cookies, "")

		s.Equal(http.StatusUnauthorized, rec.Code)
		cleared := httptest.ExtractCookie(rec, cookie.AdminTokenCookieName)
		s.Require().NotNil(cleared)
		s.Empty(cleared.Value)
		s.Negative(cleared.MaxAge)
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRoleAtLeast() {
	s.Run("success: admin passes the admin gate", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected/admin-only", nil, s.token(jwt.RoleAdmin))
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: staff is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected/admin-only", nil, s.token(jwt.RoleStaff))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "permissions")
	})
}

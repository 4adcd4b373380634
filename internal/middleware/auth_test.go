package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"prorent/internal/domain"
	"prorent/internal/middleware"
	"prorent/internal/service"
	"prorent/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authTestRouter(authSvc service.AuthService, requiredRoles ...domain.UserRole) *gin.Engine {
	r := gin.New()
	grp := r.Group("/protected")
	grp.Use(middleware.AuthMiddleware(authSvc))
	if len(requiredRoles) > 0 {
		grp.Use(middleware.RequireRole(requiredRoles...))
	}
	grp.GET("", func(c *gin.Context) {
		id, err := middleware.GetUserID(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return r
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := authTestRouter(new(mocks.MockAuthService))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	mockSvc := new(mocks.MockAuthService)
	mockSvc.On("ValidateToken", "bad-token").Return(nil, domain.ErrUnauthorized)
	r := authTestRouter(mockSvc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", http.NoBody)
	req.Header.Set("Authorization", "Bearer bad-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidTokenInjectsIdentity(t *testing.T) {
	mockSvc := new(mocks.MockAuthService)
	mockSvc.On("ValidateToken", "good-token").Return(&service.Claims{
		UserID: 42, Email: "v@example.com", Role: domain.RoleVendor,
	}, nil)
	r := authTestRouter(mockSvc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", http.NoBody)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestRequireRole_WrongRoleRespondsUnauthorized(t *testing.T) {
	mockSvc := new(mocks.MockAuthService)
	mockSvc.On("ValidateToken", "customer-token").Return(&service.Claims{
		UserID: 3, Role: domain.RoleCustomer,
	}, nil)
	r := authTestRouter(mockSvc, domain.RoleAdmin)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", http.NoBody)
	req.Header.Set("Authorization", "Bearer customer-token")
	r.ServeHTTP(w, req)

	// Wrong role reads the same as no credentials at all.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_MatchingRolePasses(t *testing.T) {
	mockSvc := new(mocks.MockAuthService)
	mockSvc.On("ValidateToken", "admin-token").Return(&service.Claims{
		UserID: 1, Role: domain.RoleAdmin,
	}, nil)
	r := authTestRouter(mockSvc, domain.RoleAdmin)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", http.NoBody)
	req.Header.Set("Authorization", "Bearer admin-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

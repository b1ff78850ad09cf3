package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(service *AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	middleware := NewAuthMiddleware(service)
	router.POST("/admin-only", middleware.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestRequireAdminMissingHeader(t *testing.T) {
	router := protectedRouter(NewAuthService(testConfig()))

	req, _ := http.NewRequest("POST", "/admin-only", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAdminMalformedHeader(t *testing.T) {
	router := protectedRouter(NewAuthService(testConfig()))

	req, _ := http.NewRequest("POST", "/admin-only", nil)
	req.Header.Set("Authorization", "Token abc123")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAdminInvalidToken(t *testing.T) {
	router := protectedRouter(NewAuthService(testConfig()))

	req, _ := http.NewRequest("POST", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAdminValidToken(t *testing.T) {
	service := NewAuthService(testConfig())
	router := protectedRouter(service)

	response, err := service.Login("correct-horse")
	require.NoError(t, err)

	req, _ := http.NewRequest("POST", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+response.AccessToken)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"docportal/config"
	"docportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.AppConfig.JWTSecret = "test-secret"
	config.AppConfig.TokenTTL = time.Hour
}

func authTestRouter() *gin.Engine {
	r := gin.New()
	r.Use(JWTAuthMiddleware())
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": CallerEmail(c)})
	})
	return r
}

func TestJWTAuthMiddleware_MissingHeaderIsUnauthorized(t *testing.T) {
	r := authTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "message")
}

func TestJWTAuthMiddleware_MalformedTokenIsForbidden(t *testing.T) {
	r := authTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuthMiddleware_WrongSignatureIsForbidden(t *testing.T) {
	token, err := utils.GenerateToken("jo@example.com")
	assert.NoError(t, err)

	// Flip the secret so the signature no longer verifies.
	config.AppConfig.JWTSecret = "different-secret"
	defer func() { config.AppConfig.JWTSecret = "test-secret" }()

	r := authTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuthMiddleware_ExpiredTokenIsForbidden(t *testing.T) {
	config.AppConfig.TokenTTL = -time.Hour
	token, err := utils.GenerateToken("jo@example.com")
	config.AppConfig.TokenTTL = time.Hour
	assert.NoError(t, err)

	r := authTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuthMiddleware_ValidTokenAttachesEmail(t *testing.T) {
	token, err := utils.GenerateToken("jo@example.com")
	assert.NoError(t, err)

	r := authTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jo@example.com")
}

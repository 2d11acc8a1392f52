package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"docportal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// MockUserRepo is a mock implementation of userRepo.UserRepository.
type MockUserRepo struct {
	GetByEmailFunc func(email string) (*models.User, error)
}

func (m *MockUserRepo) Upsert(u *models.User) (*models.User, error) { return u, nil }
func (m *MockUserRepo) GetAll() ([]models.User, error)              { return nil, nil }
func (m *MockUserRepo) SetRole(email, role string) error            { return nil }

func (m *MockUserRepo) GetByEmail(email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(email)
	}
	return nil, nil
}

func adminTestRouter(repo *MockUserRepo, callerEmail string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if callerEmail != "" {
			c.Set(ContextEmailKey, callerEmail)
		}
	})
	r.Use(RequireAdmin(repo))
	r.GET("/guarded", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	repo := &MockUserRepo{
		GetByEmailFunc: func(email string) (*models.User, error) {
			return &models.User{Email: email, Role: models.RoleAdmin}, nil
		},
	}
	r := adminTestRouter(repo, "boss@example.com")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin_RejectsNonAdmin(t *testing.T) {
	repo := &MockUserRepo{
		GetByEmailFunc: func(email string) (*models.User, error) {
			return &models.User{Email: email}, nil
		},
	}
	r := adminTestRouter(repo, "jo@example.com")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_RejectsMissingUserRecord(t *testing.T) {
	// A caller with a valid token but no stored record must get an explicit
	// forbidden response, never a nil dereference.
	repo := &MockUserRepo{
		GetByEmailFunc: func(email string) (*models.User, error) { return nil, nil },
	}
	r := adminTestRouter(repo, "ghost@example.com")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_RepoErrorIsServerError(t *testing.T) {
	repo := &MockUserRepo{
		GetByEmailFunc: func(email string) (*models.User, error) {
			return nil, errors.New("db down")
		},
	}
	r := adminTestRouter(repo, "jo@example.com")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequireAdmin_NoIdentityIsUnauthorized(t *testing.T) {
	r := adminTestRouter(&MockUserRepo{}, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAllowedPolicy(t *testing.T) {
	admin := &models.User{Email: "a@b.c", Role: models.RoleAdmin}
	patient := &models.User{Email: "p@b.c"}

	assert.True(t, Allowed(admin, "admin"))
	assert.False(t, Allowed(patient, "admin"))
	assert.False(t, Allowed(nil, "admin"))
	assert.False(t, Allowed(admin, "unknown-capability"))
}

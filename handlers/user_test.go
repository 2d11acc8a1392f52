package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"docportal/models"
	"docportal/services/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLogin_ReturnsTokenAndUser(t *testing.T) {
	svc := &MockUserService{
		LoginFunc: func(email, name string) (*user.LoginResponse, error) {
			assert.Equal(t, "jo@example.com", email)
			assert.Equal(t, "Jo", name)
			return &user.LoginResponse{Token: "signed-token", User: models.User{Email: email, Name: name}}, nil
		},
	}
	h := NewUserHandler(svc, zap.NewNop())

	r := gin.New()
	r.PUT("/user/:email", h.Login)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/user/jo@example.com", strings.NewReader(`{"name":"Jo"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "signed-token")
}

func TestLogin_BodyIsOptional(t *testing.T) {
	h := NewUserHandler(&MockUserService{}, zap.NewNop())

	r := gin.New()
	r.PUT("/user/:email", h.Login)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/user/jo@example.com", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCheckAdmin_ReportsRole(t *testing.T) {
	svc := &MockUserService{
		IsAdminFunc: func(email string) (bool, error) {
			return email == "boss@example.com", nil
		},
	}
	h := NewUserHandler(svc, zap.NewNop())

	r := gin.New()
	r.GET("/admin/:email", h.CheckAdmin)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/boss@example.com", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"admin":true`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/jo@example.com", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"admin":false`)
}

func TestPromoteAdmin_CallsService(t *testing.T) {
	var promoted string
	svc := &MockUserService{
		PromoteToAdminFunc: func(email string) error {
			promoted = email
			return nil
		},
	}
	h := NewUserHandler(svc, zap.NewNop())

	r := gin.New()
	r.PUT("/user/admin/:email", h.PromoteAdmin)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/user/admin/jo@example.com", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jo@example.com", promoted)
}

func TestGetAllUsers_ListsAccounts(t *testing.T) {
	svc := &MockUserService{
		GetAllUsersFunc: func() ([]models.User, error) {
			return []models.User{{Email: "a@b.c"}, {Email: "d@e.f"}}, nil
		},
	}
	h := NewUserHandler(svc, zap.NewNop())

	r := gin.New()
	r.GET("/user", h.GetAllUsers)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@b.c")
	assert.Contains(t, w.Body.String(), "d@e.f")
}

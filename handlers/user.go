package handlers

import (
	"errors"
	"net/http"

	"docportal/services/user"
	"docportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account login, listing and role management.
type UserHandler struct {
	Svc    user.UserService
	Logger *zap.Logger
}

// NewUserHandler wires a UserHandler.
func NewUserHandler(svc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type loginRequest struct {
	Name string `json:"name"`
}

// Login handles PUT /user/:email. The account is upserted and a fresh bearer
// token issued.
func (h *UserHandler) Login(c *gin.Context) {
	email := c.Param("email")

	var payload loginRequest
	// The body is optional; a bare login still upserts the account.
	_ = c.ShouldBindJSON(&payload)

	resp, err := h.Svc.Login(email, payload.Name)
	if err != nil {
		if errors.Is(err, user.ErrEmailRequired) {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
			return
		}
		h.Logger.Error("login failed", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetAllUsers handles GET /user.
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.Svc.GetAllUsers()
	if err != nil {
		h.Logger.Error("failed to list users", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve users", "")
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdmin handles GET /admin/:email.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")

	isAdmin, err := h.Svc.IsAdmin(email)
	if err != nil {
		h.Logger.Error("failed to check admin role", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to check role", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

// PromoteAdmin handles PUT /user/admin/:email. Guarded by the admin
// middleware at the route level.
func (h *UserHandler) PromoteAdmin(c *gin.Context) {
	email := c.Param("email")

	if err := h.Svc.PromoteToAdmin(email); err != nil {
		if errors.Is(err, user.ErrEmailRequired) {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
			return
		}
		h.Logger.Error("failed to promote user", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to promote user", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

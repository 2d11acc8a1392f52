package handlers

import (
	"errors"
	"net/http"

	doctorRepo "docportal/database/repository/doctor"
	"docportal/models"
	"docportal/services/doctor"
	"docportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler exposes admin-only doctor management.
type DoctorHandler struct {
	Svc    doctor.DoctorService
	Logger *zap.Logger
}

// NewDoctorHandler wires a DoctorHandler.
func NewDoctorHandler(svc doctor.DoctorService, logger *zap.Logger) *DoctorHandler {
	return &DoctorHandler{Svc: svc, Logger: logger}
}

// GetDoctors handles GET /doctor.
func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.Svc.ListDoctors()
	if err != nil {
		h.Logger.Error("failed to list doctors", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve doctors", "")
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// AddDoctor handles POST /doctor.
func (h *DoctorHandler) AddDoctor(c *gin.Context) {
	var payload models.Doctor
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid doctor payload", err.Error())
		return
	}

	created, err := h.Svc.AddDoctor(&payload)
	if err != nil {
		if errors.Is(err, doctor.ErrInvalidDoctor) {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
			return
		}
		h.Logger.Error("failed to add doctor", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to add doctor", "")
		return
	}
	c.JSON(http.StatusOK, created)
}

// DeleteDoctor handles DELETE /doctor/:email.
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	email := c.Param("email")

	if err := h.Svc.RemoveDoctor(email); err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Doctor not found", "")
			return
		}
		h.Logger.Error("failed to delete doctor", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete doctor", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

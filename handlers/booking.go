package handlers

import (
	"errors"
	"net/http"

	"docportal/middleware"
	"docportal/models"
	"docportal/services/booking"
	"docportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the service catalogue and the booking workflow.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler wires a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// GetServices handles GET /service.
func (h *BookingHandler) GetServices(c *gin.Context) {
	services, err := h.Svc.ListServices()
	if err != nil {
		h.Logger.Error("failed to list services", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve services", "")
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetAvailable handles GET /available?date=.
func (h *BookingHandler) GetAvailable(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date query parameter", "")
		return
	}

	services, err := h.Svc.Availability(date)
	if err != nil {
		h.Logger.Error("failed to compute availability", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute availability", "")
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateBooking handles POST /booking. Duplicates come back as 200 with
// success=false and the conflicting record.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload models.Booking
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload", err.Error())
		return
	}

	result, err := h.Svc.CreateBooking(&payload)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidBooking) {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
			return
		}
		h.Logger.Error("failed to create booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking", "")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetBookingByID handles GET /booking/:id.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	id := c.Param("id")

	bk, err := h.Svc.GetBooking(id)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
			return
		}
		h.Logger.Error("failed to fetch booking", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve booking", "")
		return
	}
	c.JSON(http.StatusOK, bk)
}

// GetPatientBookings handles GET /booking?patient=. The caller may only read
// their own bookings; the token identity must match the patient parameter.
func (h *BookingHandler) GetPatientBookings(c *gin.Context) {
	patient := c.Query("patient")
	if patient == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing patient query parameter", "")
		return
	}

	if middleware.CallerEmail(c) != patient {
		utils.JSONError(c, http.StatusForbidden, "Forbidden: token identity does not match patient", "")
		return
	}

	bookings, err := h.Svc.PatientBookings(patient)
	if err != nil {
		h.Logger.Error("failed to list patient bookings", zap.String("patient", patient), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to retrieve bookings", "")
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// PayBooking handles PATCH /booking/:id.
func (h *BookingHandler) PayBooking(c *gin.Context) {
	id := c.Param("id")

	var payload booking.PayBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment payload", err.Error())
		return
	}

	bk, err := h.Svc.PayBooking(c.Request.Context(), id, payload)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
			return
		}
		h.Logger.Error("failed to pay booking", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to record payment", "")
		return
	}
	c.JSON(http.StatusOK, bk)
}

// CreatePaymentIntent handles POST /create-payment-intent.
func (h *BookingHandler) CreatePaymentIntent(c *gin.Context) {
	var payload models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment intent payload", err.Error())
		return
	}

	resp, err := h.Svc.CreatePaymentIntent(payload.Price)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidPrice) {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
			return
		}
		h.Logger.Error("failed to create payment intent", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create payment intent", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

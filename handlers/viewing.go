package handlers

import (
	"net/http"

	"realtor/models"
	"realtor/services/calendar"
	"realtor/utils"

	"github.com/gin-gonic/gin"
)

// ViewingHandler exposes slot discovery and viewing booking.
type ViewingHandler struct {
	Service calendar.ViewingService
}

func NewViewingHandler(service calendar.ViewingService) *ViewingHandler {
	return &ViewingHandler{Service: service}
}

// GetSlots returns the free viewing slots for a date.
// GET /api/viewings/slots?date=YYYY-MM-DD&timezone=Africa/Cairo
func (h *ViewingHandler) GetSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date query parameter is required")
		return
	}

	listing, err := h.Service.FindAvailableSlots(c.Request.Context(), date, c.Query("timezone"))
	if err != nil {
		utils.JSONError(c, statusForCalendarError(err), "slot lookup failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, listing)
}

// Schedule books a viewing for a previously advertised slot.
// POST /api/viewings
func (h *ViewingHandler) Schedule(c *gin.Context) {
	var req models.ViewingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	confirmation, err := h.Service.ScheduleViewing(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, statusForCalendarError(err), "scheduling failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, confirmation)
}

// statusForCalendarError maps calendar error codes onto HTTP statuses.
func statusForCalendarError(err error) int {
	switch calendar.CodeOf(err) {
	case calendar.CodeInvalidDateFormat, calendar.CodeInvalidTimezone, calendar.CodeMissingContactInfo:
		return http.StatusBadRequest
	case calendar.CodeCalendarUnavailable:
		return http.StatusServiceUnavailable
	case calendar.CodeCalendarWriteFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

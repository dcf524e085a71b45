package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"rentgear/internal/domain"
	"rentgear/internal/pkg/response"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/equipment/:id/availability", h.GetAvailability)
	rg.GET("/equipment/:id/quote", h.GetQuote)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListMyBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.PATCH("/bookings/:id/status", h.UpdateStatus)
}

func (h *Handler) GetAvailability(c *gin.Context) {
	equipmentID, ok := paramID(c)
	if !ok {
		return
	}
	start, end, ok := queryRange(c)
	if !ok {
		return
	}

	available, err := h.service.IsAvailable(c.Request.Context(), equipmentID, start, end)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"equipment_id": equipmentID,
		"start_date":   start.Format(dateLayout),
		"end_date":     end.Format(dateLayout),
		"available":    available,
	})
}

func (h *Handler) GetQuote(c *gin.Context) {
	equipmentID, ok := paramID(c)
	if !ok {
		return
	}
	start, end, ok := queryRange(c)
	if !ok {
		return
	}

	quote, err := h.service.CalculatePrice(c.Request.Context(), equipmentID, start, end)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quote": quote})
}

func (h *Handler) CreateBooking(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "start_date must be YYYY-MM-DD")
		return
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "end_date must be YYYY-MM-DD")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), userID, req.EquipmentID, start, end, req.Notes)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) ListMyBookings(c *gin.Context) {
	userID := c.GetInt64("user_id")

	bookings, err := h.service.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) GetBooking(c *gin.Context) {
	bookingID, ok := paramID(c)
	if !ok {
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if b.UserID != c.GetInt64("user_id") && c.GetString("role") != string(domain.RoleAdmin) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	bookingID, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	next := domain.BookingStatus(req.Status)

	current, err := h.service.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	// Customers may only cancel their own booking; confirm/activate/complete
	// belong to owners and admins.
	role := c.GetString("role")
	isStaff := role == string(domain.RoleOwner) || role == string(domain.RoleAdmin)
	isSelfCancel := next == domain.BookingCancelled && current.UserID == c.GetInt64("user_id")
	if !isStaff && !isSelfCancel {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not allowed to change this booking")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), bookingID, next)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid date range")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "EQUIPMENT_NOT_FOUND", "Equipment not found")
	case errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Equipment not available for selected dates")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Status transition not allowed")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid id")
		return 0, false
	}
	return id, true
}

func queryRange(c *gin.Context) (time.Time, time.Time, bool) {
	start, err := time.Parse(dateLayout, c.Query("start"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "start must be YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(dateLayout, c.Query("end"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "end must be YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

package booking

import (
	"log"
	"net/http"
	"strconv"

	"rentmarket/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings/my", h.GetMyBookings)
}

// RegisterPublicRoutes exposes the live price breakdown; no auth needed to
// preview a quote.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/equipment/:id/quote", h.GetQuote)
}

func (h *Handler) GetQuote(c *gin.Context) {
	equipmentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid equipment ID")
		return
	}

	q, err := h.service.QuoteForEquipment(c.Request.Context(), equipmentID, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		if err == ErrEquipmentNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Equipment not found")
			return
		}
		log.Printf("quote failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute quote")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quote": q})
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	renterID := c.GetInt64("user_id")
	if renterID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), renterID, req)
	if err != nil {
		switch err {
		case ErrEquipmentNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Equipment not found")

		case ErrOwnEquipment:
			response.Error(c, http.StatusForbidden, "OWN_EQUIPMENT", "You cannot book your own equipment")

		case ErrNotAvailable:
			response.Error(c, http.StatusConflict, "NOT_AVAILABLE", "Equipment is not available for booking")

		case ErrPastStart:
			response.Error(c, http.StatusBadRequest, "PAST_START_DATE", "Start date cannot be in the past")

		case ErrInvalidRange:
			response.Error(c, http.StatusBadRequest, "INVALID_DATE_RANGE", "End date must be after start date")

		case ErrMinDuration:
			response.Error(c, http.StatusBadRequest, "MIN_DURATION", "Booking must be at least one day")

		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dates must be in YYYY-MM-DD format")

		default:
			log.Printf("create booking failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"booking": b,
		"message": "Booking request sent. The provider will confirm it shortly.",
	})
}

func (h *Handler) GetMyBookings(c *gin.Context) {
	renterID := c.GetInt64("user_id")
	if renterID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	limit := 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	offset := 0
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			offset = (n - 1) * limit
		}
	}

	bookings, err := h.service.GetMyBookings(c.Request.Context(), renterID, limit, offset)
	if err != nil {
		log.Printf("list bookings failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

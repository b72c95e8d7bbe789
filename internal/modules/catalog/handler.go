package catalog

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
	rg.GET("/equipment/:id", h.GetEquipmentByID)
}

// GetEquipmentByID handles GET /api/v1/equipment/:id
func (h *Handler) GetEquipmentByID(c *gin.Context) {
	equipmentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid equipment ID")
		return
	}

	// Set by OptionalJWTAuth when the viewer is signed in; 0 otherwise.
	viewerID := c.GetInt64("user_id")

	detail, err := h.service.GetEquipmentDetail(c.Request.Context(), equipmentID, viewerID)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Equipment not found")
			return
		}
		log.Printf("equipment detail failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load equipment")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"equipment": detail})
}

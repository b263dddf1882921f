package notification

import (
	"errors"
	"net/http"

	"belleza/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/notifications/send", h.Send)
}

type sendRequest struct {
	AppointmentID int64  `json:"appointment_id"`
	Type          string `json:"type"` // "created" | "reminder"
}

func (h *Handler) Send(c *gin.Context) {
	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AppointmentID <= 0 {
		response.BadRequest(c, "appointment_id and type are required")
		return
	}

	err := h.service.Send(c.Request.Context(), req.AppointmentID, Kind(req.Type))
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.BadRequest(c, `type must be "created" or "reminder"`)
		case errors.Is(err, ErrNotFound):
			response.NotFound(c, "Appointment not found")
		case errors.Is(err, ErrNoRecipient):
			response.BadRequest(c, "Appointment has no email or phone to notify")
		default:
			response.Internal(c, "Failed to send notification")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

package appointment

import (
	"errors"
	"net/http"
	"strconv"

	"belleza/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the pre-flight availability check the booking
// form calls before submitting.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/availability", h.CheckAvailability)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/appointments", h.Create)
	rg.GET("/appointments/:id", h.Get)
	rg.GET("/staff/:id/appointments", h.ListDay)
	rg.PATCH("/appointments/:id/status", h.UpdateStatus)
	rg.PATCH("/appointments/:id/payment", h.UpdatePayment)
}

// CheckAvailability handles GET /availability?staff_id=&date=&time=
func (h *Handler) CheckAvailability(c *gin.Context) {
	staffID, err := strconv.ParseInt(c.Query("staff_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid staff_id")
		return
	}

	check, err := h.service.CheckSlot(c.Request.Context(), staffID, c.Query("date"), c.Query("time"))
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.BadRequest(c, "date and time are required as YYYY-MM-DD and HH:MM")
			return
		}
		response.Internal(c, "Availability check failed")
		return
	}

	response.Success(c, http.StatusOK, check)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.BadRequest(c, "Missing or invalid appointment fields")
		case errors.Is(err, ErrSlotTaken):
			response.Error(c, http.StatusConflict, "SLOT_TAKEN",
				"Staff member already has an appointment at that time")
		default:
			response.Internal(c, "Failed to create appointment")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"appointment": a})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	a, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "Appointment not found")
			return
		}
		response.Internal(c, "Failed to load appointment")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"appointment": a})
}

// ListDay handles GET /staff/:id/appointments?date=YYYY-MM-DD
func (h *Handler) ListDay(c *gin.Context) {
	staffID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid staff ID")
		return
	}

	list, err := h.service.ListDay(c.Request.Context(), staffID, c.Query("date"))
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.BadRequest(c, "date is required as YYYY-MM-DD")
			return
		}
		response.Internal(c, "Failed to load appointments")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"appointments": list})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		h.writeUpdateError(c, err, "Failed to update status")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id, "status": req.Status})
}

func (h *Handler) UpdatePayment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid appointment ID")
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.UpdatePayment(c.Request.Context(), id, req.PaymentStatus); err != nil {
		h.writeUpdateError(c, err, "Failed to update payment status")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id, "payment_status": req.PaymentStatus})
}

func (h *Handler) writeUpdateError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.BadRequest(c, "Unknown status value")
	case errors.Is(err, ErrNotFound):
		response.NotFound(c, "Appointment not found")
	default:
		response.Internal(c, fallback)
	}
}

package request

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

// RegisterClientRoutes mounts the client-facing intake form endpoint.
func (h *Handler) RegisterClientRoutes(rg *gin.RouterGroup) {
	rg.POST("/requests", h.Create)
}

// RegisterStaffRoutes mounts the review surface staff use to decide requests.
func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.GET("/requests/pending", h.ListPending)
	rg.POST("/requests/:id/approve", h.Approve)
	rg.POST("/requests/:id/reject", h.Reject)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	r, err := h.service.CreateRequest(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.BadRequest(c, "Missing or invalid request fields")
			return
		}
		response.Internal(c, "Failed to create request")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"request": r})
}

func (h *Handler) ListPending(c *gin.Context) {
	list, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		response.Internal(c, "Failed to load pending requests")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"requests": list})
}

func (h *Handler) Approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid request ID")
		return
	}

	var params ApproveParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	// The approving staff member is the authenticated principal.
	staffID := c.GetInt64("user_id")

	appt, err := h.service.Approve(c.Request.Context(), id, staffID, params)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.BadRequest(c, "date and time are required as YYYY-MM-DD and HH:MM")
		case errors.Is(err, ErrNotFound):
			response.NotFound(c, "Request not found")
		case errors.Is(err, ErrAlreadyDecided):
			response.Conflict(c, "Request has already been decided")
		case errors.Is(err, ErrSlotTaken):
			response.Error(c, http.StatusConflict, "SLOT_TAKEN",
				"Staff member already has an appointment at that time")
		default:
			response.Internal(c, "Failed to approve request")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"appointment": appt})
}

func (h *Handler) Reject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid request ID")
		return
	}

	if err := h.service.Reject(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.NotFound(c, "Request not found")
		case errors.Is(err, ErrAlreadyDecided):
			response.Conflict(c, "Request has already been approved")
		default:
			response.Internal(c, "Failed to reject request")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id, "status": "rejected"})
}

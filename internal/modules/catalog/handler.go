package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"belleza/internal/pkg/response"
	"belleza/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/services", h.ListServices)
	rg.GET("/services/:id", h.GetService)
	rg.GET("/staff", h.ListStaff)
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		response.Internal(c, "Failed to load services")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"services": services})
}

func (h *Handler) GetService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid service ID")
		return
	}

	svc, err := h.service.GetService(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "Service not found")
			return
		}
		response.Internal(c, "Failed to load service")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"service": svc})
}

func (h *Handler) ListStaff(c *gin.Context) {
	staff, err := h.service.ListStaff(c.Request.Context())
	if err != nil {
		response.Internal(c, "Failed to load staff")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"staff": staff})
}

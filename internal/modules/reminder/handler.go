package reminder

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the cron trigger endpoint. The response shape
// {success, reminders_sent} is the contract the external scheduler checks,
// so it stays flat rather than using the usual data envelope.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/internal/reminders/run", h.Run)
}

func (h *Handler) Run(c *gin.Context) {
	sent, err := h.service.Dispatch(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "reminder dispatch failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"reminders_sent": sent,
	})
}

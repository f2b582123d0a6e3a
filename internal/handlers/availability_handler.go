package handlers

import (
	"context"
	"net/http"

	"planner-service/internal/models"
	"planner-service/internal/service"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	Service *service.AvailabilityService
}

func NewAvailabilityHandler(s *service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: s}
}

// ListWindows lists the weekly availability windows of a plan
func (h *AvailabilityHandler) ListWindows(c *gin.Context) {
	planID := c.Query("plan_id")
	if planID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plan_id query parameter is required"})
		return
	}
	windows, err := h.Service.ListWindowsByPlan(context.Background(), planID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, windows)
}

// CreateWindow adds a weekly availability window to a plan
func (h *AvailabilityHandler) CreateWindow(c *gin.Context) {
	var window models.AvailabilityWindow
	if err := c.ShouldBindJSON(&window); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.CreateWindow(context.Background(), &window); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, window)
}

// UpdateWindow replaces a window's weekday and times
func (h *AvailabilityHandler) UpdateWindow(c *gin.Context) {
	id := c.Param("id")
	var window models.AvailabilityWindow
	if err := c.ShouldBindJSON(&window); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateWindow(context.Background(), id, &window); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated successfully"})
}

// DeleteWindow removes a window
func (h *AvailabilityHandler) DeleteWindow(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteWindow(context.Background(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability deleted successfully"})
}

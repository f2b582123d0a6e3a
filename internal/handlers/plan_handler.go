package handlers

import (
	"context"
	"net/http"

	"planner-service/internal/models"
	"planner-service/internal/service"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	Service *service.PlanService
}

func NewPlanHandler(s *service.PlanService) *PlanHandler {
	return &PlanHandler{Service: s}
}

// GetPlan retrieves a single study plan
func (h *PlanHandler) GetPlan(c *gin.Context) {
	id := c.Param("id")
	plan, err := h.Service.GetPlan(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// ListPlans lists the plans of the authenticated user
func (h *PlanHandler) ListPlans(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	plans, err := h.Service.ListPlansByUser(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plans)
}

// CreatePlan creates a new study plan owned by the authenticated user
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var plan models.StudyPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan.UserID = c.GetHeader("X-User-ID")

	if err := h.Service.CreatePlan(context.Background(), &plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// UpdatePlan updates plan fields
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	id := c.Param("id")
	var update map[string]interface{}
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdatePlan(context.Background(), id, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Plan updated successfully"})
}

// DeletePlan removes a plan
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeletePlan(context.Background(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted successfully"})
}

package handlers

import (
	"context"
	"net/http"

	"planner-service/internal/models"
	"planner-service/internal/service"

	"github.com/gin-gonic/gin"
)

type DisciplineHandler struct {
	Service *service.DisciplineService
}

func NewDisciplineHandler(s *service.DisciplineService) *DisciplineHandler {
	return &DisciplineHandler{Service: s}
}

// GetDiscipline retrieves a single discipline with its subjects
func (h *DisciplineHandler) GetDiscipline(c *gin.Context) {
	id := c.Param("id")
	discipline, err := h.Service.GetDiscipline(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Discipline not found"})
		return
	}
	c.JSON(http.StatusOK, discipline)
}

// ListDisciplines lists all disciplines of a plan
func (h *DisciplineHandler) ListDisciplines(c *gin.Context) {
	planID := c.Query("plan_id")
	if planID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plan_id query parameter is required"})
		return
	}
	disciplines, err := h.Service.ListDisciplinesByPlan(context.Background(), planID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, disciplines)
}

// CreateDiscipline creates a discipline with its weighted subjects
func (h *DisciplineHandler) CreateDiscipline(c *gin.Context) {
	var discipline models.Discipline
	if err := c.ShouldBindJSON(&discipline); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.CreateDiscipline(context.Background(), &discipline); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, discipline)
}

// UpdateDiscipline updates discipline fields
func (h *DisciplineHandler) UpdateDiscipline(c *gin.Context) {
	id := c.Param("id")
	var update map[string]interface{}
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateDiscipline(context.Background(), id, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Discipline updated successfully"})
}

// DeleteDiscipline removes a discipline
func (h *DisciplineHandler) DeleteDiscipline(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteDiscipline(context.Background(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Discipline deleted successfully"})
}

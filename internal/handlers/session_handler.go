package handlers

import (
	"context"
	"net/http"

	"planner-service/internal/models"
	"planner-service/internal/service"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	Service *service.SessionService
}

func NewSessionHandler(s *service.SessionService) *SessionHandler {
	return &SessionHandler{Service: s}
}

// GetSession retrieves a single session
func (h *SessionHandler) GetSession(c *gin.Context) {
	id := c.Param("id")
	session, err := h.Service.GetSession(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// ListPlanSessions lists a plan's sessions ordered by scheduled date
func (h *SessionHandler) ListPlanSessions(c *gin.Context) {
	planID := c.Param("id")
	sessions, err := h.Service.ListSessionsByPlan(context.Background(), planID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// CreateSession creates a manual (non generated) session
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var session models.StudySession
	if err := c.ShouldBindJSON(&session); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if session.StudyPlanID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "study_plan_id is required"})
		return
	}
	if err := h.Service.CreateSession(context.Background(), &session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, session)
}

// UpdateSession updates session fields
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	id := c.Param("id")
	var update map[string]interface{}
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateSession(context.Background(), id, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session updated successfully"})
}

// CompleteSession marks a session as done
func (h *SessionHandler) CompleteSession(c *gin.Context) {
	id := c.Param("id")
	var body struct {
		Notes string `json:"notes"`
	}
	// Body is optional; an empty body just completes the session.
	_ = c.ShouldBindJSON(&body)

	if err := h.Service.CompleteSession(context.Background(), id, body.Notes); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session completed"})
}

// DeleteSession removes a session
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteSession(context.Background(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session deleted successfully"})
}

// GenerateSessions runs the automatic scheduler for a plan
func (h *SessionHandler) GenerateSessions(c *gin.Context) {
	planID := c.Param("id")

	var req struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}
	// Body is optional; the plan's own date range is used when absent.
	_ = c.ShouldBindJSON(&req)

	sessions, err := h.Service.GenerateSessions(context.Background(), planID, req.StartDate, req.EndDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate sessions",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"sessions": sessions,
		"count":    len(sessions),
		"message":  "Sessions generated successfully",
	})
}

// GetPlanProgress returns completion statistics for a plan
func (h *SessionHandler) GetPlanProgress(c *gin.Context) {
	planID := c.Param("id")
	progress, err := h.Service.GetPlanProgress(context.Background(), planID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progress)
}

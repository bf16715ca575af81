package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type GamificationHandler struct {
	gamification GamificationService
}

func NewGamificationHandler(g GamificationService) *GamificationHandler {
	return &GamificationHandler{gamification: g}
}

type actionReq struct {
	Type string `json:"type" binding:"required"`
	XP   *int   `json:"xp"`
}

// POST /api/v1/gamification/actions
func (h *GamificationHandler) RecordAction(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req actionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.gamification.RecordAction(c.Request.Context(), userID, req.Type, req.XP)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/v1/gamification/achievements
func (h *GamificationHandler) ListAchievements(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	view, err := h.gamification.ListAchievements(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

package handlers

import (
	"net/http"
	"time"

	"github.com/waste3d/mindwell-api/internal/application/usecase"
	"github.com/waste3d/mindwell-api/internal/domain"

	"github.com/gin-gonic/gin"
)

type TrackingHandler struct {
	tracking TrackingService
}

func NewTrackingHandler(t TrackingService) *TrackingHandler {
	return &TrackingHandler{tracking: t}
}

// loggedAt проставляет сервер, поле из запроса игнорируется
type moodLogReq struct {
	Emotion    domain.Emotion `json:"emotion" binding:"required"`
	Intensity  *int           `json:"intensity"`
	Energy     *int           `json:"energy"`
	Note       *string        `json:"note"`
	Activities string         `json:"activities"`
}

type reminderReq struct {
	Title       string              `json:"title"`
	ScheduledAt time.Time           `json:"scheduledAt"`
	Type        domain.ReminderType `json:"type"`
	Duration    string              `json:"duration"`
	Completed   bool                `json:"completed"`
}

type reminderPatchReq struct {
	Title       *string              `json:"title"`
	ScheduledAt *time.Time           `json:"scheduledAt"`
	Type        *domain.ReminderType `json:"type"`
	Duration    *string              `json:"duration"`
	Completed   *bool                `json:"completed"`
}

// GET /api/v1/tracking/stats
func (h *TrackingHandler) Stats(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	stats, err := h.tracking.Stats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/v1/tracking/mood-logs
func (h *TrackingHandler) ListMoodLogs(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	logs, err := h.tracking.ListMoodLogs(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// POST /api/v1/tracking/mood-logs
func (h *TrackingHandler) CreateMoodLog(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req moodLogReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.tracking.CreateMoodLog(c.Request.Context(), userID, usecase.MoodLogInput{
		Emotion:    req.Emotion,
		Intensity:  req.Intensity,
		Energy:     req.Energy,
		Note:       req.Note,
		Activities: req.Activities,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /api/v1/tracking/mood-logs/:id
func (h *TrackingHandler) GetMoodLog(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	entry, err := h.tracking.GetMoodLog(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DELETE /api/v1/tracking/mood-logs/:id
func (h *TrackingHandler) DeleteMoodLog(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.tracking.DeleteMoodLog(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/v1/tracking/reminders
func (h *TrackingHandler) ListReminders(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	reminders, err := h.tracking.ListReminders(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reminders)
}

// POST /api/v1/tracking/reminders
func (h *TrackingHandler) CreateReminder(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req reminderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminder, err := h.tracking.CreateReminder(c.Request.Context(), userID, domain.Reminder{
		Title:       req.Title,
		ScheduledAt: req.ScheduledAt,
		Type:        req.Type,
		Duration:    req.Duration,
		Completed:   req.Completed,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reminder)
}

// GET /api/v1/tracking/reminders/:id
func (h *TrackingHandler) GetReminder(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	reminder, err := h.tracking.GetReminder(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reminder)
}

// PATCH /api/v1/tracking/reminders/:id
func (h *TrackingHandler) UpdateReminder(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req reminderPatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminder, err := h.tracking.UpdateReminder(c.Request.Context(), userID, id, domain.ReminderPatch{
		Title:       req.Title,
		ScheduledAt: req.ScheduledAt,
		Type:        req.Type,
		Duration:    req.Duration,
		Completed:   req.Completed,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reminder)
}

// DELETE /api/v1/tracking/reminders/:id
func (h *TrackingHandler) DeleteReminder(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.tracking.DeleteReminder(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

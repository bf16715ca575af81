package handlers

import (
	"net/http"

	"github.com/waste3d/mindwell-api/internal/application/usecase"
	"github.com/waste3d/mindwell-api/internal/domain"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profiles ProfileService
}

func NewProfileHandler(profiles ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// level, experience и premium сюда не попадают
type updateProfileReq struct {
	Bio                  *string `json:"bio"`
	AvatarURL            *string `json:"avatarUrl"`
	DailyNotifications   *bool   `json:"dailyNotifications"`
	MissionNotifications *bool   `json:"missionNotifications"`
	DarkTheme            *bool   `json:"darkTheme"`
}

type updateAccountReq struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

// GET /api/v1/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	view, err := h.profiles.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// PATCH /api/v1/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.profiles.UpdateProfile(c.Request.Context(), userID, domain.ProfileSettings{
		Bio:                  req.Bio,
		AvatarURL:            req.AvatarURL,
		DailyNotifications:   req.DailyNotifications,
		MissionNotifications: req.MissionNotifications,
		DarkTheme:            req.DarkTheme,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// PATCH /api/v1/account
func (h *ProfileHandler) UpdateAccount(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req updateAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.profiles.UpdateAccount(c.Request.Context(), userID, usecase.AccountUpdate{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

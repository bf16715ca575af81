package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	community CommunityService
}

func NewCommunityHandler(cs CommunityService) *CommunityHandler {
	return &CommunityHandler{community: cs}
}

type postReq struct {
	Content string `json:"content" binding:"required"`
}

// GET /api/v1/community/feed
func (h *CommunityHandler) Feed(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.community.Feed(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /api/v1/community/feed
func (h *CommunityHandler) Publish(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req postReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.community.Publish(c.Request.Context(), userID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

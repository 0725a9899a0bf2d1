package handlers

import (
	"net/http"

	"agora/internal/db"
	"agora/internal/models"

	"github.com/gin-gonic/gin"
)

type FollowerHandler struct{}

func NewFollowerHandler() *FollowerHandler {
	return &FollowerHandler{}
}

type followRequest struct {
	FollowingID uint `json:"followingId"`
}

func (h *FollowerHandler) Follow(c *gin.Context) {
	user := CurrentUser(c)

	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FollowingID == 0 {
		jsonError(c, http.StatusBadRequest, "Following ID is required")
		return
	}

	if req.FollowingID == user.ID {
		jsonError(c, http.StatusBadRequest, "Cannot follow yourself")
		return
	}

	if err := db.DB.First(&models.User{}, req.FollowingID).Error; err != nil {
		jsonError(c, http.StatusNotFound, "User not found")
		return
	}

	var existing models.Follow
	if err := db.DB.Where("follower_id = ? AND following_id = ?", user.ID, req.FollowingID).First(&existing).Error; err == nil {
		jsonError(c, http.StatusBadRequest, "Already following")
		return
	}

	follow := models.Follow{
		FollowerID:  user.ID,
		FollowingID: req.FollowingID,
	}
	if err := db.DB.Create(&follow).Error; err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *FollowerHandler) Unfollow(c *gin.Context) {
	user := CurrentUser(c)

	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FollowingID == 0 {
		jsonError(c, http.StatusBadRequest, "Following ID is required")
		return
	}

	if err := db.DB.Where("follower_id = ? AND following_id = ?", user.ID, req.FollowingID).
		Delete(&models.Follow{}).Error; err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

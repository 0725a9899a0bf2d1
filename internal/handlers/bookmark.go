package handlers

import (
	"net/http"

	"agora/internal/db"
	"agora/internal/models"

	"github.com/gin-gonic/gin"
)

type BookmarkHandler struct{}

func NewBookmarkHandler() *BookmarkHandler {
	return &BookmarkHandler{}
}

type threadRefRequest struct {
	ThreadID uint `json:"threadId"`
}

func (h *BookmarkHandler) Add(c *gin.Context) {
	user := CurrentUser(c)

	var req threadRefRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ThreadID == 0 {
		jsonError(c, http.StatusBadRequest, "Thread ID is required")
		return
	}

	if err := db.DB.First(&models.Thread{}, req.ThreadID).Error; err != nil {
		jsonError(c, http.StatusNotFound, "Thread not found")
		return
	}

	var existing models.Bookmark
	if err := db.DB.Where("user_id = ? AND thread_id = ?", user.ID, req.ThreadID).First(&existing).Error; err == nil {
		jsonError(c, http.StatusBadRequest, "Already bookmarked")
		return
	}

	bookmark := models.Bookmark{
		UserID:   user.ID,
		ThreadID: req.ThreadID,
	}
	if err := db.DB.Create(&bookmark).Error; err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *BookmarkHandler) Remove(c *gin.Context) {
	user := CurrentUser(c)

	var req threadRefRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ThreadID == 0 {
		jsonError(c, http.StatusBadRequest, "Thread ID is required")
		return
	}

	if err := db.DB.Where("user_id = ? AND thread_id = ?", user.ID, req.ThreadID).
		Delete(&models.Bookmark{}).Error; err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// List returns the user's bookmarked threads, newest bookmark first.
func (h *BookmarkHandler) List(c *gin.Context) {
	user := CurrentUser(c)

	var bookmarks []models.Bookmark
	if err := db.DB.Preload("Thread").Preload("Thread.Author").Preload("Thread.Category").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&bookmarks).Error; err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookmarks": bookmarks})
}

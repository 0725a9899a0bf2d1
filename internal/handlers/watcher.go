package handlers

import (
	"net/http"

	"agora/internal/db"
	"agora/internal/models"

	"github.com/gin-gonic/gin"
)

type WatcherHandler struct{}

func NewWatcherHandler() *WatcherHandler {
	return &WatcherHandler{}
}

func (h *WatcherHandler) Watch(c *gin.Context) {
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

	var existing models.Watcher
	if err := db.DB.Where("user_id = ? AND thread_id = ?", user.ID, req.ThreadID).First(&existing).Error; err == nil {
		jsonError(c, http.StatusBadRequest, "Already watching")
		return
	}

	watcher := models.Watcher{
		UserID:   user.ID,
		ThreadID: req.ThreadID,
	}
	if err := db.DB.Create(&watcher).Error; err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *WatcherHandler) Unwatch(c *gin.Context) {
	user := CurrentUser(c)

	var req threadRefRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ThreadID == 0 {
		jsonError(c, http.StatusBadRequest, "Thread ID is required")
		return
	}

	if err := db.DB.Where("user_id = ? AND thread_id = ?", user.ID, req.ThreadID).
		Delete(&models.Watcher{}).Error; err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

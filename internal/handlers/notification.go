package handlers

import (
	"net/http"

	"agora/internal/db"
	"agora/internal/middleware"
	"agora/internal/models"
	"agora/internal/utils"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct{}

func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

// List returns the user's most recent notifications, optionally unread only.
func (h *NotificationHandler) List(c *gin.Context) {
	user := CurrentUser(c)

	query := db.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(50)
	if c.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}

	var notifications []models.Notification
	if err := query.Find(&notifications).Error; err != nil {
		serviceError(c, err)
		return
	}

	data := gin.H{"notifications": notifications}
	if count, exists := c.Get(middleware.UnreadCountKey); exists {
		data["unread_count"] = count
	}
	c.JSON(http.StatusOK, data)
}

type markReadRequest struct {
	NotificationID *uint `json:"notificationId"`
	MarkAll        bool  `json:"markAll"`
}

// MarkRead marks one notification or all of the user's notifications read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	user := CurrentUser(c)

	var req markReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	switch {
	case req.MarkAll:
		if err := db.DB.Model(&models.Notification{}).
			Where("user_id = ? AND is_read = ?", user.ID, false).
			Update("is_read", true).Error; err != nil {
			serviceError(c, err)
			return
		}
	case req.NotificationID != nil:
		if err := db.DB.Model(&models.Notification{}).
			Where("id = ? AND user_id = ?", *req.NotificationID, user.ID).
			Update("is_read", true).Error; err != nil {
			serviceError(c, err)
			return
		}
	default:
		jsonError(c, http.StatusBadRequest, "Missing notificationId or markAll parameter")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Read marks a single notification read; scoped to the recipient.
func (h *NotificationHandler) Read(c *gin.Context) {
	user := CurrentUser(c)
	id := uint(utils.StringToInt(c.Param("id")))

	var notification models.Notification
	if err := db.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&notification).Error; err != nil {
		jsonError(c, http.StatusNotFound, "Not found")
		return
	}

	if err := db.DB.Model(&notification).Update("is_read", true).Error; err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete removes a single notification; scoped to the recipient.
func (h *NotificationHandler) Delete(c *gin.Context) {
	user := CurrentUser(c)
	id := uint(utils.StringToInt(c.Param("id")))

	var notification models.Notification
	if err := db.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&notification).Error; err != nil {
		jsonError(c, http.StatusNotFound, "Not found")
		return
	}

	if err := db.DB.Delete(&notification).Error; err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ReadAll marks every unread notification for the user as read.
func (h *NotificationHandler) ReadAll(c *gin.Context) {
	user := CurrentUser(c)

	if err := db.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", user.ID, false).
		Update("is_read", true).Error; err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

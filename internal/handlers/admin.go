package handlers

import (
	"errors"
	"net/http"

	"agora/internal/db"
	"agora/internal/models"
	"agora/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

type updateRoleRequest struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
}

// UpdateRole changes a user's role, admin only. An admin setting their own
// role to admin is a no-op success; demoting themselves is rejected.
func (h *AdminHandler) UpdateRole(c *gin.Context) {
	actor := CurrentUser(c)

	var req updateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == 0 || req.Role == "" {
		jsonError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	if err := services.ValidateRoleChange(actor, req.UserID, req.Role); err != nil {
		if errors.Is(err, services.ErrForbidden) {
			jsonError(c, http.StatusForbidden, "Forbidden: Admin access required")
			return
		}
		serviceError(c, err)
		return
	}

	var target models.User
	if err := db.DB.First(&target, req.UserID).Error; err != nil {
		jsonError(c, http.StatusNotFound, "User not found")
		return
	}

	if err := db.DB.Model(&target).Update("role", req.Role).Error; err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListUsers returns all users for the admin panel.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	actor := CurrentUser(c)
	if !actor.IsAdmin() {
		jsonError(c, http.StatusForbidden, "Forbidden: Admin access required")
		return
	}

	var users []models.User
	if err := db.DB.Order("created_at ASC").Find(&users).Error; err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

package handlers

import (
	"net/http"
	"net/url"

	"agora/internal/db"
	"agora/internal/models"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct{}

func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// Show returns a user's public profile with activity counts.
func (h *ProfileHandler) Show(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		jsonError(c, http.StatusNotFound, "User not found")
		return
	}

	var threadCount, commentCount, followerCount, followingCount int64
	db.DB.Model(&models.Thread{}).Where("author_id = ?", user.ID).Count(&threadCount)
	db.DB.Model(&models.Comment{}).Where("author_id = ?", user.ID).Count(&commentCount)
	db.DB.Model(&models.Follow{}).Where("following_id = ?", user.ID).Count(&followerCount)
	db.DB.Model(&models.Follow{}).Where("follower_id = ?", user.ID).Count(&followingCount)

	data := gin.H{
		"profile":         user,
		"thread_count":    threadCount,
		"comment_count":   commentCount,
		"follower_count":  followerCount,
		"following_count": followingCount,
	}

	if viewer := CurrentUser(c); viewer != nil && viewer.ID != user.ID {
		var follow models.Follow
		data["is_following"] = db.DB.Where("follower_id = ? AND following_id = ?", viewer.ID, user.ID).First(&follow).Error == nil
	}

	c.JSON(http.StatusOK, data)
}

type updateProfileRequest struct {
	Username  *string `json:"username"`
	FullName  *string `json:"full_name"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

// Update changes the caller's profile; a username change is rejected when the
// name is already taken by someone else.
func (h *ProfileHandler) Update(c *gin.Context) {
	user := CurrentUser(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updates := map[string]interface{}{}
	if req.Username != nil {
		var existing models.User
		if err := db.DB.Where("username = ? AND id <> ?", *req.Username, user.ID).First(&existing).Error; err == nil {
			jsonError(c, http.StatusBadRequest, "Username is already taken")
			return
		}
		updates["username"] = *req.Username
	}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}

	if len(updates) > 0 {
		if err := db.DB.Model(user).Updates(updates).Error; err != nil {
			serviceError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"profile": user})
}

type updateDetailsRequest struct {
	FullName string `json:"full_name"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
	Website  string `json:"website"`
}

// UpdateDetails updates the free-form profile fields with length and URL
// validation.
func (h *ProfileHandler) UpdateDetails(c *gin.Context) {
	user := CurrentUser(c)

	var req updateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(req.Bio) > 500 {
		jsonError(c, http.StatusBadRequest, "Bio must be 500 characters or less")
		return
	}
	if len(req.FullName) > 100 {
		jsonError(c, http.StatusBadRequest, "Full name must be 100 characters or less")
		return
	}
	if len(req.Location) > 100 {
		jsonError(c, http.StatusBadRequest, "Location must be 100 characters or less")
		return
	}
	if len(req.Website) > 200 {
		jsonError(c, http.StatusBadRequest, "Website must be 200 characters or less")
		return
	}
	if req.Website != "" {
		if u, err := url.Parse(req.Website); err != nil || u.Scheme == "" || u.Host == "" {
			jsonError(c, http.StatusBadRequest, "Website must be a valid URL")
			return
		}
	}

	updates := map[string]interface{}{
		"full_name": req.FullName,
		"bio":       req.Bio,
		"location":  req.Location,
		"website":   req.Website,
	}
	if err := db.DB.Model(user).Updates(updates).Error; err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Leaderboard lists the highest-reputation users.
func (h *ProfileHandler) Leaderboard(c *gin.Context) {
	var users []models.User
	if err := db.DB.Order("reputation DESC, created_at ASC").Limit(20).Find(&users).Error; err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

package handlers

import (
	"net/http"

	"agora/internal/models"
	"agora/internal/services"

	"github.com/gin-gonic/gin"
)

type ReactionHandler struct{}

func NewReactionHandler() *ReactionHandler {
	return &ReactionHandler{}
}

type reactionRequest struct {
	ThreadID     *uint                `json:"threadId"`
	CommentID    *uint                `json:"commentId"`
	ReactionType *models.ReactionType `json:"reactionType"` // null removes
}

// Set applies a reaction and returns the target's current reactions.
func (h *ReactionHandler) Set(c *gin.Context) {
	user := CurrentUser(c)

	var req reactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	reactions, err := services.SetReaction(user, services.Target{
		ThreadID:  req.ThreadID,
		CommentID: req.CommentID,
	}, req.ReactionType)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "reactions": reactions})
}

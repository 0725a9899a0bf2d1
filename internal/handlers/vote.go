package handlers

import (
	"net/http"

	"agora/internal/models"
	"agora/internal/services"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct{}

func NewVoteHandler() *VoteHandler {
	return &VoteHandler{}
}

type voteRequest struct {
	ThreadID  *uint            `json:"threadId"`
	CommentID *uint            `json:"commentId"`
	VoteType  *models.VoteType `json:"voteType"` // null retracts
}

// Set applies a vote disposition and returns the target's new score.
func (h *VoteHandler) Set(c *gin.Context) {
	user := CurrentUser(c)

	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	score, err := services.SetVote(user, services.Target{
		ThreadID:  req.ThreadID,
		CommentID: req.CommentID,
	}, req.VoteType)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "score": score})
}

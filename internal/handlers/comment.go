package handlers

import (
	"net/http"

	"agora/internal/services"
	"agora/internal/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

type createCommentRequest struct {
	ThreadID        uint   `json:"threadId"`
	ParentID        *uint  `json:"parentId"`
	QuotedCommentID *uint  `json:"quotedCommentId"`
	Content         string `json:"content"`
}

func (h *CommentHandler) Create(c *gin.Context) {
	user := CurrentUser(c)

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ThreadID == 0 || req.Content == "" {
		jsonError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	comment, err := services.CreateComment(user, services.CreateCommentInput{
		ThreadID:        req.ThreadID,
		ParentID:        req.ParentID,
		QuotedCommentID: req.QuotedCommentID,
		Content:         req.Content,
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	data := gin.H{"comment": comment}
	if comment.QuotedCommentID != nil {
		if quoted, err := services.CommentByID(*comment.QuotedCommentID); err == nil {
			data["content_html"] = utils.QuoteMarkdown(quoted.Author.Username, quoted.Content, comment.Content)
		}
	} else {
		data["content_html"] = utils.RenderMarkdown(comment.Content)
	}

	c.JSON(http.StatusCreated, data)
}

// Replies returns the direct children of a comment, oldest first.
func (h *CommentHandler) Replies(c *gin.Context) {
	id := uint(utils.StringToInt(c.Param("id")))

	replies, err := services.LoadReplies(id)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"replies": replies})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	user := CurrentUser(c)
	id := uint(utils.StringToInt(c.Param("id")))

	if err := services.DeleteComment(user, id); err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

package services

import (
	"log"
	"strings"

	"agora/internal/db"
	"agora/internal/models"
)

type CreateCommentInput struct {
	ThreadID        uint
	ParentID        *uint
	QuotedCommentID *uint
	Content         string
}

// CreateComment inserts a comment and fans out the reply notification.
// Parent and quoted comments must belong to the same thread as the new
// comment; a comment on a locked thread is rejected.
func CreateComment(author *models.User, in CreateCommentInput) (*models.Comment, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, ErrEmptyContent
	}

	var thread models.Thread
	if err := db.DB.First(&thread, in.ThreadID).Error; err != nil {
		return nil, ErrNotFound
	}
	if thread.IsLocked {
		return nil, ErrThreadLocked
	}

	if in.ParentID != nil {
		var parent models.Comment
		if err := db.DB.First(&parent, *in.ParentID).Error; err != nil {
			return nil, ErrNotFound
		}
		if parent.ThreadID != in.ThreadID {
			return nil, ErrParentMismatch
		}
	}
	if in.QuotedCommentID != nil {
		var quoted models.Comment
		if err := db.DB.First(&quoted, *in.QuotedCommentID).Error; err != nil {
			return nil, ErrNotFound
		}
		if quoted.ThreadID != in.ThreadID {
			return nil, ErrQuoteMismatch
		}
	}

	comment := models.Comment{
		ThreadID:        in.ThreadID,
		AuthorID:        author.ID,
		ParentID:        in.ParentID,
		QuotedCommentID: in.QuotedCommentID,
		Content:         in.Content,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		return nil, err
	}
	comment.Author = *author

	// The comment is committed; a failed notification must not undo it.
	if err := NotifyOnReply(author, &comment); err != nil {
		log.Printf("Failed to create reply notification: %v", err)
	}

	AddReputationAsync(author.ID, ReputationCommentCreate, ActionCommentCreate)

	return &comment, nil
}

// CommentByID loads a single comment with its author.
func CommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := db.DB.Preload("Author").First(&comment, id).Error; err != nil {
		return nil, ErrNotFound
	}
	return &comment, nil
}

// LoadReplies returns the direct children of a comment, oldest first. Loading
// is lazy; callers fetch a subtree only when it is expanded.
func LoadReplies(parentID uint) ([]models.Comment, error) {
	if err := db.DB.First(&models.Comment{}, parentID).Error; err != nil {
		return nil, ErrNotFound
	}

	var replies []models.Comment
	if err := db.DB.Preload("Author").Preload("QuotedComment").Preload("QuotedComment.Author").
		Where("parent_id = ?", parentID).
		Order("created_at ASC").
		Find(&replies).Error; err != nil {
		return nil, err
	}

	FillReplyCounts(replies)
	for i := range replies {
		replies[i].Score = Score(Target{CommentID: &replies[i].ID})
	}
	return replies, nil
}

// ThreadComments returns all top-level comments on a thread, oldest first.
func ThreadComments(threadID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := db.DB.Preload("Author").Preload("QuotedComment").Preload("QuotedComment.Author").
		Where("thread_id = ? AND parent_id IS NULL", threadID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}

	FillReplyCounts(comments)
	for i := range comments {
		comments[i].Score = Score(Target{CommentID: &comments[i].ID})
	}
	return comments, nil
}

// FillReplyCounts bulk-computes the direct-child count for each comment.
func FillReplyCounts(comments []models.Comment) {
	if len(comments) == 0 {
		return
	}

	ids := make([]uint, len(comments))
	for i, cm := range comments {
		ids[i] = cm.ID
	}

	type countRow struct {
		ParentID uint
		Count    int
	}
	var rows []countRow
	db.DB.Model(&models.Comment{}).
		Select("parent_id, COUNT(*) as count").
		Where("parent_id IN ?", ids).
		Group("parent_id").
		Scan(&rows)

	counts := make(map[uint]int, len(rows))
	for _, r := range rows {
		counts[r.ParentID] = r.Count
	}
	for i := range comments {
		comments[i].ReplyCount = counts[comments[i].ID]
	}
}

// DeleteComment removes a comment. Only the comment's author may delete it;
// moderators get no override here, unlike thread deletion.
func DeleteComment(actor *models.User, id uint) error {
	var comment models.Comment
	if err := db.DB.First(&comment, id).Error; err != nil {
		return ErrNotFound
	}
	if !CanDeleteComment(actor, &comment) {
		return ErrForbidden
	}
	return db.DB.Delete(&comment).Error
}

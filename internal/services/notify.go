package services

import (
	"fmt"

	"agora/internal/db"
	"agora/internal/models"
)

// NotifyOnReply notifies the author being replied to: the parent comment's
// author for nested replies, the thread's author for top-level comments.
// No notification is created when the actor replies to themself.
func NotifyOnReply(actor *models.User, comment *models.Comment) error {
	var recipientID uint
	kind := "thread"

	if comment.ParentID != nil {
		var parent models.Comment
		if err := db.DB.First(&parent, *comment.ParentID).Error; err != nil {
			return err
		}
		recipientID = parent.AuthorID
		kind = "comment"
	} else {
		var thread models.Thread
		if err := db.DB.First(&thread, comment.ThreadID).Error; err != nil {
			return err
		}
		recipientID = thread.AuthorID
	}

	if recipientID == 0 || recipientID == actor.ID {
		return nil
	}

	notification := models.Notification{
		UserID:    recipientID,
		Type:      models.NotificationTypeReply,
		Content:   fmt.Sprintf("%s replied to your %s", actor.Username, kind),
		ThreadID:  &comment.ThreadID,
		CommentID: &comment.ID,
	}
	return db.DB.Create(&notification).Error
}

// NotifyOnThreadUpvote notifies the thread author of an upvote, unless the
// author upvoted their own thread.
func NotifyOnThreadUpvote(actor *models.User, thread *models.Thread) error {
	if thread.AuthorID == actor.ID {
		return nil
	}

	notification := models.Notification{
		UserID:   thread.AuthorID,
		Type:     models.NotificationTypeVote,
		Content:  fmt.Sprintf("%s upvoted your thread", actor.Username),
		ThreadID: &thread.ID,
	}
	return db.DB.Create(&notification).Error
}

// NotifyOnCommentUpvote notifies the comment author of an upvote, unless the
// author upvoted their own comment.
func NotifyOnCommentUpvote(actor *models.User, comment *models.Comment) error {
	if comment.AuthorID == actor.ID {
		return nil
	}

	notification := models.Notification{
		UserID:    comment.AuthorID,
		Type:      models.NotificationTypeVote,
		Content:   fmt.Sprintf("%s upvoted your comment", actor.Username),
		ThreadID:  &comment.ThreadID,
		CommentID: &comment.ID,
	}
	return db.DB.Create(&notification).Error
}

package models

import (
	"time"
)

type ReactionType string

const (
	ReactionLike  ReactionType = "like"
	ReactionLove  ReactionType = "love"
	ReactionHaha  ReactionType = "haha"
	ReactionWow   ReactionType = "wow"
	ReactionSad   ReactionType = "sad"
	ReactionAngry ReactionType = "angry"
)

// ValidReaction reports whether t is one of the fixed reaction set.
func ValidReaction(t ReactionType) bool {
	switch t {
	case ReactionLike, ReactionLove, ReactionHaha, ReactionWow, ReactionSad, ReactionAngry:
		return true
	}
	return false
}

// Reaction targets exactly one of ThreadID or CommentID; at most one row per
// (user, target). Picking a second type replaces the first.
type Reaction struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	UserID       uint         `gorm:"not null;index;uniqueIndex:idx_react_user_thread;uniqueIndex:idx_react_user_comment" json:"user_id"`
	ThreadID     *uint        `gorm:"index;uniqueIndex:idx_react_user_thread" json:"thread_id"`
	CommentID    *uint        `gorm:"index;uniqueIndex:idx_react_user_comment" json:"comment_id"`
	ReactionType ReactionType `gorm:"size:10;not null" json:"reaction_type"`
	CreatedAt    time.Time    `json:"created_at"`
}

package models

import (
	"time"
)

type VoteType string

const (
	VoteUp   VoteType = "upvote"
	VoteDown VoteType = "downvote"
)

// Vote targets exactly one of ThreadID or CommentID. The composite unique
// indexes hold one row per (user, thread) and per (user, comment); NULLs are
// distinct in both Postgres and SQLite, so the two indexes do not collide.
// The database, not the application, arbitrates concurrent writes.
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_vote_user_thread;uniqueIndex:idx_vote_user_comment" json:"user_id"`
	ThreadID  *uint     `gorm:"index;uniqueIndex:idx_vote_user_thread" json:"thread_id"`
	CommentID *uint     `gorm:"index;uniqueIndex:idx_vote_user_comment" json:"comment_id"`
	VoteType  VoteType  `gorm:"size:10;not null" json:"vote_type"`
	CreatedAt time.Time `json:"created_at"`
}

package models

import (
	"time"
)

// Bookmark marks a thread saved by a user.
type Bookmark struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_bookmark_user_thread" json:"user_id"`
	ThreadID  uint      `gorm:"not null;index;uniqueIndex:idx_bookmark_user_thread" json:"thread_id"`
	Thread    Thread    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"thread"`
	CreatedAt time.Time `json:"created_at"`
}

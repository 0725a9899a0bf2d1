package models

import (
	"time"
)

// Watcher subscribes a user to a thread's activity.
type Watcher struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_watcher_user_thread" json:"user_id"`
	ThreadID  uint      `gorm:"not null;index;uniqueIndex:idx_watcher_user_thread" json:"thread_id"`
	Thread    Thread    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"thread"`
	CreatedAt time.Time `json:"created_at"`
}

package models

import (
	"time"
)

type NotificationType string

const (
	NotificationTypeReply   NotificationType = "reply"
	NotificationTypeMention NotificationType = "mention"
	NotificationTypeVote    NotificationType = "vote"
)

type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    uint             `gorm:"not null;index" json:"user_id"` // recipient
	User      User             `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Type      NotificationType `gorm:"size:20;not null" json:"type"`
	Content   string           `gorm:"type:text;not null" json:"content"`
	ThreadID  *uint            `json:"thread_id"`
	CommentID *uint            `json:"comment_id"`
	IsRead    bool             `gorm:"default:false;index" json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

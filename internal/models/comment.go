package models

import (
	"time"
)

type Comment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ThreadID        uint      `gorm:"not null;index" json:"thread_id"`
	Thread          Thread    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	AuthorID        uint      `gorm:"not null;index" json:"author_id"`
	Author          User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	ParentID        *uint     `gorm:"index" json:"parent_id"` // nil for top-level comments
	Parent          *Comment  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	QuotedCommentID *uint     `json:"quoted_comment_id"` // non-owning cross-reference
	QuotedComment   *Comment  `gorm:"foreignKey:QuotedCommentID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"quoted_comment,omitempty"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Derived at query time, not stored.
	Score      int `gorm:"-" json:"score"`
	ReplyCount int `gorm:"-" json:"reply_count"`
}

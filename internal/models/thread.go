package models

import (
	"time"
)

type Thread struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	AuthorID   uint      `gorm:"not null;index" json:"author_id"`
	Author     User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	Category   Category  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category"`
	IsPinned   bool      `gorm:"default:false" json:"is_pinned"`
	IsLocked   bool      `gorm:"default:false" json:"is_locked"`
	ViewCount  int       `gorm:"default:0" json:"view_count"`
	Tags       []Tag     `gorm:"many2many:thread_tags;" json:"tags"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Derived at query time, not stored.
	Score        int `gorm:"-" json:"score"`
	CommentCount int `gorm:"-" json:"comment_count"`
}

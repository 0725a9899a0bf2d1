package services

import (
	"fmt"
	"testing"

	"agora/internal/db"
	"agora/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Use(gdb))
}

var userSeq int

func createUser(t *testing.T, role string) *models.User {
	t.Helper()
	userSeq++
	user := models.User{
		Username: fmt.Sprintf("user%d", userSeq),
		Email:    fmt.Sprintf("user%d@example.com", userSeq),
		Password: "x",
		Role:     role,
	}
	require.NoError(t, db.DB.Create(&user).Error)
	return &user
}

func createCategory(t *testing.T) *models.Category {
	t.Helper()
	userSeq++
	category := models.Category{
		Name: fmt.Sprintf("Category %d", userSeq),
		Slug: fmt.Sprintf("category-%d", userSeq),
	}
	require.NoError(t, db.DB.Create(&category).Error)
	return &category
}

func createThread(t *testing.T, author *models.User) *models.Thread {
	t.Helper()
	category := createCategory(t)
	thread := models.Thread{
		Title:      "A thread",
		Content:    "Thread content",
		AuthorID:   author.ID,
		CategoryID: category.ID,
	}
	require.NoError(t, db.DB.Create(&thread).Error)
	return &thread
}

func createTestComment(t *testing.T, author *models.User, thread *models.Thread, parentID *uint) *models.Comment {
	t.Helper()
	comment := models.Comment{
		ThreadID: thread.ID,
		AuthorID: author.ID,
		ParentID: parentID,
		Content:  "A comment",
	}
	require.NoError(t, db.DB.Create(&comment).Error)
	return &comment
}

func notificationCount(t *testing.T, userID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.DB.Model(&models.Notification{}).Where("user_id = ?", userID).Count(&count).Error)
	return count
}

func voteRowCount(t *testing.T, target Target) int64 {
	t.Helper()
	var count int64
	require.NoError(t, target.scope(db.DB.Model(&models.Vote{})).Count(&count).Error)
	return count
}

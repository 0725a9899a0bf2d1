package services

import (
	"testing"
	"time"

	"agora/internal/db"
	"agora/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentRequiresContent(t *testing.T) {
	setupTestDB(t)
	author := createUser(t, models.RoleUser)
	thread := createThread(t, author)

	_, err := CreateComment(author, CreateCommentInput{ThreadID: thread.ID, Content: "   "})
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestCreateCommentMissingThread(t *testing.T) {
	setupTestDB(t)
	author := createUser(t, models.RoleUser)

	_, err := CreateComment(author, CreateCommentInput{ThreadID: 9999, Content: "hi"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateCommentOnLockedThread(t *testing.T) {
	setupTestDB(t)
	author := createUser(t, models.RoleUser)
	thread := createThread(t, author)
	require.NoError(t, db.DB.Model(thread).Update("is_locked", true).Error)

	_, err := CreateComment(author, CreateCommentInput{ThreadID: thread.ID, Content: "too late"})
	assert.ErrorIs(t, err, ErrThreadLocked)
}

func TestCreateCommentParentMustMatchThread(t *testing.T) {
	setupTestDB(t)
	author := createUser(t, models.RoleUser)
	threadA := createThread(t, author)
	threadB := createThread(t, author)
	parentInB := createTestComment(t, author, threadB, nil)

	_, err := CreateComment(author, CreateCommentInput{
		ThreadID: threadA.ID,
		ParentID: &parentInB.ID,
		Content:  "cross-thread reply",
	})
	assert.ErrorIs(t, err, ErrParentMismatch)
}

func TestCreateCommentQuoteMustMatchThread(t *testing.T) {
	setupTestDB(t)
	author := createUser(t, models.RoleUser)
	threadA := createThread(t, author)
	threadB := createThread(t, author)
	quotedInB := createTestComment(t, author, threadB, nil)

	_, err := CreateComment(author, CreateCommentInput{
		ThreadID:        threadA.ID,
		QuotedCommentID: &quotedInB.ID,
		Content:         "quoting across threads",
	})
	assert.ErrorIs(t, err, ErrQuoteMismatch)
}

func TestCreateCommentMissingParent(t *testing.T) {
	setupTestDB(t)
	author := createUser(t, models.RoleUser)
	thread := createThread(t, author)

	missing := uint(9999)
	_, err := CreateComment(author, CreateCommentInput{
		ThreadID: thread.ID,
		ParentID: &missing,
		Content:  "reply to nothing",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateCommentNotifiesThreadAuthor(t *testing.T) {
	setupTestDB(t)
	alice := createUser(t, models.RoleUser)
	bob := createUser(t, models.RoleUser)
	thread := createThread(t, alice)

	comment, err := CreateComment(bob, CreateCommentInput{ThreadID: thread.ID, Content: "nice thread"})
	require.NoError(t, err)
	assert.Equal(t, bob.ID, comment.AuthorID)

	var notification models.Notification
	require.NoError(t, db.DB.Where("user_id = ?", alice.ID).First(&notification).Error)
	assert.Equal(t, models.NotificationTypeReply, notification.Type)
	assert.Equal(t, bob.Username+" replied to your thread", notification.Content)
	require.NotNil(t, notification.CommentID)
	assert.Equal(t, comment.ID, *notification.CommentID)
}

func TestCreateCommentNotifiesParentAuthorNotThreadAuthor(t *testing.T) {
	setupTestDB(t)
	alice := createUser(t, models.RoleUser)
	bob := createUser(t, models.RoleUser)
	carol := createUser(t, models.RoleUser)
	thread := createThread(t, alice)
	parent := createTestComment(t, bob, thread, nil)

	_, err := CreateComment(carol, CreateCommentInput{
		ThreadID: thread.ID,
		ParentID: &parent.ID,
		Content:  "replying to bob",
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1, notificationCount(t, bob.ID))
	assert.EqualValues(t, 0, notificationCount(t, alice.ID))

	var notification models.Notification
	require.NoError(t, db.DB.Where("user_id = ?", bob.ID).First(&notification).Error)
	assert.Equal(t, carol.Username+" replied to your comment", notification.Content)
}

func TestCreateCommentSelfReplyDoesNotNotify(t *testing.T) {
	setupTestDB(t)
	alice := createUser(t, models.RoleUser)
	thread := createThread(t, alice)

	_, err := CreateComment(alice, CreateCommentInput{ThreadID: thread.ID, Content: "bump"})
	require.NoError(t, err)
	assert.EqualValues(t, 0, notificationCount(t, alice.ID))
}

func TestLoadRepliesOrderedOldestFirst(t *testing.T) {
	setupTestDB(t)
	author := createUser(t, models.RoleUser)
	thread := createThread(t, author)
	parent := createTestComment(t, author, thread, nil)

	base := time.Now().Add(-time.Hour)
	for i, content := range []string{"first", "second", "third"} {
		reply := models.Comment{
			ThreadID:  thread.ID,
			AuthorID:  author.ID,
			ParentID:  &parent.ID,
			Content:   content,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.DB.Create(&reply).Error)
	}

	replies, err := LoadReplies(parent.ID)
	require.NoError(t, err)
	require.Len(t, replies, 3)
	assert.Equal(t, "first", replies[0].Content)
	assert.Equal(t, "second", replies[1].Content)
	assert.Equal(t, "third", replies[2].Content)
	for _, r := range replies {
		assert.Equal(t, author.Username, r.Author.Username)
	}
}

func TestLoadRepliesMissingParent(t *testing.T) {
	setupTestDB(t)
	_, err := LoadReplies(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadRepliesCarriesQuotedComment(t *testing.T) {
	setupTestDB(t)
	alice := createUser(t, models.RoleUser)
	bob := createUser(t, models.RoleUser)
	thread := createThread(t, alice)
	parent := createTestComment(t, alice, thread, nil)
	quoted := createTestComment(t, bob, thread, nil)

	_, err := CreateComment(alice, CreateCommentInput{
		ThreadID:        thread.ID,
		ParentID:        &parent.ID,
		QuotedCommentID: &quoted.ID,
		Content:         "as bob said",
	})
	require.NoError(t, err)

	replies, err := LoadReplies(parent.ID)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	require.NotNil(t, replies[0].QuotedComment)
	assert.Equal(t, quoted.ID, replies[0].QuotedComment.ID)
	assert.Equal(t, bob.Username, replies[0].QuotedComment.Author.Username)
}

func TestThreadCommentsTopLevelOnlyWithReplyCounts(t *testing.T) {
	setupTestDB(t)
	author := createUser(t, models.RoleUser)
	thread := createThread(t, author)

	top1 := createTestComment(t, author, thread, nil)
	top2 := createTestComment(t, author, thread, nil)
	createTestComment(t, author, thread, &top1.ID)
	createTestComment(t, author, thread, &top1.ID)

	comments, err := ThreadComments(thread.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)

	byID := map[uint]models.Comment{}
	for _, cm := range comments {
		byID[cm.ID] = cm
	}
	assert.Equal(t, 2, byID[top1.ID].ReplyCount)
	assert.Equal(t, 0, byID[top2.ID].ReplyCount)
}

func TestDeleteCommentOwnerOnly(t *testing.T) {
	setupTestDB(t)
	owner := createUser(t, models.RoleUser)
	moderator := createUser(t, models.RoleModerator)
	admin := createUser(t, models.RoleAdmin)
	thread := createThread(t, owner)
	comment := createTestComment(t, owner, thread, nil)

	// Elevated roles get no override on comments.
	assert.ErrorIs(t, DeleteComment(moderator, comment.ID), ErrForbidden)
	assert.ErrorIs(t, DeleteComment(admin, comment.ID), ErrForbidden)

	require.NoError(t, DeleteComment(owner, comment.ID))
	err := db.DB.First(&models.Comment{}, comment.ID).Error
	assert.Error(t, err)
}

func TestDeleteCommentMissing(t *testing.T) {
	setupTestDB(t)
	actor := createUser(t, models.RoleUser)
	assert.ErrorIs(t, DeleteComment(actor, 9999), ErrNotFound)
}

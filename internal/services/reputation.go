package services

import (
	"agora/internal/db"
	"agora/internal/models"

	"gorm.io/gorm"
)

// Reputation action labels.
const (
	ActionThreadCreate     = "thread created"
	ActionCommentCreate    = "comment posted"
	ActionThreadUpvoted    = "thread upvoted"
	ActionCommentUpvoted   = "comment upvoted"
	ActionThreadDownvoted  = "thread downvoted"
	ActionCommentDownvoted = "comment downvoted"
)

// Reputation deltas.
const (
	ReputationThreadCreate   = 2
	ReputationCommentCreate  = 1
	ReputationThreadUpvoted  = 2
	ReputationCommentUpvoted = 1
	ReputationDownvoted      = -1
)

// AddReputation records a reputation delta and updates the user's balance in
// one transaction.
func AddReputation(userID uint, amount int, action string) error {
	return addReputation(db.DB, userID, amount, action)
}

// AddReputationAsync applies the delta in the background; reputation is
// best-effort bookkeeping and never blocks the triggering request.
func AddReputationAsync(userID uint, amount int, action string) {
	gdb := db.DB
	go func() {
		_ = addReputation(gdb, userID, amount, action)
	}()
}

func addReputation(gdb *gorm.DB, userID uint, amount int, action string) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		entry := models.ReputationLog{
			UserID: userID,
			Amount: amount,
			Action: action,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			UpdateColumn("reputation", gorm.Expr("reputation + ?", amount)).
			Error
	})
}

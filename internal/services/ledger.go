package services

import (
	"log"

	"agora/internal/db"
	"agora/internal/models"

	"gorm.io/gorm"
)

// Target identifies exactly one votable/reactable item.
type Target struct {
	ThreadID  *uint
	CommentID *uint
}

func (t Target) validate() error {
	if (t.ThreadID == nil) == (t.CommentID == nil) {
		return ErrInvalidTarget
	}
	return nil
}

// scope narrows a query to the target's rows.
func (t Target) scope(q *gorm.DB) *gorm.DB {
	if t.ThreadID != nil {
		return q.Where("thread_id = ?", *t.ThreadID)
	}
	return q.Where("comment_id = ?", *t.CommentID)
}

// SetVote applies a vote disposition for actor on target and returns the
// target's new score. A nil value removes any existing vote (idempotent);
// repeating the current disposition toggles it off; a different disposition
// replaces the old row. At-most-one-row-per-(actor,target) is enforced by the
// unique indexes on the votes table, not by application locking.
func SetVote(actor *models.User, target Target, value *models.VoteType) (int, error) {
	if err := target.validate(); err != nil {
		return 0, err
	}
	if value != nil && *value != models.VoteUp && *value != models.VoteDown {
		return 0, ErrInvalidVote
	}

	// Resolve the target's owner up front; also serves as the existence check.
	var (
		thread  models.Thread
		comment models.Comment
	)
	if target.ThreadID != nil {
		if err := db.DB.First(&thread, *target.ThreadID).Error; err != nil {
			return 0, ErrNotFound
		}
	} else {
		if err := db.DB.First(&comment, *target.CommentID).Error; err != nil {
			return 0, ErrNotFound
		}
	}

	var existing models.Vote
	hasExisting := target.scope(db.DB.Where("user_id = ?", actor.ID)).First(&existing).Error == nil

	switch {
	case value == nil:
		// Retract; succeeds whether or not a vote existed.
		if err := target.scope(db.DB.Where("user_id = ?", actor.ID)).Delete(&models.Vote{}).Error; err != nil {
			return 0, err
		}
	case hasExisting && existing.VoteType == *value:
		// Same disposition again: toggle off.
		if err := db.DB.Delete(&existing).Error; err != nil {
			return 0, err
		}
	default:
		// Replace, never duplicate.
		if err := target.scope(db.DB.Where("user_id = ?", actor.ID)).Delete(&models.Vote{}).Error; err != nil {
			return 0, err
		}
		vote := models.Vote{
			UserID:    actor.ID,
			ThreadID:  target.ThreadID,
			CommentID: target.CommentID,
			VoteType:  *value,
		}
		if err := db.DB.Create(&vote).Error; err != nil {
			return 0, err
		}

		// Fan out on positive dispositions only; failure never fails the vote.
		if *value == models.VoteUp {
			var err error
			if target.ThreadID != nil {
				err = NotifyOnThreadUpvote(actor, &thread)
			} else {
				err = NotifyOnCommentUpvote(actor, &comment)
			}
			if err != nil {
				log.Printf("Failed to create vote notification: %v", err)
			}
		}

		ownerID := thread.AuthorID
		action := ActionThreadUpvoted
		amount := ReputationThreadUpvoted
		if target.CommentID != nil {
			ownerID = comment.AuthorID
			action = ActionCommentUpvoted
			amount = ReputationCommentUpvoted
		}
		if *value == models.VoteDown {
			amount = ReputationDownvoted
			if target.ThreadID != nil {
				action = ActionThreadDownvoted
			} else {
				action = ActionCommentDownvoted
			}
		}
		if ownerID != actor.ID {
			AddReputationAsync(ownerID, amount, action)
		}
	}

	return Score(target), nil
}

// Score is count(upvote) - count(downvote) over all rows for the target,
// recomputed in full on every call. Fine at forum scale.
func Score(target Target) int {
	var upvotes, downvotes int64
	target.scope(db.DB.Model(&models.Vote{})).Where("vote_type = ?", models.VoteUp).Count(&upvotes)
	target.scope(db.DB.Model(&models.Vote{})).Where("vote_type = ?", models.VoteDown).Count(&downvotes)
	return int(upvotes - downvotes)
}

// SetReaction applies a reaction for actor on target and returns the target's
// current reactions. A nil type removes any reaction; reselecting the current
// type toggles it off; a different type replaces it.
func SetReaction(actor *models.User, target Target, value *models.ReactionType) ([]models.Reaction, error) {
	if err := target.validate(); err != nil {
		return nil, err
	}
	if value != nil && !models.ValidReaction(*value) {
		return nil, ErrInvalidReaction
	}

	if target.ThreadID != nil {
		if err := db.DB.First(&models.Thread{}, *target.ThreadID).Error; err != nil {
			return nil, ErrNotFound
		}
	} else {
		if err := db.DB.First(&models.Comment{}, *target.CommentID).Error; err != nil {
			return nil, ErrNotFound
		}
	}

	var existing models.Reaction
	hasExisting := target.scope(db.DB.Where("user_id = ?", actor.ID)).First(&existing).Error == nil

	switch {
	case value == nil, hasExisting && existing.ReactionType == *value:
		if err := target.scope(db.DB.Where("user_id = ?", actor.ID)).Delete(&models.Reaction{}).Error; err != nil {
			return nil, err
		}
	default:
		if err := target.scope(db.DB.Where("user_id = ?", actor.ID)).Delete(&models.Reaction{}).Error; err != nil {
			return nil, err
		}
		reaction := models.Reaction{
			UserID:       actor.ID,
			ThreadID:     target.ThreadID,
			CommentID:    target.CommentID,
			ReactionType: *value,
		}
		if err := db.DB.Create(&reaction).Error; err != nil {
			return nil, err
		}
	}

	return TargetReactions(target)
}

// TargetReactions returns all reactions currently on the target.
func TargetReactions(target Target) ([]models.Reaction, error) {
	var reactions []models.Reaction
	if err := target.scope(db.DB).Order("created_at ASC").Find(&reactions).Error; err != nil {
		return nil, err
	}
	return reactions, nil
}

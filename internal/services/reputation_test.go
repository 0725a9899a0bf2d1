package services

import (
	"testing"

	"agora/internal/db"
	"agora/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddReputationUpdatesBalanceAndLog(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, models.RoleUser)

	require.NoError(t, AddReputation(user.ID, ReputationThreadCreate, ActionThreadCreate))
	require.NoError(t, AddReputation(user.ID, ReputationDownvoted, ActionThreadDownvoted))

	var reloaded models.User
	require.NoError(t, db.DB.First(&reloaded, user.ID).Error)
	assert.Equal(t, ReputationThreadCreate+ReputationDownvoted, reloaded.Reputation)

	var logs []models.ReputationLog
	require.NoError(t, db.DB.Where("user_id = ?", user.ID).Order("id ASC").Find(&logs).Error)
	require.Len(t, logs, 2)
	assert.Equal(t, ActionThreadCreate, logs[0].Action)
	assert.Equal(t, ReputationThreadCreate, logs[0].Amount)
	assert.Equal(t, ActionThreadDownvoted, logs[1].Action)
	assert.Equal(t, ReputationDownvoted, logs[1].Amount)
}

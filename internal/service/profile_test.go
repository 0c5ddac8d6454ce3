package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipeshare/backend/internal/types"
)

func TestProfileGetAndUpdate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db)
	userID := createProfile(t, db, "cook")

	profile, err := svc.GetByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "cook", profile.Username)

	bio := "I make soup."
	updated, err := svc.Update(context.Background(), userID, &types.UpdateProfileRequest{
		Username: "soupcook",
		Bio:      &bio,
	})
	require.NoError(t, err)
	assert.Equal(t, "soupcook", updated.Username)
	assert.Equal(t, "I make soup.", updated.Bio)

	// Unset fields stay untouched.
	updated, err = svc.Update(context.Background(), userID, &types.UpdateProfileRequest{})
	require.NoError(t, err)
	assert.Equal(t, "soupcook", updated.Username)
	assert.Equal(t, "I make soup.", updated.Bio)

	byName, err := svc.GetByUsername(context.Background(), "soupcook")
	require.NoError(t, err)
	assert.Equal(t, userID, byName.UserID)
}

func TestProfileNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProfileService(db)

	_, err := svc.GetByUserID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = svc.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = svc.Update(context.Background(), uuid.New(), &types.UpdateProfileRequest{Username: "x"})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

package services

import (
	"testing"
	"time"

	"backend/models"
	"backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBiometricProfileComplete(t *testing.T) {
	user := &models.User{
		WeightKg:      70,
		HeightCm:      175,
		Birthday:      time.Now().AddDate(-30, 0, -1),
		Gender:        string(utils.GenderMale),
		ActivityLevel: string(utils.ActivityModerate),
		Goal:          string(utils.GoalMaintenance),
	}

	p, err := BuildBiometricProfile(user)
	require.NoError(t, err)
	assert.Equal(t, 30, p.AgeYears)
	assert.Equal(t, utils.GenderMale, p.Gender)
	assert.InDelta(t, 70.0, p.WeightKg, 1e-9)
}

func TestBuildBiometricProfileMissingFields(t *testing.T) {
	user := &models.User{
		HeightCm: 175,
		Gender:   string(utils.GenderFemale),
	}

	_, err := BuildBiometricProfile(user)
	require.ErrorIs(t, err, ErrMissingBiometricData)
	for _, field := range []string{"weight", "birthday", "activity_level", "goal"} {
		assert.Contains(t, err.Error(), field)
	}
	assert.NotContains(t, err.Error(), "height,")
}

func TestUserServiceGetUserNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.GetUser(12345)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfileSetsBiometrics(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user := &models.User{Email: "u@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)

	updated, err := svc.UpdateProfile(user.ID, ProfileInput{
		Birthday:      "1994-05-20",
		WeightKg:      82,
		HeightCm:      180,
		Gender:        string(utils.GenderMale),
		ActivityLevel: string(utils.ActivityActive),
		Goal:          string(utils.GoalWeightGain),
	})
	require.NoError(t, err)

	_, err = BuildBiometricProfile(updated)
	assert.NoError(t, err)
}

func TestUpdateProfileRejectsMalformedBirthday(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user := &models.User{Email: "u@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)

	_, err := svc.UpdateProfile(user.ID, ProfileInput{Birthday: "20-05-1994"})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "birthday")

	// the rejected update must not have touched the stored row
	stored, err := svc.GetUser(user.ID)
	require.NoError(t, err)
	assert.True(t, stored.Birthday.IsZero())
}

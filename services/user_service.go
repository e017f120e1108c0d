package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

func (s *UserService) GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// BiometricProfile loads the user and validates their biometrics.
func (s *UserService) BiometricProfile(userID uint) (utils.BiometricProfile, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return utils.BiometricProfile{}, err
	}
	return BuildBiometricProfile(user)
}

// BuildBiometricProfile checks that all six biometric fields are present and
// converts them to the calculator's profile type. Missing fields are listed
// in the error so the client can prompt profile completion.
func BuildBiometricProfile(user *models.User) (utils.BiometricProfile, error) {
	var missing []string
	if user.WeightKg <= 0 {
		missing = append(missing, "weight")
	}
	if user.HeightCm <= 0 {
		missing = append(missing, "height")
	}
	if user.Birthday.IsZero() {
		missing = append(missing, "birthday")
	}
	if user.Gender == "" {
		missing = append(missing, "gender")
	}
	if user.ActivityLevel == "" {
		missing = append(missing, "activity_level")
	}
	if user.Goal == "" {
		missing = append(missing, "goal")
	}
	if len(missing) > 0 {
		return utils.BiometricProfile{}, fmt.Errorf("%w: %s", ErrMissingBiometricData, strings.Join(missing, ", "))
	}

	return utils.BiometricProfile{
		WeightKg:      user.WeightKg,
		HeightCm:      user.HeightCm,
		AgeYears:      utils.CalculateAge(user.Birthday),
		Gender:        utils.Gender(user.Gender),
		ActivityLevel: utils.ActivityLevel(user.ActivityLevel),
		Goal:          utils.Goal(user.Goal),
	}, nil
}

type ProfileInput struct {
	FullName      string  `json:"full_name"`
	Birthday      string  `json:"birthday"` // sent as YYYY-MM-DD
	WeightKg      float64 `json:"weight_kg"`
	HeightCm      float64 `json:"height_cm"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
}

func (s *UserService) UpdateProfile(userID uint, input ProfileInput) (*models.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Birthday != "" {
		birthday, err := time.Parse("2006-01-02", input.Birthday)
		if err != nil {
			return nil, fmt.Errorf("%w: birthday %q is not a YYYY-MM-DD date", ErrInvalidInput, input.Birthday)
		}
		user.Birthday = birthday
	}
	if input.WeightKg > 0 {
		user.WeightKg = input.WeightKg
	}
	if input.HeightCm > 0 {
		user.HeightCm = input.HeightCm
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.ActivityLevel != "" {
		user.ActivityLevel = input.ActivityLevel
	}
	if input.Goal != "" {
		user.Goal = input.Goal
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type IntakeService struct {
	db    *gorm.DB
	users *UserService
	meals *MealService

	mu      sync.Mutex
	lockDay string
	locks   map[string]*sync.Mutex
}

func NewIntakeService(db *gorm.DB, users *UserService, meals *MealService) *IntakeService {
	return &IntakeService{
		db:    db,
		users: users,
		meals: meals,
		locks: map[string]*sync.Mutex{},
	}
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// lockFor serializes consumption per (user, day). Concurrent consumes on the
// same ledger row are a read-modify-write and would otherwise lose updates.
func (s *IntakeService) lockFor(userID uint, day time.Time) *sync.Mutex {
	date := day.Format("2006-01-02")
	key := fmt.Sprintf("%d:%s", userID, date)
	s.mu.Lock()
	defer s.mu.Unlock()
	// consumption only ever targets the current day, so once the day rolls
	// over the previous day's mutexes can never be requested again
	if s.lockDay != date {
		s.lockDay = date
		s.locks = map[string]*sync.Mutex{}
	}
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

// seedBaseline computes one full day of recommended intake for a profile:
// the population RDA defaults with the six energy/macro keys replaced by
// the personalized values.
func seedBaseline(p utils.BiometricProfile) (map[string]utils.RDAValue, error) {
	tdee, err := utils.TotalDailyExpenditure(p)
	if err != nil {
		return nil, err
	}
	energy, err := utils.AdjustForGoal(tdee, p.Goal)
	if err != nil {
		return nil, err
	}
	protein, err := utils.ProteinGrams(p)
	if err != nil {
		return nil, err
	}
	fat, err := utils.FatGrams(p, energy)
	if err != nil {
		return nil, err
	}
	saturated, unsaturated := utils.FatSplit(fat)
	carbs := utils.CarbGrams(energy, protein, fat)

	base := utils.RecommendedIntakes()
	base[utils.KeyEnergy] = utils.RDAValue{Value: energy, Unit: "kcal"}
	base[utils.KeyProtein] = utils.RDAValue{Value: protein, Unit: "g"}
	base[utils.KeyFat] = utils.RDAValue{Value: fat, Unit: "g"}
	base[utils.KeySaturatedFat] = utils.RDAValue{Value: saturated, Unit: "g"}
	base[utils.KeyPolyunsaturatedFat] = utils.RDAValue{Value: unsaturated, Unit: "g"}
	base[utils.KeyCarbohydrate] = utils.RDAValue{Value: carbs, Unit: "g"}
	return base, nil
}

// FreshBaseline recomputes what one full day of recommended intake looks
// like for the user right now, ignoring any stored (possibly decremented)
// ledger row.
func (s *IntakeService) FreshBaseline(userID uint) (map[string]utils.RDAValue, error) {
	profile, err := s.users.BiometricProfile(userID)
	if err != nil {
		return nil, err
	}
	return seedBaseline(profile)
}

// GetOrCreateDailyIntake returns the ledger row for the given day, seeding
// it from the user's personalized baseline on first access. An existing row
// is returned as stored; it is never reseeded.
func (s *IntakeService) GetOrCreateDailyIntake(userID uint, day time.Time) (*models.DailyIntake, error) {
	day = dayStart(day)

	var row models.DailyIntake
	err := s.db.
		Preload("Nutrients").
		Where("user_id = ? AND date = ?", userID, day).
		First(&row).Error
	if err == nil {
		return &row, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	baseline, err := s.FreshBaseline(userID)
	if err != nil {
		return nil, err
	}

	row = models.DailyIntake{UserID: userID, Date: day}
	for name, v := range baseline {
		row.Nutrients = append(row.Nutrients, models.IntakeNutrient{
			Name:      name,
			Remaining: v.Value,
			Unit:      v.Unit,
		})
	}
	if createErr := s.db.Create(&row).Error; createErr != nil {
		// a concurrent first read may have inserted the row between our
		// miss and this create; the unique (user_id, date) index rejects
		// the loser, whose caller still deserves the winner's row
		var existing models.DailyIntake
		if err := s.db.
			Preload("Nutrients").
			Where("user_id = ? AND date = ?", userID, day).
			First(&existing).Error; err == nil {
			return &existing, nil
		}
		return nil, fmt.Errorf("%w for user %d: %v", ErrLedgerUpdateFailed, userID, createErr)
	}
	return &row, nil
}

// ConsumeMeal applies a meal's aggregated nutrients against today's ledger
// row and returns the full remaining map. Nutrient names with no matching
// ledger entry are skipped: the reference table intentionally does not
// cover everything a food source may report.
func (s *IntakeService) ConsumeMeal(userID, mealID uint) (map[string]float64, error) {
	meal, err := s.meals.GetMeal(userID, mealID)
	if err != nil {
		return nil, err
	}
	consumed := AggregateMeal(meal.Ingredients)

	today := dayStart(time.Now())
	lock := s.lockFor(userID, today)
	lock.Lock()
	defer lock.Unlock()

	var row models.DailyIntake
	err = s.db.
		Preload("Nutrients").
		Where("user_id = ? AND date = ?", userID, today).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLedgerNotFound
		}
		return nil, err
	}

	byNormalized := make(map[string]*models.IntakeNutrient, len(row.Nutrients))
	for i := range row.Nutrients {
		byNormalized[utils.NormalizeNutrientName(row.Nutrients[i].Name)] = &row.Nutrients[i]
	}

	// all decrements commit together: a storage failure midway must not
	// leave the row half-applied
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for key, info := range consumed {
			entry, ok := byNormalized[utils.NormalizeNutrientName(info.Name)]
			if !ok {
				log.Printf("consume: no recommended entry for nutrient %q (user %d)", key, userID)
				continue
			}
			if entry.Unit != "" && info.Unit != "" && !strings.EqualFold(entry.Unit, info.Unit) {
				log.Printf("consume: unit mismatch for %q: ledger tracks %s, source reports %s (user %d)",
					key, entry.Unit, info.Unit, userID)
				continue
			}
			entry.Remaining -= info.Value
			if err := tx.
				Model(&models.IntakeNutrient{}).
				Where("id = ?", entry.ID).
				Update("remaining", entry.Remaining).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w for user %d: %v", ErrLedgerUpdateFailed, userID, err)
	}

	remaining := make(map[string]float64, len(row.Nutrients))
	for _, n := range row.Nutrients {
		remaining[n.Name] = n.Remaining
	}
	return remaining, nil
}

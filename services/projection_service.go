package services

import (
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// ProjectionService computes cumulative recommended intake over calendar
// windows: realized (possibly decremented) ledger values for days already
// lived plus a full fresh baseline for each day still ahead.
type ProjectionService struct {
	db     *gorm.DB
	intake *IntakeService
}

func NewProjectionService(db *gorm.DB, intake *IntakeService) *ProjectionService {
	return &ProjectionService{db: db, intake: intake}
}

// AdjustedWeeklyIntake projects the Monday..Sunday week containing today.
func (s *ProjectionService) AdjustedWeeklyIntake(userID uint) (map[string]float64, error) {
	now := time.Now()
	start := weekStart(now)
	end := start.AddDate(0, 0, 6)
	return s.project(userID, start, end, now)
}

// AdjustedMonthlyIntake projects the first..last calendar day of the
// current month.
func (s *ProjectionService) AdjustedMonthlyIntake(userID uint) (map[string]float64, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, -1)
	return s.project(userID, start, end, now)
}

func (s *ProjectionService) project(userID uint, windowStart, windowEnd, now time.Time) (map[string]float64, error) {
	today := dayStart(now)

	// Today must contribute a full (possibly decremented) row, otherwise a
	// consumption-free week would project 6 days instead of 7.
	if _, err := s.intake.GetOrCreateDailyIntake(userID, today); err != nil {
		return nil, err
	}

	var rows []models.DailyIntake
	if err := s.db.
		Preload("Nutrients").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, windowStart, today).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	totals := map[string]float64{}
	for _, row := range rows {
		for _, n := range row.Nutrients {
			totals[n.Name] += n.Remaining
		}
	}

	baseline, err := s.intake.FreshBaseline(userID)
	if err != nil {
		return nil, err
	}

	// One undiminished baseline for every day strictly after today.
	for d := today.AddDate(0, 0, 1); !d.After(windowEnd); d = d.AddDate(0, 0, 1) {
		for name, v := range baseline {
			totals[name] += v.Value
		}
	}
	return totals, nil
}

// weekStart returns the Monday of t's week at midnight. Sunday counts as
// day 7 of the preceding week.
func weekStart(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return dayStart(t).AddDate(0, 0, -(weekday - 1))
}

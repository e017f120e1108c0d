package models

import (
    "time"

    "gorm.io/gorm"
)

// DailyIntake is the per-user, per-day ledger of remaining recommended
// intake. At most one row per (user_id, date); created lazily on first
// access for a day, decremented as meals are consumed, never recreated.
type DailyIntake struct {
    gorm.Model
    UserID uint      `gorm:"not null;uniqueIndex:idx_intake_user_day"`
    Date   time.Time `gorm:"not null;uniqueIndex:idx_intake_user_day"` // truncated to YYYY-MM-DD

    Nutrients []IntakeNutrient
}

type IntakeNutrient struct {
    gorm.Model
    DailyIntakeID uint `gorm:"index;not null"`

    Name      string // canonical nutrient name, e.g. "Protein"
    Remaining float64
    Unit      string
}

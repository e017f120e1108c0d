package models

import (
    "time"

    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Email    string `gorm:"uniqueIndex;not null"`
    Password string `gorm:"not null"`
    FullName string

    // Biometrics; zero values mean the field has not been provided yet.
    // All six are required before a personalized intake can be computed.
    WeightKg      float64
    HeightCm      float64
    Birthday      time.Time
    Gender        string `gorm:"size:16"` // "MALE" | "FEMALE"
    ActivityLevel string `gorm:"size:32"`
    Goal          string `gorm:"size:48"`
}

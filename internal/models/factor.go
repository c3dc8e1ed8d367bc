package models

import "time"

// FactorLog captures daily confounding factors that may independently
// influence test performance. One row per user per day.
type FactorLog struct {
	ID              uint      `gorm:"primaryKey"`
	UserID          uint
	LogDate         time.Time `gorm:"type:date"`
	SleepHours      float64
	SleepQuality    int // 1-5 self-report
	StressLevel     int // 1-5 self-report
	ExerciseMinutes int
	CaffeineServes  int
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

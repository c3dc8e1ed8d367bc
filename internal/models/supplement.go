package models

import "time"

// Supplement is a compound the user is tracking (e.g. creatine, omega-3).
type Supplement struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint
	User        User      `gorm:"foreignKey:UserID"`
	Name        string
	DefaultDose float64
	DoseUnit    string
	Notes       string
	CreatedAt   time.Time
}

// SupplementIntake records one dose taken on a given day.
type SupplementIntake struct {
	ID           uint       `gorm:"primaryKey"`
	UserID       uint
	SupplementID uint
	Supplement   Supplement `gorm:"foreignKey:SupplementID"`
	Dose         float64
	DoseUnit     string
	TakenAt      time.Time
	CreatedAt    time.Time
}

// WashoutPeriod is a tracked interval during which a supplement is
// deliberately not taken, used to establish a supplement-free baseline.
type WashoutPeriod struct {
	ID           uint       `gorm:"primaryKey"`
	UserID       uint
	SupplementID uint
	Supplement   Supplement `gorm:"foreignKey:SupplementID"`
	StartDate    time.Time
	EndDate      *time.Time
	Reason       string
	CreatedAt    time.Time
}

// Active reports whether the washout is still running.
func (w *WashoutPeriod) Active() bool {
	return w.EndDate == nil
}

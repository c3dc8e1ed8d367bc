package models

import (
	"encoding/json"
	"time"
)

// TestType identifies which cognitive test produced a result.
type TestType string

const (
	TestTypeNBack    TestType = "nback"
	TestTypeReaction TestType = "reaction"
)

// TestResult holds the scored outcome of a single completed test session.
// Results are created once at test completion and never mutated; RawData
// preserves the full trial-level record for later re-analysis.
type TestResult struct {
	ID           uint            `gorm:"primaryKey"`
	UserID       uint
	User         User            `gorm:"foreignKey:UserID"`
	TestType     TestType
	Score        int             // composite score, 0-100
	Accuracy     int             // percentage, 0-100
	ReactionTime int             // average reaction time in ms
	RawData      json.RawMessage `gorm:"type:jsonb"`
	CreatedAt    time.Time
}

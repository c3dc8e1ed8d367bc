package models

import (
	"encoding/json"
	"time"
)

// StatisticalAnalysis stores one baseline-vs-comparison analysis run for a
// supplement. The Payload is the serialized stats.AnalysisResult. Analyses
// may be deleted by the user but are never updated in place.
type StatisticalAnalysis struct {
	ID              uint            `gorm:"primaryKey"`
	UserID          uint
	SupplementID    uint
	Supplement      Supplement      `gorm:"foreignKey:SupplementID"`
	TestType        TestType
	BaselineStart   time.Time
	BaselineEnd     time.Time
	ComparisonStart time.Time
	ComparisonEnd   time.Time
	Payload         json.RawMessage `gorm:"type:jsonb"`
	CreatedAt       time.Time
}

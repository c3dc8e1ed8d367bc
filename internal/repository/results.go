// internal/repository/results.go
package repository

import (
	"context"
	"time"

	"cognitrack/internal/database"
	"cognitrack/internal/models"
)

// SaveTestResult persists a freshly scored result. Results are immutable
// after creation, so there is no update path.
func SaveTestResult(ctx context.Context, result *models.TestResult) error {
	return database.DB.WithContext(ctx).Create(result).Error
}

// ListTestResults returns a user's results for a test type, newest first.
// A non-positive limit returns everything.
func ListTestResults(ctx context.Context, userID uint, testType models.TestType, limit int) ([]models.TestResult, error) {
	var results []models.TestResult
	q := database.DB.WithContext(ctx).
		Where("user_id = ? AND test_type = ?", userID, testType).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&results).Error
	return results, err
}

// GetResultsInRange returns a user's results for a test type within
// [start, end), oldest first.
func GetResultsInRange(ctx context.Context, userID uint, testType models.TestType, start, end time.Time) ([]models.TestResult, error) {
	var results []models.TestResult
	err := database.DB.WithContext(ctx).
		Where("user_id = ? AND test_type = ? AND created_at >= ? AND created_at < ?", userID, testType, start, end).
		Order("created_at ASC").
		Find(&results).Error
	return results, err
}

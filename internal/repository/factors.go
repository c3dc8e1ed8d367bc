package repository

import (
	"context"
	"time"

	"cognitrack/internal/database"
	"cognitrack/internal/models"
)

// UpsertFactorLog saves the day's confounding factors, replacing any
// earlier entry for the same user and day.
func UpsertFactorLog(ctx context.Context, log *models.FactorLog) error {
	query := `
		INSERT INTO factor_logs (user_id, log_date, sleep_hours, sleep_quality, stress_level, exercise_minutes, caffeine_serves, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id, log_date) DO UPDATE SET
			sleep_hours = EXCLUDED.sleep_hours,
			sleep_quality = EXCLUDED.sleep_quality,
			stress_level = EXCLUDED.stress_level,
			exercise_minutes = EXCLUDED.exercise_minutes,
			caffeine_serves = EXCLUDED.caffeine_serves,
			notes = EXCLUDED.notes,
			updated_at = CURRENT_TIMESTAMP;`
	return database.DB.WithContext(ctx).Exec(query,
		log.UserID, log.LogDate, log.SleepHours, log.SleepQuality,
		log.StressLevel, log.ExerciseMinutes, log.CaffeineServes, log.Notes).Error
}

func ListFactorLogs(ctx context.Context, userID uint, start, end time.Time) ([]models.FactorLog, error) {
	var logs []models.FactorLog
	err := database.DB.WithContext(ctx).
		Where("user_id = ? AND log_date >= ? AND log_date < ?", userID, start, end).
		Order("log_date ASC").
		Find(&logs).Error
	return logs, err
}

package repository

import (
	"context"
	"time"

	"cognitrack/internal/database"
	"cognitrack/internal/models"
)

func CreateSupplement(ctx context.Context, supplement *models.Supplement) error {
	return database.DB.WithContext(ctx).Create(supplement).Error
}

func ListSupplements(ctx context.Context, userID uint) ([]models.Supplement, error) {
	var supplements []models.Supplement
	err := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&supplements).Error
	return supplements, err
}

func GetSupplement(ctx context.Context, userID, supplementID uint) (*models.Supplement, error) {
	var supplement models.Supplement
	err := database.DB.WithContext(ctx).
		First(&supplement, "id = ? AND user_id = ?", supplementID, userID).Error
	return &supplement, err
}

func LogIntake(ctx context.Context, intake *models.SupplementIntake) error {
	return database.DB.WithContext(ctx).Create(intake).Error
}

func ListIntakes(ctx context.Context, userID, supplementID uint) ([]models.SupplementIntake, error) {
	var intakes []models.SupplementIntake
	err := database.DB.WithContext(ctx).
		Where("user_id = ? AND supplement_id = ?", userID, supplementID).
		Order("taken_at DESC").
		Find(&intakes).Error
	return intakes, err
}

// GetIntakeDays returns the set of calendar days (UTC) on which the user
// took the supplement. Used to partition test results into on-days and
// off-days for impact analysis.
func GetIntakeDays(ctx context.Context, userID, supplementID uint) (map[string]bool, error) {
	var days []time.Time
	err := database.DB.WithContext(ctx).
		Model(&models.SupplementIntake{}).
		Where("user_id = ? AND supplement_id = ?", userID, supplementID).
		Pluck("taken_at", &days).Error
	if err != nil {
		return nil, err
	}

	set := make(map[string]bool, len(days))
	for _, d := range days {
		set[d.UTC().Format("2006-01-02")] = true
	}
	return set, nil
}

func StartWashout(ctx context.Context, washout *models.WashoutPeriod) error {
	return database.DB.WithContext(ctx).Create(washout).Error
}

// EndWashout closes an active washout period at the given time.
func EndWashout(ctx context.Context, userID, washoutID uint, endDate time.Time) error {
	return database.DB.WithContext(ctx).
		Model(&models.WashoutPeriod{}).
		Where("id = ? AND user_id = ? AND end_date IS NULL", washoutID, userID).
		Update("end_date", endDate).Error
}

func ListWashouts(ctx context.Context, userID uint) ([]models.WashoutPeriod, error) {
	var washouts []models.WashoutPeriod
	err := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&washouts).Error
	return washouts, err
}

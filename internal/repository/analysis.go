package repository

import (
	"context"

	"cognitrack/internal/database"
	"cognitrack/internal/models"
)

// CreateAnalysis persists one analysis run. Analyses are create/delete
// only; reruns produce new rows.
func CreateAnalysis(ctx context.Context, analysis *models.StatisticalAnalysis) error {
	return database.DB.WithContext(ctx).Create(analysis).Error
}

func ListAnalyses(ctx context.Context, userID uint) ([]models.StatisticalAnalysis, error) {
	var analyses []models.StatisticalAnalysis
	err := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&analyses).Error
	return analyses, err
}

// DeleteAnalysis removes an analysis, scoped to the owning user.
func DeleteAnalysis(ctx context.Context, userID, analysisID uint) error {
	return database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.StatisticalAnalysis{}, analysisID).Error
}

// internal/repository/charts.go
package repository

import (
	"context"
	"fmt"
	"time"

	"cognitrack/internal/database"
)

type TimelineDataPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

type CorrelationDataPoint struct {
	MetricValue float64 `json:"metricValue"`
	FactorValue float64 `json:"factorValue"`
}

// getMetricsCTE flattens test results and daily factor logs into a single
// (day, metric_key, metric_value) relation the chart queries select from.
func getMetricsCTE() string {
	return `
	WITH all_metrics AS (
		-- Test result metrics, one row per metric per result
		SELECT user_id, created_at, test_type::text AS source, 'score' AS metric_key, score::float AS metric_value FROM test_results UNION ALL
		SELECT user_id, created_at, test_type::text AS source, 'accuracy' AS metric_key, accuracy::float AS metric_value FROM test_results UNION ALL
		SELECT user_id, created_at, test_type::text AS source, 'reaction_time' AS metric_key, reaction_time::float AS metric_value FROM test_results

		UNION ALL

		-- Daily confounding factors
		SELECT user_id, log_date AS created_at, 'factor' AS source, 'sleep_hours' AS metric_key, sleep_hours AS metric_value FROM factor_logs UNION ALL
		SELECT user_id, log_date AS created_at, 'factor' AS source, 'sleep_quality' AS metric_key, sleep_quality::float AS metric_value FROM factor_logs UNION ALL
		SELECT user_id, log_date AS created_at, 'factor' AS source, 'stress_level' AS metric_key, stress_level::float AS metric_value FROM factor_logs UNION ALL
		SELECT user_id, log_date AS created_at, 'factor' AS source, 'exercise_minutes' AS metric_key, exercise_minutes::float AS metric_value FROM factor_logs UNION ALL
		SELECT user_id, log_date AS created_at, 'factor' AS source, 'caffeine_serves' AS metric_key, caffeine_serves::float AS metric_value FROM factor_logs
	)
	`
}

// GetTimelineData returns one metric's values over time for a user.
func GetTimelineData(ctx context.Context, userID uint, source, metricKey string) ([]TimelineDataPoint, error) {
	var data []TimelineDataPoint

	query := fmt.Sprintf(`
		%s
		SELECT created_at AS date, metric_value AS value
		FROM all_metrics
		WHERE user_id = ? AND source = ? AND metric_key = ?
		ORDER BY created_at;
	`, getMetricsCTE())

	err := database.DB.WithContext(ctx).Raw(query, userID, source, metricKey).Scan(&data).Error
	return data, err
}

// GetCorrelationData pairs a daily factor with same-day test metrics so the
// frontend can render a scatter plot.
func GetCorrelationData(ctx context.Context, userID uint, source, metricKey, factorKey string) ([]CorrelationDataPoint, error) {
	var data []CorrelationDataPoint

	query := fmt.Sprintf(`
		%s
		SELECT
			test_metric.metric_value AS metric_value,
			factor.metric_value AS factor_value
		FROM
			(
				SELECT user_id, date_trunc('day', created_at) AS day, metric_value
				FROM all_metrics
				WHERE source = ? AND metric_key = ?
			) AS test_metric
		JOIN
			(
				SELECT user_id, date_trunc('day', created_at) AS day, metric_value
				FROM all_metrics
				WHERE source = 'factor' AND metric_key = ?
			) AS factor
			ON test_metric.user_id = factor.user_id AND test_metric.day = factor.day
		WHERE test_metric.user_id = ?;
	`, getMetricsCTE())

	err := database.DB.WithContext(ctx).Raw(query, source, metricKey, factorKey, userID).Scan(&data).Error
	return data, err
}

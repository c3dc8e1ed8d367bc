// internal/handlers/charts.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"cognitrack/internal/repository"
)

type ChartsHandler struct {
	log *zap.Logger
}

func NewChartsHandler(log *zap.Logger) *ChartsHandler {
	return &ChartsHandler{log: log}
}

var validMetricKeys = map[string]bool{
	"score":         true,
	"accuracy":      true,
	"reaction_time": true,
}

var validFactorKeys = map[string]bool{
	"sleep_hours":      true,
	"sleep_quality":    true,
	"stress_level":     true,
	"exercise_minutes": true,
	"caffeine_serves":  true,
}

// Timeline returns echarts line-chart options for one metric over time.
func (h *ChartsHandler) Timeline(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	source := c.DefaultQuery("test", "nback")
	metricKey := c.DefaultQuery("metric", "score")
	if !validMetricKeys[metricKey] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid metric"})
		return
	}

	data, err := repository.GetTimelineData(c.Request.Context(), userID, source, metricKey)
	if err != nil {
		h.log.Error("Failed to get timeline data", zap.Error(err), zap.String("metricKey", metricKey))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load timeline data"})
		return
	}

	metricLabel := strings.Title(strings.ReplaceAll(metricKey, "_", " "))
	c.JSON(http.StatusOK, generateTimelineChart(data, metricLabel).JSON())
}

// Correlation returns echarts scatter-chart options pairing a daily factor
// with same-day test metrics.
func (h *ChartsHandler) Correlation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	source := c.DefaultQuery("test", "nback")
	metricKey := c.DefaultQuery("metric", "score")
	factorKey := c.DefaultQuery("factor", "sleep_hours")
	if !validMetricKeys[metricKey] || !validFactorKeys[factorKey] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid metric or factor"})
		return
	}

	data, err := repository.GetCorrelationData(c.Request.Context(), userID, source, metricKey, factorKey)
	if err != nil {
		h.log.Error("Failed to get correlation data", zap.Error(err),
			zap.String("metricKey", metricKey), zap.String("factorKey", factorKey))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load correlation data"})
		return
	}

	c.JSON(http.StatusOK, generateCorrelationChart(data, metricKey, factorKey).JSON())
}

func generateTimelineChart(data []repository.TimelineDataPoint, metricLabel string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Metric Over Time",
			Subtitle: metricLabel,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "time",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:  "value",
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)

	items := make([]opts.LineData, 0, len(data))
	for _, point := range data {
		items = append(items, opts.LineData{Value: []interface{}{point.Date, point.Value}})
	}

	line.AddSeries(metricLabel, items).SetSeriesOptions(charts.WithLineStyleOpts(opts.LineStyle{Width: 2}))
	return line
}

func generateCorrelationChart(data []repository.CorrelationDataPoint, metricKey, factorKey string) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Factor vs. Performance Correlation",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: strings.ReplaceAll(factorKey, "_", " "),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: strings.ReplaceAll(metricKey, "_", " "),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	items := make([]opts.ScatterData, 0, len(data))
	for _, point := range data {
		items = append(items, opts.ScatterData{Value: []interface{}{point.FactorValue, point.MetricValue}})
	}

	scatter.AddSeries("Correlation", items)
	return scatter
}

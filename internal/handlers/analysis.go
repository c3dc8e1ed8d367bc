package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cognitrack/internal/interpret"
	"cognitrack/internal/models"
	"cognitrack/internal/repository"
	"cognitrack/internal/stats"
)

type AnalysisHandler struct {
	log *zap.Logger
}

func NewAnalysisHandler(log *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{log: log}
}

type analysisRequest struct {
	SupplementID    uint            `json:"supplementId" binding:"required"`
	TestType        models.TestType `json:"testType" binding:"required"`
	BaselineStart   time.Time       `json:"baselineStart" binding:"required"`
	BaselineEnd     time.Time       `json:"baselineEnd" binding:"required"`
	ComparisonStart time.Time       `json:"comparisonStart" binding:"required"`
	ComparisonEnd   time.Time       `json:"comparisonEnd" binding:"required"`
	Alpha           float64         `json:"alpha"`
}

// Run compares a baseline window against a comparison window for one
// supplement and persists the analysis alongside its interpretation.
func (h *AnalysisHandler) Run(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req analysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	if _, err := repository.GetSupplement(c.Request.Context(), userID, req.SupplementID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplement not found"})
		return
	}

	baseline, err := repository.GetResultsInRange(c.Request.Context(), userID, req.TestType, req.BaselineStart, req.BaselineEnd)
	if err != nil {
		h.log.Error("Failed to load baseline results", zap.Error(err), zap.Uint("userID", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load baseline results"})
		return
	}
	comparison, err := repository.GetResultsInRange(c.Request.Context(), userID, req.TestType, req.ComparisonStart, req.ComparisonEnd)
	if err != nil {
		h.log.Error("Failed to load comparison results", zap.Error(err), zap.Uint("userID", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load comparison results"})
		return
	}

	result := stats.Analyze(baseline, comparison, req.Alpha)

	payload, err := json.Marshal(result)
	if err != nil {
		h.log.Error("Failed to serialize analysis", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run analysis"})
		return
	}

	analysis := &models.StatisticalAnalysis{
		UserID:          userID,
		SupplementID:    req.SupplementID,
		TestType:        req.TestType,
		BaselineStart:   req.BaselineStart,
		BaselineEnd:     req.BaselineEnd,
		ComparisonStart: req.ComparisonStart,
		ComparisonEnd:   req.ComparisonEnd,
		Payload:         payload,
	}
	if err := repository.CreateAnalysis(c.Request.Context(), analysis); err != nil {
		h.log.Error("Failed to save analysis", zap.Error(err), zap.Uint("userID", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save analysis"})
		return
	}

	sa := result.SignificanceAnalysis
	c.JSON(http.StatusCreated, gin.H{
		"id":       analysis.ID,
		"analysis": result,
		"interpretation": gin.H{
			"score":        interpret.Interpretation(sa.Score),
			"reactionTime": interpret.Interpretation(sa.ReactionTime),
			"accuracy":     interpret.Interpretation(sa.Accuracy),
		},
		"colors": gin.H{
			"score":        interpret.Color(sa.Score, true),
			"reactionTime": interpret.Color(sa.ReactionTime, false),
			"accuracy":     interpret.Color(sa.Accuracy, true),
		},
		"recommendation": interpret.Recommendation(sa),
	})
}

func (h *AnalysisHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	analyses, err := repository.ListAnalyses(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Failed to list analyses", zap.Error(err), zap.Uint("userID", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load analyses"})
		return
	}

	c.JSON(http.StatusOK, analyses)
}

func (h *AnalysisHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	analysisID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid analysis id"})
		return
	}

	if err := repository.DeleteAnalysis(c.Request.Context(), userID, uint(analysisID)); err != nil {
		h.log.Error("Failed to delete analysis", zap.Error(err), zap.Uint("userID", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete analysis"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Impact partitions test results into days the supplement was taken and
// days it was not, computes the percentage impact per metric, and returns
// classified tiers alongside the raw numbers.
func (h *AnalysisHandler) Impact(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	supplementID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid supplement id"})
		return
	}

	testType := models.TestType(c.DefaultQuery("type", string(models.TestTypeNBack)))

	intakeDays, err := repository.GetIntakeDays(c.Request.Context(), userID, uint(supplementID))
	if err != nil {
		h.log.Error("Failed to load intake days", zap.Error(err), zap.Uint("userID", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load intakes"})
		return
	}

	results, err := repository.ListTestResults(c.Request.Context(), userID, testType, 0)
	if err != nil {
		h.log.Error("Failed to load results for impact", zap.Error(err), zap.Uint("userID", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load results"})
		return
	}

	var onScores, offScores, onRTs, offRTs, onAccs, offAccs []float64
	for _, r := range results {
		day := r.CreatedAt.UTC().Format("2006-01-02")
		if intakeDays[day] {
			onScores = append(onScores, float64(r.Score))
			onRTs = append(onRTs, float64(r.ReactionTime))
			onAccs = append(onAccs, float64(r.Accuracy))
		} else {
			offScores = append(offScores, float64(r.Score))
			offRTs = append(offRTs, float64(r.ReactionTime))
			offAccs = append(offAccs, float64(r.Accuracy))
		}
	}

	metric := func(name string, on, off []float64, inverted bool) gin.H {
		impact, confidence := stats.Impact(on, off)
		return gin.H{
			"impact":          impact,
			"confidence":      confidence,
			"significance":    interpret.ImpactSignificanceOf(impact, inverted, interpret.DefaultImpactThreshold),
			"confidenceLevel": interpret.ConfidenceLevelOf(&confidence),
			"description":     interpret.ImpactDescription(impact, name, inverted),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"score":        metric("score", onScores, offScores, false),
		"reactionTime": metric("reaction time", onRTs, offRTs, true),
		"accuracy":     metric("accuracy", onAccs, offAccs, false),
		"onDayCount":   len(onScores),
		"offDayCount":  len(offScores),
	})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cognitrack/internal/models"
	"cognitrack/internal/repository"
	"cognitrack/internal/scoring"
)

type TestsHandler struct {
	log     *zap.Logger
	Catalog *models.TestCatalog
}

func NewTestsHandler(log *zap.Logger, catalog *models.TestCatalog) *TestsHandler {
	return &TestsHandler{log: log, Catalog: catalog}
}

// ShowCatalog returns the configured test definitions.
func (h *TestsHandler) ShowCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog)
}

type nbackSubmission struct {
	NBackLevel           int                          `json:"nBackLevel" binding:"required"`
	Sequence             []int                        `json:"sequence" binding:"required"`
	Responses            []scoring.NBackResponse      `json:"responses" binding:"required"`
	EnvironmentalFactors scoring.EnvironmentalFactors `json:"environmentalFactors"`
}

// SubmitNBack scores a completed n-back session and persists the result.
func (h *TestsHandler) SubmitNBack(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var submission nbackSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		h.log.Error("Failed to bind n-back submission", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	result := scoring.CalculateTestResults(
		submission.NBackLevel,
		submission.Sequence,
		submission.Responses,
		submission.EnvironmentalFactors,
	)
	result.UserID = userID

	if err := repository.SaveTestResult(c.Request.Context(), result); err != nil {
		h.log.Error("Failed to save n-back result", zap.Error(err), zap.Uint("userID", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save result"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":           result.ID,
		"score":        result.Score,
		"accuracy":     result.Accuracy,
		"reactionTime": result.ReactionTime,
	})
}

type reactionSubmission struct {
	Trials               []scoring.ReactionTrial      `json:"trials" binding:"required"`
	EnvironmentalFactors scoring.EnvironmentalFactors `json:"environmentalFactors"`
}

// SubmitReaction scores a completed reaction-time session and persists the
// result.
func (h *TestsHandler) SubmitReaction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var submission reactionSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		h.log.Error("Failed to bind reaction submission", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	result := scoring.CalculateReactionTestResults(submission.Trials, submission.EnvironmentalFactors)
	result.UserID = userID

	if err := repository.SaveTestResult(c.Request.Context(), result); err != nil {
		h.log.Error("Failed to save reaction result", zap.Error(err), zap.Uint("userID", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save result"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":           result.ID,
		"score":        result.Score,
		"accuracy":     result.Accuracy,
		"reactionTime": result.ReactionTime,
	})
}

// ListResults returns the user's recent results for a test type.
func (h *TestsHandler) ListResults(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	testType := models.TestType(c.DefaultQuery("type", string(models.TestTypeNBack)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	results, err := repository.ListTestResults(c.Request.Context(), userID, testType, limit)
	if err != nil {
		h.log.Error("Failed to list test results", zap.Error(err), zap.Uint("userID", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load results"})
		return
	}

	c.JSON(http.StatusOK, results)
}

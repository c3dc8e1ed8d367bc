package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cognitrack/internal/models"
	"cognitrack/internal/repository"
)

type FactorsHandler struct {
	log *zap.Logger
}

func NewFactorsHandler(log *zap.Logger) *FactorsHandler {
	return &FactorsHandler{log: log}
}

type factorLogRequest struct {
	LogDate         string  `json:"logDate"` // "2006-01-02"; defaults to today
	SleepHours      float64 `json:"sleepHours"`
	SleepQuality    int     `json:"sleepQuality"`
	StressLevel     int     `json:"stressLevel"`
	ExerciseMinutes int     `json:"exerciseMinutes"`
	CaffeineServes  int     `json:"caffeineServes"`
	Notes           string  `json:"notes"`
}

// Save upserts the day's confounding factors.
func (h *FactorsHandler) Save(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req factorLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	logDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.LogDate != "" {
		parsed, err := time.Parse("2006-01-02", req.LogDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid logDate, expected YYYY-MM-DD"})
			return
		}
		logDate = parsed
	}

	factorLog := &models.FactorLog{
		UserID:          userID,
		LogDate:         logDate,
		SleepHours:      req.SleepHours,
		SleepQuality:    req.SleepQuality,
		StressLevel:     req.StressLevel,
		ExerciseMinutes: req.ExerciseMinutes,
		CaffeineServes:  req.CaffeineServes,
		Notes:           req.Notes,
	}
	if err := repository.UpsertFactorLog(c.Request.Context(), factorLog); err != nil {
		h.log.Error("Failed to save factor log", zap.Error(err), zap.Uint("userID", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save factors"})
		return
	}

	c.Status(http.StatusNoContent)
}

// List returns factor logs in a date range (default: last 30 days).
func (h *FactorsHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	end := time.Now().UTC().Add(24 * time.Hour).Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -30)
	if s := c.Query("start"); s != "" {
		if parsed, err := time.Parse("2006-01-02", s); err == nil {
			start = parsed
		}
	}
	if e := c.Query("end"); e != "" {
		if parsed, err := time.Parse("2006-01-02", e); err == nil {
			end = parsed
		}
	}

	logs, err := repository.ListFactorLogs(c.Request.Context(), userID, start, end)
	if err != nil {
		h.log.Error("Failed to list factor logs", zap.Error(err), zap.Uint("userID", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load factors"})
		return
	}

	c.JSON(http.StatusOK, logs)
}

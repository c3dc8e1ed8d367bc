package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cognitrack/internal/models"
	"cognitrack/internal/repository"
)

type SupplementsHandler struct {
	log *zap.Logger
}

func NewSupplementsHandler(log *zap.Logger) *SupplementsHandler {
	return &SupplementsHandler{log: log}
}

type supplementRequest struct {
	Name        string  `json:"name" binding:"required"`
	DefaultDose float64 `json:"defaultDose"`
	DoseUnit    string  `json:"doseUnit"`
	Notes       string  `json:"notes"`
}

func (h *SupplementsHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req supplementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	supplement := &models.Supplement{
		UserID:      userID,
		Name:        req.Name,
		DefaultDose: req.DefaultDose,
		DoseUnit:    req.DoseUnit,
		Notes:       req.Notes,
	}
	if err := repository.CreateSupplement(c.Request.Context(), supplement); err != nil {
		h.log.Error("Failed to create supplement", zap.Error(err), zap.Uint("userID", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create supplement"})
		return
	}

	c.JSON(http.StatusCreated, supplement)
}

func (h *SupplementsHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	supplements, err := repository.ListSupplements(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Failed to list supplements", zap.Error(err), zap.Uint("userID", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load supplements"})
		return
	}

	c.JSON(http.StatusOK, supplements)
}

type intakeRequest struct {
	Dose     float64   `json:"dose"`
	DoseUnit string    `json:"doseUnit"`
	TakenAt  time.Time `json:"takenAt"`
}

func (h *SupplementsHandler) LogIntake(c *gin.Context) {
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

	var req intakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if req.TakenAt.IsZero() {
		req.TakenAt = time.Now().UTC()
	}

	// Ownership check before writing the intake row.
	if _, err := repository.GetSupplement(c.Request.Context(), userID, uint(supplementID)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplement not found"})
		return
	}

	intake := &models.SupplementIntake{
		UserID:       userID,
		SupplementID: uint(supplementID),
		Dose:         req.Dose,
		DoseUnit:     req.DoseUnit,
		TakenAt:      req.TakenAt,
	}
	if err := repository.LogIntake(c.Request.Context(), intake); err != nil {
		h.log.Error("Failed to log intake", zap.Error(err), zap.Uint("userID", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log intake"})
		return
	}

	c.JSON(http.StatusCreated, intake)
}

func (h *SupplementsHandler) ListIntakes(c *gin.Context) {
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

	intakes, err := repository.ListIntakes(c.Request.Context(), userID, uint(supplementID))
	if err != nil {
		h.log.Error("Failed to list intakes", zap.Error(err), zap.Uint("userID", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load intakes"})
		return
	}

	c.JSON(http.StatusOK, intakes)
}

type washoutRequest struct {
	SupplementID uint      `json:"supplementId" binding:"required"`
	StartDate    time.Time `json:"startDate"`
	Reason       string    `json:"reason"`
}

func (h *SupplementsHandler) StartWashout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req washoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}
	if req.StartDate.IsZero() {
		req.StartDate = time.Now().UTC()
	}

	washout := &models.WashoutPeriod{
		UserID:       userID,
		SupplementID: req.SupplementID,
		StartDate:    req.StartDate,
		Reason:       req.Reason,
	}
	if err := repository.StartWashout(c.Request.Context(), washout); err != nil {
		h.log.Error("Failed to start washout", zap.Error(err), zap.Uint("userID", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start washout"})
		return
	}

	c.JSON(http.StatusCreated, washout)
}

func (h *SupplementsHandler) EndWashout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	washoutID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid washout id"})
		return
	}

	if err := repository.EndWashout(c.Request.Context(), userID, uint(washoutID), time.Now().UTC()); err != nil {
		h.log.Error("Failed to end washout", zap.Error(err), zap.Uint("userID", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to end washout"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SupplementsHandler) ListWashouts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	washouts, err := repository.ListWashouts(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("Failed to list washouts", zap.Error(err), zap.Uint("userID", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load washouts"})
		return
	}

	c.JSON(http.StatusOK, washouts)
}

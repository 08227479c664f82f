package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sentinelx-dev/sentinelx/internal/models"
	"github.com/sentinelx-dev/sentinelx/internal/utils"
	"gorm.io/gorm"
)

const latestBreachLimit = 10

type BreachHandler struct {
	DB *gorm.DB
}

func NewBreachHandler(conn *gorm.DB) *BreachHandler {
	return &BreachHandler{DB: conn}
}

func (h *BreachHandler) ListBreaches(ctx *gin.Context) {
	var breaches []models.Breach

	if err := h.DB.Order("created_at DESC").Find(&breaches).Error; err != nil {
		log.Printf("Failed to list breaches: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve breaches"})
		return
	}

	ctx.JSON(http.StatusOK, breaches)
}

func (h *BreachHandler) ListBreachesForEmail(ctx *gin.Context) {
	emailID, err := utils.GetEmailID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var email models.Email

	if err := h.DB.First(&email, emailID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Email not found"})
		} else {
			log.Printf("Failed to fetch email %d: %v", emailID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	var breaches []models.Breach

	if err := h.DB.Where("email_id = ?", email.ID).Order("created_at DESC").Find(&breaches).Error; err != nil {
		log.Printf("Failed to list breaches for email %d: %v", emailID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve breaches"})
		return
	}

	ctx.JSON(http.StatusOK, breaches)
}

func (h *BreachHandler) LatestBreaches(ctx *gin.Context) {
	var breaches []models.Breach

	if err := h.DB.Order("created_at DESC").Limit(latestBreachLimit).Find(&breaches).Error; err != nil {
		log.Printf("Failed to list latest breaches: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve breaches"})
		return
	}

	ctx.JSON(http.StatusOK, breaches)
}

// Remediation returns the static guidance shown alongside breach results.
func (h *BreachHandler) Remediation(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, []gin.H{
		{"action": "Reset password immediately", "description": "Change the password on the affected account and anywhere it was reused."},
		{"action": "Enable 2FA", "description": "Turn on two-factor authentication for the affected account."},
		{"action": "Check linked financial accounts", "description": "Review bank and card statements tied to this address for unknown activity."},
	})
}

package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sentinelx-dev/sentinelx/internal/models"
	"github.com/sentinelx-dev/sentinelx/internal/services"
	"github.com/sentinelx-dev/sentinelx/internal/utils"
	"gorm.io/gorm"
)

type AddEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type EmailHandler struct {
	DB      *gorm.DB
	Checker *services.BreachChecker
}

func NewEmailHandler(conn *gorm.DB, checker *services.BreachChecker) *EmailHandler {
	return &EmailHandler{
		DB:      conn,
		Checker: checker,
	}
}

func (h *EmailHandler) ListEmails(ctx *gin.Context) {
	var emails []models.Email

	if err := h.DB.Order("created_at DESC").Find(&emails).Error; err != nil {
		log.Printf("Failed to list emails: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve emails"})
		return
	}

	ctx.JSON(http.StatusOK, emails)
}

func (h *EmailHandler) AddEmail(ctx *gin.Context) {
	var req AddEmailRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "A valid email address is required"})
		return
	}

	address := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.Email

	err := h.DB.Where("address = ?", address).First(&existing).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email is already monitored"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing email: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	email := models.Email{
		Address:   address,
		RiskScore: 0,
		Status:    models.StatusSafe,
	}

	if err := h.DB.Create(&email).Error; err != nil {
		log.Printf("Failed to create email: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register email"})
		return
	}

	ctx.JSON(http.StatusCreated, email)
}

// DeleteEmail removes a monitored email together with its breach history.
// Alerts are kept: they only reference the email id loosely.
func (h *EmailHandler) DeleteEmail(ctx *gin.Context) {
	emailID, err := utils.GetEmailID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var email models.Email

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&email, emailID).Error; err != nil {
			return err
		}

		if err := tx.Where("email_id = ?", email.ID).Delete(&models.Breach{}).Error; err != nil {
			return err
		}

		return tx.Delete(&email).Error
	})

	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Email not found"})
		} else {
			log.Printf("Failed to delete email %d: %v", emailID, txErr)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete email"})
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *EmailHandler) CheckEmail(ctx *gin.Context) {
	emailID, err := utils.GetEmailID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Checker.RunCheck(uint(emailID))

	h.respondCheck(ctx, result, err)
}

func (h *EmailHandler) InjectBreach(ctx *gin.Context) {
	emailID, err := utils.GetEmailID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Checker.InjectDemoBreach(uint(emailID))

	h.respondCheck(ctx, result, err)
}

func (h *EmailHandler) respondCheck(ctx *gin.Context, result services.CheckResult, err error) {
	if err == nil {
		ctx.JSON(http.StatusOK, result)
		return
	}

	switch {
	case errors.Is(err, services.ErrEmailNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Email not found"})
	case errors.Is(err, services.ErrNotificationFailed), errors.Is(err, services.ErrSMTPNotConfigured):
		// The breach, risk update and alert row are already committed;
		// only the outbound mail failed.
		ctx.JSON(http.StatusBadGateway, gin.H{
			"error":  "Alert notification could not be delivered",
			"result": result,
		})
	default:
		log.Printf("Check failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Check failed"})
	}
}

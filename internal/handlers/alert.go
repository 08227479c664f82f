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

type AlertHandler struct {
	DB *gorm.DB
}

func NewAlertHandler(conn *gorm.DB) *AlertHandler {
	return &AlertHandler{DB: conn}
}

func (h *AlertHandler) ListAlerts(ctx *gin.Context) {
	var alerts []models.Alert

	if err := h.DB.Order("created_at DESC").Find(&alerts).Error; err != nil {
		log.Printf("Failed to list alerts: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve alerts"})
		return
	}

	ctx.JSON(http.StatusOK, alerts)
}

func (h *AlertHandler) UnreadCount(ctx *gin.Context) {
	var count int64

	if err := h.DB.Model(&models.Alert{}).Where("is_read = ?", false).Count(&count).Error; err != nil {
		log.Printf("Failed to count unread alerts: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count alerts"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"unread": count})
}

func (h *AlertHandler) MarkRead(ctx *gin.Context) {
	alertID, err := utils.GetAlertID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var alert models.Alert

	if err := h.DB.First(&alert, alertID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		} else {
			log.Printf("Failed to fetch alert %d: %v", alertID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if err := h.DB.Model(&alert).Update("is_read", true).Error; err != nil {
		log.Printf("Failed to mark alert %d read: %v", alertID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update alert"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Alert marked as read"})
}

func (h *AlertHandler) MarkAllRead(ctx *gin.Context) {
	if err := h.DB.Model(&models.Alert{}).Where("is_read = ?", false).Update("is_read", true).Error; err != nil {
		log.Printf("Failed to mark all alerts read: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update alerts"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "All alerts marked as read"})
}

func (h *AlertHandler) DeleteAlert(ctx *gin.Context) {
	alertID, err := utils.GetAlertID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var alert models.Alert

	if err := h.DB.First(&alert, alertID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		} else {
			log.Printf("Failed to fetch alert %d: %v", alertID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if err := h.DB.Delete(&alert).Error; err != nil {
		log.Printf("Failed to delete alert %d: %v", alertID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete alert"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

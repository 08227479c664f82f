package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sentinelx-dev/sentinelx/internal/models"
	"gorm.io/gorm"
)

type StatsResponse struct {
	TotalEmails      int64   `json:"total_emails"`
	TotalBreaches    int64   `json:"total_breaches"`
	UnreadAlerts     int64   `json:"unread_alerts"`
	Safe             int64   `json:"safe"`
	AtRisk           int64   `json:"at_risk"`
	Compromised      int64   `json:"compromised"`
	AverageRiskScore float64 `json:"average_risk_score"`
}

type StatsHandler struct {
	DB *gorm.DB
}

func NewStatsHandler(conn *gorm.DB) *StatsHandler {
	return &StatsHandler{DB: conn}
}

func (h *StatsHandler) GetStats(ctx *gin.Context) {
	var stats StatsResponse

	counts := []struct {
		query *gorm.DB
		dest  *int64
	}{
		{h.DB.Model(&models.Email{}), &stats.TotalEmails},
		{h.DB.Model(&models.Breach{}), &stats.TotalBreaches},
		{h.DB.Model(&models.Alert{}).Where("is_read = ?", false), &stats.UnreadAlerts},
		{h.DB.Model(&models.Email{}).Where("status = ?", models.StatusSafe), &stats.Safe},
		{h.DB.Model(&models.Email{}).Where("status = ?", models.StatusAtRisk), &stats.AtRisk},
		{h.DB.Model(&models.Email{}).Where("status = ?", models.StatusCompromised), &stats.Compromised},
	}

	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			log.Printf("Failed to compute dashboard stats: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
	}

	var avg sql.NullFloat64

	h.DB.Model(&models.Email{}).Select("AVG(risk_score)").Scan(&avg)

	if avg.Valid {
		stats.AverageRiskScore = avg.Float64
	}

	ctx.JSON(http.StatusOK, stats)
}

package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sentinelx-dev/sentinelx/internal/handlers"
	"github.com/sentinelx-dev/sentinelx/internal/services"
	"github.com/sentinelx-dev/sentinelx/internal/types"
	"gorm.io/gorm"
)

func NewRouter(conn *gorm.DB, checker *services.BreachChecker) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	emailHandler := handlers.NewEmailHandler(conn, checker)
	breachHandler := handlers.NewBreachHandler(conn)
	alertHandler := handlers.NewAlertHandler(conn)
	statsHandler := handlers.NewStatsHandler(conn)
	settingsHandler := handlers.NewSettingsHandler(conn)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/stats", statsHandler.GetStats)

		api.GET("/emails", emailHandler.ListEmails)
		api.POST("/add-email", emailHandler.AddEmail)
		api.DELETE("/emails/:email_id", emailHandler.DeleteEmail)
		api.POST("/emails/:email_id/check", emailHandler.CheckEmail)
		api.POST("/emails/:email_id/inject-breach", emailHandler.InjectBreach)

		api.GET("/breaches", breachHandler.ListBreaches)
		api.GET("/breaches/:email_id", breachHandler.ListBreachesForEmail)
		api.GET("/latest", breachHandler.LatestBreaches)
		api.GET("/remediation", breachHandler.Remediation)

		alerts := api.Group("/alerts")
		{
			alerts.GET("", alertHandler.ListAlerts)
			alerts.GET("/unread-count", alertHandler.UnreadCount)
			alerts.PUT("/:alert_id/read", alertHandler.MarkRead)
			alerts.PUT("/read-all", alertHandler.MarkAllRead)
			alerts.DELETE("/:alert_id", alertHandler.DeleteAlert)
		}

		api.GET("/monitoring/status", settingsHandler.MonitoringStatus)
		api.POST("/monitoring/toggle", settingsHandler.ToggleMonitoring)
		api.GET("/settings", settingsHandler.GetSettings)
		api.POST("/settings", settingsHandler.SaveSettings)
	}

	return r
}

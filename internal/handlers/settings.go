package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sentinelx-dev/sentinelx/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	settingsKey   = "app_settings"
	monitoringKey = "auto_monitoring"
)

type ToggleMonitoringRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type SettingsHandler struct {
	DB *gorm.DB
}

func NewSettingsHandler(conn *gorm.DB) *SettingsHandler {
	return &SettingsHandler{DB: conn}
}

func (h *SettingsHandler) GetSettings(ctx *gin.Context) {
	payload, err := h.loadJSON(settingsKey)

	if err != nil {
		log.Printf("Failed to load settings: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	ctx.JSON(http.StatusOK, payload)
}

func (h *SettingsHandler) SaveSettings(ctx *gin.Context) {
	var payload map[string]interface{}

	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Settings must be a JSON object"})
		return
	}

	if err := h.storeJSON(settingsKey, payload); err != nil {
		log.Printf("Failed to save settings: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Settings saved"})
}

// MonitoringStatus reports the auto-monitoring flag. The flag is inert:
// checks only run on demand, but the toggle state is persisted for the UI.
func (h *SettingsHandler) MonitoringStatus(ctx *gin.Context) {
	payload, err := h.loadJSON(monitoringKey)

	if err != nil {
		log.Printf("Failed to load monitoring status: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load monitoring status"})
		return
	}

	enabled := true

	if value, ok := payload["enabled"].(bool); ok {
		enabled = value
	}

	ctx.JSON(http.StatusOK, gin.H{"enabled": enabled})
}

func (h *SettingsHandler) ToggleMonitoring(ctx *gin.Context) {
	var req ToggleMonitoringRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "enabled flag is required"})
		return
	}

	if err := h.storeJSON(monitoringKey, gin.H{"enabled": *req.Enabled}); err != nil {
		log.Printf("Failed to toggle monitoring: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle monitoring"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"enabled": *req.Enabled})
}

func (h *SettingsHandler) loadJSON(key string) (map[string]interface{}, error) {
	var setting models.Setting

	err := h.DB.Where("key = ?", key).First(&setting).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return map[string]interface{}{}, nil
	}

	if err != nil {
		return nil, err
	}

	var payload map[string]interface{}

	if err := json.Unmarshal(setting.Value, &payload); err != nil {
		return nil, err
	}

	return payload, nil
}

func (h *SettingsHandler) storeJSON(key string, payload interface{}) error {
	raw, err := json.Marshal(payload)

	if err != nil {
		return err
	}

	setting := models.Setting{Key: key}

	return h.DB.Where(models.Setting{Key: key}).
		Assign(map[string]interface{}{"value": datatypes.JSON(raw)}).
		FirstOrCreate(&setting).Error
}

package models

import (
	"time"
)

// Email risk statuses, derived from the risk score thresholds.
const (
	StatusSafe        = "SAFE"
	StatusAtRisk      = "AT_RISK"
	StatusCompromised = "COMPROMISED"
)

type Email struct {
	BaseModel

	Address       string     `gorm:"uniqueIndex;not null" json:"address"`
	RiskScore     float64    `gorm:"not null;default:0" json:"risk_score"`
	Status        string     `gorm:"not null;default:'SAFE'" json:"status"`
	LastCheckedAt *time.Time `json:"last_checked_at"`

	// Relationships
	Breaches []Breach `gorm:"foreignKey:EmailID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

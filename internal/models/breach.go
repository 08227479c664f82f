package models

// Breach severities as written by the check pipeline. Legacy rows may carry
// an empty severity, which scores zero.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
)

// Breach is immutable once created; rows only disappear when their email is
// deleted.
type Breach struct {
	BaseModel

	EmailID    uint   `gorm:"not null;index" json:"email_id"`
	Name       string `gorm:"not null" json:"name"`
	BreachDate string `json:"breach_date"`
	Severity   string `json:"severity"`
	DataTypes  string `json:"data_types"`

	// Relationships
	Email Email `gorm:"foreignKey:EmailID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

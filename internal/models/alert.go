package models

// Alert references its email by id only, without a foreign key constraint,
// so alerts survive email deletion.
type Alert struct {
	BaseModel

	EmailID  uint   `gorm:"index" json:"email_id"`
	Severity string `gorm:"not null" json:"severity"`
	Message  string `json:"message"`
	IsRead   bool   `gorm:"not null;default:false" json:"is_read"`
}

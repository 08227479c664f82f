package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/sentinelx-dev/sentinelx/internal/models"
	"gorm.io/gorm"
)

const alertSubject = "🚨 SentinelX Security Alert"

type AlertService struct {
	db     *gorm.DB
	mailer Mailer
}

func NewAlertService(conn *gorm.DB, mailer Mailer) *AlertService {
	return &AlertService{
		db:     conn,
		mailer: mailer,
	}
}

// SendAlert persists an alert for the email and then dispatches it by mail.
// The alert row is committed before any dispatch attempt, so a transport or
// configuration failure never loses the audit record. Dispatch errors are
// logged and returned to the caller.
func (s *AlertService) SendAlert(email *models.Email, severity, message string) error {
	alert := models.Alert{
		EmailID:  email.ID,
		Severity: severity,
		Message:  message,
		IsRead:   false,
	}

	if err := s.db.Create(&alert).Error; err != nil {
		log.Printf("Failed to persist alert for email %d: %v", email.ID, err)
		return err
	}

	if err := s.mailer.Validate(); err != nil {
		log.Printf("Alert %d saved but not dispatched: %v", alert.ID, err)
		return err
	}

	body := composeAlertBody(email, severity, message)

	if err := s.mailer.Send(email.Address, alertSubject, body); err != nil {
		log.Printf("Failed to dispatch alert %d to %s: %v", alert.ID, email.Address, err)
		return fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}

	log.Printf("Alert %d dispatched to %s", alert.ID, email.Address)

	return nil
}

func composeAlertBody(email *models.Email, severity, message string) string {
	return fmt.Sprintf(`SentinelX Security Alert

Email: %s
Severity: %s
Risk Score: %.0f

Details:
%s

Recommended Actions:
- Reset password immediately
- Enable 2FA
- Check linked financial accounts

SentinelX Monitoring System
`, email.Address, strings.ToUpper(severity), email.RiskScore, message)
}

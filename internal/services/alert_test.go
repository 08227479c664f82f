package services_test

import (
	"testing"

	"github.com/sentinelx-dev/sentinelx/internal/models"
	"github.com/sentinelx-dev/sentinelx/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendAlertDispatchesMail(t *testing.T) {
	conn := setupTestDB(t)
	mailer := &stubMailer{}
	svc := services.NewAlertService(conn, mailer)

	email := createEmail(t, conn, "victim@example.com")
	email.RiskScore = 70

	err := svc.SendAlert(&email, models.SeverityCritical, "Breach detected in LinkedIn Leak")
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "victim@example.com", mailer.sent[0].To)
	assert.Equal(t, "🚨 SentinelX Security Alert", mailer.sent[0].Subject)
	assert.Contains(t, mailer.sent[0].Body, "victim@example.com")
	assert.Contains(t, mailer.sent[0].Body, "CRITICAL")
	assert.Contains(t, mailer.sent[0].Body, "Risk Score: 70")
	assert.Contains(t, mailer.sent[0].Body, "Breach detected in LinkedIn Leak")
	assert.Contains(t, mailer.sent[0].Body, "Reset password immediately")

	var alert models.Alert
	require.NoError(t, conn.First(&alert).Error)
	assert.Equal(t, email.ID, alert.EmailID)
	assert.Equal(t, models.SeverityCritical, alert.Severity)
	assert.False(t, alert.IsRead)
}

func TestSendAlertPersistsDespiteTransportFailure(t *testing.T) {
	conn := setupTestDB(t)
	mailer := &stubMailer{sendErr: errTransportDown}
	svc := services.NewAlertService(conn, mailer)

	email := createEmail(t, conn, "victim@example.com")

	err := svc.SendAlert(&email, models.SeverityHigh, "Breach detected in Adobe Breach")
	require.ErrorIs(t, err, services.ErrNotificationFailed)

	// The audit record must survive the failed dispatch.
	var alert models.Alert
	require.NoError(t, conn.Where("email_id = ?", email.ID).First(&alert).Error)
	assert.Equal(t, "Breach detected in Adobe Breach", alert.Message)
	assert.False(t, alert.IsRead)
}

func TestSendAlertPersistsWithoutCredentials(t *testing.T) {
	conn := setupTestDB(t)
	mailer := &stubMailer{unconfigured: true}
	svc := services.NewAlertService(conn, mailer)

	email := createEmail(t, conn, "victim@example.com")

	err := svc.SendAlert(&email, models.SeverityCritical, "Breach detected in Canva Data Exposure")
	require.ErrorIs(t, err, services.ErrSMTPNotConfigured)

	assert.Empty(t, mailer.sent)

	var count int64
	conn.Model(&models.Alert{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSMTPMailerValidate(t *testing.T) {
	mailer := services.NewSMTPMailer("smtp.gmail.com", 465, "", "")
	assert.ErrorIs(t, mailer.Validate(), services.ErrSMTPNotConfigured)

	mailer = services.NewSMTPMailer("smtp.gmail.com", 465, "sender@example.com", "secret")
	assert.NoError(t, mailer.Validate())
}

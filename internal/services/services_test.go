package services_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/sentinelx-dev/sentinelx/internal/models"
	"github.com/sentinelx-dev/sentinelx/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// stubMailer records dispatches and can simulate missing credentials or a
// transport outage.
type stubMailer struct {
	unconfigured bool
	sendErr      error
	sent         []sentMail
}

func (m *stubMailer) Validate() error {
	if m.unconfigured {
		return services.ErrSMTPNotConfigured
	}

	return nil
}

func (m *stubMailer) Send(to, subject, body string) error {
	if m.sendErr != nil {
		return m.sendErr
	}

	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})

	return nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, conn.AutoMigrate(
		&models.Email{},
		&models.Breach{},
		&models.Alert{},
		&models.Setting{},
	))

	return conn
}

func createEmail(t *testing.T, conn *gorm.DB, address string) models.Email {
	t.Helper()

	email := models.Email{
		Address: address,
		Status:  models.StatusSafe,
	}

	require.NoError(t, conn.Create(&email).Error)

	return email
}

var errTransportDown = errors.New("dial tcp 127.0.0.1:465: connection refused")

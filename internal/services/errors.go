package services

import "errors"

var (
	// ErrEmailNotFound is returned when a check or alert references an
	// email id that does not exist.
	ErrEmailNotFound = errors.New("email not found")

	// ErrSMTPNotConfigured is returned before any dispatch attempt when
	// sender credentials are missing.
	ErrSMTPNotConfigured = errors.New("smtp credentials not configured")

	// ErrNotificationFailed wraps transport errors raised after the alert
	// row has already been committed.
	ErrNotificationFailed = errors.New("notification dispatch failed")
)

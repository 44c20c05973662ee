package notification

import "errors"

// Notification domain errors
var (
	ErrNotificationNotFound    = errors.New("notification not found")
	ErrDeleteForbidden         = errors.New("only the creator or an elevated role may delete this notification")
	ErrInvalidNotificationType = errors.New("invalid notification type")
)

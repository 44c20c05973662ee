package notification

import (
	"time"
)

// NotificationType represents the category of a notification
type NotificationType string

const (
	TypeAnnouncement NotificationType = "announcement"
	TypePayroll      NotificationType = "payroll"
	TypeInvoice      NotificationType = "invoice"
	TypeSchedule     NotificationType = "schedule"
	TypeUrgent       NotificationType = "urgent"
)

// AllNotificationTypes returns all available notification types
func AllNotificationTypes() []NotificationType {
	return []NotificationType{
		TypeAnnouncement,
		TypePayroll,
		TypeInvoice,
		TypeSchedule,
		TypeUrgent,
	}
}

// IsValidNotificationType reports whether s is a known type.
func IsValidNotificationType(s string) bool {
	for _, t := range AllNotificationTypes() {
		if NotificationType(s) == t {
			return true
		}
	}
	return false
}

// TargetAll is the wildcard value for the department and position criteria:
// targeting checks membership of the recipient's value in the target set
// unioned with "all".
const TargetAll = "all"

// Notification represents a targeted announcement. ReadBy is an append-only
// set of recipient identifiers; a recipient appears at most once no matter how
// often they acknowledge the notification.
type Notification struct {
	ID                string
	Type              NotificationType
	Title             string
	Message           string
	TargetRoles       []string
	TargetDepartments []string
	TargetPositions   []string
	ReadBy            []string
	CreatedBy         string
	CreatedAt         time.Time
}

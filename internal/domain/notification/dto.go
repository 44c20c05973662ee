package notification

import (
	"time"

	"github.com/educenter/backoffice-go/internal/domain/user"
	"github.com/educenter/backoffice-go/internal/pkg/validator"
)

// ============= Request DTOs =============

// CreateNotificationRequest represents a request to create a notification
type CreateNotificationRequest struct {
	Type              string   `json:"type"`
	Title             string   `json:"title"`
	Message           string   `json:"message"`
	TargetRoles       []string `json:"target_roles,omitempty"`
	TargetDepartments []string `json:"target_departments,omitempty"`
	TargetPositions   []string `json:"target_positions,omitempty"`
}

func (r *CreateNotificationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidNotificationType(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "is not a recognized notification type"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{Field: "message", Message: "is required"})
	}
	for _, role := range r.TargetRoles {
		if !user.IsValidRole(role) {
			errs = append(errs, validator.ValidationError{Field: "target_roles", Message: "contains an unknown role: " + role})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ============= Response DTOs =============

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID                string    `json:"id"`
	Type              string    `json:"type"`
	Title             string    `json:"title"`
	Message           string    `json:"message"`
	TargetRoles       []string  `json:"target_roles,omitempty"`
	TargetDepartments []string  `json:"target_departments,omitempty"`
	TargetPositions   []string  `json:"target_positions,omitempty"`
	IsRead            bool      `json:"is_read"`
	ReadCount         int       `json:"read_count"`
	CreatedBy         string    `json:"created_by"`
	CreatedAt         time.Time `json:"created_at"`
}

// NotificationListResponse represents a list of notifications visible to the caller
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
	UnreadCount   int                    `json:"unread_count"`
}

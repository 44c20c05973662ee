package notification

import (
	"github.com/educenter/backoffice-go/internal/domain/user"
	"github.com/educenter/backoffice-go/internal/pkg/validator"
)

// IsVisibleTo decides whether a recipient sees the notification. The three
// criteria are independent and combined with OR: matching any one of role,
// department or position is enough. Department and position are matched
// against the target set unioned with "all", so a recipient whose own
// department or position is "all" matches regardless of the targets. The
// broad match deliberately favors over-delivery over under-delivery.
func IsVisibleTo(n Notification, recipient user.Identity) bool {
	if validator.IsInSlice(string(recipient.Role), n.TargetRoles) {
		return true
	}
	if recipient.Department == TargetAll ||
		validator.IsInSlice(recipient.Department, n.TargetDepartments) {
		return true
	}
	if recipient.Position == TargetAll ||
		validator.IsInSlice(recipient.Position, n.TargetPositions) {
		return true
	}
	return false
}

// MarkRead returns a copy of n with recipientID added to ReadBy. Set
// semantics: marking twice yields the same set as marking once, and an
// already-present recipient is a no-op rather than an error.
func MarkRead(n Notification, recipientID string) Notification {
	if validator.IsInSlice(recipientID, n.ReadBy) {
		return n
	}

	readBy := make([]string, len(n.ReadBy), len(n.ReadBy)+1)
	copy(readBy, n.ReadBy)
	n.ReadBy = append(readBy, recipientID)
	return n
}

// IsReadBy reports whether the recipient has acknowledged the notification.
func IsReadBy(n Notification, recipientID string) bool {
	return validator.IsInSlice(recipientID, n.ReadBy)
}

// CanDelete allows deletion by the creator or by an elevated role.
func CanDelete(n Notification, actor user.Identity) bool {
	if actor.ID == n.CreatedBy {
		return true
	}
	return user.IsElevated(actor.Role)
}

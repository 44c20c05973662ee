package notification

import (
	"context"

	"github.com/educenter/backoffice-go/internal/domain/user"
)

// Service defines the notification service interface. Every operation takes
// the caller's identity tuple; targeting and delete permission are evaluated
// against it.
type Service interface {
	Create(ctx context.Context, actor user.Identity, req CreateNotificationRequest) (NotificationResponse, error)
	ListVisible(ctx context.Context, recipient user.Identity) (NotificationListResponse, error)
	MarkRead(ctx context.Context, recipient user.Identity, notificationID string) error
	Delete(ctx context.Context, actor user.Identity, notificationID string) error
}

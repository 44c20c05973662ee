package notification

import (
	"context"
	"time"

	"github.com/educenter/backoffice-go/internal/domain/notification"
	"github.com/educenter/backoffice-go/internal/domain/user"
)

type NotificationServiceImpl struct {
	notifRepo notification.Repository
}

func NewNotificationService(notifRepo notification.Repository) notification.Service {
	return &NotificationServiceImpl{notifRepo: notifRepo}
}

func (s *NotificationServiceImpl) Create(ctx context.Context, actor user.Identity, req notification.CreateNotificationRequest) (notification.NotificationResponse, error) {
	if err := req.Validate(); err != nil {
		return notification.NotificationResponse{}, err
	}

	n := &notification.Notification{
		Type:              notification.NotificationType(req.Type),
		Title:             req.Title,
		Message:           req.Message,
		TargetRoles:       req.TargetRoles,
		TargetDepartments: req.TargetDepartments,
		TargetPositions:   req.TargetPositions,
		ReadBy:            []string{},
		CreatedBy:         actor.ID,
		CreatedAt:         time.Now(),
	}

	if err := s.notifRepo.Create(ctx, n); err != nil {
		return notification.NotificationResponse{}, err
	}

	return mapToResponse(n, actor.ID), nil
}

// ListVisible applies the targeting rule against the caller's identity tuple.
// Filtering happens here rather than in SQL so the matching rule lives in one
// place next to its tests.
func (s *NotificationServiceImpl) ListVisible(ctx context.Context, recipient user.Identity) (notification.NotificationListResponse, error) {
	all, err := s.notifRepo.ListAll(ctx)
	if err != nil {
		return notification.NotificationListResponse{}, err
	}

	visible := make([]notification.NotificationResponse, 0, len(all))
	unread := 0
	for _, n := range all {
		if !notification.IsVisibleTo(*n, recipient) {
			continue
		}
		resp := mapToResponse(n, recipient.ID)
		if !resp.IsRead {
			unread++
		}
		visible = append(visible, resp)
	}

	return notification.NotificationListResponse{
		Notifications: visible,
		Total:         len(visible),
		UnreadCount:   unread,
	}, nil
}

func (s *NotificationServiceImpl) MarkRead(ctx context.Context, recipient user.Identity, notificationID string) error {
	n, err := s.notifRepo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}

	// Already acknowledged: a no-op, not an error.
	if notification.IsReadBy(*n, recipient.ID) {
		return nil
	}

	return s.notifRepo.MarkRead(ctx, notificationID, recipient.ID)
}

func (s *NotificationServiceImpl) Delete(ctx context.Context, actor user.Identity, notificationID string) error {
	n, err := s.notifRepo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}

	if !notification.CanDelete(*n, actor) {
		return notification.ErrDeleteForbidden
	}

	return s.notifRepo.Delete(ctx, notificationID)
}

// ========== HELPERS ==========

func mapToResponse(n *notification.Notification, recipientID string) notification.NotificationResponse {
	return notification.NotificationResponse{
		ID:                n.ID,
		Type:              string(n.Type),
		Title:             n.Title,
		Message:           n.Message,
		TargetRoles:       n.TargetRoles,
		TargetDepartments: n.TargetDepartments,
		TargetPositions:   n.TargetPositions,
		IsRead:            notification.IsReadBy(*n, recipientID),
		ReadCount:         len(n.ReadBy),
		CreatedBy:         n.CreatedBy,
		CreatedAt:         n.CreatedAt,
	}
}

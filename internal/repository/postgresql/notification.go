package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/educenter/backoffice-go/internal/domain/notification"
	"github.com/educenter/backoffice-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepositoryImpl{db: db}
}

func (r *notificationRepositoryImpl) Create(ctx context.Context, n *notification.Notification) error {
	q := GetQuerier(ctx, r.db)

	if n.ID == "" {
		n.ID = uuid.New().String()
	}

	query := `
		INSERT INTO notifications (id, type, title, message, target_roles, target_departments, target_positions, read_by, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		n.ID,
		string(n.Type),
		n.Title,
		n.Message,
		n.TargetRoles,
		n.TargetDepartments,
		n.TargetPositions,
		n.ReadBy,
		n.CreatedBy,
	).Scan(&n.CreatedAt)
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	return nil
}

func (r *notificationRepositoryImpl) GetByID(ctx context.Context, id string) (*notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, type, title, message, target_roles, target_departments, target_positions, read_by, created_by, created_at
		FROM notifications
		WHERE id = $1
	`

	n, err := scanNotification(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notification.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}

	return n, nil
}

func (r *notificationRepositoryImpl) ListAll(ctx context.Context) ([]*notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, type, title, message, target_roles, target_departments, target_positions, read_by, created_by, created_at
		FROM notifications
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*notification.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// MarkRead appends the recipient in a single statement so two concurrent
// readers can never produce a duplicate entry or drop each other's append.
func (r *notificationRepositoryImpl) MarkRead(ctx context.Context, id string, recipientID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET read_by = array_append(read_by, $1)
		WHERE id = $2 AND NOT ($1 = ANY(read_by))
	`

	_, err := q.Exec(ctx, query, recipientID, id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}

	// Zero rows affected is either "already read" (fine) or "no such row".
	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM notifications WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("check notification exists: %w", err)
	}
	if !exists {
		return notification.ErrNotificationNotFound
	}

	return nil
}

func (r *notificationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	if result.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}

	return nil
}

func scanNotification(row pgx.Row) (*notification.Notification, error) {
	var n notification.Notification
	var notifType string
	err := row.Scan(
		&n.ID,
		&notifType,
		&n.Title,
		&n.Message,
		&n.TargetRoles,
		&n.TargetDepartments,
		&n.TargetPositions,
		&n.ReadBy,
		&n.CreatedBy,
		&n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	n.Type = notification.NotificationType(notifType)
	return &n, nil
}

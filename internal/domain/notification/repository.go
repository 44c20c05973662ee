package notification

import "context"

// Repository defines the notification repository interface
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id string) (*Notification, error)
	ListAll(ctx context.Context) ([]*Notification, error)

	// MarkRead appends recipientID to the read-by set only when absent. The
	// union happens in a single statement so concurrent recipients never lose
	// each other's acknowledgements.
	MarkRead(ctx context.Context, id string, recipientID string) error

	Delete(ctx context.Context, id string) error
}

package notification

import (
	"context"
	"fmt"
	"testing"

	"github.com/educenter/backoffice-go/internal/domain/notification"
	"github.com/educenter/backoffice-go/internal/domain/user"
	"github.com/educenter/backoffice-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNotificationRepo is an in-memory repository mirroring the idempotent
// union semantics of the SQL implementation.
type fakeNotificationRepo struct {
	notifications map[string]*notification.Notification
	nextID        int
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[string]*notification.Notification)}
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *notification.Notification) error {
	f.nextID++
	n.ID = fmt.Sprintf("n-%d", f.nextID)
	stored := *n
	f.notifications[n.ID] = &stored
	return nil
}

func (f *fakeNotificationRepo) GetByID(_ context.Context, id string) (*notification.Notification, error) {
	n, ok := f.notifications[id]
	if !ok {
		return nil, notification.ErrNotificationNotFound
	}
	copied := *n
	return &copied, nil
}

func (f *fakeNotificationRepo) ListAll(_ context.Context) ([]*notification.Notification, error) {
	var result []*notification.Notification
	for _, n := range f.notifications {
		copied := *n
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id string, recipientID string) error {
	n, ok := f.notifications[id]
	if !ok {
		return notification.ErrNotificationNotFound
	}
	*n = notification.MarkRead(*n, recipientID)
	return nil
}

func (f *fakeNotificationRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.notifications[id]; !ok {
		return notification.ErrNotificationNotFound
	}
	delete(f.notifications, id)
	return nil
}

func seedNotification(t *testing.T, repo *fakeNotificationRepo, n notification.Notification) string {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &n))
	return n.ID
}

var (
	admin   = user.Identity{ID: "admin-1", Role: user.RoleAdmin, Department: "management", Position: "head"}
	teacher = user.Identity{ID: "staff-1", Role: user.RoleStaff, Department: "education", Position: "teacher"}
	techie  = user.Identity{ID: "staff-2", Role: user.RoleStaff, Department: "technical", Position: "operator"}
)

func TestNotificationService_Create(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)

	resp, err := svc.Create(context.Background(), admin, notification.CreateNotificationRequest{
		Type:              "announcement",
		Title:             "Term schedule",
		Message:           "New term starts Monday",
		TargetDepartments: []string{"education", "technical"},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "admin-1", resp.CreatedBy)
	assert.False(t, resp.IsRead)
	assert.Zero(t, resp.ReadCount, "read-by set must start empty")
}

func TestNotificationService_Create_Invalid(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)

	_, err := svc.Create(context.Background(), admin, notification.CreateNotificationRequest{
		Type:  "carrier-pigeon",
		Title: "",
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "type")
	assert.Contains(t, errs.ToMap(), "title")
	assert.Empty(t, repo.notifications, "invalid request must not be persisted")
}

func TestNotificationService_ListVisible(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)

	seedNotification(t, repo, notification.Notification{
		Title:             "for education",
		TargetDepartments: []string{"education"},
	})
	seedNotification(t, repo, notification.Notification{
		Title:             "for both departments",
		TargetRoles:       []string{},
		TargetDepartments: []string{"education", "technical"},
	})

	eduList, err := svc.ListVisible(context.Background(), teacher)
	require.NoError(t, err)
	assert.Equal(t, 2, eduList.Total)
	assert.Equal(t, 2, eduList.UnreadCount)

	techList, err := svc.ListVisible(context.Background(), techie)
	require.NoError(t, err)
	assert.Equal(t, 1, techList.Total)
	assert.Equal(t, "for both departments", techList.Notifications[0].Title)
}

func TestNotificationService_MarkRead_Idempotent(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)

	id := seedNotification(t, repo, notification.Notification{
		Title:             "read me",
		TargetDepartments: []string{"education"},
	})

	require.NoError(t, svc.MarkRead(context.Background(), teacher, id))
	require.NoError(t, svc.MarkRead(context.Background(), teacher, id))

	stored := repo.notifications[id]
	assert.Equal(t, []string{"staff-1"}, stored.ReadBy)

	list, err := svc.ListVisible(context.Background(), teacher)
	require.NoError(t, err)
	assert.Zero(t, list.UnreadCount)
	assert.True(t, list.Notifications[0].IsRead)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	svc := NewNotificationService(newFakeNotificationRepo())

	err := svc.MarkRead(context.Background(), teacher, "missing")
	assert.ErrorIs(t, err, notification.ErrNotificationNotFound)
}

func TestNotificationService_Delete_Authorization(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)

	id := seedNotification(t, repo, notification.Notification{
		Title:             "to delete",
		CreatedBy:         "staff-1",
		TargetDepartments: []string{"education"},
	})

	// Neither creator nor elevated
	err := svc.Delete(context.Background(), techie, id)
	assert.ErrorIs(t, err, notification.ErrDeleteForbidden)

	// Creator may delete
	require.NoError(t, svc.Delete(context.Background(), teacher, id))

	// Elevated role may delete someone else's notification
	id = seedNotification(t, repo, notification.Notification{
		Title:     "another",
		CreatedBy: "staff-1",
	})
	require.NoError(t, svc.Delete(context.Background(), admin, id))
}

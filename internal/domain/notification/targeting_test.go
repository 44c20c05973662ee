package notification

import (
	"testing"

	"github.com/educenter/backoffice-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

func TestIsVisibleTo(t *testing.T) {
	cases := []struct {
		name      string
		notif     Notification
		recipient user.Identity
		want      bool
	}{
		{
			name:      "role match",
			notif:     Notification{TargetRoles: []string{"manager", "staff"}},
			recipient: user.Identity{Role: user.RoleStaff, Department: "education", Position: "teacher"},
			want:      true,
		},
		{
			name:      "department match",
			notif:     Notification{TargetDepartments: []string{"education"}},
			recipient: user.Identity{Role: user.RoleStaff, Department: "education"},
			want:      true,
		},
		{
			name:      "recipient department wildcard matches any target set",
			notif:     Notification{TargetDepartments: []string{"technical"}},
			recipient: user.Identity{Role: user.RoleStaff, Department: "all"},
			want:      true,
		},
		{
			name:      "recipient position wildcard matches any target set",
			notif:     Notification{TargetPositions: []string{"accountant"}},
			recipient: user.Identity{Role: user.RoleStaff, Position: "all"},
			want:      true,
		},
		{
			name: "all listed as a target does not widen the match",
			notif: Notification{
				TargetRoles:       []string{},
				TargetDepartments: []string{"education", "all"},
				TargetPositions:   []string{},
			},
			recipient: user.Identity{Role: user.RoleStaff, Department: "technical", Position: "teacher"},
			want:      false,
		},
		{
			name:      "position match",
			notif:     Notification{TargetPositions: []string{"teacher"}},
			recipient: user.Identity{Role: user.RoleStaff, Position: "teacher"},
			want:      true,
		},
		{
			name: "or across criteria, role wins despite department mismatch",
			notif: Notification{
				TargetRoles:       []string{"staff"},
				TargetDepartments: []string{"education"},
			},
			recipient: user.Identity{Role: user.RoleStaff, Department: "technical"},
			want:      true,
		},
		{
			name: "no criterion matches",
			notif: Notification{
				TargetRoles:       []string{},
				TargetDepartments: []string{"education", "all-staff"},
				TargetPositions:   []string{},
			},
			recipient: user.Identity{Role: user.RoleStaff, Department: "technical", Position: "teacher"},
			want:      false,
		},
		{
			name:      "empty target sets match nobody",
			notif:     Notification{},
			recipient: user.Identity{Role: user.RoleAdmin, Department: "education", Position: "director"},
			want:      false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, IsVisibleTo(c.notif, c.recipient))
		})
	}
}

func TestMarkRead_Idempotent(t *testing.T) {
	n := Notification{ReadBy: []string{"u1"}}

	once := MarkRead(n, "u2")
	twice := MarkRead(once, "u2")

	assert.Equal(t, []string{"u1", "u2"}, once.ReadBy)
	assert.Equal(t, once.ReadBy, twice.ReadBy, "marking twice must equal marking once")
}

func TestMarkRead_CopyOnWrite(t *testing.T) {
	n := Notification{ReadBy: []string{"u1"}}

	marked := MarkRead(n, "u2")

	assert.Equal(t, []string{"u1"}, n.ReadBy, "input notification mutated")
	assert.True(t, IsReadBy(marked, "u2"))
	assert.False(t, IsReadBy(n, "u2"))
}

func TestMarkRead_GrowsMonotonically(t *testing.T) {
	n := Notification{}
	for _, id := range []string{"a", "b", "a", "c", "b"} {
		n = MarkRead(n, id)
	}
	assert.Equal(t, []string{"a", "b", "c"}, n.ReadBy)
}

func TestCanDelete(t *testing.T) {
	n := Notification{CreatedBy: "creator-1"}

	cases := []struct {
		name  string
		actor user.Identity
		want  bool
	}{
		{"creator", user.Identity{ID: "creator-1", Role: user.RoleStaff}, true},
		{"admin", user.Identity{ID: "other", Role: user.RoleAdmin}, true},
		{"director", user.Identity{ID: "other", Role: user.RoleDirector}, true},
		{"manager not creator", user.Identity{ID: "other", Role: user.RoleManager}, false},
		{"staff not creator", user.Identity{ID: "other", Role: user.RoleStaff}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, CanDelete(n, c.actor))
		})
	}
}

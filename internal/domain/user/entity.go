package user

import "time"

// Role enum
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleDirector Role = "director"
	RoleManager  Role = "manager"
	RoleStaff    Role = "staff"
)

// AllRoles returns every assignable role.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleDirector, RoleManager, RoleStaff}
}

// IsValidRole reports whether s is a known role.
func IsValidRole(s string) bool {
	switch Role(s) {
	case RoleAdmin, RoleDirector, RoleManager, RoleStaff:
		return true
	}
	return false
}

// User represents a staff account. Role, department and position together form
// the identity tuple consumed by notification targeting.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	Role         Role
	Department   string
	Position     string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the authenticated caller tuple supplied to the business rules.
type Identity struct {
	ID         string
	Role       Role
	Department string
	Position   string
}

// Identity returns the targeting tuple for the user.
func (u User) Identity() Identity {
	return Identity{
		ID:         u.ID,
		Role:       u.Role,
		Department: u.Department,
		Position:   u.Position,
	}
}

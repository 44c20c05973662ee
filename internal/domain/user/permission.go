package user

// ElevatedRoles are the roles allowed to act on records they do not own,
// such as deleting another user's notification.
var ElevatedRoles = []Role{RoleAdmin, RoleDirector}

// IsElevated reports whether the role carries elevated privileges.
func IsElevated(role Role) bool {
	for _, r := range ElevatedRoles {
		if role == r {
			return true
		}
	}
	return false
}

// CanManageRecords reports whether the role may create or edit customers,
// invoices and payroll records.
func CanManageRecords(role Role) bool {
	return role == RoleAdmin || role == RoleDirector || role == RoleManager
}

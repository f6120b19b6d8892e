package constants

// User roles stored on profiles.role
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// Profile account statuses (deletion is a status flip, never a row removal)
const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
	UserStatusDeleted   = "deleted"
)

var AdminAndAbove = []string{RoleAdmin, RoleSuperAdmin}

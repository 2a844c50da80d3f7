package models

// RoleType defines the user role type
type RoleType string

const (
	RoleParent   RoleType = "PARENT"
	RoleStaff    RoleType = "STAFF"
	RoleDirector RoleType = "DIRECTOR"
)

// ValidRole reports whether a role string is one of the known roles.
func ValidRole(r string) bool {
	switch RoleType(r) {
	case RoleParent, RoleStaff, RoleDirector:
		return true
	}
	return false
}

package model

// Role is a fixed staff role. Permissions are derived from it.
type Role string

const (
	RoleRegistrar Role = "REGISTRAR"
	RoleAdvisor   Role = "ADVISOR"
)

var rolePermissions = map[Role][]Permission{
	RoleRegistrar: AllPermissions,
	RoleAdvisor: {
		PermissionCurriculumRead,
		PermissionEligibilityRead,
	},
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// Permissions returns the permission codes granted to r.
func (r Role) Permissions() []string {
	perms := rolePermissions[r]
	out := make([]string, 0, len(perms))
	for _, p := range perms {
		out = append(out, string(p))
	}
	return out
}

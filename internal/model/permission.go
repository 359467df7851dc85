package model

// Permission represents a string code for a specific system action.
type Permission string

const (
	// PermissionCurriculumRead allows viewing students, courses, programs,
	// exchanges and their participation records.
	PermissionCurriculumRead Permission = "curriculum:read"

	// PermissionCurriculumWrite allows registering, replacing and deleting
	// curriculum records.
	PermissionCurriculumWrite Permission = "curriculum:write"

	// PermissionEligibilityRead allows running the graduation eligibility check.
	PermissionEligibilityRead Permission = "eligibility:read"

	// PermissionAdminsWrite allows creating admin accounts.
	PermissionAdminsWrite Permission = "admins:write"
)

// AllPermissions is a slice of all available permissions.
var AllPermissions = []Permission{
	PermissionCurriculumRead,
	PermissionCurriculumWrite,
	PermissionEligibilityRead,
	PermissionAdminsWrite,
}

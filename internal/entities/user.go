package entities

// Valid user roles. Roles are stored and validated on write but not enforced
// on any endpoint.
const (
	RoleLabChief = "lab_chief"
	RoleLabStaff = "lab_staff"
)

// ValidRole reports whether rol is one of the known roles.
func ValidRole(rol string) bool {
	return rol == RoleLabChief || rol == RoleLabStaff
}

// User represents a user row. The password hash never leaves the backend.
type User struct {
	ID           int64  `json:"id"`
	Nombre       string `json:"nombre"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Don't expose password hash in JSON
	Rol          string `json:"rol"`
}

package constants

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Pesan error yang dipakai lintas fitur
const (
	ErrMissingToken    = "Missing Authorization token"
	ErrInvalidToken    = "Invalid or expired token"
	ErrAdminOnly       = "Admin access required"
	ErrDBUnavailable   = "Database unavailable"
	ErrValidation      = "Validation error"
	ErrUserNotFound    = "User not found"
	ErrInvalidLogin    = "Invalid email or password"
	ErrInvalidAdmin    = "Invalid admin credentials"
	DefaultCollegeName = "Your College"
)

var AllRoles = []string{RoleStudent, RoleAdmin}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

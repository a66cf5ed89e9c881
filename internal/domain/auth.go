package domain

// AuthUser is the identity shape exposed to the shell header and role checks.
type AuthUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

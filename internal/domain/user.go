package domain

// Known roles. Role is an open-ended string on the wire, these are the values
// the admin console offers.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
	RoleStaff    = "staff"
)

// Roles lists the selectable roles in form order.
var Roles = []string{RoleAdmin, RoleCustomer, RoleStaff}

// User represents a store account. Email is a uniqueness key on the backend.
// PasswordHash is write-only: required on create, and omitting it on update
// keeps the stored credential unchanged.
type User struct {
	ID           *int64  `json:"id,omitempty" csv:"id"`
	Name         string  `json:"name" csv:"name"`
	Email        string  `json:"email" csv:"email"`
	PasswordHash *string `json:"passwordHash,omitempty" csv:"-"`
	Role         string  `json:"role" csv:"role"`
	Phone        *string `json:"phone,omitempty" csv:"phone"`
	CreatedAt    string  `json:"createdAt,omitempty" csv:"created_at"`
	UpdatedAt    string  `json:"updatedAt,omitempty" csv:"updated_at"`
}

package domain

import "time"

// Role is the access level of a caller.
type Role string

const (
	RoleAdmin  Role = "admin"
	RolePlayer Role = "player"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RolePlayer
}

// User is a record from the user store.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Caller identifies who is invoking a service operation. It is passed explicitly
// into every inventory call and checked once at the service boundary.
type Caller struct {
	Role   Role
	UserID int64
}

// IsAdmin reports whether the caller holds the admin role.
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// CanActFor reports whether the caller may read or mutate userID's inventory.
func (c Caller) CanActFor(userID int64) bool {
	return c.IsAdmin() || (c.Role == RolePlayer && c.UserID == userID)
}

package models

// Role is the marketplace role a caller acts under. There is no credential
// authentication; the role toggle is the whole identity model.
type Role string

const (
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
)

// Valid reports whether the role is one of the two known values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleOwner
}

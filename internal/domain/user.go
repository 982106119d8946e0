package domain

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Identity is the verified caller supplied by the identity provider.
type Identity struct {
	UserID string
	Role   Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CanActFor reports whether the caller may read or change data owned by userID.
func (i Identity) CanActFor(userID string) bool {
	return i.IsAdmin() || i.UserID == userID
}

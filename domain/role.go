package domain

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleCarOwner Role = "CarOwner"
	RoleRenter   Role = "Renter"
)

// AdminsGroup receives every support message.
const AdminsGroup = "Admins"

// GroupFor returns the broadcast group a role belongs to, if any.
func GroupFor(role Role) (string, bool) {
	if role == RoleAdmin {
		return AdminsGroup, true
	}
	return "", false
}

func (r Role) IsPrivileged() bool { return r == RoleAdmin }

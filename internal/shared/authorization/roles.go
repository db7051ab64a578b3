package authorization

// UserRole is the marketplace role carried in the access token.
type UserRole string

const (
	RoleCustomer  UserRole = "customer"
	RoleInstaller UserRole = "installer"
	RoleAdmin     UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleCustomer, RoleInstaller, RoleAdmin:
		return true
	}
	return false
}

// ParseUserRole falls back to customer for unknown values.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleCustomer
}

package domain

// Operator roles. Providers and accreditors see only requests owned by their
// scope identifier; admins have unscoped visibility.
const (
	RoleAdmin      = "admin"
	RoleAccreditor = "accreditor"
	RoleProvider   = "provider"
)

// OperatorAuth carries the credential and scoping attributes of a dashboard
// operator as stored in the auth database.
type OperatorAuth struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	ScopeID      string
	Status       string
}

// UnscopedRole reports whether the role grants visibility over every
// request regardless of owner.
func UnscopedRole(role string) bool {
	return role == RoleAdmin
}

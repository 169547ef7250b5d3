package domain

// Scope is the ownership filter applied to every complaint query.
type Scope int

const (
	// ScopeOwnedOnly restricts queries to records owned by the acting user.
	ScopeOwnedOnly Scope = iota
	// ScopeAll applies no ownership filter.
	ScopeAll
)

// DecideScope maps an actor role to the query scope it is granted.
// Officer roles see everything; every other role — including roles this
// build does not know about — is restricted to its own records. Defaulting
// unknown roles to ScopeOwnedOnly keeps the check fail-safe.
//
// This is the single place scoping is decided; handlers and repositories
// never inspect role strings themselves.
func DecideScope(role string) Scope {
	switch role {
	case RoleDistrictOfficer, RoleStateOfficer, RoleNationalAdmin:
		return ScopeAll
	default:
		return ScopeOwnedOnly
	}
}

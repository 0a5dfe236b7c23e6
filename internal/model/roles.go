package model

// Role is a named grant in the role registry.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleIssuer Role = "issuer"
)

// Capability is a bit set of permitted ledger operations.
type Capability uint8

const (
	CanMint Capability = 1 << iota
	CanRevoke
	CanManageRoles
)

// Has reports whether all bits of want are present.
func (c Capability) Has(want Capability) bool { return c&want == want }

// CapabilitiesOf folds roles into capabilities. Roles do not inherit from each other.
func CapabilitiesOf(roles ...Role) Capability {
	var c Capability
	for _, r := range roles {
		switch r {
		case RoleAdmin:
			c |= CanManageRoles
		case RoleIssuer:
			c |= CanMint | CanRevoke
		}
	}
	return c
}

package roles

// Role is the permission level carried by an authenticated user.
type Role string

const (
	Collaborator Role = "collaborator"
	Admin        Role = "admin"
)

// Capability names one class of operations. Authorization is a single
// capability check instead of per-route role comparisons.
type Capability string

const (
	CapRead           Capability = "read"
	CapWriteEvents    Capability = "write-events"
	CapWriteInventory Capability = "write-inventory"
	CapDelete         Capability = "delete"
	CapManageUsers    Capability = "manage-users"
)

var grants = map[Role]map[Capability]bool{
	Collaborator: {
		CapRead:        true,
		CapWriteEvents: true,
	},
	Admin: {
		CapRead:           true,
		CapWriteEvents:    true,
		CapWriteInventory: true,
		CapDelete:         true,
		CapManageUsers:    true,
	},
}

// Can reports whether the role holds the capability. Unknown roles hold none.
func (r Role) Can(c Capability) bool {
	return grants[r][c]
}

func (r Role) IsValid() bool {
	switch r {
	case Collaborator, Admin:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}

package model

// Role is one of the four fixed authorization levels in the system.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleStoreManager Role = "STORE_MANAGER"
	RoleStoreKeeper  Role = "STORE_KEEPER"
	RoleAuditor      Role = "AUDITOR"
)

// Capability identifies an operation a role may perform.
type Capability string

const (
	CapApproveIntake   Capability = "intake:approve"
	CapRecordIntake    Capability = "intake:record"
	CapRecordSale      Capability = "sale:record"
	CapViewAudit       Capability = "audit:view"
	CapManageProducts  Capability = "product:manage"
	CapManageSuppliers Capability = "supplier:manage"
	CapManageUsers     Capability = "user:manage"
)

// roleCapabilities is the single source of truth for authorization.
// Every service-level permission check and every route guard consults this
// table; the frontend only mirrors it for UX.
var roleCapabilities = map[Role][]Capability{
	RoleAdmin: {
		CapApproveIntake, CapRecordIntake, CapRecordSale,
		CapViewAudit, CapManageProducts, CapManageSuppliers, CapManageUsers,
	},
	RoleStoreManager: {
		CapApproveIntake, CapRecordIntake, CapRecordSale,
		CapManageProducts, CapManageSuppliers,
	},
	RoleStoreKeeper: {
		CapRecordIntake, CapRecordSale,
	},
	RoleAuditor: {
		CapViewAudit,
	},
}

// Valid reports whether r is one of the four known role codes.
func (r Role) Valid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

// Can reports whether the role is allowed to perform the given capability.
// Unknown roles have no capabilities.
func (r Role) Can(cap Capability) bool {
	for _, c := range roleCapabilities[r] {
		if c == cap {
			return true
		}
	}
	return false
}

// AllRoles lists the role codes in a stable order.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleStoreManager, RoleStoreKeeper, RoleAuditor}
}

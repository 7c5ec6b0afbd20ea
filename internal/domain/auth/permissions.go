package auth

const (
	RoleAdmin      = "Admin"
	RoleSupervisor = "Supervisor"
	RoleUser       = "User"
)

var Roles = []string{RoleAdmin, RoleSupervisor, RoleUser}

// Operation names a permission-gated capability, not an HTTP route.
type Operation string

const (
	OpViewRecords   Operation = "records.view"
	OpExport        Operation = "records.export"
	OpManageRecords Operation = "records.manage"
	OpBulkData      Operation = "records.bulk"
	OpManageUsers   Operation = "users.manage"
	OpViewAudit     Operation = "audit.view"
)

var rolePermissions = map[string][]Operation{
	RoleAdmin: {
		OpViewRecords,
		OpExport,
		OpManageRecords,
		OpBulkData,
		OpManageUsers,
		OpViewAudit,
	},
	RoleSupervisor: {
		OpViewRecords,
		OpExport,
	},
	RoleUser: {
		OpViewRecords,
	},
}

// Allowed reports whether the role may perform the operation. Pure function;
// unknown roles are denied everything.
func Allowed(role string, op Operation) bool {
	for _, granted := range rolePermissions[role] {
		if granted == op {
			return true
		}
	}
	return false
}

// ValidRole reports whether the role is one of the three known roles.
func ValidRole(role string) bool {
	for _, known := range Roles {
		if known == role {
			return true
		}
	}
	return false
}
